package card

import "strings"

var numerals = []struct {
	value  int
	symbol string
}{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
	{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"},
	{1, "I"},
}

// Numeral renders a major arcana order as a Roman numeral. Order 0 has
// no numeral and renders as "0".
func Numeral(order int) string {
	if order <= 0 {
		return "0"
	}

	var b strings.Builder
	for _, n := range numerals {
		for order >= n.value {
			b.WriteString(n.symbol)
			order -= n.value
		}
	}
	return b.String()
}
