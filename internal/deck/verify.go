package deck

import (
	"fmt"

	"github.com/arcanaland/deckhand/internal/card"
)

// Problems lists every way cards differ from a complete deck: the wrong
// number of cards, missing cards and duplicated cards. Major arcana are
// identified by order, so renamed cards still count. An empty result means
// the cards form a complete deck.
func Problems(cards []card.Card) []string {
	var problems []string

	if len(cards) != Size {
		problems = append(problems, fmt.Sprintf("deck has %d cards, expected %d", len(cards), Size))
	}

	seen := make(map[card.Arcana]int)
	for _, c := range cards {
		seen[identity(c.Arcana)]++
	}

	for _, c := range New().Cards() {
		id := identity(c.Arcana)
		switch n := seen[id]; {
		case n == 0:
			problems = append(problems, fmt.Sprintf("missing card: %s", describe(id)))
		case n > 1:
			problems = append(problems, fmt.Sprintf("duplicate card: %s appears %d times", describe(id), n))
		}
	}

	return problems
}

func identity(a card.Arcana) card.Arcana {
	if m, ok := a.(card.Major); ok {
		return card.Major{Order: m.Order}
	}
	return a
}

func describe(a card.Arcana) string {
	if m, ok := a.(card.Major); ok {
		return fmt.Sprintf("major arcana %02d (%s)", m.Order, card.MajorArcanaNames[m.Order])
	}
	return a.String()
}
