package card

import "fmt"

// Rank is the rank of a minor arcana card
type Rank int

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Page
	Knight
	Queen
	King
)

// NumRanks is the number of ranks in each suit
const NumRanks = 14

var rankNames = [...]string{
	Ace: "Ace", Two: "Two", Three: "Three", Four: "Four", Five: "Five",
	Six: "Six", Seven: "Seven", Eight: "Eight", Nine: "Nine", Ten: "Ten",
	Page: "Page", Knight: "Knight", Queen: "Queen", King: "King",
}

// Valid reports whether r is one of the fourteen ranks
func (r Rank) Valid() bool {
	return r >= Ace && r <= King
}

func (r Rank) String() string {
	if !r.Valid() {
		return fmt.Sprintf("Rank(%d)", int(r))
	}
	return rankNames[r]
}

// ParseRank parses a rank from its canonical name
func ParseRank(s string) (Rank, bool) {
	for r := Ace; r <= King; r++ {
		if rankNames[r] == s {
			return r, true
		}
	}
	return 0, false
}

// Suit is the suit of a minor arcana card
type Suit int

const (
	Wands Suit = iota
	Cups
	Swords
	Pentacles
)

// NumSuits is the number of minor arcana suits
const NumSuits = 4

var suitNames = [...]string{
	Wands:     "Wands",
	Cups:      "Cups",
	Swords:    "Swords",
	Pentacles: "Pentacles",
}

// Valid reports whether s is one of the four suits
func (s Suit) Valid() bool {
	return s >= Wands && s <= Pentacles
}

func (s Suit) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Suit(%d)", int(s))
	}
	return suitNames[s]
}

// ParseSuit parses a suit from its canonical name
func ParseSuit(s string) (Suit, bool) {
	for suit := Wands; suit <= Pentacles; suit++ {
		if suitNames[suit] == s {
			return suit, true
		}
	}
	return 0, false
}

// Orientation is the face orientation of a card
type Orientation int

const (
	Upright Orientation = iota
	Reversed
)

func (o Orientation) String() string {
	if o == Reversed {
		return "Reversed"
	}
	return "Upright"
}

// Arcana is the identity of a card: either a Major or a Minor.
// The set of implementations is closed.
type Arcana interface {
	fmt.Stringer
	arcana()
}

// Major is a major arcana card. Order is in [0, 21]; 0 is The Fool.
type Major struct {
	Order int
	Name  string
}

// Minor is a minor arcana card
type Minor struct {
	Rank Rank
	Suit Suit
}

func (Major) arcana() {}
func (Minor) arcana() {}

func (m Major) String() string {
	return fmt.Sprintf("%s - %s", Numeral(m.Order), m.Name)
}

func (m Minor) String() string {
	return fmt.Sprintf("%s of %s", m.Rank, m.Suit)
}

// Card is a tarot card with its current orientation. Two cards are the
// same card when their arcana are equal; orientation is not part of the
// identity.
type Card struct {
	Arcana      Arcana
	Orientation Orientation
}

// New returns an upright card with the given arcana
func New(a Arcana) Card {
	return Card{Arcana: a, Orientation: Upright}
}

// Reverse toggles the card between upright and reversed
func (c *Card) Reverse() {
	if c.Orientation == Upright {
		c.Orientation = Reversed
	} else {
		c.Orientation = Upright
	}
}

// Reversed reports whether the card is currently reversed
func (c Card) Reversed() bool {
	return c.Orientation == Reversed
}

// Same reports whether c and other are the same card, ignoring orientation
func (c Card) Same(other Card) bool {
	return c.Arcana == other.Arcana
}

func (c Card) String() string {
	if c.Arcana == nil {
		return ""
	}
	if c.Orientation == Reversed {
		return "Reversed " + c.Arcana.String()
	}
	return c.Arcana.String()
}
