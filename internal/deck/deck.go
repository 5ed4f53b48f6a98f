package deck

import (
	"github.com/arcanaland/deckhand/internal/card"
)

// Size is the number of cards in a complete deck
const Size = card.NumMajor + card.NumSuits*card.NumRanks

// CanonicalSuits is the suit order of the minor arcana in a new deck
var CanonicalSuits = [card.NumSuits]card.Suit{card.Wands, card.Cups, card.Swords, card.Pentacles}

// CanonicalRanks is the rank order within each suit in a new deck
var CanonicalRanks = [card.NumRanks]card.Rank{
	card.Ace, card.Two, card.Three, card.Four, card.Five, card.Six, card.Seven,
	card.Eight, card.Nine, card.Ten, card.Page, card.Knight, card.Queen, card.King,
}

// Deck is an ordered pile of cards. Index 0 is the top of the deck, where
// cards are drawn and peeked; the last index is the bottom, where cards are
// put back.
//
// A Deck is not safe for concurrent use.
type Deck struct {
	cards []card.Card
}

// New returns the canonical deck: the major arcana from The Fool down to
// The World, followed by the minor arcana suit by suit in CanonicalSuits
// order, each suit from Ace to King. Every card is upright.
func New() *Deck {
	return NewWithNames(nil)
}

// NewWithNames returns the canonical deck with major arcana names taken
// from names where present.
func NewWithNames(names Names) *Deck {
	cards := make([]card.Card, 0, Size)

	for order := 0; order < card.NumMajor; order++ {
		cards = append(cards, card.New(card.Major{
			Order: order,
			Name:  names.Major(order),
		}))
	}

	for _, suit := range CanonicalSuits {
		for _, rank := range CanonicalRanks {
			cards = append(cards, card.New(card.Minor{Rank: rank, Suit: suit}))
		}
	}

	return &Deck{cards: cards}
}

// FromCards returns a deck holding cards, top first. The slice is copied.
func FromCards(cards []card.Card) *Deck {
	return &Deck{cards: append([]card.Card(nil), cards...)}
}

// Cards returns a copy of the deck, top first
func (d *Deck) Cards() []card.Card {
	return append([]card.Card(nil), d.cards...)
}

// Len returns the number of cards in the deck
func (d *Deck) Len() int {
	return len(d.cards)
}

// Draw removes and returns the top card. It reports false if the deck is
// empty.
func (d *Deck) Draw() (card.Card, bool) {
	if len(d.cards) == 0 {
		return card.Card{}, false
	}

	c := d.cards[0]
	d.cards = d.cards[1:]
	return c, true
}

// Peek returns the top card without removing it. It reports false if the
// deck is empty.
func (d *Deck) Peek() (card.Card, bool) {
	if len(d.cards) == 0 {
		return card.Card{}, false
	}
	return d.cards[0], true
}

// Put places c at the bottom of the deck
func (d *Deck) Put(c card.Card) {
	d.cards = append(d.cards, c)
}

// DrawN removes the top n cards and returns them in the order drawn, so
// the first element is the card that was on top. It reports false, leaving
// the deck untouched, if n is zero or larger than the deck.
func (d *Deck) DrawN(n int) ([]card.Card, bool) {
	if n <= 0 || n > len(d.cards) {
		return nil, false
	}

	drawn := make([]card.Card, 0, n)
	for i := 0; i < n; i++ {
		c, _ := d.Draw()
		drawn = append(drawn, c)
	}
	return drawn, true
}

// PutN puts each card at the bottom in the given order
func (d *Deck) PutN(cards []card.Card) {
	for _, c := range cards {
		d.Put(c)
	}
}

// At returns a pointer to the card at position i, counted from the top.
// The pointer is valid until the next call that changes the deck's length.
func (d *Deck) At(i int) *card.Card {
	return &d.cards[i]
}

// Swap exchanges the cards at positions i and j
func (d *Deck) Swap(i, j int) {
	d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
}

// Take removes the packet of n cards starting at position i and returns it
// with its order intact. Both bounds are clamped to the deck.
func (d *Deck) Take(i, n int) []card.Card {
	i = clamp(i, 0, len(d.cards))
	end := clamp(i+n, i, len(d.cards))

	packet := append([]card.Card(nil), d.cards[i:end]...)
	d.cards = append(d.cards[:i], d.cards[end:]...)
	return packet
}

// Insert places packet, in order, so that its first card ends up at
// position i. i is clamped to [0, Len()].
func (d *Deck) Insert(i int, packet ...card.Card) {
	if len(packet) == 0 {
		return
	}
	i = clamp(i, 0, len(d.cards))

	cards := make([]card.Card, 0, len(d.cards)+len(packet))
	cards = append(cards, d.cards[:i]...)
	cards = append(cards, packet...)
	cards = append(cards, d.cards[i:]...)
	d.cards = cards
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
