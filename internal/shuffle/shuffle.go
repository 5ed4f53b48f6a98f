// Package shuffle implements the ways a tarot deck can be shuffled by
// hand. Every shuffle keeps the same cards in the deck and only changes
// their order and orientation.
package shuffle

import (
	"errors"
	"fmt"
	"strings"

	"github.com/arcanaland/deckhand/internal/card"
	"github.com/arcanaland/deckhand/internal/deck"
)

// ErrUnknownKind is returned when a shuffle name is not recognised
var ErrUnknownKind = errors.New("unknown shuffle kind")

// Shuffler reorders a deck in place using randomness from rng.
// Shufflers hold no state and never consume randomness on an empty deck.
type Shuffler interface {
	Shuffle(d *deck.Deck, rng RNG)
}

// Kind selects one of the shuffles
type Kind int

const (
	KindRandom Kind = iota
	KindOverhand
	KindStrip
	KindRiffle
)

var kindNames = [...]string{
	KindRandom:   "random",
	KindOverhand: "overhand",
	KindStrip:    "strip",
	KindRiffle:   "riffle",
}

// Kinds lists every shuffle kind
func Kinds() []Kind {
	return []Kind{KindRandom, KindOverhand, KindStrip, KindRiffle}
}

func (k Kind) String() string {
	if k < KindRandom || k > KindRiffle {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind parses a shuffle kind from its name, ignoring case
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds() {
		if strings.EqualFold(s, kindNames[k]) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q (expected one of %s)", ErrUnknownKind, s, strings.Join(kindNames[:], ", "))
}

// Shuffler returns the shuffle implementing k
func (k Kind) Shuffler() Shuffler {
	switch k {
	case KindOverhand:
		return Overhand{}
	case KindStrip:
		return Strip{}
	case KindRiffle:
		return Riffle{}
	default:
		return Random{}
	}
}

// Random fully randomizes the deck: a uniform permutation, then each card
// independently reversed with probability one half.
type Random struct{}

func (Random) Shuffle(d *deck.Deck, rng RNG) {
	n := d.Len()
	if n == 0 {
		return
	}

	// Fisher-Yates
	for i := n - 1; i > 0; i-- {
		d.Swap(i, rng.Intn(i+1))
	}

	for i := 0; i < n; i++ {
		if coin(rng) {
			d.At(i).Reverse()
		}
	}
}

// Overhand picks a cut c in [0, n) and moves the top card to the bottom
// c+1 times, rotating the deck. Orientation is untouched.
type Overhand struct{}

func (Overhand) Shuffle(d *deck.Deck, rng RNG) {
	n := d.Len()
	if n == 0 {
		return
	}

	cut := rng.Intn(n)
	for i := 0; i <= cut; i++ {
		c, _ := d.Draw()
		d.Put(c)
	}
}

// Strip lifts a packet of c cards off the top, c in [0, n/2), and slips it
// back intact at a random position in the rest of the deck, anywhere from
// the top to the bottom. Orientation is untouched.
type Strip struct{}

func (Strip) Shuffle(d *deck.Deck, rng RNG) {
	n := d.Len()
	if n < 2 {
		return
	}

	cut := rng.Intn(n / 2)
	packet := d.Take(0, cut)
	d.Insert(rng.Intn(d.Len()+1), packet...)
}

// Riffle cuts the deck at c in [0, n) into packets A (above the cut) and B
// (the rest). Each packet is turned over with probability one half, then
// the packets are interleaved one card at a time, starting with either
// packet, and whatever is left of the longer packet goes underneath.
type Riffle struct{}

func (Riffle) Shuffle(d *deck.Deck, rng RNG) {
	n := d.Len()
	if n == 0 {
		return
	}

	cut := rng.Intn(n)
	b := d.Take(cut, n-cut)
	a := d.Take(0, cut)

	if coin(rng) {
		reverseAll(a)
	}
	if coin(rng) {
		reverseAll(b)
	}

	if coin(rng) {
		d.Insert(0, interleave(b, a)...)
	} else {
		d.Insert(0, interleave(a, b)...)
	}
}

func reverseAll(packet []card.Card) {
	for i := range packet {
		packet[i].Reverse()
	}
}

// interleave alternates cards from first and second, starting with first,
// then appends the remainder of whichever is longer.
func interleave(first, second []card.Card) []card.Card {
	out := make([]card.Card, 0, len(first)+len(second))
	i := 0
	for ; i < len(first) && i < len(second); i++ {
		out = append(out, first[i], second[i])
	}
	out = append(out, first[i:]...)
	out = append(out, second[i:]...)
	return out
}
