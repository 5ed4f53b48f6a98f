// Package session saves and restores a deck between runs as a TOML file.
package session

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/arcanaland/deckhand/internal/card"
	"github.com/arcanaland/deckhand/internal/deck"
)

var (
	ErrNoSession   = errors.New("no saved session")
	ErrInvalidCard = errors.New("invalid card record")
	ErrInvalidDeck = errors.New("session does not hold a complete deck")
)

// Session is the persisted state of a deck
type Session struct {
	Deck *deck.Deck
}

// New returns a session holding the canonical deck built with names
func New(names deck.Names) *Session {
	return &Session{Deck: deck.NewWithNames(names)}
}

// File is the on-disk layout of a session
type File struct {
	Deck DeckRecord `toml:"deck"`
}

// DeckRecord lists the cards of a deck, top first
type DeckRecord struct {
	Cards []CardRecord `toml:"cards"`
}

// CardRecord is one card, tagged by Type ("Major" or "Minor"). Rank and
// Suit hold either the canonical name or the ordinal.
type CardRecord struct {
	Type        string `toml:"type"`
	Order       *int   `toml:"order"`
	Name        string `toml:"name,omitempty"`
	Rank        any    `toml:"rank"`
	Suit        any    `toml:"suit"`
	Orientation string `toml:"orientation"`
}

const (
	typeMajor = "Major"
	typeMinor = "Minor"

	orientationUpright = "Upright"
	orientationReverse = "Reverse"
)

// Marshal encodes the session as TOML
func (s *Session) Marshal() ([]byte, error) {
	f := File{}
	for _, c := range s.Deck.Cards() {
		f.Deck.Cards = append(f.Deck.Cards, recordFromCard(c))
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(f); err != nil {
		return nil, fmt.Errorf("error encoding session: %w", err)
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes a session from TOML
func Unmarshal(data []byte) (*Session, error) {
	var f File
	if _, err := toml.Decode(string(data), &f); err != nil {
		return nil, fmt.Errorf("error decoding session: %w", err)
	}

	cards := make([]card.Card, 0, len(f.Deck.Cards))
	for i, r := range f.Deck.Cards {
		c, err := r.Card()
		if err != nil {
			return nil, fmt.Errorf("card %d: %w", i, err)
		}
		cards = append(cards, c)
	}

	return &Session{Deck: deck.FromCards(cards)}, nil
}

// Load reads a session file. It returns ErrNoSession if the file does not
// exist and ErrInvalidDeck if it does not hold exactly one of each card.
func Load(path string) (*Session, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, fmt.Errorf("error reading session: %w", err)
	}

	s, err := Unmarshal(data)
	if err != nil {
		return nil, err
	}

	if problems := deck.Problems(s.Deck.Cards()); len(problems) > 0 {
		return nil, fmt.Errorf("%w: %s (%d problems)", ErrInvalidDeck, problems[0], len(problems))
	}
	return s, nil
}

// Save writes the session to path, creating its directory if needed. The
// file is replaced in one rename, so an interrupted save leaves the previous
// session intact.
func (s *Session) Save(path string) error {
	data, err := s.Marshal()
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating session directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".session-*.toml")
	if err != nil {
		return fmt.Errorf("error creating temporary session file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("error writing session: %w", err)
	}
	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		return fmt.Errorf("error writing session: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("error writing session: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("error replacing session: %w", err)
	}
	return nil
}

func recordFromCard(c card.Card) CardRecord {
	r := CardRecord{Orientation: orientationUpright}
	if c.Reversed() {
		r.Orientation = orientationReverse
	}

	switch a := c.Arcana.(type) {
	case card.Major:
		order := a.Order
		r.Type = typeMajor
		r.Order = &order
		r.Name = a.Name
	case card.Minor:
		r.Type = typeMinor
		r.Rank = a.Rank.String()
		r.Suit = a.Suit.String()
	}
	return r
}

// Card converts the record back into a card
func (r CardRecord) Card() (card.Card, error) {
	var c card.Card

	switch r.Orientation {
	case orientationUpright:
		c.Orientation = card.Upright
	case orientationReverse, "Reversed":
		c.Orientation = card.Reversed
	default:
		return c, fmt.Errorf("%w: orientation %q", ErrInvalidCard, r.Orientation)
	}

	switch r.Type {
	case typeMajor:
		if r.Order == nil {
			return c, fmt.Errorf("%w: major card without order", ErrInvalidCard)
		}
		if *r.Order < 0 || *r.Order >= card.NumMajor {
			return c, fmt.Errorf("%w: major order %d outside 0-21", ErrInvalidCard, *r.Order)
		}
		c.Arcana = card.Major{Order: *r.Order, Name: r.Name}
	case typeMinor:
		rank, err := parseRank(r.Rank)
		if err != nil {
			return c, err
		}
		suit, err := parseSuit(r.Suit)
		if err != nil {
			return c, err
		}
		c.Arcana = card.Minor{Rank: rank, Suit: suit}
	default:
		return c, fmt.Errorf("%w: type %q", ErrInvalidCard, r.Type)
	}

	return c, nil
}

func parseRank(v any) (card.Rank, error) {
	switch v := v.(type) {
	case string:
		if rank, ok := card.ParseRank(v); ok {
			return rank, nil
		}
	case int64:
		if rank := card.Rank(v); rank.Valid() {
			return rank, nil
		}
	}
	return 0, fmt.Errorf("%w: rank %v", ErrInvalidCard, v)
}

func parseSuit(v any) (card.Suit, error) {
	switch v := v.(type) {
	case string:
		if suit, ok := card.ParseSuit(v); ok {
			return suit, nil
		}
	case int64:
		if suit := card.Suit(v); suit.Valid() {
			return suit, nil
		}
	}
	return 0, fmt.Errorf("%w: suit %v", ErrInvalidCard, v)
}
