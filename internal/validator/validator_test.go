package validator

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arcanaland/deckhand/internal/card"
	"github.com/arcanaland/deckhand/internal/deck"
	"github.com/arcanaland/deckhand/internal/session"
	"github.com/arcanaland/deckhand/internal/shuffle"
)

func writeSession(t *testing.T, s *session.Session) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session.toml")
	if err := s.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	return path
}

func TestValidate_ShuffledDeck(t *testing.T) {
	s := session.New(nil)
	rng := shuffle.NewRNG(5)
	for _, k := range shuffle.Kinds() {
		k.Shuffler().Shuffle(s.Deck, rng)
	}

	results, err := NewValidator(writeSession(t, s)).Validate()
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if len(results.Errors) != 0 || len(results.Warnings) != 0 {
		t.Errorf("unexpected results: %+v", results)
	}
}

func TestValidate_RenamedMajor(t *testing.T) {
	s := session.New(deck.Names{8: "Force"})

	results, err := NewValidator(writeSession(t, s)).Validate()
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if len(results.Errors) != 0 {
		t.Errorf("renaming should not be an error: %v", results.Errors)
	}
	if len(results.Warnings) != 1 || !strings.Contains(results.Warnings[0], `"Force"`) {
		t.Errorf("expected one warning about Force, got %v", results.Warnings)
	}
}

func TestValidate_MissingAndDuplicate(t *testing.T) {
	cards := deck.New().Cards()
	cards[77] = cards[22] // King of Pentacles replaced by a second Ace of Wands
	s := &session.Session{Deck: deck.FromCards(cards)}

	results, err := NewValidator(writeSession(t, s)).Validate()
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}

	joined := strings.Join(results.Errors, "\n")
	if !strings.Contains(joined, "missing card: King of Pentacles") {
		t.Errorf("expected missing King of Pentacles, got:\n%s", joined)
	}
	if !strings.Contains(joined, "duplicate card: Ace of Wands appears 2 times") {
		t.Errorf("expected duplicate Ace of Wands, got:\n%s", joined)
	}
}

func TestValidate_ShortDeck(t *testing.T) {
	s := &session.Session{Deck: deck.FromCards([]card.Card{
		card.New(card.Minor{Rank: card.Ace, Suit: card.Cups}),
	})}

	results, err := NewValidator(writeSession(t, s)).Validate()
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if len(results.Errors) == 0 || results.Errors[0] != "deck has 1 cards, expected 78" {
		t.Errorf("unexpected errors: %v", results.Errors)
	}
}

func TestValidate_BadRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.toml")
	data := "[[deck.cards]]\ntype = \"Minor\"\nrank = \"Jack\"\nsuit = \"Cups\"\norientation = \"Upright\"\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	results, err := NewValidator(path).Validate()
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if len(results.Errors) == 0 || !strings.HasPrefix(results.Errors[0], "card 0:") {
		t.Errorf("expected a card 0 error, got %v", results.Errors)
	}
}

func TestValidate_MissingFile(t *testing.T) {
	_, err := NewValidator(filepath.Join(t.TempDir(), "nope.toml")).Validate()
	if err == nil {
		t.Error("expected an error for a missing file")
	}
}
