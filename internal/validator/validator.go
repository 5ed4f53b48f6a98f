package validator

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/arcanaland/deckhand/internal/card"
	"github.com/arcanaland/deckhand/internal/deck"
	"github.com/arcanaland/deckhand/internal/session"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

type Validator struct {
	SessionPath string
	Results     ValidationResults

	cards []card.Card
}

func NewValidator(sessionPath string) *Validator {
	return &Validator{
		SessionPath: sessionPath,
		Results:     ValidationResults{},
	}
}

// Validate checks that the session file holds exactly one of each of the 78
// cards. It returns an error only when the file cannot be read at all.
func (v *Validator) Validate() (ValidationResults, error) {
	if err := v.validateSessionToml(); err != nil {
		return v.Results, err
	}

	v.validateDeck()
	v.validateMajorNames()

	return v.Results, nil
}

func (v *Validator) validateSessionToml() error {
	if _, err := os.Stat(v.SessionPath); os.IsNotExist(err) {
		return fmt.Errorf("session file not found: %s", v.SessionPath)
	}

	var file session.File
	if _, err := toml.DecodeFile(v.SessionPath, &file); err != nil {
		return fmt.Errorf("error parsing session file: %w", err)
	}

	for i, record := range file.Deck.Cards {
		c, err := record.Card()
		if err != nil {
			v.Results.Errors = append(v.Results.Errors, fmt.Sprintf("card %d: %v", i, err))
			continue
		}
		v.cards = append(v.cards, c)
	}
	return nil
}

// validateDeck checks the cards form exactly one complete deck
func (v *Validator) validateDeck() {
	v.Results.Errors = append(v.Results.Errors, deck.Problems(v.cards)...)
}

// validateMajorNames warns about major arcana whose names differ from the
// default names
func (v *Validator) validateMajorNames() {
	for _, c := range v.cards {
		m, ok := c.Arcana.(card.Major)
		if !ok {
			continue
		}
		if want := card.MajorArcanaNames[m.Order]; m.Name != want {
			v.Results.Warnings = append(v.Results.Warnings,
				fmt.Sprintf("major arcana %02d is named %q (default: %q)", m.Order, m.Name, want))
		}
	}
}
