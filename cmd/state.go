package cmd

import (
	"errors"
	"fmt"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/deckhand/internal/config"
	"github.com/arcanaland/deckhand/internal/deck"
	"github.com/arcanaland/deckhand/internal/session"
	"github.com/arcanaland/deckhand/internal/shuffle"
)

// state is the loaded config and session a command works on
type state struct {
	opts    *rootOptions
	config  *config.Config
	names   deck.Names
	session *session.Session
	path    string
}

func (o *rootOptions) sessionFile() string {
	if o.sessionPath != "" {
		return o.sessionPath
	}
	return config.GetSessionFilePath()
}

// loadConfig loads the config and names file without touching the saved
// session.
func (o *rootOptions) loadConfig() (*state, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	if !cfg.Color {
		colorize.NoColor = true
	}

	names, err := cfg.Names()
	if err != nil {
		return nil, err
	}

	return &state{opts: o, config: cfg, names: names, path: o.sessionFile()}, nil
}

// loadState loads the config and the saved session, starting from the
// canonical deck if there is no saved session yet. A session that does not
// hold a complete deck is refused and left on disk as it is.
func (o *rootOptions) loadState() (*state, error) {
	s, err := o.loadConfig()
	if err != nil {
		return nil, err
	}

	s.session, err = session.Load(s.path)
	if errors.Is(err, session.ErrNoSession) {
		o.logger.Debug("no saved session, starting from a new deck", "path", s.path)
		s.session = session.New(s.names)
		return s, nil
	}
	if errors.Is(err, session.ErrInvalidDeck) {
		return nil, fmt.Errorf("%w\nrun 'deckhand validate' for details or 'deckhand reset' to start a new deck", err)
	}
	if err != nil {
		return nil, fmt.Errorf("error loading session %s: %w", s.path, err)
	}

	return s, nil
}

func (s *state) deck() *deck.Deck {
	return s.session.Deck
}

func (s *state) save() error {
	if err := s.session.Save(s.path); err != nil {
		return err
	}
	s.opts.logger.Debug("session saved", "path", s.path, "cards", s.deck().Len())
	return nil
}

// rng returns the randomness source for this run, seeded if --seed was
// given, logging each draw at debug level.
func (o *rootOptions) rng(cmd *cobra.Command) shuffle.RNG {
	src := shuffle.DefaultRNG()
	if cmd.Flags().Changed("seed") {
		src = shuffle.NewRNG(o.seed)
	}
	return shuffle.LoggingRNG{RNG: src, Logger: o.logger}
}
