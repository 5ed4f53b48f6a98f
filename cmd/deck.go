package cmd

import (
	"fmt"
	"strconv"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/deckhand/internal/session"
)

// newDrawCmd represents the draw command
func newDrawCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "draw [n]",
		Short: "Draw cards from the top of the deck",
		Long: `Draw shows the top n cards (default 1) in the order they are drawn,
then returns them to the bottom of the deck in that same order.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n := 1
			if len(args) == 1 {
				var err error
				if n, err = strconv.Atoi(args[0]); err != nil {
					return fmt.Errorf("invalid number of cards %q: %w", args[0], err)
				}
			}

			s, err := opts.loadState()
			if err != nil {
				return err
			}

			cards, ok := s.deck().DrawN(n)
			if !ok {
				return fmt.Errorf("cannot draw %d cards from a deck of %d", n, s.deck().Len())
			}

			out := cmd.OutOrStdout()
			for i, c := range cards {
				printCard(out, fmt.Sprintf("%d.", i+1), c)
			}

			s.deck().PutN(cards)
			opts.logger.Debug("cards drawn and returned", "count", n)
			return s.save()
		},
	}
}

// newPeekCmd represents the peek command
func newPeekCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "peek",
		Short: "Show the top card without drawing it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.loadState()
			if err != nil {
				return err
			}

			c, ok := s.deck().Peek()
			if !ok {
				return fmt.Errorf("the deck is empty")
			}

			printCard(cmd.OutOrStdout(), "Top:", c)
			return nil
		},
	}
}

// newResetCmd represents the reset command
func newResetCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Put the deck back in its original order",
		Long: `Reset replaces the saved session with a new deck in its original order.
It does not read the saved session, so it also recovers from a damaged one.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.loadConfig()
			if err != nil {
				return err
			}

			s.session = session.New(s.names)
			if err := s.save(); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "The deck has been reset.")
			return nil
		},
	}
}

// newListCmd represents the list command
func newListCmd(opts *rootOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the deck from top to bottom",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.loadState()
			if err != nil {
				return err
			}

			cards := s.deck().Cards()
			if limit > 0 && limit < len(cards) {
				cards = cards[:limit]
			}

			entries := make([]string, len(cards))
			for i, c := range cards {
				entries[i] = colorize.CyanString("%2d.", i+1) + " " + formatCard(c)
			}

			out := cmd.OutOrStdout()
			printColumns(out, entries, terminalWidth(out))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Only list the top n cards")
	return cmd
}
