package cmd

import (
	"fmt"
	"io"
	"strconv"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/deckhand/internal/card"
)

func newShowCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show [position]",
		Short: "Display information about the card at a position in the deck",
		Long: `Show displays detailed information about one card without moving it.
Positions count from 1 at the top of the deck; the default is the top card.

Examples:
  deckhand show
  deckhand show 78`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.loadState()
			if err != nil {
				return err
			}

			position := 1
			if len(args) == 1 {
				if position, err = strconv.Atoi(args[0]); err != nil {
					return fmt.Errorf("invalid position %q: %w", args[0], err)
				}
			}
			if position < 1 || position > s.deck().Len() {
				return fmt.Errorf("position %d outside the deck (1-%d)", position, s.deck().Len())
			}

			displayCard(cmd.OutOrStdout(), *s.deck().At(position - 1), position)
			return nil
		},
	}
}

// displayCard displays the card information
func displayCard(w io.Writer, c card.Card, position int) {
	var infoLines []string

	infoLines = append(infoLines, colorize.CyanString("Card:        ")+formatCard(c))
	infoLines = append(infoLines, colorize.CyanString("Position:    ")+colorize.HiWhiteString("%d", position))

	switch a := c.Arcana.(type) {
	case card.Major:
		infoLines = append(infoLines, colorize.CyanString("Type:        ")+
			colorize.HiWhiteString("Major Arcana · %s", card.Numeral(a.Order)))
		infoLines = append(infoLines, colorize.CyanString("Name:        ")+colorize.HiWhiteString("%s", a.Name))
	case card.Minor:
		infoLines = append(infoLines, colorize.CyanString("Type:        ")+
			colorize.HiWhiteString("Minor Arcana"))
		infoLines = append(infoLines, colorize.CyanString("Suit:        ")+
			colorize.HiWhiteString("%s · %s", a.Suit, getSuitSymbol(a.Suit)))
		infoLines = append(infoLines, colorize.CyanString("Rank:        ")+colorize.HiWhiteString("%s", a.Rank))
	}

	infoLines = append(infoLines, colorize.CyanString("Orientation: ")+colorize.HiWhiteString("%s", c.Orientation))

	fmt.Fprintln(w)
	for _, line := range infoLines {
		fmt.Fprintln(w, "  "+line)
	}
	fmt.Fprintln(w)
}
