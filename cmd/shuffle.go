package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcanaland/deckhand/internal/shuffle"
)

func newShuffleCmd(opts *rootOptions) *cobra.Command {
	var times int

	cmd := &cobra.Command{
		Use:   "shuffle [random|overhand|strip|riffle]",
		Short: "Shuffle the deck",
		Long: `Shuffle the deck in place. Without a kind, the default_shuffle from the
config file is used.

  random    every card goes anywhere, each one upright or reversed at random
  overhand  cut the deck and move the top over to the bottom
  strip     lift a packet off the top and slip it back in lower down
  riffle    split the deck in two and interleave the halves, possibly
            turning one or both halves around`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"random", "overhand", "strip", "riffle"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if times < 1 {
				return fmt.Errorf("--times must be at least 1, got %d", times)
			}

			s, err := opts.loadState()
			if err != nil {
				return err
			}

			var kind shuffle.Kind
			if len(args) == 1 {
				kind, err = shuffle.ParseKind(args[0])
			} else {
				kind, err = s.config.ShuffleKind()
			}
			if err != nil {
				return err
			}

			rng := opts.rng(cmd)
			shuffler := kind.Shuffler()
			for i := 0; i < times; i++ {
				shuffler.Shuffle(s.deck(), rng)
			}
			opts.logger.Info("deck shuffled", "kind", kind, "times", times)

			if err := s.save(); err != nil {
				return err
			}

			if times == 1 {
				fmt.Fprintf(cmd.OutOrStdout(), "Shuffled the deck (%s).\n", kind)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Shuffled the deck %d times (%s).\n", times, kind)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&times, "times", "t", 1, "Number of times to shuffle")
	return cmd
}
