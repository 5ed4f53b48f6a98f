package cmd

import (
	"log/slog"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
)

// rootOptions holds the persistent flags shared by every command
type rootOptions struct {
	sessionPath string
	seed        uint64
	verbose     bool
	noColor     bool

	logger *slog.Logger
}

// NewRootCmd builds the deckhand command tree
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "deckhand",
		Short: "Draw from and shuffle a tarot deck",
		Long: `Deckhand keeps a 78-card tarot deck between runs and lets you draw,
peek at and shuffle it the way you would by hand: overhand, strip, riffle,
or a full randomization.

The deck is saved in XDG_CACHE_HOME/deckhand/session.toml unless --session
is given.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if opts.verbose {
				level = slog.LevelDebug
			}
			opts.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

			if opts.noColor {
				colorize.NoColor = true
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.sessionPath, "session", "", "Path to the session file (default XDG_CACHE_HOME/deckhand/session.toml)")
	flags.Uint64Var(&opts.seed, "seed", 0, "Seed the shuffles for a reproducible result")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Log every random draw")
	flags.BoolVar(&opts.noColor, "no-color", false, "Disable colored output")

	root.AddCommand(
		newDrawCmd(opts),
		newPeekCmd(opts),
		newShowCmd(opts),
		newListCmd(opts),
		newShuffleCmd(opts),
		newResetCmd(opts),
		newValidateCmd(opts),
		newInitCmd(opts),
		newConfigCmd(opts),
	)

	return root
}

// Execute runs the deckhand command tree.
func Execute() error {
	return NewRootCmd().Execute()
}
