package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcanaland/deckhand/internal/config"
	"github.com/arcanaland/deckhand/internal/shuffle"
)

// newInitCmd represents the init command
func newInitCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the config file and a fresh session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			// Initialize config
			s, err := opts.loadState()
			if err != nil {
				return fmt.Errorf("error initializing config: %w", err)
			}
			fmt.Fprintln(out, "Config file initialized at:", config.GetConfigFilePath())

			if err := s.save(); err != nil {
				return fmt.Errorf("error initializing session: %w", err)
			}
			fmt.Fprintln(out, "Session initialized at:", s.path)
			return nil
		},
	}
}

// newConfigCmd represents the config command group
func newConfigCmd(opts *rootOptions) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the deckhand configuration",
	}

	setShuffleCmd := &cobra.Command{
		Use:       "set-shuffle [kind]",
		Short:     "Set the shuffle used when none is named",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"random", "overhand", "strip", "riffle"},
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := shuffle.ParseKind(args[0])
			if err != nil {
				return err
			}

			if err := config.SetDefaultShuffle(kind); err != nil {
				return fmt.Errorf("error setting default shuffle: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Default shuffle set to: %s\n", kind)
			return nil
		},
	}

	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print the config and session file locations",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "Config: ", config.GetConfigFilePath())
			fmt.Fprintln(cmd.OutOrStdout(), "Session:", opts.sessionFile())
		},
	}

	configCmd.AddCommand(setShuffleCmd, pathCmd)
	return configCmd
}
