package cmd

import (
	"fmt"
	"os"

	"github.com/arcanaland/deckhand/internal/validator"
	"github.com/spf13/cobra"
)

// newValidateCmd represents the validate command
func newValidateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [path]",
		Short: "Validate a saved session file",
		Long: `Validate checks that a session file holds a complete tarot deck: all 78
cards, each exactly once. Without a path the current session is checked.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sessionPath := opts.sessionFile()
			if len(args) == 1 {
				sessionPath = args[0]
			}

			// Check if path exists
			if _, err := os.Stat(sessionPath); os.IsNotExist(err) {
				return fmt.Errorf("session file not found: %s", sessionPath)
			}

			// Create validator and run validation
			v := validator.NewValidator(sessionPath)
			results, err := v.Validate()
			if err != nil {
				return fmt.Errorf("validation error: %w", err)
			}

			out := cmd.OutOrStdout()

			// Display validation results
			fmt.Fprintln(out, "Validation Results:")
			fmt.Fprintln(out, "-------------------")

			if len(results.Errors) == 0 {
				fmt.Fprintf(out, "✅ Session '%s' holds a complete deck.\n", sessionPath)
			} else {
				fmt.Fprintf(out, "❌ Session '%s' has %d validation errors:\n", sessionPath, len(results.Errors))
				for i, err := range results.Errors {
					fmt.Fprintf(out, "%d. %s\n", i+1, err)
				}
				return fmt.Errorf("validation failed")
			}

			if len(results.Warnings) > 0 {
				fmt.Fprintln(out, "\nWarnings:")
				for i, warn := range results.Warnings {
					fmt.Fprintf(out, "%d. %s\n", i+1, warn)
				}
			}

			return nil
		},
	}
}
