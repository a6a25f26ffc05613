package completion

import (
	"github.com/spf13/cobra"
)

// NewCmdFish creates the fish completion command.
func NewCmdFish() *cobra.Command {
	return &cobra.Command{
		Use:   "fish",
		Short: "Generate fish completion script",
		Long: `Generate fish completion script for dtag.

To load completions in your current shell session:

  dtag completion fish | source

To load completions for every new session:

  dtag completion fish > ~/.config/fish/completions/dtag.fish`,
		Example: `  # Load in current session
  dtag completion fish | source

  # Install permanently
  dtag completion fish > ~/.config/fish/completions/dtag.fish`,
		Args:                  cobra.NoArgs,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
		},
	}
}
