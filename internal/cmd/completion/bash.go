package completion

import (
	"github.com/spf13/cobra"
)

// NewCmdBash creates the bash completion command.
func NewCmdBash() *cobra.Command {
	return &cobra.Command{
		Use:   "bash",
		Short: "Generate bash completion script",
		Long: `Generate bash completion script for dtag.

To load completions in your current shell session:

  source <(dtag completion bash)

To load completions for every new session:

  # Linux
  dtag completion bash > /etc/bash_completion.d/dtag

  # macOS (requires bash-completion)
  dtag completion bash > $(brew --prefix)/etc/bash_completion.d/dtag`,
		Example: `  # Load in current session
  source <(dtag completion bash)

  # Install permanently (Linux)
  dtag completion bash | sudo tee /etc/bash_completion.d/dtag > /dev/null

  # Install permanently (macOS with Homebrew)
  dtag completion bash > $(brew --prefix)/etc/bash_completion.d/dtag`,
		Args:                  cobra.NoArgs,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Root().GenBashCompletion(cmd.OutOrStdout())
		},
	}
}
