package completion

import (
	"github.com/spf13/cobra"
)

// NewCmdBash creates the bash completion command.
func NewCmdBash() *cobra.Command {
	return &cobra.Command{
		Use:   "bash",
		Short: "Generate bash completion script",
		Long: `Generate bash completion script for kindaxml.

To load completions in your current shell session:

  source <(kindaxml completion bash)

To load completions for every new session:

  # Linux
  kindaxml completion bash > /etc/bash_completion.d/kindaxml

  # macOS (requires bash-completion)
  kindaxml completion bash > $(brew --prefix)/etc/bash_completion.d/kindaxml`,
		Example: `  # Load in current session
  source <(kindaxml completion bash)

  # Install permanently (Linux)
  kindaxml completion bash | sudo tee /etc/bash_completion.d/kindaxml > /dev/null

  # Install permanently (macOS with Homebrew)
  kindaxml completion bash > $(brew --prefix)/etc/bash_completion.d/kindaxml`,
		Args:                  cobra.NoArgs,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Root().GenBashCompletion(cmd.OutOrStdout())
		},
	}
}
