package completion

import (
	"github.com/spf13/cobra"
)

// NewCmdFish creates the fish completion command.
func NewCmdFish() *cobra.Command {
	return &cobra.Command{
		Use:   "fish",
		Short: "Generate fish completion script",
		Long: `Generate fish completion script for kindaxml.

To load completions in your current shell session:

  kindaxml completion fish | source

To load completions for every new session:

  kindaxml completion fish > ~/.config/fish/completions/kindaxml.fish`,
		Example: `  # Load in current session
  kindaxml completion fish | source

  # Install permanently
  kindaxml completion fish > ~/.config/fish/completions/kindaxml.fish`,
		Args:                  cobra.NoArgs,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
		},
	}
}
