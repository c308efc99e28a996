package configcmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/kindaxml"
	"github.com/open-cli-collective/kindaxml/internal/config"
)

// NewCmdTest creates the config test command.
func NewCmdTest() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "test",
		Short: "Validate the current configuration",
		Long: `Build a parser from the current configuration and run it against a
small built-in smoke-test input, reporting whether the configuration is
usable.`,
		Example: `  # Validate the configuration
  kindaxml config test`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			noColor, _ := cmd.Flags().GetBool("no-color")
			return runTest(noColor)
		},
	}

	return cmd
}

func runTest(noColor bool, cfgs ...*config.Config) error {
	if noColor {
		color.NoColor = true
	}

	var cfg *config.Config
	if len(cfgs) > 0 && cfgs[0] != nil {
		cfg = cfgs[0]
	} else {
		loaded, err := config.LoadWithEnv(config.DefaultConfigPath())
		if err != nil {
			return fmt.Errorf("failed to load config: %w (run 'kindaxml init' to configure)", err)
		}
		cfg = loaded
	}

	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)

	if err := cfg.Validate(); err != nil {
		red.Println("✗ Invalid configuration:", err)
		return fmt.Errorf("invalid config: %w (run 'kindaxml init' to configure)", err)
	}
	green.Println("✓ Configuration is valid")

	parsed, err := cfg.Build()
	if err != nil {
		red.Println("✗ Failed to build parser:", err)
		return err
	}

	tag := cfg.RecognizedTags[0]
	sample := fmt.Sprintf("Testing <%s>the parser</%s>.", tag, tag)
	result, err := kindaxml.Parse(sample, parsed)
	if err != nil {
		red.Println("✗ Smoke test failed:", err)
		return err
	}
	green.Println("✓ Smoke-test parse succeeded")
	fmt.Printf("\n%q -> %d segment(s), %d marker(s)\n", sample, len(result.Segments), len(result.Markers))

	return nil
}
