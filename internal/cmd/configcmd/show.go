package configcmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/kindaxml/internal/config"
)

// NewCmdShow creates the config show command.
func NewCmdShow() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display current configuration",
		Long:  `Display the current kindaxml configuration.`,
		Example: `  # Show current config
  kindaxml config show`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			noColor, _ := cmd.Flags().GetBool("no-color")
			return runShow(noColor)
		},
	}

	return cmd
}

func runShow(noColor bool) error {
	if noColor {
		color.NoColor = true
	}

	configPath := config.DefaultConfigPath()

	cfg, fileErr := config.Load(configPath)
	if fileErr != nil {
		cfg = config.Default()
	}

	bold := color.New(color.Bold)
	dim := color.New(color.Faint)

	printField := func(label, value string) {
		_, _ = bold.Printf("%-20s", label+":")
		if value == "" {
			_, _ = dim.Println("-")
			return
		}
		fmt.Println(value)
	}

	printField("Recognized tags", strings.Join(cfg.RecognizedTags, ", "))
	printField("Unknown mode", cfg.UnknownMode)
	printField("Default recovery", cfg.DefaultRecovery)
	for tag, strategy := range cfg.PerTagRecovery {
		printField(fmt.Sprintf("  %s ->", tag), strategy)
	}
	printField("Stray end tag policy", cfg.StrayEndTagPolicy)
	printField("Output format", cfg.OutputFormat)

	fmt.Println()
	_, _ = dim.Printf("Config file: %s\n", configPath)
	if fileErr != nil {
		_, _ = dim.Println("(file not found, showing defaults)")
	}

	return nil
}
