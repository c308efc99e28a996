// Package init provides the init command for the kindaxml CLI.
package init

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/kindaxml/internal/config"
)

// NewCmdInit creates the init command.
func NewCmdInit() *cobra.Command {
	var (
		tags string
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize kindaxml configuration",
		Long: `Initialize kindaxml with a default set of recognized tags and recovery
rules.

This command walks through the knobs that shape parsing: which tags are
recognized, how unrecognized tags are handled, and which recovery strategy
applies when a tag is never explicitly closed. The configuration is saved
to ~/.config/kindaxml/config.yml.`,
		Example: `  # Interactive setup
  kindaxml init

  # Pre-populate the recognized tag list
  kindaxml init --tags cite,note,todo`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runInit(tags)
		},
	}

	cmd.Flags().StringVar(&tags, "tags", "", "comma-separated list of recognized tags")

	return cmd
}

func runInit(prefillTags string) error {
	configPath := config.DefaultConfigPath()

	if _, err := os.Stat(configPath); err == nil {
		var overwrite bool
		err := huh.NewConfirm().
			Title("Configuration already exists").
			Description(fmt.Sprintf("Overwrite %s?", configPath)).
			Value(&overwrite).
			Run()
		if err != nil {
			return err
		}
		if !overwrite {
			fmt.Println("Initialization cancelled.")
			return nil
		}
	}

	cfg := config.Default()

	var tagsCSV string
	if prefillTags != "" {
		tagsCSV = prefillTags
	} else {
		tagsCSV = strings.Join(cfg.RecognizedTags, ",")
	}
	trimPunctuation := true
	caseInsensitive := true

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Recognized tags").
				Description("Comma-separated tag names to recognize").
				Placeholder("cite,note,todo,claim,risk,code").
				Value(&tagsCSV).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("at least one recognized tag is required")
					}
					return nil
				}),

			huh.NewSelect[string]().
				Title("Unknown tag handling").
				Options(
					huh.NewOption("strip (drop unrecognized markup)", "strip"),
					huh.NewOption("passthrough (keep raw markup as text)", "passthrough"),
					huh.NewOption("treat_as_text (never treat '<' as a tag)", "treat_as_text"),
				).
				Value(&cfg.UnknownMode),

			huh.NewSelect[string]().
				Title("Default recovery strategy").
				Description("Used for a tag with no per-tag override").
				Options(
					huh.NewOption("retro_line", "retro_line"),
					huh.NewOption("forward_until_tag", "forward_until_tag"),
					huh.NewOption("forward_until_newline", "forward_until_newline"),
					huh.NewOption("forward_next_token", "forward_next_token"),
					huh.NewOption("noop", "noop"),
				).
				Value(&cfg.DefaultRecovery),

			huh.NewConfirm().
				Title("Trim punctuation on retro spans?").
				Value(&trimPunctuation),

			huh.NewConfirm().
				Title("Case-insensitive tag matching?").
				Value(&caseInsensitive),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	cfg.RecognizedTags = splitAndTrim(tagsCSV)
	cfg.TrimPunctuation = &trimPunctuation
	caseSensitive := !caseInsensitive
	cfg.CaseSensitiveTags = &caseSensitive

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if err := cfg.Save(configPath); err != nil {
		return err
	}

	fmt.Printf("\nConfiguration saved to %s\n", configPath)
	fmt.Println("\nYou're all set! Try running:")
	fmt.Println("  kindaxml parse --file transcript.txt")

	return nil
}

func splitAndTrim(csv string) []string {
	parts := strings.Split(csv, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
