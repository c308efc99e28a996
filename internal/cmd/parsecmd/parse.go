// Package parsecmd provides the parse command for the kindaxml CLI.
package parsecmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/kindaxml"
	"github.com/open-cli-collective/kindaxml/internal/config"
	"github.com/open-cli-collective/kindaxml/internal/view"
)

type parseOptions struct {
	file    string
	output  string
	noColor bool
}

// NewCmdParse creates the parse command.
func NewCmdParse() *cobra.Command {
	opts := &parseOptions{}

	cmd := &cobra.Command{
		Use:   "parse",
		Short: "Parse tag-annotated text",
		Long: `Parse reads text containing XML-ish annotation tags (from stdin, or a
file given with --file), recovers from missing end tags, broken quotes,
and stray closers according to the current configuration, and renders
the resulting segments and markers.`,
		Example: `  # Parse from stdin
  echo 'See <cite id=3>the results' | kindaxml parse

  # Parse a transcript file
  kindaxml parse --file transcript.txt

  # Emit JSON
  kindaxml parse --file transcript.txt --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Only an explicit --output overrides the configured format;
			// otherwise runParse falls back to cfg.OutputFormat.
			if cmd.Flags().Changed("output") {
				opts.output, _ = cmd.Flags().GetString("output")
			}
			opts.noColor, _ = cmd.Flags().GetBool("no-color")
			return runParse(opts, nil)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "read input from this file instead of stdin")

	return cmd
}

func runParse(opts *parseOptions, stdin io.Reader) error {
	if err := view.ValidateFormat(opts.output); err != nil {
		return err
	}

	var input []byte
	var err error
	if opts.file != "" {
		input, err = os.ReadFile(opts.file)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", opts.file, err)
		}
	} else {
		if stdin == nil {
			stdin = os.Stdin
		}
		input, err = io.ReadAll(stdin)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
	}

	cfg, err := config.LoadWithEnv(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w (run 'kindaxml init' to configure)", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w (run 'kindaxml init' to configure)", err)
	}

	parserCfg, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("failed to build parser: %w", err)
	}

	format := opts.output
	if format == "" {
		format = cfg.OutputFormat
	}

	result, err := kindaxml.Parse(string(input), parserCfg)
	if err != nil {
		return fmt.Errorf("parse failed: %w", err)
	}

	renderer := view.NewRenderer(view.Format(format), opts.noColor)
	renderer.RenderParseResult(result)

	return nil
}
