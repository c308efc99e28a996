// Package reportcmd provides the report command for the kindaxml CLI.
package reportcmd

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/open-cli-collective/kindaxml"
	"github.com/open-cli-collective/kindaxml/internal/config"
)

// mdRenderer is a pre-configured goldmark instance with GFM table support,
// used to turn a segment/marker summary into an HTML report.
var mdRenderer = goldmark.New(
	goldmark.WithExtensions(extension.Table),
)

type reportOptions struct {
	file   string
	format string
}

// NewCmdReport creates the report command.
func NewCmdReport() *cobra.Command {
	opts := &reportOptions{}

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Render a parse summary as Markdown or HTML",
		Long: `Report parses text (from stdin, or a file given with --file) and
renders a Markdown table of segments and annotations, optionally
converted to HTML.`,
		Example: `  # Markdown report to stdout
  kindaxml report --file transcript.txt

  # HTML report
  kindaxml report --file transcript.txt --format html`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runReport(opts, os.Stdout, nil)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "read input from this file instead of stdin")
	cmd.Flags().StringVar(&opts.format, "format", "markdown", "report format: markdown, html")

	return cmd
}

func runReport(opts *reportOptions, out io.Writer, stdin io.Reader) error {
	if opts.format != "markdown" && opts.format != "html" {
		return fmt.Errorf("invalid report format %q: must be markdown or html", opts.format)
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

	result, err := kindaxml.Parse(string(input), parserCfg)
	if err != nil {
		return fmt.Errorf("parse failed: %w", err)
	}

	markdown := renderMarkdownTable(result)

	if opts.format == "markdown" {
		_, err := io.WriteString(out, markdown)
		return err
	}

	var html bytes.Buffer
	if err := mdRenderer.Convert([]byte(markdown), &html); err != nil {
		return fmt.Errorf("failed to render HTML: %w", err)
	}
	_, err = out.Write(html.Bytes())
	return err
}

func renderMarkdownTable(result kindaxml.ParseResult) string {
	var b strings.Builder

	b.WriteString("# Parse Report\n\n")
	b.WriteString("| Text | Annotations |\n")
	b.WriteString("| --- | --- |\n")
	for _, seg := range result.Segments {
		tags := make([]string, 0, len(seg.Annotations))
		for _, ann := range seg.Annotations {
			tags = append(tags, ann.Tag)
		}
		b.WriteString("| ")
		b.WriteString(escapeTableCell(seg.Text))
		b.WriteString(" | ")
		b.WriteString(strings.Join(tags, ", "))
		b.WriteString(" |\n")
	}

	if len(result.Markers) > 0 {
		b.WriteString("\n## Markers\n\n")
		b.WriteString("| Position | Tag |\n")
		b.WriteString("| --- | --- |\n")
		for _, m := range result.Markers {
			fmt.Fprintf(&b, "| %d | %s |\n", m.Pos, m.Annotation.Tag)
		}
	}

	return b.String()
}

func escapeTableCell(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	s = strings.ReplaceAll(s, "\n", " ")
	return s
}
