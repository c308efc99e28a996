// Package root provides the root command for the kindaxml CLI.
package root

import (
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/kindaxml/internal/cmd/completion"
	"github.com/open-cli-collective/kindaxml/internal/cmd/configcmd"
	initcmd "github.com/open-cli-collective/kindaxml/internal/cmd/init"
	"github.com/open-cli-collective/kindaxml/internal/cmd/parsecmd"
	"github.com/open-cli-collective/kindaxml/internal/cmd/reportcmd"
	"github.com/open-cli-collective/kindaxml/internal/version"
)

// NewCmdRoot creates the root command for kindaxml.
func NewCmdRoot() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kindaxml",
		Short: "A tolerant tag-annotation parser for LLM-emitted text",
		Long: `kindaxml parses XML-ish annotation tags out of text produced by language
models, recovering deterministically from the mistakes models make:
missing end tags, missing closing quotes, stray closers, and unknown
tags.

Get started by running: kindaxml init`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.Version,
	}

	// Global flags
	cmd.PersistentFlags().StringP("config", "c", "", "config file (accepted but not read: commands always use $XDG_CONFIG_HOME/kindaxml/config.yml, else ~/.config/kindaxml/config.yml)")
	cmd.PersistentFlags().StringP("output", "o", "table", "output format: table, json, plain")
	cmd.PersistentFlags().Bool("no-color", false, "disable colored output")

	// Set version template
	cmd.SetVersionTemplate("kindaxml version {{.Version}} (commit: " + version.Commit + ", built: " + version.Date + ")\n")

	// Subcommands
	cmd.AddCommand(initcmd.NewCmdInit())
	cmd.AddCommand(parsecmd.NewCmdParse())
	cmd.AddCommand(reportcmd.NewCmdReport())
	cmd.AddCommand(configcmd.NewCmdConfig())
	cmd.AddCommand(completion.NewCmdCompletion())

	return cmd
}
