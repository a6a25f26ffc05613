// Package root provides the root command for the dtag CLI.
package root

import (
	"github.com/spf13/cobra"

	"github.com/open-doc-collective/doctag/internal/cmd/completion"
	"github.com/open-doc-collective/doctag/internal/cmd/expand"
	"github.com/open-doc-collective/doctag/internal/cmd/importcmd"
	"github.com/open-doc-collective/doctag/internal/cmd/initcmd"
	"github.com/open-doc-collective/doctag/internal/cmd/render"
	"github.com/open-doc-collective/doctag/internal/cmd/tags"
	"github.com/open-doc-collective/doctag/internal/version"
)

// NewCmdRoot creates the root command for dtag.
func NewCmdRoot() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dtag",
		Short: "A tag-expansion tool for documentation text",
		Long: `dtag expands @-prefixed tags embedded in documentation text.

Tags like @code(name), @link(url label) and @b(text) are resolved against
a registry of handlers and replaced with rendered markup; text between
tags flows through format-specific escaping and paragraph insertion.

Get started by running: dtag init`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.Version,
	}

	// Global flags
	cmd.PersistentFlags().StringP("output", "o", "table", "output format for listings: table, json, plain")
	cmd.PersistentFlags().Bool("no-color", false, "disable colored output")

	// Set version template
	cmd.SetVersionTemplate("dtag version {{.Version}} (commit: " + version.Commit + ", built: " + version.Date + ")\n")

	// Subcommands
	cmd.AddCommand(initcmd.NewCmdInit())
	cmd.AddCommand(expand.NewCmdExpand())
	cmd.AddCommand(render.NewCmdRender())
	cmd.AddCommand(importcmd.NewCmdImport())
	cmd.AddCommand(tags.NewCmdTags())
	cmd.AddCommand(completion.NewCmdCompletion())

	return cmd
}
