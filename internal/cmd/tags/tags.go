// Package tags provides the tags command for dtag.
package tags

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/open-doc-collective/doctag/internal/config"
	"github.com/open-doc-collective/doctag/internal/view"
	"github.com/open-doc-collective/doctag/pkg/tag"
)

type listOptions struct {
	output  string
	noColor bool
}

// NewCmdTags creates the tags command.
func NewCmdTags() *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:     "tags",
		Aliases: []string{"list"},
		Short:   "List the registered tags and abbreviations",
		Long:    `List the builtin tag set with each tag's parameter behavior, and the abbreviations from the configuration.`,
		Example: `  # List tags
  dtag tags

  # Output as JSON
  dtag tags -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.output, _ = cmd.Flags().GetString("output")
			opts.noColor, _ = cmd.Flags().GetBool("no-color")
			return runTags(opts, nil)
		},
	}

	return cmd
}

func runTags(opts *listOptions, w io.Writer) error {
	if err := view.ValidateFormat(opts.output); err != nil {
		return err
	}

	reg := tag.NewRegistry()
	if err := tag.Builtin(reg); err != nil {
		return err
	}

	renderer := view.NewRenderer(view.Format(opts.output), opts.noColor)
	if w != nil {
		renderer.SetWriter(w)
	}
	renderer.RenderTable([]string{"TAG", "PARAMETER", "EXPANDED"}, tagRows(reg))

	cfg, err := config.LoadWithEnv(config.DefaultConfigPath())
	if err != nil {
		return err
	}
	if len(cfg.Abbreviations) > 0 {
		renderer.RenderText("")
		renderer.RenderTable([]string{"ABBREVIATION", "TEXT"}, abbrevRows(cfg))
	}

	return nil
}

func tagRows(reg *tag.Registry) [][]string {
	var rows [][]string
	for _, name := range reg.Names() {
		def, _ := reg.Lookup(name)
		rows = append(rows, []string{
			"@" + def.Name,
			yesNo(def.RequiresParam),
			yesNo(def.ExpandParam),
		})
	}
	return rows
}

func abbrevRows(cfg *config.Config) [][]string {
	var rows [][]string
	for _, a := range cfg.Abbreviations {
		rows = append(rows, []string{a.Name, view.Truncate(a.Text, 60)})
	}
	return rows
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
