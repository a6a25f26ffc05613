// Package importcmd provides the import command for dtag.
package importcmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/spf13/cobra"

	"github.com/open-doc-collective/doctag/internal/source"
	"github.com/open-doc-collective/doctag/pkg/format"
)

type importOptions struct {
	out     string
	keepAts bool
}

// NewCmdImport creates the import command.
func NewCmdImport() *cobra.Command {
	opts := &importOptions{}

	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Convert existing HTML documentation to Markdown source",
		Long: `Convert an existing HTML document to Markdown source that can adopt
@-tag markup.

Any literal @ in the converted text is doubled to @@ so a later expansion
pass reproduces the original text unchanged. Pass --keep-ats to skip that
escaping if the document already uses tags.`,
		Example: `  # Convert a legacy page
  dtag import legacy.html --out legacy.md

  # Convert from stdin, keeping @ characters as-is
  curl -s https://example.com/doc | dtag import --keep-ats`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return runImport(path, opts, os.Stdin, os.Stdout)
		},
	}

	cmd.Flags().StringVar(&opts.out, "out", "", "write result to file instead of stdout")
	cmd.Flags().BoolVar(&opts.keepAts, "keep-ats", false, "do not escape literal @ characters")

	return cmd
}

func runImport(path string, opts *importOptions, stdin io.Reader, stdout io.Writer) error {
	input, err := source.Read(path, stdin)
	if err != nil {
		return err
	}

	markdown, err := htmltomarkdown.ConvertString(input)
	if err != nil {
		return fmt.Errorf("failed to convert HTML: %w", err)
	}
	markdown = strings.TrimSpace(markdown)

	if !opts.keepAts {
		markdown = format.EscapeTags(markdown)
	}
	if markdown != "" {
		markdown += "\n"
	}

	return source.Write(opts.out, stdout, markdown)
}
