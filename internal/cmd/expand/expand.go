// Package expand provides the expand command for dtag.
package expand

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/open-doc-collective/doctag/internal/pipeline"
	"github.com/open-doc-collective/doctag/internal/source"
)

type expandOptions struct {
	formatName string
	out        string
	strict     bool
	maxDepth   int
	noColor    bool
}

// NewCmdExpand creates the expand command.
func NewCmdExpand() *cobra.Command {
	opts := &expandOptions{}

	cmd := &cobra.Command{
		Use:   "expand [file]",
		Short: "Expand @-tags in a document",
		Long: `Expand @-tags in a document and print the transformed text.

Reads from the given file, or from stdin when the file is omitted or "-".
Tags like @code(name), @link(url label) and @b(text) are replaced by the
registered handlers; @@ escapes a literal @. Malformed input is reported
as warnings on stderr and never aborts the expansion.`,
		Example: `  # Expand a file to stdout as HTML
  dtag expand doc.txt --format html

  # Expand stdin to a file
  cat doc.txt | dtag expand --format markdown --out doc.md

  # Fail the build on any warning
  dtag expand doc.txt --strict`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.noColor, _ = cmd.Flags().GetBool("no-color")
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return runExpand(path, opts, os.Stdin, os.Stdout, os.Stderr)
		},
	}

	cmd.Flags().StringVarP(&opts.formatName, "format", "f", "", "output format: html, markdown, plain (default from config)")
	cmd.Flags().StringVar(&opts.out, "out", "", "write result to file instead of stdout")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "exit non-zero if any warning was emitted")
	cmd.Flags().IntVar(&opts.maxDepth, "max-depth", 0, "maximum recursive expansion depth (default from config)")

	return cmd
}

func runExpand(path string, opts *expandOptions, stdin io.Reader, stdout, stderr io.Writer) error {
	engine, diags, err := pipeline.New(pipeline.Options{
		Format:   opts.formatName,
		MaxDepth: opts.maxDepth,
		NoColor:  opts.noColor,
	}, stderr)
	if err != nil {
		return err
	}

	input, err := source.Read(path, stdin)
	if err != nil {
		return err
	}

	result := engine.Execute(input)

	if err := source.Write(opts.out, stdout, result); err != nil {
		return err
	}

	if opts.strict && diags.Warnings > 0 {
		return fmt.Errorf("%d warning(s) emitted", diags.Warnings)
	}
	return nil
}
