// Package render provides the render command for dtag.
package render

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/open-doc-collective/doctag/internal/pipeline"
	"github.com/open-doc-collective/doctag/internal/source"
	"github.com/open-doc-collective/doctag/pkg/format"
)

// mdRenderer is a pre-configured goldmark instance with GFM table support.
var mdRenderer = goldmark.New(
	goldmark.WithExtensions(extension.Table),
)

type renderOptions struct {
	out        string
	title      string
	standalone bool
	strict     bool
	maxDepth   int
	noColor    bool
}

// NewCmdRender creates the render command.
func NewCmdRender() *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Expand @-tags and render the result as HTML",
		Long: `Expand @-tags in a Markdown document and render the result to HTML.

The document is expanded with the Markdown adapters first, then converted
to HTML. With --standalone the output is a complete HTML page.`,
		Example: `  # Render a document to stdout
  dtag render doc.md

  # Render a complete page to a file
  dtag render doc.md --standalone --title "API Guide" --out doc.html`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.noColor, _ = cmd.Flags().GetBool("no-color")
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return runRender(path, opts, os.Stdin, os.Stdout, os.Stderr)
		},
	}

	cmd.Flags().StringVar(&opts.out, "out", "", "write result to file instead of stdout")
	cmd.Flags().StringVar(&opts.title, "title", "", "page title for --standalone output")
	cmd.Flags().BoolVar(&opts.standalone, "standalone", false, "wrap the output in a complete HTML page")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "exit non-zero if any warning was emitted")
	cmd.Flags().IntVar(&opts.maxDepth, "max-depth", 0, "maximum recursive expansion depth (default from config)")

	return cmd
}

func runRender(path string, opts *renderOptions, stdin io.Reader, stdout, stderr io.Writer) error {
	// Tags expand into Markdown; goldmark handles HTML escaping afterwards.
	engine, diags, err := pipeline.New(pipeline.Options{
		Format:   "markdown",
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

	expanded := engine.Execute(input)

	var buf bytes.Buffer
	if err := mdRenderer.Convert([]byte(expanded), &buf); err != nil {
		return fmt.Errorf("failed to render markdown: %w", err)
	}

	result := buf.String()
	if opts.standalone {
		result = wrapPage(opts.title, result)
	}

	if err := source.Write(opts.out, stdout, result); err != nil {
		return err
	}

	if opts.strict && diags.Warnings > 0 {
		return fmt.Errorf("%d warning(s) emitted", diags.Warnings)
	}
	return nil
}

func wrapPage(title, body string) string {
	var sb bytes.Buffer
	sb.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	if title != "" {
		sb.WriteString("<title>")
		sb.WriteString(format.HTML().Convert(title))
		sb.WriteString("</title>\n")
	}
	sb.WriteString("</head>\n<body>\n")
	sb.WriteString(body)
	sb.WriteString("</body>\n</html>\n")
	return sb.String()
}
