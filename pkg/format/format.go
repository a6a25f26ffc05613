// Package format provides ready-made adapter pairs for the tag engine:
// a string converter and a paragraph inserter per output format.
package format

import (
	"fmt"

	"github.com/open-doc-collective/doctag/pkg/tag"
)

// Pair bundles the two text adapters for one output format.
type Pair struct {
	Name      string
	Convert   tag.ConvertFunc
	Paragraph tag.ConvertFunc
}

// Names lists the supported format names.
func Names() []string {
	return []string{"html", "markdown", "plain"}
}

// ForName returns the adapter pair for a format name.
func ForName(name string) (Pair, error) {
	switch name {
	case "html":
		return HTML(), nil
	case "markdown", "md":
		return Markdown(), nil
	case "plain", "":
		return Plain(), nil
	}
	return Pair{}, fmt.Errorf("unknown format %q (supported: html, markdown, plain)", name)
}
