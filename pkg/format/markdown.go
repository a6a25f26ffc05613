// markdown.go implements the Markdown and plain-text adapter pairs.
package format

import (
	"regexp"
	"strings"
)

var excessBlankLines = regexp.MustCompile(`\n[ \t]*\n([ \t]*\n)+`)

// Markdown returns adapters for Markdown output. Source text is passed
// through unescaped (documentation text is treated as Markdown already);
// the paragraph inserter collapses runs of three or more newlines down to
// one blank line so expanded tags cannot stack up empty paragraphs.
func Markdown() Pair {
	return Pair{
		Name:      "markdown",
		Convert:   func(s string) string { return s },
		Paragraph: normalizeBlankLines,
	}
}

// Plain returns identity adapters for plain-text output.
func Plain() Pair {
	return Pair{
		Name:      "plain",
		Convert:   func(s string) string { return s },
		Paragraph: func(s string) string { return s },
	}
}

func normalizeBlankLines(s string) string {
	return excessBlankLines.ReplaceAllString(s, "\n\n")
}

// EscapeTags doubles every '@' so that literal text survives a later
// expansion pass unchanged. Used when importing existing documents.
func EscapeTags(s string) string {
	return strings.ReplaceAll(s, "@", "@@")
}
