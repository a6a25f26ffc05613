// html.go implements the HTML adapter pair.
package format

import "strings"

// HTML returns adapters that escape markup characters and insert <p>
// separators at blank lines.
func HTML() Pair {
	return Pair{
		Name:      "html",
		Convert:   escapeHTML,
		Paragraph: insertHTMLParagraphs,
	}
}

// escapeHTML escapes the characters that are significant in HTML.
func escapeHTML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, "\"", "&quot;")
	return s
}

// insertHTMLParagraphs replaces each blank-line run with a paragraph
// separator. Segments are fragments of a larger document, so this inserts
// separators rather than wrapping the segment in a complete element.
func insertHTMLParagraphs(s string) string {
	var sb strings.Builder
	i := 0
	for i < len(s) {
		run := blankRun(s, i)
		if run == 0 {
			sb.WriteByte(s[i])
			i++
			continue
		}
		sb.WriteString("\n<p>\n")
		i += run
	}
	return sb.String()
}

// blankRun returns the length of a blank-line run (two or more consecutive
// newlines, with optional spaces and tabs between them) starting at i, or 0.
func blankRun(s string, i int) int {
	j := i
	newlines := 0
	for j < len(s) {
		switch s[j] {
		case '\n':
			newlines++
			j++
		case ' ', '\t', '\r':
			j++
		default:
			goto done
		}
	}
done:
	if newlines < 2 {
		return 0
	}
	// Keep trailing indentation of the following line out of the run.
	for j > i && (s[j-1] == ' ' || s[j-1] == '\t') {
		j--
	}
	return j - i
}
