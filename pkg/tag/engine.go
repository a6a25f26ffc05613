// Package tag implements expansion of @-prefixed tags embedded in
// documentation text.
//
// The engine scans a text for constructs like @code(x) or @link target,
// resolves each name against a Registry of handlers, extracts and optionally
// recursively expands the parameter, and builds the transformed output.
// Text between tags flows through the caller-supplied Convert and Paragraph
// adapters; malformed input never aborts a scan, it only produces warnings
// on the diagnostic sink.
package tag

import "strings"

// DefaultMaxDepth bounds recursive parameter expansion when no explicit
// limit is configured.
const DefaultMaxDepth = 32

// Engine expands tags in text using one registry, one adapter set, and an
// optional abbreviation table. It keeps no mutable state across Execute
// calls, so a single Engine may serve multiple goroutines as long as the
// adapters are reentrant.
type Engine struct {
	reg      *Registry
	adapters Adapters
	abbrevs  *Abbreviations
	maxDepth int
}

// Option configures an Engine.
type Option func(*Engine)

// WithAbbreviations supplies the abbreviation table consulted for
// parameters of tags that require them.
func WithAbbreviations(a *Abbreviations) Option {
	return func(e *Engine) { e.abbrevs = a }
}

// WithMaxDepth sets the recursion limit for nested parameter expansion.
// Values below one fall back to DefaultMaxDepth.
func WithMaxDepth(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.maxDepth = n
		}
	}
}

// NewEngine creates an expansion engine over reg and adapters.
func NewEngine(reg *Registry, adapters Adapters, opts ...Option) *Engine {
	e := &Engine{reg: reg, adapters: adapters, maxDepth: DefaultMaxDepth}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Execute expands all tags in text and returns the transformed result.
// It always returns a string; malformed input degrades to warnings on the
// diagnostic sink and a best-effort rendering.
func (e *Engine) Execute(text string) string {
	return e.expand(text, 0)
}

// expand is the cursor-based scan loop. Every branch advances the cursor by
// at least one byte, so the loop terminates on any finite input.
func (e *Engine) expand(text string, depth int) string {
	var out strings.Builder
	pos := 0

	for pos < len(text) {
		if text[pos] == '@' {
			// Scan the candidate name: ASCII letters immediately after '@'.
			nameEnd := pos + 1
			for nameEnd < len(text) && isASCIILetter(text[nameEnd]) {
				nameEnd++
			}

			if nameEnd > pos+1 {
				name := strings.ToLower(text[pos+1 : nameEnd])
				if def, ok := e.reg.Lookup(name); ok {
					pos = e.expandTag(&out, text, nameEnd, name, def, depth)
					continue
				}
				// Unknown name: warn, then reprint the construct through
				// the default conversion path below.
				e.diag(SevWarning, UnknownTag, "unknown tag name @%s", text[pos+1:nameEnd])
			} else if nameEnd < len(text) && text[nameEnd] == '@' {
				// "@@" escapes a literal '@'.
				out.WriteByte('@')
				pos += 2
				continue
			}
		}

		// Default conversion: emit everything up to the next '@' after the
		// cursor as one converted, paragraph-processed segment.
		end := len(text)
		if next := strings.IndexByte(text[pos+1:], '@'); next >= 0 {
			end = pos + 1 + next
		}
		out.WriteString(e.paragraph(e.convert(text[pos:end])))
		pos = end
	}

	return out.String()
}

// expandTag handles one recognized tag occurrence. nameEnd is the offset
// just past the tag name; the return value is the offset the scan resumes
// from.
func (e *Engine) expandTag(out *strings.Builder, text string, nameEnd int, name string, def *Definition, depth int) int {
	param := ""
	end := nameEnd
	parenthesized := false

	switch {
	case nameEnd < len(text) && text[nameEnd] == '(':
		parenthesized = true
		closing := matchParen(text, nameEnd)
		if closing >= 0 {
			param = text[nameEnd+1 : closing]
			end = closing + 1
		} else {
			// Salvage: consume the remainder of the text and carry on with
			// an empty parameter.
			e.diag(SevWarning, UnmatchedParenthesis, "no matching closing parenthesis for tag @%s", name)
			end = len(text)
		}

	case def.RequiresParam:
		// Bare form: the parameter runs to the end of the line. The newline
		// itself is left for the default conversion path.
		end = len(text)
		if nl := strings.IndexByte(text[nameEnd:], '\n'); nl >= 0 {
			end = nameEnd + nl
		}
		param = strings.TrimSpace(text[nameEnd:end])
	}

	if param != "" {
		if def.RequiresParam {
			if e.abbrevs != nil {
				if full, ok := e.abbrevs.Lookup(param); ok {
					param = full
				}
			}
			if def.ExpandParam {
				if depth+1 > e.maxDepth {
					e.diag(SevWarning, DepthExceeded, "tag @%s: expansion depth limit (%d) reached, parameter left unexpanded", name, e.maxDepth)
				} else {
					param = e.expand(param, depth+1)
				}
			}
		} else if parenthesized {
			// Parameter kept for the baseline rendering only.
			e.diag(SevWarning, UnexpectedParameters, "tag @%s not allowed to have parameters", name)
		}
	}

	baseline := e.baseline(name, param)
	out.WriteString(def.Handler.Expand(e, name, param, baseline))
	return end
}

// baseline renders the fallback representation of a tag invocation.
func (e *Engine) baseline(name, param string) string {
	if param == "" {
		return e.convert("@" + name)
	}
	return e.convert("@("+name) + param + e.convert(")")
}

// matchParen returns the offset of the ')' matching the '(' at open, or -1.
func matchParen(text string, open int) int {
	depth := 1
	for i := open + 1; i < len(text); i++ {
		switch text[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func (e *Engine) convert(text string) string {
	if e.adapters.Convert == nil {
		return text
	}
	return e.adapters.Convert(text)
}

func (e *Engine) paragraph(text string) string {
	if e.adapters.Paragraph == nil {
		return text
	}
	return e.adapters.Paragraph(text)
}

func (e *Engine) diag(sev Severity, kind Kind, format string, args ...any) {
	if e.adapters.Diag == nil {
		return
	}
	e.adapters.Diag(sev, kind, format, args...)
}
