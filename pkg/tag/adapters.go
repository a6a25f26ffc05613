// adapters.go defines the caller-supplied hooks the engine speaks through:
// output escaping, paragraph insertion, and the diagnostic sink.
package tag

// Severity classifies a diagnostic.
type Severity int

const (
	SevWarning Severity = iota // recoverable; expansion continues
	SevError                   // reserved for callers; the engine itself only warns
)

// String returns the lowercase name of the severity.
func (s Severity) String() string {
	if s == SevError {
		return "error"
	}
	return "warning"
}

// Kind identifies the category of a diagnostic.
type Kind int

const (
	UnknownTag           Kind = iota // @name with no registered tag
	UnmatchedParenthesis             // opening ( with no matching )
	UnexpectedParameters             // parenthesized parameter on a tag that takes none
	DepthExceeded                    // recursive expansion hit the depth guard
)

// String returns a short identifier for the kind.
func (k Kind) String() string {
	switch k {
	case UnknownTag:
		return "unknown-tag"
	case UnmatchedParenthesis:
		return "unmatched-parenthesis"
	case UnexpectedParameters:
		return "unexpected-parameters"
	case DepthExceeded:
		return "depth-exceeded"
	}
	return "unknown"
}

// ConvertFunc transforms a text segment, e.g. escaping it for an output format.
type ConvertFunc func(text string) string

// DiagFunc receives one diagnostic. Diagnostics are purely observational:
// the engine never aborts, and callers decide whether warnings fail a build.
type DiagFunc func(sev Severity, kind Kind, format string, args ...any)

// Adapters bundles the three pluggable hooks. Any field may be nil:
// a nil Convert or Paragraph behaves as identity, a nil Diag discards.
// All three must be reentrant if engines run on multiple goroutines.
type Adapters struct {
	Convert   ConvertFunc // output-format escaping for non-tag text
	Paragraph ConvertFunc // paragraph insertion over converted text
	Diag      DiagFunc    // diagnostic sink
}

// Abbreviations is an ordered name-to-expansion table. The engine consults
// it with the exact whole parameter text of tags that require parameters,
// before any recursive expansion.
type Abbreviations struct {
	names  []string
	byName map[string]string
}

// NewAbbreviations creates an empty abbreviation table.
func NewAbbreviations() *Abbreviations {
	return &Abbreviations{byName: map[string]string{}}
}

// Add inserts or replaces an abbreviation. First-insertion order is kept
// for listing; a repeated name updates the text in place.
func (a *Abbreviations) Add(name, text string) {
	if _, exists := a.byName[name]; !exists {
		a.names = append(a.names, name)
	}
	a.byName[name] = text
}

// Lookup returns the expansion for an exact name match.
func (a *Abbreviations) Lookup(name string) (string, bool) {
	text, ok := a.byName[name]
	return text, ok
}

// Names returns abbreviation names in insertion order.
func (a *Abbreviations) Names() []string {
	return a.names
}

// Len returns the number of abbreviations.
func (a *Abbreviations) Len() int {
	return len(a.names)
}
