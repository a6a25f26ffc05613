// tag.go defines tag definitions and the registry that owns them.
package tag

import (
	"fmt"
	"sort"
	"strings"
)

// Options configures how a tag treats its parameter.
type Options struct {
	RequiresParam bool // tag consumes a parameter (parenthesized or rest-of-line)
	ExpandParam   bool // parameter is recursively expanded; only meaningful with RequiresParam
}

// Definition describes a registered tag: its canonical name, parameter
// behavior, and the handler that computes its replacement text.
type Definition struct {
	Name          string // canonical lowercase name, unique within a Registry
	RequiresParam bool
	ExpandParam   bool
	Handler       Handler
}

// Handler computes the replacement text for one tag occurrence.
//
// The engine hands it the canonical tag name, the extracted (and possibly
// abbreviation-substituted and expanded) parameter, and a precomputed
// baseline rendering of the invocation. A handler may return the baseline
// unchanged as a fallback or override it entirely.
type Handler interface {
	Expand(e *Engine, name, param, baseline string) string
}

// HandlerFunc adapts a plain function to the Handler interface.
type HandlerFunc func(e *Engine, name, param, baseline string) string

// Expand implements Handler.
func (f HandlerFunc) Expand(e *Engine, name, param, baseline string) string {
	return f(e, name, param, baseline)
}

// Registry maps tag names to their definitions, case-insensitively.
// Registration happens in a setup phase; once an Engine starts executing,
// the registry must not be modified.
type Registry struct {
	byName map[string]*Definition
}

// NewRegistry creates an empty tag registry.
func NewRegistry() *Registry {
	return &Registry{byName: map[string]*Definition{}}
}

// Register adds a tag definition under the lowercased name.
// Names must be non-empty ASCII letters only, since that is all the scanner
// will ever match. Registering a name twice is an error: a duplicate almost
// always means two handlers are fighting over the same tag, and silently
// shadowing one would hide the mistake.
func (r *Registry) Register(name string, opts Options, h Handler) error {
	if name == "" {
		return fmt.Errorf("tag name must not be empty")
	}
	for i := 0; i < len(name); i++ {
		if !isASCIILetter(name[i]) {
			return fmt.Errorf("invalid tag name %q: names are ASCII letters only", name)
		}
	}
	if h == nil {
		return fmt.Errorf("tag %q: handler must not be nil", name)
	}

	key := strings.ToLower(name)
	if _, exists := r.byName[key]; exists {
		return fmt.Errorf("tag %q already registered", key)
	}

	r.byName[key] = &Definition{
		Name:          key,
		RequiresParam: opts.RequiresParam,
		ExpandParam:   opts.RequiresParam && opts.ExpandParam,
		Handler:       h,
	}
	return nil
}

// Lookup returns the definition for name, matching case-insensitively.
func (r *Registry) Lookup(name string) (*Definition, bool) {
	def, ok := r.byName[strings.ToLower(name)]
	return def, ok
}

// Names returns all registered tag names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
