// builtin.go registers the stock documentation tags.
//
// Builtin handlers emit Markdown: the CLI's canonical intermediate format,
// which the render pipeline turns into HTML afterwards. Callers wanting a
// different dialect register their own handlers instead.
package tag

import "strings"

// Builtin registers the stock tag set on reg. Adding a new builtin tag
// means adding one entry here.
func Builtin(reg *Registry) error {
	builtins := []struct {
		name string
		opts Options
		h    HandlerFunc
	}{
		{"code", Options{RequiresParam: true}, expandCode},
		{"b", Options{RequiresParam: true, ExpandParam: true}, expandBold},
		{"i", Options{RequiresParam: true, ExpandParam: true}, expandItalic},
		{"em", Options{RequiresParam: true, ExpandParam: true}, expandItalic},
		{"link", Options{RequiresParam: true, ExpandParam: true}, expandLink},
		{"ref", Options{RequiresParam: true}, expandRef},
		{"anchor", Options{RequiresParam: true}, expandAnchor},
		{"image", Options{RequiresParam: true}, expandImage},
		{"br", Options{}, expandBreak},
		{"p", Options{}, expandParagraph},
	}

	for _, b := range builtins {
		if err := reg.Register(b.name, b.opts, b.h); err != nil {
			return err
		}
	}
	return nil
}

func expandCode(_ *Engine, _, param, baseline string) string {
	if param == "" {
		return baseline
	}
	return "`" + param + "`"
}

func expandBold(_ *Engine, _, param, baseline string) string {
	if param == "" {
		return baseline
	}
	return "**" + param + "**"
}

func expandItalic(_ *Engine, _, param, baseline string) string {
	if param == "" {
		return baseline
	}
	return "*" + param + "*"
}

// expandLink renders "@link(target)" as an autolink and
// "@link(target label...)" as a labeled link.
func expandLink(_ *Engine, _, param, baseline string) string {
	if param == "" {
		return baseline
	}
	target, label, found := strings.Cut(param, " ")
	if !found || strings.TrimSpace(label) == "" {
		return "<" + target + ">"
	}
	return "[" + strings.TrimSpace(label) + "](" + target + ")"
}

// expandRef renders a same-document reference to an @anchor.
func expandRef(_ *Engine, _, param, baseline string) string {
	if param == "" {
		return baseline
	}
	return "[" + param + "](#" + anchorID(param) + ")"
}

func expandAnchor(_ *Engine, _, param, baseline string) string {
	if param == "" {
		return baseline
	}
	return `<a id="` + anchorID(param) + `"></a>`
}

func expandImage(_ *Engine, _, param, baseline string) string {
	if param == "" {
		return baseline
	}
	path, alt, found := strings.Cut(param, " ")
	if !found {
		alt = path
	}
	return "![" + strings.TrimSpace(alt) + "](" + path + ")"
}

func expandBreak(_ *Engine, _, _, _ string) string {
	return "<br />"
}

func expandParagraph(_ *Engine, _, _, _ string) string {
	return "\n\n"
}

// anchorID normalizes an anchor name to a fragment identifier: lowercase,
// spaces to hyphens.
func anchorID(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "-")
}
