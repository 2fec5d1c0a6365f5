package clicycle

import "github.com/Living-Content/clicycle/pkg/theme"

// leadSpacing decides how many blank lines to emit before rendering a
// component of kind next. Pure function over its inputs; the caller
// emits the lines.
//
// The first component of a session gets no padding, components inside an
// open Block render contiguously, and everything else resolves through
// the theme's spacing table keyed on the effective previous component.
func leadSpacing(history *History, next theme.Kind, inGroup bool, spacing theme.Spacing) int {
	prev, ok := history.effectivePrevious()
	if !ok {
		return 0
	}
	if inGroup {
		return 0
	}
	return spacing.Resolve(prev.Kind, next)
}
