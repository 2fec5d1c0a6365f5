package clicycle

import "github.com/Living-Content/clicycle/pkg/theme"

// Descriptor records one rendered component: its kind plus the flags the
// spacing engine needs. Descriptors are immutable once appended.
type Descriptor struct {
	Kind theme.Kind

	// GroupMember is true when the component rendered inside a Block.
	GroupMember bool

	// Group identifies which Block the component rendered in, so two
	// back-to-back blocks do not read as one run. Meaningful only when
	// GroupMember is true.
	Group int

	// First is true for the first component of a fresh or just-cleared
	// session.
	First bool
}

// History is the append-only log of rendered components for one session.
// It only grows, except through Clear, which is driven by the session's
// own Clear operation.
type History struct {
	entries []Descriptor
}

// Append records a descriptor. Always succeeds.
func (h *History) Append(d Descriptor) {
	h.entries = append(h.entries, d)
}

// Last returns the most recently appended descriptor. The second return
// is false when nothing has rendered yet or the history was just cleared.
func (h *History) Last() (Descriptor, bool) {
	if len(h.entries) == 0 {
		return Descriptor{}, false
	}
	return h.entries[len(h.entries)-1], true
}

// Len reports the number of recorded components.
func (h *History) Len() int {
	return len(h.entries)
}

// Clear empties the log. The next render behaves exactly like the first
// render of a new session.
func (h *History) Clear() {
	h.entries = h.entries[:0]
}

// effectivePrevious returns the descriptor the spacing engine should
// treat as "previous". Normally that is the last entry; when the tail of
// the log belongs to a group, that group's first member stands in for
// the whole group, so a closed Block spaces like a single component of
// its opening kind. The walk stops at the group boundary: members of an
// earlier adjacent block are a different group.
func (h *History) effectivePrevious() (Descriptor, bool) {
	i := len(h.entries) - 1
	if i < 0 {
		return Descriptor{}, false
	}
	last := h.entries[i]
	if !last.GroupMember {
		return last, true
	}
	for i > 0 && h.entries[i-1].GroupMember && h.entries[i-1].Group == last.Group {
		i--
	}
	return h.entries[i], true
}
