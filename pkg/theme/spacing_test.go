package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpacing_ResolvesDefault_When_NoOverrideForPrevKind(t *testing.T) {
	t.Parallel()

	s := DefaultSpacing()

	// Any message following another message gets the default message gap.
	assert.Equal(t, s.Rules[KindSuccess].Before, s.Resolve(KindInfo, KindSuccess))
}

func TestSpacing_ResolvesOverride_When_PrevKindListed(t *testing.T) {
	t.Parallel()

	s := DefaultSpacing()

	// Consecutive list items pack with no gap.
	assert.Equal(t, 0, s.Resolve(KindListItem, KindListItem))
	// A confirmation packs against the prompt it follows.
	assert.Equal(t, 0, s.Resolve(KindPrompt, KindConfirm))
	// A list item after anything else keeps the default.
	assert.Equal(t, s.Rules[KindListItem].Before, s.Resolve(KindInfo, KindListItem))
}

func TestSpacing_MessagesSitCloserThanHeaders(t *testing.T) {
	t.Parallel()

	s := DefaultSpacing()

	messageGap := s.Resolve(KindInfo, KindSuccess)
	headerGap := s.Resolve(KindInfo, KindHeader)
	assert.Less(t, messageGap, headerGap)
}

func TestSpacing_ResolveIsTotal_OverAllKindPairs(t *testing.T) {
	t.Parallel()

	s := DefaultSpacing()

	for _, prev := range AllKinds() {
		for _, next := range AllKinds() {
			n := s.Resolve(prev, next)
			if n < 0 {
				t.Fatalf("negative spacing %d for (%q, %q)", n, prev, next)
			}
		}
	}
}

func TestSpacing_ResolvePanics_When_RuleMissing(t *testing.T) {
	t.Parallel()

	s := Spacing{Rules: map[Kind]Rule{}}

	assert.Panics(t, func() {
		s.Resolve(KindInfo, KindTable)
	})
}

func TestKindFromString_RoundTripsAllKinds(t *testing.T) {
	t.Parallel()

	for _, k := range AllKinds() {
		got, ok := KindFromString(k.String())
		if !ok {
			t.Fatalf("kind %q not resolvable by name", k)
		}
		assert.Equal(t, k, got)
	}

	_, ok := KindFromString("nope")
	assert.False(t, ok)
}
