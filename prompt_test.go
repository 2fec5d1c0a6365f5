package clicycle

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Living-Content/clicycle/pkg/theme"
)

// newPromptSession scripts prompt input: keys is fed to the form as if
// typed ("\r" is enter).
func newPromptSession(keys string) (*Clicycle, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	cli := New(Config{Out: buf, Err: io.Discard, Width: 60, In: strings.NewReader(keys)})
	return cli, buf
}

func TestPrompt_EmitsLeadSpacing_AndRecordsDescriptor(t *testing.T) {
	t.Parallel()

	cli, buf := newPromptSession("alice\r")

	cli.Info("context")
	mark := buf.Len()

	value, err := cli.Prompt("Name?", PromptOptions{})
	require.NoError(t, err)
	assert.Equal(t, "alice", value)

	want := cli.Theme().Spacing.Resolve(theme.KindInfo, theme.KindPrompt)
	assert.Equal(t, want, leadingBlankLines(buf.String()[mark:]))

	last, ok := cli.History().Last()
	require.True(t, ok)
	assert.Equal(t, theme.KindPrompt, last.Kind)
	assert.Equal(t, 2, cli.History().Len())
}

func TestConfirm_EmitsLeadSpacing_AndRecordsDescriptor(t *testing.T) {
	t.Parallel()

	cli, buf := newPromptSession("\r")

	cli.Info("context")
	mark := buf.Len()

	ok, err := cli.Confirm("Proceed?", true)
	require.NoError(t, err)
	assert.True(t, ok, "enter accepts the default")

	want := cli.Theme().Spacing.Resolve(theme.KindInfo, theme.KindConfirm)
	assert.Equal(t, want, leadingBlankLines(buf.String()[mark:]))

	last, hasLast := cli.History().Last()
	require.True(t, hasLast)
	assert.Equal(t, theme.KindConfirm, last.Kind)
}

func TestParseSelection_AcceptsChoicesInRange(t *testing.T) {
	t.Parallel()

	idx, err := parseSelection("2", 3)
	require.NoError(t, err)
	assert.Equal(t, 2, idx)

	idx, err = parseSelection(" 1 ", 3)
	require.NoError(t, err)
	assert.Equal(t, 1, idx)
}

func TestParseSelection_RejectsInvalidInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
		count int
	}{
		{name: "too low", value: "0", count: 3},
		{name: "too high", value: "4", count: 3},
		{name: "not a number", value: "banana", count: 3},
		{name: "empty options", value: "1", count: 0},
		{name: "empty input", value: "", count: 3},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := parseSelection(tc.value, tc.count)
			assert.ErrorIs(t, err, ErrInvalidSelection)
		})
	}
}
