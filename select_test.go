package clicycle

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func testSelectModel() selectModel {
	return selectModel{
		title: "pick one",
		options: []SelectOption{
			{Label: "apple"},
			{Label: "banana", Value: "b"},
			{Label: "cherry"},
		},
	}
}

func TestSelectModel_MovesWithinBounds_When_Navigating(t *testing.T) {
	t.Parallel()

	m := testSelectModel()

	next, _ := m.Update(keyMsg("up"))
	m = next.(selectModel)
	assert.Equal(t, 0, m.index, "up at the top stays put")

	next, _ = m.Update(keyMsg("down"))
	m = next.(selectModel)
	assert.Equal(t, 1, m.index)

	next, _ = m.Update(keyMsg("down"))
	m = next.(selectModel)
	next, _ = m.Update(keyMsg("down"))
	m = next.(selectModel)
	assert.Equal(t, 2, m.index, "down at the bottom stays put")
}

func TestSelectModel_QuitsSelected_OnEnter(t *testing.T) {
	t.Parallel()

	m := testSelectModel()
	next, cmd := m.Update(keyMsg("enter"))
	m = next.(selectModel)

	require.NotNil(t, cmd)
	assert.False(t, m.aborted)
}

func TestSelectModel_Aborts_OnEscOrQuitKeys(t *testing.T) {
	t.Parallel()

	for _, k := range []string{"esc", "ctrl+c", "q"} {
		m := testSelectModel()
		next, cmd := m.Update(keyMsg(k))
		m = next.(selectModel)

		require.NotNil(t, cmd, "key %s should quit", k)
		assert.True(t, m.aborted, "key %s should abort", k)
	}
}

func TestSelectModel_MarksCurrentOption_InView(t *testing.T) {
	t.Parallel()

	m := testSelectModel()
	m.index = 1

	view := stripANSI(m.View())
	assert.Contains(t, view, "pick one")
	assert.Contains(t, view, "→ banana")
	assert.Contains(t, view, "  apple")
	assert.NotContains(t, view, "→ apple")
}

func TestInteractiveSelect_RejectsEmptyOptions(t *testing.T) {
	t.Parallel()

	cli, _ := newTestSession()
	_, err := cli.InteractiveSelect("pick", nil, 0)
	assert.ErrorIs(t, err, ErrSelectAborted)
}
