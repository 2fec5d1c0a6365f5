package clicycle

import (
	"errors"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Living-Content/clicycle/pkg/theme"
)

// ErrSelectAborted is returned when an interactive select is dismissed
// without choosing.
var ErrSelectAborted = errors.New("selection aborted")

// SelectOption is one entry of an interactive select menu. An empty
// Value falls back to the Label.
type SelectOption struct {
	Label string
	Value string
}

// InteractiveSelect shows an arrow-key menu and returns the chosen
// option's value. Enter selects, q/esc/ctrl+c aborts with
// ErrSelectAborted.
func (c *Clicycle) InteractiveSelect(title string, options []SelectOption, defaultIndex int) (string, error) {
	if len(options) == 0 {
		return "", ErrSelectAborted
	}
	if defaultIndex < 0 || defaultIndex >= len(options) {
		defaultIndex = 0
	}

	c.render(theme.KindPrompt, func(io.Writer) {})

	model := selectModel{
		title:   title,
		options: options,
		index:   defaultIndex,
		marker: lipgloss.NewStyle().
			Foreground(c.theme.Colors.Success).
			Bold(true),
		muted: c.theme.Typography.SummaryValue,
	}

	opts := []tea.ProgramOption{tea.WithOutput(c.cfg.Out)}
	if c.cfg.In != nil {
		opts = append(opts, tea.WithInput(c.cfg.In))
	}
	final, err := tea.NewProgram(model, opts...).Run()
	if err != nil {
		return "", err
	}

	m, ok := final.(selectModel)
	if !ok || m.aborted {
		return "", ErrSelectAborted
	}
	chosen := m.options[m.index]
	if chosen.Value == "" {
		return chosen.Label, nil
	}
	return chosen.Value, nil
}

type selectModel struct {
	title   string
	options []SelectOption
	index   int
	marker  lipgloss.Style
	muted   lipgloss.Style
	aborted bool
}

func (m selectModel) Init() tea.Cmd {
	return nil
}

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "up", "k":
			if m.index > 0 {
				m.index--
			}
		case "down", "j":
			if m.index < len(m.options)-1 {
				m.index++
			}
		case "enter":
			return m, tea.Quit
		case "q", "esc", "ctrl+c":
			m.aborted = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m selectModel) View() string {
	var b strings.Builder
	if m.title != "" {
		b.WriteString(m.title + "\n")
	}
	for i, opt := range m.options {
		if i == m.index {
			b.WriteString(m.marker.Render("→ "+opt.Label) + "\n")
		} else {
			b.WriteString("  " + m.muted.Render(opt.Label) + "\n")
		}
	}
	return b.String()
}
