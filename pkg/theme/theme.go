// Package theme defines the visual configuration consumed by clicycle
// sessions: component kinds, icon glyphs, lipgloss typography, layout
// parameters, and the inter-component spacing rule table.
//
// Colors use lipgloss format (color names, hex, or 256-color numbers).
// Styles are composed with lipgloss methods, never manual ANSI escapes.
package theme

import (
	"fmt"

	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
)

// Colors defines the semantic color palette a theme is built from.
type Colors struct {
	Primary lipgloss.Color // headers, accents
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
	Text    lipgloss.Color // normal text
	Muted   lipgloss.Color // de-emphasized text
	Subtle  lipgloss.Color // borders, separators
}

// Icons defines the glyph rendered before each message kind.
type Icons struct {
	Info    string
	Success string
	Warning string
	Error   string
	Debug   string
	Bullet  string
	Arrow   string
	Running string
}

// Typography provides pre-built lipgloss styles per renderable kind.
// Computed from Colors by New and cached for reuse.
type Typography struct {
	Header   lipgloss.Style
	Subtitle lipgloss.Style
	AppName  lipgloss.Style
	Section  lipgloss.Style

	Info    lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Debug   lipgloss.Style

	ListItem     lipgloss.Style
	SummaryLabel lipgloss.Style
	SummaryValue lipgloss.Style
	BlockTitle   lipgloss.Style
	LineNumber   lipgloss.Style
	Divider      lipgloss.Style
	Suggestion   lipgloss.Style
	Prompt       lipgloss.Style
}

// Layout holds structural parameters that are not per-kind styles.
type Layout struct {
	// TableBorder selects the go-pretty border set: "rounded", "double",
	// "light", or "ascii".
	TableBorder string
	// RowBanding alternates row background shading in tables.
	RowBanding bool
	// CodeStyle names the chroma highlight style for code and JSON blocks.
	CodeStyle string
	// SpinnerStyle selects a bubbles spinner frame set: "dot", "line",
	// "minidot", "jump", "pulse", "points", "globe", "moon".
	SpinnerStyle string
	// Width is the target content width for headers and dividers.
	Width int
	// ProgressWidth is the rendered width of progress bars.
	ProgressWidth int
}

// Theme aggregates the four sub-configurations shared read-only by every
// component of a session. Swap it wholesale via the session's Configure;
// already-rendered output is unaffected.
type Theme struct {
	Name       string
	Colors     Colors
	Icons      Icons
	Typography Typography
	Layout     Layout
	Spacing    Spacing
}

// New creates a theme with typography computed from the given palette.
func New(name string, colors Colors, icons Icons) *Theme {
	t := &Theme{
		Name:   name,
		Colors: colors,
		Icons:  icons,
	}

	t.Typography = Typography{
		Header: lipgloss.NewStyle().
			Foreground(colors.Primary).
			Bold(true),
		Subtitle: lipgloss.NewStyle().
			Foreground(colors.Muted),
		AppName: lipgloss.NewStyle().
			Foreground(colors.Subtle),
		Section: lipgloss.NewStyle().
			Foreground(colors.Primary).
			Bold(true),

		Info:    lipgloss.NewStyle().Foreground(colors.Text),
		Success: lipgloss.NewStyle().Foreground(colors.Success),
		Warning: lipgloss.NewStyle().Foreground(colors.Warning),
		Error:   lipgloss.NewStyle().Foreground(colors.Error),
		Debug:   lipgloss.NewStyle().Foreground(colors.Muted),

		ListItem:     lipgloss.NewStyle().Foreground(colors.Text),
		SummaryLabel: lipgloss.NewStyle().Foreground(colors.Muted),
		SummaryValue: lipgloss.NewStyle().Foreground(colors.Text),
		BlockTitle:   lipgloss.NewStyle().Foreground(colors.Primary).Bold(true),
		LineNumber:   lipgloss.NewStyle().Foreground(colors.Subtle),
		Divider:      lipgloss.NewStyle().Foreground(colors.Subtle),
		Suggestion:   lipgloss.NewStyle().Foreground(colors.Text),
		Prompt:       lipgloss.NewStyle().Foreground(colors.Primary),
	}

	t.Layout = Layout{
		TableBorder:   "rounded",
		RowBanding:    false,
		CodeStyle:     "monokai",
		SpinnerStyle:  "dot",
		Width:         60,
		ProgressWidth: 40,
	}

	t.Spacing = DefaultSpacing()

	return t
}

// Default returns the stock clicycle theme.
func Default() *Theme {
	return New(
		"default",
		Colors{
			Primary: lipgloss.Color("39"),  // bright blue
			Success: lipgloss.Color("120"), // light green
			Warning: lipgloss.Color("214"), // orange
			Error:   lipgloss.Color("196"), // red
			Text:    lipgloss.Color("252"), // light gray
			Muted:   lipgloss.Color("242"), // dark gray
			Subtle:  lipgloss.Color("238"), // very dark gray
		},
		Icons{
			Info:    "ℹ",
			Success: "✓",
			Warning: "⚠",
			Error:   "✗",
			Debug:   "⚙",
			Bullet:  "•",
			Arrow:   "→",
			Running: "▶",
		},
	)
}

// Monochrome returns a colorless theme with ASCII icons, suitable for
// dumb terminals and CI logs.
func Monochrome() *Theme {
	t := New(
		"monochrome",
		Colors{},
		Icons{
			Info:    "[i]",
			Success: "[OK]",
			Warning: "[WARN]",
			Error:   "[FAIL]",
			Debug:   "[dbg]",
			Bullet:  "*",
			Arrow:   "->",
			Running: ">",
		},
	)
	t.Layout.TableBorder = "ascii"
	t.Layout.SpinnerStyle = "line"
	return t
}

// Validate checks the theme for configuration errors. It is called by
// the session at configure time so bad values surface immediately
// instead of at render time.
func (t *Theme) Validate() error {
	if t == nil {
		return fmt.Errorf("theme: nil theme")
	}
	if err := t.Spacing.Validate(); err != nil {
		return err
	}
	switch t.Layout.TableBorder {
	case "rounded", "double", "light", "ascii", "":
	default:
		return fmt.Errorf("theme: unknown table border %q", t.Layout.TableBorder)
	}
	if t.Layout.CodeStyle != "" {
		if _, ok := styles.Registry[t.Layout.CodeStyle]; !ok {
			return fmt.Errorf("theme: unknown code highlight style %q", t.Layout.CodeStyle)
		}
	}
	if t.Layout.Width < 0 {
		return fmt.Errorf("theme: negative layout width %d", t.Layout.Width)
	}
	if t.Layout.ProgressWidth < 0 {
		return fmt.Errorf("theme: negative progress width %d", t.Layout.ProgressWidth)
	}
	return nil
}
