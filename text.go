package clicycle

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Living-Content/clicycle/pkg/theme"
)

// Header renders the main application banner: a bordered box with the
// title, an optional subtitle, and an optional app name. An empty
// appName falls back to the session's configured one.
func (c *Clicycle) Header(title, subtitle, appName string) {
	if appName == "" {
		appName = c.cfg.AppName
	}

	c.render(theme.KindHeader, func(w io.Writer) {
		t := c.theme
		lines := []string{t.Typography.Header.Render(strings.ToUpper(title))}
		if subtitle != "" {
			lines = append(lines, t.Typography.Subtitle.Render(subtitle))
		}
		if appName != "" {
			titled := cases.Title(language.English).String(appName)
			lines = append(lines, t.Typography.AppName.Render(titled))
		}

		boxWidth := t.Layout.Width
		if boxWidth <= 0 || boxWidth > c.width() {
			boxWidth = c.width()
		}
		box := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Colors.Subtle).
			Padding(0, 2).
			Width(boxWidth - 2)

		fmt.Fprintln(w, box.Render(lipgloss.JoinVertical(lipgloss.Left, lines...)))
	})
}

// Section renders a titled rule: the uppercased title followed by a
// horizontal line out to the content width.
func (c *Clicycle) Section(title string) {
	c.render(theme.KindSection, func(w io.Writer) {
		t := c.theme
		label := strings.ToUpper(title)
		styled := t.Typography.Section.Render(label)

		remaining := c.width() - runewidth.StringWidth(label) - 1
		if remaining < 0 {
			remaining = 0
		}
		rule := t.Typography.Divider.Render(strings.Repeat(c.ruleChar(), remaining))
		fmt.Fprintln(w, styled+" "+rule)
	})
}

// Divider renders a full-width horizontal rule.
func (c *Clicycle) Divider() {
	c.render(theme.KindDivider, func(w io.Writer) {
		t := c.theme
		fmt.Fprintln(w, t.Typography.Divider.Render(strings.Repeat(c.ruleChar(), c.width())))
	})
}

func (c *Clicycle) ruleChar() string {
	if c.theme.Layout.TableBorder == "ascii" {
		return "-"
	}
	return "─"
}

// Info renders an informational message.
func (c *Clicycle) Info(text string) {
	c.message(theme.KindInfo, c.theme.Icons.Info, c.theme.Typography.Info, text)
}

// Success renders a success message.
func (c *Clicycle) Success(text string) {
	c.message(theme.KindSuccess, c.theme.Icons.Success, c.theme.Typography.Success, text)
}

// Warning renders a warning message.
func (c *Clicycle) Warning(text string) {
	c.message(theme.KindWarning, c.theme.Icons.Warning, c.theme.Typography.Warning, text)
}

// Error renders an error message.
func (c *Clicycle) Error(text string) {
	c.message(theme.KindError, c.theme.Icons.Error, c.theme.Typography.Error, text)
}

// Debug renders a debug message in the muted style.
func (c *Clicycle) Debug(text string) {
	c.message(theme.KindDebug, c.theme.Icons.Debug, c.theme.Typography.Debug, text)
}

func (c *Clicycle) message(kind theme.Kind, icon string, style lipgloss.Style, text string) {
	c.render(kind, func(w io.Writer) {
		fmt.Fprintln(w, style.Render(icon)+" "+style.Render(text))
	})
}

// ListItem renders one bulleted line. Consecutive list items pack with
// no blank line between them under the default spacing table.
func (c *Clicycle) ListItem(text string) {
	c.render(theme.KindListItem, func(w io.Writer) {
		t := c.theme
		bullet := t.Typography.SummaryLabel.Render(t.Icons.Bullet)
		fmt.Fprintln(w, "  "+bullet+" "+t.Typography.ListItem.Render(text))
	})
}

// Suggestions renders a short titled list of follow-up actions, each
// prefixed with the theme's arrow glyph.
func (c *Clicycle) Suggestions(title string, items []string) {
	c.render(theme.KindSuggestions, func(w io.Writer) {
		t := c.theme
		fmt.Fprintln(w, t.Typography.BlockTitle.Render(title))
		for _, item := range items {
			arrow := t.Typography.SummaryLabel.Render(t.Icons.Arrow)
			fmt.Fprintln(w, "  "+arrow+" "+t.Typography.Suggestion.Render(item))
		}
	})
}

// Pair is one label/value row of a Summary.
type Pair struct {
	Label string
	Value any
}

// Summary renders aligned label/value pairs in input order.
func (c *Clicycle) Summary(pairs []Pair) {
	c.render(theme.KindSummary, func(w io.Writer) {
		t := c.theme

		labelWidth := 0
		for _, p := range pairs {
			if lw := runewidth.StringWidth(p.Label); lw > labelWidth {
				labelWidth = lw
			}
		}

		for _, p := range pairs {
			label := runewidth.FillRight(p.Label, labelWidth)
			fmt.Fprintln(w,
				"  "+t.Typography.SummaryLabel.Render(label)+"  "+
					t.Typography.SummaryValue.Render(fmt.Sprint(p.Value)))
		}
	})
}
