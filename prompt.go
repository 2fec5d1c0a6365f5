package clicycle

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/Living-Content/clicycle/pkg/theme"
)

// ErrInvalidSelection is returned by SelectFromList when the entered
// choice is not a number inside the option range.
var ErrInvalidSelection = errors.New("invalid selection")

// PromptOptions enumerates the supported prompt behaviors. A closed
// struct rather than an open option bag so misspelled options are
// compile errors.
type PromptOptions struct {
	// Default pre-fills the input; returned unchanged if the user
	// accepts it.
	Default string
	// Placeholder is ghost text shown while the input is empty.
	Placeholder string
	// Validate rejects input; the prompt library re-asks until it
	// passes or the user aborts.
	Validate func(string) error
}

// Prompt asks for a single line of text. Lead spacing and the history
// entry are handled here; line editing, validation retries, and abort
// handling belong to the prompt library, whose errors (including
// huh.ErrUserAborted) pass through unmodified.
func (c *Clicycle) Prompt(text string, opts PromptOptions) (string, error) {
	c.render(theme.KindPrompt, func(io.Writer) {})

	value := opts.Default
	input := huh.NewInput().Title(text).Value(&value)
	if opts.Placeholder != "" {
		input = input.Placeholder(opts.Placeholder)
	}
	if opts.Validate != nil {
		input = input.Validate(opts.Validate)
	}

	if err := c.runForm(huh.NewGroup(input)); err != nil {
		return "", err
	}
	return value, nil
}

// Confirm asks a yes/no question and returns the answer.
func (c *Clicycle) Confirm(text string, defaultValue bool) (bool, error) {
	c.render(theme.KindConfirm, func(io.Writer) {})

	value := defaultValue
	confirm := huh.NewConfirm().
		Title(text).
		Affirmative("Yes").
		Negative("No").
		Value(&value)

	if err := c.runForm(huh.NewGroup(confirm)); err != nil {
		return false, err
	}
	return value, nil
}

// SelectFromList renders numbered options and asks for a 1-based choice.
// A defaultValue present in options pre-fills its number; one that is
// not is ignored. Non-numeric or out-of-range input returns
// ErrInvalidSelection.
func (c *Clicycle) SelectFromList(label string, options []string, defaultValue string) (string, error) {
	c.render(theme.KindPrompt, func(w io.Writer) {
		t := c.theme
		fmt.Fprintln(w, t.Typography.Prompt.Render(fmt.Sprintf("Select %s:", label)))
		for i, opt := range options {
			number := t.Typography.SummaryLabel.Render(fmt.Sprintf("%d.", i+1))
			fmt.Fprintln(w, "  "+number+" "+t.Typography.ListItem.Render(opt))
		}
	})

	value := ""
	for i, opt := range options {
		if opt == defaultValue {
			value = strconv.Itoa(i + 1)
			break
		}
	}

	input := huh.NewInput().
		Title(fmt.Sprintf("%s (1-%d)", label, len(options))).
		Value(&value)
	if err := c.runForm(huh.NewGroup(input)); err != nil {
		return "", err
	}

	idx, err := parseSelection(value, len(options))
	if err != nil {
		return "", err
	}
	return options[idx-1], nil
}

// parseSelection validates a 1-based numeric choice against the option
// count.
func parseSelection(value string, count int) (int, error) {
	idx, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || idx < 1 || idx > count {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSelection, value)
	}
	return idx, nil
}

func (c *Clicycle) runForm(groups ...*huh.Group) error {
	form := huh.NewForm(groups...).
		WithTheme(huh.ThemeCharm()).
		WithOutput(c.cfg.Out)
	if c.cfg.In != nil {
		form = form.WithInput(c.cfg.In)
	}
	return form.Run()
}
