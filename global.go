package clicycle

import (
	"sync"

	"github.com/Living-Content/clicycle/pkg/theme"
)

// The process-wide default session backing the package-level functions.
// Created lazily on first use; Reset discards it. Anything relying on
// these functions shares this single mutable instance, so longer-lived
// programs should prefer explicit sessions from New.
var (
	defaultMu      sync.Mutex
	defaultSession *Clicycle
)

// Default returns the process-wide session, creating it on first use.
func Default() *Clicycle {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultSession == nil {
		defaultSession = New(Config{})
	}
	return defaultSession
}

// Reset discards the default session; the next package-level call starts
// a fresh one.
func Reset() {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultSession = nil
}

// Configure swaps the default session's theme and app name.
func Configure(appName string, th *theme.Theme) error {
	return Default().Configure(appName, th)
}

// Header renders an application banner on the default session.
func Header(title, subtitle, appName string) { Default().Header(title, subtitle, appName) }

// Section renders a titled rule on the default session.
func Section(title string) { Default().Section(title) }

// Info renders an informational message on the default session.
func Info(text string) { Default().Info(text) }

// Success renders a success message on the default session.
func Success(text string) { Default().Success(text) }

// Warning renders a warning message on the default session.
func Warning(text string) { Default().Warning(text) }

// Error renders an error message on the default session.
func Error(text string) { Default().Error(text) }

// Debug renders a debug message on the default session.
func Debug(text string) { Default().Debug(text) }

// ListItem renders a bulleted line on the default session.
func ListItem(text string) { Default().ListItem(text) }

// Divider renders a horizontal rule on the default session.
func Divider() { Default().Divider() }

// Suggestions renders a titled action list on the default session.
func Suggestions(title string, items []string) { Default().Suggestions(title, items) }

// Table renders records as a grid on the default session.
func Table(rows []Record, title string) { Default().Table(rows, title) }

// Summary renders label/value pairs on the default session.
func Summary(pairs []Pair) { Default().Summary(pairs) }

// Code renders a highlighted source block on the default session.
func Code(block CodeBlock) { Default().Code(block) }

// JSON renders v as highlighted JSON on the default session.
func JSON(v any, title string) error { return Default().JSON(v, title) }

// Block suppresses inter-component spacing for renders inside fn on the
// default session.
func Block(fn func()) { Default().Block(fn) }

// Clear empties the default session's history and clears the terminal.
func Clear() { Default().Clear() }

// WithSpinner runs fn behind a spinner on the default session.
func WithSpinner(message string, fn func() error) error {
	return Default().WithSpinner(message, fn)
}

// WithProgress runs fn with a progress bar on the default session.
func WithProgress(description string, fn func(*ProgressTask) error) error {
	return Default().WithProgress(description, fn)
}

// WithMultiProgress runs fn with a shared multi-task frame on the
// default session.
func WithMultiProgress(description string, fn func(*MultiProgress) error) error {
	return Default().WithMultiProgress(description, fn)
}

// Prompt asks for a line of text on the default session.
func Prompt(text string, opts PromptOptions) (string, error) {
	return Default().Prompt(text, opts)
}

// Confirm asks a yes/no question on the default session.
func Confirm(text string, defaultValue bool) (bool, error) {
	return Default().Confirm(text, defaultValue)
}

// SelectFromList asks for a numbered choice on the default session.
func SelectFromList(label string, options []string, defaultValue string) (string, error) {
	return Default().SelectFromList(label, options, defaultValue)
}

// InteractiveSelect shows an arrow-key menu on the default session.
func InteractiveSelect(title string, options []SelectOption, defaultIndex int) (string, error) {
	return Default().InteractiveSelect(title, options, defaultIndex)
}
