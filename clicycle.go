// Package clicycle renders styled CLI output as self-spacing components:
// headers, messages, tables, code blocks, progress indicators, and
// prompts. Vertical whitespace between successive components is managed
// automatically from a theme-defined rule table, so output reads like a
// laid-out document rather than a raw stream of print statements.
//
// Basic usage:
//
//	cli := clicycle.New(clicycle.Config{AppName: "myapp"})
//	cli.Header("My App", "Version 1.0", "")
//	cli.Info("this is an info message")
//	cli.Success("operation completed")
//
// A process-wide default session backs the package-level functions for
// quick scripts; explicit sessions are the primary API.
package clicycle

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/Living-Content/clicycle/pkg/theme"
)

// Version is the library version.
const Version = "0.1.0"

// DefaultWidth is the fallback content width when terminal detection
// fails and the theme does not set one.
const DefaultWidth = 80

// Config configures a session. The zero value is usable: output goes to
// stdout, the default theme applies, and width is detected from the
// terminal.
type Config struct {
	AppName string
	Theme   *theme.Theme
	Width   int
	Debug   bool
	Out     io.Writer // defaults to os.Stdout
	Err     io.Writer // defaults to os.Stderr
	In      io.Reader // prompt input; defaults to os.Stdin
}

// Clicycle is one output session: one theme, one component history.
// Sessions are not safe for concurrent use; callers rendering from
// multiple goroutines must serialize access themselves.
type Clicycle struct {
	cfg        Config
	theme      *theme.Theme
	history    *History
	groupDepth int
	groupGen   int
}

// New creates a session. The theme is validated; an invalid theme falls
// back to the default so construction never fails, with the error
// reported through Configure for callers that need it.
func New(cfg Config) *Clicycle {
	normalized := normalizeConfig(cfg)
	th := normalized.Theme
	if th == nil || th.Validate() != nil {
		th = theme.Default()
	}
	return &Clicycle{
		cfg:     normalized,
		theme:   th,
		history: &History{},
	}
}

func normalizeConfig(cfg Config) Config {
	normalized := cfg
	if normalized.Out == nil {
		normalized.Out = os.Stdout
	}
	if normalized.Err == nil {
		normalized.Err = os.Stderr
	}
	return normalized
}

// Configure swaps the session's theme and application name. The theme is
// validated first; on error the current theme stays in effect. Takes
// effect for subsequently rendered components only.
func (c *Clicycle) Configure(appName string, th *theme.Theme) error {
	if th != nil {
		if err := th.Validate(); err != nil {
			return err
		}
		c.theme = th
	}
	if appName != "" {
		c.cfg.AppName = appName
	}
	return nil
}

// Theme returns the session's active theme.
func (c *Clicycle) Theme() *theme.Theme {
	return c.theme
}

// History returns the session's component history.
func (c *Clicycle) History() *History {
	return c.history
}

// Clear empties the component history and clears the terminal when the
// output is one. The next render behaves like the first render of a new
// session.
func (c *Clicycle) Clear() {
	c.history.Clear()
	if c.isTTY() {
		fmt.Fprint(c.cfg.Out, "\033[2J\033[H")
	}
}

// Block runs fn with inter-component spacing suspended, so everything
// rendered inside reads as one visual unit. Blocks nest; spacing resumes
// only when the outermost block exits. The depth counter is restored on
// every exit path.
func (c *Clicycle) Block(fn func()) {
	if c.groupDepth == 0 {
		c.groupGen++
	}
	c.groupDepth++
	defer func() { c.groupDepth-- }()
	fn()
}

func (c *Clicycle) inGroup() bool {
	return c.groupDepth > 0
}

// render is the dispatch protocol shared by every component: compute and
// emit lead spacing, delegate drawing, then record the descriptor.
func (c *Clicycle) render(kind theme.Kind, draw func(w io.Writer)) {
	inGroup := c.inGroup()
	lead := leadSpacing(c.history, kind, inGroup, c.theme.Spacing)
	if lead > 0 {
		fmt.Fprint(c.cfg.Out, strings.Repeat("\n", lead))
	}
	c.debugf("render kind=%s lead=%d group=%t", kind, lead, inGroup)
	draw(c.cfg.Out)
	d := Descriptor{
		Kind:        kind,
		GroupMember: inGroup,
		First:       c.history.Len() == 0,
	}
	if inGroup {
		d.Group = c.groupGen
	}
	c.history.Append(d)
}

// width returns the usable content width: the configured width if set,
// otherwise the detected terminal width, otherwise the fallback.
func (c *Clicycle) width() int {
	if c.cfg.Width > 0 {
		return c.cfg.Width
	}
	if f, ok := c.cfg.Out.(*os.File); ok {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			return w - 2
		}
	}
	if c.theme.Layout.Width > 0 {
		return c.theme.Layout.Width
	}
	return DefaultWidth
}

func (c *Clicycle) isTTY() bool {
	if f, ok := c.cfg.Out.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

func (c *Clicycle) debugf(format string, args ...any) {
	if c.cfg.Debug {
		fmt.Fprintf(c.cfg.Err, "[clicycle] "+format+"\n", args...)
	}
}
