package clicycle

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"

	"github.com/Living-Content/clicycle/pkg/theme"
)

// spinnerSets maps theme spinner style names to bubbles frame sets.
var spinnerSets = map[string]spinner.Spinner{
	"dot":     spinner.Dot,
	"line":    spinner.Line,
	"minidot": spinner.MiniDot,
	"jump":    spinner.Jump,
	"pulse":   spinner.Pulse,
	"points":  spinner.Points,
	"globe":   spinner.Globe,
	"moon":    spinner.Moon,
}

// WithSpinner renders an animated spinner next to message while fn runs,
// then replaces it with a success or error line depending on fn's result.
// The spinner registers exactly one history entry; the animation redraws
// in place and stops on every exit path. fn's error is returned
// unmodified.
func (c *Clicycle) WithSpinner(message string, fn func() error) (err error) {
	set, ok := spinnerSets[c.theme.Layout.SpinnerStyle]
	if !ok {
		set = spinner.Dot
	}

	s := &spinnerRunner{
		frames:   set.Frames,
		interval: set.FPS,
		message:  message,
		style:    c.theme.Typography.Prompt,
		writer:   c.cfg.Out,
	}

	c.render(theme.KindSpinner, func(w io.Writer) {
		if c.isTTY() {
			s.start()
			return
		}
		// No animation without a terminal; leave a static start line.
		fmt.Fprintln(w, c.theme.Typography.Info.Render(c.theme.Icons.Running)+" "+message)
	})

	completed := false
	defer func() {
		s.stop()
		if !completed {
			return
		}
		t := c.theme
		if err != nil {
			fmt.Fprintln(c.cfg.Out, t.Typography.Error.Render(t.Icons.Error)+" "+message)
		} else {
			fmt.Fprintln(c.cfg.Out, t.Typography.Success.Render(t.Icons.Success)+" "+message)
		}
	}()

	err = fn()
	completed = true
	return err
}

// spinnerRunner animates frames on a ticker goroutine and repaints the
// current line in place. Safe to stop more than once.
type spinnerRunner struct {
	frames   []string
	interval time.Duration
	message  string
	style    lipgloss.Style
	writer   io.Writer

	mu       sync.Mutex
	running  bool
	stopCh   chan struct{}
	doneCh   chan struct{}
	frameIdx int
}

func (s *spinnerRunner) start() {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.stopCh = make(chan struct{})
	s.doneCh = make(chan struct{})
	s.mu.Unlock()

	go s.run()
}

func (s *spinnerRunner) stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	close(s.stopCh)
	s.mu.Unlock()

	<-s.doneCh
	fmt.Fprint(s.writer, "\r\033[K")
}

func (s *spinnerRunner) run() {
	defer close(s.doneCh)

	interval := s.interval
	if interval <= 0 {
		interval = 80 * time.Millisecond
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.paint()
	for {
		select {
		case <-s.stopCh:
			return
		case <-ticker.C:
			s.mu.Lock()
			s.frameIdx = (s.frameIdx + 1) % len(s.frames)
			s.mu.Unlock()
			s.paint()
		}
	}
}

func (s *spinnerRunner) paint() {
	s.mu.Lock()
	frame := s.frames[s.frameIdx]
	msg := s.message
	s.mu.Unlock()

	fmt.Fprint(s.writer, "\r\033[K"+s.style.Render(frame)+" "+msg)
}

// ProgressTask is the in-place updater handed to a WithProgress body.
type ProgressTask struct {
	c     *Clicycle
	bar   progress.Model
	value float64
	label string
}

// Update redraws the bar at value (clamped to [0,1]) with an optional
// label. Updates repaint in place; no new history entries are created
// and the spacing engine is not consulted again.
func (p *ProgressTask) Update(value float64, label string) {
	if value < 0 {
		value = 0
	}
	if value > 1 {
		value = 1
	}
	p.value = value
	if label != "" {
		p.label = label
	}
	if p.c.isTTY() {
		p.paint()
	}
}

func (p *ProgressTask) paint() {
	fmt.Fprint(p.c.cfg.Out, "\r\033[K"+p.view())
}

func (p *ProgressTask) view() string {
	line := p.bar.ViewAs(p.value)
	if p.label != "" {
		line += " " + p.c.theme.Typography.SummaryLabel.Render(p.label)
	}
	return line
}

// WithProgress renders a description line and a progress bar, hands fn
// an updater, and finalizes the bar line on every exit path. One history
// entry covers the whole component.
func (c *Clicycle) WithProgress(description string, fn func(*ProgressTask) error) error {
	task := &ProgressTask{
		c: c,
		bar: progress.New(
			progress.WithDefaultGradient(),
			progress.WithWidth(c.progressWidth()),
		),
	}

	c.render(theme.KindProgress, func(w io.Writer) {
		fmt.Fprintln(w, c.theme.Typography.Info.Render(description))
		if c.isTTY() {
			task.paint()
		}
	})

	defer func() {
		if c.isTTY() {
			fmt.Fprint(c.cfg.Out, "\r\033[K")
		}
		fmt.Fprintln(c.cfg.Out, task.view())
	}()

	return fn(task)
}

func (c *Clicycle) progressWidth() int {
	if w := c.theme.Layout.ProgressWidth; w > 0 {
		return w
	}
	return 40
}

// TaskLine is one named sub-task of a MultiProgress frame.
type TaskLine struct {
	Name    string
	ShortID string
	Total   int
	Current int
}

// MultiProgress tracks several independently advancing sub-tasks sharing
// one frame. The frame repaints in place; sub-task values clamp at their
// declared totals.
type MultiProgress struct {
	c           *Clicycle
	description string
	bar         progress.Model
	tasks       []*TaskLine
	drawn       int // lines currently on screen, for repaint
}

// AddTask registers a sub-task with a total and short identifying label
// and redraws the frame.
func (m *MultiProgress) AddTask(name string, total int, shortID string) *TaskLine {
	if total < 1 {
		total = 1
	}
	t := &TaskLine{Name: name, ShortID: shortID, Total: total}
	m.tasks = append(m.tasks, t)
	m.repaint()
	return t
}

// Advance moves a sub-task forward by n, clamped at its total, and
// redraws the frame. Advancing past the total is not an error.
func (m *MultiProgress) Advance(t *TaskLine, n int) {
	t.Current += n
	if t.Current > t.Total {
		t.Current = t.Total
	}
	if t.Current < 0 {
		t.Current = 0
	}
	m.repaint()
}

func (m *MultiProgress) frame() []string {
	lines := []string{m.c.theme.Typography.Info.Render(m.description)}
	for _, t := range m.tasks {
		frac := float64(t.Current) / float64(t.Total)
		label := fmt.Sprintf("%s %d/%d", t.Name, t.Current, t.Total)
		line := "  " + m.c.theme.Typography.SummaryLabel.Render(t.ShortID) + " " +
			m.bar.ViewAs(frac) + " " + m.c.theme.Typography.SummaryValue.Render(label)
		lines = append(lines, line)
	}
	return lines
}

// repaint moves the cursor back over the previously drawn frame and
// redraws it, the in-place update model used for live terminal output.
func (m *MultiProgress) repaint() {
	if !m.c.isTTY() {
		return
	}
	out := m.c.cfg.Out
	if m.drawn > 0 {
		fmt.Fprintf(out, "\033[%dA", m.drawn)
	}
	lines := m.frame()
	for _, line := range lines {
		fmt.Fprint(out, "\r\033[K"+line+"\n")
	}
	m.drawn = len(lines)
}

// WithMultiProgress renders a shared multi-task progress frame, hands fn
// the tracker, and leaves the final frame on screen on every exit path.
func (c *Clicycle) WithMultiProgress(description string, fn func(*MultiProgress) error) error {
	mp := &MultiProgress{
		c:           c,
		description: description,
		bar: progress.New(
			progress.WithDefaultGradient(),
			progress.WithWidth(c.progressWidth()),
		),
	}

	c.render(theme.KindProgress, func(w io.Writer) {
		if c.isTTY() {
			mp.repaint()
			return
		}
		fmt.Fprintln(w, c.theme.Typography.Info.Render(description))
	})

	defer func() {
		if !c.isTTY() {
			for _, line := range mp.frame()[1:] {
				fmt.Fprintln(c.cfg.Out, line)
			}
		}
	}()

	return fn(mp)
}
