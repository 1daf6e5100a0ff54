package report

import (
	"context"
	"fmt"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const progressWidth = 40

type progressMsg struct{ done, total int }

type finishedMsg struct{ err error }

type tickMsg time.Time

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// ProgressModel shows how many sweep jobs have finished.
type ProgressModel struct {
	title  string
	done   int
	total  int
	frame  int
	err    error
	finish bool
}

func NewProgressModel(title string, total int) ProgressModel {
	return ProgressModel{title: title, total: total}
}

func (m ProgressModel) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/10, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m ProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "q" {
			m.err = context.Canceled
			return m, tea.Quit
		}
	case progressMsg:
		m.done, m.total = msg.done, msg.total
	case finishedMsg:
		m.finish = true
		m.err = msg.err
		if msg.err == nil {
			m.done = m.total
		}
		return m, tea.Quit
	case tickMsg:
		m.frame++
		return m, tick()
	}
	return m, nil
}

func (m ProgressModel) Percent() float64 {
	if m.total == 0 {
		return 0
	}
	return float64(m.done) / float64(m.total)
}

func (m ProgressModel) Err() error { return m.err }

func (m ProgressModel) View() string {
	status := spinnerFrames[m.frame%len(spinnerFrames)]
	if m.finish {
		status = "✓"
		if m.err != nil {
			status = "✗"
		}
	}
	return fmt.Sprintf("%s %s %s %d/%d\n", status, m.title, ProgressBar(m.Percent(), progressWidth), m.done, m.total)
}

// RunWithProgress runs work while drawing a progress bar to out. work
// receives a callback to report progress; it may be called from any
// goroutine. Cancelling ctx stops the bar and the work together.
func RunWithProgress(ctx context.Context, out io.Writer, title string, total int, work func(ctx context.Context, report func(done, total int)) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(NewProgressModel(title, total),
		tea.WithContext(ctx),
		tea.WithOutput(out),
		tea.WithInput(nil),
	)

	go func() {
		err := work(ctx, func(done, total int) {
			p.Send(progressMsg{done: done, total: total})
		})
		p.Send(finishedMsg{err: err})
	}()

	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(ProgressModel); ok {
		return m.Err()
	}
	return nil
}
