// Package tui renders a live progress view for a batch run.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zspawn/internal/batch"
)

// maxShownFailures caps the failure lines kept on screen.
const maxShownFailures = 5

// progressMsg forwards a runner notification into the program.
type progressMsg batch.Progress

// doneMsg carries the outcome of the run.
type doneMsg struct {
	result batch.Result
	err    error
}

// Model is the root progress model.
type Model struct {
	version string
	total   int
	run     func() (batch.Result, error)
	cancel  context.CancelFunc

	generated int
	written   int
	uploaded  int
	failed    int
	lastFile  string
	failures  []string

	bar      progress.Model
	stopping bool
	done     bool
	result   batch.Result
	err      error
}

// New creates a model for a run of total records. run executes the batch;
// cancel is called when the user quits mid-run.
func New(version string, total int, run func() (batch.Result, error), cancel context.CancelFunc) Model {
	return Model{
		version: version,
		total:   total,
		run:     run,
		cancel:  cancel,
		bar:     progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
	}
}

// Run drives r inside a Bubble Tea program and returns the run's outcome.
// The runner's OnProgress hook is replaced for the duration of the run.
func Run(ctx context.Context, version string, r *batch.Runner, count int) (batch.Result, error) {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var p *tea.Program
	r.OnProgress = func(pr batch.Progress) {
		p.Send(progressMsg(pr))
	}

	m := New(version, count, func() (batch.Result, error) {
		return r.Run(runCtx, count)
	}, cancel)

	p = tea.NewProgram(m, tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil && ctx.Err() == nil {
		return batch.Result{}, fmt.Errorf("tui: %w", err)
	}

	fm, ok := final.(Model)
	if !ok || !fm.done {
		return batch.Result{}, context.Canceled
	}
	return fm.result, fm.err
}

func (m Model) Init() tea.Cmd {
	run := m.run
	return func() tea.Msg {
		res, err := run()
		return doneMsg{result: res, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case progressMsg:
		m.apply(batch.Progress(msg))
		return m, nil

	case doneMsg:
		m.done = true
		m.result = msg.result
		m.err = msg.err
		if m.stopping {
			return m, tea.Quit
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.done {
		// any key exits once the run has finished
		return m, tea.Quit
	}

	if key.Matches(msg, zstyle.KeyQuit) && !m.stopping {
		m.stopping = true
		if m.cancel != nil {
			m.cancel()
		}
	}

	return m, nil
}

func (m *Model) apply(p batch.Progress) {
	switch p.Kind {
	case batch.KindGenerated:
		m.generated++
	case batch.KindWritten:
		m.written++
		m.lastFile = p.Name
	case batch.KindUploaded:
		m.uploaded++
	case batch.KindUploadFailed:
		m.failed++
		m.failures = append(m.failures, fmt.Sprintf("%s: %v", p.Key, p.Err))
		if len(m.failures) > maxShownFailures {
			m.failures = m.failures[len(m.failures)-maxShownFailures:]
		}
	}
}

func (m Model) fraction() float64 {
	if m.total <= 0 {
		return 1
	}
	return float64(m.written) / float64(m.total)
}

func (m Model) View() string {
	indent := lipgloss.NewStyle().MarginLeft(2)

	var b strings.Builder
	b.WriteString("\n  " + zstyle.Title.Render("zspawn") + " " + zstyle.MutedText.Render(m.version) + "\n\n")
	b.WriteString(indent.Render(m.bar.ViewAs(m.fraction())) + "\n\n")

	counts := fmt.Sprintf("generated %d/%d  written %d  uploaded %d  failed %d",
		m.generated, m.total, m.written, m.uploaded, m.failed)
	b.WriteString("  " + zstyle.MutedText.Render(counts) + "\n")

	if m.lastFile != "" {
		b.WriteString("  " + zstyle.MutedText.Render("last file  ") + m.lastFile + "\n")
	}

	if len(m.failures) > 0 {
		b.WriteString("\n")
		for _, f := range m.failures {
			b.WriteString("  " + zstyle.StatusWarn.Render("- "+f) + "\n")
		}
	}

	b.WriteString("\n")
	switch {
	case m.done && m.err != nil:
		b.WriteString("  " + zstyle.StatusErr.Render(m.err.Error()) + "\n")
		b.WriteString("  " + zstyle.MutedText.Render("press any key to exit") + "\n")
	case m.done && m.result.UploadedOK():
		b.WriteString("  " + zstyle.StatusOK.Render(m.result.Summary()) + "\n")
		b.WriteString("  " + zstyle.MutedText.Render("press any key to exit") + "\n")
	case m.done:
		b.WriteString("  " + zstyle.StatusWarn.Render(m.result.Summary()) + "\n")
		b.WriteString("  " + zstyle.MutedText.Render("press any key to exit") + "\n")
	case m.stopping:
		b.WriteString("  " + zstyle.MutedText.Render("stopping...") + "\n")
	default:
		b.WriteString("  " + zstyle.MutedText.Render("q quit") + "\n")
	}

	return b.String()
}
