package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// fetchFunc performs one lookup and returns its rendered output.
type fetchFunc func(ctx context.Context) (string, error)

// withSpinner runs fetch behind a spinner and prints its output once done.
// Ctrl+C or SIGINT/SIGTERM cancel the lookup.
func withSpinner(label string, fetch fetchFunc) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	p := tea.NewProgram(newFetchModel(ctx, cancel, label, fetch))
	m, err := p.Run()
	if err != nil {
		return fmt.Errorf("run %s: %w", label, err)
	}

	fm, ok := m.(fetchModel)
	if !ok {
		return fmt.Errorf("unexpected model type from tea program")
	}
	if !fm.done {
		return context.Canceled
	}
	return fm.err
}

// fetchResultMsg carries the lookup outcome back to the TUI.
type fetchResultMsg struct {
	output string
	err    error
}

type fetchModel struct {
	ctx     context.Context
	cancel  context.CancelFunc
	label   string
	fetch   fetchFunc
	spinner spinner.Model
	output  string
	err     error
	done    bool
}

func newFetchModel(ctx context.Context, cancel context.CancelFunc, label string, fetch fetchFunc) fetchModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styleInfo
	return fetchModel{
		ctx:     ctx,
		cancel:  cancel,
		label:   label,
		fetch:   fetch,
		spinner: s,
	}
}

func (m fetchModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.run())
}

func (m fetchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.cancel()
			return m, tea.Quit
		}
	case fetchResultMsg:
		m.output = msg.output
		m.err = msg.err
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m fetchModel) View() string {
	if m.done {
		return m.output
	}
	return m.spinner.View() + styleDim.Render(" "+m.label+"...") + "\n"
}

func (m fetchModel) run() tea.Cmd {
	return func() tea.Msg {
		out, err := m.fetch(m.ctx)
		return fetchResultMsg{output: out, err: err}
	}
}
