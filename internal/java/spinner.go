package java

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type spinnerFinishedMsg struct{ err error }

type scannerModel struct {
	spinner  spinner.Model
	title    string
	quitting bool
}

func newScannerModel(title string) scannerModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))

	return scannerModel{
		spinner: s,
		title:   title,
	}
}

func (m scannerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m scannerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case spinnerFinishedMsg:
		m.quitting = true
		return m, tea.Quit

	default:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
}

func (m scannerModel) View() string {
	if m.quitting {
		return ""
	}
	return fmt.Sprintf(" %s %s\n", m.spinner.View(), m.title)
}

// WithScanner runs fn while showing a spinner with the given title and
// returns fn's error.
func WithScanner(title string, fn func() error) error {
	p := tea.NewProgram(newScannerModel(title))

	done := make(chan error, 1)
	go func() {
		time.Sleep(50 * time.Millisecond) // Give UI time to start
		err := fn()
		done <- err
		p.Send(spinnerFinishedMsg{err: err})
	}()

	if _, err := p.Run(); err != nil {
		return err
	}

	return <-done
}
