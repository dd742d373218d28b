// Package report implements the CLI's "wait for a keypress before
// exiting" behavior as a tiny bubbletea program rather than a raw
// bufio read. The banner, progress, and result lines themselves are
// printed directly to stdout as they are produced (the solve is a
// blocking, non-suspending pass); this model only owns the final
// prompt.
package report

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Italic(true)

// Model waits for a single keypress, then quits.
type Model struct {
	prompt string
	done   bool
}

// New builds a report model with the given exit prompt text.
func New(prompt string) Model {
	if prompt == "" {
		prompt = "Press any key to exit..."
	}
	return Model{prompt: prompt}
}

// Init schedules no ticks; the model only ever reacts to a keypress.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update exits on any key.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case tea.KeyMsg:
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the exit prompt.
func (m Model) View() string {
	return promptStyle.Render(m.prompt) + "\n"
}

// Done reports whether a keypress has ended the prompt.
func (m Model) Done() bool {
	return m.done
}
