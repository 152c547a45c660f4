package cli

import (
	"github.com/alexanderramin/focusday/internal/cli/formatter"
	"github.com/alexanderramin/focusday/internal/contract"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type planResultMsg struct {
	resp *contract.PlanResponse
	err  error
}

// progressModel shows a spinner while the plan use case runs in a tea.Cmd.
type progressModel struct {
	spinner spinner.Model
	message string
	work    tea.Cmd

	resp *contract.PlanResponse
	err  error
}

func newProgressModel(message string, work func() (*contract.PlanResponse, error)) progressModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(formatter.ColorHeader)

	return progressModel{
		spinner: s,
		message: message,
		work: func() tea.Msg {
			resp, err := work()
			return planResultMsg{resp: resp, err: err}
		},
	}
}

func (m progressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.work)
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case planResultMsg:
		m.resp = msg.resp
		m.err = msg.err
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

func (m progressModel) View() string {
	if m.resp != nil || m.err != nil {
		return ""
	}
	return m.spinner.View() + formatter.Dim(m.message) + "\n"
}

func runWithSpinner(message string, work func() (*contract.PlanResponse, error)) (*contract.PlanResponse, error) {
	out, err := tea.NewProgram(newProgressModel(message, work)).Run()
	if err != nil {
		return nil, err
	}
	final := out.(progressModel)
	return final.resp, final.err
}
