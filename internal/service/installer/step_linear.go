package installer

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// LinearKeyStep collects the Linear API key
type LinearKeyStep struct {
	input textinput.Model
}

func NewLinearKeyStep() Step {
	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 255
	ti.Width = 40
	ti.Placeholder = "lin_api_..."
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = '•'

	return &LinearKeyStep{
		input: ti,
	}
}

func (s *LinearKeyStep) Init() tea.Cmd {
	return textinput.Blink
}

func (s *LinearKeyStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "enter" {
			state.Env.LinearAPIKey = s.input.Value()
			return nil, nil
		}
	}
	return s, cmd
}

func (s *LinearKeyStep) View(state *InstallState) string {
	return "Enter your Linear API Key:\n\n" +
		s.input.View() + "\n\n" +
		"(press enter to confirm)\n"
}

// LinearTeamStep collects the Linear team name tickets belong to
type LinearTeamStep struct {
	input textinput.Model
}

func NewLinearTeamStep() Step {
	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 255
	ti.Width = 40
	ti.Placeholder = "Engineering"

	return &LinearTeamStep{
		input: ti,
	}
}

func (s *LinearTeamStep) Init() tea.Cmd {
	return textinput.Blink
}

func (s *LinearTeamStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "enter" {
			state.Env.LinearTeamName = s.input.Value()
			return nil, nil
		}
	}
	return s, cmd
}

func (s *LinearTeamStep) View(state *InstallState) string {
	return "Enter your Linear Team name:\n\n" +
		s.input.View() + "\n\n" +
		"(press enter to confirm)\n"
}
