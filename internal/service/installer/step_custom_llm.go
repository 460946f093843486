package installer

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// CustomURLStep collects the base URL of a custom OpenAI-compatible
// endpoint. Skipped when OpenRouter was selected.
type CustomURLStep struct {
	input textinput.Model
}

func NewCustomURLStep() Step {
	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 255
	ti.Width = 40
	ti.Placeholder = "http://localhost:11434"

	return &CustomURLStep{
		input: ti,
	}
}

func (s *CustomURLStep) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, func() tea.Msg { return nextMsg{} })
}

func (s *CustomURLStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	if state.Env.LLMProvider != providerCustom {
		return nil, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "enter" {
			state.Env.CustomLLMBaseURL = s.input.Value()
			return nil, nil
		}
	}
	return s, cmd
}

func (s *CustomURLStep) View(state *InstallState) string {
	return "Enter your OpenAI-compatible Base URL:\n\n" +
		s.input.View() + "\n\n" +
		"(press enter to confirm)\n"
}

// CustomModelStep collects the model name for a custom endpoint.
type CustomModelStep struct {
	input textinput.Model
}

func NewCustomModelStep() Step {
	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 255
	ti.Width = 40
	ti.Placeholder = "llama3.1:8b"

	return &CustomModelStep{
		input: ti,
	}
}

func (s *CustomModelStep) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, func() tea.Msg { return nextMsg{} })
}

func (s *CustomModelStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	if state.Env.LLMProvider != providerCustom {
		return nil, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "enter" {
			state.Env.CustomLLMModel = s.input.Value()
			return nil, nil
		}
	}
	return s, cmd
}

func (s *CustomModelStep) View(state *InstallState) string {
	return "Enter the Model name:\n\n" +
		s.input.View() + "\n\n" +
		"(press enter to confirm)\n"
}
