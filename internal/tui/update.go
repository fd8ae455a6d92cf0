package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

var menuModes = []Mode{ModeStatus, ModeContribution, ModePlan, ModeCoastAge}

// Update handles all messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	// Standard tea.Msg types
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	// Custom messages
	case NavigateMsg:
		m.previousScene = m.currentScene
		m.currentScene = msg.Scene
		return m, nil

	case ErrorMsg:
		m.err = msg.Err
		m.loading = false
		return m, nil

	case ScenarioLoadedMsg:
		m.defaults = msg.Scenario
		return m, nil

	case FormSubmittedMsg:
		m.loading = true
		m.loadingMessage = "Calculating..."
		return m, m.calculateCmd(msg.Values)

	case ResultMsg:
		m.loading = false
		m.report = msg.Report
		m.previousScene = m.currentScene
		m.currentScene = SceneResult
		return m, nil
	}

	return m.updateCurrentScene(msg)
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// An error screen swallows the next key press
	if m.err != nil {
		m.err = nil
		return m, nil
	}

	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// While a form is active, letter keys belong to the inputs
	if m.currentScene == SceneForm {
		if msg.String() == "esc" {
			return m, navigateTo(SceneMenu)
		}
		return m.updateCurrentScene(msg)
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "?":
		if m.currentScene != SceneHelp {
			return m, navigateTo(SceneHelp)
		}

	case "esc", "m":
		if m.currentScene != SceneMenu {
			return m, navigateTo(SceneMenu)
		}
	}

	return m.updateCurrentScene(msg)
}

func navigateTo(scene Scene) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{Scene: scene}
	}
}

// updateCurrentScene delegates updates to the current scene
func (m Model) updateCurrentScene(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.currentScene {
	case SceneMenu:
		return m.updateMenu(msg)

	case SceneForm:
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		return m, cmd

	case SceneResult:
		return m.updateResult(msg)
	}

	return m, nil
}

// updateMenu handles mode selection
func (m Model) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if m.menuIndex > 0 {
			m.menuIndex--
		}

	case "down", "j":
		if m.menuIndex < len(menuModes)-1 {
			m.menuIndex++
		}

	case "1", "2", "3", "4":
		m.menuIndex = int(keyMsg.String()[0] - '1')
		return m.openForm()

	case "enter":
		return m.openForm()
	}

	return m, nil
}

// openForm builds a fresh form for the selected mode
func (m Model) openForm() (tea.Model, tea.Cmd) {
	m.mode = menuModes[m.menuIndex]
	m.form = newFormModel(m.mode, m.defaults)
	m.previousScene = m.currentScene
	m.currentScene = SceneForm
	return m, textinput.Blink
}

// updateResult lets the user jump back into the form to tweak inputs
func (m Model) updateResult(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "enter", "e":
		m.previousScene = m.currentScene
		m.currentScene = SceneForm
		return m, textinput.Blink
	}

	return m, nil
}
