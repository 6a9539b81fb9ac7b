package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles all messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.goalProgress.Width = min(msg.Width-20, 60)
		return m, nil

	case PlanLoadedMsg:
		m.plan = msg.Plan
		m.summary = msg.Summary
		m.tabs = availableTabs(msg.Summary)
		m.activeTab = 0
		m.loading = false
		m.err = nil
		return m, nil

	case ErrorMsg:
		m.err = msg.Err
		m.loading = false
		return m, nil
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit

	case "tab", "right", "l":
		if len(m.tabs) > 0 {
			m.activeTab = (m.activeTab + 1) % len(m.tabs)
		}
		return m, nil

	case "shift+tab", "left", "h":
		if len(m.tabs) > 0 {
			m.activeTab = (m.activeTab - 1 + len(m.tabs)) % len(m.tabs)
		}
		return m, nil

	case "r":
		m.loading = true
		return m, loadPlanCmd(m.planPath)
	}

	return m, nil
}
