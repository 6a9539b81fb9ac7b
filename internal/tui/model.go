// Package tui is the terminal dashboard: one tab per calculator section
// of a plan file.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/finplan/finplan/internal/calculation"
	"github.com/finplan/finplan/internal/config"
	"github.com/finplan/finplan/internal/domain"
)

// Tab identifies a dashboard tab.
type Tab int

const (
	TabMortgage Tab = iota
	TabRetirement
	TabSalary
	TabPayoffs
	TabBudget
)

var tabNames = map[Tab]string{
	TabMortgage:   "Mortgage",
	TabRetirement: "Retirement",
	TabSalary:     "Salary",
	TabPayoffs:    "Goals & Debts",
	TabBudget:     "Budget",
}

// Model is the dashboard state.
type Model struct {
	planPath string

	plan    *domain.Plan
	summary *domain.PlanSummary

	tabs      []Tab
	activeTab int

	goalProgress progress.Model

	width  int
	height int

	loading bool
	err     error
}

// NewModel creates a dashboard for the given plan file.
func NewModel(planPath string) Model {
	return Model{
		planPath:     planPath,
		goalProgress: progress.New(progress.WithDefaultGradient()),
		width:        80,
		height:       24,
		loading:      true,
	}
}

// Init kicks off the plan load.
func (m Model) Init() tea.Cmd {
	return loadPlanCmd(m.planPath)
}

// loadPlanCmd parses the plan file and runs every calculator in it.
func loadPlanCmd(path string) tea.Cmd {
	return func() tea.Msg {
		parser := config.NewInputParser()
		plan, err := parser.LoadFromFile(path)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		engine := calculation.NewEngine()
		summary := engine.RunPlan(plan, time.Now())
		return PlanLoadedMsg{Plan: plan, Summary: summary}
	}
}

// availableTabs lists the tabs whose sections the plan actually computed.
func availableTabs(summary *domain.PlanSummary) []Tab {
	var tabs []Tab
	if summary.Mortgage != nil {
		tabs = append(tabs, TabMortgage)
	}
	if summary.Retirement != nil {
		tabs = append(tabs, TabRetirement)
	}
	if summary.Salary != nil {
		tabs = append(tabs, TabSalary)
	}
	if len(summary.Payoffs) > 0 {
		tabs = append(tabs, TabPayoffs)
	}
	if summary.Budget != nil {
		tabs = append(tabs, TabBudget)
	}
	return tabs
}
