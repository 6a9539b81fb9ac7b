package tui

import (
	"github.com/finplan/finplan/internal/domain"
)

// PlanLoadedMsg carries a parsed plan and its computed summary.
type PlanLoadedMsg struct {
	Plan    *domain.Plan
	Summary *domain.PlanSummary
}

// ErrorMsg carries a load or computation failure.
type ErrorMsg struct {
	Err error
}
