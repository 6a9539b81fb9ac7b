package calculation

import (
	"time"

	"github.com/finplan/finplan/internal/domain"
)

// Engine runs every calculator a plan asks for. The calculators are pure;
// the engine only adds debug tracing and the shared reference time, which
// callers supply so results stay deterministic.
type Engine struct {
	Logger Logger
	Debug  bool
}

// NewEngine creates an engine with a no-op logger.
func NewEngine() *Engine {
	return &Engine{Logger: NopLogger{}}
}

// SetLogger replaces the engine logger. Passing nil restores the no-op
// logger.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// RunPlan computes every section present in the plan, evaluated at now.
func (e *Engine) RunPlan(plan *domain.Plan, now time.Time) *domain.PlanSummary {
	summary := &domain.PlanSummary{Name: plan.Name}

	if plan.Mortgage != nil {
		schedule := BuildAmortizationSchedule(*plan.Mortgage)
		if e.Debug {
			e.Logger.Debugf("mortgage: payment=%s payoff=%d months interest=%s",
				schedule.MonthlyPayment, schedule.PayoffMonths, schedule.TotalInterest)
		}
		if schedule.Truncated {
			e.Logger.Warnf("mortgage schedule truncated: payment does not amortize the balance")
		}
		summary.Mortgage = &schedule
	}

	if plan.Retirement != nil {
		retirement := ProjectRetirement(*plan.Retirement)
		if e.Debug {
			e.Logger.Debugf("retirement: final pot=%s real=%s progress=%s%%",
				retirement.FinalPotNominal, retirement.FinalPotReal, retirement.GoalProgressPct)
		}
		summary.Retirement = &retirement
	}

	if plan.Salary != nil {
		salary := CalculateNetSalary(*plan.Salary)
		if e.Debug {
			e.Logger.Debugf("salary: net=%s band=%q", salary.NetAnnual, salary.TaxBandLabel)
		}
		summary.Salary = &salary
	}

	for _, goal := range plan.Goals {
		summary.Payoffs = append(summary.Payoffs, PlanPayoff(goal, now))
	}

	if plan.Budget != nil {
		budget := SummarizeMonth(*plan.Budget, now)
		summary.Budget = &budget
	}

	return summary
}
