// Package config loads and validates plan files. Validation here is the
// strict counterpart to the engines' lenient clamping: out-of-range
// inputs are reported as typed errors instead of being silently floored.
package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/finplan/finplan/internal/domain"
)

// ValidationError describes one rejected field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalid(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// InputParser handles parsing of plan files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads and validates a YAML plan file.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Plan, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var plan domain.Plan
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidatePlan(&plan); err != nil {
		return nil, fmt.Errorf("plan validation failed: %w", err)
	}
	return &plan, nil
}

// ValidatePlan validates every section present in a plan.
func (ip *InputParser) ValidatePlan(plan *domain.Plan) error {
	if plan.Mortgage == nil && plan.Retirement == nil && plan.Salary == nil &&
		len(plan.Goals) == 0 && plan.Budget == nil {
		return invalid("plan", "no calculator sections provided")
	}

	if plan.Mortgage != nil {
		if err := ValidateMortgageInputs(plan.Mortgage); err != nil {
			return err
		}
	}
	if plan.Retirement != nil {
		if err := ValidateRetirementInputs(plan.Retirement); err != nil {
			return err
		}
	}
	if plan.Salary != nil {
		if err := ValidateSalaryInputs(plan.Salary); err != nil {
			return err
		}
	}
	for i := range plan.Goals {
		if err := ValidateGoalOrDebt(&plan.Goals[i]); err != nil {
			return fmt.Errorf("goal %d (%s): %w", i, plan.Goals[i].Name, err)
		}
	}
	if plan.Budget != nil {
		if err := ValidateBudgetInputs(plan.Budget); err != nil {
			return err
		}
	}
	return nil
}

// ValidateMortgageInputs rejects inputs the lenient engine would clamp.
func ValidateMortgageInputs(in *domain.MortgageInputs) error {
	if in.Principal.IsNegative() {
		return invalid("mortgage.principal", "must not be negative")
	}
	if in.AnnualRatePct.IsNegative() {
		return invalid("mortgage.annual_rate_pct", "must not be negative")
	}
	if in.TermYears <= 0 {
		return invalid("mortgage.term_years", "must be positive, got %d", in.TermYears)
	}
	if in.MonthlyOverpayment.IsNegative() {
		return invalid("mortgage.monthly_overpayment", "must not be negative")
	}
	return nil
}

// ValidateRetirementInputs checks age ordering and percentage ranges.
func ValidateRetirementInputs(in *domain.RetirementInputs) error {
	if in.CurrentAge < 0 {
		return invalid("retirement.current_age", "must not be negative")
	}
	if in.RetirementAge < in.CurrentAge {
		return invalid("retirement.retirement_age", "must be at least current age (%d)", in.CurrentAge)
	}
	if in.StartingPot.IsNegative() {
		return invalid("retirement.starting_pot", "must not be negative")
	}
	if in.MonthlyContribution.IsNegative() {
		return invalid("retirement.monthly_contribution", "must not be negative")
	}
	if in.EmployerMatchPct.IsNegative() {
		return invalid("retirement.employer_match_pct", "must not be negative")
	}
	if in.AnnualFeesPct.IsNegative() {
		return invalid("retirement.annual_fees_pct", "must not be negative")
	}
	if in.GoalAmount.LessThanOrEqual(decimal.Zero) {
		return invalid("retirement.goal_amount", "must be positive")
	}
	if in.MonthlyIncomeNeed.IsNegative() {
		return invalid("retirement.monthly_income_need", "must not be negative")
	}
	return nil
}

// ValidateSalaryInputs checks ranges on the salary calculator inputs.
func ValidateSalaryInputs(in *domain.SalaryInputs) error {
	if in.GrossAnnualSalary.IsNegative() {
		return invalid("salary.gross_annual_salary", "must not be negative")
	}
	hundred := decimal.NewFromInt(100)
	if in.PensionContributionPct.IsNegative() || in.PensionContributionPct.GreaterThan(hundred) {
		return invalid("salary.pension_contribution_pct", "must be between 0 and 100")
	}
	if !in.WorkHoursFactor.IsZero() {
		one := decimal.NewFromInt(1)
		if in.WorkHoursFactor.IsNegative() || in.WorkHoursFactor.GreaterThan(one) {
			return invalid("salary.work_hours_factor", "must be between 0 and 1")
		}
	}
	if !in.HoursPerWeek.IsZero() {
		if in.HoursPerWeek.LessThan(decimal.NewFromInt(10)) || in.HoursPerWeek.GreaterThan(decimal.NewFromInt(80)) {
			return invalid("salary.hours_per_week", "must be between 10 and 80")
		}
	}
	return nil
}

// ValidateGoalOrDebt checks the discriminated goal/debt record.
func ValidateGoalOrDebt(g *domain.GoalOrDebt) error {
	switch g.Kind {
	case domain.KindSavingsGoal:
		if g.TargetAmount.LessThanOrEqual(decimal.Zero) {
			return invalid("goal.target_amount", "must be positive")
		}
		if g.AmountSaved.IsNegative() {
			return invalid("goal.amount_saved", "must not be negative")
		}
		if g.AmountSaved.GreaterThan(g.TargetAmount) {
			return invalid("goal.amount_saved", "must not exceed target amount")
		}
	case domain.KindDebt:
		if g.Balance.IsNegative() {
			return invalid("goal.balance", "must not be negative")
		}
		if g.AnnualPercentageRate.IsNegative() {
			return invalid("goal.annual_percentage_rate", "must not be negative")
		}
	default:
		return invalid("goal.kind", "must be %q or %q, got %q", domain.KindSavingsGoal, domain.KindDebt, g.Kind)
	}
	if g.Deadline.IsZero() {
		return invalid("goal.deadline", "is required")
	}
	return nil
}

// ValidateBudgetInputs checks the budget tracker inputs.
func ValidateBudgetInputs(in *domain.BudgetInputs) error {
	if in.NetMonthlyIncome.IsNegative() {
		return invalid("budget.net_monthly_income", "must not be negative")
	}
	for i, e := range in.Entries {
		switch e.Category {
		case domain.CategoryNeeds, domain.CategoryWants, domain.CategorySavings:
		default:
			return invalid(fmt.Sprintf("budget.entries[%d].category", i),
				"must be needs, wants or savings, got %q", e.Category)
		}
		if e.Amount.IsNegative() {
			return invalid(fmt.Sprintf("budget.entries[%d].amount", i), "must not be negative")
		}
		if e.Date.IsZero() {
			return invalid(fmt.Sprintf("budget.entries[%d].date", i), "is required")
		}
	}
	return nil
}
