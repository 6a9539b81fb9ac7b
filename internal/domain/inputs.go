package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MortgageInputs describes a fixed-rate repayment mortgage.
type MortgageInputs struct {
	Principal          decimal.Decimal `yaml:"principal" json:"principal"`
	AnnualRatePct      decimal.Decimal `yaml:"annual_rate_pct" json:"annual_rate_pct"`
	TermYears          int             `yaml:"term_years" json:"term_years"`
	MonthlyOverpayment decimal.Decimal `yaml:"monthly_overpayment,omitempty" json:"monthly_overpayment,omitempty"`

	// Optional context used to derive loan-to-value; not part of the
	// payment math.
	PropertyPrice decimal.Decimal `yaml:"property_price,omitempty" json:"property_price,omitempty"`
}

// RetirementInputs describes a pension pot projection request.
type RetirementInputs struct {
	CurrentAge          int             `yaml:"current_age" json:"current_age"`
	RetirementAge       int             `yaml:"retirement_age" json:"retirement_age"`
	StartingPot         decimal.Decimal `yaml:"starting_pot" json:"starting_pot"`
	MonthlyContribution decimal.Decimal `yaml:"monthly_contribution" json:"monthly_contribution"`
	EmployerMatchPct    decimal.Decimal `yaml:"employer_match_pct,omitempty" json:"employer_match_pct,omitempty"`
	NominalReturnPct    decimal.Decimal `yaml:"nominal_return_pct" json:"nominal_return_pct"`
	AnnualFeesPct       decimal.Decimal `yaml:"annual_fees_pct,omitempty" json:"annual_fees_pct,omitempty"`
	InflationRatePct    decimal.Decimal `yaml:"inflation_rate_pct,omitempty" json:"inflation_rate_pct,omitempty"`
	GoalAmount          decimal.Decimal `yaml:"goal_amount" json:"goal_amount"`
	MonthlyIncomeNeed   decimal.Decimal `yaml:"monthly_income_need,omitempty" json:"monthly_income_need,omitempty"`
}

// SalaryInputs describes a UK gross salary to net down.
type SalaryInputs struct {
	GrossAnnualSalary      decimal.Decimal `yaml:"gross_annual_salary" json:"gross_annual_salary"`
	PensionContributionPct decimal.Decimal `yaml:"pension_contribution_pct,omitempty" json:"pension_contribution_pct,omitempty"`
	WorkHoursFactor        decimal.Decimal `yaml:"work_hours_factor,omitempty" json:"work_hours_factor,omitempty"`
	HoursPerWeek           decimal.Decimal `yaml:"hours_per_week,omitempty" json:"hours_per_week,omitempty"`
}

// GoalKind discriminates the two payoff flavours.
type GoalKind string

const (
	KindSavingsGoal GoalKind = "savingsGoal"
	KindDebt        GoalKind = "debt"
)

// GoalOrDebt is a savings goal or a debt with a payoff deadline.
type GoalOrDebt struct {
	Name     string    `yaml:"name" json:"name"`
	Kind     GoalKind  `yaml:"kind" json:"kind"`
	Deadline time.Time `yaml:"deadline" json:"deadline"`

	// Savings goal fields.
	TargetAmount decimal.Decimal `yaml:"target_amount,omitempty" json:"target_amount,omitempty"`
	AmountSaved  decimal.Decimal `yaml:"amount_saved,omitempty" json:"amount_saved,omitempty"`

	// Debt fields.
	Balance              decimal.Decimal `yaml:"balance,omitempty" json:"balance,omitempty"`
	AnnualPercentageRate decimal.Decimal `yaml:"annual_percentage_rate,omitempty" json:"annual_percentage_rate,omitempty"`
}

// BudgetCategory is one of the 50/30/20 buckets.
type BudgetCategory string

const (
	CategoryNeeds   BudgetCategory = "needs"
	CategoryWants   BudgetCategory = "wants"
	CategorySavings BudgetCategory = "savings"
)

// BudgetEntry is a single dated spend or saving record.
type BudgetEntry struct {
	Description string          `yaml:"description,omitempty" json:"description,omitempty"`
	Category    BudgetCategory  `yaml:"category" json:"category"`
	Amount      decimal.Decimal `yaml:"amount" json:"amount"`
	Date        time.Time       `yaml:"date" json:"date"`
}

// BudgetInputs holds a month's income and its recorded entries.
type BudgetInputs struct {
	NetMonthlyIncome decimal.Decimal `yaml:"net_monthly_income" json:"net_monthly_income"`
	Entries          []BudgetEntry   `yaml:"entries,omitempty" json:"entries,omitempty"`
}

// Plan is a full plan file: any combination of calculator inputs. Absent
// sections are skipped when the plan is computed.
type Plan struct {
	Name       string            `yaml:"name,omitempty" json:"name,omitempty"`
	Mortgage   *MortgageInputs   `yaml:"mortgage,omitempty" json:"mortgage,omitempty"`
	Retirement *RetirementInputs `yaml:"retirement,omitempty" json:"retirement,omitempty"`
	Salary     *SalaryInputs     `yaml:"salary,omitempty" json:"salary,omitempty"`
	Goals      []GoalOrDebt      `yaml:"goals,omitempty" json:"goals,omitempty"`
	Budget     *BudgetInputs     `yaml:"budget,omitempty" json:"budget,omitempty"`
}
