package domain

import (
	"github.com/shopspring/decimal"
)

// AmortizationRow is one loan year's principal and interest totals,
// rounded to pence.
type AmortizationRow struct {
	Year          int             `json:"year"`
	PrincipalPaid decimal.Decimal `json:"principal_paid"`
	InterestPaid  decimal.Decimal `json:"interest_paid"`
}

// MortgageSchedule is the computed amortization schedule plus the
// aggregates derived from it.
type MortgageSchedule struct {
	MonthlyPayment decimal.Decimal   `json:"monthly_payment"`
	Rows           []AmortizationRow `json:"rows"`
	TotalPaid      decimal.Decimal   `json:"total_paid"`
	TotalInterest  decimal.Decimal   `json:"total_interest"`
	PayoffMonths   int               `json:"payoff_months"`
	LoanToValuePct decimal.Decimal   `json:"loan_to_value_pct"`

	// Truncated is set when the schedule hit the iteration bound before
	// the balance reached zero (payment not covering interest).
	Truncated bool `json:"truncated,omitempty"`
}

// ProjectionPoint is a yearly snapshot of the nominal pot value.
type ProjectionPoint struct {
	Year int             `json:"year"`
	Age  int             `json:"age"`
	Pot  decimal.Decimal `json:"pot"`
}

// RetirementSummary holds the projection series and the inflation-adjusted
// goal comparison. All fields are always present; zero means not
// applicable for the given inputs.
type RetirementSummary struct {
	YearsToGrow            int               `json:"years_to_grow"`
	Projection             []ProjectionPoint `json:"projection"`
	FinalPotNominal        decimal.Decimal   `json:"final_pot_nominal"`
	FinalPotReal           decimal.Decimal   `json:"final_pot_real"`
	RealReturnPct          decimal.Decimal   `json:"real_return_pct"`
	InflationAdjustedGoal  decimal.Decimal   `json:"inflation_adjusted_goal"`
	AdjustedMonthlyNeed    decimal.Decimal   `json:"adjusted_monthly_need"`
	GoalProgressPct        decimal.Decimal   `json:"goal_progress_pct"`
	SustainableAnnual      decimal.Decimal   `json:"sustainable_annual"`
	SustainableMonthly     decimal.Decimal   `json:"sustainable_monthly"`
	MonthlyIncomeGap       decimal.Decimal   `json:"monthly_income_gap"`
	TotalContributionsPaid decimal.Decimal   `json:"total_contributions_paid"`
}

// Tax band labels reported by the salary engine.
const (
	BandBasic      = "Basic Rate Payer"
	BandHigher     = "Higher Rate Payer"
	BandAdditional = "Very High Earner"
)

// SalaryResult is the full net-salary decomposition.
type SalaryResult struct {
	GrossSalary        decimal.Decimal `json:"gross_salary"`
	PensionAmount      decimal.Decimal `json:"pension_amount"`
	SalaryAfterPension decimal.Decimal `json:"salary_after_pension"`
	PersonalAllowance  decimal.Decimal `json:"personal_allowance"`
	IncomeTax          decimal.Decimal `json:"income_tax"`
	NationalInsurance  decimal.Decimal `json:"national_insurance"`
	NetAnnual          decimal.Decimal `json:"net_annual"`
	NetMonthly         decimal.Decimal `json:"net_monthly"`
	NetWeekly          decimal.Decimal `json:"net_weekly"`
	NetDaily           decimal.Decimal `json:"net_daily"`
	NetHourly          decimal.Decimal `json:"net_hourly"`
	EffectiveTaxPct    decimal.Decimal `json:"effective_tax_pct"`
	TaxBandLabel       string          `json:"tax_band_label"`
}

// PayoffResult is the required monthly figure for a goal or debt against
// its deadline. Debt-only fields are zero for savings goals.
type PayoffResult struct {
	Name              string          `json:"name"`
	Kind              GoalKind        `json:"kind"`
	MonthsRemaining   int             `json:"months_remaining"`
	RequiredMonthly   decimal.Decimal `json:"required_monthly"`
	TotalCostOverTerm decimal.Decimal `json:"total_cost_over_term"`
	TotalInterest     decimal.Decimal `json:"total_interest"`
	ProgressPct       decimal.Decimal `json:"progress_pct"`
}

// BudgetTargets is the 50/30/20 split of a net monthly income.
type BudgetTargets struct {
	Needs   decimal.Decimal `json:"needs"`
	Wants   decimal.Decimal `json:"wants"`
	Savings decimal.Decimal `json:"savings"`
}

// BudgetCategorySummary compares one bucket's spend to its target.
type BudgetCategorySummary struct {
	Category  BudgetCategory  `json:"category"`
	Target    decimal.Decimal `json:"target"`
	Spent     decimal.Decimal `json:"spent"`
	Remaining decimal.Decimal `json:"remaining"`
	UsedPct   decimal.Decimal `json:"used_pct"`
}

// BudgetSummary is the month's bucketed totals against the 50/30/20
// targets.
type BudgetSummary struct {
	MonthKey   string                  `json:"month_key"`
	Targets    BudgetTargets           `json:"targets"`
	Categories []BudgetCategorySummary `json:"categories"`
	TotalSpent decimal.Decimal         `json:"total_spent"`
	Unspent    decimal.Decimal         `json:"unspent"`
}

// PlanSummary gathers every computed section of a plan. Sections the plan
// did not request are nil.
type PlanSummary struct {
	Name       string             `json:"name,omitempty"`
	Mortgage   *MortgageSchedule  `json:"mortgage,omitempty"`
	Retirement *RetirementSummary `json:"retirement,omitempty"`
	Salary     *SalaryResult      `json:"salary,omitempty"`
	Payoffs    []PayoffResult     `json:"payoffs,omitempty"`
	Budget     *BudgetSummary     `json:"budget,omitempty"`
}
