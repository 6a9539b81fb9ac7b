package calculation

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finplan/finplan/internal/domain"
)

type recordingLogger struct {
	warnings []string
}

func (l *recordingLogger) Debugf(format string, args ...interface{}) {}
func (l *recordingLogger) Infof(format string, args ...interface{})  {}
func (l *recordingLogger) Warnf(format string, args ...interface{}) {
	l.warnings = append(l.warnings, fmt.Sprintf(format, args...))
}
func (l *recordingLogger) Errorf(format string, args ...interface{}) {}

func fullPlan() *domain.Plan {
	now := time.Date(2026, time.August, 23, 0, 0, 0, 0, time.UTC)
	return &domain.Plan{
		Name: "Household",
		Mortgage: &domain.MortgageInputs{
			Principal:     decimal.NewFromInt(270000),
			AnnualRatePct: decimal.NewFromFloat(4.5),
			TermYears:     25,
			PropertyPrice: decimal.NewFromInt(300000),
		},
		Retirement: &domain.RetirementInputs{
			CurrentAge:          30,
			RetirementAge:       65,
			StartingPot:         decimal.NewFromInt(20000),
			MonthlyContribution: decimal.NewFromInt(300),
			NominalReturnPct:    decimal.NewFromInt(6),
			InflationRatePct:    decimal.NewFromFloat(2.5),
			GoalAmount:          decimal.NewFromInt(500000),
		},
		Salary: &domain.SalaryInputs{
			GrossAnnualSalary:      decimal.NewFromInt(30000),
			PensionContributionPct: decimal.NewFromInt(8),
		},
		Goals: []domain.GoalOrDebt{
			{
				Name:         "House deposit",
				Kind:         domain.KindSavingsGoal,
				Deadline:     now.AddDate(1, 6, 0),
				TargetAmount: decimal.NewFromInt(6000),
				AmountSaved:  decimal.NewFromInt(1500),
			},
			{
				Name:                 "Credit card",
				Kind:                 domain.KindDebt,
				Deadline:             now.AddDate(1, 0, 0),
				Balance:              decimal.NewFromInt(5000),
				AnnualPercentageRate: decimal.NewFromInt(20),
			},
		},
		Budget: &domain.BudgetInputs{
			NetMonthlyIncome: decimal.NewFromInt(1899),
		},
	}
}

func TestRunPlanAllSections(t *testing.T) {
	now := time.Date(2026, time.August, 23, 0, 0, 0, 0, time.UTC)
	summary := NewEngine().RunPlan(fullPlan(), now)

	assert.Equal(t, "Household", summary.Name)
	require.NotNil(t, summary.Mortgage)
	require.NotNil(t, summary.Retirement)
	require.NotNil(t, summary.Salary)
	require.NotNil(t, summary.Budget)
	require.Len(t, summary.Payoffs, 2)

	assert.True(t, summary.Mortgage.LoanToValuePct.Equal(decimal.NewFromInt(90)))
	assert.Equal(t, "22790.40", summary.Salary.NetAnnual.StringFixed(2))
	assert.Equal(t, "2026-08", summary.Budget.MonthKey)
	assert.Equal(t, domain.KindSavingsGoal, summary.Payoffs[0].Kind)
	assert.Equal(t, domain.KindDebt, summary.Payoffs[1].Kind)
}

func TestRunPlanSkipsAbsentSections(t *testing.T) {
	now := time.Date(2026, time.August, 23, 0, 0, 0, 0, time.UTC)
	plan := &domain.Plan{
		Salary: &domain.SalaryInputs{GrossAnnualSalary: decimal.NewFromInt(45000)},
	}
	summary := NewEngine().RunPlan(plan, now)

	assert.Nil(t, summary.Mortgage)
	assert.Nil(t, summary.Retirement)
	assert.Nil(t, summary.Budget)
	assert.Empty(t, summary.Payoffs)
	require.NotNil(t, summary.Salary)
}

func TestRunPlanDeterministicAcrossCalls(t *testing.T) {
	now := time.Date(2026, time.August, 23, 0, 0, 0, 0, time.UTC)
	engine := NewEngine()
	plan := fullPlan()

	first := engine.RunPlan(plan, now)
	second := engine.RunPlan(plan, now)

	assert.Equal(t, first.Payoffs, second.Payoffs)
	assert.True(t, first.Mortgage.TotalInterest.Equal(second.Mortgage.TotalInterest))
	assert.True(t, first.Retirement.FinalPotNominal.Equal(second.Retirement.FinalPotNominal))
}

func TestRunPlanReferenceTimeMatters(t *testing.T) {
	plan := fullPlan()
	engine := NewEngine()

	early := engine.RunPlan(plan, time.Date(2026, time.August, 23, 0, 0, 0, 0, time.UTC))
	later := engine.RunPlan(plan, time.Date(2027, time.February, 23, 0, 0, 0, 0, time.UTC))

	// Six months closer to the deadlines means fewer months remaining and
	// a higher required contribution.
	assert.Equal(t, early.Payoffs[0].MonthsRemaining-6, later.Payoffs[0].MonthsRemaining)
	assert.True(t, later.Payoffs[0].RequiredMonthly.GreaterThan(early.Payoffs[0].RequiredMonthly))
}

func TestRunPlanWarnsOnTruncatedMortgage(t *testing.T) {
	now := time.Date(2026, time.August, 23, 0, 0, 0, 0, time.UTC)
	plan := &domain.Plan{
		Mortgage: &domain.MortgageInputs{
			Principal:          decimal.NewFromInt(100000),
			AnnualRatePct:      decimal.NewFromInt(10),
			TermYears:          25,
			MonthlyOverpayment: decimal.NewFromInt(-500),
		},
	}

	logger := &recordingLogger{}
	engine := NewEngine()
	engine.SetLogger(logger)
	summary := engine.RunPlan(plan, now)

	assert.True(t, summary.Mortgage.Truncated)
	require.NotEmpty(t, logger.warnings)
	assert.Contains(t, logger.warnings[0], "truncated")
}

func TestSetLoggerNilRestoresNop(t *testing.T) {
	engine := NewEngine()
	engine.SetLogger(&recordingLogger{})
	engine.SetLogger(nil)
	assert.IsType(t, NopLogger{}, engine.Logger)
}
