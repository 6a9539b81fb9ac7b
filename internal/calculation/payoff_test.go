package calculation

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/finplan/finplan/internal/domain"
)

var payoffNow = time.Date(2026, time.August, 23, 0, 0, 0, 0, time.UTC)

func TestDebtMonthlyPayment(t *testing.T) {
	// £5,000 card balance at 20% APR cleared in a year.
	payment := DebtMonthlyPayment(decimal.NewFromInt(5000), decimal.NewFromInt(20), 12)
	assert.InDelta(t, 463.17, payment.InexactFloat64(), 0.5)

	// Interest-free balance splits evenly.
	payment = DebtMonthlyPayment(decimal.NewFromInt(1200), decimal.Zero, 12)
	assert.True(t, payment.Equal(decimal.NewFromInt(100)))

	assert.True(t, DebtMonthlyPayment(decimal.NewFromInt(5000), decimal.NewFromInt(20), 0).IsZero())
}

func TestRequiredSavingsContribution(t *testing.T) {
	got := RequiredSavingsContribution(decimal.NewFromInt(6000), decimal.NewFromInt(1500), 18)
	assert.Equal(t, "250.00", got.StringFixed(2))

	// Already met: nothing more needed.
	got = RequiredSavingsContribution(decimal.NewFromInt(6000), decimal.NewFromInt(8000), 18)
	assert.True(t, got.IsZero())

	// Deadline elapsed.
	got = RequiredSavingsContribution(decimal.NewFromInt(6000), decimal.NewFromInt(1500), 0)
	assert.True(t, got.IsZero())
}

func TestPlanPayoffDebt(t *testing.T) {
	g := domain.GoalOrDebt{
		Name:                 "Credit card",
		Kind:                 domain.KindDebt,
		Deadline:             payoffNow.AddDate(1, 0, 0),
		Balance:              decimal.NewFromInt(5000),
		AnnualPercentageRate: decimal.NewFromInt(20),
	}
	result := PlanPayoff(g, payoffNow)

	assert.Equal(t, "Credit card", result.Name)
	assert.Equal(t, domain.KindDebt, result.Kind)
	assert.Equal(t, 12, result.MonthsRemaining)
	assert.InDelta(t, 463.17, result.RequiredMonthly.InexactFloat64(), 0.5)

	// Total cost is payment times months, interest the excess over the
	// balance.
	expectedCost := result.RequiredMonthly.Mul(decimal.NewFromInt(12))
	assert.InDelta(t, expectedCost.InexactFloat64(), result.TotalCostOverTerm.InexactFloat64(), 0.1)
	assert.True(t, result.TotalInterest.GreaterThan(decimal.NewFromInt(500)))
	assert.True(t, result.TotalInterest.LessThan(decimal.NewFromInt(650)))
}

func TestPlanPayoffDebtPastDeadline(t *testing.T) {
	g := domain.GoalOrDebt{
		Name:                 "Old loan",
		Kind:                 domain.KindDebt,
		Deadline:             payoffNow.AddDate(0, -6, 0),
		Balance:              decimal.NewFromInt(3000),
		AnnualPercentageRate: decimal.NewFromInt(9),
	}
	result := PlanPayoff(g, payoffNow)

	assert.Zero(t, result.MonthsRemaining)
	assert.True(t, result.RequiredMonthly.IsZero())
	assert.True(t, result.TotalCostOverTerm.IsZero())
	assert.True(t, result.TotalInterest.IsZero())
}

func TestPlanPayoffSavingsGoal(t *testing.T) {
	g := domain.GoalOrDebt{
		Name:         "House deposit",
		Kind:         domain.KindSavingsGoal,
		Deadline:     payoffNow.AddDate(1, 6, 0),
		TargetAmount: decimal.NewFromInt(6000),
		AmountSaved:  decimal.NewFromInt(1500),
	}
	result := PlanPayoff(g, payoffNow)

	assert.Equal(t, 18, result.MonthsRemaining)
	assert.Equal(t, "250.00", result.RequiredMonthly.StringFixed(2))
	assert.Equal(t, "25.0", result.ProgressPct.StringFixed(1))
}

func TestPlanPayoffGoalAlreadyMet(t *testing.T) {
	g := domain.GoalOrDebt{
		Name:         "Emergency fund",
		Kind:         domain.KindSavingsGoal,
		Deadline:     payoffNow.AddDate(0, 10, 0),
		TargetAmount: decimal.NewFromInt(5000),
		AmountSaved:  decimal.NewFromInt(7500),
	}
	result := PlanPayoff(g, payoffNow)

	assert.True(t, result.RequiredMonthly.IsZero())
	assert.Equal(t, "100.0", result.ProgressPct.StringFixed(1))
}

func TestPlanPayoffUnknownKindTreatedAsGoal(t *testing.T) {
	g := domain.GoalOrDebt{
		Name:         "Mystery",
		Kind:         domain.GoalKind("sinkingFund"),
		Deadline:     payoffNow.AddDate(0, 5, 0),
		TargetAmount: decimal.NewFromInt(1000),
	}
	result := PlanPayoff(g, payoffNow)

	assert.Equal(t, "200.00", result.RequiredMonthly.StringFixed(2))
	assert.True(t, result.TotalInterest.IsZero())
}
