package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finplan/finplan/internal/domain"
)

func TestRealReturnPct(t *testing.T) {
	tests := []struct {
		name      string
		nominal   float64
		inflation float64
		want      string
	}{
		{"typical", 7, 2, "4.90"},
		{"zero inflation", 5, 0, "5.00"},
		{"inflation eats return", 2, 2, "0.00"},
		{"negative real return", 1, 4, "-2.88"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RealReturnPct(decimal.NewFromFloat(tt.nominal), decimal.NewFromFloat(tt.inflation))
			assert.Equal(t, tt.want, got.Round(2).StringFixed(2))
		})
	}
}

func TestProjectPotZeroMonths(t *testing.T) {
	assert.Nil(t, ProjectPot(decimal.NewFromInt(1000), decimal.NewFromInt(100), decimal.NewFromInt(5), decimal.Zero, 0, 30))
	assert.Nil(t, ProjectPot(decimal.NewFromInt(1000), decimal.NewFromInt(100), decimal.NewFromInt(5), decimal.Zero, -12, 30))
}

func TestProjectPotZeroReturn(t *testing.T) {
	// With no growth the pot is just starting balance plus one
	// contribution per month after the first tick.
	points := ProjectPot(decimal.NewFromInt(1000), decimal.NewFromInt(100), decimal.Zero, decimal.Zero, 24, 40)

	require.Len(t, points, 2)
	assert.Equal(t, 1, points[0].Year)
	assert.Equal(t, 41, points[0].Age)
	assert.True(t, points[0].Pot.Equal(decimal.NewFromInt(2100)), "got %s", points[0].Pot)
	assert.True(t, points[1].Pot.Equal(decimal.NewFromInt(3300)), "got %s", points[1].Pot)
}

func TestProjectPotPartialFinalYear(t *testing.T) {
	points := ProjectPot(decimal.NewFromInt(5000), decimal.NewFromInt(50), decimal.NewFromInt(4), decimal.Zero, 30, 0)

	// Two full years plus a trailing partial point.
	require.Len(t, points, 3)
	assert.Equal(t, 1, points[0].Year)
	assert.Equal(t, 2, points[1].Year)
	assert.Equal(t, 3, points[2].Year)
}

func TestProjectPotFeesReduceGrowth(t *testing.T) {
	gross := ProjectPot(decimal.NewFromInt(10000), decimal.NewFromInt(200), decimal.NewFromInt(6), decimal.Zero, 120, 0)
	net := ProjectPot(decimal.NewFromInt(10000), decimal.NewFromInt(200), decimal.NewFromInt(6), decimal.NewFromFloat(0.75), 120, 0)

	require.NotEmpty(t, gross)
	require.NotEmpty(t, net)
	assert.True(t, net[len(net)-1].Pot.LessThan(gross[len(gross)-1].Pot))
}

func TestProjectPotNeverNegative(t *testing.T) {
	// Absurd fees drain the pot but the reported values floor at zero.
	points := ProjectPot(decimal.NewFromInt(10000), decimal.Zero, decimal.Zero, decimal.NewFromInt(2400), 36, 0)
	for _, p := range points {
		assert.False(t, p.Pot.IsNegative(), "year %d pot %s", p.Year, p.Pot)
	}
}

func TestTotalMonthlyContribution(t *testing.T) {
	got := TotalMonthlyContribution(decimal.NewFromInt(300), decimal.NewFromInt(3))
	assert.Equal(t, "309.00", got.StringFixed(2))

	got = TotalMonthlyContribution(decimal.NewFromInt(300), decimal.Zero)
	assert.Equal(t, "300.00", got.StringFixed(2))
}

func TestProjectRetirementTypical(t *testing.T) {
	in := domain.RetirementInputs{
		CurrentAge:          30,
		RetirementAge:       65,
		StartingPot:         decimal.NewFromInt(20000),
		MonthlyContribution: decimal.NewFromInt(300),
		EmployerMatchPct:    decimal.NewFromInt(3),
		NominalReturnPct:    decimal.NewFromInt(6),
		AnnualFeesPct:       decimal.NewFromFloat(0.5),
		InflationRatePct:    decimal.NewFromFloat(2.5),
		GoalAmount:          decimal.NewFromInt(500000),
		MonthlyIncomeNeed:   decimal.NewFromInt(1500),
	}
	summary := ProjectRetirement(in)

	assert.Equal(t, 35, summary.YearsToGrow)
	require.Len(t, summary.Projection, 35)
	assert.Equal(t, 65, summary.Projection[len(summary.Projection)-1].Age)

	// Pot beats the sum of what went in, and deflating it shrinks it.
	paidIn := in.StartingPot.Add(summary.TotalContributionsPaid)
	assert.True(t, summary.FinalPotNominal.GreaterThan(paidIn))
	assert.True(t, summary.FinalPotReal.LessThan(summary.FinalPotNominal))

	// Goal and income need grow by the same inflation factor.
	assert.True(t, summary.InflationAdjustedGoal.GreaterThan(in.GoalAmount))
	assert.True(t, summary.AdjustedMonthlyNeed.GreaterThan(in.MonthlyIncomeNeed))

	assert.True(t, summary.GoalProgressPct.GreaterThanOrEqual(decimal.Zero))
	assert.True(t, summary.GoalProgressPct.LessThanOrEqual(decimal.NewFromInt(100)))

	// Sustainable income is 3.5% of the real pot, split monthly.
	expectedAnnual := summary.FinalPotReal.Mul(decimal.NewFromFloat(0.035))
	assert.InDelta(t, expectedAnnual.InexactFloat64(), summary.SustainableAnnual.InexactFloat64(), 1.0)
	assert.InDelta(t, summary.SustainableAnnual.InexactFloat64()/12, summary.SustainableMonthly.InexactFloat64(), 0.01)
	gap := summary.SustainableMonthly.Sub(summary.AdjustedMonthlyNeed)
	assert.True(t, gap.Equal(summary.MonthlyIncomeGap))
}

func TestProjectRetirementAlreadyRetired(t *testing.T) {
	in := domain.RetirementInputs{
		CurrentAge:       70,
		RetirementAge:    65,
		StartingPot:      decimal.NewFromInt(150000),
		NominalReturnPct: decimal.NewFromInt(5),
		InflationRatePct: decimal.NewFromInt(2),
		GoalAmount:       decimal.NewFromInt(150000),
	}
	summary := ProjectRetirement(in)

	assert.Equal(t, 0, summary.YearsToGrow)
	assert.Empty(t, summary.Projection)
	assert.True(t, summary.FinalPotNominal.Equal(in.StartingPot))
	assert.True(t, summary.FinalPotReal.Equal(decimal.NewFromInt(150000)))
	assert.Equal(t, "100.0", summary.GoalProgressPct.StringFixed(1))
}

func TestProjectRetirementGoalProgressClamped(t *testing.T) {
	in := domain.RetirementInputs{
		CurrentAge:          25,
		RetirementAge:       60,
		StartingPot:         decimal.NewFromInt(400000),
		MonthlyContribution: decimal.NewFromInt(1000),
		NominalReturnPct:    decimal.NewFromInt(7),
		GoalAmount:          decimal.NewFromInt(10000),
	}
	summary := ProjectRetirement(in)
	assert.Equal(t, "100.0", summary.GoalProgressPct.StringFixed(1))
}

func TestProjectRetirementZeroGoal(t *testing.T) {
	in := domain.RetirementInputs{
		CurrentAge:          30,
		RetirementAge:       40,
		StartingPot:         decimal.NewFromInt(5000),
		MonthlyContribution: decimal.NewFromInt(100),
		NominalReturnPct:    decimal.NewFromInt(5),
	}
	summary := ProjectRetirement(in)
	assert.True(t, summary.GoalProgressPct.IsZero())
}
