package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/finplan/finplan/internal/domain"
)

// Sustainable withdrawal rate applied to the inflation-adjusted pot.
var sustainableWithdrawalRate = decimal.NewFromFloat(0.035)

var decimalNegOne = decimal.NewFromInt(-1)

// RealReturnPct converts a nominal annual return to a real
// (inflation-adjusted) one via the Fisher equation, both as percentages.
func RealReturnPct(nominalPct, inflationPct decimal.Decimal) decimal.Decimal {
	nominal := decimalOne.Add(nominalPct.Div(decimalHundred))
	inflation := decimalOne.Add(inflationPct.Div(decimalHundred))
	if inflation.IsZero() {
		return nominalPct
	}
	return nominal.Div(inflation).Sub(decimalOne).Mul(decimalHundred)
}

// ProjectPot compounds a pot monthly at the fee-adjusted nominal return,
// adding the contribution each month after the first tick. It emits a
// point every twelfth month and on the final month, rounded to whole
// currency units and floored at zero. startAge labels the points; pass 0
// when ages are not meaningful.
func ProjectPot(startingPot, monthlyContribution, nominalReturnPct, annualFeesPct decimal.Decimal, months, startAge int) []domain.ProjectionPoint {
	if months <= 0 {
		return nil
	}

	monthlyNetRate := nominalReturnPct.Div(decimalHundred).Div(decimalTwelve).
		Sub(annualFeesPct.Div(decimalHundred).Div(decimalTwelve))
	if monthlyNetRate.LessThan(decimalNegOne) {
		monthlyNetRate = decimalNegOne
	}
	growth := decimalOne.Add(monthlyNetRate)

	points := make([]domain.ProjectionPoint, 0, months/12+1)
	pot := startingPot
	for i := 0; i < months; i++ {
		pot = pot.Mul(growth)
		if i > 0 {
			pot = pot.Add(monthlyContribution)
		}
		if (i+1)%12 == 0 || i == months-1 {
			yearIndex := (i + 12) / 12
			value := pot.Round(0)
			if value.LessThan(decimalZero) {
				value = decimalZero
			}
			points = append(points, domain.ProjectionPoint{
				Year: yearIndex,
				Age:  startAge + yearIndex,
				Pot:  value,
			})
		}
	}
	return points
}

// TotalMonthlyContribution grosses the personal contribution up by the
// employer match multiplier. The match is a straight percentage uplift,
// not a capped match-up-to-X% scheme.
func TotalMonthlyContribution(monthlyContribution, employerMatchPct decimal.Decimal) decimal.Decimal {
	return monthlyContribution.Mul(decimalOne.Add(employerMatchPct.Div(decimalHundred)))
}

// ProjectRetirement runs the full retirement projection: pot growth to
// retirement age, then an apples-to-apples comparison of the deflated pot
// against the inflation-adjusted goal and income need.
func ProjectRetirement(in domain.RetirementInputs) domain.RetirementSummary {
	yearsToGrow := in.RetirementAge - in.CurrentAge
	if yearsToGrow < 0 {
		yearsToGrow = 0
	}
	months := yearsToGrow * 12

	contribution := TotalMonthlyContribution(in.MonthlyContribution, in.EmployerMatchPct)
	summary := domain.RetirementSummary{
		YearsToGrow:   yearsToGrow,
		RealReturnPct: RealReturnPct(in.NominalReturnPct, in.InflationRatePct).Round(2),
	}

	summary.Projection = ProjectPot(in.StartingPot, contribution, in.NominalReturnPct, in.AnnualFeesPct, months, in.CurrentAge)
	finalPot := in.StartingPot
	if n := len(summary.Projection); n > 0 {
		finalPot = summary.Projection[n-1].Pot
	}
	summary.FinalPotNominal = finalPot

	// Contributions made: one per month after the first tick.
	if months > 1 {
		summary.TotalContributionsPaid = contribution.Mul(decimal.NewFromInt(int64(months - 1))).Round(2)
	}

	// Grow the goal and income need forward by inflation, deflate the pot
	// by the same factor.
	inflationFactor := decimalOne.Add(in.InflationRatePct.Div(decimalHundred)).
		Pow(decimal.NewFromInt(int64(yearsToGrow)))
	summary.InflationAdjustedGoal = in.GoalAmount.Mul(inflationFactor).Round(0)
	summary.AdjustedMonthlyNeed = in.MonthlyIncomeNeed.Mul(inflationFactor).Round(2)

	realPot := finalPot
	if !inflationFactor.IsZero() {
		realPot = finalPot.Div(inflationFactor)
	}
	if realPot.LessThan(decimalZero) {
		realPot = decimalZero
	}
	summary.FinalPotReal = realPot.Round(0)

	if summary.InflationAdjustedGoal.GreaterThan(decimalZero) {
		progress := realPot.Div(summary.InflationAdjustedGoal).Mul(decimalHundred)
		if progress.LessThan(decimalZero) {
			progress = decimalZero
		}
		if progress.GreaterThan(decimalHundred) {
			progress = decimalHundred
		}
		summary.GoalProgressPct = progress.Round(1)
	}

	summary.SustainableAnnual = realPot.Mul(sustainableWithdrawalRate).Round(2)
	summary.SustainableMonthly = summary.SustainableAnnual.Div(decimalTwelve).Round(2)
	summary.MonthlyIncomeGap = summary.SustainableMonthly.Sub(summary.AdjustedMonthlyNeed).Round(2)
	return summary
}
