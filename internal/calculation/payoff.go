package calculation

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finplan/finplan/internal/domain"
	"github.com/finplan/finplan/pkg/dateutil"
)

// DebtMonthlyPayment returns the fixed payment clearing a balance at the
// given APR within the given number of months, using the same annuity
// formula as the mortgage engine. Zero months yields 0.
func DebtMonthlyPayment(balance, aprPct decimal.Decimal, months int) decimal.Decimal {
	return paymentForMonths(balance, aprPct, months)
}

// RequiredSavingsContribution is the flat monthly amount that closes the
// gap to a savings target by the deadline. Already-met targets and
// elapsed deadlines both yield 0.
func RequiredSavingsContribution(target, saved decimal.Decimal, months int) decimal.Decimal {
	if months <= 0 {
		return decimalZero
	}
	remaining := target.Sub(saved)
	if remaining.LessThan(decimalZero) {
		remaining = decimalZero
	}
	return remaining.Div(decimal.NewFromInt(int64(months)))
}

// PlanPayoff computes the monthly figure needed to hit a savings goal or
// clear a debt by its deadline, measured from now.
func PlanPayoff(g domain.GoalOrDebt, now time.Time) domain.PayoffResult {
	months := dateutil.MonthsBetween(now, g.Deadline)
	result := domain.PayoffResult{
		Name:            g.Name,
		Kind:            g.Kind,
		MonthsRemaining: months,
	}

	switch g.Kind {
	case domain.KindDebt:
		payment := DebtMonthlyPayment(g.Balance, g.AnnualPercentageRate, months)
		result.RequiredMonthly = payment.Round(2)
		totalCost := payment.Mul(decimal.NewFromInt(int64(months)))
		result.TotalCostOverTerm = totalCost.Round(2)
		result.TotalInterest = totalCost.Sub(g.Balance).Round(2)
		if result.TotalInterest.LessThan(decimalZero) {
			result.TotalInterest = decimalZero
		}

	default: // savings goal
		result.RequiredMonthly = RequiredSavingsContribution(g.TargetAmount, g.AmountSaved, months).Round(2)
		if g.TargetAmount.GreaterThan(decimalZero) {
			progress := g.AmountSaved.Div(g.TargetAmount).Mul(decimalHundred)
			if progress.LessThan(decimalZero) {
				progress = decimalZero
			}
			if progress.GreaterThan(decimalHundred) {
				progress = decimalHundred
			}
			result.ProgressPct = progress.Round(1)
		}
	}

	return result
}
