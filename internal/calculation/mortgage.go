package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/finplan/finplan/internal/domain"
)

var (
	decimalZero    = decimal.Zero
	decimalOne     = decimal.NewFromInt(1)
	decimalTwelve  = decimal.NewFromInt(12)
	decimalHundred = decimal.NewFromInt(100)
)

// scheduleOverrunMonths bounds the amortization loop past the nominal
// term, so degenerate inputs (payment at or below accruing interest)
// terminate with a truncated schedule instead of looping forever.
const scheduleOverrunMonths = 600

// MonthlyPayment returns the fixed monthly repayment for a loan using the
// standard annuity formula. A zero rate divides the principal evenly over
// the term; a non-positive term yields 0.
func MonthlyPayment(principal, annualRatePct decimal.Decimal, termYears int) decimal.Decimal {
	months := termYears * 12
	return paymentForMonths(principal, annualRatePct, months)
}

// paymentForMonths is the annuity formula over an explicit month count.
// Shared by the mortgage and debt-payoff engines.
func paymentForMonths(principal, annualRatePct decimal.Decimal, months int) decimal.Decimal {
	if months <= 0 {
		return decimalZero
	}
	monthsDec := decimal.NewFromInt(int64(months))
	r := annualRatePct.Div(decimalHundred).Div(decimalTwelve)
	if r.IsZero() {
		return principal.Div(monthsDec)
	}
	// principal * r * (1+r)^n / ((1+r)^n - 1)
	growth := decimalOne.Add(r).Pow(monthsDec)
	denom := growth.Sub(decimalOne)
	if denom.IsZero() {
		// Rate so small the compounding factor collapses to 1; fall back
		// to a straight division rather than divide by zero.
		return principal.Div(monthsDec)
	}
	return principal.Mul(r).Mul(growth).Div(denom)
}

// LoanToValue returns the loan amount as a percentage of the asset price,
// or 0 when the price is not positive.
func LoanToValue(loan, price decimal.Decimal) decimal.Decimal {
	if price.LessThanOrEqual(decimalZero) {
		return decimalZero
	}
	return loan.Div(price).Mul(decimalHundred)
}

// BuildAmortizationSchedule walks the loan month by month, accumulating
// principal and interest into one row per loan year. Overpayments shorten
// the schedule; the final month's principal component is clamped so the
// balance lands exactly on zero. Monetary rounding happens only when a
// row is emitted, never mid-iteration.
func BuildAmortizationSchedule(in domain.MortgageInputs) domain.MortgageSchedule {
	months := in.TermYears * 12
	basePayment := MonthlyPayment(in.Principal, in.AnnualRatePct, in.TermYears)

	schedule := domain.MortgageSchedule{
		MonthlyPayment: basePayment.Round(2),
		LoanToValuePct: LoanToValue(in.Principal, in.PropertyPrice).Round(2),
	}
	if months <= 0 || in.Principal.LessThanOrEqual(decimalZero) {
		return schedule
	}

	r := in.AnnualRatePct.Div(decimalHundred).Div(decimalTwelve)
	payment := basePayment.Add(in.MonthlyOverpayment)

	balance := in.Principal
	maxMonths := months + scheduleOverrunMonths
	yearPrincipal := decimalZero
	yearInterest := decimalZero
	year := 1
	month := 0

	flushYear := func() {
		schedule.Rows = append(schedule.Rows, domain.AmortizationRow{
			Year:          year,
			PrincipalPaid: yearPrincipal.Round(2),
			InterestPaid:  yearInterest.Round(2),
		})
		yearPrincipal = decimalZero
		yearInterest = decimalZero
	}

	for balance.GreaterThan(decimalZero) {
		if month >= maxMonths {
			schedule.Truncated = true
			break
		}
		month++

		interest := balance.Mul(r)
		principalComponent := payment.Sub(interest)
		if principalComponent.GreaterThan(balance) {
			principalComponent = balance
		}
		if principalComponent.LessThanOrEqual(decimalZero) {
			// Payment does not cover the accruing interest; the balance
			// can never converge, so stop instead of accruing forever.
			schedule.Truncated = true
			break
		}

		balance = balance.Sub(principalComponent)
		if balance.LessThan(decimalZero) {
			balance = decimalZero
		}

		yearPrincipal = yearPrincipal.Add(principalComponent)
		yearInterest = yearInterest.Add(interest)

		if month%12 == 0 {
			flushYear()
			year++
		}
	}

	// Partial final year.
	if !yearPrincipal.IsZero() || !yearInterest.IsZero() {
		flushYear()
	}

	schedule.PayoffMonths = month
	for _, row := range schedule.Rows {
		schedule.TotalPaid = schedule.TotalPaid.Add(row.PrincipalPaid).Add(row.InterestPaid)
		schedule.TotalInterest = schedule.TotalInterest.Add(row.InterestPaid)
	}
	return schedule
}
