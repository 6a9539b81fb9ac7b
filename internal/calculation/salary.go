package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/finplan/finplan/internal/domain"
)

// UK income tax and National Insurance constants, 2023/24 bands.
var (
	personalAllowance  = decimal.NewFromInt(12570)
	basicRateCeiling   = decimal.NewFromInt(50270)
	additionalRateFrom = decimal.NewFromInt(125140)
	taperThreshold     = decimal.NewFromInt(100000)

	basicRate      = decimal.NewFromFloat(0.20)
	higherRate     = decimal.NewFromFloat(0.40)
	additionalRate = decimal.NewFromFloat(0.45)

	// National Insurance is modelled as a single 12% band above the
	// primary threshold. Real NI drops to a lower rate above an upper
	// threshold; that band is deliberately not modelled here.
	niRate      = decimal.NewFromFloat(0.12)
	niThreshold = decimal.NewFromInt(12570)

	hoursPerWeekMin  = decimal.NewFromInt(10)
	hoursPerWeekMax  = decimal.NewFromInt(80)
	weeksPerYear     = decimal.NewFromInt(52)
	workDaysPerWeek  = decimal.NewFromInt(5)
	defaultWeekHours = decimal.NewFromFloat(37.5)
)

// TaperedAllowance reduces the personal allowance by one pound for every
// two pounds of income above the taper threshold, floored at zero.
func TaperedAllowance(income decimal.Decimal) decimal.Decimal {
	if income.LessThanOrEqual(taperThreshold) {
		return personalAllowance
	}
	reduction := income.Sub(taperThreshold).Div(decimal.NewFromInt(2))
	allowance := personalAllowance.Sub(reduction)
	if allowance.LessThan(decimalZero) {
		return decimalZero
	}
	return allowance
}

// incomeTaxOn computes banded income tax on a salary after pension, with
// the (possibly tapered) allowance. Each band taxes only its overlap with
// the income, so the result is continuous at the band edges.
func incomeTaxOn(income, allowance decimal.Decimal) decimal.Decimal {
	tax := decimalZero

	// Basic band: allowance up to the basic-rate ceiling.
	if income.GreaterThan(allowance) {
		upper := decimal.Min(income, basicRateCeiling)
		if upper.GreaterThan(allowance) {
			tax = tax.Add(upper.Sub(allowance).Mul(basicRate))
		}
	}

	// Higher band: ceiling up to the additional-rate threshold.
	if income.GreaterThan(basicRateCeiling) {
		upper := decimal.Min(income, additionalRateFrom)
		tax = tax.Add(upper.Sub(basicRateCeiling).Mul(higherRate))
	}

	// Additional band: everything above the threshold.
	if income.GreaterThan(additionalRateFrom) {
		tax = tax.Add(income.Sub(additionalRateFrom).Mul(additionalRate))
	}

	return tax
}

// nationalInsuranceOn is a flat 12% on income above the primary threshold.
func nationalInsuranceOn(income decimal.Decimal) decimal.Decimal {
	if income.LessThanOrEqual(niThreshold) {
		return decimalZero
	}
	return income.Sub(niThreshold).Mul(niRate)
}

// taxBandLabel classifies the salary after pension, not the gross.
func taxBandLabel(salaryAfterPension decimal.Decimal) string {
	switch {
	case salaryAfterPension.GreaterThan(additionalRateFrom):
		return domain.BandAdditional
	case salaryAfterPension.GreaterThan(basicRateCeiling):
		return domain.BandHigher
	default:
		return domain.BandBasic
	}
}

// CalculateNetSalary derives the full net-salary decomposition for a UK
// gross annual salary. Pension contributions come off before tax and NI.
// The work-hours factor scales the gross for part-time work; hours per
// week only affects the hourly figure and is clamped to a sane range.
func CalculateNetSalary(in domain.SalaryInputs) domain.SalaryResult {
	gross := in.GrossAnnualSalary
	factor := in.WorkHoursFactor
	if factor.GreaterThan(decimalZero) && factor.LessThanOrEqual(decimalOne) {
		gross = gross.Mul(factor)
	}

	pension := gross.Mul(in.PensionContributionPct.Div(decimalHundred))
	afterPension := gross.Sub(pension)

	allowance := TaperedAllowance(afterPension)
	incomeTax := incomeTaxOn(afterPension, allowance)
	ni := nationalInsuranceOn(afterPension)

	net := afterPension.Sub(incomeTax).Sub(ni)
	if net.LessThan(decimalZero) {
		net = decimalZero
	}

	hours := in.HoursPerWeek
	if hours.IsZero() {
		hours = defaultWeekHours
	}
	if hours.LessThan(hoursPerWeekMin) {
		hours = hoursPerWeekMin
	}
	if hours.GreaterThan(hoursPerWeekMax) {
		hours = hoursPerWeekMax
	}

	weekly := net.Div(weeksPerYear)

	effective := decimalZero
	if gross.GreaterThan(decimalZero) {
		effective = incomeTax.Add(ni).Div(gross).Mul(decimalHundred)
	}

	return domain.SalaryResult{
		GrossSalary:        gross.Round(2),
		PensionAmount:      pension.Round(2),
		SalaryAfterPension: afterPension.Round(2),
		PersonalAllowance:  allowance.Round(2),
		IncomeTax:          incomeTax.Round(2),
		NationalInsurance:  ni.Round(2),
		NetAnnual:          net.Round(2),
		NetMonthly:         net.Div(decimalTwelve).Round(2),
		NetWeekly:          weekly.Round(2),
		NetDaily:           weekly.Div(workDaysPerWeek).Round(2),
		NetHourly:          weekly.Div(hours).Round(2),
		EffectiveTaxPct:    effective.Round(2),
		TaxBandLabel:       taxBandLabel(afterPension),
	}
}
