package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/finplan/finplan/internal/domain"
)

// CSVFormatter emits one section per block: key metrics as rows of
// section, metric, value, suitable for spreadsheet import.
type CSVFormatter struct{}

func (CSVFormatter) Name() string { return "csv" }

func (CSVFormatter) Format(summary *domain.PlanSummary) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	if err := w.Write([]string{"Section", "Metric", "Value"}); err != nil {
		return nil, err
	}

	write := func(section, metric, value string) {
		// Errors surface through w.Error after Flush.
		_ = w.Write([]string{section, metric, value})
	}

	if m := summary.Mortgage; m != nil {
		write("mortgage", "monthly_payment", m.MonthlyPayment.StringFixed(2))
		write("mortgage", "total_paid", m.TotalPaid.StringFixed(2))
		write("mortgage", "total_interest", m.TotalInterest.StringFixed(2))
		write("mortgage", "payoff_months", strconv.Itoa(m.PayoffMonths))
		for _, row := range m.Rows {
			write("mortgage_schedule", "year_"+strconv.Itoa(row.Year)+"_principal", row.PrincipalPaid.StringFixed(2))
			write("mortgage_schedule", "year_"+strconv.Itoa(row.Year)+"_interest", row.InterestPaid.StringFixed(2))
		}
	}

	if r := summary.Retirement; r != nil {
		write("retirement", "final_pot_nominal", r.FinalPotNominal.StringFixed(2))
		write("retirement", "final_pot_real", r.FinalPotReal.StringFixed(2))
		write("retirement", "inflation_adjusted_goal", r.InflationAdjustedGoal.StringFixed(2))
		write("retirement", "goal_progress_pct", r.GoalProgressPct.StringFixed(1))
		write("retirement", "sustainable_monthly", r.SustainableMonthly.StringFixed(2))
		write("retirement", "monthly_income_gap", r.MonthlyIncomeGap.StringFixed(2))
		for _, p := range r.Projection {
			write("retirement_projection", "year_"+strconv.Itoa(p.Year), p.Pot.StringFixed(0))
		}
	}

	if s := summary.Salary; s != nil {
		write("salary", "income_tax", s.IncomeTax.StringFixed(2))
		write("salary", "national_insurance", s.NationalInsurance.StringFixed(2))
		write("salary", "net_annual", s.NetAnnual.StringFixed(2))
		write("salary", "net_monthly", s.NetMonthly.StringFixed(2))
		write("salary", "effective_tax_pct", s.EffectiveTaxPct.StringFixed(2))
		write("salary", "tax_band", s.TaxBandLabel)
	}

	for _, p := range summary.Payoffs {
		write("payoff", p.Name+"_months_remaining", strconv.Itoa(p.MonthsRemaining))
		write("payoff", p.Name+"_required_monthly", p.RequiredMonthly.StringFixed(2))
		if p.Kind == domain.KindDebt {
			write("payoff", p.Name+"_total_interest", p.TotalInterest.StringFixed(2))
		}
	}

	if b := summary.Budget; b != nil {
		for _, c := range b.Categories {
			write("budget", string(c.Category)+"_target", c.Target.StringFixed(2))
			write("budget", string(c.Category)+"_spent", c.Spent.StringFixed(2))
		}
		write("budget", "total_spent", b.TotalSpent.StringFixed(2))
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
