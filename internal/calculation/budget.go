package calculation

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finplan/finplan/internal/domain"
	"github.com/finplan/finplan/pkg/dateutil"
)

// 50/30/20 allocation of net monthly income.
var (
	needsShare   = decimal.NewFromFloat(0.50)
	wantsShare   = decimal.NewFromFloat(0.30)
	savingsShare = decimal.NewFromFloat(0.20)
)

// SplitBudget allocates a net monthly income across the 50/30/20 buckets.
func SplitBudget(netMonthly decimal.Decimal) domain.BudgetTargets {
	return domain.BudgetTargets{
		Needs:   netMonthly.Mul(needsShare).Round(2),
		Wants:   netMonthly.Mul(wantsShare).Round(2),
		Savings: netMonthly.Mul(savingsShare).Round(2),
	}
}

// SummarizeMonth buckets the entries falling inside ref's calendar month
// by category and compares each bucket's total against its 50/30/20
// target. Entries outside the month are ignored.
func SummarizeMonth(in domain.BudgetInputs, ref time.Time) domain.BudgetSummary {
	targets := SplitBudget(in.NetMonthlyIncome)
	first, last := dateutil.MonthBounds(ref)

	totals := map[domain.BudgetCategory]decimal.Decimal{
		domain.CategoryNeeds:   decimalZero,
		domain.CategoryWants:   decimalZero,
		domain.CategorySavings: decimalZero,
	}
	for _, e := range in.Entries {
		if e.Date.Before(first) || e.Date.After(last) {
			continue
		}
		if _, ok := totals[e.Category]; !ok {
			continue
		}
		totals[e.Category] = totals[e.Category].Add(e.Amount)
	}

	summary := domain.BudgetSummary{
		MonthKey: dateutil.MonthKey(ref),
		Targets:  targets,
	}
	for _, c := range []struct {
		category domain.BudgetCategory
		target   decimal.Decimal
	}{
		{domain.CategoryNeeds, targets.Needs},
		{domain.CategoryWants, targets.Wants},
		{domain.CategorySavings, targets.Savings},
	} {
		spent := totals[c.category]
		usedPct := decimalZero
		if c.target.GreaterThan(decimalZero) {
			usedPct = spent.Div(c.target).Mul(decimalHundred).Round(1)
		}
		summary.Categories = append(summary.Categories, domain.BudgetCategorySummary{
			Category:  c.category,
			Target:    c.target,
			Spent:     spent.Round(2),
			Remaining: c.target.Sub(spent).Round(2),
			UsedPct:   usedPct,
		})
		summary.TotalSpent = summary.TotalSpent.Add(spent)
	}
	summary.TotalSpent = summary.TotalSpent.Round(2)
	summary.Unspent = in.NetMonthlyIncome.Sub(summary.TotalSpent).Round(2)
	return summary
}
