package output

import (
	"fmt"
	"strings"

	"github.com/finplan/finplan/internal/domain"
)

// ConsoleFormatter renders a plan summary as human-readable tables.
type ConsoleFormatter struct{}

func (ConsoleFormatter) Name() string { return "console" }

func (ConsoleFormatter) Format(summary *domain.PlanSummary) ([]byte, error) {
	var sb strings.Builder

	title := "FINANCIAL PLAN SUMMARY"
	if summary.Name != "" {
		title = fmt.Sprintf("FINANCIAL PLAN SUMMARY: %s", summary.Name)
	}
	sb.WriteString(title + "\n")
	sb.WriteString(strings.Repeat("=", 78) + "\n")

	if summary.Mortgage != nil {
		writeMortgage(&sb, summary.Mortgage)
	}
	if summary.Retirement != nil {
		writeRetirement(&sb, summary.Retirement)
	}
	if summary.Salary != nil {
		writeSalary(&sb, summary.Salary)
	}
	if len(summary.Payoffs) > 0 {
		writePayoffs(&sb, summary.Payoffs)
	}
	if summary.Budget != nil {
		writeBudget(&sb, summary.Budget)
	}

	return []byte(sb.String()), nil
}

func writeMortgage(sb *strings.Builder, m *domain.MortgageSchedule) {
	sb.WriteString("\nMORTGAGE\n")
	sb.WriteString(strings.Repeat("-", 78) + "\n")
	fmt.Fprintf(sb, "Monthly Payment:  %s\n", FormatCurrency(m.MonthlyPayment))
	fmt.Fprintf(sb, "Total Paid:       %s\n", FormatCurrency(m.TotalPaid))
	fmt.Fprintf(sb, "Total Interest:   %s\n", FormatCurrency(m.TotalInterest))
	fmt.Fprintf(sb, "Paid Off In:      %d months (%d years %d months)\n",
		m.PayoffMonths, m.PayoffMonths/12, m.PayoffMonths%12)
	if m.LoanToValuePct.IsPositive() {
		fmt.Fprintf(sb, "Loan To Value:    %s\n", FormatPct(m.LoanToValuePct))
	}
	if m.Truncated {
		sb.WriteString("Warning: payment does not amortize the balance; schedule truncated\n")
	}

	sb.WriteString("\n")
	fmt.Fprintf(sb, "%-6s %18s %18s\n", "Year", "Principal", "Interest")
	for _, row := range m.Rows {
		fmt.Fprintf(sb, "%-6d %18s %18s\n", row.Year,
			FormatCurrency(row.PrincipalPaid), FormatCurrency(row.InterestPaid))
	}
}

func writeRetirement(sb *strings.Builder, r *domain.RetirementSummary) {
	sb.WriteString("\nRETIREMENT PROJECTION\n")
	sb.WriteString(strings.Repeat("-", 78) + "\n")
	fmt.Fprintf(sb, "Years To Grow:          %d\n", r.YearsToGrow)
	fmt.Fprintf(sb, "Real Return:            %s\n", FormatPct(r.RealReturnPct))
	fmt.Fprintf(sb, "Projected Pot (nominal): %s\n", FormatCurrency(r.FinalPotNominal))
	fmt.Fprintf(sb, "Projected Pot (today's money): %s\n", FormatCurrency(r.FinalPotReal))
	fmt.Fprintf(sb, "Inflation-Adjusted Goal: %s\n", FormatCurrency(r.InflationAdjustedGoal))
	fmt.Fprintf(sb, "Goal Progress:          %s\n", FormatPct(r.GoalProgressPct))
	fmt.Fprintf(sb, "Sustainable Withdrawal: %s/yr (%s/mo)\n",
		FormatCurrency(r.SustainableAnnual), FormatCurrency(r.SustainableMonthly))
	fmt.Fprintf(sb, "Monthly Income Gap:     %s\n", FormatCurrency(r.MonthlyIncomeGap))

	sb.WriteString("\n")
	fmt.Fprintf(sb, "%-6s %-5s %18s\n", "Year", "Age", "Pot")
	for _, p := range r.Projection {
		fmt.Fprintf(sb, "%-6d %-5d %18s\n", p.Year, p.Age, FormatCurrency(p.Pot))
	}
}

func writeSalary(sb *strings.Builder, s *domain.SalaryResult) {
	sb.WriteString("\nNET SALARY\n")
	sb.WriteString(strings.Repeat("-", 78) + "\n")
	fmt.Fprintf(sb, "Gross Salary:        %s\n", FormatCurrency(s.GrossSalary))
	fmt.Fprintf(sb, "Pension:             %s\n", FormatCurrency(s.PensionAmount))
	fmt.Fprintf(sb, "Personal Allowance:  %s\n", FormatCurrency(s.PersonalAllowance))
	fmt.Fprintf(sb, "Income Tax:          %s\n", FormatCurrency(s.IncomeTax))
	fmt.Fprintf(sb, "National Insurance:  %s\n", FormatCurrency(s.NationalInsurance))
	fmt.Fprintf(sb, "Net Annual:          %s\n", FormatCurrency(s.NetAnnual))
	fmt.Fprintf(sb, "Net Monthly:         %s\n", FormatCurrency(s.NetMonthly))
	fmt.Fprintf(sb, "Net Weekly:          %s\n", FormatCurrency(s.NetWeekly))
	fmt.Fprintf(sb, "Net Daily:           %s\n", FormatCurrency(s.NetDaily))
	fmt.Fprintf(sb, "Net Hourly:          %s\n", FormatCurrency(s.NetHourly))
	fmt.Fprintf(sb, "Effective Tax Rate:  %s\n", FormatPct(s.EffectiveTaxPct))
	fmt.Fprintf(sb, "Tax Band:            %s\n", s.TaxBandLabel)
}

func writePayoffs(sb *strings.Builder, payoffs []domain.PayoffResult) {
	sb.WriteString("\nGOALS AND DEBTS\n")
	sb.WriteString(strings.Repeat("-", 78) + "\n")
	fmt.Fprintf(sb, "%-24s %-12s %8s %16s %16s\n",
		"Name", "Kind", "Months", "Required/mo", "Total Interest")
	for _, p := range payoffs {
		fmt.Fprintf(sb, "%-24s %-12s %8d %16s %16s\n",
			p.Name, p.Kind, p.MonthsRemaining,
			FormatCurrency(p.RequiredMonthly), FormatCurrency(p.TotalInterest))
	}
}

func writeBudget(sb *strings.Builder, b *domain.BudgetSummary) {
	sb.WriteString("\nBUDGET (" + b.MonthKey + ", 50/30/20)\n")
	sb.WriteString(strings.Repeat("-", 78) + "\n")
	fmt.Fprintf(sb, "%-10s %16s %16s %16s %10s\n",
		"Category", "Target", "Spent", "Remaining", "Used")
	for _, c := range b.Categories {
		fmt.Fprintf(sb, "%-10s %16s %16s %16s %9s%%\n",
			c.Category, FormatCurrency(c.Target), FormatCurrency(c.Spent),
			FormatCurrency(c.Remaining), c.UsedPct.StringFixed(1))
	}
	fmt.Fprintf(sb, "\nTotal Spent: %s   Unallocated: %s\n",
		FormatCurrency(b.TotalSpent), FormatCurrency(b.Unspent))
}
