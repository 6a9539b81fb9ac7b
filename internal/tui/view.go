package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/finplan/finplan/internal/domain"
	"github.com/finplan/finplan/internal/output"
	"github.com/finplan/finplan/internal/tui/components"
)

// View renders the dashboard.
func (m Model) View() string {
	if m.err != nil {
		return AppStyle.Render(
			ErrorStyle.Render("Error: "+m.err.Error()) + "\n\n" +
				HelpStyle.Render("r: retry • q: quit"))
	}
	if m.loading || m.summary == nil {
		return AppStyle.Render(SubtitleStyle.Render("Loading plan..."))
	}

	var sb strings.Builder

	title := "finplan dashboard"
	if m.summary.Name != "" {
		title += ": " + m.summary.Name
	}
	sb.WriteString(TitleStyle.Render(title))
	sb.WriteString("\n\n")
	sb.WriteString(m.renderTabs())
	sb.WriteString("\n\n")

	if len(m.tabs) > 0 {
		sb.WriteString(m.renderActiveTab())
	}

	sb.WriteString("\n")
	sb.WriteString(HelpStyle.Render("tab/h/l: switch • r: reload • q: quit"))

	return AppStyle.Render(sb.String())
}

func (m Model) renderTabs() string {
	rendered := make([]string, len(m.tabs))
	for i, tab := range m.tabs {
		if i == m.activeTab {
			rendered[i] = ActiveTabStyle.Render(tabNames[tab])
		} else {
			rendered[i] = TabStyle.Render(tabNames[tab])
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m Model) renderActiveTab() string {
	switch m.tabs[m.activeTab] {
	case TabMortgage:
		return m.renderMortgage()
	case TabRetirement:
		return m.renderRetirement()
	case TabSalary:
		return m.renderSalary()
	case TabPayoffs:
		return m.renderPayoffs()
	case TabBudget:
		return m.renderBudget()
	}
	return ""
}

func (m Model) renderMortgage() string {
	s := m.summary.Mortgage

	cards := components.Row(
		components.NewMetricCard("Monthly Payment", output.FormatCurrency(s.MonthlyPayment)),
		components.NewMetricCard("Total Interest", output.FormatCurrency(s.TotalInterest)),
		components.NewMetricCard("Paid Off In", fmt.Sprintf("%dy %dm", s.PayoffMonths/12, s.PayoffMonths%12)),
	)

	chart := components.NewBarChart("Interest by year")
	for _, row := range s.Rows {
		chart.Add(fmt.Sprintf("Year %d", row.Year), row.InterestPaid.InexactFloat64())
	}

	body := cards + "\n\n" + chart.WithWidth(min(m.width-24, 50)).Render()
	if s.Truncated {
		body += "\n" + NegativeStyle.Render("Payment does not amortize the balance; schedule truncated")
	}
	return SectionStyle.Render(body)
}

func (m Model) renderRetirement() string {
	s := m.summary.Retirement

	cards := components.Row(
		components.NewMetricCard("Projected Pot", output.FormatCurrency(s.FinalPotNominal)).
			WithDescription("nominal"),
		components.NewMetricCard("In Today's Money", output.FormatCurrency(s.FinalPotReal)),
		components.NewMetricCard("Sustainable Income", output.FormatCurrency(s.SustainableMonthly)+"/mo"),
	)

	progressPct := s.GoalProgressPct.InexactFloat64() / 100
	bar := m.goalProgress.ViewAs(progressPct)

	gapStyle := PositiveStyle
	if s.MonthlyIncomeGap.IsNegative() {
		gapStyle = NegativeStyle
	}

	chart := components.NewBarChart("Pot growth")
	for _, p := range s.Projection {
		chart.Add(fmt.Sprintf("Age %d", p.Age), p.Pot.InexactFloat64())
	}

	body := cards + "\n\n" +
		MetricLabelStyle.Render("Goal progress") + "\n" + bar + "\n\n" +
		MetricLabelStyle.Render("Monthly income gap: ") +
		gapStyle.Render(output.FormatCurrency(s.MonthlyIncomeGap)) + "\n\n" +
		chart.WithWidth(min(m.width-24, 50)).Render()
	return SectionStyle.Render(body)
}

func (m Model) renderSalary() string {
	s := m.summary.Salary

	cards := components.Row(
		components.NewMetricCard("Net Annual", output.FormatCurrency(s.NetAnnual)),
		components.NewMetricCard("Net Monthly", output.FormatCurrency(s.NetMonthly)),
		components.NewMetricCard("Effective Tax", output.FormatPct(s.EffectiveTaxPct)).
			WithDescription(s.TaxBandLabel),
	)

	var sb strings.Builder
	sb.WriteString(cards)
	sb.WriteString("\n\n")
	for _, line := range []struct {
		label string
		value string
	}{
		{"Income Tax", output.FormatCurrency(s.IncomeTax)},
		{"National Insurance", output.FormatCurrency(s.NationalInsurance)},
		{"Pension", output.FormatCurrency(s.PensionAmount)},
		{"Net Weekly", output.FormatCurrency(s.NetWeekly)},
		{"Net Hourly", output.FormatCurrency(s.NetHourly)},
	} {
		sb.WriteString(fmt.Sprintf("%s %s\n",
			MetricLabelStyle.Render(fmt.Sprintf("%-20s", line.label)),
			MetricValueStyle.Render(line.value)))
	}
	return SectionStyle.Render(sb.String())
}

func (m Model) renderPayoffs() string {
	var sb strings.Builder
	for i, p := range m.summary.Payoffs {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(MetricValueStyle.Render(p.Name))
		sb.WriteString(SubtitleStyle.Render(fmt.Sprintf("  (%s)", p.Kind)))
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("%s %s over %d months\n",
			MetricLabelStyle.Render("Required:"),
			MetricValueStyle.Render(output.FormatCurrency(p.RequiredMonthly)+"/mo"),
			p.MonthsRemaining))
		if p.Kind == domain.KindDebt {
			sb.WriteString(fmt.Sprintf("%s %s\n",
				MetricLabelStyle.Render("Total interest:"),
				NegativeStyle.Render(output.FormatCurrency(p.TotalInterest))))
		} else {
			sb.WriteString(m.goalProgress.ViewAs(p.ProgressPct.InexactFloat64()/100) + "\n")
		}
	}
	return SectionStyle.Render(sb.String())
}

func (m Model) renderBudget() string {
	b := m.summary.Budget

	var sb strings.Builder
	sb.WriteString(SubtitleStyle.Render("50/30/20 for " + b.MonthKey))
	sb.WriteString("\n\n")
	for _, c := range b.Categories {
		over := c.Remaining.IsNegative()
		valueStyle := PositiveStyle
		if over {
			valueStyle = NegativeStyle
		}
		sb.WriteString(fmt.Sprintf("%s %s of %s  %s\n",
			MetricLabelStyle.Render(fmt.Sprintf("%-9s", c.Category)),
			MetricValueStyle.Render(output.FormatCurrency(c.Spent)),
			output.FormatCurrency(c.Target),
			valueStyle.Render(c.UsedPct.StringFixed(1)+"% used")))
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("%s %s\n",
		MetricLabelStyle.Render("Unallocated:"),
		MetricValueStyle.Render(output.FormatCurrency(b.Unspent))))
	return SectionStyle.Render(sb.String())
}
