package output

import (
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finplan/finplan/internal/domain"
)

func sampleSummary() *domain.PlanSummary {
	return &domain.PlanSummary{
		Name: "Household",
		Mortgage: &domain.MortgageSchedule{
			MonthlyPayment: decimal.NewFromFloat(1500.75),
			Rows: []domain.AmortizationRow{
				{Year: 1, PrincipalPaid: decimal.NewFromFloat(6100.50), InterestPaid: decimal.NewFromFloat(11908.50)},
			},
			TotalPaid:      decimal.NewFromFloat(450225),
			TotalInterest:  decimal.NewFromFloat(180225),
			PayoffMonths:   300,
			LoanToValuePct: decimal.NewFromInt(90),
		},
		Salary: &domain.SalaryResult{
			NetAnnual:       decimal.NewFromFloat(22790.40),
			NetMonthly:      decimal.NewFromFloat(1899.20),
			IncomeTax:       decimal.NewFromInt(3006),
			EffectiveTaxPct: decimal.NewFromFloat(16.03),
			TaxBandLabel:    domain.BandBasic,
		},
		Payoffs: []domain.PayoffResult{
			{
				Name:            "Credit card",
				Kind:            domain.KindDebt,
				MonthsRemaining: 12,
				RequiredMonthly: decimal.NewFromFloat(463.17),
				TotalInterest:   decimal.NewFromFloat(558.04),
			},
		},
	}
}

func TestGetFormatterByName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"console", "console"},
		{"table", "console"},
		{"", "console"},
		{"json", "json"},
		{"JSON", "json"},
		{"csv", "csv"},
	}
	for _, tt := range tests {
		f := GetFormatterByName(tt.name)
		require.NotNil(t, f, "format %q", tt.name)
		assert.Equal(t, tt.want, f.Name())
	}

	assert.Nil(t, GetFormatterByName("xml"))
}

func TestFormatterNames(t *testing.T) {
	assert.Equal(t, []string{"console", "json", "csv"}, FormatterNames())
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{0, "£0.00"},
		{999.99, "£999.99"},
		{1500.75, "£1,500.75"},
		{270000, "£270,000.00"},
		{1234567.89, "£1,234,567.89"},
		{-558.04, "-£558.04"},
		{-12000, "-£12,000.00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatCurrency(decimal.NewFromFloat(tt.value)))
	}
}

func TestFormatPct(t *testing.T) {
	assert.Equal(t, "16.03%", FormatPct(decimal.NewFromFloat(16.03)))
	assert.Equal(t, "0.00%", FormatPct(decimal.Zero))
}

func TestConsoleFormatter(t *testing.T) {
	out, err := ConsoleFormatter{}.Format(sampleSummary())
	require.NoError(t, err)

	text := string(out)
	assert.Contains(t, text, "Household")
	assert.Contains(t, text, "£1,500.75")
	assert.Contains(t, text, "Credit card")
	assert.Contains(t, text, domain.BandBasic)
}

func TestJSONFormatter(t *testing.T) {
	out, err := JSONFormatter{}.Format(sampleSummary())
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, "Household", decoded["name"])
	assert.Contains(t, decoded, "mortgage")
	assert.Contains(t, decoded, "salary")
	assert.NotContains(t, decoded, "retirement")

	pretty, err := JSONFormatter{Pretty: true}.Format(sampleSummary())
	require.NoError(t, err)
	assert.Contains(t, string(pretty), "\n  ")
}

func TestCSVFormatter(t *testing.T) {
	out, err := CSVFormatter{}.Format(sampleSummary())
	require.NoError(t, err)

	rows, err := csv.NewReader(strings.NewReader(string(out))).ReadAll()
	require.NoError(t, err)
	require.NotEmpty(t, rows)
	assert.Equal(t, []string{"Section", "Metric", "Value"}, rows[0])

	// Every data row keeps the three-column shape.
	found := false
	for _, row := range rows[1:] {
		require.Len(t, row, 3)
		if row[0] == "salary" && row[1] == "net_annual" {
			assert.Equal(t, "22790.40", row[2])
			found = true
		}
	}
	assert.True(t, found, "salary net_annual row missing")
}

func TestFormattersSkipAbsentSections(t *testing.T) {
	summary := &domain.PlanSummary{
		Salary: &domain.SalaryResult{NetAnnual: decimal.NewFromInt(30000)},
	}
	for _, f := range []Formatter{ConsoleFormatter{}, JSONFormatter{}, CSVFormatter{}} {
		out, err := f.Format(summary)
		require.NoError(t, err, f.Name())
		assert.NotContains(t, strings.ToLower(string(out)), "mortgage", f.Name())
	}
}
