// Package output renders computed plan summaries in the supported
// formats.
package output

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/finplan/finplan/internal/domain"
)

// Formatter renders a plan summary as bytes for a particular format.
type Formatter interface {
	Name() string
	Format(summary *domain.PlanSummary) ([]byte, error)
}

// GetFormatterByName returns the formatter for a format name, or nil for
// unknown formats.
func GetFormatterByName(name string) Formatter {
	switch strings.ToLower(name) {
	case "console", "table", "":
		return ConsoleFormatter{}
	case "json":
		return JSONFormatter{Pretty: true}
	case "csv":
		return CSVFormatter{}
	default:
		return nil
	}
}

// FormatterNames lists the supported format names.
func FormatterNames() []string {
	return []string{"console", "json", "csv"}
}

// FormatCurrency renders a monetary amount as £x,xxx.xx.
func FormatCurrency(d decimal.Decimal) string {
	s := d.StringFixed(2)
	negative := strings.HasPrefix(s, "-")
	if negative {
		s = s[1:]
	}
	parts := strings.SplitN(s, ".", 2)
	whole := parts[0]

	var grouped strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			grouped.WriteByte(',')
		}
		grouped.WriteRune(r)
	}

	out := "£" + grouped.String() + "." + parts[1]
	if negative {
		out = "-" + out
	}
	return out
}

// FormatPct renders a percentage to two decimal places.
func FormatPct(d decimal.Decimal) string {
	return fmt.Sprintf("%s%%", d.StringFixed(2))
}
