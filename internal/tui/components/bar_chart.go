package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// BarChart renders one horizontal bar per data point, scaled to the
// largest value. Suited to yearly series like pot projections and
// amortization rows.
type BarChart struct {
	Title  string
	Labels []string
	Values []float64
	Width  int
	Color  lipgloss.Color
}

// NewBarChart creates a chart with the default width.
func NewBarChart(title string) *BarChart {
	return &BarChart{Title: title, Width: 40, Color: lipgloss.Color("#7C3AED")}
}

// Add appends one labelled value.
func (c *BarChart) Add(label string, value float64) *BarChart {
	c.Labels = append(c.Labels, label)
	c.Values = append(c.Values, value)
	return c
}

// WithWidth sets the maximum bar width in cells.
func (c *BarChart) WithWidth(width int) *BarChart {
	c.Width = width
	return c
}

// Render returns the styled chart.
func (c *BarChart) Render() string {
	if len(c.Values) == 0 {
		return ""
	}

	max := c.Values[0]
	for _, v := range c.Values {
		if v > max {
			max = v
		}
	}

	barStyle := lipgloss.NewStyle().Foreground(c.Color)
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))

	var sb strings.Builder
	if c.Title != "" {
		sb.WriteString(lipgloss.NewStyle().Bold(true).Render(c.Title))
		sb.WriteString("\n")
	}
	for i, v := range c.Values {
		cells := 0
		if max > 0 {
			cells = int(v / max * float64(c.Width))
		}
		if cells < 1 && v > 0 {
			cells = 1
		}
		sb.WriteString(fmt.Sprintf("%s %s\n",
			labelStyle.Render(fmt.Sprintf("%-10s", c.Labels[i])),
			barStyle.Render(strings.Repeat("█", cells))))
	}
	return sb.String()
}
