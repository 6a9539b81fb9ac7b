package components

import (
	"github.com/charmbracelet/lipgloss"
)

// MetricCard displays a single labelled metric in a bordered box.
type MetricCard struct {
	Label       string
	Value       string
	Description string
	Width       int
}

// NewMetricCard creates a metric card with the default width.
func NewMetricCard(label, value string) *MetricCard {
	return &MetricCard{Label: label, Value: value, Width: 26}
}

// WithDescription adds a subtitle line.
func (m *MetricCard) WithDescription(desc string) *MetricCard {
	m.Description = desc
	return m
}

// WithWidth sets the card width.
func (m *MetricCard) WithWidth(width int) *MetricCard {
	m.Width = width
	return m
}

// Render returns the styled card.
func (m *MetricCard) Render() string {
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	valueStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#E5E7EB"))
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280")).Italic(true)

	content := labelStyle.Render(m.Label) + "\n" + valueStyle.Render(m.Value)
	if m.Description != "" {
		content += "\n" + descStyle.Render(m.Description)
	}

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#374151")).
		Padding(0, 1).
		Width(m.Width)
	return card.Render(content)
}

// Row lays several cards out horizontally.
func Row(cards ...*MetricCard) string {
	rendered := make([]string, len(cards))
	for i, c := range cards {
		rendered[i] = c.Render()
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}
