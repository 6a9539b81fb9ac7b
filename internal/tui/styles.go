package tui

import "github.com/charmbracelet/lipgloss"

// Style sheet for the dashboard.
var (
	ColorPrimary    = lipgloss.Color("#7C3AED")
	ColorSuccess    = lipgloss.Color("#10B981")
	ColorDanger     = lipgloss.Color("#EF4444")
	ColorMuted      = lipgloss.Color("#6B7280")
	ColorForeground = lipgloss.Color("#E5E7EB")
	ColorBorder     = lipgloss.Color("#374151")

	AppStyle = lipgloss.NewStyle().
			Padding(1, 2)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	TabStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(ColorMuted)

	ActiveTabStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Bold(true).
			Foreground(ColorForeground).
			Background(ColorPrimary)

	SectionStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 2)

	MetricLabelStyle = lipgloss.NewStyle().
				Foreground(ColorMuted)

	MetricValueStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorForeground)

	PositiveStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	NegativeStyle = lipgloss.NewStyle().
			Foreground(ColorDanger)

	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorDanger)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)
