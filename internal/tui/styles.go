package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/dhabedank/prompt-enhancer/internal/core"
)

// Color palette for TUI components.
var (
	// Primary colors
	ColorPrimary   = lipgloss.Color("#9b59b6") // Purple
	ColorSecondary = lipgloss.Color("#27ae60") // Green
	ColorMuted     = lipgloss.Color("#95a5a6") // Gray
	ColorWarning   = lipgloss.Color("#f39c12") // Amber
	ColorError     = lipgloss.Color("#e74c3c") // Red

	// Additional colors
	ColorInfo    = lipgloss.Color("#3498db") // Blue
	ColorSuccess = lipgloss.Color("#2ecc71") // Bright green
	ColorAccent  = lipgloss.Color("#e67e22") // Orange
)

// Text styles for consistent formatting.
var (
	// TitleStyle for main headings.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// SubtitleStyle for section headings.
	SubtitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorMuted)

	// SuccessStyle for success messages.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	// ErrorStyle for error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	// WarningStyle for warning messages.
	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	// SelectedStyle for selected items in lists.
	SelectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// UnselectedStyle for unselected items in lists.
	UnselectedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// HelpStyle for help text.
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true)

	// ValueStyle for settings and extracted values.
	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorInfo)

	// TokenStyle for token estimates.
	TokenStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	// SpinnerStyle for spinner text.
	SpinnerStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary)

	// LabelStyle for field names in the analysis view.
	LabelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)
)

// Box styles for layout.
var (
	// BoxStyle for bordered containers.
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorMuted).
			Padding(1, 2)

	// HighlightBoxStyle for highlighted containers.
	HighlightBoxStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorPrimary).
				Padding(1, 2)

	// TipsBoxStyle frames the tips panel shown before the first result.
	TipsBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(ColorMuted).
			Foreground(ColorMuted).
			Padding(1, 2)
)

// Theme is the presentation of one strategy.
type Theme struct {
	Icon    string
	Heading string
	Color   lipgloss.Color
}

var themes = map[core.Strategy]Theme{
	core.StrategyPRD:        {Icon: "📋", Heading: "Project Requirement Document", Color: ColorPrimary},
	core.StrategyQuestion:   {Icon: "❓", Heading: "Enhanced Question", Color: ColorInfo},
	core.StrategyCreative:   {Icon: "🎨", Heading: "Enhanced Creative Prompt", Color: ColorAccent},
	core.StrategyAnalytical: {Icon: "📊", Heading: "Enhanced Analytical Prompt", Color: ColorWarning},
	core.StrategyTechnical:  {Icon: "⚙", Heading: "Enhanced Technical Prompt", Color: ColorSecondary},
	core.StrategyGeneral:    {Icon: "✨", Heading: "Enhanced Prompt", Color: ColorMuted},
}

// ThemeFor returns the theme of a strategy, falling back to General.
func ThemeFor(s core.Strategy) Theme {
	if t, ok := themes[s]; ok {
		return t
	}
	return themes[core.StrategyGeneral]
}
