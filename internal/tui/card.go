package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dhabedank/prompt-enhancer/internal/core"
)

// DefaultWidth is used when the terminal width is unknown.
const DefaultWidth = 80

// minBodyWidth keeps the card readable in narrow terminals.
const minBodyWidth = 20

// Tips are shown before the first enhancement.
var Tips = []string{
	"Be specific about what you want the AI to do",
	"Specify the tone, style, or format you prefer",
	"Include relevant context or background details",
	"Break complex requests into clear steps",
	"Use examples to illustrate what you're looking for",
}

// RenderCard frames an enhancement in a bordered card themed by strategy.
func RenderCard(res core.Result, width int) string {
	if width <= 0 {
		width = DefaultWidth
	}
	theme := ThemeFor(res.Strategy)

	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.Color).
		Render(theme.Icon + " " + theme.Heading)

	blocks := make([]string, len(res.Blocks))
	for i, b := range res.Blocks {
		blocks[i] = string(b)
	}
	meta := HelpStyle.Render(res.Strategy.Label() + " · " + strings.Join(blocks, ", "))

	// Border and padding take 6 columns.
	bodyWidth := max(width-6, minBodyWidth)
	body := lipgloss.NewStyle().Width(bodyWidth).Render(res.Text)

	return HighlightBoxStyle.
		BorderForeground(theme.Color).
		Render(lipgloss.JoinVertical(lipgloss.Left, header, meta, "", body))
}

// RenderTips renders the tips panel.
func RenderTips() string {
	var b strings.Builder
	b.WriteString(SubtitleStyle.Render("Tips for effective prompts:"))
	for _, tip := range Tips {
		b.WriteString("\n  • " + tip)
	}
	return TipsBoxStyle.Render(b.String())
}

// RenderAnalysis lists the classifier's findings and the chosen strategy.
func RenderAnalysis(a core.Analysis, s core.Strategy) string {
	theme := ThemeFor(s)
	rows := []struct {
		label string
		value string
	}{
		{"Strategy", theme.Icon + " " + s.Label()},
		{"Words", strconv.Itoa(a.WordCount)},
		{"Question", yesNo(a.IsQuestion)},
		{"Build request", yesNo(a.IsBuildRequest)},
		{"Product request", yesNo(a.IsProductRequest)},
		{"Technical", yesNo(a.IsTechnical)},
		{"Creative", yesNo(a.IsCreative)},
		{"Analytical", yesNo(a.IsAnalytical)},
		{"Specific", yesNo(a.IsSpecific)},
		{"Tone given", yesNo(a.HasToneSpecified)},
		{"Audience", yesNo(a.HasAudience)},
		{"Product type", a.ProductType},
		{"Domain", a.Domain},
	}

	var b strings.Builder
	for _, r := range rows {
		value := r.value
		if value == "" {
			value = "-"
		}
		b.WriteString(LabelStyle.Render(padRight(r.label, 16)))
		b.WriteString(ValueStyle.Render(value))
		b.WriteString("\n")
	}
	return b.String()
}

// RenderAnalysisBox frames RenderAnalysis in a bordered box.
func RenderAnalysisBox(a core.Analysis, s core.Strategy) string {
	return BoxStyle.Render(strings.TrimRight(RenderAnalysis(a, s), "\n")) + "\n"
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

func padRight(s string, n int) string {
	if len(s) >= n {
		return s
	}
	return s + strings.Repeat(" ", n-len(s))
}
