package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dhabedank/prompt-enhancer/internal/core"
)

// EstimateTokens estimates token count from character count.
// Uses the approximation that 1 token ≈ 4 characters.
func EstimateTokens(chars int) int {
	if chars <= 0 {
		return 0
	}
	return chars / 4
}

// FormatTokens formats a token count for display.
// Uses k suffix for thousands.
func FormatTokens(tokens int) string {
	if tokens < 1000 {
		return fmt.Sprintf("%d", tokens)
	}
	if tokens < 10000 {
		return fmt.Sprintf("%.1fk", float64(tokens)/1000)
	}
	return fmt.Sprintf("%dk", tokens/1000)
}

// Stats summarizes how much an enhancement grew the prompt.
type Stats struct {
	InputWords   int
	OutputWords  int
	InputTokens  int
	OutputTokens int
}

// NewStats measures the original prompt against its enhancement.
func NewStats(prompt string, res core.Result) Stats {
	return Stats{
		InputWords:   len(strings.Fields(prompt)),
		OutputWords:  len(strings.Fields(res.Text)),
		InputTokens:  EstimateTokens(utf8.RuneCountInString(prompt)),
		OutputTokens: EstimateTokens(utf8.RuneCountInString(res.Text)),
	}
}

// RenderStats returns a one-line summary (non-interactive mode).
func RenderStats(s Stats) string {
	return fmt.Sprintf("%s  Words: %d → %d  Tokens: ~%s → ~%s",
		SubtitleStyle.Render("Stats"),
		s.InputWords,
		s.OutputWords,
		TokenStyle.Render(FormatTokens(s.InputTokens)),
		TokenStyle.Render(FormatTokens(s.OutputTokens)),
	)
}
