package tui

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/dhabedank/prompt-enhancer/internal/core"
)

// NewMarkdownRenderer builds a glamour renderer. Style "auto" (or empty)
// follows the terminal background; any other value names a glamour style
// such as "dark", "light", "notty" or a JSON style file.
func NewMarkdownRenderer(style string, width int) (*glamour.TermRenderer, error) {
	if width <= 0 {
		width = DefaultWidth
	}

	styleOpt := glamour.WithAutoStyle()
	if style != "" && style != "auto" {
		styleOpt = glamour.WithStylePath(style)
	}

	r, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(width))
	if err != nil {
		return nil, fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	return r, nil
}

// MarkdownDocument wraps an enhancement in a markdown document. PRD text is
// already markdown and is returned unchanged.
func MarkdownDocument(res core.Result) string {
	if res.Strategy == core.StrategyPRD {
		return res.Text
	}
	theme := ThemeFor(res.Strategy)
	return fmt.Sprintf("# %s %s\n\n%s\n", theme.Icon, theme.Heading, res.Text)
}
