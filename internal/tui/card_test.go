package tui

import (
	"strings"
	"testing"

	"github.com/dhabedank/prompt-enhancer/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemeFor(t *testing.T) {
	for _, s := range core.Strategies {
		theme := ThemeFor(s)
		assert.NotEmpty(t, theme.Icon, s)
		assert.NotEmpty(t, theme.Heading, s)
	}
	assert.Equal(t, ThemeFor(core.StrategyGeneral), ThemeFor(core.Strategy("unknown")))
}

func TestRenderCard(t *testing.T) {
	res := core.Enhance("How does a hash table work?")

	card := RenderCard(res, 100)
	assert.Contains(t, card, "Enhanced Question")
	assert.Contains(t, card, "Question · depth, tone, structure")
	assert.Contains(t, card, "hash table")
}

func TestRenderCardNarrow(t *testing.T) {
	res := core.Enhance("Tell me about dogs")
	assert.NotPanics(t, func() { RenderCard(res, 4) })
	assert.NotPanics(t, func() { RenderCard(res, 0) })
}

func TestRenderTips(t *testing.T) {
	out := RenderTips()
	for _, tip := range Tips {
		assert.Contains(t, out, tip)
	}
}

func TestRenderAnalysis(t *testing.T) {
	a := core.Analyze("build a mobile app for healthcare clinics")
	out := RenderAnalysis(a, core.SelectStrategy(a))

	assert.Contains(t, out, "PRD")
	assert.Contains(t, out, "mobile app")
	assert.Contains(t, out, "healthcare")

	boxed := RenderAnalysisBox(a, core.SelectStrategy(a))
	assert.True(t, strings.HasPrefix(boxed, "╭"))
	assert.Contains(t, boxed, "healthcare")
}

func TestMarkdownDocument(t *testing.T) {
	prd := core.Enhance("build a website for retail")
	assert.Equal(t, prd.Text, MarkdownDocument(prd))

	q := core.Enhance("Where is the Eiffel Tower?")
	doc := MarkdownDocument(q)
	assert.True(t, strings.HasPrefix(doc, "# ❓ Enhanced Question\n\n"))
}

func TestNewMarkdownRenderer(t *testing.T) {
	r, err := NewMarkdownRenderer("notty", 60)
	require.NoError(t, err)

	out, err := r.Render(MarkdownDocument(core.Enhance("Tell me about dogs")))
	require.NoError(t, err)
	assert.Contains(t, out, "Enhanced Prompt")
	assert.Contains(t, out, "dogs")

	_, err = NewMarkdownRenderer("/does/not/exist.json", 60)
	assert.Error(t, err)
}
