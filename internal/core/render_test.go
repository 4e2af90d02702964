package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnhancePRD(t *testing.T) {
	prompt := "build a mobile app for fitness tracking"
	res := Enhance(prompt)

	assert.Equal(t, StrategyPRD, res.Strategy)
	assert.Equal(t, []BlockKind{BlockDocument}, res.Blocks)
	assert.True(t, strings.HasPrefix(res.Text, "# Project Requirement Document (PRD)"))
	assert.Contains(t, res.Text, "## Overview\n"+prompt+"\n")
	assert.Contains(t, res.Text, "detailed objectives for this mobile app")
	assert.Contains(t, res.Text, "Target audience in your industry")
	assert.Contains(t, res.Text, "Design principles to follow for your industry mobile apps")
	assert.True(t, strings.HasSuffix(res.Text, "strategic tone throughout the document."))
}

func TestBuildPRDInterpolatesDomain(t *testing.T) {
	out := BuildPRD("create a platform for finance teams", Analysis{ProductType: "platform", Domain: "finance"})

	assert.Contains(t, out, "Security considerations for finance")
	assert.Contains(t, out, "KPIs to track specific to finance")
	assert.Contains(t, out, "Recommended tech stack for this platform")
	assert.NotContains(t, out, "your industry")
}

func TestBuildPRDDefaults(t *testing.T) {
	out := BuildPRD("x", Analysis{})
	assert.Contains(t, out, "objectives for this product")
	assert.Contains(t, out, "Privacy considerations for your industry")
}

func TestEnhanceTechnicalQuestion(t *testing.T) {
	prompt := "How does a hash table work?"
	res := Enhance(prompt)

	assert.Equal(t, StrategyQuestion, res.Strategy)
	assert.True(t, strings.HasPrefix(res.Text, prompt+"\n\n"))
	assert.Contains(t, res.Text, "technical explanation")
	assert.Contains(t, res.Text, "Step-by-step")
	assert.Equal(t, []BlockKind{BlockDepth, BlockTone, BlockStructure}, res.Blocks)
}

func TestEnhanceShortGeneralPrompt(t *testing.T) {
	prompt := "Tell me about dogs"
	res := Enhance(prompt)

	want := strings.Join([]string{
		prompt,
		depthBlocks[StrategyGeneral],
		toneBlocks[StrategyGeneral],
		structureBlocks[StrategyGeneral],
	}, "\n\n")

	assert.Equal(t, StrategyGeneral, res.Strategy)
	assert.Equal(t, want, res.Text)
	assert.Equal(t, []BlockKind{BlockDepth, BlockTone, BlockStructure}, res.Blocks)
}

func TestEnhanceEmptyInput(t *testing.T) {
	res := Enhance("")

	assert.Equal(t, StrategyGeneral, res.Strategy)
	assert.Equal(t, []BlockKind{BlockTone, BlockStructure}, res.Blocks)
	assert.Equal(t, toneBlocks[StrategyGeneral]+"\n\n"+structureBlocks[StrategyGeneral], res.Text)
	assert.Equal(t, 0, res.Analysis.WordCount)
}

func TestEnhanceWhitespaceInputIsNotDuplicated(t *testing.T) {
	res := Enhance("   \n\t ")
	assert.True(t, strings.HasPrefix(res.Text, "Please use"), "got %q", res.Text)
}

func TestEnhanceNoRedundantTone(t *testing.T) {
	prompts := []string{
		"Write a poem about the sea with a melancholic tone",
		"Describe the history of stone bridges in Europe",
		"Summarize the article. Keep the TONE light",
		"How does a hash table work? Use a friendly tone.",
	}

	for _, prompt := range prompts {
		t.Run(prompt, func(t *testing.T) {
			res := Enhance(prompt)
			require.NotEqual(t, StrategyPRD, res.Strategy)
			assert.NotContains(t, res.Blocks, BlockTone)
			for _, tone := range toneBlocks {
				assert.NotContains(t, res.Text, tone)
			}
		})
	}
}

func TestEnhanceToneSkippedWhenStyleGiven(t *testing.T) {
	res := Enhance("Write a casual note to my neighbour")
	assert.Equal(t, StrategyCreative, res.Strategy)
	assert.NotContains(t, res.Blocks, BlockTone)
}

func TestEnhanceExamplesGating(t *testing.T) {
	withExample := "Explain, with an example, how vaccines train the immune system to recognize viruses over time"
	res := Enhance(withExample)
	assert.Equal(t, StrategyAnalytical, res.Strategy)
	assert.Equal(t, 0, strings.Count(res.Text, ExamplesRequest))
	assert.NotContains(t, res.Blocks, BlockExamples)

	without := "Compare the economic policies of the two candidates across taxation healthcare spending and trade"
	res = Enhance(without)
	assert.Equal(t, StrategyAnalytical, res.Strategy)
	assert.Equal(t, "healthcare", res.Analysis.Domain)
	assert.Equal(t, 1, strings.Count(res.Text, ExamplesRequest))
	assert.Equal(t, []BlockKind{BlockDepth, BlockTone, BlockStructure, BlockExamples}, res.Blocks)
}

func TestEnhanceExamplesNeedLongPrompt(t *testing.T) {
	res := Enhance("Compare cats and dogs")
	assert.NotContains(t, res.Blocks, BlockExamples)
}

func TestEnhanceStructureGating(t *testing.T) {
	res := Enhance("Write a sonnet in a strict format about autumn")
	assert.Equal(t, StrategyCreative, res.Strategy)
	assert.NotContains(t, res.Blocks, BlockStructure)

	res = Enhance("Write a short story about a lighthouse keeper")
	assert.Contains(t, res.Blocks, BlockStructure)
	assert.Contains(t, res.Text, structureBlocks[StrategyCreative])
}

func TestEnhanceSpecificGeneralPromptSkipsStructure(t *testing.T) {
	res := Enhance("Plan a weekend trip to Lisbon, Portugal")
	assert.Equal(t, StrategyGeneral, res.Strategy)
	assert.True(t, res.Analysis.IsSpecific)
	assert.NotContains(t, res.Blocks, BlockStructure)
}

func TestEnhanceGuidanceOrder(t *testing.T) {
	res := Enhance("Optimize this SQL query for speed")
	require.Equal(t, StrategyTechnical, res.Strategy)

	depth := strings.Index(res.Text, depthBlocks[StrategyTechnical])
	tone := strings.Index(res.Text, toneBlocks[StrategyTechnical])
	structure := strings.Index(res.Text, structureBlocks[StrategyTechnical])
	assert.True(t, depth > 0 && depth < tone && tone < structure, "blocks out of order:\n%s", res.Text)
}

func TestEnhanceQuestionBranches(t *testing.T) {
	tests := []struct {
		prompt string
		focus  Strategy
	}{
		{"How does a hash table work?", StrategyTechnical},
		{"What makes a character memorable?", StrategyCreative},
		{"Why did the Roman Empire fall?", StrategyAnalytical},
		{"Where is the Eiffel Tower?", StrategyGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.prompt, func(t *testing.T) {
			res := Enhance(tt.prompt)
			require.Equal(t, StrategyQuestion, res.Strategy)
			assert.Contains(t, res.Text, questionDepthBlocks[tt.focus])
		})
	}
}

func TestPlanMatchesRender(t *testing.T) {
	e, err := NewEngine()
	require.NoError(t, err)

	prompt := "Write a short story about a lighthouse keeper"
	a := e.Analyze(prompt)
	s := SelectStrategy(a)

	plan := e.Plan(prompt, a, s)
	require.NotEmpty(t, plan)

	texts := []string{prompt}
	for _, g := range plan {
		texts = append(texts, g.Text)
	}
	assert.Equal(t, strings.Join(texts, "\n\n"), e.Render(prompt, a, s))
}

func TestCatalogTextDoesNotTripGates(t *testing.T) {
	// Depth and tone text must not suppress later blocks by accident.
	for s, text := range toneBlocks {
		lower := strings.ToLower(text)
		assert.False(t, containsAny(lower, structureGate), "tone block for %s trips the structure gate", s)
		assert.False(t, containsAny(lower, examplesGate), "tone block for %s trips the examples gate", s)
	}
	for s, text := range structureBlocks {
		assert.False(t, containsAny(strings.ToLower(text), examplesGate), "structure block for %s trips the examples gate", s)
	}
	for s, text := range depthBlocks {
		lower := strings.ToLower(text)
		assert.False(t, containsAny(lower, toneGate), "depth block for %s trips the tone gate", s)
		assert.False(t, containsAny(lower, structureGate), "depth block for %s trips the structure gate", s)
	}
	for s, text := range questionDepthBlocks {
		lower := strings.ToLower(text)
		assert.False(t, containsAny(lower, toneGate), "question block for %s trips the tone gate", s)
		assert.False(t, containsAny(lower, structureGate), "question block for %s trips the structure gate", s)
	}
}
