package core

import (
	"strings"
)

// blockSeparator joins the prompt and each guidance fragment.
const blockSeparator = "\n\n"

// Plan selects the guidance fragments for a prompt, in output order.
// PRD yields a single document fragment that replaces the prompt. Every
// other strategy yields depth, tone, structure and examples fragments, each
// skipped when its gate keyword already appears in the prompt or in the
// fragments selected before it.
func (e *Engine) Plan(prompt string, a Analysis, s Strategy) []Guidance {
	if s == StrategyPRD {
		return []Guidance{{Kind: BlockDocument, Text: BuildPRD(prompt, a)}}
	}

	var plan []Guidance
	accumulated := strings.ToLower(prompt)
	add := func(kind BlockKind, text string) {
		plan = append(plan, Guidance{Kind: kind, Text: text})
		accumulated += blockSeparator + strings.ToLower(text)
	}

	if text := e.depthBlock(a, s); text != "" {
		add(BlockDepth, text)
	}

	if !a.HasToneSpecified && !containsAny(accumulated, toneGate) {
		add(BlockTone, toneBlocks[s])
	}

	if e.wantsStructure(a, s) && !containsAny(accumulated, structureGate) {
		add(BlockStructure, structureBlocks[s])
	}

	if a.WordCount > e.thresholds.ExamplesMinWords && !containsAny(accumulated, examplesGate) {
		add(BlockExamples, ExamplesRequest)
	}

	return plan
}

// Render produces the enhanced text for a prompt. The plan is joined once;
// a blank prompt is not repeated in the output.
func (e *Engine) Render(prompt string, a Analysis, s Strategy) string {
	return join(prompt, s, e.Plan(prompt, a, s))
}

func join(prompt string, s Strategy, plan []Guidance) string {
	if s == StrategyPRD && len(plan) == 1 {
		return plan[0].Text
	}

	parts := make([]string, 0, len(plan)+1)
	if strings.TrimSpace(prompt) != "" {
		parts = append(parts, prompt)
	}
	for _, g := range plan {
		parts = append(parts, g.Text)
	}
	return strings.Join(parts, blockSeparator)
}

func (e *Engine) depthBlock(a Analysis, s Strategy) string {
	switch s {
	case StrategyQuestion:
		return questionDepthBlocks[questionFocus(a)]
	case StrategyGeneral:
		if a.WordCount == 0 || a.WordCount >= e.thresholds.ShortPromptWords {
			return ""
		}
		return depthBlocks[StrategyGeneral]
	default:
		return depthBlocks[s]
	}
}

// wantsStructure reports whether the strategy asks for a structure block.
// Specific questions and general prompts already carry their own shape.
func (e *Engine) wantsStructure(a Analysis, s Strategy) bool {
	switch s {
	case StrategyQuestion, StrategyGeneral:
		return !a.IsSpecific
	default:
		return true
	}
}

func containsAny(haystack string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}
