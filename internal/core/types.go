package core

import "fmt"

// Analysis is the classification of a single prompt.
// It is derived purely from the prompt text: identical input always yields
// an identical record.
type Analysis struct {
	WordCount        int    `json:"word_count" yaml:"word_count"`                 // Whitespace-delimited tokens, 0 when blank
	IsQuestion       bool   `json:"is_question" yaml:"is_question"`               // Contains "?" or opens with an interrogative
	IsBuildRequest   bool   `json:"is_build_request" yaml:"is_build_request"`     // Construction verb present
	IsProductRequest bool   `json:"is_product_request" yaml:"is_product_request"` // Product noun present
	IsTechnical      bool   `json:"is_technical" yaml:"is_technical"`
	IsCreative       bool   `json:"is_creative" yaml:"is_creative"`
	IsAnalytical     bool   `json:"is_analytical" yaml:"is_analytical"`
	IsSpecific       bool   `json:"is_specific" yaml:"is_specific"`               // Long, or contains "," / ";"
	HasToneSpecified bool   `json:"has_tone_specified" yaml:"has_tone_specified"` // Mentions tone, style, voice, formality
	HasAudience      bool   `json:"has_audience" yaml:"has_audience"`             // Mentions readers, users, clients...
	ProductType      string `json:"product_type" yaml:"product_type"`             // Defaults to "product"
	Domain           string `json:"domain,omitempty" yaml:"domain,omitempty"`     // Industry, empty when none matched
}

// Strategy is the rewriting template chosen for a prompt.
type Strategy string

const (
	StrategyPRD        Strategy = "prd"
	StrategyQuestion   Strategy = "question"
	StrategyCreative   Strategy = "creative"
	StrategyAnalytical Strategy = "analytical"
	StrategyTechnical  Strategy = "technical"
	StrategyGeneral    Strategy = "general"
)

// Strategies lists every strategy in selection priority order.
var Strategies = []Strategy{
	StrategyPRD,
	StrategyQuestion,
	StrategyCreative,
	StrategyAnalytical,
	StrategyTechnical,
	StrategyGeneral,
}

// Label returns the human-readable category used by presentation layers.
func (s Strategy) Label() string {
	switch s {
	case StrategyPRD:
		return "PRD"
	case StrategyQuestion:
		return "Question"
	case StrategyCreative:
		return "Creative"
	case StrategyAnalytical:
		return "Analytical"
	case StrategyTechnical:
		return "Technical"
	case StrategyGeneral:
		return "General"
	default:
		return string(s)
	}
}

func (s Strategy) String() string {
	return string(s)
}

// BlockKind identifies a guidance block appended by the renderer.
type BlockKind string

const (
	BlockDocument  BlockKind = "document" // Full PRD replacement
	BlockDepth     BlockKind = "depth"
	BlockTone      BlockKind = "tone"
	BlockStructure BlockKind = "structure"
	BlockExamples  BlockKind = "examples"
)

// Guidance is one fragment selected by the planner.
type Guidance struct {
	Kind BlockKind `json:"kind" yaml:"kind"`
	Text string    `json:"text" yaml:"text"`
}

// Result is the outcome of enhancing a prompt.
// Strategy is returned explicitly so callers never have to infer the
// category from the rendered text.
type Result struct {
	Text     string      `json:"text" yaml:"text"`
	Strategy Strategy    `json:"strategy" yaml:"strategy"`
	Analysis Analysis    `json:"analysis" yaml:"analysis"`
	Blocks   []BlockKind `json:"blocks" yaml:"blocks"`
}

// Thresholds are the word-count calibration points used by the classifier
// and the renderer.
type Thresholds struct {
	ShortPromptWords int `json:"short_prompt_words" yaml:"short_prompt_words"` // General adds the depth block below this
	SpecificWords    int `json:"specific_words" yaml:"specific_words"`         // IsSpecific above this
	ExamplesMinWords int `json:"examples_min_words" yaml:"examples_min_words"` // Examples block above this
}

// DefaultThresholds returns the canonical calibration.
func DefaultThresholds() Thresholds {
	return Thresholds{
		ShortPromptWords: 10,
		SpecificWords:    15,
		ExamplesMinWords: 10,
	}
}

// Validate checks that every threshold is usable.
func (t Thresholds) Validate() error {
	if t.ShortPromptWords <= 0 {
		return &ValidationError{Field: "thresholds.short_prompt_words", Message: "must be positive"}
	}
	if t.SpecificWords <= 0 {
		return &ValidationError{Field: "thresholds.specific_words", Message: "must be positive"}
	}
	if t.ExamplesMinWords <= 0 {
		return &ValidationError{Field: "thresholds.examples_min_words", Message: "must be positive"}
	}
	return nil
}

// ValidationError represents a validation failure.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}
