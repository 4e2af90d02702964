package core

import (
	"go.uber.org/zap"
)

// Engine classifies and rewrites prompts. It holds only immutable state
// and is safe for concurrent use.
type Engine struct {
	matchers   *matchers
	thresholds Thresholds
	logger     *zap.Logger
}

type engineOptions struct {
	keywords   Keywords
	thresholds Thresholds
	logger     *zap.Logger
}

// Option configures an Engine.
type Option func(*engineOptions)

// WithThresholds replaces the canonical word-count thresholds.
func WithThresholds(t Thresholds) Option {
	return func(o *engineOptions) {
		o.thresholds = t
	}
}

// WithKeywords merges extra keywords into the canonical catalog.
func WithKeywords(extra Keywords) Option {
	return func(o *engineOptions) {
		o.keywords = o.keywords.Merge(extra)
	}
}

// WithLogger sets the logger used for debug traces.
func WithLogger(logger *zap.Logger) Option {
	return func(o *engineOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// NewEngine builds an engine from the canonical catalog and thresholds.
func NewEngine(opts ...Option) (*Engine, error) {
	o := engineOptions{
		keywords:   DefaultKeywords(),
		thresholds: DefaultThresholds(),
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	if err := o.thresholds.Validate(); err != nil {
		return nil, err
	}

	return &Engine{
		matchers:   compileKeywords(o.keywords),
		thresholds: o.thresholds,
		logger:     o.logger,
	}, nil
}

// Thresholds returns the engine's calibration.
func (e *Engine) Thresholds() Thresholds {
	return e.thresholds
}

// Enhance classifies prompt, selects a strategy and renders the result.
func (e *Engine) Enhance(prompt string) Result {
	a := e.Analyze(prompt)
	s := SelectStrategy(a)
	plan := e.Plan(prompt, a, s)

	blocks := make([]BlockKind, len(plan))
	for i, g := range plan {
		blocks[i] = g.Kind
	}

	if ce := e.logger.Check(zap.DebugLevel, "prompt enhanced"); ce != nil {
		kinds := make([]string, len(blocks))
		for i, b := range blocks {
			kinds[i] = string(b)
		}
		ce.Write(
			zap.String("strategy", string(s)),
			zap.Int("word_count", a.WordCount),
			zap.Strings("blocks", kinds),
		)
	}

	return Result{
		Text:     join(prompt, s, plan),
		Strategy: s,
		Analysis: a,
		Blocks:   blocks,
	}
}

var defaultEngine = mustNewEngine()

func mustNewEngine() *Engine {
	e, err := NewEngine()
	if err != nil {
		panic(err)
	}
	return e
}

// Enhance rewrites prompt with the canonical engine.
func Enhance(prompt string) Result {
	return defaultEngine.Enhance(prompt)
}

// Analyze classifies prompt with the canonical engine.
func Analyze(prompt string) Analysis {
	return defaultEngine.Analyze(prompt)
}
