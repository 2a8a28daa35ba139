package calc

import (
	"log/slog"

	"github.com/goliatone/go-calculator/pkg/activity"
	"golang.org/x/text/language"
)

// EvalContext carries the parsed operands an evaluator computes over.
type EvalContext struct {
	Previous  float64
	Current   float64
	Operation Operation
}

func (ctx EvalContext) bindings() map[string]any {
	return map[string]any{
		"prev": ctx.Previous,
		"curr": ctx.Current,
	}
}

func (ctx EvalContext) label() string {
	if ctx.Operation == "" {
		return "none"
	}
	return string(ctx.Operation)
}

// Evaluator executes arithmetic expressions over an EvalContext. The
// expression references the variables prev and curr.
type Evaluator interface {
	Evaluate(ctx EvalContext, expr string) (any, error)
	Compile(expr string) (CompiledRule, error)
}

// CompiledRule is a reusable expression program.
type CompiledRule interface {
	Evaluate(ctx EvalContext) (any, error)
}

// Option configures a Calculator.
type Option func(*config)

type config struct {
	evaluator      Evaluator
	engine         string
	programCache   ProgramCache
	locale         language.Tag
	localeSet      bool
	logger         EvaluatorLogger
	slog           *slog.Logger
	activityHooks  activity.Hooks
	activityConfig activity.Config
	activitySet    bool
}

func applyOptions(opts []Option) config {
	cfg := config{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithEvaluator configures the evaluator used for Evaluate. It takes
// precedence over WithEngine.
func WithEvaluator(e Evaluator) Option {
	return func(cfg *config) {
		cfg.evaluator = e
	}
}

// WithEngine selects a built-in evaluator by name: expr, cel or js.
func WithEngine(name string) Option {
	return func(cfg *config) {
		cfg.engine = name
	}
}

// WithLocale sets the locale used to group the integer part of operands.
func WithLocale(tag language.Tag) Option {
	return func(cfg *config) {
		cfg.locale = tag
		cfg.localeSet = true
	}
}

// WithLogger attaches a structured logger for transition diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *config) {
		cfg.slog = logger
	}
}
