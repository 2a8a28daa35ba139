package calc

import "golang.org/x/text/language"

// Calculator applies actions using a configured evaluator, formatter and
// loggers. It is immutable after construction and safe for concurrent use.
type Calculator struct {
	cfg       config
	evaluator Evaluator
	formatter *Formatter
	err       error
}

var defaultCalculator = New()

// New constructs a Calculator. When the configured engine cannot be resolved
// the calculator has no evaluator and every evaluation yields the empty
// string; use Load to surface the failure.
func New(opts ...Option) *Calculator {
	cfg := applyOptions(opts)
	c := &Calculator{cfg: cfg}
	c.evaluator, c.err = resolveEvaluator(cfg)

	locale := language.AmericanEnglish
	if cfg.localeSet {
		locale = cfg.locale
	}
	c.formatter = NewFormatter(locale)
	return c
}

// Load constructs a Calculator and reports evaluator resolution errors.
func Load(opts ...Option) (*Calculator, error) {
	c := New(opts...)
	if c.err != nil {
		return nil, c.err
	}
	return c, nil
}

// Default returns the package level calculator backing Apply, Compute,
// FormatOperand and Render.
func Default() *Calculator {
	return defaultCalculator
}

// Engine returns the name of the evaluator backing c.
func (c *Calculator) Engine() string {
	return evaluatorEngineName(c.evaluator)
}

// Formatter returns the operand formatter configured on c.
func (c *Calculator) Formatter() *Formatter {
	return c.formatter
}

// Apply returns the state that results from applying action to state using
// the default calculator.
func Apply(state State, action Action) State {
	return defaultCalculator.Apply(state, action)
}

// Compute evaluates previous <op> current with the default calculator.
func Compute(previous string, op Operation, current string) string {
	return defaultCalculator.Evaluate(previous, op, current)
}

// FormatOperand formats operand for display using en-US grouping.
func FormatOperand(operand Operand) (string, bool) {
	return defaultCalculator.FormatOperand(operand)
}

// Render builds the display lines for state with the default calculator.
func Render(state State) Display {
	return defaultCalculator.Render(state)
}
