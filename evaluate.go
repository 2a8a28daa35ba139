package calc

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrNoEvaluator   = errors.New("calc: evaluator not configured")
	ErrUnknownEngine = errors.New("calc: unknown engine")
)

// Built-in evaluator engine names.
const (
	EngineExpr = "expr"
	EngineCEL  = "cel"
	EngineJS   = "js"
)

// Evaluate computes previous <op> current and renders the result. Operands
// that do not start with a decimal number, unsupported operations and
// evaluator failures all yield the empty string; failures are reported to the
// evaluator logger.
func (c *Calculator) Evaluate(previous string, op Operation, current string) string {
	prev, ok := ParseNumber(previous)
	if !ok {
		return ""
	}
	curr, ok := ParseNumber(current)
	if !ok {
		return ""
	}
	value, err := c.compute(EvalContext{Previous: prev, Current: curr, Operation: op})
	if err != nil {
		return ""
	}
	return FormatNumber(value)
}

func (c *Calculator) compute(ctx EvalContext) (float64, error) {
	engine := evaluatorEngineName(c.evaluator)
	expression, supported := ctx.Operation.expression()
	start := time.Now()

	var value float64
	var err error
	switch {
	case !supported:
		err = fmt.Errorf("unsupported operation %q", ctx.Operation)
	case c.evaluator == nil:
		err = c.err
		if err == nil {
			err = ErrNoEvaluator
		}
	default:
		var raw any
		raw, err = c.evaluator.Evaluate(ctx, expression)
		if err == nil {
			value, err = toFloat(raw)
		}
	}

	err = wrapEvaluationError(engine, expression, ctx.label(), err)
	c.evaluatorLogger().LogEvaluation(EvaluatorLogEvent{
		Engine:   engine,
		Expr:     expression,
		Op:       ctx.label(),
		Duration: time.Since(start),
		Err:      err,
	})
	return value, err
}

// NewEngine constructs a built-in evaluator by name. An empty name selects
// expr. The js engine requires the js_eval build tag.
func NewEngine(name string, cache ProgramCache) (Evaluator, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", EngineExpr:
		var opts []ExprEvaluatorOption
		if cache != nil {
			opts = append(opts, ExprWithProgramCache(cache))
		}
		return NewExprEvaluator(opts...), nil
	case EngineCEL:
		var opts []CELEvaluatorOption
		if cache != nil {
			opts = append(opts, CELWithProgramCache(cache))
		}
		return NewCELEvaluator(opts...), nil
	case EngineJS:
		var opts []JSEvaluatorOption
		if cache != nil {
			opts = append(opts, JSWithProgramCache(cache))
		}
		evaluator := NewJSEvaluator(opts...)
		if evaluator == nil {
			return nil, fmt.Errorf("%w: js engine requires the js_eval build tag", ErrNoEvaluator)
		}
		return evaluator, nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownEngine, name)
	}
}

// Engines lists the engine names available in this build.
func Engines() []string {
	engines := []string{EngineExpr, EngineCEL}
	if jsEvaluatorAvailable() {
		engines = append(engines, EngineJS)
	}
	return engines
}

func resolveEvaluator(cfg config) (Evaluator, error) {
	if cfg.evaluator != nil {
		return cfg.evaluator, nil
	}
	return NewEngine(cfg.engine, cfg.programCache)
}

func evaluatorEngineName(e Evaluator) string {
	if e == nil {
		return "unknown"
	}
	switch fmt.Sprintf("%T", e) {
	case "*calc.exprEvaluator":
		return EngineExpr
	case "*calc.celEvaluator":
		return EngineCEL
	case "*calc.jsEvaluator":
		return EngineJS
	default:
		return "custom"
	}
}
