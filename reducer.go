package calc

import "strings"

// Apply returns the state produced by action. Malformed or inapplicable
// actions return state unchanged.
func (c *Calculator) Apply(state State, action Action) State {
	action = normalizeAction(action)
	var next State
	switch a := action.(type) {
	case AddDigit:
		next = addDigit(state, a)
	case ChooseOperation:
		next = c.chooseOperation(state, a)
	case Clear:
		next = State{}
	case DeleteDigit:
		next = deleteDigit(state)
	case Evaluate:
		next = c.evaluate(state)
	default:
		return state
	}
	c.logTransition(state, action, next)
	return next
}

func addDigit(state State, a AddDigit) State {
	if !a.Valid() {
		return state
	}
	current, ok := state.Current.Value()
	if a.Digit == "0" && ok && current == "0" {
		return state
	}
	if a.Digit == "." && strings.Contains(current, ".") {
		return state
	}
	if state.Overwrite {
		state.Current = NewOperand(a.Digit)
		state.Overwrite = false
		return state
	}
	// Appending also raises Overwrite, so the next digit replaces this
	// operand. Kept for compatibility with the existing keypad behaviour.
	state.Current = NewOperand(current + a.Digit)
	state.Overwrite = true
	return state
}

func (c *Calculator) chooseOperation(state State, a ChooseOperation) State {
	if !a.Operation.Valid() {
		return state
	}
	switch {
	case !state.Current.IsSet() && !state.Previous.IsSet():
		return state
	case !state.Previous.IsSet():
		state.Previous = state.Current
		state.Operation = a.Operation
		state.Current = Operand{}
	case !state.Current.IsSet():
		state.Operation = a.Operation
	default:
		state.Previous = NewOperand(c.Evaluate(state.Previous.String(), state.Operation, state.Current.String()))
		state.Operation = a.Operation
		state.Current = Operand{}
	}
	return state
}

func deleteDigit(state State) State {
	if state.Overwrite {
		state.Overwrite = false
		state.Current = Operand{}
		return state
	}
	if !state.Current.IsSet() {
		return state
	}
	current := state.Current.String()
	switch {
	case state.Current.len() == 1:
		state.Current = Operand{}
	case current == "":
	default:
		state.Current = NewOperand(current[:len(current)-1])
	}
	return state
}

func (c *Calculator) evaluate(state State) State {
	if state.Operation == "" || !state.Current.IsSet() || !state.Previous.IsSet() {
		return state
	}
	result := c.Evaluate(state.Previous.String(), state.Operation, state.Current.String())
	return State{
		Current:   NewOperand(result),
		Overwrite: true,
	}
}

func (c *Calculator) logTransition(before State, action Action, after State) {
	logger := c.cfg.slog
	if logger == nil || action == nil {
		return
	}
	logger.Debug("calculator transition",
		"action", action.Kind(),
		"changed", before != after,
		"current", after.Current.String(),
		"previous", after.Previous.String(),
		"operation", string(after.Operation),
		"overwrite", after.Overwrite,
	)
}
