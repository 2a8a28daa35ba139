package calc

// ActionKind names an action variant.
type ActionKind string

const (
	KindAddDigit        ActionKind = "add_digit"
	KindChooseOperation ActionKind = "choose_operation"
	KindClear           ActionKind = "clear"
	KindDeleteDigit     ActionKind = "delete_digit"
	KindEvaluate        ActionKind = "evaluate"
)

// Action is a user input event. The set of implementations is closed.
type Action interface {
	Kind() ActionKind
	isAction()
}

// AddDigit appends a digit (0-9) or the decimal point to the current operand.
type AddDigit struct {
	Digit string
}

// ChooseOperation selects the pending operator.
type ChooseOperation struct {
	Operation Operation
}

// Clear resets the calculator.
type Clear struct{}

// DeleteDigit removes the last character of the current operand.
type DeleteDigit struct{}

// Evaluate reduces previous <operation> current into the current operand.
type Evaluate struct{}

func (AddDigit) Kind() ActionKind        { return KindAddDigit }
func (ChooseOperation) Kind() ActionKind { return KindChooseOperation }
func (Clear) Kind() ActionKind           { return KindClear }
func (DeleteDigit) Kind() ActionKind     { return KindDeleteDigit }
func (Evaluate) Kind() ActionKind        { return KindEvaluate }

func (AddDigit) isAction()        {}
func (ChooseOperation) isAction() {}
func (Clear) isAction()           {}
func (DeleteDigit) isAction()     {}
func (Evaluate) isAction()        {}

// Valid reports whether the digit is a single 0-9 character or ".".
func (a AddDigit) Valid() bool {
	if len(a.Digit) != 1 {
		return false
	}
	c := a.Digit[0]
	return c == '.' || (c >= '0' && c <= '9')
}

// normalizeAction dereferences pointer variants. A nil action, including a
// typed nil pointer, normalizes to nil.
func normalizeAction(action Action) Action {
	switch a := action.(type) {
	case *AddDigit:
		if a == nil {
			return nil
		}
		return *a
	case *ChooseOperation:
		if a == nil {
			return nil
		}
		return *a
	case *Clear:
		if a == nil {
			return nil
		}
		return *a
	case *DeleteDigit:
		if a == nil {
			return nil
		}
		return *a
	case *Evaluate:
		if a == nil {
			return nil
		}
		return *a
	default:
		return action
	}
}
