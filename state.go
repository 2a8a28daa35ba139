package calc

import (
	"encoding/json"
	"strings"
)

// Operand is an optional operand string. The zero value is absent; a present
// operand may hold the empty string (the result of a failed evaluation).
type Operand struct {
	value string
	set   bool
}

// NewOperand returns a present operand holding value.
func NewOperand(value string) Operand {
	return Operand{value: value, set: true}
}

// Value returns the operand string and whether it is present.
func (o Operand) Value() (string, bool) {
	return o.value, o.set
}

// IsSet reports whether the operand is present.
func (o Operand) IsSet() bool {
	return o.set
}

// String returns the operand value, or the empty string when absent.
func (o Operand) String() string {
	return o.value
}

func (o Operand) len() int {
	return len(o.value)
}

// MarshalJSON encodes absent operands as null.
func (o Operand) MarshalJSON() ([]byte, error) {
	if !o.set {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

// UnmarshalJSON decodes null into an absent operand.
func (o *Operand) UnmarshalJSON(data []byte) error {
	if strings.TrimSpace(string(data)) == "null" {
		*o = Operand{}
		return nil
	}
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	*o = NewOperand(value)
	return nil
}

// Operation is one of the four arithmetic operator symbols. The empty
// Operation means no operation is pending.
type Operation string

const (
	OpAdd      Operation = "+"
	OpSubtract Operation = "-"
	OpMultiply Operation = "*"
	OpDivide   Operation = "÷"
)

// Operations lists the supported operators in keypad order.
func Operations() []Operation {
	return []Operation{OpDivide, OpMultiply, OpAdd, OpSubtract}
}

// Valid reports whether op is a supported operator.
func (op Operation) Valid() bool {
	switch op {
	case OpAdd, OpSubtract, OpMultiply, OpDivide:
		return true
	default:
		return false
	}
}

// expression returns the evaluator source computing prev <op> curr.
func (op Operation) expression() (string, bool) {
	switch op {
	case OpAdd:
		return "prev + curr", true
	case OpSubtract:
		return "prev - curr", true
	case OpMultiply:
		return "prev * curr", true
	case OpDivide:
		return "prev / curr", true
	default:
		return "", false
	}
}

// State is the calculator state. Transitions never mutate a State; they
// return a replacement value.
type State struct {
	Current   Operand   `json:"current_operand"`
	Previous  Operand   `json:"previous_operand"`
	Operation Operation `json:"operation,omitempty"`
	Overwrite bool      `json:"overwrite,omitempty"`
}

// IsEmpty reports whether s equals the state produced by Clear.
func (s State) IsEmpty() bool {
	return s == State{}
}
