package script

import (
	"fmt"

	calc "github.com/goliatone/go-calculator"
	"gopkg.in/yaml.v3"
)

// OperandExpectation asserts an operand value, or its absence.
type OperandExpectation struct {
	Absent bool
	Value  string
}

func (e OperandExpectation) check(field string, got calc.Operand) string {
	value, ok := got.Value()
	switch {
	case e.Absent && ok:
		return fmt.Sprintf("%s: expected absent, got %q", field, value)
	case !e.Absent && !ok:
		return fmt.Sprintf("%s: expected %q, got absent", field, e.Value)
	case !e.Absent && value != e.Value:
		return fmt.Sprintf("%s: expected %q, got %q", field, e.Value, value)
	}
	return ""
}

// DisplayExpectation asserts the rendered display lines.
type DisplayExpectation struct {
	Previous *string `yaml:"previous"`
	Current  *string `yaml:"current"`
}

// Expectation lists the checks applied after a script runs. Nil fields are
// not checked.
type Expectation struct {
	Current   *OperandExpectation
	Previous  *OperandExpectation
	Operation *string
	Overwrite *bool
	Display   *DisplayExpectation
}

// UnmarshalYAML decodes the expect mapping field by field so an explicit null
// operand can be told apart from an omitted one.
func (e *Expectation) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expect must be a mapping", node.Line)
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		var err error
		switch key.Value {
		case "current":
			e.Current, err = decodeOperand(value)
		case "previous":
			e.Previous, err = decodeOperand(value)
		case "operation":
			var op string
			err = value.Decode(&op)
			e.Operation = &op
		case "overwrite":
			var overwrite bool
			err = value.Decode(&overwrite)
			e.Overwrite = &overwrite
		case "display":
			var display DisplayExpectation
			err = value.Decode(&display)
			e.Display = &display
		default:
			err = fmt.Errorf("line %d: unknown expectation %q", key.Line, key.Value)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func decodeOperand(node *yaml.Node) (*OperandExpectation, error) {
	if node.ShortTag() == "!!null" {
		return &OperandExpectation{Absent: true}, nil
	}
	var value string
	if err := node.Decode(&value); err != nil {
		return nil, err
	}
	return &OperandExpectation{Value: value}, nil
}

// Check returns one message per failed expectation.
func (e Expectation) Check(state calc.State, display calc.Display) []string {
	var failures []string
	add := func(msg string) {
		if msg != "" {
			failures = append(failures, msg)
		}
	}
	if e.Current != nil {
		add(e.Current.check("current", state.Current))
	}
	if e.Previous != nil {
		add(e.Previous.check("previous", state.Previous))
	}
	if e.Operation != nil && string(state.Operation) != *e.Operation {
		add(fmt.Sprintf("operation: expected %q, got %q", *e.Operation, state.Operation))
	}
	if e.Overwrite != nil && state.Overwrite != *e.Overwrite {
		add(fmt.Sprintf("overwrite: expected %t, got %t", *e.Overwrite, state.Overwrite))
	}
	if e.Display != nil {
		if e.Display.Previous != nil && display.Previous != *e.Display.Previous {
			add(fmt.Sprintf("display.previous: expected %q, got %q", *e.Display.Previous, display.Previous))
		}
		if e.Display.Current != nil && display.Current != *e.Display.Current {
			add(fmt.Sprintf("display.current: expected %q, got %q", *e.Display.Current, display.Current))
		}
	}
	return failures
}
