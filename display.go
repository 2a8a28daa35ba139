package calc

import "strings"

// Display holds the two rendered lines of the calculator output.
type Display struct {
	Previous string `json:"previous"`
	Current  string `json:"current"`
}

// Render formats state for display: the previous operand followed by the
// pending operation on one line, the current operand on the other.
func (c *Calculator) Render(state State) Display {
	previous, _ := c.FormatOperand(state.Previous)
	current, _ := c.FormatOperand(state.Current)
	return Display{
		Previous: strings.TrimSpace(previous + " " + string(state.Operation)),
		Current:  current,
	}
}

// String renders both lines separated by a newline.
func (d Display) String() string {
	return d.Previous + "\n" + d.Current
}
