package calc

import (
	"encoding/json"
)

// Trace records the transitions applied by a session.
type Trace struct {
	SessionID string `json:"session_id,omitempty"`
	Steps     []Step `json:"steps"`
}

// Step is one applied action with the states around it.
type Step struct {
	Key    string     `json:"key"`
	Kind   ActionKind `json:"kind"`
	Before State      `json:"before"`
	After  State      `json:"after"`
}

// Changed reports whether the step produced a different state.
func (s Step) Changed() bool {
	return s.Before != s.After
}

// Keys returns the key labels of every step in order.
func (t Trace) Keys() []string {
	keys := make([]string, 0, len(t.Steps))
	for _, step := range t.Steps {
		keys = append(keys, step.Key)
	}
	return keys
}

// Final returns the state after the last step, or the empty state.
func (t Trace) Final() State {
	if len(t.Steps) == 0 {
		return State{}
	}
	return t.Steps[len(t.Steps)-1].After
}

// ToJSON serialises the trace into JSON.
func (t Trace) ToJSON() ([]byte, error) {
	type alias Trace
	return json.Marshal(alias(t))
}

// TraceFromJSON deserialises a payload produced by ToJSON.
func TraceFromJSON(payload []byte) (Trace, error) {
	type alias Trace
	var trace alias
	if err := json.Unmarshal(payload, &trace); err != nil {
		return Trace{}, err
	}
	return Trace(trace), nil
}

// Replay re-applies the trace keys on c starting from the empty state and
// returns the resulting state.
func (c *Calculator) Replay(t Trace) (State, error) {
	state := State{}
	for _, key := range t.Keys() {
		action, err := ParseKey(key)
		if err != nil {
			return state, err
		}
		state = c.Apply(state, action)
	}
	return state, nil
}
