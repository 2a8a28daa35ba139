package calc

import (
	"context"

	"github.com/goliatone/go-calculator/pkg/activity"
	"github.com/google/uuid"
)

// Session holds the live state of one calculator, the way a UI runtime does.
// A Session is owned by a single goroutine; it does no locking.
type Session struct {
	id      string
	calc    *Calculator
	state   State
	tracing bool
	trace   Trace
	emitter *activity.Emitter
	userID  string
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithSessionID overrides the generated session UUID.
func WithSessionID(id string) SessionOption {
	return func(s *Session) {
		if id != "" {
			s.id = id
		}
	}
}

// WithTracing records every dispatched action in the session trace.
func WithTracing(enabled bool) SessionOption {
	return func(s *Session) {
		s.tracing = enabled
	}
}

// WithUserID stamps activity events with the given user ID.
func WithUserID(userID string) SessionOption {
	return func(s *Session) {
		s.userID = userID
	}
}

// WithInitialState starts the session from state instead of the empty state.
func WithInitialState(state State) SessionOption {
	return func(s *Session) {
		s.state = state
	}
}

// NewSession starts a session on c.
func (c *Calculator) NewSession(opts ...SessionOption) *Session {
	s := &Session{
		id:      uuid.NewString(),
		calc:    c,
		emitter: c.newEmitter(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	s.trace.SessionID = s.id
	return s
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// State returns the current state.
func (s *Session) State() State {
	return s.state
}

// Display renders the current state.
func (s *Session) Display() Display {
	return s.calc.Render(s.state)
}

// Trace returns a copy of the recorded trace.
func (s *Session) Trace() Trace {
	steps := make([]Step, len(s.trace.Steps))
	copy(steps, s.trace.Steps)
	return Trace{SessionID: s.trace.SessionID, Steps: steps}
}

// Reset returns the session to the empty state and drops the trace.
func (s *Session) Reset() {
	s.state = State{}
	s.trace.Steps = nil
}

// Dispatch applies action to the session state. The returned error only
// reports activity hook failures; the state is updated regardless.
func (s *Session) Dispatch(ctx context.Context, action Action) (State, error) {
	action = normalizeAction(action)
	if action == nil {
		return s.state, nil
	}
	before := s.state
	s.state = s.calc.Apply(before, action)

	key := KeyFor(action)
	if s.tracing {
		s.trace.Steps = append(s.trace.Steps, Step{
			Key:    key,
			Kind:   action.Kind(),
			Before: before,
			After:  s.state,
		})
	}

	if !s.emitter.Enabled() {
		return s.state, nil
	}
	event := activity.BuildTransitionEvent(activity.TransitionEventInput{
		UserID:    s.userID,
		SessionID: s.id,
		Action:    string(action.Kind()),
		Key:       key,
		Before:    before.fields(),
		After:     s.state.fields(),
		Display:   s.Display().String(),
	})
	return s.state, s.emitter.Emit(ctx, event)
}

// Press parses a keypad label and dispatches the resulting action.
func (s *Session) Press(ctx context.Context, label string) (State, error) {
	action, err := ParseKey(label)
	if err != nil {
		return s.state, err
	}
	return s.Dispatch(ctx, action)
}

func (s State) fields() map[string]any {
	return map[string]any{
		"current_operand":  operandField(s.Current),
		"previous_operand": operandField(s.Previous),
		"operation":        string(s.Operation),
		"overwrite":        s.Overwrite,
	}
}

func operandField(o Operand) any {
	if value, ok := o.Value(); ok {
		return value
	}
	return nil
}
