package calc

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/goliatone/go-calculator/pkg/activity"
	"github.com/google/uuid"
)

func TestSessionGeneratesUUID(t *testing.T) {
	session := New().NewSession()
	if _, err := uuid.Parse(session.ID()); err != nil {
		t.Fatalf("expected uuid session id, got %q: %v", session.ID(), err)
	}
	if got := New().NewSession(WithSessionID("fixed")).ID(); got != "fixed" {
		t.Fatalf("expected fixed id, got %q", got)
	}
}

func TestSessionTracesOnlyWhenEnabled(t *testing.T) {
	ctx := context.Background()
	plain := New().NewSession()
	if _, err := plain.Press(ctx, "1"); err != nil {
		t.Fatalf("press: %v", err)
	}
	if len(plain.Trace().Steps) != 0 {
		t.Fatalf("expected no steps without tracing")
	}

	traced := New().NewSession(WithTracing(true))
	for _, key := range []string{"1", "0", "0"} {
		if _, err := traced.Press(ctx, key); err != nil {
			t.Fatalf("press %q: %v", key, err)
		}
	}
	steps := traced.Trace().Steps
	if len(steps) != 3 {
		t.Fatalf("expected 3 steps, got %d", len(steps))
	}
	if steps[0].Kind != KindAddDigit || !steps[0].Changed() {
		t.Fatalf("unexpected first step %+v", steps[0])
	}
	// "0" onto "0" is rejected.
	if steps[2].Changed() {
		t.Fatalf("expected last step to be a no-op, got %+v", steps[2])
	}
}

func TestSessionPressUnknownKeyKeepsState(t *testing.T) {
	session := New().NewSession(WithInitialState(State{Current: NewOperand("5")}))
	state, err := session.Press(context.Background(), "%")
	if !errors.Is(err, ErrUnknownKey) {
		t.Fatalf("expected ErrUnknownKey, got %v", err)
	}
	if state.Current != NewOperand("5") {
		t.Fatalf("state should be unchanged, got %+v", state)
	}
}

func TestSessionEmitsTransitionEvents(t *testing.T) {
	hook := &activity.CaptureHook{}
	calc := New(
		WithActivityHooks(activity.Hooks{hook}),
		WithActivityConfig(activity.Config{Enabled: true, TenantID: "tenant-1"}),
	)
	session := calc.NewSession(WithSessionID("s-1"), WithUserID("user-1"))

	ctx := context.Background()
	for _, key := range []string{"6", "+", "4", "="} {
		if _, err := session.Press(ctx, key); err != nil {
			t.Fatalf("press %q: %v", key, err)
		}
	}

	want := []string{
		"calculator.add_digit",
		"calculator.choose_operation",
		"calculator.add_digit",
		"calculator.evaluate",
	}
	if got := hook.Verbs(); !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected verbs %v", got)
	}

	last := hook.Events[len(hook.Events)-1]
	if last.ObjectType != activity.ObjectTypeSession || last.ObjectID != "s-1" {
		t.Fatalf("unexpected object %s/%s", last.ObjectType, last.ObjectID)
	}
	if last.UserID != "user-1" || last.TenantID != "tenant-1" {
		t.Fatalf("unexpected identity user=%q tenant=%q", last.UserID, last.TenantID)
	}
	if last.Channel != activity.DefaultChannel {
		t.Fatalf("expected default channel, got %q", last.Channel)
	}
	after, ok := last.Metadata["after"].(map[string]any)
	if !ok {
		t.Fatalf("expected after fields, got %#v", last.Metadata["after"])
	}
	if after["current_operand"] != "10" || after["previous_operand"] != nil {
		t.Fatalf("unexpected after fields %#v", after)
	}
	if last.Metadata["key"] != "=" || last.Metadata["changed"] != true {
		t.Fatalf("unexpected metadata %#v", last.Metadata)
	}
	if last.Metadata["display"] != "\n10" {
		t.Fatalf("unexpected display %#v", last.Metadata["display"])
	}
}

func TestSessionReturnsHookErrorsAfterApplying(t *testing.T) {
	errHook := errors.New("sink down")
	hook := &activity.CaptureHook{Err: errHook}
	session := New(WithActivityHooks(activity.Hooks{hook})).NewSession()

	state, err := session.Press(context.Background(), "3")
	if !errors.Is(err, errHook) {
		t.Fatalf("expected hook error, got %v", err)
	}
	if state.Current != NewOperand("3") || session.State() != state {
		t.Fatalf("state should still advance, got %+v", state)
	}
}

func TestSessionActivityCanBeDisabled(t *testing.T) {
	hook := &activity.CaptureHook{}
	calc := New(
		WithActivityHooks(activity.Hooks{hook}),
		WithActivityConfig(activity.Config{Enabled: false}),
	)
	session := calc.NewSession()
	if _, err := session.Press(context.Background(), "1"); err != nil {
		t.Fatalf("press: %v", err)
	}
	if len(hook.Events) != 0 {
		t.Fatalf("expected no events, got %d", len(hook.Events))
	}
}

func TestSessionReset(t *testing.T) {
	session := New().NewSession(WithTracing(true))
	if _, err := session.Press(context.Background(), "9"); err != nil {
		t.Fatalf("press: %v", err)
	}
	session.Reset()
	if !session.State().IsEmpty() || len(session.Trace().Steps) != 0 {
		t.Fatalf("expected reset session, got %+v", session.State())
	}
	if session.Display() != (Display{}) {
		t.Fatalf("expected blank display, got %+v", session.Display())
	}
}
