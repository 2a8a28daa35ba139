package usersink_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/goliatone/go-calculator/pkg/activity"
	"github.com/goliatone/go-calculator/pkg/activity/usersink"
	usertypes "github.com/goliatone/go-users/pkg/types"
	"github.com/google/uuid"
)

type recordingSink struct {
	records []usertypes.ActivityRecord
	err     error
}

func (s *recordingSink) Log(_ context.Context, record usertypes.ActivityRecord) error {
	s.records = append(s.records, record)
	return s.err
}

func TestHookNotifyMapsTransitionEvent(t *testing.T) {
	sink := &recordingSink{}
	hook := usersink.Hook{Sink: sink}

	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	actorID := uuid.New()
	tenantID := uuid.New()
	sessionID := uuid.New().String()

	event := activity.BuildTransitionEvent(activity.TransitionEventInput{
		ActorID:    actorID.String(),
		UserID:     "not-a-uuid",
		TenantID:   tenantID.String(),
		SessionID:  sessionID,
		Channel:    "calculator",
		Action:     "evaluate",
		Key:        "=",
		Before:     map[string]any{"current_operand": "3"},
		After:      map[string]any{"current_operand": "5"},
		OccurredAt: now,
	})

	if err := hook.Notify(context.Background(), event); err != nil {
		t.Fatalf("notify: %v", err)
	}

	if len(sink.records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(sink.records))
	}
	record := sink.records[0]
	if record.ActorID != actorID {
		t.Fatalf("expected actor %s got %s", actorID, record.ActorID)
	}
	if record.UserID != uuid.Nil {
		t.Fatalf("expected nil user for invalid uuid, got %s", record.UserID)
	}
	if record.TenantID != tenantID {
		t.Fatalf("expected tenant %s got %s", tenantID, record.TenantID)
	}
	if record.Verb != "calculator.evaluate" || record.ObjectType != activity.ObjectTypeSession || record.ObjectID != sessionID {
		t.Fatalf("unexpected record payload: %+v", record)
	}
	if record.Channel != "calculator" {
		t.Fatalf("expected channel calculator got %q", record.Channel)
	}
	if !record.OccurredAt.Equal(now) {
		t.Fatalf("expected occurred_at %v got %v", now, record.OccurredAt)
	}
	if record.Data["key"] != "=" {
		t.Fatalf("expected key metadata got %v", record.Data["key"])
	}
	if record.Data["before.current_operand"] != "3" || record.Data["after.current_operand"] != "5" {
		t.Fatalf("expected flattened snapshots got %v", record.Data)
	}
}

func TestHookNotifySkipsMissingVerb(t *testing.T) {
	sink := &recordingSink{}
	hook := usersink.Hook{Sink: sink}

	_ = hook.Notify(context.Background(), activity.Event{})

	if len(sink.records) != 0 {
		t.Fatalf("expected no records for empty event, got %d", len(sink.records))
	}
}

func TestHookNotifyPropagatesSinkError(t *testing.T) {
	errSink := errors.New("sink down")
	hook := usersink.Hook{Sink: &recordingSink{err: errSink}}

	err := hook.Notify(context.Background(), activity.Event{
		Verb:       "calculator.clear",
		ObjectType: activity.ObjectTypeSession,
		ObjectID:   "1",
	})
	if !errors.Is(err, errSink) {
		t.Fatalf("expected sink error, got %v", err)
	}
}

func TestHookWithoutSinkIsNoop(t *testing.T) {
	hook := usersink.Hook{}
	if err := hook.Notify(context.Background(), activity.Event{Verb: "calculator.clear", ObjectType: "x", ObjectID: "1"}); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}
