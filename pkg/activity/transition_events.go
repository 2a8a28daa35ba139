package activity

import (
	"reflect"
	"strings"
	"time"
)

// Object type and verb prefix used for calculator events.
const (
	ObjectTypeSession = "calculator.session"
	VerbPrefix        = "calculator."
)

// TransitionEventInput describes one applied calculator action.
type TransitionEventInput struct {
	ActorID   string
	UserID    string
	TenantID  string
	SessionID string
	Channel   string
	// Action is the action kind, e.g. "add_digit".
	Action  string
	Key     string
	Before  map[string]any
	After   map[string]any
	Display string
	// Metadata is copied onto the event before the transition fields.
	Metadata   map[string]any
	OccurredAt time.Time
}

// BuildTransitionEvent constructs an event with verb "calculator.<action>"
// whose object is the session.
func BuildTransitionEvent(input TransitionEventInput) Event {
	action := strings.TrimSpace(input.Action)
	if action == "" {
		action = "unknown"
	}

	metadata := ensureMetadata(cloneMap(input.Metadata))
	metadata["action"] = action
	if input.Key != "" {
		metadata["key"] = input.Key
	}
	if input.Before != nil {
		metadata["before"] = cloneMap(input.Before)
	}
	if input.After != nil {
		metadata["after"] = cloneMap(input.After)
	}
	if input.Before != nil && input.After != nil {
		metadata["changed"] = !sameFields(input.Before, input.After)
	}
	if input.Display != "" {
		metadata["display"] = input.Display
	}

	objectID := strings.TrimSpace(input.SessionID)
	if objectID == "" {
		objectID = ObjectTypeSession
	}

	return Event{
		Verb:       VerbPrefix + action,
		ActorID:    strings.TrimSpace(input.ActorID),
		UserID:     strings.TrimSpace(input.UserID),
		TenantID:   strings.TrimSpace(input.TenantID),
		ObjectType: ObjectTypeSession,
		ObjectID:   objectID,
		Channel:    strings.TrimSpace(input.Channel),
		Metadata:   metadata,
		OccurredAt: input.OccurredAt,
	}
}

func sameFields(a, b map[string]any) bool {
	if len(a) != len(b) {
		return false
	}
	for key, value := range a {
		other, ok := b[key]
		if !ok || !reflect.DeepEqual(other, value) {
			return false
		}
	}
	return true
}

func ensureMetadata(meta map[string]any) map[string]any {
	if meta == nil {
		return map[string]any{}
	}
	return meta
}
