package event

import "time"

// EventType identifies the kind of lifecycle event.
type EventType string

const (
	// Permission lifecycle
	PermissionRequested EventType = "permission.requested"
	PermissionGranted   EventType = "permission.granted"
	PermissionDenied    EventType = "permission.denied"
	PermissionRevoked   EventType = "permission.revoked"

	// Assistant state
	StateChanged EventType = "state.changed"
	MoodChanged  EventType = "mood.changed"

	// Memory lifecycle
	MemoryPersisted EventType = "memory.persisted"
	MemoryLoaded    EventType = "memory.loaded"

	// Task lifecycle
	TaskCreated   EventType = "task.created"
	TaskCompleted EventType = "task.completed"

	// Preferences
	PrefsSaved EventType = "prefs.saved"
)

// Event carries data about a lifecycle occurrence.
type Event struct {
	Type      EventType              `json:"type"`
	Timestamp time.Time              `json:"timestamp"`
	Data      map[string]interface{} `json:"data,omitempty"`
}

// NewEvent creates an event with the current timestamp.
func NewEvent(t EventType, data map[string]interface{}) Event {
	return Event{
		Type:      t,
		Timestamp: time.Now(),
		Data:      data,
	}
}
