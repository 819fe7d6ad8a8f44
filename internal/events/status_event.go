package events

import (
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventInfo    EventType = "info"
	EventWarn    EventType = "warn"
	EventSuccess EventType = "success"
	EventError   EventType = "error"
)

const (
	StatusEvent  = "keyforest:status"
	StoreChanged = "keyforest:store:changed"
)

// Status is a short user facing message shown in the status bar.
type Status struct {
	ID        string            `json:"id"`
	Type      EventType         `json:"type"`
	Message   string            `json:"message"`
	Timestamp time.Time         `json:"timestamp"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}

// StoreChange reports that one of the JSON store files was written.
type StoreChange struct {
	ID        string    `json:"id"`
	File      string    `json:"file"`
	Timestamp time.Time `json:"timestamp"`
}

func CreateStatus(eventType EventType, message string) Status {
	return Status{
		ID:        uuid.NewString(),
		Type:      eventType,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// NewInfo creates an info Status.
func NewInfo(message string) Status {
	return CreateStatus(EventInfo, message)
}

// NewWarn creates a warn Status.
func NewWarn(message string) Status {
	return CreateStatus(EventWarn, message)
}

// NewError creates an error Status.
func NewError(message string) Status {
	return CreateStatus(EventError, message)
}

// NewSuccess creates a success Status.
func NewSuccess(message string) Status {
	return CreateStatus(EventSuccess, message)
}

func NewStoreChange(file string) StoreChange {
	return StoreChange{
		ID:        uuid.NewString(),
		File:      file,
		Timestamp: time.Now(),
	}
}
