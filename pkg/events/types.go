package events

import (
	"time"

	"github.com/google/uuid"
)

// EventType represents the type of event being published
type EventType string

const (
	// Bill lifecycle events
	EventBillGenerated EventType = "bill.generated"

	// Export events
	EventDocumentRendered EventType = "bill.document_rendered"
	EventMessageCopied    EventType = "bill.message_copied"
	EventExportSucceeded  EventType = "export.succeeded"
	EventExportFailed     EventType = "export.failed"
)

// Event represents a single event in the system
type Event struct {
	// ID is a unique identifier for this event
	ID string

	// Type is the event type
	Type EventType

	// Timestamp is when the event occurred
	Timestamp time.Time

	// BillID is the bill this event belongs to (empty for system events)
	BillID string

	// Payload contains event-specific data
	Payload map[string]interface{}
}

// NewEvent creates a new event with the given type and payload
func NewEvent(eventType EventType, billID string, payload map[string]interface{}) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now().UTC(),
		BillID:    billID,
		Payload:   payload,
	}
}
