package events

import "time"

// Event is the contract for everything published on the telemetry bus.
type Event interface {
	// EventType returns the visitor-facing event name (e.g. "page_view").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// VisitorEvent is the concrete event emitted after an ingestion write.
type VisitorEvent struct {
	Name       string
	SessionId  string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e VisitorEvent) EventType() string {
	return e.Name
}

func (e VisitorEvent) Payload() map[string]interface{} {
	payload := make(map[string]interface{}, len(e.Data)+1)
	for k, v := range e.Data {
		payload[k] = v
	}
	payload["session_id"] = e.SessionId
	return payload
}

func (e VisitorEvent) Timestamp() time.Time {
	return e.OccurredAt
}
