package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type AnalyticsEvent struct {
	Id        uuid.UUID
	EventName string
	EventData json.RawMessage
	SessionId string
	IpAddress string
	CreatedAt time.Time
}

// SubmissionId digs the contact-submission reference out of the opaque
// payload. Producers are uncontrolled, so absence or a malformed value
// means "no match", never an error.
func (e *AnalyticsEvent) SubmissionId() (uuid.UUID, bool) {
	if len(e.EventData) == 0 {
		return uuid.Nil, false
	}
	var payload map[string]interface{}
	if err := json.Unmarshal(e.EventData, &payload); err != nil {
		return uuid.Nil, false
	}
	raw, ok := payload["submission_id"].(string)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
