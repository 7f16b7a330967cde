package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// UrgentContactResponse is an urgent-marker event joined to its contact
// submission. Submission is null when the payload reference did not resolve.
type UrgentContactResponse struct {
	EventId    uuid.UUID        `json:"event_id"`
	EventData  json.RawMessage  `json:"event_data"`
	SessionId  string           `json:"session_id"`
	CreatedAt  time.Time        `json:"created_at"`
	Submission *ContactResponse `json:"submission"`
}

type UrgentNotificationsResponse struct {
	UrgentContacts    []*UrgentContactResponse `json:"urgentContacts"`
	RecentContacts    []*ContactResponse       `json:"recentContacts"`
	TotalChatMessages int64                    `json:"totalChatMessages"`
	SummaryMessage    string                   `json:"summaryMessage"`
}
