package dto

import (
	"time"

	"github.com/google/uuid"
)

type ContactResponse struct {
	Id        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject,omitempty"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

type TopEventResponse struct {
	EventName string `json:"event_name"`
	Count     int64  `json:"count"`
}

type DashboardSummaryResponse struct {
	TotalEvents    int64               `json:"totalEvents"`
	TotalMessages  int64               `json:"totalMessages"`
	TotalContacts  int64               `json:"totalContacts"`
	RecentContacts []*ContactResponse  `json:"recentContacts"`
	RecentMessages []*MessageResponse  `json:"recentMessages"`
	TopEvents      []*TopEventResponse `json:"topEvents"`
}
