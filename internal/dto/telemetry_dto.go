package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type RecordEventRequest struct {
	Event     string          `json:"event" validate:"required"`
	Data      json.RawMessage `json:"data,omitempty"`
	SessionId string          `json:"sessionId,omitempty"`
}

type RecordEventResponse struct {
	Id        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}

type EventResponse struct {
	Id        uuid.UUID       `json:"id"`
	EventName string          `json:"event_name"`
	EventData json.RawMessage `json:"event_data"`
	SessionId string          `json:"session_id"`
	IpAddress string          `json:"ip_address"`
	CreatedAt time.Time       `json:"created_at"`
}

type ListEventsResponse struct {
	Events []*EventResponse `json:"events"`
	Total  int64            `json:"total"`
}

type RecordMessageRequest struct {
	Message   string          `json:"message" validate:"required"`
	UserInfo  json.RawMessage `json:"userInfo,omitempty"`
	SessionId string          `json:"sessionId,omitempty"`
}

type RecordMessageResponse struct {
	Id        uuid.UUID `json:"id"`
	SessionId string    `json:"sessionId"`
	CreatedAt time.Time `json:"createdAt"`
}

type MessageResponse struct {
	Id        uuid.UUID       `json:"id"`
	Message   string          `json:"message"`
	SessionId string          `json:"session_id"`
	UserInfo  json.RawMessage `json:"user_info"`
	IpAddress string          `json:"ip_address"`
	CreatedAt time.Time       `json:"created_at"`
}

type ListMessagesResponse struct {
	Messages []*MessageResponse `json:"messages"`
	Total    int64              `json:"total"`
	HasMore  bool               `json:"hasMore"`
}
