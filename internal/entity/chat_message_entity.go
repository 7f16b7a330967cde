package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type ChatMessage struct {
	Id        uuid.UUID
	Message   string
	SessionId string
	UserInfo  json.RawMessage
	IpAddress string
	CreatedAt time.Time
}
