package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ChatMessage struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Message   string         `gorm:"type:text;not null"`
	SessionId string         `gorm:"type:varchar(100);not null;index"`
	UserInfo  datatypes.JSON `gorm:"type:jsonb;not null;default:'{}'"`
	IpAddress string         `gorm:"type:varchar(64);not null"`
	CreatedAt time.Time      `gorm:"autoCreateTime;index"`
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}
