package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type AnalyticsEvent struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EventName string         `gorm:"type:varchar(100);not null;index"`
	EventData datatypes.JSON `gorm:"type:jsonb;not null;default:'{}'"`
	SessionId string         `gorm:"type:varchar(100);not null;index"`
	IpAddress string         `gorm:"type:varchar(64);not null"`
	CreatedAt time.Time      `gorm:"autoCreateTime;index"`
}

func (AnalyticsEvent) TableName() string {
	return "analytics_events"
}
