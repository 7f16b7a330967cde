package model

import (
	"time"

	"github.com/google/uuid"
)

// ContactSubmission rows are written by the contact form collaborator.
// This service only ever reads them.
type ContactSubmission struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(200);not null"`
	Email     string    `gorm:"type:varchar(320);not null"`
	Subject   string    `gorm:"type:varchar(300)"`
	Message   string    `gorm:"type:text;not null"`
	IpAddress string    `gorm:"type:varchar(64)"`
	CreatedAt time.Time `gorm:"autoCreateTime;index"`
}

func (ContactSubmission) TableName() string {
	return "contact_submissions"
}
