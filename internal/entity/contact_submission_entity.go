package entity

import (
	"time"

	"github.com/google/uuid"
)

type ContactSubmission struct {
	Id        uuid.UUID
	Name      string
	Email     string
	Subject   string
	Message   string
	IpAddress string
	CreatedAt time.Time
}
