package mapper

import (
	"encoding/json"

	"portfolio-pulse-be/internal/entity"
	"portfolio-pulse-be/internal/model"

	"gorm.io/datatypes"
)

type TelemetryMapper struct{}

func NewTelemetryMapper() *TelemetryMapper {
	return &TelemetryMapper{}
}

// Event Mappers

func (m *TelemetryMapper) EventToEntity(e *model.AnalyticsEvent) *entity.AnalyticsEvent {
	if e == nil {
		return nil
	}
	return &entity.AnalyticsEvent{
		Id:        e.Id,
		EventName: e.EventName,
		EventData: json.RawMessage(e.EventData),
		SessionId: e.SessionId,
		IpAddress: e.IpAddress,
		CreatedAt: e.CreatedAt,
	}
}

func (m *TelemetryMapper) EventToModel(e *entity.AnalyticsEvent) *model.AnalyticsEvent {
	if e == nil {
		return nil
	}
	data := e.EventData
	if len(data) == 0 {
		data = json.RawMessage("{}")
	}
	return &model.AnalyticsEvent{
		Id:        e.Id,
		EventName: e.EventName,
		EventData: datatypes.JSON(data),
		SessionId: e.SessionId,
		IpAddress: e.IpAddress,
		CreatedAt: e.CreatedAt,
	}
}

// Message Mappers

func (m *TelemetryMapper) MessageToEntity(msg *model.ChatMessage) *entity.ChatMessage {
	if msg == nil {
		return nil
	}
	return &entity.ChatMessage{
		Id:        msg.Id,
		Message:   msg.Message,
		SessionId: msg.SessionId,
		UserInfo:  json.RawMessage(msg.UserInfo),
		IpAddress: msg.IpAddress,
		CreatedAt: msg.CreatedAt,
	}
}

func (m *TelemetryMapper) MessageToModel(msg *entity.ChatMessage) *model.ChatMessage {
	if msg == nil {
		return nil
	}
	info := msg.UserInfo
	if len(info) == 0 {
		info = json.RawMessage("{}")
	}
	return &model.ChatMessage{
		Id:        msg.Id,
		Message:   msg.Message,
		SessionId: msg.SessionId,
		UserInfo:  datatypes.JSON(info),
		IpAddress: msg.IpAddress,
		CreatedAt: msg.CreatedAt,
	}
}

// Contact Mappers

func (m *TelemetryMapper) ContactToEntity(c *model.ContactSubmission) *entity.ContactSubmission {
	if c == nil {
		return nil
	}
	return &entity.ContactSubmission{
		Id:        c.Id,
		Name:      c.Name,
		Email:     c.Email,
		Subject:   c.Subject,
		Message:   c.Message,
		IpAddress: c.IpAddress,
		CreatedAt: c.CreatedAt,
	}
}
