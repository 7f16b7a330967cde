package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"portfolio-pulse-be/internal/constant"
	"portfolio-pulse-be/internal/dto"
	"portfolio-pulse-be/internal/entity"
	"portfolio-pulse-be/internal/pkg/apperror"
	"portfolio-pulse-be/internal/pkg/logger"
	"portfolio-pulse-be/internal/repository/contract"
	"portfolio-pulse-be/internal/repository/specification"
	"portfolio-pulse-be/pkg/events"

	"github.com/google/uuid"
)

// EventPublisher fans ingested events out to the bus. Optional: a nil
// publisher disables fan-out without affecting ingestion.
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

// ITelemetryService ingests visitor events/messages and serves listings.
type ITelemetryService interface {
	RecordEvent(ctx context.Context, req *dto.RecordEventRequest, ipAddress string) (*dto.RecordEventResponse, error)
	RecordMessage(ctx context.Context, req *dto.RecordMessageRequest, ipAddress string) (*dto.RecordMessageResponse, error)
	ListEvents(ctx context.Context, filterName string, limit, offset int) (*dto.ListEventsResponse, error)
	ListMessages(ctx context.Context, limit, offset int) (*dto.ListMessagesResponse, error)
}

type telemetryService struct {
	eventRepo   contract.EventRepository
	messageRepo contract.ChatMessageRepository
	publisher   EventPublisher
	logger      logger.ILogger
}

func NewTelemetryService(
	eventRepo contract.EventRepository,
	messageRepo contract.ChatMessageRepository,
	publisher EventPublisher,
	log logger.ILogger,
) ITelemetryService {
	return &telemetryService{
		eventRepo:   eventRepo,
		messageRepo: messageRepo,
		publisher:   publisher,
		logger:      log,
	}
}

// sessionOrNew keeps the caller's session token or synthesizes one.
// session_id is never persisted empty.
func sessionOrNew(hint string) string {
	if s := strings.TrimSpace(hint); s != "" {
		return s
	}
	return uuid.NewString()
}

func ipOrUnknown(ip string) string {
	if ip = strings.TrimSpace(ip); ip != "" {
		return ip
	}
	return constant.UnknownIPSentinel
}

func (s *telemetryService) RecordEvent(ctx context.Context, req *dto.RecordEventRequest, ipAddress string) (*dto.RecordEventResponse, error) {
	name := strings.TrimSpace(req.Event)
	if name == "" {
		return nil, apperror.Validation("event name is required")
	}

	data := req.Data
	if len(data) == 0 {
		data = json.RawMessage("{}")
	} else if !json.Valid(data) {
		return nil, apperror.Validation("event data must be a valid JSON value")
	}

	event := &entity.AnalyticsEvent{
		EventName: name,
		EventData: data,
		SessionId: sessionOrNew(req.SessionId),
		IpAddress: ipOrUnknown(ipAddress),
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, apperror.Storage(err)
	}

	s.publish(ctx, event.EventName, event.SessionId, data)

	return &dto.RecordEventResponse{
		Id:        event.Id,
		CreatedAt: event.CreatedAt,
	}, nil
}

func (s *telemetryService) RecordMessage(ctx context.Context, req *dto.RecordMessageRequest, ipAddress string) (*dto.RecordMessageResponse, error) {
	text := strings.TrimSpace(req.Message)
	if text == "" {
		return nil, apperror.Validation("message must not be empty")
	}

	info := req.UserInfo
	if len(info) == 0 {
		info = json.RawMessage("{}")
	} else if !json.Valid(info) {
		return nil, apperror.Validation("userInfo must be a valid JSON value")
	}

	message := &entity.ChatMessage{
		Message:   text,
		SessionId: sessionOrNew(req.SessionId),
		UserInfo:  info,
		IpAddress: ipOrUnknown(ipAddress),
	}

	if err := s.messageRepo.Create(ctx, message); err != nil {
		return nil, apperror.Storage(err)
	}

	s.publish(ctx, "chat_message", message.SessionId, nil)

	return &dto.RecordMessageResponse{
		Id:        message.Id,
		SessionId: message.SessionId,
		CreatedAt: message.CreatedAt,
	}, nil
}

// publish is best-effort: bus failures are logged, never surfaced, and the
// stored row is not rolled back.
func (s *telemetryService) publish(ctx context.Context, name, sessionId string, data json.RawMessage) {
	if s.publisher == nil {
		return
	}
	payload := map[string]interface{}{}
	if len(data) > 0 {
		_ = json.Unmarshal(data, &payload)
	}
	evt := events.VisitorEvent{
		Name:       name,
		SessionId:  sessionId,
		Data:       payload,
		OccurredAt: time.Now(),
	}
	if err := s.publisher.Publish(ctx, evt); err != nil {
		s.logger.Warn("TelemetryService", "event fan-out failed", map[string]interface{}{
			"event": name,
			"error": err.Error(),
		})
	}
}

// clampPage normalizes paging input. Non-positive limits fall back to the
// default; the maximum bounds memory per request.
func clampPage(limit, offset, fallback int) (int, int) {
	if limit <= 0 {
		limit = fallback
	}
	if limit > constant.MaxPageSize {
		limit = constant.MaxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

func (s *telemetryService) ListEvents(ctx context.Context, filterName string, limit, offset int) (*dto.ListEventsResponse, error) {
	limit, offset = clampPage(limit, offset, constant.DefaultEventPageSize)

	filters := []specification.Specification{}
	if filterName != "" {
		filters = append(filters, specification.EventNameEquals(filterName))
	}

	listSpecs := append([]specification.Specification{}, filters...)
	listSpecs = append(listSpecs, specification.NewestFirst(), specification.Pagination{Limit: limit, Offset: offset})

	eventEntities, err := s.eventRepo.FindAll(ctx, listSpecs...)
	if err != nil {
		return nil, apperror.Storage(err)
	}

	// Total is scoped to the same filter, not the global row count.
	total, err := s.eventRepo.Count(ctx, filters...)
	if err != nil {
		return nil, apperror.Storage(err)
	}

	eventsOut := make([]*dto.EventResponse, len(eventEntities))
	for i, e := range eventEntities {
		eventsOut[i] = eventToResponse(e)
	}

	return &dto.ListEventsResponse{
		Events: eventsOut,
		Total:  total,
	}, nil
}

func (s *telemetryService) ListMessages(ctx context.Context, limit, offset int) (*dto.ListMessagesResponse, error) {
	limit, offset = clampPage(limit, offset, constant.DefaultMessagePageSize)

	messages, err := s.messageRepo.FindAll(ctx,
		specification.NewestFirst(),
		specification.Pagination{Limit: limit, Offset: offset},
	)
	if err != nil {
		return nil, apperror.Storage(err)
	}

	total, err := s.messageRepo.Count(ctx)
	if err != nil {
		return nil, apperror.Storage(err)
	}

	messagesOut := make([]*dto.MessageResponse, len(messages))
	for i, m := range messages {
		messagesOut[i] = messageToResponse(m)
	}

	return &dto.ListMessagesResponse{
		Messages: messagesOut,
		Total:    total,
		HasMore:  int64(offset+len(messages)) < total,
	}, nil
}

func eventToResponse(e *entity.AnalyticsEvent) *dto.EventResponse {
	return &dto.EventResponse{
		Id:        e.Id,
		EventName: e.EventName,
		EventData: e.EventData,
		SessionId: e.SessionId,
		IpAddress: e.IpAddress,
		CreatedAt: e.CreatedAt,
	}
}

func messageToResponse(m *entity.ChatMessage) *dto.MessageResponse {
	return &dto.MessageResponse{
		Id:        m.Id,
		Message:   m.Message,
		SessionId: m.SessionId,
		UserInfo:  m.UserInfo,
		IpAddress: m.IpAddress,
		CreatedAt: m.CreatedAt,
	}
}
