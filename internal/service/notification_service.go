package service

import (
	"context"
	"fmt"

	"portfolio-pulse-be/internal/constant"
	"portfolio-pulse-be/internal/dto"
	"portfolio-pulse-be/internal/entity"
	"portfolio-pulse-be/internal/pkg/apperror"
	"portfolio-pulse-be/internal/repository/contract"
	"portfolio-pulse-be/internal/repository/specification"

	"github.com/google/uuid"
)

// INotificationService derives the operator's urgent-attention feed from
// stored events. Read-only: re-querying returns the same set until new
// matching events arrive.
type INotificationService interface {
	GetUrgentNotifications(ctx context.Context) (*dto.UrgentNotificationsResponse, error)
}

type notificationService struct {
	eventRepo   contract.EventRepository
	messageRepo contract.ChatMessageRepository
	contactRepo contract.ContactSubmissionRepository
}

func NewNotificationService(
	eventRepo contract.EventRepository,
	messageRepo contract.ChatMessageRepository,
	contactRepo contract.ContactSubmissionRepository,
) INotificationService {
	return &notificationService{
		eventRepo:   eventRepo,
		messageRepo: messageRepo,
		contactRepo: contactRepo,
	}
}

func (s *notificationService) GetUrgentNotifications(ctx context.Context) (*dto.UrgentNotificationsResponse, error) {
	urgentEvents, err := s.eventRepo.FindAll(ctx,
		specification.EventNameEquals(constant.UrgentContactEventName),
		specification.NewestFirst(),
		specification.Pagination{Limit: constant.NotificationFeedLimit},
	)
	if err != nil {
		return nil, apperror.Storage(err)
	}

	// Resolve the submission references embedded in the event payloads.
	// Unresolvable references still surface, with null submission detail.
	ids := make([]uuid.UUID, 0, len(urgentEvents))
	for _, e := range urgentEvents {
		if id, ok := e.SubmissionId(); ok {
			ids = append(ids, id)
		}
	}
	submissions, err := s.contactRepo.FindByIds(ctx, ids)
	if err != nil {
		return nil, apperror.Storage(err)
	}
	byId := make(map[uuid.UUID]*entity.ContactSubmission, len(submissions))
	for _, sub := range submissions {
		byId[sub.Id] = sub
	}

	urgent := make([]*dto.UrgentContactResponse, len(urgentEvents))
	for i, e := range urgentEvents {
		row := &dto.UrgentContactResponse{
			EventId:   e.Id,
			EventData: e.EventData,
			SessionId: e.SessionId,
			CreatedAt: e.CreatedAt,
		}
		if id, ok := e.SubmissionId(); ok {
			if sub, found := byId[id]; found {
				row.Submission = &dto.ContactResponse{
					Id:        sub.Id,
					Name:      sub.Name,
					Email:     sub.Email,
					Subject:   sub.Subject,
					Message:   sub.Message,
					CreatedAt: sub.CreatedAt,
				}
			}
		}
		urgent[i] = row
	}

	recentContacts, err := s.contactRepo.FindAll(ctx,
		specification.NewestFirst(),
		specification.Pagination{Limit: constant.NotificationFeedLimit},
	)
	if err != nil {
		return nil, apperror.Storage(err)
	}

	totalMessages, err := s.messageRepo.Count(ctx)
	if err != nil {
		return nil, apperror.Storage(err)
	}

	return &dto.UrgentNotificationsResponse{
		UrgentContacts:    urgent,
		RecentContacts:    contactsToResponses(recentContacts),
		TotalChatMessages: totalMessages,
		SummaryMessage:    SummaryMessage(len(urgent)),
	}, nil
}

// SummaryMessage is a pure function of the urgent count.
func SummaryMessage(urgentCount int) string {
	if urgentCount == 0 {
		return "No urgent notifications"
	}
	return fmt.Sprintf("You have %d urgent contact submissions awaiting review", urgentCount)
}
