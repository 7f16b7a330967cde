package service

import (
	"context"
	"time"

	"portfolio-pulse-be/internal/constant"
	"portfolio-pulse-be/internal/dto"
	"portfolio-pulse-be/internal/entity"
	"portfolio-pulse-be/internal/pkg/apperror"
	"portfolio-pulse-be/internal/repository/contract"
	"portfolio-pulse-be/internal/repository/specification"

	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/sync/errgroup"
)

const dashboardCacheKey = "dashboard_summary"

// IDashboardService rolls stored telemetry up into the operator summary.
type IDashboardService interface {
	GetSummary(ctx context.Context) (*dto.DashboardSummaryResponse, error)
}

type dashboardService struct {
	eventRepo   contract.EventRepository
	messageRepo contract.ChatMessageRepository
	contactRepo contract.ContactSubmissionRepository
	cache       *gocache.Cache
}

func NewDashboardService(
	eventRepo contract.EventRepository,
	messageRepo contract.ChatMessageRepository,
	contactRepo contract.ContactSubmissionRepository,
) IDashboardService {
	return &dashboardService{
		eventRepo:   eventRepo,
		messageRepo: messageRepo,
		contactRepo: contactRepo,
		cache:       gocache.New(15*time.Second, time.Minute),
	}
}

// GetSummary runs the sub-queries concurrently and fails as a whole if any
// one fails. Partial dashboards mislead, so there is no fallback.
func (s *dashboardService) GetSummary(ctx context.Context) (*dto.DashboardSummaryResponse, error) {
	if cached, found := s.cache.Get(dashboardCacheKey); found {
		return cached.(*dto.DashboardSummaryResponse), nil
	}

	var (
		totalEvents    int64
		totalMessages  int64
		totalContacts  int64
		recentContacts []*entity.ContactSubmission
		recentMessages []*entity.ChatMessage
		topEvents      []*entity.EventCount
	)

	recent := []specification.Specification{
		specification.NewestFirst(),
		specification.Pagination{Limit: constant.DashboardRecentLimit},
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		totalEvents, err = s.eventRepo.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		totalMessages, err = s.messageRepo.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		totalContacts, err = s.contactRepo.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		recentContacts, err = s.contactRepo.FindAll(gctx, recent...)
		return err
	})
	g.Go(func() (err error) {
		recentMessages, err = s.messageRepo.FindAll(gctx, recent...)
		return err
	})
	g.Go(func() (err error) {
		topEvents, err = s.eventRepo.TopNames(gctx, constant.DashboardTopEventsLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, apperror.Storage(err)
	}

	summary := &dto.DashboardSummaryResponse{
		TotalEvents:    totalEvents,
		TotalMessages:  totalMessages,
		TotalContacts:  totalContacts,
		RecentContacts: contactsToResponses(recentContacts),
		RecentMessages: make([]*dto.MessageResponse, len(recentMessages)),
		TopEvents:      make([]*dto.TopEventResponse, len(topEvents)),
	}
	for i, m := range recentMessages {
		summary.RecentMessages[i] = messageToResponse(m)
	}
	for i, t := range topEvents {
		summary.TopEvents[i] = &dto.TopEventResponse{EventName: t.EventName, Count: t.Count}
	}

	s.cache.Set(dashboardCacheKey, summary, gocache.DefaultExpiration)
	return summary, nil
}

func contactsToResponses(contacts []*entity.ContactSubmission) []*dto.ContactResponse {
	out := make([]*dto.ContactResponse, len(contacts))
	for i, c := range contacts {
		out[i] = &dto.ContactResponse{
			Id:        c.Id,
			Name:      c.Name,
			Email:     c.Email,
			Subject:   c.Subject,
			Message:   c.Message,
			CreatedAt: c.CreatedAt,
		}
	}
	return out
}
