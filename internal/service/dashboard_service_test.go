package service

import (
	"context"
	"testing"
	"time"

	"portfolio-pulse-be/internal/entity"
	"portfolio-pulse-be/internal/pkg/apperror"
	"portfolio-pulse-be/internal/pkg/logger"
	"portfolio-pulse-be/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-pulse-be/internal/dto"
)

func seedDashboardData(t *testing.T, telemetry ITelemetryService, contacts *memory.ContactSubmissionRepository) {
	t.Helper()
	ctx := context.Background()

	// 3x page_view, 2x click, 1x download
	for _, name := range []string{"page_view", "page_view", "page_view", "click", "click", "download"} {
		_, err := telemetry.RecordEvent(ctx, &dto.RecordEventRequest{Event: name}, "1.2.3.4")
		require.NoError(t, err)
	}
	for _, msg := range []string{"hi", "hello", "hey"} {
		_, err := telemetry.RecordMessage(ctx, &dto.RecordMessageRequest{Message: msg}, "1.2.3.4")
		require.NoError(t, err)
	}
	contacts.Seed(
		&entity.ContactSubmission{Name: "Ana", Email: "ana@example.com", Message: "hi", CreatedAt: time.Now().Add(-time.Hour)},
		&entity.ContactSubmission{Name: "Ben", Email: "ben@example.com", Message: "yo", CreatedAt: time.Now()},
	)
}

func TestDashboardSummary(t *testing.T) {
	eventRepo := memory.NewEventRepository()
	messageRepo := memory.NewChatMessageRepository()
	contactRepo := memory.NewContactSubmissionRepository()
	telemetry := NewTelemetryService(eventRepo, messageRepo, nil, logger.NewNopLogger())
	seedDashboardData(t, telemetry, contactRepo)

	svc := NewDashboardService(eventRepo, messageRepo, contactRepo)

	summary, err := svc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.EqualValues(t, 6, summary.TotalEvents)
	assert.EqualValues(t, 3, summary.TotalMessages)
	assert.EqualValues(t, 2, summary.TotalContacts)

	require.Len(t, summary.TopEvents, 3)
	assert.Equal(t, "page_view", summary.TopEvents[0].EventName)
	assert.EqualValues(t, 3, summary.TopEvents[0].Count)
	assert.Equal(t, "click", summary.TopEvents[1].EventName)
	assert.Equal(t, "download", summary.TopEvents[2].EventName)

	// Newest contact first.
	require.Len(t, summary.RecentContacts, 2)
	assert.Equal(t, "Ben", summary.RecentContacts[0].Name)
}

func TestDashboardSummaryIdempotent(t *testing.T) {
	eventRepo := memory.NewEventRepository()
	messageRepo := memory.NewChatMessageRepository()
	contactRepo := memory.NewContactSubmissionRepository()
	telemetry := NewTelemetryService(eventRepo, messageRepo, nil, logger.NewNopLogger())
	seedDashboardData(t, telemetry, contactRepo)

	svc := NewDashboardService(eventRepo, messageRepo, contactRepo)
	ctx := context.Background()

	first, err := svc.GetSummary(ctx)
	require.NoError(t, err)
	second, err := svc.GetSummary(ctx)
	require.NoError(t, err)

	assert.Equal(t, first.TotalEvents, second.TotalEvents)
	require.Equal(t, len(first.TopEvents), len(second.TopEvents))
	for i := range first.TopEvents {
		assert.Equal(t, first.TopEvents[i].EventName, second.TopEvents[i].EventName)
	}
}

func TestDashboardSummaryFailFast(t *testing.T) {
	eventRepo := memory.NewEventRepository()
	messageRepo := memory.NewChatMessageRepository()
	contactRepo := memory.NewContactSubmissionRepository()
	contactRepo.FailWith = assert.AnError

	svc := NewDashboardService(eventRepo, messageRepo, contactRepo)

	summary, err := svc.GetSummary(context.Background())
	require.Error(t, err)
	assert.Nil(t, summary, "no partial results on failure")

	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, apperror.KindStorage, appErr.Kind)
}
