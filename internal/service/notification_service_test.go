package service

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"portfolio-pulse-be/internal/constant"
	"portfolio-pulse-be/internal/dto"
	"portfolio-pulse-be/internal/entity"
	"portfolio-pulse-be/internal/pkg/logger"
	"portfolio-pulse-be/internal/repository/memory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newNotificationFixture() (INotificationService, ITelemetryService, *memory.ContactSubmissionRepository) {
	eventRepo := memory.NewEventRepository()
	messageRepo := memory.NewChatMessageRepository()
	contactRepo := memory.NewContactSubmissionRepository()
	telemetry := NewTelemetryService(eventRepo, messageRepo, nil, logger.NewNopLogger())
	svc := NewNotificationService(eventRepo, messageRepo, contactRepo)
	return svc, telemetry, contactRepo
}

func TestSummaryMessage(t *testing.T) {
	assert.Equal(t, "No urgent notifications", SummaryMessage(0))
	assert.Contains(t, SummaryMessage(3), "3")
	assert.Contains(t, SummaryMessage(1), "1")
}

func TestUrgentNotificationsEmpty(t *testing.T) {
	svc, _, _ := newNotificationFixture()

	res, err := svc.GetUrgentNotifications(context.Background())
	require.NoError(t, err)

	assert.Empty(t, res.UrgentContacts)
	assert.Equal(t, "No urgent notifications", res.SummaryMessage)
}

func TestUrgentNotificationsJoinsSubmissions(t *testing.T) {
	svc, telemetry, contactRepo := newNotificationFixture()
	ctx := context.Background()

	submissionId := uuid.New()
	contactRepo.Seed(&entity.ContactSubmission{
		Id:      submissionId,
		Name:    "Ana",
		Email:   "ana@example.com",
		Message: "please call back",
	})

	// One urgent event that resolves, one whose reference is missing.
	resolved, _ := json.Marshal(map[string]string{"submission_id": submissionId.String()})
	_, err := telemetry.RecordEvent(ctx, &dto.RecordEventRequest{
		Event: constant.UrgentContactEventName,
		Data:  resolved,
	}, "1.2.3.4")
	require.NoError(t, err)

	_, err = telemetry.RecordEvent(ctx, &dto.RecordEventRequest{
		Event: constant.UrgentContactEventName,
		Data:  json.RawMessage(`{"submission_id":"not-a-uuid"}`),
	}, "1.2.3.4")
	require.NoError(t, err)

	// Non-urgent events never appear in the feed.
	_, err = telemetry.RecordEvent(ctx, &dto.RecordEventRequest{Event: "page_view"}, "1.2.3.4")
	require.NoError(t, err)

	res, err := svc.GetUrgentNotifications(ctx)
	require.NoError(t, err)

	require.Len(t, res.UrgentContacts, 2)
	assert.Contains(t, res.SummaryMessage, "2")

	var withDetail, withoutDetail int
	for _, row := range res.UrgentContacts {
		if row.Submission != nil {
			withDetail++
			assert.Equal(t, "Ana", row.Submission.Name)
		} else {
			withoutDetail++
		}
	}
	assert.Equal(t, 1, withDetail)
	assert.Equal(t, 1, withoutDetail, "unresolvable references surface with null submission")
}

func TestUrgentNotificationsCountsMessages(t *testing.T) {
	svc, telemetry, _ := newNotificationFixture()
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		_, err := telemetry.RecordMessage(ctx, &dto.RecordMessageRequest{Message: fmt.Sprintf("m%d", i)}, "1.2.3.4")
		require.NoError(t, err)
	}

	res, err := svc.GetUrgentNotifications(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 4, res.TotalChatMessages)
}
