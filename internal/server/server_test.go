package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"portfolio-pulse-be/internal/bootstrap"
	"portfolio-pulse-be/internal/config"
	"portfolio-pulse-be/internal/controller"
	"portfolio-pulse-be/internal/dto"
	"portfolio-pulse-be/internal/entity"
	"portfolio-pulse-be/internal/pkg/logger"
	"portfolio-pulse-be/internal/repository/memory"
	"portfolio-pulse-be/internal/service"
	"portfolio-pulse-be/pkg/llm"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAdminToken = "test-admin-token"

type stubLLMProvider struct {
	calls    int
	failWith error
	chunks   []string
}

func (s *stubLLMProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	s.calls++
	if s.failWith != nil {
		return "", s.failWith
	}
	var out string
	for _, c := range s.chunks {
		out += c
	}
	return out, nil
}

func (s *stubLLMProvider) ChatStream(ctx context.Context, history []llm.Message, options ...llm.Option) (<-chan llm.StreamChunk, error) {
	s.calls++
	if s.failWith != nil {
		return nil, s.failWith
	}
	out := make(chan llm.StreamChunk, len(s.chunks))
	for _, c := range s.chunks {
		out <- llm.StreamChunk{Text: c}
	}
	close(out)
	return out, nil
}

type testHarness struct {
	app         *fiber.App
	contactRepo *memory.ContactSubmissionRepository
	provider    *stubLLMProvider
}

func newTestHarness(adminToken string) *testHarness {
	eventRepo := memory.NewEventRepository()
	messageRepo := memory.NewChatMessageRepository()
	contactRepo := memory.NewContactSubmissionRepository()
	provider := &stubLLMProvider{chunks: []string{"hel", "lo"}}
	log := logger.NewNopLogger()

	telemetryService := service.NewTelemetryService(eventRepo, messageRepo, nil, log)
	dashboardService := service.NewDashboardService(eventRepo, messageRepo, contactRepo)
	notificationService := service.NewNotificationService(eventRepo, messageRepo, contactRepo)
	chatService := service.NewChatService(provider, 1024, log)

	container := &bootstrap.Container{
		TelemetryController: controller.NewTelemetryController(telemetryService),
		AdminController:     controller.NewAdminController(dashboardService, notificationService),
		ChatController:      controller.NewChatController(chatService),
		Logger:              log,
	}
	cfg := &config.Config{
		App:   config.AppConfig{CorsAllowedOrigins: "*"},
		Admin: config.AdminConfig{Token: adminToken},
	}

	return &testHarness{
		app:         New(cfg, container).GetApp(),
		contactRepo: contactRepo,
		provider:    provider,
	}
}

func (h *testHarness) do(t *testing.T, method, target string, body any, headers map[string]string) (*http.Response, []byte) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := h.app.Test(req, 5000)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	return resp, raw
}

func TestRecordAndListEvents(t *testing.T) {
	h := newTestHarness(testAdminToken)

	for _, name := range []string{"page_view", "page_view", "click"} {
		resp, raw := h.do(t, "POST", "/api/events", dto.RecordEventRequest{
			Event:     name,
			SessionId: "s1",
		}, nil)
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

		var created map[string]any
		require.NoError(t, json.Unmarshal(raw, &created))
		assert.Equal(t, true, created["success"])
		assert.NotEmpty(t, created["id"])
	}

	resp, raw := h.do(t, "GET", "/api/events?event=page_view", nil, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var list dto.ListEventsResponse
	require.NoError(t, json.Unmarshal(raw, &list))
	assert.EqualValues(t, 2, list.Total)
	require.Len(t, list.Events, 2)
	for _, e := range list.Events {
		assert.Equal(t, "page_view", e.EventName)
		assert.Equal(t, "s1", e.SessionId)
	}
}

func TestRecordEventRejectsMissingName(t *testing.T) {
	h := newTestHarness(testAdminToken)

	resp, raw := h.do(t, "POST", "/api/events", map[string]any{"data": map[string]any{}}, nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(raw), `"success":false`)
}

func TestRecordMessagesSynthesizeSessions(t *testing.T) {
	h := newTestHarness(testAdminToken)

	var sessions []string
	for _, msg := range []string{"hi", "hello"} {
		resp, raw := h.do(t, "POST", "/api/messages", dto.RecordMessageRequest{Message: msg}, nil)
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

		var created map[string]any
		require.NoError(t, json.Unmarshal(raw, &created))
		session, _ := created["sessionId"].(string)
		assert.NotEmpty(t, session)
		sessions = append(sessions, session)
	}
	assert.NotEqual(t, sessions[0], sessions[1])

	resp, raw := h.do(t, "GET", "/api/messages", nil, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	var list dto.ListMessagesResponse
	require.NoError(t, json.Unmarshal(raw, &list))
	assert.EqualValues(t, 2, list.Total)
}

func TestAdminEndpointsRequireToken(t *testing.T) {
	h := newTestHarness(testAdminToken)
	h.contactRepo.Seed(&entity.ContactSubmission{Name: "Ana", Email: "ana@example.com", Message: "hi"})

	for _, path := range []string{"/api/dashboard", "/api/notifications"} {
		resp, _ := h.do(t, "GET", path, nil, nil)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, path)

		resp, _ = h.do(t, "GET", path, nil, map[string]string{"X-Admin-Token": "wrong"})
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, path)
	}

	resp, raw := h.do(t, "GET", "/api/dashboard", nil, map[string]string{"X-Admin-Token": testAdminToken})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	var summary dto.DashboardSummaryResponse
	require.NoError(t, json.Unmarshal(raw, &summary))
	assert.EqualValues(t, 1, summary.TotalContacts)

	resp, raw = h.do(t, "GET", "/api/notifications", nil, map[string]string{"X-Admin-Token": testAdminToken})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	var feed dto.UrgentNotificationsResponse
	require.NoError(t, json.Unmarshal(raw, &feed))
	assert.Equal(t, "No urgent notifications", feed.SummaryMessage)
}

func TestAdminEndpointsDisabledWithoutToken(t *testing.T) {
	h := newTestHarness("")

	resp, _ := h.do(t, "GET", "/api/dashboard", nil, map[string]string{"X-Admin-Token": "anything"})
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
}

func TestChatValidationSkipsBackend(t *testing.T) {
	h := newTestHarness(testAdminToken)

	resp, _ := h.do(t, "POST", "/api/chat", dto.ChatRequest{}, nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Zero(t, h.provider.calls)

	resp, _ = h.do(t, "POST", "/api/chat", map[string]any{
		"messages": []map[string]string{{"role": "robot", "text": "hi"}},
	}, nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Zero(t, h.provider.calls)
}

func TestChatBackendAuthFailure(t *testing.T) {
	h := newTestHarness(testAdminToken)
	h.provider.failWith = llm.ErrUnauthorized

	resp, raw := h.do(t, "POST", "/api/chat", dto.ChatRequest{
		Messages: []dto.ChatTurn{{Role: "user", Text: "hi"}},
	}, nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Contains(t, string(raw), "assistant backend rejected credentials")
	assert.NotContains(t, string(raw), "gemini", "backend detail must not leak")
}

func TestChatStreamsReply(t *testing.T) {
	h := newTestHarness(testAdminToken)

	resp, raw := h.do(t, "POST", "/api/chat", dto.ChatRequest{
		Messages: []dto.ChatTurn{{Role: "user", Text: "hi"}},
	}, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "hello", string(raw))
	assert.Equal(t, 1, h.provider.calls)
}
