package service

import (
	"context"
	"errors"
	"testing"

	"portfolio-pulse-be/internal/constant"
	"portfolio-pulse-be/internal/dto"
	"portfolio-pulse-be/internal/pkg/apperror"
	"portfolio-pulse-be/internal/pkg/logger"
	"portfolio-pulse-be/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockLLMProvider records the history it was called with and either fails
// or streams the canned chunks.
type mockLLMProvider struct {
	calls       int
	lastHistory []llm.Message
	failWith    error
	chunks      []string
}

func (m *mockLLMProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	m.calls++
	m.lastHistory = history
	if m.failWith != nil {
		return "", m.failWith
	}
	var out string
	for _, c := range m.chunks {
		out += c
	}
	return out, nil
}

func (m *mockLLMProvider) ChatStream(ctx context.Context, history []llm.Message, options ...llm.Option) (<-chan llm.StreamChunk, error) {
	m.calls++
	m.lastHistory = history
	if m.failWith != nil {
		return nil, m.failWith
	}
	out := make(chan llm.StreamChunk, len(m.chunks))
	for _, c := range m.chunks {
		out <- llm.StreamChunk{Text: c}
	}
	close(out)
	return out, nil
}

func TestStreamReplyRejectsEmptyHistory(t *testing.T) {
	provider := &mockLLMProvider{}
	svc := NewChatService(provider, 1024, logger.NewNopLogger())

	_, err := svc.StreamReply(context.Background(), &dto.ChatRequest{})
	require.Error(t, err)

	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, apperror.KindValidation, appErr.Kind)
	assert.Zero(t, provider.calls, "backend must not be contacted on invalid input")
}

func TestStreamReplyPrependsSystemPrompt(t *testing.T) {
	provider := &mockLLMProvider{chunks: []string{"hel", "lo"}}
	svc := NewChatService(provider, 1024, logger.NewNopLogger())

	stream, err := svc.StreamReply(context.Background(), &dto.ChatRequest{
		Messages: []dto.ChatTurn{
			{Role: "user", Text: "who are you?"},
			{Role: "assistant", Text: "an assistant"},
			{Role: "user", Text: "ok"},
		},
	})
	require.NoError(t, err)

	require.Len(t, provider.lastHistory, 4)
	assert.Equal(t, constant.ChatMessageRoleSystem, provider.lastHistory[0].Role)
	assert.Equal(t, constant.AssistantSystemPrompt, provider.lastHistory[0].Content)
	assert.Equal(t, "who are you?", provider.lastHistory[1].Content)
	assert.Equal(t, "ok", provider.lastHistory[3].Content)

	var reply string
	for chunk := range stream {
		require.NoError(t, chunk.Err)
		reply += chunk.Text
	}
	assert.Equal(t, "hello", reply)
}

func TestStreamReplyErrorClassification(t *testing.T) {
	tests := []struct {
		name       string
		backendErr error
		wantKind   apperror.Kind
		wantStatus int
	}{
		{"missing credential", llm.ErrNoCredential, apperror.KindConfiguration, 500},
		{"unauthorized", llm.ErrUnauthorized, apperror.KindBackendAuth, 401},
		{"rate limited", llm.ErrRateLimited, apperror.KindBackendRateLimit, 429},
		{"unknown", errors.New("tcp reset"), apperror.KindBackendUnknown, 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &mockLLMProvider{failWith: tt.backendErr}
			svc := NewChatService(provider, 1024, logger.NewNopLogger())

			_, err := svc.StreamReply(context.Background(), &dto.ChatRequest{
				Messages: []dto.ChatTurn{{Role: "user", Text: "hi"}},
			})
			require.Error(t, err)

			appErr, ok := apperror.As(err)
			require.True(t, ok)
			assert.Equal(t, tt.wantKind, appErr.Kind)
			assert.Equal(t, tt.wantStatus, apperror.HTTPStatus(err))
		})
	}
}

func TestStreamReplyConfigurationMessageIsStable(t *testing.T) {
	provider := &mockLLMProvider{failWith: llm.ErrNoCredential}
	svc := NewChatService(provider, 1024, logger.NewNopLogger())

	_, err := svc.StreamReply(context.Background(), &dto.ChatRequest{
		Messages: []dto.ChatTurn{{Role: "user", Text: "hi"}},
	})
	require.Error(t, err)

	appErr, _ := apperror.As(err)
	assert.Equal(t, "assistant backend is not configured", appErr.Message)
}
