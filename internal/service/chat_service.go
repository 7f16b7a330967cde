package service

import (
	"context"
	"errors"

	"portfolio-pulse-be/internal/constant"
	"portfolio-pulse-be/internal/dto"
	"portfolio-pulse-be/internal/pkg/apperror"
	"portfolio-pulse-be/internal/pkg/logger"
	"portfolio-pulse-be/pkg/llm"
)

// IChatService proxies visitor conversations to the completion backend.
// Recording the inbound message is the ingestion endpoint's job, not this
// service's.
type IChatService interface {
	StreamReply(ctx context.Context, req *dto.ChatRequest) (<-chan llm.StreamChunk, error)
}

type chatService struct {
	llmProvider llm.LLMProvider
	maxTokens   int
	logger      logger.ILogger
}

func NewChatService(llmProvider llm.LLMProvider, maxTokens int, log logger.ILogger) IChatService {
	return &chatService{
		llmProvider: llmProvider,
		maxTokens:   maxTokens,
		logger:      log,
	}
}

func (s *chatService) StreamReply(ctx context.Context, req *dto.ChatRequest) (<-chan llm.StreamChunk, error) {
	if len(req.Messages) == 0 {
		return nil, apperror.Validation("messages must contain at least one turn")
	}

	// Fixed system prompt first, then the visitor's full turn history.
	history := make([]llm.Message, 0, len(req.Messages)+1)
	history = append(history, llm.Message{
		Role:    constant.ChatMessageRoleSystem,
		Content: constant.AssistantSystemPrompt,
	})
	for _, turn := range req.Messages {
		history = append(history, llm.Message{
			Role:    turn.Role,
			Content: turn.Text,
		})
	}

	stream, err := s.llmProvider.ChatStream(ctx, history,
		llm.WithTemperature(constant.AssistantTemperature),
		llm.WithMaxTokens(s.maxTokens),
	)
	if err != nil {
		return nil, s.classify(err)
	}
	return stream, nil
}

// classify folds backend failures into the stable taxonomy. Raw backend
// text only reaches logs.
func (s *chatService) classify(err error) error {
	switch {
	case errors.Is(err, llm.ErrNoCredential):
		s.logger.Error("ChatService", "completion backend credential missing", map[string]interface{}{
			"hint": "set GOOGLE_GEMINI_API_KEY or switch LLM_PROVIDER",
		})
		return apperror.Configuration("assistant backend is not configured", err)
	case errors.Is(err, llm.ErrUnauthorized):
		return apperror.BackendAuth(err)
	case errors.Is(err, llm.ErrRateLimited):
		return apperror.BackendRateLimit(err)
	default:
		s.logger.Error("ChatService", "completion backend call failed", map[string]interface{}{
			"error": err.Error(),
		})
		return apperror.BackendUnknown(err)
	}
}
