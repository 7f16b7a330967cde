package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"portfolio-pulse-be/internal/entity"
	"portfolio-pulse-be/internal/repository/contract"
	"portfolio-pulse-be/internal/repository/specification"

	"github.com/google/uuid"
)

// ChatMessageRepository is the in-memory counterpart of the Postgres
// message store.
type ChatMessageRepository struct {
	mu       sync.Mutex
	messages []*entity.ChatMessage
	FailWith error
}

var _ contract.ChatMessageRepository = &ChatMessageRepository{}

func NewChatMessageRepository() *ChatMessageRepository {
	return &ChatMessageRepository{}
}

func (r *ChatMessageRepository) Create(ctx context.Context, message *entity.ChatMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FailWith != nil {
		return r.FailWith
	}
	message.Id = uuid.New()
	message.CreatedAt = time.Now()
	stored := *message
	r.messages = append(r.messages, &stored)
	return nil
}

func (r *ChatMessageRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FailWith != nil {
		return nil, r.FailWith
	}
	q := parseSpecs(specs)

	matched := make([]*entity.ChatMessage, 0, len(r.messages))
	for _, m := range r.messages {
		copied := *m
		matched = append(matched, &copied)
	}
	if q.descTime {
		sort.SliceStable(matched, func(i, j int) bool {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		})
	}
	lo, hi := q.page(len(matched))
	return matched[lo:hi], nil
}

func (r *ChatMessageRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FailWith != nil {
		return 0, r.FailWith
	}
	return int64(len(r.messages)), nil
}
