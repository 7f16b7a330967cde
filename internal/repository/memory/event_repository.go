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

// EventRepository is an in-memory stand-in for the Postgres event store,
// used by tests and local experiments. FailWith, when set, makes every
// operation return that error.
type EventRepository struct {
	mu       sync.Mutex
	events   []*entity.AnalyticsEvent
	FailWith error
}

var _ contract.EventRepository = &EventRepository{}

func NewEventRepository() *EventRepository {
	return &EventRepository{}
}

func (r *EventRepository) Create(ctx context.Context, event *entity.AnalyticsEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FailWith != nil {
		return r.FailWith
	}
	event.Id = uuid.New()
	event.CreatedAt = time.Now()
	stored := *event
	r.events = append(r.events, &stored)
	return nil
}

func (r *EventRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AnalyticsEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FailWith != nil {
		return nil, r.FailWith
	}
	q := parseSpecs(specs)

	matched := make([]*entity.AnalyticsEvent, 0, len(r.events))
	for _, e := range r.events {
		if name, ok := q.filters["event_name"]; ok && e.EventName != name {
			continue
		}
		if !q.matchesId(e.Id) {
			continue
		}
		copied := *e
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

func (r *EventRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FailWith != nil {
		return 0, r.FailWith
	}
	q := parseSpecs(specs)
	var count int64
	for _, e := range r.events {
		if name, ok := q.filters["event_name"]; ok && e.EventName != name {
			continue
		}
		count++
	}
	return count, nil
}

func (r *EventRepository) TopNames(ctx context.Context, limit int) ([]*entity.EventCount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FailWith != nil {
		return nil, r.FailWith
	}
	counts := make(map[string]int64)
	for _, e := range r.events {
		counts[e.EventName]++
	}
	out := make([]*entity.EventCount, 0, len(counts))
	for name, count := range counts {
		out = append(out, &entity.EventCount{EventName: name, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].EventName < out[j].EventName
	})
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}
