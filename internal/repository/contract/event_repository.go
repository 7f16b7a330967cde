package contract

import (
	"context"

	"portfolio-pulse-be/internal/entity"
	"portfolio-pulse-be/internal/repository/specification"
)

type EventRepository interface {
	Create(ctx context.Context, event *entity.AnalyticsEvent) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AnalyticsEvent, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	TopNames(ctx context.Context, limit int) ([]*entity.EventCount, error)
}
