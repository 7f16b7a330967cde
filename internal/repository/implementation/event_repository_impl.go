package implementation

import (
	"context"

	"portfolio-pulse-be/internal/entity"
	"portfolio-pulse-be/internal/mapper"
	"portfolio-pulse-be/internal/model"
	"portfolio-pulse-be/internal/repository/contract"
	"portfolio-pulse-be/internal/repository/specification"

	"gorm.io/gorm"
)

type EventRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.TelemetryMapper
}

func NewEventRepository(db *gorm.DB) contract.EventRepository {
	return &EventRepositoryImpl{
		db:     db,
		mapper: mapper.NewTelemetryMapper(),
	}
}

func (r *EventRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *EventRepositoryImpl) Create(ctx context.Context, event *entity.AnalyticsEvent) error {
	m := r.mapper.EventToModel(event)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*event = *r.mapper.EventToEntity(m)
	return nil
}

func (r *EventRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AnalyticsEvent, error) {
	var models []*model.AnalyticsEvent
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.AnalyticsEvent, len(models))
	for i, m := range models {
		entities[i] = r.mapper.EventToEntity(m)
	}
	return entities, nil
}

func (r *EventRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.AnalyticsEvent{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// TopNames ranks distinct event names by occurrence. Ties break on name so
// repeated calls over unchanged data stay stable.
func (r *EventRepositoryImpl) TopNames(ctx context.Context, limit int) ([]*entity.EventCount, error) {
	type row struct {
		EventName string
		Count     int64
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Model(&model.AnalyticsEvent{}).
		Select("event_name, COUNT(*) as count").
		Group("event_name").
		Order("count DESC, event_name ASC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make([]*entity.EventCount, len(rows))
	for i, rw := range rows {
		counts[i] = &entity.EventCount{EventName: rw.EventName, Count: rw.Count}
	}
	return counts, nil
}
