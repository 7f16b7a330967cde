package implementation

import (
	"context"

	"portfolio-pulse-be/internal/entity"
	"portfolio-pulse-be/internal/mapper"
	"portfolio-pulse-be/internal/model"
	"portfolio-pulse-be/internal/repository/contract"
	"portfolio-pulse-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ContactSubmissionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.TelemetryMapper
}

func NewContactSubmissionRepository(db *gorm.DB) contract.ContactSubmissionRepository {
	return &ContactSubmissionRepositoryImpl{
		db:     db,
		mapper: mapper.NewTelemetryMapper(),
	}
}

func (r *ContactSubmissionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ContactSubmissionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ContactSubmission, error) {
	var models []*model.ContactSubmission
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.ContactSubmission, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ContactToEntity(m)
	}
	return entities, nil
}

func (r *ContactSubmissionRepositoryImpl) FindByIds(ctx context.Context, ids []uuid.UUID) ([]*entity.ContactSubmission, error) {
	if len(ids) == 0 {
		return []*entity.ContactSubmission{}, nil
	}
	return r.FindAll(ctx, specification.ByIDs{IDs: ids})
}

func (r *ContactSubmissionRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.ContactSubmission{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
