package contract

import (
	"context"

	"portfolio-pulse-be/internal/entity"
	"portfolio-pulse-be/internal/repository/specification"

	"github.com/google/uuid"
)

// ContactSubmissionRepository is read-only: submissions are produced by the
// contact form collaborator outside this service.
type ContactSubmissionRepository interface {
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ContactSubmission, error)
	FindByIds(ctx context.Context, ids []uuid.UUID) ([]*entity.ContactSubmission, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
