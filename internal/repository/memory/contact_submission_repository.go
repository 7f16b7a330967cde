package memory

import (
	"context"
	"sort"
	"sync"

	"portfolio-pulse-be/internal/entity"
	"portfolio-pulse-be/internal/repository/contract"
	"portfolio-pulse-be/internal/repository/specification"

	"github.com/google/uuid"
)

// ContactSubmissionRepository holds seeded submissions. The real table is
// written by the contact form collaborator, so Seed takes that role here.
type ContactSubmissionRepository struct {
	mu       sync.Mutex
	contacts []*entity.ContactSubmission
	FailWith error
}

var _ contract.ContactSubmissionRepository = &ContactSubmissionRepository{}

func NewContactSubmissionRepository() *ContactSubmissionRepository {
	return &ContactSubmissionRepository{}
}

func (r *ContactSubmissionRepository) Seed(contacts ...*entity.ContactSubmission) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range contacts {
		copied := *c
		r.contacts = append(r.contacts, &copied)
	}
}

func (r *ContactSubmissionRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ContactSubmission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FailWith != nil {
		return nil, r.FailWith
	}
	q := parseSpecs(specs)

	matched := make([]*entity.ContactSubmission, 0, len(r.contacts))
	for _, c := range r.contacts {
		if !q.matchesId(c.Id) {
			continue
		}
		copied := *c
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

func (r *ContactSubmissionRepository) FindByIds(ctx context.Context, ids []uuid.UUID) ([]*entity.ContactSubmission, error) {
	if len(ids) == 0 {
		return []*entity.ContactSubmission{}, nil
	}
	return r.FindAll(ctx, specification.ByIDs{IDs: ids})
}

func (r *ContactSubmissionRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FailWith != nil {
		return 0, r.FailWith
	}
	return int64(len(r.contacts)), nil
}
