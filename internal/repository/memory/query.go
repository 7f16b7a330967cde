package memory

import (
	"github.com/google/uuid"

	"portfolio-pulse-be/internal/repository/specification"
)

// query is the in-memory interpretation of the specification structs the
// GORM implementations feed to the database.
type query struct {
	filters  map[string]interface{}
	ids      []uuid.UUID
	hasIds   bool
	descTime bool
	limit    int
	offset   int
}

func parseSpecs(specs []specification.Specification) query {
	q := query{
		filters: make(map[string]interface{}),
		limit:   -1,
	}
	for _, s := range specs {
		switch v := s.(type) {
		case specification.FilterBy:
			q.filters[v.Field] = v.Value
		case specification.ByIDs:
			q.ids = v.IDs
			q.hasIds = true
		case specification.OrderBy:
			if v.Field == "created_at" {
				q.descTime = v.Desc
			}
		case specification.Pagination:
			q.limit = v.Limit
			q.offset = v.Offset
		}
	}
	return q
}

func (q query) matchesId(id uuid.UUID) bool {
	if !q.hasIds {
		return true
	}
	for _, candidate := range q.ids {
		if candidate == id {
			return true
		}
	}
	return false
}

// page applies offset/limit to an already-ordered slice length, returning
// the [lo, hi) window.
func (q query) page(n int) (int, int) {
	lo := q.offset
	if lo > n {
		lo = n
	}
	hi := n
	if q.limit >= 0 && lo+q.limit < hi {
		hi = lo + q.limit
	}
	return lo, hi
}
