package repository

import (
	"github.com/google/uuid"

	"interest-agent/domain"
)

// ProjectionRepositoryMemory keeps the session's calculation history in
// memory, in insertion order.
type ProjectionRepositoryMemory struct {
	records []domain.ProjectionRecord
}

// NewProjectionRepositoryMemory creates an empty in-memory history.
func NewProjectionRepositoryMemory() *ProjectionRepositoryMemory {
	return &ProjectionRepositoryMemory{
		records: []domain.ProjectionRecord{},
	}
}

// Save stores the result under a fresh record id.
func (r *ProjectionRepositoryMemory) Save(
	kind string,
	result domain.InterestResult,
) error {
	r.records = append(r.records, domain.ProjectionRecord{
		ID:     uuid.NewString(),
		Kind:   kind,
		Result: result,
	})
	return nil
}

// List returns a copy of the stored records, oldest first.
func (r *ProjectionRepositoryMemory) List() []domain.ProjectionRecord {
	out := make([]domain.ProjectionRecord, len(r.records))
	copy(out, r.records)
	return out
}
