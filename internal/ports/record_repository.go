package ports

import (
	"context"

	"github.com/HelioOssola/cep-distance/internal/domain"
)

// Port: a boundary for persisting distance-query records.
type RecordRepository interface {
	// Insert assigns the next identifier and the creation timestamp, persists
	// the record, and returns the new id.
	Insert(ctx context.Context, q *domain.DistanceQuery) (int64, error)

	// Get returns the record with the given id, or domain.ErrNotFound.
	Get(ctx context.Context, id int64) (*domain.DistanceQuery, error)

	// List returns a newest-id-first page. Limit is clamped to [1, 200] and
	// offset to >= 0.
	List(ctx context.Context, limit, offset int) ([]*domain.DistanceQuery, error)

	// UpdateNotes replaces only the notes field and returns the updated
	// record, or domain.ErrNotFound.
	UpdateNotes(ctx context.Context, id int64, notes *string) (*domain.DistanceQuery, error)

	// Delete removes the record permanently, or returns domain.ErrNotFound.
	Delete(ctx context.Context, id int64) error

	// ListAll returns every record newest-id-first, for exports.
	ListAll(ctx context.Context) ([]*domain.DistanceQuery, error)
}
