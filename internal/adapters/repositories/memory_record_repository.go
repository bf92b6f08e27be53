package repositories

import (
	"context"
	"fmt"
	"sync"

	"github.com/HelioOssola/cep-distance/internal/domain"
)

// MemoryRecordRepository is an in-memory RecordRepository for tests and local
// experiments. It honors the same id-assignment and paging contract as the
// SQL backends.
type MemoryRecordRepository struct {
	mu      sync.Mutex
	nextID  int64
	records []*domain.DistanceQuery
}

func NewMemoryRecordRepository() *MemoryRecordRepository {
	return &MemoryRecordRepository{nextID: 1}
}

func (m *MemoryRecordRepository) Insert(_ context.Context, q *domain.DistanceQuery) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	q.ID = m.nextID
	m.nextID++
	q.CreatedAt = nowUTC()

	stored := *q
	m.records = append(m.records, &stored)
	return q.ID, nil
}

func (m *MemoryRecordRepository) Get(_ context.Context, id int64) (*domain.DistanceQuery, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, r := range m.records {
		if r.ID == id {
			cp := *r
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("get record id=%d: %w", id, domain.ErrNotFound)
}

func (m *MemoryRecordRepository) List(_ context.Context, limit, offset int) ([]*domain.DistanceQuery, error) {
	limit, offset = clampPage(limit, offset)

	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]*domain.DistanceQuery, 0, limit)
	for i := len(m.records) - 1 - offset; i >= 0 && len(out) < limit; i-- {
		cp := *m.records[i]
		out = append(out, &cp)
	}
	return out, nil
}

func (m *MemoryRecordRepository) UpdateNotes(_ context.Context, id int64, notes *string) (*domain.DistanceQuery, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, r := range m.records {
		if r.ID == id {
			r.Notes = notes
			cp := *r
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("update notes id=%d: %w", id, domain.ErrNotFound)
}

func (m *MemoryRecordRepository) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, r := range m.records {
		if r.ID == id {
			m.records = append(m.records[:i], m.records[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("delete record id=%d: %w", id, domain.ErrNotFound)
}

func (m *MemoryRecordRepository) ListAll(_ context.Context) ([]*domain.DistanceQuery, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]*domain.DistanceQuery, 0, len(m.records))
	for i := len(m.records) - 1; i >= 0; i-- {
		cp := *m.records[i]
		out = append(out, &cp)
	}
	return out, nil
}
