package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/HelioOssola/cep-distance/internal/domain"
)

const (
	defaultLimit = 50
	maxLimit     = 200
)

// clampPage enforces the paging contract: limit in [1, 200], offset >= 0.
func clampPage(limit, offset int) (int, int) {
	if limit < 1 {
		limit = 1
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// nowUTC returns the creation timestamp format shared by both backends:
// ISO-8601 UTC with second precision and a trailing Z.
func nowUTC() string {
	return time.Now().UTC().Truncate(time.Second).Format(time.RFC3339)
}

func scanRecord(row interface{ Scan(dest ...any) error }) (*domain.DistanceQuery, error) {
	var q domain.DistanceQuery
	var notes sql.NullString

	err := row.Scan(
		&q.ID,
		&q.OriginCEP,
		&q.DestinationCEP,
		&q.Origin.Lat,
		&q.Origin.Lon,
		&q.Destination.Lat,
		&q.Destination.Lon,
		&q.DistanceKm,
		&q.CreatedAt,
		&notes,
	)
	if err != nil {
		return nil, err
	}

	if notes.Valid {
		q.Notes = &notes.String
	}
	return &q, nil
}

func collectRecords(rows *sql.Rows) ([]*domain.DistanceQuery, error) {
	defer rows.Close()

	records := make([]*domain.DistanceQuery, 0, 16)
	for rows.Next() {
		q, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		records = append(records, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration: %w", err)
	}

	return records, nil
}

func notesValue(notes *string) any {
	if notes == nil {
		return nil
	}
	return *notes
}
