package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/HelioOssola/cep-distance/internal/domain"
)

// SQLite-backed implementation of the RecordRepository port.
// Uses `?` placeholders; see PostgresRecordRepository for the `$n` dialect.
type SqliteRecordRepository struct{ DB *sql.DB }

func NewSqliteRecordRepository(db *sql.DB) *SqliteRecordRepository {
	return &SqliteRecordRepository{DB: db}
}

// InitSchema creates the distance_queries table if absent. Safe to run on
// every startup, before the service accepts traffic.
func (s *SqliteRecordRepository) InitSchema(ctx context.Context) error {
	if s.DB == nil {
		return errors.New("init schema: DB is nil")
	}

	query := `
	CREATE TABLE IF NOT EXISTS distance_queries (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		origin_cep TEXT NOT NULL,
		destination_cep TEXT NOT NULL,
		origin_lat REAL NOT NULL,
		origin_lon REAL NOT NULL,
		destination_lat REAL NOT NULL,
		destination_lon REAL NOT NULL,
		distance_km REAL NOT NULL,
		created_at TEXT NOT NULL,
		notes TEXT
	);
	`
	if _, err := s.DB.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("init schema: create distance_queries: %w", err)
	}

	return nil
}

func (s *SqliteRecordRepository) Insert(ctx context.Context, q *domain.DistanceQuery) (int64, error) {
	q.CreatedAt = nowUTC()

	query := `
	INSERT INTO distance_queries (
		origin_cep, destination_cep,
		origin_lat, origin_lon,
		destination_lat, destination_lon,
		distance_km, created_at, notes
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?);
	`
	res, err := s.DB.ExecContext(ctx, query,
		q.OriginCEP, q.DestinationCEP,
		q.Origin.Lat, q.Origin.Lon,
		q.Destination.Lat, q.Destination.Lon,
		q.DistanceKm, q.CreatedAt, notesValue(q.Notes),
	)
	if err != nil {
		return 0, fmt.Errorf("insert record: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert record: last insert id: %w", err)
	}

	q.ID = id
	return id, nil
}

func (s *SqliteRecordRepository) Get(ctx context.Context, id int64) (*domain.DistanceQuery, error) {
	query := `
	SELECT id, origin_cep, destination_cep,
		origin_lat, origin_lon,
		destination_lat, destination_lon,
		distance_km, created_at, notes
	FROM distance_queries
	WHERE id = ?;
	`
	q, err := scanRecord(s.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get record id=%d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get record id=%d: %w", id, err)
	}

	return q, nil
}

func (s *SqliteRecordRepository) List(ctx context.Context, limit, offset int) ([]*domain.DistanceQuery, error) {
	limit, offset = clampPage(limit, offset)

	query := `
	SELECT id, origin_cep, destination_cep,
		origin_lat, origin_lon,
		destination_lat, destination_lon,
		distance_km, created_at, notes
	FROM distance_queries
	ORDER BY id DESC
	LIMIT ? OFFSET ?;
	`
	rows, err := s.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}

	records, err := collectRecords(rows)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	return records, nil
}

func (s *SqliteRecordRepository) UpdateNotes(ctx context.Context, id int64, notes *string) (*domain.DistanceQuery, error) {
	res, err := s.DB.ExecContext(ctx,
		`UPDATE distance_queries SET notes = ? WHERE id = ?;`,
		notesValue(notes), id,
	)
	if err != nil {
		return nil, fmt.Errorf("update notes id=%d: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("update notes id=%d: rows affected: %w", id, err)
	}
	if affected == 0 {
		return nil, fmt.Errorf("update notes id=%d: %w", id, domain.ErrNotFound)
	}

	return s.Get(ctx, id)
}

func (s *SqliteRecordRepository) Delete(ctx context.Context, id int64) error {
	res, err := s.DB.ExecContext(ctx, `DELETE FROM distance_queries WHERE id = ?;`, id)
	if err != nil {
		return fmt.Errorf("delete record id=%d: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete record id=%d: rows affected: %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("delete record id=%d: %w", id, domain.ErrNotFound)
	}

	return nil
}

func (s *SqliteRecordRepository) ListAll(ctx context.Context) ([]*domain.DistanceQuery, error) {
	query := `
	SELECT id, origin_cep, destination_cep,
		origin_lat, origin_lon,
		destination_lat, destination_lon,
		distance_km, created_at, notes
	FROM distance_queries
	ORDER BY id DESC;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list all records: %w", err)
	}

	records, err := collectRecords(rows)
	if err != nil {
		return nil, fmt.Errorf("list all records: %w", err)
	}
	return records, nil
}
