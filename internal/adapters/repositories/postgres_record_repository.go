package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/HelioOssola/cep-distance/internal/domain"
)

// Postgres-backed implementation of the RecordRepository port, for
// deployments where the store outlives a single host. Same contract as
// SqliteRecordRepository, `$n` placeholders and RETURNING for id assignment.
type PostgresRecordRepository struct{ DB *sql.DB }

func NewPostgresRecordRepository(db *sql.DB) *PostgresRecordRepository {
	return &PostgresRecordRepository{DB: db}
}

func (p *PostgresRecordRepository) InitSchema(ctx context.Context) error {
	if p.DB == nil {
		return errors.New("init schema: DB is nil")
	}

	query := `
	CREATE TABLE IF NOT EXISTS distance_queries (
		id BIGSERIAL PRIMARY KEY,
		origin_cep TEXT NOT NULL,
		destination_cep TEXT NOT NULL,
		origin_lat DOUBLE PRECISION NOT NULL,
		origin_lon DOUBLE PRECISION NOT NULL,
		destination_lat DOUBLE PRECISION NOT NULL,
		destination_lon DOUBLE PRECISION NOT NULL,
		distance_km DOUBLE PRECISION NOT NULL,
		created_at TEXT NOT NULL,
		notes TEXT
	);
	`
	if _, err := p.DB.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("init schema: create distance_queries: %w", err)
	}

	return nil
}

func (p *PostgresRecordRepository) Insert(ctx context.Context, q *domain.DistanceQuery) (int64, error) {
	q.CreatedAt = nowUTC()

	query := `
	INSERT INTO distance_queries (
		origin_cep, destination_cep,
		origin_lat, origin_lon,
		destination_lat, destination_lon,
		distance_km, created_at, notes
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	RETURNING id;
	`
	var id int64
	err := p.DB.QueryRowContext(ctx, query,
		q.OriginCEP, q.DestinationCEP,
		q.Origin.Lat, q.Origin.Lon,
		q.Destination.Lat, q.Destination.Lon,
		q.DistanceKm, q.CreatedAt, notesValue(q.Notes),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert record: %w", err)
	}

	q.ID = id
	return id, nil
}

func (p *PostgresRecordRepository) Get(ctx context.Context, id int64) (*domain.DistanceQuery, error) {
	query := `
	SELECT id, origin_cep, destination_cep,
		origin_lat, origin_lon,
		destination_lat, destination_lon,
		distance_km, created_at, notes
	FROM distance_queries
	WHERE id = $1;
	`
	q, err := scanRecord(p.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get record id=%d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get record id=%d: %w", id, err)
	}

	return q, nil
}

func (p *PostgresRecordRepository) List(ctx context.Context, limit, offset int) ([]*domain.DistanceQuery, error) {
	limit, offset = clampPage(limit, offset)

	query := `
	SELECT id, origin_cep, destination_cep,
		origin_lat, origin_lon,
		destination_lat, destination_lon,
		distance_km, created_at, notes
	FROM distance_queries
	ORDER BY id DESC
	LIMIT $1 OFFSET $2;
	`
	rows, err := p.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}

	records, err := collectRecords(rows)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	return records, nil
}

func (p *PostgresRecordRepository) UpdateNotes(ctx context.Context, id int64, notes *string) (*domain.DistanceQuery, error) {
	res, err := p.DB.ExecContext(ctx,
		`UPDATE distance_queries SET notes = $1 WHERE id = $2;`,
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

	return p.Get(ctx, id)
}

func (p *PostgresRecordRepository) Delete(ctx context.Context, id int64) error {
	res, err := p.DB.ExecContext(ctx, `DELETE FROM distance_queries WHERE id = $1;`, id)
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

func (p *PostgresRecordRepository) ListAll(ctx context.Context) ([]*domain.DistanceQuery, error) {
	query := `
	SELECT id, origin_cep, destination_cep,
		origin_lat, origin_lon,
		destination_lat, destination_lon,
		distance_km, created_at, notes
	FROM distance_queries
	ORDER BY id DESC;
	`
	rows, err := p.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list all records: %w", err)
	}

	records, err := collectRecords(rows)
	if err != nil {
		return nil, fmt.Errorf("list all records: %w", err)
	}
	return records, nil
}
