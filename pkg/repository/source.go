package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/freshness/pkg/domain"
)

// SourceRepository handles source-related database operations
type SourceRepository struct {
	db *sqlx.DB
}

// sourceSQL represents a source for SQL operations
type sourceSQL struct {
	ID         int64      `db:"id"`
	URL        string     `db:"url"`
	Title      string     `db:"title"`
	Enabled    bool       `db:"enabled"`
	LastSynced *time.Time `db:"last_synced"`
	ErrorCount int        `db:"error_count"`
	LastError  string     `db:"last_error"`
	CreatedAt  time.Time  `db:"created_at"`
}

// NewSourceRepository creates a new source repository
func NewSourceRepository(database *sqlx.DB) *SourceRepository {
	return &SourceRepository{db: database}
}

// CreateSource inserts a new source
func (r *SourceRepository) CreateSource(ctx context.Context, src *domain.Source) error {
	query := `
		INSERT INTO sources (url, title, enabled)
		VALUES (:url, :title, :enabled)
	`
	result, err := r.db.NamedExecContext(ctx, query, &sourceSQL{URL: src.URL, Title: src.Title, Enabled: src.Enabled})
	if err != nil {
		return fmt.Errorf("create source: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get insert id: %w", err)
	}

	src.ID = id
	return nil
}

// GetSource retrieves a source by ID
func (r *SourceRepository) GetSource(ctx context.Context, id int64) (*domain.Source, error) {
	var s sourceSQL
	err := r.db.GetContext(ctx, &s, "SELECT * FROM sources WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get source %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get source: %w", err)
	}
	return s.toDomain(), nil
}

// GetSourceByURL retrieves a source by its feed URL
func (r *SourceRepository) GetSourceByURL(ctx context.Context, url string) (*domain.Source, error) {
	var s sourceSQL
	err := r.db.GetContext(ctx, &s, "SELECT * FROM sources WHERE url = ?", url)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get source %s: %w", url, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get source by url: %w", err)
	}
	return s.toDomain(), nil
}

// GetSources retrieves sources with optional filtering
func (r *SourceRepository) GetSources(ctx context.Context, enabledOnly bool) ([]*domain.Source, error) {
	query := "SELECT * FROM sources"
	if enabledOnly {
		query += " WHERE enabled = 1"
	}
	query += " ORDER BY title, url"

	var rows []sourceSQL
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("get sources: %w", err)
	}

	sources := make([]*domain.Source, len(rows))
	for i := range rows {
		sources[i] = rows[i].toDomain()
	}
	return sources, nil
}

// UpdateSourceSynced records a successful sync and resets the error state
func (r *SourceRepository) UpdateSourceSynced(ctx context.Context, id int64, syncedAt time.Time) error {
	return withRetry(ctx, func() error {
		query := `UPDATE sources SET last_synced = ?, error_count = 0, last_error = '' WHERE id = ?`
		if _, err := r.db.ExecContext(ctx, query, syncedAt.UTC(), id); err != nil {
			return fmt.Errorf("update source synced: %w", err)
		}
		return nil
	})
}

// UpdateSourceError records a failed sync
func (r *SourceRepository) UpdateSourceError(ctx context.Context, id int64, errMsg string) error {
	return withRetry(ctx, func() error {
		query := `UPDATE sources SET error_count = error_count + 1, last_error = ? WHERE id = ?`
		if _, err := r.db.ExecContext(ctx, query, errMsg, id); err != nil {
			return fmt.Errorf("update source error: %w", err)
		}
		return nil
	})
}

// UpdateSourceStatus enables or disables a source
func (r *SourceRepository) UpdateSourceStatus(ctx context.Context, id int64, enabled bool) error {
	res, err := r.db.ExecContext(ctx, "UPDATE sources SET enabled = ? WHERE id = ?", enabled, id)
	if err != nil {
		return fmt.Errorf("update source status: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("update source status %d: %w", id, ErrNotFound)
	}
	return nil
}

// DeleteSource removes a source and all its articles
func (r *SourceRepository) DeleteSource(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM sources WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete source: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("delete source %d: %w", id, ErrNotFound)
	}
	return nil
}

// toDomain converts sourceSQL to domain.Source
func (s *sourceSQL) toDomain() *domain.Source {
	return &domain.Source{
		ID:         s.ID,
		URL:        s.URL,
		Title:      s.Title,
		Enabled:    s.Enabled,
		LastSynced: s.LastSynced,
		ErrorCount: s.ErrorCount,
		LastError:  s.LastError,
		CreatedAt:  s.CreatedAt,
	}
}
