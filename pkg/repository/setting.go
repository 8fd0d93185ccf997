package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/freshness/pkg/domain"
	"github.com/umputun/freshness/pkg/freshness"
)

// SettingRepository handles setting-related database operations
type SettingRepository struct {
	db *sqlx.DB
}

// NewSettingRepository creates a new setting repository
func NewSettingRepository(db *sqlx.DB) *SettingRepository {
	return &SettingRepository{db: db}
}

// GetSetting retrieves a setting value, empty if not set
func (r *SettingRepository) GetSetting(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.GetContext(ctx, &value, "SELECT value FROM settings WHERE key = ?", key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get setting: %w", err)
	}
	return value, nil
}

// SetSetting stores a setting value
func (r *SettingRepository) SetSetting(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`
	return withRetry(ctx, func() error {
		if _, err := r.db.ExecContext(ctx, query, key, value); err != nil {
			return fmt.Errorf("set setting: %w", err)
		}
		return nil
	})
}

// GetThreshold returns the site-wide staleness threshold in days. Missing or non-numeric
// values yield def, stored values are normalized like the settings form does.
func (r *SettingRepository) GetThreshold(ctx context.Context, def int) (int, error) {
	value, err := r.GetSetting(ctx, domain.SettingStalenessThreshold)
	if err != nil {
		return 0, err
	}
	if value == "" {
		return freshness.NormalizeThreshold(def), nil
	}
	days, err := strconv.Atoi(value)
	if err != nil {
		return freshness.NormalizeThreshold(def), nil
	}
	return freshness.NormalizeThreshold(days), nil
}

// SetThreshold stores the site-wide staleness threshold and returns the normalized value
func (r *SettingRepository) SetThreshold(ctx context.Context, days int) (int, error) {
	days = freshness.NormalizeThreshold(days)
	if err := r.SetSetting(ctx, domain.SettingStalenessThreshold, strconv.Itoa(days)); err != nil {
		return 0, err
	}
	return days, nil
}
