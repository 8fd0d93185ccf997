package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/freshness/pkg/domain"
	"github.com/umputun/freshness/pkg/freshness"
)

// ArticleRepository handles article-related database operations
type ArticleRepository struct {
	db *sqlx.DB
}

// articleSQL represents an article for SQL operations
type articleSQL struct {
	ID             int64          `db:"id"`
	SourceID       int64          `db:"source_id"`
	GUID           string         `db:"guid"`
	Title          string         `db:"title"`
	Link           string         `db:"link"`
	Author         string         `db:"author"`
	Published      *time.Time     `db:"published"`
	Modified       *time.Time     `db:"modified"`
	ReviewInterval sql.NullString `db:"review_interval"`
	CreatedAt      time.Time      `db:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at"`

	// joined from sources
	SourceName string `db:"source_name"`
}

const articleColumns = `
	a.id, a.source_id, a.guid, a.title, a.link, a.author, a.published, a.modified,
	a.review_interval, a.created_at, a.updated_at,
	CASE WHEN s.title != '' THEN s.title ELSE s.url END AS source_name
`

// NewArticleRepository creates a new article repository
func NewArticleRepository(database *sqlx.DB) *ArticleRepository {
	return &ArticleRepository{db: database}
}

// UpsertArticle inserts an article or refreshes an existing one with the same source and GUID.
// The stored review interval is kept, a zero Modified never overwrites a known modification time.
func (r *ArticleRepository) UpsertArticle(ctx context.Context, article *domain.Article) error {
	query := `
		INSERT INTO articles (source_id, guid, title, link, author, published, modified)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(source_id, guid) DO UPDATE SET
			title = excluded.title,
			link = excluded.link,
			author = excluded.author,
			published = COALESCE(excluded.published, articles.published),
			modified = COALESCE(excluded.modified, articles.modified),
			updated_at = CURRENT_TIMESTAMP
		RETURNING id
	`
	return withRetry(ctx, func() error {
		var id int64
		err := r.db.GetContext(ctx, &id, query, article.SourceID, article.GUID, article.Title, article.Link,
			article.Author, nullTime(article.Published), nullTime(article.Modified))
		if err != nil {
			return fmt.Errorf("upsert article: %w", err)
		}
		article.ID = id
		return nil
	})
}

// GetArticle retrieves an article by ID
func (r *ArticleRepository) GetArticle(ctx context.Context, id int64) (*domain.Article, error) {
	var a articleSQL
	query := "SELECT " + articleColumns + " FROM articles a JOIN sources s ON s.id = a.source_id WHERE a.id = ?"
	err := r.db.GetContext(ctx, &a, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get article %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	return a.toDomain(), nil
}

// GetArticleByGUID retrieves an article by its source and GUID
func (r *ArticleRepository) GetArticleByGUID(ctx context.Context, sourceID int64, guid string) (*domain.Article, error) {
	var a articleSQL
	query := "SELECT " + articleColumns + ` FROM articles a JOIN sources s ON s.id = a.source_id
		WHERE a.source_id = ? AND a.guid = ?`
	err := r.db.GetContext(ctx, &a, query, sourceID, guid)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get article %q of source %d: %w", guid, sourceID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get article by guid: %w", err)
	}
	return a.toDomain(), nil
}

// GetArticles retrieves articles, most recently modified first. A non-positive limit returns all articles.
func (r *ArticleRepository) GetArticles(ctx context.Context, limit, offset int) ([]*domain.Article, error) {
	query := "SELECT " + articleColumns + ` FROM articles a JOIN sources s ON s.id = a.source_id
		ORDER BY a.modified IS NULL, a.modified DESC, a.id DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ? OFFSET ?"
		args = append(args, limit, offset)
	}

	var rows []articleSQL
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("get articles: %w", err)
	}

	articles := make([]*domain.Article, len(rows))
	for i := range rows {
		articles[i] = rows[i].toDomain()
	}
	return articles, nil
}

// CountArticles returns the number of stored articles
func (r *ArticleRepository) CountArticles(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM articles"); err != nil {
		return 0, fmt.Errorf("count articles: %w", err)
	}
	return count, nil
}

// SetReviewInterval stores the article's review interval. A not configured interval clears it,
// non-positive values are never stored.
func (r *ArticleRepository) SetReviewInterval(ctx context.Context, id int64, interval freshness.Interval) error {
	var value any
	if interval.Configured() {
		value = interval.Days()
	}

	return withRetry(ctx, func() error {
		res, err := r.db.ExecContext(ctx,
			"UPDATE articles SET review_interval = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?", value, id)
		if err != nil {
			return fmt.Errorf("set review interval: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("set review interval rows: %w", err)
		}
		if n == 0 {
			return fmt.Errorf("set review interval for %d: %w", id, ErrNotFound)
		}
		return nil
	})
}

// DeleteArticle removes an article
func (r *ArticleRepository) DeleteArticle(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM articles WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("delete article %d: %w", id, ErrNotFound)
	}
	return nil
}

// toDomain converts articleSQL to domain.Article
func (a *articleSQL) toDomain() *domain.Article {
	res := &domain.Article{
		ID:         a.ID,
		SourceID:   a.SourceID,
		GUID:       a.GUID,
		Title:      a.Title,
		Link:       a.Link,
		Author:     a.Author,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
		SourceName: a.SourceName,
	}
	if a.Published != nil {
		res.Published = *a.Published
	}
	if a.Modified != nil {
		res.Modified = *a.Modified
	}
	if a.ReviewInterval.Valid {
		res.ReviewInterval = freshness.ParseInterval(a.ReviewInterval.String)
	}
	return res
}

// nullTime stores zero times as NULL and everything else in UTC
func nullTime(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t.UTC()
}
