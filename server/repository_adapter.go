package server

import (
	"context"

	"github.com/umputun/freshness/pkg/domain"
	"github.com/umputun/freshness/pkg/freshness"
	"github.com/umputun/freshness/pkg/repository"
)

// RepositoryAdapter adapts repositories to server.Database interface
type RepositoryAdapter struct {
	repos *repository.Repositories
}

// NewRepositoryAdapter creates a new repository adapter
func NewRepositoryAdapter(repos *repository.Repositories) *RepositoryAdapter {
	return &RepositoryAdapter{repos: repos}
}

// GetArticle returns a single article
func (r *RepositoryAdapter) GetArticle(ctx context.Context, id int64) (*domain.Article, error) {
	return r.repos.Article.GetArticle(ctx, id)
}

// GetArticles returns a page of articles, all of them for a non-positive limit
func (r *RepositoryAdapter) GetArticles(ctx context.Context, limit, offset int) ([]*domain.Article, error) {
	return r.repos.Article.GetArticles(ctx, limit, offset)
}

// CountArticles returns the number of stored articles
func (r *RepositoryAdapter) CountArticles(ctx context.Context) (int, error) {
	return r.repos.Article.CountArticles(ctx)
}

// SetReviewInterval stores the article's review interval
func (r *RepositoryAdapter) SetReviewInterval(ctx context.Context, id int64, interval freshness.Interval) error {
	return r.repos.Article.SetReviewInterval(ctx, id, interval)
}

// DeleteArticle removes an article
func (r *RepositoryAdapter) DeleteArticle(ctx context.Context, id int64) error {
	return r.repos.Article.DeleteArticle(ctx, id)
}

// GetSources returns registered sources
func (r *RepositoryAdapter) GetSources(ctx context.Context, enabledOnly bool) ([]*domain.Source, error) {
	return r.repos.Source.GetSources(ctx, enabledOnly)
}

// CreateSource registers a source
func (r *RepositoryAdapter) CreateSource(ctx context.Context, src *domain.Source) error {
	return r.repos.Source.CreateSource(ctx, src)
}

// UpdateSourceStatus enables or disables a source
func (r *RepositoryAdapter) UpdateSourceStatus(ctx context.Context, id int64, enabled bool) error {
	return r.repos.Source.UpdateSourceStatus(ctx, id, enabled)
}

// DeleteSource removes a source with its articles
func (r *RepositoryAdapter) DeleteSource(ctx context.Context, id int64) error {
	return r.repos.Source.DeleteSource(ctx, id)
}

// GetThreshold returns the site-wide staleness threshold
func (r *RepositoryAdapter) GetThreshold(ctx context.Context, def int) (int, error) {
	return r.repos.Setting.GetThreshold(ctx, def)
}

// SetThreshold saves the site-wide staleness threshold and returns the stored value
func (r *RepositoryAdapter) SetThreshold(ctx context.Context, days int) (int, error) {
	return r.repos.Setting.SetThreshold(ctx, days)
}
