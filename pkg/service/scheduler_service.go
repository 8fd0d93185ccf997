// Package service bundles repositories behind the interfaces used by the scheduler.
package service

import (
	"context"
	"time"

	"github.com/umputun/freshness/pkg/domain"
	"github.com/umputun/freshness/pkg/repository"
)

// SchedulerService provides unified access to repositories for the scheduler
type SchedulerService struct {
	sourceRepo  *repository.SourceRepository
	articleRepo *repository.ArticleRepository
}

// NewSchedulerService creates a new scheduler service
func NewSchedulerService(repos *repository.Repositories) *SchedulerService {
	return &SchedulerService{sourceRepo: repos.Source, articleRepo: repos.Article}
}

// source management methods

func (s *SchedulerService) GetSource(ctx context.Context, id int64) (*domain.Source, error) {
	return s.sourceRepo.GetSource(ctx, id)
}

func (s *SchedulerService) GetSources(ctx context.Context, enabledOnly bool) ([]*domain.Source, error) {
	return s.sourceRepo.GetSources(ctx, enabledOnly)
}

func (s *SchedulerService) UpdateSourceSynced(ctx context.Context, id int64, syncedAt time.Time) error {
	return s.sourceRepo.UpdateSourceSynced(ctx, id, syncedAt)
}

func (s *SchedulerService) UpdateSourceError(ctx context.Context, id int64, errMsg string) error {
	return s.sourceRepo.UpdateSourceError(ctx, id, errMsg)
}

// article methods

func (s *SchedulerService) GetArticleByGUID(ctx context.Context, sourceID int64, guid string) (*domain.Article, error) {
	return s.articleRepo.GetArticleByGUID(ctx, sourceID, guid)
}

func (s *SchedulerService) UpsertArticle(ctx context.Context, article *domain.Article) error {
	return s.articleRepo.UpsertArticle(ctx, article)
}
