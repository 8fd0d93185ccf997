// Package scheduler imports articles from the registered site feeds on a schedule.
// It only brings content in; freshness is never computed or stored here.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/freshness/pkg/domain"
)

//go:generate moq -out mocks/source_manager.go -pkg mocks -skip-ensure -fmt goimports . SourceManager
//go:generate moq -out mocks/article_manager.go -pkg mocks -skip-ensure -fmt goimports . ArticleManager
//go:generate moq -out mocks/parser.go -pkg mocks -skip-ensure -fmt goimports . Parser
//go:generate moq -out mocks/date_prober.go -pkg mocks -skip-ensure -fmt goimports . DateProber

// SourceManager reads sources and records sync results
type SourceManager interface {
	GetSource(ctx context.Context, id int64) (*domain.Source, error)
	GetSources(ctx context.Context, enabledOnly bool) ([]*domain.Source, error)
	UpdateSourceSynced(ctx context.Context, id int64, syncedAt time.Time) error
	UpdateSourceError(ctx context.Context, id int64, errMsg string) error
}

// ArticleManager reads and stores imported articles
type ArticleManager interface {
	GetArticleByGUID(ctx context.Context, sourceID int64, guid string) (*domain.Article, error)
	UpsertArticle(ctx context.Context, article *domain.Article) error
}

// Parser fetches and parses a site feed
type Parser interface {
	Parse(ctx context.Context, url string) (*domain.ParsedSource, error)
}

// DateProber finds the date of an article page
type DateProber interface {
	Probe(ctx context.Context, url string) (time.Time, error)
}

// Params holds scheduler dependencies and settings
type Params struct {
	SourceManager  SourceManager
	ArticleManager ArticleManager
	Parser         Parser
	DateProber     DateProber // optional, nil disables probing of undated entries
	UpdateInterval time.Duration
	MaxWorkers     int
}

// Scheduler periodically imports articles from all enabled sources
type Scheduler struct {
	sources    SourceManager
	articles   ArticleManager
	parser     Parser
	prober     DateProber
	interval   time.Duration
	maxWorkers int

	wg     sync.WaitGroup
	cancel context.CancelFunc
	now    func() time.Time
}

// NewScheduler creates a new scheduler
func NewScheduler(params Params) *Scheduler {
	if params.UpdateInterval <= 0 {
		params.UpdateInterval = 30 * time.Minute
	}
	if params.MaxWorkers <= 0 {
		params.MaxWorkers = 5
	}
	return &Scheduler{
		sources:    params.SourceManager,
		articles:   params.ArticleManager,
		parser:     params.Parser,
		prober:     params.DateProber,
		interval:   params.UpdateInterval,
		maxWorkers: params.MaxWorkers,
		now:        time.Now,
	}
}

// Start runs the import loop in the background until Stop is called or ctx is done
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)

	s.wg.Add(1)
	go s.syncWorker(ctx)

	lgr.Printf("[INFO] scheduler started with update interval %v, %d workers", s.interval, s.maxWorkers)
}

// Stop cancels the import loop and waits for running imports to finish
func (s *Scheduler) Stop() {
	lgr.Printf("[INFO] stopping scheduler...")
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	lgr.Printf("[INFO] scheduler stopped")
}

func (s *Scheduler) syncWorker(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	// run immediately on start
	s.SyncAll(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.SyncAll(ctx)
		}
	}
}

// SyncAll imports every enabled source with a bounded number of workers.
// Source failures are recorded on the source and never abort the run.
func (s *Scheduler) SyncAll(ctx context.Context) {
	sources, err := s.sources.GetSources(ctx, true)
	if err != nil {
		lgr.Printf("[ERROR] failed to get enabled sources: %v", err)
		return
	}
	if len(sources) == 0 {
		return
	}

	lgr.Printf("[INFO] syncing %d sources", len(sources))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxWorkers)
	for _, src := range sources {
		g.Go(func() error {
			if _, err := s.syncSource(ctx, src); err != nil {
				lgr.Printf("[WARN] sync of %s failed: %v", src.Name(), err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		lgr.Printf("[ERROR] sync worker error: %v", err)
	}
	lgr.Printf("[INFO] sync completed")
}

// SyncNow imports a single source immediately and returns the number of stored articles
func (s *Scheduler) SyncNow(ctx context.Context, sourceID int64) (int, error) {
	src, err := s.sources.GetSource(ctx, sourceID)
	if err != nil {
		return 0, fmt.Errorf("get source: %w", err)
	}
	return s.syncSource(ctx, src)
}

// syncSource parses the source feed and upserts its entries
func (s *Scheduler) syncSource(ctx context.Context, src *domain.Source) (int, error) {
	lgr.Printf("[DEBUG] syncing source: %s", src.URL)

	parsed, err := s.parser.Parse(ctx, src.URL)
	if err != nil {
		if uerr := s.sources.UpdateSourceError(ctx, src.ID, err.Error()); uerr != nil {
			lgr.Printf("[ERROR] failed to record error for source %d: %v", src.ID, uerr)
		}
		return 0, fmt.Errorf("parse feed %s: %w", src.URL, err)
	}

	stored := 0
	for _, entry := range parsed.Articles {
		if ctx.Err() != nil {
			return stored, ctx.Err()
		}

		article := &domain.Article{
			SourceID:  src.ID,
			GUID:      entry.GUID,
			Title:     entry.Title,
			Link:      entry.Link,
			Author:    entry.Author,
			Published: entry.Published,
			Modified:  entry.Modified,
		}
		if article.Modified.IsZero() {
			s.probeDate(ctx, article)
		}

		if err := s.articles.UpsertArticle(ctx, article); err != nil {
			lgr.Printf("[ERROR] failed to store article %q from %s: %v", article.GUID, src.URL, err)
			continue
		}
		stored++
	}

	if err := s.sources.UpdateSourceSynced(ctx, src.ID, s.now()); err != nil {
		lgr.Printf("[ERROR] failed to mark source %d synced: %v", src.ID, err)
	}

	if stored > 0 {
		lgr.Printf("[INFO] stored %d articles from %s", stored, src.Name())
	}
	return stored, nil
}

// probeDate fills the modification date of an undated entry from its page, if a prober is set.
// Entries already stored with a date are skipped, the upsert keeps their stored date.
func (s *Scheduler) probeDate(ctx context.Context, article *domain.Article) {
	if s.prober == nil || article.Link == "" {
		return
	}
	if stored, err := s.articles.GetArticleByGUID(ctx, article.SourceID, article.GUID); err == nil && !stored.Modified.IsZero() {
		return
	}
	date, err := s.prober.Probe(ctx, article.Link)
	if err != nil {
		lgr.Printf("[DEBUG] no date for %s: %v", article.Link, err)
		return
	}
	article.Modified = date
	if article.Published.IsZero() {
		article.Published = date
	}
}
