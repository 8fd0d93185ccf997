package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/freshness/pkg/domain"
	"github.com/umputun/freshness/pkg/scheduler/mocks"
)

func okSourceManager(sources ...*domain.Source) *mocks.SourceManagerMock {
	return &mocks.SourceManagerMock{
		GetSourcesFunc: func(context.Context, bool) ([]*domain.Source, error) { return sources, nil },
		GetSourceFunc: func(_ context.Context, id int64) (*domain.Source, error) {
			for _, s := range sources {
				if s.ID == id {
					return s, nil
				}
			}
			return nil, errors.New("not found")
		},
		UpdateSourceSyncedFunc: func(context.Context, int64, time.Time) error { return nil },
		UpdateSourceErrorFunc:  func(context.Context, int64, string) error { return nil },
	}
}

func TestNewScheduler(t *testing.T) {
	t.Run("explicit settings", func(t *testing.T) {
		s := NewScheduler(Params{UpdateInterval: 5 * time.Minute, MaxWorkers: 3})
		assert.Equal(t, 5*time.Minute, s.interval)
		assert.Equal(t, 3, s.maxWorkers)
		assert.Nil(t, s.prober)
	})

	t.Run("defaults", func(t *testing.T) {
		s := NewScheduler(Params{})
		assert.Equal(t, 30*time.Minute, s.interval)
		assert.Equal(t, 5, s.maxWorkers)
	})
}

func TestScheduler_SyncNow(t *testing.T) {
	published := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	modified := time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC)
	syncedAt := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	src := &domain.Source{ID: 7, URL: "https://example.com/feed.xml", Title: "Example", Enabled: true}
	sourceManager := okSourceManager(src)
	parser := &mocks.ParserMock{
		ParseFunc: func(context.Context, string) (*domain.ParsedSource, error) {
			return &domain.ParsedSource{Title: "Example", Articles: []domain.ParsedArticle{
				{GUID: "a1", Title: "First", Link: "https://example.com/1", Published: published, Modified: modified},
				{GUID: "a2", Title: "Second", Link: "https://example.com/2", Published: published, Modified: published},
			}}, nil
		},
	}
	articleManager := &mocks.ArticleManagerMock{
		UpsertArticleFunc: func(context.Context, *domain.Article) error { return nil },
	}

	s := NewScheduler(Params{SourceManager: sourceManager, ArticleManager: articleManager, Parser: parser})
	s.now = func() time.Time { return syncedAt }

	count, err := s.SyncNow(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	require.Len(t, parser.ParseCalls(), 1)
	assert.Equal(t, "https://example.com/feed.xml", parser.ParseCalls()[0].URL)

	calls := articleManager.UpsertArticleCalls()
	require.Len(t, calls, 2)
	first := calls[0].Article
	assert.Equal(t, int64(7), first.SourceID)
	assert.Equal(t, "a1", first.GUID)
	assert.Equal(t, "First", first.Title)
	assert.Equal(t, modified, first.Modified)
	assert.Equal(t, published, first.Published)

	require.Len(t, sourceManager.UpdateSourceSyncedCalls(), 1)
	assert.Equal(t, int64(7), sourceManager.UpdateSourceSyncedCalls()[0].ID)
	assert.Equal(t, syncedAt, sourceManager.UpdateSourceSyncedCalls()[0].SyncedAt)
	assert.Empty(t, sourceManager.UpdateSourceErrorCalls())
}

func TestScheduler_SyncNow_UnknownSource(t *testing.T) {
	s := NewScheduler(Params{SourceManager: okSourceManager(), Parser: &mocks.ParserMock{}})
	_, err := s.SyncNow(context.Background(), 42)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "get source")
}

func TestScheduler_SyncNow_ParseError(t *testing.T) {
	src := &domain.Source{ID: 1, URL: "https://broken.example.com/feed"}
	sourceManager := okSourceManager(src)
	parser := &mocks.ParserMock{
		ParseFunc: func(context.Context, string) (*domain.ParsedSource, error) {
			return nil, errors.New("connection refused")
		},
	}
	articleManager := &mocks.ArticleManagerMock{}

	s := NewScheduler(Params{SourceManager: sourceManager, ArticleManager: articleManager, Parser: parser})
	count, err := s.SyncNow(context.Background(), 1)
	require.Error(t, err)
	assert.Zero(t, count)
	assert.Contains(t, err.Error(), "connection refused")

	require.Len(t, sourceManager.UpdateSourceErrorCalls(), 1)
	assert.Equal(t, "connection refused", sourceManager.UpdateSourceErrorCalls()[0].ErrMsg)
	assert.Empty(t, sourceManager.UpdateSourceSyncedCalls())
	assert.Empty(t, articleManager.UpsertArticleCalls())
}

func TestScheduler_SyncNow_StoreErrorSkipsArticle(t *testing.T) {
	src := &domain.Source{ID: 1, URL: "https://example.com/feed"}
	sourceManager := okSourceManager(src)
	parser := &mocks.ParserMock{
		ParseFunc: func(context.Context, string) (*domain.ParsedSource, error) {
			return &domain.ParsedSource{Articles: []domain.ParsedArticle{{GUID: "bad"}, {GUID: "good"}}}, nil
		},
	}
	articleManager := &mocks.ArticleManagerMock{
		UpsertArticleFunc: func(_ context.Context, a *domain.Article) error {
			if a.GUID == "bad" {
				return errors.New("database is locked")
			}
			return nil
		},
	}

	s := NewScheduler(Params{SourceManager: sourceManager, ArticleManager: articleManager, Parser: parser})
	count, err := s.SyncNow(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Len(t, articleManager.UpsertArticleCalls(), 2)
	assert.Len(t, sourceManager.UpdateSourceSyncedCalls(), 1)
}

func TestScheduler_ProbeUndatedEntries(t *testing.T) {
	probed := time.Date(2024, 5, 5, 0, 0, 0, 0, time.UTC)
	src := &domain.Source{ID: 1, URL: "https://example.com/feed"}
	parser := &mocks.ParserMock{
		ParseFunc: func(context.Context, string) (*domain.ParsedSource, error) {
			return &domain.ParsedSource{Articles: []domain.ParsedArticle{
				{GUID: "dated", Link: "https://example.com/dated", Modified: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
				{GUID: "undated", Link: "https://example.com/undated"},
				{GUID: "unknown", Link: "https://example.com/unknown"},
				{GUID: "nolink"},
				{GUID: "stored", Link: "https://example.com/stored"},
			}}, nil
		},
	}
	prober := &mocks.DateProberMock{
		ProbeFunc: func(_ context.Context, url string) (time.Time, error) {
			if url == "https://example.com/undated" {
				return probed, nil
			}
			return time.Time{}, errors.New("no date found")
		},
	}
	articleManager := &mocks.ArticleManagerMock{
		GetArticleByGUIDFunc: func(_ context.Context, sourceID int64, guid string) (*domain.Article, error) {
			if guid == "stored" {
				return &domain.Article{SourceID: sourceID, GUID: guid, Modified: probed}, nil
			}
			return nil, errors.New("not found")
		},
		UpsertArticleFunc: func(context.Context, *domain.Article) error { return nil },
	}

	s := NewScheduler(Params{SourceManager: okSourceManager(src), ArticleManager: articleManager,
		Parser: parser, DateProber: prober})
	count, err := s.SyncNow(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 5, count)

	// only undated entries with a link and without a stored date are probed
	require.Len(t, prober.ProbeCalls(), 2)
	assert.Equal(t, "https://example.com/undated", prober.ProbeCalls()[0].URL)
	assert.Equal(t, "https://example.com/unknown", prober.ProbeCalls()[1].URL)

	assert.Len(t, articleManager.GetArticleByGUIDCalls(), 3)

	calls := articleManager.UpsertArticleCalls()
	require.Len(t, calls, 5)
	assert.Equal(t, probed, calls[1].Article.Modified)
	assert.Equal(t, probed, calls[1].Article.Published)
	assert.True(t, calls[2].Article.Modified.IsZero())
	assert.True(t, calls[3].Article.Modified.IsZero())
	assert.True(t, calls[4].Article.Modified.IsZero(), "stored date is kept by the upsert")
}

func TestScheduler_SyncAll(t *testing.T) {
	sources := []*domain.Source{
		{ID: 1, URL: "https://one.example.com/feed"},
		{ID: 2, URL: "https://two.example.com/feed"},
		{ID: 3, URL: "https://three.example.com/feed"},
	}
	sourceManager := okSourceManager(sources...)

	var inFlight, maxInFlight int32
	parser := &mocks.ParserMock{
		ParseFunc: func(_ context.Context, url string) (*domain.ParsedSource, error) {
			n := atomic.AddInt32(&inFlight, 1)
			defer atomic.AddInt32(&inFlight, -1)
			for {
				old := atomic.LoadInt32(&maxInFlight)
				if n <= old || atomic.CompareAndSwapInt32(&maxInFlight, old, n) {
					break
				}
			}
			time.Sleep(10 * time.Millisecond)
			if url == "https://two.example.com/feed" {
				return nil, errors.New("404 not found")
			}
			return &domain.ParsedSource{Articles: []domain.ParsedArticle{{GUID: url}}}, nil
		},
	}
	articleManager := &mocks.ArticleManagerMock{
		UpsertArticleFunc: func(context.Context, *domain.Article) error { return nil },
	}

	s := NewScheduler(Params{SourceManager: sourceManager, ArticleManager: articleManager, Parser: parser, MaxWorkers: 2})
	s.SyncAll(context.Background())

	require.Len(t, sourceManager.GetSourcesCalls(), 1)
	assert.True(t, sourceManager.GetSourcesCalls()[0].EnabledOnly)
	assert.Len(t, parser.ParseCalls(), 3)
	assert.Len(t, articleManager.UpsertArticleCalls(), 2)
	assert.Len(t, sourceManager.UpdateSourceSyncedCalls(), 2)
	require.Len(t, sourceManager.UpdateSourceErrorCalls(), 1)
	assert.Equal(t, int64(2), sourceManager.UpdateSourceErrorCalls()[0].ID)
	assert.LessOrEqual(t, atomic.LoadInt32(&maxInFlight), int32(2))
}

func TestScheduler_SyncAll_GetSourcesError(t *testing.T) {
	sourceManager := &mocks.SourceManagerMock{
		GetSourcesFunc: func(context.Context, bool) ([]*domain.Source, error) { return nil, errors.New("db closed") },
	}
	parser := &mocks.ParserMock{}
	s := NewScheduler(Params{SourceManager: sourceManager, Parser: parser})
	s.SyncAll(context.Background())
	assert.Empty(t, parser.ParseCalls())
}

func TestScheduler_StartStop(t *testing.T) {
	sourceManager := okSourceManager()
	s := NewScheduler(Params{SourceManager: sourceManager, UpdateInterval: time.Hour})

	s.Start(context.Background())
	require.Eventually(t, func() bool { return len(sourceManager.GetSourcesCalls()) == 1 },
		time.Second, 10*time.Millisecond, "initial sync runs on start")

	done := make(chan struct{})
	go func() {
		s.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop")
	}
}
