package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/freshness/pkg/domain"
	"github.com/umputun/freshness/pkg/freshness"
)

func TestArticleRepository_Upsert(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()
	src := createTestSource(t, repos, "https://example.com/feed")

	modified := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	article := &domain.Article{
		SourceID:  src.ID,
		GUID:      "post-1",
		Title:     "First post",
		Link:      "https://example.com/first",
		Author:    "Jane",
		Published: modified.Add(-time.Hour),
		Modified:  modified,
	}
	require.NoError(t, repos.Article.UpsertArticle(ctx, article))
	require.NotZero(t, article.ID)

	got, err := repos.Article.GetArticle(ctx, article.ID)
	require.NoError(t, err)
	assert.Equal(t, "First post", got.Title)
	assert.Equal(t, "Test Site", got.SourceName)
	assert.True(t, got.Modified.Equal(modified))
	assert.True(t, got.Published.Equal(modified.Add(-time.Hour)))
	assert.Equal(t, freshness.NotConfigured, got.ReviewInterval)

	t.Run("update keeps id and interval", func(t *testing.T) {
		require.NoError(t, repos.Article.SetReviewInterval(ctx, article.ID, 30))

		updated := &domain.Article{
			SourceID: src.ID,
			GUID:     "post-1",
			Title:    "First post, revised",
			Link:     "https://example.com/first",
			Modified: modified.AddDate(0, 1, 0),
		}
		require.NoError(t, repos.Article.UpsertArticle(ctx, updated))
		assert.Equal(t, article.ID, updated.ID)

		got, err := repos.Article.GetArticle(ctx, article.ID)
		require.NoError(t, err)
		assert.Equal(t, "First post, revised", got.Title)
		assert.Equal(t, freshness.Interval(30), got.ReviewInterval)
		assert.True(t, got.Modified.Equal(modified.AddDate(0, 1, 0)))
		assert.True(t, got.Published.Equal(modified.Add(-time.Hour)), "published kept when missing in update")
	})

	t.Run("zero modified keeps known value", func(t *testing.T) {
		require.NoError(t, repos.Article.UpsertArticle(ctx, &domain.Article{SourceID: src.ID, GUID: "post-1", Title: "x"}))
		got, err := repos.Article.GetArticle(ctx, article.ID)
		require.NoError(t, err)
		assert.False(t, got.Modified.IsZero())
	})

	t.Run("missing modified stays zero", func(t *testing.T) {
		a := &domain.Article{SourceID: src.ID, GUID: "post-2", Title: "No date"}
		require.NoError(t, repos.Article.UpsertArticle(ctx, a))
		got, err := repos.Article.GetArticle(ctx, a.ID)
		require.NoError(t, err)
		assert.True(t, got.Modified.IsZero())
		assert.True(t, got.Published.IsZero())
	})
}

func TestArticleRepository_SetReviewInterval(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()
	src := createTestSource(t, repos, "https://example.com/feed")

	article := &domain.Article{SourceID: src.ID, GUID: "g", Title: "t", Modified: time.Now()}
	require.NoError(t, repos.Article.UpsertArticle(ctx, article))

	tests := []struct {
		name     string
		interval freshness.Interval
		want     freshness.Interval
	}{
		{"predefined", 90, 90},
		{"custom", 45, 45},
		{"cleared", freshness.NotConfigured, freshness.NotConfigured},
		{"negative is never stored", freshness.Interval(-10), freshness.NotConfigured},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, repos.Article.SetReviewInterval(ctx, article.ID, tt.interval))
			got, err := repos.Article.GetArticle(ctx, article.ID)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.ReviewInterval)
		})
	}

	t.Run("unknown article", func(t *testing.T) {
		err := repos.Article.SetReviewInterval(ctx, 99999, 30)
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestArticleRepository_MalformedStoredInterval(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()
	src := createTestSource(t, repos, "https://example.com/feed")

	tests := []struct {
		guid   string
		stored any
		want   freshness.Interval
	}{
		{"text", "abc", freshness.NotConfigured},
		{"fraction", 45.5, 45},
		{"negative", -7, freshness.NotConfigured},
		{"numeric text", "60", 60},
	}
	for _, tt := range tests {
		a := &domain.Article{SourceID: src.ID, GUID: tt.guid, Title: tt.guid, Modified: time.Now()}
		require.NoError(t, repos.Article.UpsertArticle(ctx, a))
		_, err := repos.DB.ExecContext(ctx, "UPDATE articles SET review_interval = ? WHERE id = ?", tt.stored, a.ID)
		require.NoError(t, err)
	}

	all, err := repos.Article.GetArticles(ctx, 0, 0)
	require.NoError(t, err)
	require.Len(t, all, len(tests))
	got := map[string]freshness.Interval{}
	for _, a := range all {
		got[a.GUID] = a.ReviewInterval
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, got[tt.guid], tt.guid)
	}
}

func TestArticleRepository_List(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()
	src := createTestSource(t, repos, "https://example.com/feed")

	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	for i, guid := range []string{"old", "mid", "new"} {
		a := &domain.Article{SourceID: src.ID, GUID: guid, Title: guid, Modified: base.AddDate(0, 0, i)}
		require.NoError(t, repos.Article.UpsertArticle(ctx, a))
	}
	require.NoError(t, repos.Article.UpsertArticle(ctx, &domain.Article{SourceID: src.ID, GUID: "undated", Title: "undated"}))

	count, err := repos.Article.CountArticles(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, count)

	all, err := repos.Article.GetArticles(ctx, 0, 0)
	require.NoError(t, err)
	require.Len(t, all, 4)
	titles := []string{all[0].Title, all[1].Title, all[2].Title, all[3].Title}
	assert.Equal(t, []string{"new", "mid", "old", "undated"}, titles)

	page, err := repos.Article.GetArticles(ctx, 2, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "old", page[0].Title)

	byGUID, err := repos.Article.GetArticleByGUID(ctx, src.ID, "mid")
	require.NoError(t, err)
	assert.Equal(t, "mid", byGUID.Title)
	assert.True(t, base.AddDate(0, 0, 1).Equal(byGUID.Modified))
	_, err = repos.Article.GetArticleByGUID(ctx, src.ID, "missing")
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, repos.Article.DeleteArticle(ctx, all[0].ID))
	require.ErrorIs(t, repos.Article.DeleteArticle(ctx, all[0].ID), ErrNotFound)
}
