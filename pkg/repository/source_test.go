package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/freshness/pkg/domain"
)

func TestSourceRepository_CRUD(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	blog := &domain.Source{URL: "https://blog.example.com/feed", Title: "Blog", Enabled: true}
	docs := &domain.Source{URL: "https://docs.example.com/feed", Enabled: false}
	require.NoError(t, repos.Source.CreateSource(ctx, blog))
	require.NoError(t, repos.Source.CreateSource(ctx, docs))
	assert.NotZero(t, blog.ID)
	assert.NotZero(t, docs.ID)

	t.Run("duplicate url rejected", func(t *testing.T) {
		err := repos.Source.CreateSource(ctx, &domain.Source{URL: blog.URL})
		require.Error(t, err)
	})

	t.Run("get source", func(t *testing.T) {
		got, err := repos.Source.GetSource(ctx, blog.ID)
		require.NoError(t, err)
		assert.Equal(t, "Blog", got.Title)
		assert.True(t, got.Enabled)
		assert.Nil(t, got.LastSynced)

		got, err = repos.Source.GetSourceByURL(ctx, docs.URL)
		require.NoError(t, err)
		assert.Equal(t, docs.ID, got.ID)
		assert.Equal(t, docs.URL, got.Name())
	})

	t.Run("missing source", func(t *testing.T) {
		_, err := repos.Source.GetSource(ctx, 99999)
		require.ErrorIs(t, err, ErrNotFound)
		_, err = repos.Source.GetSourceByURL(ctx, "https://nowhere.example.com")
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("enabled only", func(t *testing.T) {
		all, err := repos.Source.GetSources(ctx, false)
		require.NoError(t, err)
		assert.Len(t, all, 2)

		enabled, err := repos.Source.GetSources(ctx, true)
		require.NoError(t, err)
		require.Len(t, enabled, 1)
		assert.Equal(t, blog.ID, enabled[0].ID)
	})

	t.Run("sync error then success", func(t *testing.T) {
		require.NoError(t, repos.Source.UpdateSourceError(ctx, blog.ID, "connection refused"))
		require.NoError(t, repos.Source.UpdateSourceError(ctx, blog.ID, "timeout"))
		got, err := repos.Source.GetSource(ctx, blog.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, got.ErrorCount)
		assert.Equal(t, "timeout", got.LastError)

		syncedAt := time.Now().Truncate(time.Second)
		require.NoError(t, repos.Source.UpdateSourceSynced(ctx, blog.ID, syncedAt))
		got, err = repos.Source.GetSource(ctx, blog.ID)
		require.NoError(t, err)
		assert.Zero(t, got.ErrorCount)
		assert.Empty(t, got.LastError)
		require.NotNil(t, got.LastSynced)
		assert.True(t, got.LastSynced.Equal(syncedAt))
	})

	t.Run("toggle status", func(t *testing.T) {
		require.NoError(t, repos.Source.UpdateSourceStatus(ctx, docs.ID, true))
		enabled, err := repos.Source.GetSources(ctx, true)
		require.NoError(t, err)
		assert.Len(t, enabled, 2)
		require.ErrorIs(t, repos.Source.UpdateSourceStatus(ctx, 9999, false), ErrNotFound)
	})

	t.Run("delete cascades articles", func(t *testing.T) {
		article := &domain.Article{SourceID: docs.ID, GUID: "a1", Title: "Doc"}
		require.NoError(t, repos.Article.UpsertArticle(ctx, article))

		require.NoError(t, repos.Source.DeleteSource(ctx, docs.ID))
		_, err := repos.Article.GetArticle(ctx, article.ID)
		require.ErrorIs(t, err, ErrNotFound)

		require.ErrorIs(t, repos.Source.DeleteSource(ctx, docs.ID), ErrNotFound)
	})
}
