package repository

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/freshness/pkg/domain"
	"github.com/umputun/freshness/pkg/freshness"
)

func TestSettingRepository(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	t.Run("missing setting", func(t *testing.T) {
		v, err := repos.Setting.GetSetting(ctx, "nope")
		require.NoError(t, err)
		assert.Empty(t, v)
	})

	t.Run("set and overwrite", func(t *testing.T) {
		require.NoError(t, repos.Setting.SetSetting(ctx, "k", "v1"))
		require.NoError(t, repos.Setting.SetSetting(ctx, "k", "v2"))
		v, err := repos.Setting.GetSetting(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, "v2", v)
	})
}

func TestSettingRepository_Threshold(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	days, err := repos.Setting.GetThreshold(ctx, 30)
	require.NoError(t, err)
	assert.Equal(t, 30, days, "default when unset")

	saved, err := repos.Setting.SetThreshold(ctx, 45)
	require.NoError(t, err)
	assert.Equal(t, 45, saved)
	days, err = repos.Setting.GetThreshold(ctx, 30)
	require.NoError(t, err)
	assert.Equal(t, 45, days)

	saved, err = repos.Setting.SetThreshold(ctx, -10)
	require.NoError(t, err)
	assert.Equal(t, 10, saved, "absolute value like the settings form")

	saved, err = repos.Setting.SetThreshold(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, 30, saved)

	saved, err = repos.Setting.SetThreshold(ctx, math.MinInt)
	require.NoError(t, err)
	assert.Equal(t, freshness.MaxThreshold, saved, "capped, never negative")

	require.NoError(t, repos.Setting.SetSetting(ctx, domain.SettingStalenessThreshold, "106751991167301"))
	days, err = repos.Setting.GetThreshold(ctx, 30)
	require.NoError(t, err)
	assert.Equal(t, freshness.MaxThreshold, days)

	require.NoError(t, repos.Setting.SetSetting(ctx, domain.SettingStalenessThreshold, "garbage"))
	days, err = repos.Setting.GetThreshold(ctx, 60)
	require.NoError(t, err)
	assert.Equal(t, 60, days, "non-numeric stored value falls back to default")
}
