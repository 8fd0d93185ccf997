package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/freshness/pkg/config"
	"github.com/umputun/freshness/pkg/domain"
	"github.com/umputun/freshness/pkg/repository"
)

func TestRun_MissingConfig(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	err := run(ctx, Opts{Config: "non-existent-config.yml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}

func TestRun_InvalidConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "invalid.yml")
	require.NoError(t, os.WriteFile(configPath, []byte("invalid: yaml: content: ["), 0o600))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	err := run(ctx, Opts{Config: configPath})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}

func TestRun_ServerStartStop(t *testing.T) {
	tmpDir := t.TempDir()

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := listener.Addr().(*net.TCPAddr).Port
	require.NoError(t, listener.Close())

	configContent := `
sync:
  enabled: false
sources:
  - url: https://example.com/feed.xml
    title: Example
`
	configPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0o600))

	opts := Opts{
		Config: configPath,
		Listen: fmt.Sprintf("127.0.0.1:%d", port),
		DB:     "file:" + filepath.Join(tmpDir, "test.db") + "?mode=rwc",
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	runErr := make(chan error, 1)
	go func() { runErr <- run(ctx, opts) }()

	baseURL := fmt.Sprintf("http://127.0.0.1:%d", port)
	require.Eventually(t, func() bool {
		resp, err := http.Get(baseURL + "/ping")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 3*time.Second, 50*time.Millisecond, "server did not start")

	resp, err := http.Get(baseURL + "/api/v1/sources")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "https://example.com/feed.xml", "configured source is registered")

	cancel()
	select {
	case err := <-runErr:
		require.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("run did not return after cancel")
	}
}

type fakeRegistry struct {
	known   map[string]bool
	created []string
	lookErr error
}

func (f *fakeRegistry) GetSourceByURL(_ context.Context, url string) (*domain.Source, error) {
	if f.lookErr != nil {
		return nil, f.lookErr
	}
	if f.known[url] {
		return &domain.Source{URL: url}, nil
	}
	return nil, fmt.Errorf("get source %s: %w", url, repository.ErrNotFound)
}

func (f *fakeRegistry) CreateSource(_ context.Context, src *domain.Source) error {
	f.created = append(f.created, src.URL)
	return nil
}

func TestSeedSources(t *testing.T) {
	sources := []config.SourceConfig{
		{URL: "https://known.example.com/feed"},
		{URL: "https://new.example.com/feed", Title: "New"},
	}

	t.Run("creates only missing sources", func(t *testing.T) {
		reg := &fakeRegistry{known: map[string]bool{"https://known.example.com/feed": true}}
		require.NoError(t, seedSources(context.Background(), reg, sources))
		assert.Equal(t, []string{"https://new.example.com/feed"}, reg.created)
	})

	t.Run("lookup failure", func(t *testing.T) {
		reg := &fakeRegistry{lookErr: errors.New("database is closed")}
		err := seedSources(context.Background(), reg, sources)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database is closed")
		assert.Empty(t, reg.created)
	})
}

func TestSetupLog(t *testing.T) {
	setupLog(true, true)
	setupLog(false, false, "secret")
}
