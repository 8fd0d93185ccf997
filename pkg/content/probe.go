// Package content reads article pages to recover metadata missing from feeds.
package content

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/time/rate"
)

// ErrNoDate is returned when the page carries no recognizable date
var ErrNoDate = errors.New("no date found")

// DateProbe finds the date of an article page using trafilatura's metadata extraction
type DateProbe struct {
	client    *http.Client
	userAgent string
	limiter   *rate.Limiter
}

// NewDateProbe creates a new date probe. Page fetches are spaced by at least rateLimit,
// zero disables the limit.
func NewDateProbe(timeout time.Duration, userAgent string, rateLimit time.Duration) *DateProbe {
	limit := rate.Inf
	if rateLimit > 0 {
		limit = rate.Every(rateLimit)
	}
	return &DateProbe{
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
		limiter:   rate.NewLimiter(limit, 1),
	}
}

// Probe fetches the page at urlStr and returns the date found in its metadata
func (d *DateProbe) Probe(ctx context.Context, urlStr string) (time.Time, error) {
	parsedURL, err := url.Parse(urlStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse URL: %w", err)
	}
	if parsedURL.Scheme == "" || parsedURL.Host == "" {
		return time.Time{}, fmt.Errorf("invalid URL: %s", urlStr)
	}

	if err := d.limiter.Wait(ctx); err != nil {
		return time.Time{}, fmt.Errorf("wait for rate limit: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, http.NoBody)
	if err != nil {
		return time.Time{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", d.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8")

	resp, err := d.client.Do(req)
	if err != nil {
		return time.Time{}, fmt.Errorf("fetch URL %s: %w", urlStr, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return time.Time{}, fmt.Errorf("unexpected status code %d for URL %s", resp.StatusCode, urlStr)
	}

	result, err := trafilatura.Extract(resp.Body, trafilatura.Options{
		EnableFallback:  false,
		ExcludeComments: true,
		OriginalURL:     parsedURL,
	})
	if err != nil {
		return time.Time{}, fmt.Errorf("extract metadata from %s: %w", urlStr, err)
	}
	if result == nil || result.Metadata.Date.IsZero() {
		return time.Time{}, fmt.Errorf("%s: %w", urlStr, ErrNoDate)
	}

	return result.Metadata.Date, nil
}
