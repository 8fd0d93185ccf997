package feed

import (
	"context"
	"errors"
	"fmt"
	"html"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/microcosm-cc/bluemonday"
	"github.com/mmcdole/gofeed"

	"github.com/umputun/freshness/pkg/domain"
)

// errPermanent marks fetch failures not worth retrying
var errPermanent = errors.New("permanent fetch error")

// Parser fetches and parses site RSS/Atom feeds into articles
type Parser struct {
	client    *http.Client
	userAgent string
	retries   int
	policy    *bluemonday.Policy
}

// NewParser creates a new feed parser. Retries is the number of attempts for transient failures.
func NewParser(timeout time.Duration, userAgent string, retries int) *Parser {
	if retries < 1 {
		retries = 1
	}
	return &Parser{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		userAgent: userAgent,
		retries:   retries,
		policy:    bluemonday.StrictPolicy(),
	}
}

// Parse fetches and parses a feed from the given URL. The modification time of each entry is its
// updated date, falling back to the published date, and stays zero when the feed has neither.
func (p *Parser) Parse(ctx context.Context, url string) (*domain.ParsedSource, error) {
	var body []byte
	err := repeater.NewBackoff(p.retries, 500*time.Millisecond, repeater.WithMaxDelay(5*time.Second)).Do(ctx, func() error {
		var fetchErr error
		body, fetchErr = p.fetch(ctx, url)
		return fetchErr
	}, errPermanent)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}

	feed, err := gofeed.NewParser().ParseString(string(body))
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	result := &domain.ParsedSource{
		Title:    p.clean(feed.Title),
		Link:     feed.Link,
		Articles: make([]domain.ParsedArticle, 0, len(feed.Items)),
	}

	for _, item := range feed.Items {
		article := domain.ParsedArticle{
			Title: p.clean(item.Title),
			Link:  item.Link,
		}

		switch {
		case item.GUID != "":
			article.GUID = item.GUID
		case item.Link != "":
			article.GUID = item.Link
		default:
			article.GUID = fmt.Sprintf("%s-%s", feed.Title, item.Title)
		}

		if item.Author != nil {
			article.Author = item.Author.Name
		}

		if item.PublishedParsed != nil {
			article.Published = *item.PublishedParsed
		}
		switch {
		case item.UpdatedParsed != nil:
			article.Modified = *item.UpdatedParsed
		case item.PublishedParsed != nil:
			article.Modified = *item.PublishedParsed
		}

		result.Articles = append(result.Articles, article)
	}

	return result, nil
}

// clean strips markup from feed text, titles often carry inline html
func (p *Parser) clean(s string) string {
	return strings.TrimSpace(html.UnescapeString(p.policy.Sanitize(s)))
}

// fetch retrieves the feed body. Client errors are permanent, server errors and network
// failures are retried.
func (p *Parser) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w: %w", errPermanent, err)
	}

	req.Header.Set("User-Agent", p.userAgent)
	addBrowserHeaders(req)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch URL: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 && resp.StatusCode < 500 {
		return nil, fmt.Errorf("%w: unexpected status code %d", errPermanent, resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 10*1024*1024))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return body, nil
}
