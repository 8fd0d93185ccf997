package domain

import (
	"time"

	"github.com/umputun/freshness/pkg/freshness"
)

// Article represents a tracked piece of published content
type Article struct {
	ID             int64
	SourceID       int64
	GUID           string
	Title          string
	Link           string
	Author         string
	Published      time.Time
	Modified       time.Time // zero if the source did not report a modification time
	ReviewInterval freshness.Interval
	CreatedAt      time.Time
	UpdatedAt      time.Time

	SourceName string // joined from the source, not stored with the article
}

// ArticleFreshness is an article with its freshness computed at request time. It is never persisted.
type ArticleFreshness struct {
	*Article
	Freshness freshness.Result
	Stale     bool // stale under the site-wide threshold
}

// ParsedArticle represents an entry parsed from a source feed
type ParsedArticle struct {
	GUID      string
	Title     string
	Link      string
	Author    string
	Published time.Time
	Modified  time.Time
}

// ParsedSource represents a parsed source feed with its entries
type ParsedSource struct {
	Title    string
	Link     string
	Articles []ParsedArticle
}
