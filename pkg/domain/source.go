package domain

import "time"

// Source represents a site feed articles are imported from
type Source struct {
	ID         int64
	URL        string
	Title      string
	Enabled    bool
	LastSynced *time.Time
	ErrorCount int
	LastError  string
	CreatedAt  time.Time
}

// Name returns the source title, falling back to its URL
func (s *Source) Name() string {
	if s.Title != "" {
		return s.Title
	}
	return s.URL
}
