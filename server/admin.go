package server

import (
	"bytes"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/umputun/freshness/pkg/domain"
	"github.com/umputun/freshness/pkg/freshness"
	"github.com/umputun/freshness/pkg/repository"
)

// adminRow is an article row on the admin page
type adminRow struct {
	domain.ArticleFreshness
	Selected string // interval select value
	Custom   string // custom interval text
}

// adminPage holds data for rendering the admin page
type adminPage struct {
	Rows        []adminRow
	Choices     []freshness.Choice
	Threshold   int
	CurrentPage int
	TotalPages  int
	TotalCount  int
	HasPrev     bool
	HasNext     bool
	Version     string
}

// adminPageHandler renders the articles table with freshness badges and editing forms
func (s *Server) adminPageHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	pageSize := s.config.GetPageSize()

	total, err := s.db.CountArticles(ctx)
	if err != nil {
		s.respondWithError(w, http.StatusInternalServerError, "Failed to count articles", err)
		return
	}
	pages := totalPages(total, pageSize)
	page := pageParam(r, pages)
	articles, err := s.db.GetArticles(ctx, pageSize, (page-1)*pageSize)
	if err != nil {
		s.respondWithError(w, http.StatusInternalServerError, "Failed to load articles", err)
		return
	}

	threshold := s.threshold(ctx)
	data := adminPage{
		Choices:     freshness.Choices,
		Threshold:   threshold,
		CurrentPage: page,
		TotalPages:  pages,
		TotalCount:  total,
		HasPrev:     page > 1,
		HasNext:     page < pages,
		Version:     s.version,
	}
	for _, a := range s.withFreshness(articles, threshold) {
		selected, custom := freshness.SelectionFor(a.ReviewInterval)
		data.Rows = append(data.Rows, adminRow{ArticleFreshness: a, Selected: selected, Custom: custom})
	}

	// render into a buffer so template errors don't leave a half-written page
	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, "admin.html", data); err != nil {
		s.respondWithError(w, http.StatusInternalServerError, "Failed to render page", err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

// adminIntervalHandler saves the interval from the row form and returns to the admin page
func (s *Server) adminIntervalHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.respondWithError(w, http.StatusBadRequest, "Invalid article ID", err)
		return
	}
	if err := r.ParseForm(); err != nil {
		s.respondWithError(w, http.StatusBadRequest, "Invalid form data", err)
		return
	}

	interval := freshness.ResolveSelection(r.FormValue("interval"), r.FormValue("custom_interval"))
	if err := s.db.SetReviewInterval(r.Context(), id, interval); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.respondWithError(w, http.StatusNotFound, "Article not found", err)
			return
		}
		s.respondWithError(w, http.StatusInternalServerError, "Failed to save interval", err)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// adminThresholdHandler saves the settings form. Input is sanitized like the API stores it,
// non-numeric values fall back to the default threshold.
func (s *Server) adminThresholdHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.respondWithError(w, http.StatusBadRequest, "Invalid form data", err)
		return
	}

	days, _ := strconv.Atoi(strings.TrimSpace(r.FormValue("days")))
	if _, err := s.db.SetThreshold(r.Context(), days); err != nil {
		s.respondWithError(w, http.StatusInternalServerError, "Failed to save threshold", err)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// respondWithError logs the error and sends a plain text error response
func (s *Server) respondWithError(w http.ResponseWriter, code int, message string, err error) {
	log.Printf("[ERROR] %s: %v", message, err)
	http.Error(w, message, code)
}

func templateFuncs() map[string]any {
	return map[string]any{
		"formatDate": func(t time.Time) string {
			if t.IsZero() {
				return "unknown"
			}
			return t.Format("2006-01-02 15:04")
		},
		"add": func(a, b int) int { return a + b },
	}
}
