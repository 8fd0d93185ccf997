package server

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/umputun/freshness/pkg/domain"
	"github.com/umputun/freshness/pkg/freshness"
	"github.com/umputun/freshness/pkg/repository"
)

// articleResponse is the JSON view of an article with its freshness
type articleResponse struct {
	ID             int64            `json:"id"`
	SourceID       int64            `json:"source_id"`
	SourceName     string           `json:"source_name,omitempty"`
	GUID           string           `json:"guid"`
	Title          string           `json:"title"`
	Link           string           `json:"link"`
	Author         string           `json:"author,omitempty"`
	Published      time.Time        `json:"published,omitzero"`
	Modified       time.Time        `json:"modified,omitzero"`
	ReviewInterval int              `json:"review_interval"`
	Freshness      freshness.Result `json:"freshness"`
	Stale          bool             `json:"stale"`
}

// sourceResponse is the JSON view of a source
type sourceResponse struct {
	ID         int64      `json:"id"`
	URL        string     `json:"url"`
	Title      string     `json:"title"`
	Enabled    bool       `json:"enabled"`
	LastSynced *time.Time `json:"last_synced,omitempty"`
	ErrorCount int        `json:"error_count"`
	LastError  string     `json:"last_error,omitempty"`
}

func toArticleResponses(items []domain.ArticleFreshness) []articleResponse {
	res := make([]articleResponse, 0, len(items))
	for _, it := range items {
		res = append(res, articleResponse{
			ID:             it.ID,
			SourceID:       it.SourceID,
			SourceName:     it.SourceName,
			GUID:           it.GUID,
			Title:          it.Title,
			Link:           it.Link,
			Author:         it.Author,
			Published:      it.Published,
			Modified:       it.Modified,
			ReviewInterval: it.ReviewInterval.Days(),
			Freshness:      it.Freshness,
			Stale:          it.Stale,
		})
	}
	return res
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]any{
		"status":  "ok",
		"version": s.version,
		"time":    s.now().UTC(),
	}
	renderJSON(w, r, http.StatusOK, status)
}

// listArticlesHandler returns a page of articles with freshness computed now
func (s *Server) listArticlesHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	pageSize := s.config.GetPageSize()

	total, err := s.db.CountArticles(ctx)
	if err != nil {
		log.Printf("[ERROR] failed to count articles: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	pages := totalPages(total, pageSize)
	page := pageParam(r, pages)

	articles, err := s.db.GetArticles(ctx, pageSize, (page-1)*pageSize)
	if err != nil {
		log.Printf("[ERROR] failed to get articles: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	threshold := s.threshold(ctx)
	renderJSON(w, r, http.StatusOK, map[string]any{
		"articles":    toArticleResponses(s.withFreshness(articles, threshold)),
		"page":        page,
		"total_pages": pages,
		"total":       total,
		"threshold":   threshold,
	})
}

// staleArticlesHandler returns all articles older than the site-wide threshold
func (s *Server) staleArticlesHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	articles, err := s.db.GetArticles(ctx, 0, 0)
	if err != nil {
		log.Printf("[ERROR] failed to get articles: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	threshold := s.threshold(ctx)
	stale := []domain.ArticleFreshness{}
	for _, a := range s.withFreshness(articles, threshold) {
		if a.Stale {
			stale = append(stale, a)
		}
	}

	renderJSON(w, r, http.StatusOK, map[string]any{
		"articles":  toArticleResponses(stale),
		"count":     len(stale),
		"threshold": threshold,
	})
}

// articleFreshnessHandler evaluates a single article
func (s *Server) articleFreshnessHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	article, err := s.db.GetArticle(r.Context(), id)
	if err != nil {
		s.renderLookupError(w, r, err)
		return
	}

	res := s.config.Evaluator().Evaluate(article.Modified, article.ReviewInterval, s.now())
	renderJSON(w, r, http.StatusOK, map[string]any{
		"article_id": article.ID,
		"freshness":  res,
	})
}

// getIntervalHandler returns the interval choices and the current selection for an article
func (s *Server) getIntervalHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	article, err := s.db.GetArticle(r.Context(), id)
	if err != nil {
		s.renderLookupError(w, r, err)
		return
	}

	selected, custom := freshness.SelectionFor(article.ReviewInterval)
	renderJSON(w, r, http.StatusOK, map[string]any{
		"article_id": article.ID,
		"interval":   article.ReviewInterval.Days(),
		"selected":   selected,
		"custom":     custom,
		"choices":    freshness.Choices,
		"default":    freshness.DefaultInterval,
	})
}

// setIntervalHandler saves the interval chosen in the editing form
func (s *Server) setIntervalHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}
	if err := r.ParseForm(); err != nil {
		renderError(w, r, fmt.Errorf("invalid form data"), http.StatusBadRequest)
		return
	}

	interval := freshness.ResolveSelection(r.FormValue("interval"), r.FormValue("custom_interval"))
	if err := s.db.SetReviewInterval(r.Context(), id, interval); err != nil {
		s.renderLookupError(w, r, err)
		return
	}

	log.Printf("[INFO] review interval of article %d set to %d days", id, interval.Days())
	renderJSON(w, r, http.StatusOK, map[string]any{"article_id": id, "interval": interval.Days()})
}

// deleteArticleHandler removes an article
func (s *Server) deleteArticleHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	if err := s.db.DeleteArticle(r.Context(), id); err != nil {
		s.renderLookupError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// getThresholdHandler returns the site-wide staleness threshold
func (s *Server) getThresholdHandler(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, r, http.StatusOK, map[string]any{"days": s.threshold(r.Context())})
}

// setThresholdHandler saves the site-wide staleness threshold
func (s *Server) setThresholdHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		renderError(w, r, fmt.Errorf("invalid form data"), http.StatusBadRequest)
		return
	}

	days, err := strconv.Atoi(strings.TrimSpace(r.FormValue("days")))
	if err != nil || days < 1 {
		renderError(w, r, fmt.Errorf("days must be a positive integer"), http.StatusBadRequest)
		return
	}

	saved, err := s.db.SetThreshold(r.Context(), days)
	if err != nil {
		log.Printf("[ERROR] failed to save staleness threshold: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]any{"days": saved})
}

// listSourcesHandler returns all registered sources
func (s *Server) listSourcesHandler(w http.ResponseWriter, r *http.Request) {
	sources, err := s.db.GetSources(r.Context(), false)
	if err != nil {
		log.Printf("[ERROR] failed to get sources: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	res := make([]sourceResponse, 0, len(sources))
	for _, src := range sources {
		res = append(res, sourceResponse{ID: src.ID, URL: src.URL, Title: src.Title, Enabled: src.Enabled,
			LastSynced: src.LastSynced, ErrorCount: src.ErrorCount, LastError: src.LastError})
	}
	renderJSON(w, r, http.StatusOK, res)
}

// createSourceHandler registers a new site feed
func (s *Server) createSourceHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		renderError(w, r, fmt.Errorf("invalid form data"), http.StatusBadRequest)
		return
	}

	feedURL := strings.TrimSpace(r.FormValue("url"))
	if feedURL == "" {
		renderError(w, r, fmt.Errorf("feed URL is required"), http.StatusBadRequest)
		return
	}
	if u, err := url.Parse(feedURL); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		renderError(w, r, fmt.Errorf("invalid feed URL"), http.StatusBadRequest)
		return
	}

	src := &domain.Source{URL: feedURL, Title: strings.TrimSpace(r.FormValue("title")), Enabled: true}
	if err := s.db.CreateSource(r.Context(), src); err != nil {
		log.Printf("[ERROR] failed to create source: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	log.Printf("[INFO] added source %s", src.URL)
	renderJSON(w, r, http.StatusCreated, sourceResponse{ID: src.ID, URL: src.URL, Title: src.Title, Enabled: src.Enabled})
}

// sourceStatusHandler enables or disables scheduled imports of a source
func (s *Server) sourceStatusHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}
	if err := r.ParseForm(); err != nil {
		renderError(w, r, fmt.Errorf("invalid form data"), http.StatusBadRequest)
		return
	}

	enabled, err := strconv.ParseBool(r.FormValue("enabled"))
	if err != nil {
		renderError(w, r, fmt.Errorf("enabled must be true or false"), http.StatusBadRequest)
		return
	}

	if err := s.db.UpdateSourceStatus(r.Context(), id, enabled); err != nil {
		s.renderLookupError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]any{"source_id": id, "enabled": enabled})
}

// deleteSourceHandler removes a source with its articles
func (s *Server) deleteSourceHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	if err := s.db.DeleteSource(r.Context(), id); err != nil {
		s.renderLookupError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// syncSourceHandler imports a source immediately
func (s *Server) syncSourceHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	count, err := s.scheduler.SyncNow(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			renderError(w, r, err, http.StatusNotFound)
			return
		}
		log.Printf("[WARN] sync of source %d failed: %v", id, err)
		renderError(w, r, err, http.StatusBadGateway)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]any{"source_id": id, "articles": count})
}

// renderLookupError maps repository errors to 404 or 500
func (s *Server) renderLookupError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, repository.ErrNotFound) {
		renderError(w, r, err, http.StatusNotFound)
		return
	}
	log.Printf("[ERROR] %s %s: %v", r.Method, r.URL.Path, err)
	renderError(w, r, err, http.StatusInternalServerError)
}

// pathID parses the {id} path value
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid ID %q", r.PathValue("id"))
	}
	return id, nil
}

// pageParam returns the requested page, 1 if missing or invalid
// pageParam returns the requested page number clamped to [1, pages]
func pageParam(r *http.Request, pages int) int {
	p, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || p < 1 {
		return 1
	}
	return min(p, max(pages, 1))
}

func totalPages(total, pageSize int) int {
	if total == 0 || pageSize <= 0 {
		return 1
	}
	return (total + pageSize - 1) / pageSize
}
