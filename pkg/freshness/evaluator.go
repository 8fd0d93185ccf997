// Package freshness decides whether an article is due for review. It implements two independent
// rules: the per-article review interval evaluated with calendar-day arithmetic (Evaluator) and the
// site-wide staleness threshold evaluated with elapsed seconds (IsStale). Both are pure functions of
// their arguments and safe for concurrent use.
package freshness

import (
	"fmt"
	"time"
)

// Status is the freshness classification of an article
type Status string

// enum of freshness classifications
const (
	StatusNotSet      Status = "Not Set"
	StatusUpdated     Status = "Updated"
	StatusNeedsUpdate Status = "Needs Update"
	StatusError       Status = "Error"
	StatusDateError   Status = "Date Error"
)

// badge colors for each classification
const (
	ColorGrey   = "#808080"
	ColorGreen  = "#28a745"
	ColorRed    = "#dc3545"
	ColorOrange = "#FFA500"
)

// DefaultDateLayout is used for details when the evaluator has no layout set
const DefaultDateLayout = "2006-01-02"

// Result is the outcome of a freshness evaluation. It is computed on every request and never stored.
type Result struct {
	Status     Status    `json:"status"`
	BadgeColor string    `json:"badge_color"`
	Details    string    `json:"details"`
	DueAt      time.Time `json:"due_at,omitzero"` // set only when a due date was computed
}

// Stale reports whether the result asks for a review
func (r Result) Stale() bool {
	return r.Status == StatusNeedsUpdate
}

// Evaluator applies the review interval rule. Timezone is an IANA zone name used for all date
// arithmetic and display, empty means the host zone. DateLayout is a Go time layout for details.
type Evaluator struct {
	Timezone   string
	DateLayout string
}

// Evaluate classifies an article modified at lastModified with the given review interval as of now.
// The due date is lastModified shifted by interval calendar days in the evaluator's timezone, and an
// article is Updated up to and including the due instant. Evaluate never fails, anomalies are
// reported as Error or Date Error results.
func (e Evaluator) Evaluate(lastModified time.Time, interval Interval, now time.Time) Result {
	if !interval.Configured() {
		return Result{
			Status:     StatusNotSet,
			BadgeColor: ColorGrey,
			Details:    "No freshness interval defined for this post.",
		}
	}

	if lastModified.IsZero() {
		return Result{
			Status:     StatusError,
			BadgeColor: ColorOrange,
			Details:    "Could not retrieve the last modified date for this post.",
		}
	}

	due, err := e.dueDate(lastModified, interval)
	if err != nil {
		return Result{
			Status:     StatusDateError,
			BadgeColor: ColorOrange,
			Details:    "Error during date calculation: " + err.Error(),
		}
	}

	layout := e.DateLayout
	if layout == "" {
		layout = DefaultDateLayout
	}
	details := fmt.Sprintf("Last Modified: %s. Interval: %d days. Review Due: %s.",
		lastModified.In(due.Location()).Format(layout), interval.Days(), due.Format(layout))

	if now.After(due) {
		return Result{Status: StatusNeedsUpdate, BadgeColor: ColorRed, Details: details, DueAt: due}
	}
	return Result{Status: StatusUpdated, BadgeColor: ColorGreen, Details: details, DueAt: due}
}

// Location resolves the evaluator's timezone
func (e Evaluator) Location() (*time.Location, error) {
	if e.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(e.Timezone)
	if err != nil {
		return nil, fmt.Errorf("unknown timezone %q: %w", e.Timezone, err)
	}
	return loc, nil
}

// dueDate adds interval calendar days to lastModified in the evaluator's timezone,
// so a daylight saving change between the two dates keeps the wall clock time
func (e Evaluator) dueDate(lastModified time.Time, interval Interval) (time.Time, error) {
	loc, err := e.Location()
	if err != nil {
		return time.Time{}, err
	}

	local := lastModified.In(loc)
	due := local.AddDate(0, 0, interval.Days())
	if !due.After(local) || due.Year() > 9999 {
		return time.Time{}, fmt.Errorf("due date out of range for %s plus %d days", local.Format(time.RFC3339), interval.Days())
	}
	return due, nil
}
