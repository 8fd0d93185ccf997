package freshness

import (
	"math"
	"strconv"
	"strings"
)

// Interval is a per-article review interval in days. Zero means no interval is configured.
type Interval int

// NotConfigured is the interval of an article without a review schedule
const NotConfigured Interval = 0

// DefaultInterval is used by the editing form when nothing valid was selected (4 months)
const DefaultInterval Interval = 120

// CustomChoice is the form value selecting a custom number of days
const CustomChoice = "custom"

// Choice is a predefined interval offered by the editing form
type Choice struct {
	Days  Interval `json:"days"`
	Label string   `json:"label"`
}

// Choices lists predefined intervals in the order they are offered
var Choices = []Choice{
	{Days: 14, Label: "2 Weeks"},
	{Days: 30, Label: "1 Month"},
	{Days: 60, Label: "2 Months"},
	{Days: 90, Label: "3 Months"},
	{Days: 120, Label: "4 Months"},
	{Days: 180, Label: "6 Months"},
	{Days: 365, Label: "1 Year"},
}

// NewInterval normalizes a day count, anything non-positive becomes NotConfigured
func NewInterval(days int) Interval {
	if days <= 0 {
		return NotConfigured
	}
	return Interval(days)
}

// ParseInterval normalizes a stored or submitted value. Non-numeric and non-positive
// values become NotConfigured, fractional values are truncated to whole days.
func ParseInterval(raw string) Interval {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return NotConfigured
	}
	if days, err := strconv.Atoi(raw); err == nil {
		return NewInterval(days)
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || f < 1 || f >= math.MaxInt32 {
		return NotConfigured
	}
	return NewInterval(int(f))
}

// Configured reports whether the interval holds a positive number of days
func (i Interval) Configured() bool {
	return i > 0
}

// Days returns the interval length in days, 0 if not configured
func (i Interval) Days() int {
	if !i.Configured() {
		return 0
	}
	return int(i)
}

// IsChoice reports whether the interval is one of the predefined choices
func (i Interval) IsChoice() bool {
	for _, c := range Choices {
		if c.Days == i {
			return true
		}
	}
	return false
}

// ResolveSelection turns the editing form fields into the interval to store.
// A custom selection needs a positive custom value, a predefined selection must be one
// of Choices, everything else falls back to DefaultInterval.
func ResolveSelection(selected, custom string) Interval {
	selected = strings.TrimSpace(selected)
	switch {
	case selected == "":
		return DefaultInterval
	case selected == CustomChoice:
		if days, err := strconv.Atoi(strings.TrimSpace(custom)); err == nil && days > 0 {
			return Interval(days)
		}
		return DefaultInterval
	}

	days, err := strconv.Atoi(selected)
	if err != nil || days <= 0 {
		return DefaultInterval
	}
	if iv := Interval(days); iv.IsChoice() {
		return iv
	}
	return DefaultInterval
}

// SelectionFor returns the form state for the currently stored interval: the selected
// option value and, for intervals outside Choices, the custom days text.
func SelectionFor(current Interval) (selected, custom string) {
	if !current.Configured() {
		return strconv.Itoa(int(DefaultInterval)), ""
	}
	if current.IsChoice() {
		return strconv.Itoa(int(current)), ""
	}
	return CustomChoice, strconv.Itoa(int(current))
}
