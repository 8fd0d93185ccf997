package freshness

import (
	"math"
	"time"
)

// DefaultThreshold is the site-wide staleness threshold in days
const DefaultThreshold = 30

// MaxThreshold caps the threshold so the number of seconds it spans fits into int64
const MaxThreshold = math.MaxInt32

const secondsPerDay = 86400

// IsStale reports whether more than thresholdDays*86400 seconds elapsed between lastModified and now.
// The comparison is strict, an article exactly at the threshold is not stale. Unlike Evaluator this
// rule counts elapsed whole seconds and ignores calendar days and timezones. A zero lastModified is
// never stale.
func IsStale(lastModified, now time.Time, thresholdDays int) bool {
	if lastModified.IsZero() {
		return false
	}
	thresholdDays = max(min(thresholdDays, MaxThreshold), -MaxThreshold)
	return now.Unix()-lastModified.Unix() > int64(thresholdDays)*secondsPerDay
}

// NormalizeThreshold sanitizes a threshold the way the settings form does: the absolute value
// is used, zero falls back to DefaultThreshold and anything above MaxThreshold is capped
func NormalizeThreshold(days int) int {
	switch {
	case days == 0:
		return DefaultThreshold
	case days > MaxThreshold || days < -MaxThreshold:
		return MaxThreshold
	case days < 0:
		return -days
	}
	return days
}
