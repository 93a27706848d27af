package helpers

import (
	"math/rand/v2"
	"time"
)

const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// FormatTimestamp renders ISO-8601 in UTC with millisecond precision
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// RandomPastTime returns a moment uniformly drawn from (now-window, now]
func RandomPastTime(now time.Time, window time.Duration) time.Time {
	if window <= 0 {
		return now
	}
	return now.Add(-time.Duration(rand.Int64N(int64(window))))
}
