package util

import (
	"time"
)

// AddTimeToDate keeps the calendar date of date and replaces the clock time
// with that of sourceTime, staying in date's location.
func AddTimeToDate(date time.Time, sourceTime time.Time) time.Time {
	newDateTime := time.Date(date.Year(), date.Month(), date.Day(), sourceTime.Hour(), sourceTime.Minute(), sourceTime.Second(), sourceTime.Nanosecond(), date.Location())

	return newDateTime
}
