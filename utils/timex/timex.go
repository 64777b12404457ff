// File: timex.go
// Title: Calendar Date Utilities
// Description: Date ranges, lazy date sequences, ISO week handling and day
//              differences computed on calendar fields.
// Author: katlib authors
// Version: v0.2.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.2.0: Date ranges, ISO weeks and relative formatting

package timex

import (
	"iter"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/LukasForst/katlib/core/errors"
)

const module = "timex"

// ===============================
// Date Conversion
// ===============================

// StartOfDay returns midnight of t's day in t's location
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ToLocalDate returns the date t falls on in loc. A nil loc means UTC.
func ToLocalDate(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return StartOfDay(t.In(loc))
}

// ToUTCDate returns the date t falls on in UTC
func ToUTCDate(t time.Time) time.Time {
	return ToLocalDate(t, time.UTC)
}

// ===============================
// Ranges and Sequences
// ===============================

// DateSeq yields every date from from to to, both inclusive, in ascending
// order. Nothing is yielded when to is before from.
func DateSeq(from, to time.Time) iter.Seq[time.Time] {
	start, end := StartOfDay(from), StartOfDay(to)
	return func(yield func(time.Time) bool) {
		for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
			if !yield(day) {
				return
			}
		}
	}
}

// InvertedDateSeq yields the dates of DateSeq(from, to) from to down to from
func InvertedDateSeq(from, to time.Time) iter.Seq[time.Time] {
	start, end := StartOfDay(from), StartOfDay(to)
	return func(yield func(time.Time) bool) {
		for day := end; !day.Before(start); day = day.AddDate(0, 0, -1) {
			if !yield(day) {
				return
			}
		}
	}
}

// DateRange collects DateSeq(from, to)
func DateRange(from, to time.Time) []time.Time {
	result := make([]time.Time, 0, max(DayDifference(from, to)+1, 0))
	for day := range DateSeq(from, to) {
		result = append(result, day)
	}
	return result
}

// DaysInInterval returns the number of dates between from and to, both
// inclusive. It fails when to is before from.
func DaysInInterval(from, to time.Time) (int, error) {
	days := DayDifference(from, to)
	if days < 0 {
		return 0, errors.InvalidArgument(module, "DaysInInterval", "to must not be before from").
			WithDetail("from", from.Format(time.DateOnly)).
			WithDetail("to", to.Format(time.DateOnly))
	}
	return days + 1, nil
}

// DayDifference returns the number of calendar days from a to b.
// The result is negative when b is before a.
func DayDifference(a, b time.Time) int {
	start := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(end.Sub(start).Hours() / 24)
}

// ===============================
// Weeks
// ===============================

// WeekOfYear returns the ISO 8601 week number of t
func WeekOfYear(t time.Time) int {
	_, week := t.ISOWeek()
	return week
}

// SetWeekOfYearMonday returns the Monday of the given ISO week of t's ISO
// year, at midnight in t's location.
func SetWeekOfYearMonday(t time.Time, week int) time.Time {
	year, _ := t.ISOWeek()
	// January 4th is always in week one
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, t.Location())
	offset := (int(jan4.Weekday()) + 6) % 7
	return jan4.AddDate(0, 0, -offset+(week-1)*7)
}

// ===============================
// Durations
// ===============================

// DurationInMilli returns the absolute distance between a and b in milliseconds
func DurationInMilli(a, b time.Time) int64 {
	d := b.Sub(a)
	if d < 0 {
		d = -d
	}
	return d.Milliseconds()
}

// Relative describes t relative to now, e.g. "3 hours ago" or "2 days from now"
func Relative(t, now time.Time) string {
	return humanize.RelTime(t, now, "ago", "from now")
}
