// Package timex provides calendar date helpers and injectable clocks.
//
// A date is a time.Time at midnight in its location; StartOfDay, ToLocalDate
// and ToUTCDate produce such values. Day arithmetic is done on calendar
// fields so daylight saving transitions never shift a result by a day.
//
// Week numbering follows ISO 8601: weeks start on Monday and the first week
// of a year is the one containing at least four days of that year.
//
// Code that needs the current time should accept a Provider so tests can
// substitute a FixedProvider:
//
//	func expiresIn(p timex.Provider, deadline time.Time) string {
//	    return timex.Relative(deadline, p.Now())
//	}
package timex
