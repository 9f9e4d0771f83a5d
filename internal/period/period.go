// Package period derives day counts from an inclusive date range and a
// weekly attendance frequency.
package period

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// DateLayout is the ISO date format used for input and display.
const DateLayout = "2006-01-02"

const secondsPerDay = 24 * 60 * 60

var (
	// ErrInvalidRange is returned when the start date is after the end date.
	// It is fatal for a planning run.
	ErrInvalidRange = errors.New("period: start date must be on or before the end date")
	// ErrDaysPerWeek is returned for an attendance count outside 1..7.
	ErrDaysPerWeek = errors.New("period: days per week must be between 1 and 7")
)

// Span is an inclusive calendar range with its derived day counts.
type Span struct {
	Start         time.Time
	End           time.Time
	DaysPerWeek   int
	TotalDays     int
	AttendingDays int
}

// Compute validates the range and derives TotalDays and AttendingDays.
// Times are truncated to their calendar date.
func Compute(start, end time.Time, daysPerWeek int) (Span, error) {
	start, end = dateOf(start), dateOf(end)
	if start.After(end) {
		return Span{}, fmt.Errorf("%w (%s > %s)", ErrInvalidRange, start.Format(DateLayout), end.Format(DateLayout))
	}
	if daysPerWeek < 1 || daysPerWeek > 7 {
		return Span{}, fmt.Errorf("%w: got %d", ErrDaysPerWeek, daysPerWeek)
	}

	// Both are UTC midnights, so whole days divide evenly. Duration would
	// saturate past about 292 years.
	total := int((end.Unix()-start.Unix())/secondsPerDay) + 1
	weeks := float64(total) / 7

	return Span{
		Start:         start,
		End:           end,
		DaysPerWeek:   daysPerWeek,
		TotalDays:     total,
		AttendingDays: int(math.Floor(weeks * float64(daysPerWeek))),
	}, nil
}

// TotalWeeks is TotalDays/7, unrounded.
func (s Span) TotalWeeks() float64 {
	return float64(s.TotalDays) / 7
}

// String renders the range as "2024-01-01 → 2024-01-14".
func (s Span) String() string {
	return s.Start.Format(DateLayout) + " → " + s.End.Format(DateLayout)
}

// dateOf drops the clock and zone so DST shifts cannot skew the day count.
func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
