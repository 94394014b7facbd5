package models

import (
	"fmt"
	"time"
)

// DateKeyLayout is the time layout matching DateKey output for four-digit years.
const DateKeyLayout = "2006-01-02"

// DateKey returns the canonical YYYY-MM-DD identifier for a calendar day.
func DateKey(year, month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

// CalendarState holds the month being viewed and the reference "today".
// Year is unbounded; Month is always kept within 1..12.
type CalendarState struct {
	Year  int
	Month int
	Today time.Time
}

// NewCalendarState starts the view on the month containing today.
func NewCalendarState(today time.Time) *CalendarState {
	return &CalendarState{
		Year:  today.Year(),
		Month: int(today.Month()),
		Today: today,
	}
}

// PrevMonth steps back one month, wrapping January to December of the prior year.
func (s *CalendarState) PrevMonth() {
	s.Month--
	if s.Month < 1 {
		s.Month = 12
		s.Year--
	}
}

// NextMonth steps forward one month, wrapping December to January of the next year.
func (s *CalendarState) NextMonth() {
	s.Month++
	if s.Month > 12 {
		s.Month = 1
		s.Year++
	}
}

// IsViewingToday reports whether the viewed month contains Today.
func (s *CalendarState) IsViewingToday() bool {
	return s.Year == s.Today.Year() && s.Month == int(s.Today.Month())
}

// Title is the header banner text, e.g. "October 2026".
func (s *CalendarState) Title() string {
	return fmt.Sprintf("%s %d", time.Month(s.Month), s.Year)
}

// DateKey returns the key for a day of the viewed month.
func (s *CalendarState) DateKey(day int) string {
	return DateKey(s.Year, s.Month, day)
}

// TodayKey returns the key of the reference date.
func (s *CalendarState) TodayKey() string {
	return DateKey(s.Today.Year(), int(s.Today.Month()), s.Today.Day())
}
