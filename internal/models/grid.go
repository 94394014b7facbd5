package models

import (
	"strings"
	"time"
)

// WeekdayHeaders is the Monday-first header row of the month grid.
var WeekdayHeaders = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// DayCell is one slot of the month grid. Day is zero for padding slots.
type DayCell struct {
	Day     int
	Key     string
	Labels  []string
	IsToday bool
}

func (c DayCell) IsBlank() bool {
	return c.Day == 0
}

func (c DayCell) HasEvents() bool {
	return len(c.Labels) > 0
}

// Text is the cell's event text: labels joined by newlines.
func (c DayCell) Text() string {
	return JoinLabels(c.Labels)
}

// Week is one grid row, Monday through Sunday.
type Week [7]DayCell

// MonthGrid is the render model of one month.
type MonthGrid struct {
	Year  int
	Month int
	Title string
	Weeks []Week
}

// Rows returns the number of week rows, excluding the weekday header.
func (g MonthGrid) Rows() int {
	return len(g.Weeks)
}

// Cell looks up the slot holding day.
func (g MonthGrid) Cell(day int) (DayCell, bool) {
	for _, week := range g.Weeks {
		for _, cell := range week {
			if !cell.IsBlank() && cell.Day == day {
				return cell, true
			}
		}
	}
	return DayCell{}, false
}

// JoinLabels formats labels the way a day cell displays them.
func JoinLabels(labels []string) string {
	return strings.Join(labels, "\n")
}

// DaysIn returns the number of days in month of year.
func DaysIn(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekdayOffset is the column of day 1, with Monday as column 0.
func FirstWeekdayOffset(year, month int) int {
	weekday := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).Weekday()
	return (int(weekday) + 6) % 7
}

// BuildMonthGrid lays out a month in Monday-first weeks. Slots outside the
// month are blank. It is a pure function of its inputs; callers rebuild the
// whole grid on every state change.
func BuildMonthGrid(state *CalendarState, store *EventStore) MonthGrid {
	days := DaysIn(state.Year, state.Month)
	offset := FirstWeekdayOffset(state.Year, state.Month)
	rows := (days + offset + 6) / 7
	viewingToday := state.IsViewingToday()

	grid := MonthGrid{
		Year:  state.Year,
		Month: state.Month,
		Title: state.Title(),
		Weeks: make([]Week, rows),
	}

	for day := 1; day <= days; day++ {
		slot := offset + day - 1
		key := state.DateKey(day)

		cell := DayCell{
			Day:     day,
			Key:     key,
			IsToday: viewingToday && day == state.Today.Day(),
		}
		if store != nil {
			if labels, ok := store.Labels(key); ok {
				cell.Labels = labels
			}
		}

		grid.Weeks[slot/7][slot%7] = cell
	}

	return grid
}
