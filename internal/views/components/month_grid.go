package components

import (
	"calendar-gui/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

// MonthGrid displays a models.MonthGrid as a seven-column grid headed by the
// weekday names. Render discards the previous cells and rebuilds from scratch.
type MonthGrid struct {
	container *fyne.Container
	cells     map[string]*DayCell
	rows      int

	dayTappedHandler func(day int)
}

// NewMonthGrid creates an empty grid; call Render to fill it
func NewMonthGrid() *MonthGrid {
	return &MonthGrid{
		container: container.NewGridWithColumns(len(models.WeekdayHeaders)),
		cells:     make(map[string]*DayCell),
	}
}

// GetContainer returns the grid container
func (mg *MonthGrid) GetContainer() *fyne.Container {
	return mg.container
}

// SetDayTappedHandler sets the handler called with the tapped day number
func (mg *MonthGrid) SetDayTappedHandler(handler func(day int)) {
	mg.dayTappedHandler = handler
}

// Render replaces the grid contents with grid.
func (mg *MonthGrid) Render(grid models.MonthGrid) {
	objects := make([]fyne.CanvasObject, 0, (grid.Rows()+1)*len(models.WeekdayHeaders))
	for _, name := range models.WeekdayHeaders {
		objects = append(objects, newWeekdayHeader(name))
	}

	cells := make(map[string]*DayCell)
	for _, week := range grid.Weeks {
		for _, slot := range week {
			if slot.IsBlank() {
				objects = append(objects, newBlankCell())
				continue
			}
			cell := NewDayCell(slot, mg.onDayTapped)
			cells[slot.Key] = cell
			objects = append(objects, cell)
		}
	}

	mg.cells = cells
	mg.rows = grid.Rows() + 1
	mg.container.Objects = objects
	mg.container.Refresh()
}

// onDayTapped forwards cell taps to the current handler
func (mg *MonthGrid) onDayTapped(day int) {
	if mg.dayTappedHandler != nil {
		mg.dayTappedHandler(day)
	}
}

// UpdateDay changes the event text of a displayed day. It reports false when
// key is not part of the displayed month.
func (mg *MonthGrid) UpdateDay(key string, labels []string) bool {
	cell, ok := mg.cells[key]
	if !ok {
		return false
	}
	cell.SetEvents(labels)
	return true
}

// Cell returns the displayed cell for key
func (mg *MonthGrid) Cell(key string) (*DayCell, bool) {
	cell, ok := mg.cells[key]
	return cell, ok
}

// Rows counts grid rows including the weekday header.
func (mg *MonthGrid) Rows() int {
	return mg.rows
}

// CellCount returns the number of day cells, excluding padding
func (mg *MonthGrid) CellCount() int {
	return len(mg.cells)
}

// newWeekdayHeader creates one bold weekday name cell
func newWeekdayHeader(name string) fyne.CanvasObject {
	text := canvas.NewText(name, WeekdayForeground)
	text.Alignment = fyne.TextAlignCenter
	text.TextStyle = fyne.TextStyle{Bold: true}

	return container.NewStack(
		canvas.NewRectangle(WeekdayBackground),
		container.NewPadded(text),
	)
}

// newBlankCell creates an inert padding slot
func newBlankCell() fyne.CanvasObject {
	blank := canvas.NewRectangle(CellBackground)
	blank.StrokeColor = CellBorder
	blank.StrokeWidth = 1
	return blank
}
