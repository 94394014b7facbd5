package components

import (
	"strconv"

	"calendar-gui/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// DayCell is a tappable month-grid slot showing the day number over the
// day's event labels.
type DayCell struct {
	widget.BaseWidget

	day       int
	isToday   bool
	hasEvents bool

	dateLabel        *widget.Label
	dateBackground   *canvas.Rectangle
	eventsLabel      *widget.Label
	eventsBackground *canvas.Rectangle

	onTapped func(day int)
}

var _ fyne.Tappable = (*DayCell)(nil)

// NewDayCell creates the cell for one day of the grid; onTapped receives the day number
func NewDayCell(cell models.DayCell, onTapped func(day int)) *DayCell {
	c := &DayCell{
		day:      cell.Day,
		isToday:  cell.IsToday,
		onTapped: onTapped,
	}

	c.dateLabel = widget.NewLabelWithStyle(strconv.Itoa(cell.Day), fyne.TextAlignCenter, fyne.TextStyle{})
	c.dateBackground = canvas.NewRectangle(CellBackground)
	if cell.IsToday {
		c.dateBackground.FillColor = TodayHighlight
	}

	c.eventsLabel = widget.NewLabel("")
	c.eventsLabel.Wrapping = fyne.TextWrapWord
	c.eventsLabel.SizeName = theme.SizeNameCaptionText
	c.eventsBackground = canvas.NewRectangle(CellBackground)

	c.ExtendBaseWidget(c)
	c.applyEvents(cell.Labels)

	return c
}

// CreateRenderer stacks the date strip above the events area inside a bordered frame
func (c *DayCell) CreateRenderer() fyne.WidgetRenderer {
	frame := canvas.NewRectangle(CellBackground)
	frame.StrokeColor = CellBorder
	frame.StrokeWidth = 1

	date := container.NewStack(c.dateBackground, c.dateLabel)
	events := container.NewStack(c.eventsBackground, c.eventsLabel)

	return widget.NewSimpleRenderer(container.NewStack(
		frame,
		container.NewBorder(date, nil, nil, nil, events),
	))
}

// Tapped opens the day's event dialog through the grid's handler.
func (c *DayCell) Tapped(_ *fyne.PointEvent) {
	if c.onTapped != nil {
		c.onTapped(c.day)
	}
}

// SetEvents replaces the displayed labels.
func (c *DayCell) SetEvents(labels []string) {
	c.applyEvents(labels)
	c.eventsLabel.Refresh()
	c.eventsBackground.Refresh()
}

// applyEvents sets text and background without refreshing
func (c *DayCell) applyEvents(labels []string) {
	c.eventsLabel.Text = models.JoinLabels(labels)
	c.hasEvents = len(labels) > 0
	if c.hasEvents {
		c.eventsBackground.FillColor = EventHighlight
	} else {
		c.eventsBackground.FillColor = CellBackground
	}
}

// IsToday reports whether the cell carries the today highlight
func (c *DayCell) IsToday() bool {
	return c.isToday
}

// EventsText returns the displayed event labels
func (c *DayCell) EventsText() string {
	return c.eventsLabel.Text
}

// HasEvents reports whether the events area is highlighted
func (c *DayCell) HasEvents() bool {
	return c.hasEvents
}
