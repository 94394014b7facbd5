package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

var todayBoxSize = fyne.NewSize(200, 40)

// InfoPanel is the right-hand pane: today's date in a fixed highlighted box
// above a growable summary of every recorded event.
type InfoPanel struct {
	container    *fyne.Container
	todayLabel   *widget.Label
	summaryLabel *widget.Label
}

// NewInfoPanel creates the panel with empty today and summary text
func NewInfoPanel() *InfoPanel {
	todayLabel := widget.NewLabel("")
	summaryLabel := widget.NewLabel("")
	summaryLabel.Wrapping = fyne.TextWrapWord

	heading := widget.NewLabelWithStyle("Event Information", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	todayBox := container.NewGridWrap(todayBoxSize, container.NewStack(
		canvas.NewRectangle(TodayHighlight),
		todayLabel,
	))

	summaryBox := container.NewStack(
		canvas.NewRectangle(EventHighlight),
		container.NewVScroll(summaryLabel),
	)

	top := container.NewVBox(
		heading,
		widget.NewLabel("Today:"),
		todayBox,
		widget.NewLabel("Events Added:"),
	)

	return &InfoPanel{
		container:    container.NewBorder(top, nil, nil, nil, summaryBox),
		todayLabel:   todayLabel,
		summaryLabel: summaryLabel,
	}
}

// GetContainer returns the panel container
func (ip *InfoPanel) GetContainer() *fyne.Container {
	return ip.container
}

// SetToday sets the text of the today box
func (ip *InfoPanel) SetToday(text string) {
	ip.todayLabel.SetText(text)
}

func (ip *InfoPanel) Today() string {
	return ip.todayLabel.Text
}

// SetSummary replaces the event summary text
func (ip *InfoPanel) SetSummary(text string) {
	ip.summaryLabel.SetText(text)
}

func (ip *InfoPanel) Summary() string {
	return ip.summaryLabel.Text
}
