package components

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const headerTitleSize = 24

// Header is the banner with the month title between the navigation buttons.
type Header struct {
	container  *fyne.Container
	title      *canvas.Text
	prevButton *widget.Button
	nextButton *widget.Button

	prevHandler func()
	nextHandler func()
}

// NewHeader creates the banner with its navigation buttons
func NewHeader() *Header {
	h := &Header{}
	h.createComponents()
	h.buildLayout()
	return h
}

// createComponents initializes the title text and buttons
func (h *Header) createComponents() {
	h.title = canvas.NewText("Calendar", color.White)
	h.title.Alignment = fyne.TextAlignCenter
	h.title.TextStyle = fyne.TextStyle{Bold: true}
	h.title.TextSize = headerTitleSize

	h.prevButton = widget.NewButton("<<", func() {
		if h.prevHandler != nil {
			h.prevHandler()
		}
	})
	h.nextButton = widget.NewButton(">>", func() {
		if h.nextHandler != nil {
			h.nextHandler()
		}
	})
}

// buildLayout places the buttons either side of the banner
func (h *Header) buildLayout() {
	banner := container.NewStack(
		canvas.NewRectangle(HeaderBackground),
		container.NewPadded(h.title),
	)

	h.container = container.NewBorder(
		nil, nil,
		h.prevButton,
		h.nextButton,
		banner,
	)
}

// GetContainer returns the header container
func (h *Header) GetContainer() *fyne.Container {
	return h.container
}

// SetTitle updates the banner text
func (h *Header) SetTitle(title string) {
	h.title.Text = title
	h.title.Refresh()
}

// Title returns the banner text
func (h *Header) Title() string {
	return h.title.Text
}

// SetPrevHandler sets the handler for the << button
func (h *Header) SetPrevHandler(handler func()) {
	h.prevHandler = handler
}

// SetNextHandler sets the handler for the >> button
func (h *Header) SetNextHandler(handler func()) {
	h.nextHandler = handler
}

// PrevButton is exposed for UI tests.
func (h *Header) PrevButton() *widget.Button {
	return h.prevButton
}

// NextButton returns the >> button
func (h *Header) NextButton() *widget.Button {
	return h.nextButton
}
