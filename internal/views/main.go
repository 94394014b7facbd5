package views

import (
	"calendar-gui/internal/models"
	"calendar-gui/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
)

// gridPaneShare gives the month grid two thirds of the body width.
const gridPaneShare = 2.0 / 3.0

// MainView is the calendar window: header banner over a month grid and an
// info panel. It owns no calendar state; the controller pushes every change.
type MainView struct {
	window        fyne.Window
	mainContainer *fyne.Container
	header        *components.Header
	monthGrid     *components.MonthGrid
	infoPanel     *components.InfoPanel
	activeDialog  *components.EventDialog

	// Event handlers - connected to controller
	prevMonthHandler func()
	nextMonthHandler func()
	dayTappedHandler func(day int)
}

// NewMainView creates the view and installs it as the window content
func NewMainView(window fyne.Window) *MainView {
	view := &MainView{
		window: window,
	}

	view.initializeComponents()
	view.buildLayout()
	view.setupEventHandlers()

	return view
}

// initializeComponents creates all UI components
func (mv *MainView) initializeComponents() {
	mv.header = components.NewHeader()
	mv.monthGrid = components.NewMonthGrid()
	mv.infoPanel = components.NewInfoPanel()
}

// buildLayout constructs the main layout
func (mv *MainView) buildLayout() {
	body := container.NewHSplit(
		container.NewPadded(mv.monthGrid.GetContainer()),
		container.NewPadded(mv.infoPanel.GetContainer()),
	)
	body.SetOffset(gridPaneShare)

	mv.mainContainer = container.NewBorder(
		container.NewPadded(mv.header.GetContainer()), // top
		nil, // bottom
		nil, // left
		nil, // right
		body, // center
	)

	mv.window.SetContent(mv.mainContainer)
}

// setupEventHandlers connects component events to the controller handlers
func (mv *MainView) setupEventHandlers() {
	mv.header.SetPrevHandler(func() {
		if mv.prevMonthHandler != nil {
			mv.prevMonthHandler()
		}
	})

	mv.header.SetNextHandler(func() {
		if mv.nextMonthHandler != nil {
			mv.nextMonthHandler()
		}
	})

	mv.monthGrid.SetDayTappedHandler(func(day int) {
		if mv.dayTappedHandler != nil {
			mv.dayTappedHandler(day)
		}
	})
}

// Event handler setters - called by controller

// SetPrevMonthHandler sets the handler for the previous-month button
func (mv *MainView) SetPrevMonthHandler(handler func()) {
	mv.prevMonthHandler = handler
}

// SetNextMonthHandler sets the handler for the next-month button
func (mv *MainView) SetNextMonthHandler(handler func()) {
	mv.nextMonthHandler = handler
}

// SetDayTappedHandler sets the handler for day cell taps
func (mv *MainView) SetDayTappedHandler(handler func(day int)) {
	mv.dayTappedHandler = handler
}

// UI update methods - called by controller

// RenderMonth rebuilds the header title and the whole grid.
func (mv *MainView) RenderMonth(grid models.MonthGrid) {
	mv.header.SetTitle(grid.Title)
	mv.monthGrid.Render(grid)
}

// UpdateDayEvents refreshes one displayed day cell in place.
func (mv *MainView) UpdateDayEvents(key string, labels []string) bool {
	return mv.monthGrid.UpdateDay(key, labels)
}

// SetToday updates the today box of the info panel
func (mv *MainView) SetToday(text string) {
	mv.infoPanel.SetToday(text)
}

// SetEventSummary updates the event summary of the info panel
func (mv *MainView) SetEventSummary(summary string) {
	mv.infoPanel.SetSummary(summary)
}

// ShowEventDialog opens the add-event dialog for dateKey and remembers it as
// the active dialog.
func (mv *MainView) ShowEventDialog(dateKey string, onSave func(dateKey string, form *models.EventForm)) *components.EventDialog {
	d := components.NewEventDialog(dateKey, mv.window, onSave)
	mv.activeDialog = d
	d.Show()
	return d
}

// DialogOpen reports whether an event dialog is awaiting an answer.
func (mv *MainView) DialogOpen() bool {
	return mv.activeDialog != nil && mv.activeDialog.IsOpen()
}

// ActiveDialog returns the most recently opened event dialog, if any
func (mv *MainView) ActiveDialog() *components.EventDialog {
	return mv.activeDialog
}

// ShowExportDialog asks for a destination file for the iCalendar export.
func (mv *MainView) ShowExportDialog(fileName string, callback func(fyne.URIWriteCloser, error)) {
	save := dialog.NewFileSave(callback, mv.window)
	save.SetFileName(fileName)
	save.SetFilter(storage.NewExtensionFileFilter([]string{".ics"}))
	save.Show()
}

// ShowError displays an error dialog
func (mv *MainView) ShowError(err error) {
	dialog.ShowError(err, mv.window)
}

// ShowInfo displays an information dialog
func (mv *MainView) ShowInfo(title, message string) {
	dialog.ShowInformation(title, message, mv.window)
}

// GetContainer returns the main container
func (mv *MainView) GetContainer() *fyne.Container {
	return mv.mainContainer
}

// Header returns the header component
func (mv *MainView) Header() *components.Header {
	return mv.header
}

// MonthGrid returns the month grid component
func (mv *MainView) MonthGrid() *components.MonthGrid {
	return mv.monthGrid
}

// InfoPanel returns the info panel component
func (mv *MainView) InfoPanel() *components.InfoPanel {
	return mv.infoPanel
}

// Show displays the view
func (mv *MainView) Show() {
	mv.window.Show()
}
