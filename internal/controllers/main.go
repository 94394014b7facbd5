package controllers

import (
	"fmt"
	"io"

	"calendar-gui/internal/logger"
	"calendar-gui/internal/models"
	"calendar-gui/internal/services"
	"calendar-gui/internal/views"
	"calendar-gui/internal/views/components"

	"fyne.io/fyne/v2"
)

// MainController applies the user's gestures to the calendar state and
// pushes the results to the view. All methods run on the UI goroutine.
type MainController struct {
	// Models
	state *models.CalendarState
	store *models.EventStore

	// Services
	exportService *services.ExportService

	// Views
	mainView *views.MainView

	logger         logger.Logger
	exportFileName string
}

// NewMainController creates a controller over the given state and store
func NewMainController(
	state *models.CalendarState,
	store *models.EventStore,
	exportService *services.ExportService,
	log logger.Logger,
) *MainController {
	return &MainController{
		state:          state,
		store:          store,
		exportService:  exportService,
		logger:         log,
		exportFileName: "calendar.ics",
	}
}

// SetMainView associates the view, connects its handlers and draws the
// initial month.
func (mc *MainController) SetMainView(view *views.MainView) {
	mc.mainView = view

	view.SetPrevMonthHandler(mc.PrevMonth)
	view.SetNextMonthHandler(mc.NextMonth)
	view.SetDayTappedHandler(func(day int) {
		mc.OpenEventDialog(day)
	})

	view.SetToday(mc.state.TodayKey())
	view.SetEventSummary(mc.store.Summary())
	mc.Render()
}

// SetExportFileName sets the file name suggested by the export dialog
func (mc *MainController) SetExportFileName(name string) {
	mc.exportFileName = name
}

// Render rebuilds the month grid from the current state.
func (mc *MainController) Render() {
	grid := models.BuildMonthGrid(mc.state, mc.store)
	if mc.mainView != nil {
		mc.mainView.RenderMonth(grid)
	}

	mc.logger.Debug("MainController", "month rendered", map[string]interface{}{
		"year":  grid.Year,
		"month": grid.Month,
		"rows":  grid.Rows(),
	})
}

// PrevMonth moves the view one month back.
func (mc *MainController) PrevMonth() {
	if mc.dialogOpen() {
		return
	}
	mc.state.PrevMonth()
	mc.logNavigation("previous")
	mc.Render()
}

// NextMonth moves the view one month forward.
func (mc *MainController) NextMonth() {
	if mc.dialogOpen() {
		return
	}
	mc.state.NextMonth()
	mc.logNavigation("next")
	mc.Render()
}

// logNavigation records the month the view moved to
func (mc *MainController) logNavigation(direction string) {
	mc.logger.Info("MainController", "month changed", map[string]interface{}{
		"direction": direction,
		"year":      mc.state.Year,
		"month":     mc.state.Month,
	})
}

// OpenEventDialog shows the add-event dialog for a day of the viewed month.
// While a dialog is open further requests return the open one.
func (mc *MainController) OpenEventDialog(day int) *components.EventDialog {
	if mc.mainView == nil {
		return nil
	}
	if mc.dialogOpen() {
		return mc.mainView.ActiveDialog()
	}

	key := mc.state.DateKey(day)
	d := mc.mainView.ShowEventDialog(key, func(dateKey string, form *models.EventForm) {
		mc.SaveEvent(dateKey, form)
	})

	mc.logger.Debug("MainController", "event dialog opened", map[string]interface{}{
		"date_key":    key,
		"field_state": d.Form().State().String(),
	})
	return d
}

// SaveEvent records the label chosen in form for dateKey. It reports whether
// anything was recorded.
func (mc *MainController) SaveEvent(dateKey string, form *models.EventForm) bool {
	label, ok := form.Resolve()
	if !ok {
		mc.logger.Debug("MainController", "event discarded", map[string]interface{}{
			"date_key":    dateKey,
			"category":    form.Category,
			"field_state": form.State().String(),
		})
		return false
	}

	labels := mc.store.Append(dateKey, label)

	if mc.mainView != nil {
		mc.mainView.UpdateDayEvents(dateKey, labels)
		mc.mainView.SetEventSummary(mc.store.Summary())
	}

	mc.logger.Info("MainController", "event saved", map[string]interface{}{
		"date_key": dateKey,
		"label":    label,
		"count":    len(labels),
	})
	return true
}

// ExportCalendar asks for a destination and writes the store as iCalendar.
func (mc *MainController) ExportCalendar() {
	if mc.mainView == nil {
		return
	}

	mc.mainView.ShowExportDialog(mc.exportFileName, func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			mc.handleError("Export failed", err)
			return
		}
		if writer == nil {
			return
		}

		stats, err := mc.ExportTo(writer)
		if err != nil {
			mc.handleError("Export failed", err)
			return
		}

		mc.mainView.ShowInfo("Export complete",
			fmt.Sprintf("%d events written to %s", stats.Events, writer.URI().Name()))
	})
}

// ExportTo writes the store to writer and closes it.
func (mc *MainController) ExportTo(writer io.WriteCloser) (services.ExportStats, error) {
	stats, err := mc.exportService.Export(writer)
	if closeErr := writer.Close(); err == nil && closeErr != nil {
		err = fmt.Errorf("close export file: %w", closeErr)
	}
	return stats, err
}

// dialogOpen reports whether the app is outside the idle state
func (mc *MainController) dialogOpen() bool {
	return mc.mainView != nil && mc.mainView.DialogOpen()
}

// handleError logs err and shows it to the user
func (mc *MainController) handleError(title string, err error) {
	mc.logger.Error("MainController", err, map[string]interface{}{
		"title": title,
	})

	if mc.mainView != nil {
		mc.mainView.ShowError(fmt.Errorf("%s: %w", title, err))
	}
}

// State returns a copy of the calendar state.
func (mc *MainController) State() models.CalendarState {
	return *mc.state
}

// Store returns the event store shared with the view
func (mc *MainController) Store() *models.EventStore {
	return mc.store
}

// Shutdown logs the final store size; the store itself is not kept.
func (mc *MainController) Shutdown() {
	mc.logger.Info("MainController", "shutdown", map[string]interface{}{
		"dates_with_events": mc.store.Len(),
	})
}
