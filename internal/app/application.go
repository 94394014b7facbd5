package app

import (
	"time"

	"calendar-gui/internal/config"
	"calendar-gui/internal/controllers"
	"calendar-gui/internal/logger"
	"calendar-gui/internal/models"
	"calendar-gui/internal/services"
	"calendar-gui/internal/shutdown"
	"calendar-gui/internal/views"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

const (
	AppName    = "Calendar GUI Application"
	AppID      = "com.calendargui.calendar"
	AppVersion = "1.0.0"
)

type Application struct {
	fyneApp  fyne.App
	window   fyne.Window
	config   *config.Config
	logger   logger.Logger
	shutdown *shutdown.Manager

	// MVC components
	controller *controllers.MainController
	view       *views.MainView

	// Models
	state *models.CalendarState
	store *models.EventStore
}

// NewApplication creates the fyne application and wires the calendar into it.
func NewApplication(cfg *config.Config, log logger.Logger) *Application {
	app.SetMetadata(fyne.AppMetadata{
		ID:      AppID,
		Name:    AppName,
		Version: AppVersion,
	})
	fyneApp := app.NewWithID(AppID)

	return newApplication(fyneApp, cfg, log, time.Now())
}

// newApplication builds the window and MVC components on fyneApp
func newApplication(fyneApp fyne.App, cfg *config.Config, log logger.Logger, today time.Time) *Application {
	fyneApp.Settings().SetTheme(views.NewCalendarTheme())

	window := fyneApp.NewWindow(cfg.Window.Title)
	window.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))
	window.CenterOnScreen()
	window.SetMaster()

	log.Info("Application", "starting application", map[string]interface{}{
		"version":       AppVersion,
		"window_width":  cfg.Window.Width,
		"window_height": cfg.Window.Height,
		"today":         today.Format(models.DateKeyLayout),
	})

	state := models.NewCalendarState(today)
	store := models.NewEventStore()
	exportService := services.NewExportService(store, log)

	controller := controllers.NewMainController(state, store, exportService, log)
	controller.SetExportFileName(cfg.ExportFileName)

	view := views.NewMainView(window)
	controller.SetMainView(view)

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		config:     cfg,
		logger:     log,
		shutdown:   shutdown.NewManager(log),
		controller: controller,
		view:       view,
		state:      state,
		store:      store,
	}

	application.shutdown.Register(controller)
	window.SetMainMenu(application.buildMainMenu())

	log.Info("Application", "initialization complete", nil)
	return application
}

// buildMainMenu creates the File and Navigate menus
func (a *Application) buildMainMenu() *fyne.MainMenu {
	file := fyne.NewMenu("File",
		fyne.NewMenuItem("Export iCalendar…", a.controller.ExportCalendar),
	)
	navigate := fyne.NewMenu("Navigate",
		fyne.NewMenuItem("Previous Month", a.controller.PrevMonth),
		fyne.NewMenuItem("Next Month", a.controller.NextMonth),
	)
	return fyne.NewMainMenu(file, navigate)
}

// Run shows the window and blocks in the fyne event loop until the window
// is closed or a termination signal arrives.
func (a *Application) Run() error {
	a.shutdown.Register(shutdown.Func(func() {
		fyne.Do(a.fyneApp.Quit)
	}))
	a.shutdown.Listen()

	a.window.SetCloseIntercept(func() {
		a.logger.Info("Application", "shutdown requested", nil)
		a.shutdown.Shutdown()
		a.window.Close()
	})

	a.view.Show()
	a.logger.Info("Application", "GUI displayed", nil)
	a.fyneApp.Run()

	a.shutdown.Shutdown()
	return nil
}

// Window returns the main window
func (a *Application) Window() fyne.Window {
	return a.window
}

// View returns the main view
func (a *Application) View() *views.MainView {
	return a.view
}
