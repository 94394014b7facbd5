package views

import (
	"image/color"

	"calendar-gui/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// CalendarTheme pins the light variant so the fixed highlight colors keep
// readable text, and uses the calendar's page background.
type CalendarTheme struct {
	fyne.Theme
}

// NewCalendarTheme wraps the default theme
func NewCalendarTheme() fyne.Theme {
	return &CalendarTheme{Theme: theme.DefaultTheme()}
}

// Color ignores the requested variant and always answers for the light one
func (t *CalendarTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	if name == theme.ColorNameBackground {
		return components.PageBackground
	}
	return t.Theme.Color(name, theme.VariantLight)
}
