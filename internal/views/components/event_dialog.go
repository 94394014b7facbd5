package components

import (
	"fmt"

	"calendar-gui/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

var eventDialogSize = fyne.NewSize(400, 300)

// EventDialog collects one event for a date. Its widgets only mirror the
// models.EventForm it owns; the form decides visibility and the final label.
type EventDialog struct {
	dateKey     string
	form        *models.EventForm
	selector    *widget.Select
	customEntry *widget.Entry
	dialog      *dialog.ConfirmDialog
	closed      bool

	saveHandler func(dateKey string, form *models.EventForm)
}

// NewEventDialog builds, but does not show, the dialog for dateKey.
// onSave is called at most once, when the user saves.
func NewEventDialog(dateKey string, parent fyne.Window, onSave func(dateKey string, form *models.EventForm)) *EventDialog {
	d := &EventDialog{
		dateKey:     dateKey,
		form:        models.NewEventForm(),
		saveHandler: onSave,
	}

	d.selector = widget.NewSelect(models.Categories, d.onCategoryChanged)
	d.selector.PlaceHolder = models.CategoryNone

	d.customEntry = widget.NewEntry()
	d.customEntry.OnChanged = d.form.SetCustomText

	content := container.NewVBox(
		widget.NewLabel(fmt.Sprintf("Select or Add Event for %s:", dateKey)),
		d.selector,
		widget.NewLabel("Custom Event (if 'Other' selected):"),
		d.customEntry,
	)

	d.dialog = dialog.NewCustomConfirm(
		fmt.Sprintf("Add Event for %s", dateKey),
		"Save Event",
		"Close",
		content,
		d.respond,
		parent,
	)
	d.dialog.Resize(eventDialogSize)

	d.applyFieldState(d.form.State())
	return d
}

// onCategoryChanged feeds the selector value into the form
func (d *EventDialog) onCategoryChanged(category string) {
	d.applyFieldState(d.form.Select(category))
}

// applyFieldState shows the custom entry only in the CustomTextVisible state
func (d *EventDialog) applyFieldState(state models.FieldState) {
	if state == models.CustomTextVisible {
		d.customEntry.Show()
	} else {
		d.customEntry.Hide()
	}
}

// respond runs once per dialog; later calls, such as the callback fired by
// hiding an already answered dialog, are ignored.
func (d *EventDialog) respond(save bool) {
	if d.closed {
		return
	}
	d.closed = true

	if save && d.saveHandler != nil {
		d.saveHandler(d.dateKey, d.form)
	}
}

// Show displays the dialog over its parent window
func (d *EventDialog) Show() {
	d.dialog.Show()
}

// Select picks a category as if chosen from the dropdown.
func (d *EventDialog) Select(category string) {
	if category == models.CategoryNone {
		d.selector.ClearSelected()
		return
	}
	d.selector.SetSelected(category)
}

// SetCustomText types into the custom event field.
func (d *EventDialog) SetCustomText(text string) {
	d.customEntry.SetText(text)
	d.form.SetCustomText(text)
}

// Submit behaves like pressing "Save Event".
func (d *EventDialog) Submit() {
	d.respond(true)
	d.dialog.Hide()
}

// Dismiss closes the dialog without saving.
func (d *EventDialog) Dismiss() {
	d.respond(false)
	d.dialog.Hide()
}

// IsOpen reports whether the dialog has not been answered yet
func (d *EventDialog) IsOpen() bool {
	return !d.closed
}

// DateKey returns the date the dialog adds events to
func (d *EventDialog) DateKey() string {
	return d.dateKey
}

// Form returns the dialog state
func (d *EventDialog) Form() *models.EventForm {
	return d.form
}

// CustomEntryVisible reports whether the custom event field is shown
func (d *EventDialog) CustomEntryVisible() bool {
	return d.customEntry.Visible()
}
