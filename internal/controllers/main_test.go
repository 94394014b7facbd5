package controllers

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"calendar-gui/internal/logger"
	"calendar-gui/internal/models"
	"calendar-gui/internal/services"
	"calendar-gui/internal/views"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testToday = time.Date(2026, time.October, 15, 10, 0, 0, 0, time.UTC)

func newTestController(t *testing.T) (*MainController, *views.MainView) {
	t.Helper()

	test.NewTempApp(t)
	window := test.NewWindow(nil)
	t.Cleanup(window.Close)

	store := models.NewEventStore()
	controller := NewMainController(
		models.NewCalendarState(testToday),
		store,
		services.NewExportService(store, logger.NewNop()),
		logger.NewNop(),
	)
	view := views.NewMainView(window)
	controller.SetMainView(view)

	return controller, view
}

func saveViaDialog(t *testing.T, mc *MainController, day int, category, custom string) {
	t.Helper()

	d := mc.OpenEventDialog(day)
	require.NotNil(t, d)
	d.Select(category)
	if custom != "" {
		d.SetCustomText(custom)
	}
	d.Submit()
	require.False(t, d.IsOpen())
}

func TestInitialRender(t *testing.T) {
	_, view := newTestController(t)

	assert.Equal(t, "October 2026", view.Header().Title())
	assert.Equal(t, 6, view.MonthGrid().Rows())
	assert.Equal(t, 31, view.MonthGrid().CellCount())
	assert.Equal(t, "2026-10-15", view.InfoPanel().Today())
	assert.Equal(t, "", view.InfoPanel().Summary())

	cell, ok := view.MonthGrid().Cell("2026-10-15")
	require.True(t, ok)
	assert.True(t, cell.IsToday())
}

func TestNavigationButtons(t *testing.T) {
	mc, view := newTestController(t)

	test.Tap(view.Header().NextButton())
	assert.Equal(t, "November 2026", view.Header().Title())
	assert.Equal(t, 30, view.MonthGrid().CellCount())

	cell, ok := view.MonthGrid().Cell("2026-11-15")
	require.True(t, ok)
	assert.False(t, cell.IsToday())

	test.Tap(view.Header().PrevButton())
	test.Tap(view.Header().PrevButton())
	assert.Equal(t, "September 2026", view.Header().Title())

	state := mc.State()
	assert.Equal(t, 2026, state.Year)
	assert.Equal(t, 9, state.Month)
}

func TestNavigationWrapsYear(t *testing.T) {
	mc, view := newTestController(t)

	for i := 0; i < 3; i++ {
		mc.NextMonth()
	}
	assert.Equal(t, "January 2027", view.Header().Title())

	mc.PrevMonth()
	assert.Equal(t, "December 2026", view.Header().Title())
}

func TestSaveMeetingUpdatesCellAndStore(t *testing.T) {
	mc, view := newTestController(t)

	saveViaDialog(t, mc, 15, "Meeting", "")

	cell, ok := view.MonthGrid().Cell("2026-10-15")
	require.True(t, ok)
	assert.Contains(t, cell.EventsText(), "Meeting")
	assert.True(t, cell.HasEvents())

	labels, ok := mc.Store().Labels("2026-10-15")
	require.True(t, ok)
	assert.Equal(t, []string{"Meeting"}, labels)
	assert.Equal(t, "2026-10-15: Meeting", view.InfoPanel().Summary())
}

func TestTappingDayOpensDialog(t *testing.T) {
	mc, view := newTestController(t)

	cell, ok := view.MonthGrid().Cell("2026-10-03")
	require.True(t, ok)
	test.Tap(cell)

	d := view.ActiveDialog()
	require.NotNil(t, d)
	assert.True(t, d.IsOpen())
	assert.Equal(t, "2026-10-03", d.DateKey())
	assert.False(t, d.CustomEntryVisible())

	d.Select("Exam")
	d.Submit()

	labels, _ := mc.Store().Labels("2026-10-03")
	assert.Equal(t, []string{"Exam"}, labels)
}

func TestOtherWithBlankTextRecordsNone(t *testing.T) {
	mc, view := newTestController(t)

	saveViaDialog(t, mc, 20, models.CategoryOther, "   ")

	labels, ok := mc.Store().Labels("2026-10-20")
	require.True(t, ok)
	assert.Equal(t, []string{"None"}, labels)

	cell, _ := view.MonthGrid().Cell("2026-10-20")
	assert.Equal(t, "None", cell.EventsText())
}

func TestOtherWithTextRecordsTrimmedText(t *testing.T) {
	mc, _ := newTestController(t)

	saveViaDialog(t, mc, 21, models.CategoryOther, "  Dentist ")

	labels, _ := mc.Store().Labels("2026-10-21")
	assert.Equal(t, []string{"Dentist"}, labels)
}

func TestNoneWithBlankTextRecordsNothing(t *testing.T) {
	mc, view := newTestController(t)

	d := mc.OpenEventDialog(22)
	require.NotNil(t, d)
	d.Submit()

	assert.False(t, mc.Store().Has("2026-10-22"))
	assert.Equal(t, 0, mc.Store().Len())
	assert.False(t, view.DialogOpen())
	assert.Equal(t, "", view.InfoPanel().Summary())

	cell, _ := view.MonthGrid().Cell("2026-10-22")
	assert.False(t, cell.HasEvents())
}

func TestEventsAccumulateInOrder(t *testing.T) {
	mc, view := newTestController(t)

	saveViaDialog(t, mc, 7, "Birthday", "")
	saveViaDialog(t, mc, 7, "Holiday", "")

	labels, _ := mc.Store().Labels("2026-10-07")
	assert.Equal(t, []string{"Birthday", "Holiday"}, labels)

	cell, _ := view.MonthGrid().Cell("2026-10-07")
	assert.Equal(t, "Birthday\nHoliday", cell.EventsText())
	assert.Equal(t, "2026-10-07: Birthday, Holiday", view.InfoPanel().Summary())
}

func TestSummaryCoversAllMonths(t *testing.T) {
	mc, view := newTestController(t)

	saveViaDialog(t, mc, 15, "Meeting", "")
	mc.NextMonth()
	saveViaDialog(t, mc, 2, "Anniversary", "")

	want := "2026-10-15: Meeting\n2026-11-02: Anniversary"
	assert.Equal(t, want, view.InfoPanel().Summary())

	mc.PrevMonth()
	mc.PrevMonth()
	assert.Equal(t, want, view.InfoPanel().Summary())

	mc.NextMonth()
	cell, _ := view.MonthGrid().Cell("2026-10-15")
	assert.Equal(t, "Meeting", cell.EventsText())
}

func TestDismissLeavesStoreUntouched(t *testing.T) {
	mc, view := newTestController(t)

	d := mc.OpenEventDialog(9)
	require.NotNil(t, d)
	d.Select("Holiday")
	d.Dismiss()

	assert.False(t, mc.Store().Has("2026-10-09"))
	assert.False(t, view.DialogOpen())
}

func TestDialogBlocksNavigationAndSecondDialog(t *testing.T) {
	mc, view := newTestController(t)

	first := mc.OpenEventDialog(4)
	require.NotNil(t, first)

	mc.NextMonth()
	assert.Equal(t, "October 2026", view.Header().Title())

	second := mc.OpenEventDialog(5)
	assert.Same(t, first, second)

	first.Dismiss()
	mc.NextMonth()
	assert.Equal(t, "November 2026", view.Header().Title())
}

func TestCustomEntryFollowsSelection(t *testing.T) {
	mc, _ := newTestController(t)

	d := mc.OpenEventDialog(1)
	require.NotNil(t, d)

	d.Select(models.CategoryOther)
	assert.True(t, d.CustomEntryVisible())
	assert.Equal(t, models.CustomTextVisible, d.Form().State())

	d.Select("Meeting")
	assert.False(t, d.CustomEntryVisible())
	d.Dismiss()
}

type bufferCloser struct {
	bytes.Buffer
	closed bool
}

func (b *bufferCloser) Close() error {
	b.closed = true
	return nil
}

func TestExportToWritesStore(t *testing.T) {
	mc, _ := newTestController(t)
	saveViaDialog(t, mc, 15, "Meeting", "")
	saveViaDialog(t, mc, 15, "Exam", "")

	var out bufferCloser
	stats, err := mc.ExportTo(&out)
	require.NoError(t, err)

	assert.True(t, out.closed)
	assert.Equal(t, 2, stats.Events)
	assert.True(t, strings.Contains(out.String(), "SUMMARY:Meeting"))
	assert.True(t, strings.Contains(out.String(), "SUMMARY:Exam"))
}

type recordedEntry struct {
	message string
	fields  map[string]interface{}
}

type recordingLogger struct {
	logger.Logger
	debug []recordedEntry
}

func (r *recordingLogger) Debug(_ string, message string, fields map[string]interface{}) {
	r.debug = append(r.debug, recordedEntry{message: message, fields: fields})
}

func (r *recordingLogger) find(message string) (recordedEntry, bool) {
	for _, entry := range r.debug {
		if entry.message == message {
			return entry, true
		}
	}
	return recordedEntry{}, false
}

func TestDialogLogsFieldState(t *testing.T) {
	test.NewTempApp(t)
	window := test.NewWindow(nil)
	t.Cleanup(window.Close)

	rec := &recordingLogger{Logger: logger.NewNop()}
	store := models.NewEventStore()
	mc := NewMainController(models.NewCalendarState(testToday), store, services.NewExportService(store, rec), rec)
	mc.SetMainView(views.NewMainView(window))

	d := mc.OpenEventDialog(12)
	require.NotNil(t, d)

	opened, ok := rec.find("event dialog opened")
	require.True(t, ok)
	assert.Equal(t, "2026-10-12", opened.fields["date_key"])
	assert.Equal(t, "category_selected", opened.fields["field_state"])

	d.Submit()

	discarded, ok := rec.find("event discarded")
	require.True(t, ok)
	assert.Equal(t, models.CategoryNone, discarded.fields["category"])
	assert.Equal(t, "category_selected", discarded.fields["field_state"])
}
