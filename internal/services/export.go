package services

import (
	"fmt"
	"io"
	"time"

	"calendar-gui/internal/logger"
	"calendar-gui/internal/models"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"
)

const (
	ExportProductID = "-//calendar-gui//Calendar GUI Application//EN"
	ExportCalName   = "Calendar GUI Application"
)

// exportNamespace seeds the name-based UIDs so the same event keeps its UID across exports.
var exportNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("calendar-gui/events"))

// ExportStats summarizes a finished export.
type ExportStats struct {
	Dates   int
	Events  int
	Skipped int
}

// ExportService writes the event store as an iCalendar document. Every label
// becomes one all-day VEVENT; nothing is ever read back.
type ExportService struct {
	store  *models.EventStore
	logger logger.Logger
	now    func() time.Time
}

// NewExportService creates an exporter reading from store
func NewExportService(store *models.EventStore, log logger.Logger) *ExportService {
	return &ExportService{
		store:  store,
		logger: log,
		now:    time.Now,
	}
}

// EventUID returns the stable UID of the index-th label on key.
func EventUID(key string, index int, label string) string {
	return uuid.NewSHA1(exportNamespace, []byte(fmt.Sprintf("%s#%d#%s", key, index, label))).String()
}

// BuildCalendar converts the current store contents into a calendar.
func (s *ExportService) BuildCalendar() (*ics.Calendar, ExportStats) {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(ExportProductID)
	cal.SetXWRCalName(ExportCalName)

	stamp := s.now().UTC()
	var stats ExportStats

	for _, entry := range s.store.Entries() {
		day, err := time.Parse(models.DateKeyLayout, entry.Key)
		if err != nil {
			// Years outside 0000-9999 have no iCalendar DATE form.
			stats.Skipped += len(entry.Labels)
			s.logger.Warning("ExportService", "date key not representable", map[string]interface{}{
				"date_key": entry.Key,
				"labels":   len(entry.Labels),
			})
			continue
		}

		stats.Dates++
		for i, label := range entry.Labels {
			event := cal.AddEvent(EventUID(entry.Key, i, label))
			event.SetDtStampTime(stamp)
			event.SetAllDayStartAt(day)
			event.SetAllDayEndAt(day.AddDate(0, 0, 1))
			event.SetSummary(label)
			stats.Events++
		}
	}

	return cal, stats
}

// Export serializes the store to w.
func (s *ExportService) Export(w io.Writer) (ExportStats, error) {
	cal, stats := s.BuildCalendar()

	if _, err := io.WriteString(w, cal.Serialize()); err != nil {
		s.logger.Error("ExportService", err, map[string]interface{}{
			"events": stats.Events,
		})
		return stats, fmt.Errorf("write calendar: %w", err)
	}

	s.logger.Info("ExportService", "calendar exported", map[string]interface{}{
		"dates":   stats.Dates,
		"events":  stats.Events,
		"skipped": stats.Skipped,
	})
	return stats, nil
}
