package exporter

import (
	"fmt"
	"io"
	"time"

	"github.com/MohtasimEram/EDU-Routine-Generator/pkg/logger"
	"github.com/MohtasimEram/EDU-Routine-Generator/pkg/routine"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"
)

// CalendarOptions lays a weekly routine onto real dates.
type CalendarOptions struct {
	Start    time.Time // Any day of the first teaching week; classes start on or after it
	Weeks    int       // How many times each class repeats
	Location *time.Location
}

var weekdays = map[string]time.Weekday{
	"Saturday":  time.Saturday,
	"Sunday":    time.Sunday,
	"Monday":    time.Monday,
	"Tuesday":   time.Tuesday,
	"Wednesday": time.Wednesday,
	"Thursday":  time.Thursday,
	"Friday":    time.Friday,
}

// GenerateICS writes the routine as a calendar with one weekly recurring event per
// class. Classes whose time cannot be read (e.g. "N/A") are left out.
func GenerateICS(r routine.Routine, opts CalendarOptions, w io.Writer) error {
	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}
	if opts.Weeks <= 0 {
		return fmt.Errorf("calendar needs at least one week, got %d", opts.Weeks)
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetXWRCalName(fmt.Sprintf("%s %s", r.Department, r.SectionLabel()))

	now := time.Now()
	skipped := 0

	for _, e := range r.Entries {
		startMin, endMin, ok := routine.ParseTimeRange(e.Time)
		if !ok || endMin <= startMin {
			skipped++
			continue
		}
		weekday, ok := weekdays[e.Day]
		if !ok {
			skipped++
			continue
		}

		day := firstOnOrAfter(opts.Start.In(loc), weekday)
		startTime := time.Date(day.Year(), day.Month(), day.Day(), startMin/60, startMin%60, 0, 0, loc)
		endTime := time.Date(day.Year(), day.Month(), day.Day(), endMin/60, endMin%60, 0, 0, loc)

		event := cal.AddEvent(uuid.NewString())
		event.SetCreatedTime(now)
		event.SetDtStampTime(now)
		event.SetModifiedAt(now)
		event.SetStartAt(startTime)
		event.SetEndAt(endTime)
		event.SetSummary(e.Subject)
		event.SetLocation(e.Room)
		event.SetProperty(ics.ComponentPropertyRrule, fmt.Sprintf("FREQ=WEEKLY;COUNT=%d", opts.Weeks))

		description := fmt.Sprintf("Faculty: %s\n%s", facultyLine(e.Faculty), r.SectionLabel())
		event.SetDescription(description)
	}

	if skipped > 0 {
		logger.Warn("Classes left out of calendar", "routine", r.FileName(""), "skipped", skipped)
	}

	return cal.SerializeTo(w)
}

func firstOnOrAfter(t time.Time, weekday time.Weekday) time.Time {
	offset := (int(weekday) - int(t.Weekday()) + 7) % 7
	return t.AddDate(0, 0, offset)
}

func facultyLine(initials string) string {
	if initials == "" {
		return routine.NotAvailable
	}
	return fmt.Sprintf("%s (%s)", routine.FacultyLabel(initials), initials)
}
