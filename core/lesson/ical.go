package lesson

import (
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"
)

// CalendarOptions customise the iCalendar export.
type CalendarOptions struct {
	Name      string // X-WR-CALNAME
	ProductID string
	UIDDomain string // lesson UIDs are "<id>@<UIDDomain>"
}

// Calendar renders lessons as an iCalendar (RFC 5545) document.
// Lessons carry no duration, so events only have a DTSTART.
func Calendar(lessons []Lesson, opts CalendarOptions, stamp time.Time) string {
	if opts.ProductID == "" {
		opts.ProductID = "-//tutordesk//lessons//EN"
	}
	if opts.UIDDomain == "" {
		opts.UIDDomain = "tutordesk"
	}

	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(opts.ProductID)
	if opts.Name != "" {
		cal.SetXWRCalName(opts.Name)
	}

	for _, l := range lessons {
		event := cal.AddEvent(l.ID + "@" + opts.UIDDomain)
		event.SetDtStampTime(stamp.UTC())
		event.SetStartAt(l.Date.UTC())
		event.SetSummary(l.Subject)
		event.SetDescription(eventDescription(l))
		event.SetStatus(eventStatus(l.Status))
		if l.typ != "" {
			event.AddProperty(ical.ComponentPropertyCategories, string(l.typ))
		}
	}
	return cal.Serialize()
}

func eventStatus(st Status) ical.ObjectStatus {
	if st == StatusAvailable {
		return ical.ObjectStatusTentative
	}
	return ical.ObjectStatusConfirmed
}

func eventDescription(l Lesson) string {
	var b strings.Builder
	b.WriteString("Status: " + string(l.Status))
	if l.HasTutor() {
		b.WriteString("\nTutor: " + l.Tutor)
	}
	if len(l.Students) > 0 {
		b.WriteString("\nStudents: " + strings.Join(l.Students, ", "))
	}
	return b.String()
}
