package lesson

import (
	"encoding/json"
	"time"
)

// Status is the authoritative lifecycle state of a Lesson.
type Status string

const (
	StatusCompleted Status = "Completed"
	StatusConfirmed Status = "Confirmed"
	StatusAvailable Status = "Available"
)

var Statuses = []Status{StatusCompleted, StatusConfirmed, StatusAvailable}

func (s Status) IsValid() bool {
	for _, st := range Statuses {
		if s == st {
			return true
		}
	}
	return false
}

// Type is the temporal category of a Lesson. It is only ever computed by Classify.
type Type string

const (
	TypeToday     Type = "Today's"
	TypeHistoric  Type = "Historic"
	TypeUpcoming  Type = "Upcoming"
	TypeAvailable Type = "Available"
	TypeMissed    Type = "Missed" // confirmed, in the past and never completed
)

var Types = []Type{TypeToday, TypeHistoric, TypeUpcoming, TypeAvailable, TypeMissed}

func ParseType(s string) (Type, bool) {
	for _, t := range Types {
		if string(t) == s {
			return t, true
		}
	}
	return "", false
}

// Lesson is a scheduled tutoring session.
type Lesson struct {
	ID       string    `json:"id" yaml:"id"`
	Date     time.Time `json:"date" yaml:"date"`
	Subject  string    `json:"subject" yaml:"subject"`
	Students []string  `json:"students" yaml:"students"`
	Tutor    string    `json:"tutor" yaml:"tutor"` // empty: no tutor assigned
	Status   Status    `json:"status" yaml:"status"`

	typ Type
}

// Type returns the category computed at the last classification.
func (l Lesson) Type() Type { return l.typ }

func (l Lesson) HasTutor() bool { return l.Tutor != "" }

// clone returns a copy of l that shares no memory with it.
func (l Lesson) clone() Lesson {
	if l.Students != nil {
		students := make([]string, len(l.Students))
		copy(students, l.Students)
		l.Students = students
	}
	return l
}

func cloneAll(lessons []Lesson) []Lesson {
	if lessons == nil {
		return nil
	}
	res := make([]Lesson, len(lessons))
	for i, l := range lessons {
		res[i] = l.clone()
	}
	return res
}

type lessonJSON struct {
	ID       string    `json:"id"`
	Date     time.Time `json:"date"`
	Type     Type      `json:"type,omitempty"`
	Subject  string    `json:"subject"`
	Students []string  `json:"students"`
	Tutor    *string   `json:"tutor"`
	Status   Status    `json:"status"`
}

// MarshalJSON exposes the computed type next to the stored fields.
// Incoming "type" values are ignored on unmarshal; lessons are reclassified instead.
func (l Lesson) MarshalJSON() ([]byte, error) {
	data := lessonJSON{
		ID:       l.ID,
		Date:     l.Date,
		Type:     l.typ,
		Subject:  l.Subject,
		Students: l.Students,
		Status:   l.Status,
	}
	if data.Students == nil {
		data.Students = []string{}
	}
	if l.HasTutor() {
		tutor := l.Tutor
		data.Tutor = &tutor
	}
	return json.Marshal(data)
}

// MonthGroup holds the lessons of one calendar month.
type MonthGroup struct {
	MonthKey   string   `json:"month_key"`   // yyyy-MM
	MonthLabel string   `json:"month_label"` // January 2006
	Lessons    []Lesson `json:"lessons"`
}
