package lesson

import "time"

// Classify returns the Type of l relative to now. The first matching rule wins:
//  1. same calendar day as now (in now's location): TypeToday
//  2. completed: TypeHistoric
//  3. confirmed and still ahead: TypeUpcoming
//  4. available: TypeAvailable
//  5. confirmed but already past: TypeMissed
func Classify(l Lesson, now time.Time) Type {
	date := l.Date.In(now.Location())
	switch {
	case SameDay(date, now):
		return TypeToday
	case l.Status == StatusCompleted:
		return TypeHistoric
	case l.Status == StatusConfirmed && date.After(now):
		return TypeUpcoming
	case l.Status == StatusAvailable:
		return TypeAvailable
	case l.Status == StatusConfirmed:
		return TypeMissed
	}
	return ""
}

// Reclassify returns a copy of l carrying the Type computed by Classify.
// The copy's date is moved to now's location so that grouping and filtering
// see the same calendar as classification.
func Reclassify(l Lesson, now time.Time) Lesson {
	l = l.clone()
	l.Date = l.Date.In(now.Location())
	l.typ = Classify(l, now)
	return l
}

func ReclassifyAll(lessons []Lesson, now time.Time) []Lesson {
	res := make([]Lesson, 0, len(lessons))
	for _, l := range lessons {
		res = append(res, Reclassify(l, now))
	}
	return res
}

// SameDay reports whether a and b fall on the same calendar day of a's location.
func SameDay(a, b time.Time) bool {
	b = b.In(a.Location())
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func EndOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
