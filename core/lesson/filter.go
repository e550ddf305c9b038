package lesson

import "time"

// DateRange is only applied as a filter when both bounds are set.
type DateRange struct {
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
}

func (r DateRange) IsSet() bool {
	return r.StartDate != nil && r.EndDate != nil
}

// Contains reports whether t lies within [startOfDay(start), endOfDay(end)].
func (r DateRange) Contains(t time.Time) bool {
	if !r.IsSet() {
		return false
	}
	return !t.Before(StartOfDay(*r.StartDate)) && !t.After(EndOfDay(*r.EndDate))
}

func (r DateRange) clone() DateRange {
	return DateRange{StartDate: cloneTime(r.StartDate), EndDate: cloneTime(r.EndDate)}
}

// Criteria holds the session filter state.
type Criteria struct {
	Month     *time.Time `json:"selected_month"`
	DateRange DateRange  `json:"date_range"`
}

// IsEmpty reports whether applying c would keep every lesson.
func (c Criteria) IsEmpty() bool {
	return c.Month == nil && !c.DateRange.IsSet()
}

// HasActiveFilters mirrors what a dashboard treats as "filtering":
// a selected month, or a range with at least a start bound.
func (c Criteria) HasActiveFilters() bool {
	return c.Month != nil || c.DateRange.StartDate != nil
}

func (c Criteria) clone() Criteria {
	return Criteria{Month: cloneTime(c.Month), DateRange: c.DateRange.clone()}
}

func (c Criteria) match(l Lesson) bool {
	if c.Month != nil && !SameMonth(l.Date, *c.Month) {
		return false
	}
	if c.DateRange.IsSet() && !c.DateRange.Contains(l.Date) {
		return false
	}
	return true
}

// Filter returns the lessons matching all active criteria, in input order.
// The result never shares memory with lessons.
func Filter(lessons []Lesson, c Criteria) []Lesson {
	res := make([]Lesson, 0, len(lessons))
	for _, l := range lessons {
		if c.match(l) {
			res = append(res, l.clone())
		}
	}
	return res
}

// SameMonth reports whether t, read in its own location, falls in the calendar month of month.
// MonthKey buckets lessons the same way.
func SameMonth(t, month time.Time) bool {
	return t.Year() == month.Year() && t.Month() == month.Month()
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
