package lesson

import (
	"sort"
	"time"
)

const (
	MonthKeyLayout   = "2006-01"
	monthLabelLayout = "January 2006"
)

func MonthKey(t time.Time) string {
	return t.Format(MonthKeyLayout)
}

// MonthLabel turns a yyyy-MM key into "January 2006". Unparsable keys are returned as is.
func MonthLabel(key string) string {
	t, err := time.Parse(MonthKeyLayout, key)
	if err != nil {
		return key
	}
	return t.Format(monthLabelLayout)
}

// GroupByMonth buckets lessons per calendar month.
// Lessons are sorted by date inside each bucket (earliest first)
// and buckets are returned newest month first.
func GroupByMonth(lessons []Lesson) []MonthGroup {
	buckets := make(map[string][]Lesson)
	for _, l := range lessons {
		key := MonthKey(l.Date)
		buckets[key] = append(buckets[key], l.clone())
	}

	groups := make([]MonthGroup, 0, len(buckets))
	for key, bucket := range buckets {
		sort.SliceStable(bucket, func(i, j int) bool { return bucket[i].Date.Before(bucket[j].Date) })
		groups = append(groups, MonthGroup{
			MonthKey:   key,
			MonthLabel: MonthLabel(key),
			Lessons:    bucket,
		})
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].MonthKey > groups[j].MonthKey })
	return groups
}

// ByType returns the lessons of the given type, preserving their order.
func ByType(lessons []Lesson, typ Type) []Lesson {
	res := make([]Lesson, 0)
	for _, l := range lessons {
		if l.typ == typ {
			res = append(res, l.clone())
		}
	}
	return res
}
