package lesson

import (
	"testing"
	"time"
)

func TestClassify(t *testing.T) {
	now := time.Date(2024, time.March, 20, 12, 0, 0, 0, time.Local)
	at := func(month time.Month, day, hour, min int) time.Time {
		return time.Date(2024, month, day, hour, min, 0, 0, time.Local)
	}
	seoul := time.FixedZone("KST", 9*60*60)

	tests := []struct {
		name   string
		date   time.Time
		status Status
		now    time.Time
		want   Type
	}{
		{name: "today completed", date: at(time.March, 20, 8, 0), status: StatusCompleted, want: TypeToday},
		{name: "today confirmed, earlier", date: at(time.March, 20, 9, 0), status: StatusConfirmed, want: TypeToday},
		{name: "today confirmed, later", date: at(time.March, 20, 18, 0), status: StatusConfirmed, want: TypeToday},
		{name: "today available", date: at(time.March, 20, 23, 59), status: StatusAvailable, want: TypeToday},
		{name: "today at midnight", date: at(time.March, 20, 0, 0), status: StatusAvailable, want: TypeToday},
		{name: "completed in the past", date: at(time.March, 15, 9, 0), status: StatusCompleted, want: TypeHistoric},
		{name: "completed in the future", date: at(time.April, 2, 9, 0), status: StatusCompleted, want: TypeHistoric},
		{name: "confirmed in the future", date: at(time.March, 25, 10, 0), status: StatusConfirmed, want: TypeUpcoming},
		{name: "confirmed tomorrow midnight", date: at(time.March, 21, 0, 0), status: StatusConfirmed, want: TypeUpcoming},
		{name: "available in the past", date: at(time.March, 1, 10, 0), status: StatusAvailable, want: TypeAvailable},
		{name: "available in the future", date: at(time.May, 1, 10, 0), status: StatusAvailable, want: TypeAvailable},
		{name: "confirmed in the past", date: at(time.March, 10, 10, 0), status: StatusConfirmed, want: TypeMissed},
		{name: "confirmed yesterday late", date: at(time.March, 19, 23, 59), status: StatusConfirmed, want: TypeMissed},
		{name: "unknown status", date: at(time.March, 10, 10, 0), status: "Cancelled", want: ""},
		{
			name:   "same day in now's location",
			date:   time.Date(2024, time.March, 19, 20, 0, 0, 0, time.UTC), // 2024-03-20 05:00 KST
			status: StatusCompleted,
			now:    time.Date(2024, time.March, 20, 1, 0, 0, 0, seoul),
			want:   TypeToday,
		},
		{
			name:   "other day in now's location",
			date:   time.Date(2024, time.March, 20, 16, 0, 0, 0, time.UTC), // 2024-03-21 01:00 KST
			status: StatusConfirmed,
			now:    time.Date(2024, time.March, 20, 23, 0, 0, 0, seoul),
			want:   TypeUpcoming,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := tt.now
			if n.IsZero() {
				n = now
			}
			l := Lesson{ID: "1", Date: tt.date, Status: tt.status}
			if got := Classify(l, n); got != tt.want {
				t.Errorf("Classify() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReclassify(t *testing.T) {
	now := time.Date(2024, time.March, 20, 12, 0, 0, 0, time.Local)
	orig := Lesson{
		ID:       "1",
		Date:     time.Date(2024, time.March, 1, 10, 0, 0, 0, time.Local),
		Status:   StatusAvailable,
		Students: []string{"Ann"},
	}

	got := Reclassify(orig, now)
	if got.Type() != TypeAvailable {
		t.Errorf("Reclassify().Type() = %q, want %q", got.Type(), TypeAvailable)
	}
	if orig.Type() != "" {
		t.Errorf("Reclassify() modified its input type to %q", orig.Type())
	}
	got.Students[0] = "Bob"
	if orig.Students[0] != "Ann" {
		t.Error("Reclassify() result shares students with its input")
	}
}

func TestTake(t *testing.T) {
	now := time.Date(2024, time.February, 20, 12, 0, 0, 0, time.Local)
	available := Lesson{ID: "1", Date: time.Date(2024, time.March, 1, 10, 0, 0, 0, time.Local), Status: StatusAvailable}

	taken, err := Take(available, "Sarah Tan", now)
	if err != nil {
		t.Fatalf("Take() unexpected error = %v", err)
	}
	if taken.Status != StatusConfirmed || taken.Tutor != "Sarah Tan" || taken.Type() != TypeUpcoming {
		t.Errorf("Take() = %+v (type %q)", taken, taken.Type())
	}

	todayLesson := available
	todayLesson.Date = time.Date(2024, time.February, 20, 18, 0, 0, 0, time.Local)
	if taken, _ = Take(todayLesson, "Sarah Tan", now); taken.Type() != TypeToday {
		t.Errorf("Take() today type = %q, want %q", taken.Type(), TypeToday)
	}

	for _, st := range []Status{StatusConfirmed, StatusCompleted} {
		l := available
		l.Status = st
		if _, err = Take(l, "Sarah Tan", now); err != ErrNotAvailable {
			t.Errorf("Take(%s) error = %v, want %v", st, err, ErrNotAvailable)
		}
	}
}
