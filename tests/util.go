package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/trezcool/tutordesk/core/lesson"
)

// Date returns the given local time, truncated to the minute.
func Date(year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour, min, 0, 0, time.Local)
}

func NewLesson(id string, date time.Time, status lesson.Status, students ...string) lesson.Lesson {
	if students == nil {
		students = []string{}
	}
	return lesson.Lesson{
		ID:       id,
		Date:     date,
		Subject:  "Subject " + id,
		Students: students,
		Status:   status,
	}
}

// FixedNow makes lesson.NowFunc return now until the test ends.
func FixedNow(t interface{ Cleanup(func()) }, now time.Time) {
	orig := lesson.NowFunc
	lesson.NowFunc = func() time.Time { return now }
	t.Cleanup(func() { lesson.NowFunc = orig })
}

// FakeGateway is an in-memory lesson.Gateway whose failures can be forced.
type FakeGateway struct {
	mu      sync.Mutex
	lessons []lesson.Lesson

	GetErr     error
	TakeErr    error
	GetCalls   int
	TakeCalls  int
	LastTutor  string
	BeforeTake func() // called before a claim is applied
}

var _ lesson.Gateway = (*FakeGateway)(nil)

func NewFakeGateway(lessons ...lesson.Lesson) *FakeGateway {
	return &FakeGateway{lessons: lessons}
}

func (gw *FakeGateway) Set(lessons ...lesson.Lesson) {
	gw.mu.Lock()
	defer gw.mu.Unlock()
	gw.lessons = lessons
}

func (gw *FakeGateway) GetLessons(ctx context.Context) ([]lesson.Lesson, error) {
	gw.mu.Lock()
	defer gw.mu.Unlock()

	gw.GetCalls++
	if gw.GetErr != nil {
		return nil, gw.GetErr
	}
	res := make([]lesson.Lesson, len(gw.lessons))
	copy(res, gw.lessons)
	return res, nil
}

func (gw *FakeGateway) TakeLesson(ctx context.Context, id, tutor string) (lesson.Lesson, error) {
	if gw.BeforeTake != nil {
		gw.BeforeTake()
	}

	gw.mu.Lock()
	defer gw.mu.Unlock()

	gw.TakeCalls++
	gw.LastTutor = tutor
	if gw.TakeErr != nil {
		return lesson.Lesson{}, gw.TakeErr
	}
	for i, l := range gw.lessons {
		if l.ID == id {
			taken, err := lesson.Take(l, tutor, lesson.NowFunc())
			if err != nil {
				return lesson.Lesson{}, err
			}
			gw.lessons[i] = taken
			return taken, nil
		}
	}
	return lesson.Lesson{}, lesson.ErrNotFound
}
