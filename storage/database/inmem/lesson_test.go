package inmemdb

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/tutordesk/core"
	"github.com/trezcool/tutordesk/core/lesson"
)

var (
	march1  = time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC)
	march15 = time.Date(2024, time.March, 15, 9, 0, 0, 0, time.UTC)
)

func newTestGateway(t *testing.T, delay time.Duration) lesson.Gateway {
	db, err := OpenWith(
		lesson.Lesson{ID: "1", Date: march1, Subject: "Maths", Students: []string{"Ann"}, Status: lesson.StatusAvailable},
		lesson.Lesson{ID: "2", Date: march15, Subject: "Physics", Tutor: "Kim Lee", Status: lesson.StatusCompleted},
	)
	require.NoError(t, err)
	conf := &core.Config{Gateway: core.GatewayConfig{FetchDelay: delay, TakeDelay: delay}}
	return NewLessonGateway(db, conf)
}

func TestOpenWith(t *testing.T) {
	_, err := OpenWith(lesson.Lesson{ID: "1"}, lesson.Lesson{ID: "1"})
	assert.Error(t, err)

	_, err = OpenWith(lesson.Lesson{})
	assert.Error(t, err)
}

func TestLessonGateway_GetLessons(t *testing.T) {
	gw := newTestGateway(t, 0)

	lessons, err := gw.GetLessons(context.Background())

	require.NoError(t, err)
	require.Len(t, lessons, 2)
	assert.Equal(t, "1", lessons[0].ID)
	assert.Equal(t, "2", lessons[1].ID)

	// callers get copies
	lessons[0].Students[0] = "Mallory"
	lessons[0].Status = lesson.StatusConfirmed
	again, _ := gw.GetLessons(context.Background())
	assert.Equal(t, "Ann", again[0].Students[0])
	assert.Equal(t, lesson.StatusAvailable, again[0].Status)
}

func TestLessonGateway_TakeLesson(t *testing.T) {
	orig := lesson.NowFunc
	lesson.NowFunc = func() time.Time { return time.Date(2024, time.February, 20, 12, 0, 0, 0, time.UTC) }
	defer func() { lesson.NowFunc = orig }()

	tests := []struct {
		name    string
		id      string
		wantErr error
	}{
		{name: "available", id: "1"},
		{name: "already taken", id: "1", wantErr: lesson.ErrNotAvailable},
		{name: "completed", id: "2", wantErr: lesson.ErrNotAvailable},
		{name: "missing", id: "3", wantErr: lesson.ErrNotFound},
	}
	gw := newTestGateway(t, 0)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := gw.TakeLesson(context.Background(), tt.id, "Sarah Tan")
			if tt.wantErr != nil {
				assert.Equal(t, tt.wantErr, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, lesson.StatusConfirmed, got.Status)
			assert.Equal(t, "Sarah Tan", got.Tutor)
			assert.Equal(t, lesson.TypeUpcoming, got.Type())
		})
	}

	lessons, err := gw.GetLessons(context.Background())
	require.NoError(t, err)
	assert.Equal(t, lesson.StatusConfirmed, lessons[0].Status)
	assert.Equal(t, "Sarah Tan", lessons[0].Tutor)
	assert.Equal(t, "Kim Lee", lessons[1].Tutor)
}

func TestLessonGateway_TakeLesson_concurrentClaims(t *testing.T) {
	gw := newTestGateway(t, 0)

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		wins []string
	)
	for _, tutor := range []string{"A", "B", "C", "D", "E"} {
		wg.Add(1)
		go func(tutor string) {
			defer wg.Done()
			if _, err := gw.TakeLesson(context.Background(), "1", tutor); err == nil {
				mu.Lock()
				wins = append(wins, tutor)
				mu.Unlock()
			}
		}(tutor)
	}
	wg.Wait()

	require.Len(t, wins, 1)
	lessons, _ := gw.GetLessons(context.Background())
	assert.Equal(t, wins[0], lessons[0].Tutor)
}

func TestLessonGateway_delays(t *testing.T) {
	gw := newTestGateway(t, 50*time.Millisecond)

	start := time.Now()
	_, err := gw.GetLessons(context.Background())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, int64(time.Since(start)), int64(50*time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = gw.GetLessons(ctx)
	assert.Equal(t, context.Canceled, err)

	_, err = gw.TakeLesson(ctx, "1", "Sarah Tan")
	assert.Equal(t, context.Canceled, err)
	lessons, _ := gw.GetLessons(context.Background())
	assert.Equal(t, lesson.StatusAvailable, lessons[0].Status)
}
