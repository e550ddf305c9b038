package inmemdb

import (
	"context"
	"time"

	"github.com/trezcool/tutordesk/core"
	"github.com/trezcool/tutordesk/core/lesson"
)

type lessonGateway struct {
	db         *lessonTable
	fetchDelay time.Duration
	takeDelay  time.Duration
}

var _ lesson.Gateway = (*lessonGateway)(nil) // interface compliance check

// NewLessonGateway serves lessons out of db, after the configured simulated latencies.
func NewLessonGateway(db *DB, conf *core.Config) lesson.Gateway {
	return &lessonGateway{
		db:         db.lesson,
		fetchDelay: conf.Gateway.FetchDelay,
		takeDelay:  conf.Gateway.TakeDelay,
	}
}

// wait blocks for d or until ctx is done.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (gw *lessonGateway) GetLessons(ctx context.Context) ([]lesson.Lesson, error) {
	if err := wait(ctx, gw.fetchDelay); err != nil {
		return nil, err
	}

	gw.db.RLock()
	defer gw.db.RUnlock()

	lessons := make([]lesson.Lesson, 0, len(gw.db.order))
	for _, id := range gw.db.order {
		l := *gw.db.table[id]
		l.Students = append([]string{}, l.Students...)
		lessons = append(lessons, l)
	}
	return lessons, nil
}

func (gw *lessonGateway) TakeLesson(ctx context.Context, id, tutor string) (lesson.Lesson, error) {
	if err := wait(ctx, gw.takeDelay); err != nil {
		return lesson.Lesson{}, err
	}

	gw.db.Lock()
	defer gw.db.Unlock()

	l, ok := gw.db.table[id]
	if !ok {
		return lesson.Lesson{}, lesson.ErrNotFound
	}
	taken, err := lesson.Take(*l, tutor, lesson.NowFunc())
	if err != nil {
		return lesson.Lesson{}, err
	}
	stored := taken
	stored.Students = append([]string{}, taken.Students...)
	gw.db.table[id] = &stored
	return taken, nil
}
