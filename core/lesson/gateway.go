package lesson

import (
	"context"
	"errors"
	"time"
)

var (
	// errors
	ErrNotFound     = errors.New("lesson not found")
	ErrNotAvailable = errors.New("lesson is not available")
)

// Gateway is the data access collaborator supplying lessons and performing claims.
type Gateway interface {
	GetLessons(ctx context.Context) ([]Lesson, error)
	// TakeLesson claims the Available lesson `id` for `tutor`.
	// It fails with ErrNotFound or ErrNotAvailable.
	TakeLesson(ctx context.Context, id, tutor string) (Lesson, error)
}

// Take returns l confirmed for tutor and reclassified at now.
func Take(l Lesson, tutor string, now time.Time) (Lesson, error) {
	if l.Status != StatusAvailable {
		return Lesson{}, ErrNotAvailable
	}
	l = l.clone()
	l.Status = StatusConfirmed
	l.Tutor = tutor
	l.typ = Classify(l, now)
	return l, nil
}
