package inmemdb

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/trezcool/tutordesk/core"
	"github.com/trezcool/tutordesk/core/lesson"
)

type (
	DB struct {
		lesson *lessonTable
	}

	// lessonTable keeps insertion order so listings are stable.
	lessonTable struct {
		sync.RWMutex
		table map[string]*lesson.Lesson
		order []string
	}
)

// Open creates the database and seeds it from conf.Gateway.SeedFile,
// or from the built-in seed when no file is configured.
func Open(conf *core.Config) (*DB, error) {
	var seed []lesson.Lesson
	if conf.Gateway.SeedFile != "" {
		var err error
		if seed, err = LoadSeed(conf.Gateway.SeedFile); err != nil {
			return nil, errors.Wrap(err, "loading seed")
		}
	} else {
		seed = DefaultSeed(lesson.NowFunc())
	}
	return OpenWith(seed...)
}

// OpenWith creates a database holding lessons. Duplicate IDs are rejected.
func OpenWith(lessons ...lesson.Lesson) (*DB, error) {
	db := &DB{
		lesson: &lessonTable{table: make(map[string]*lesson.Lesson, len(lessons))},
	}
	for _, l := range lessons {
		if err := db.lesson.insert(l); err != nil {
			return nil, err
		}
	}
	return db, nil
}

func (t *lessonTable) insert(l lesson.Lesson) error {
	t.Lock()
	defer t.Unlock()

	if l.ID == "" {
		return errors.New("lesson without id")
	}
	if _, ok := t.table[l.ID]; ok {
		return errors.Errorf("duplicate lesson id %q", l.ID)
	}
	l.Students = append([]string{}, l.Students...)
	t.table[l.ID] = &l
	t.order = append(t.order, l.ID)
	return nil
}
