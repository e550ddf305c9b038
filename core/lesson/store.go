package lesson

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/trezcool/tutordesk/core"
)

var NowFunc = time.Now // mockable

const (
	msgFetchFailed = "Failed to fetch lessons"
	msgTakeFailed  = "Failed to take lesson"
)

// State is a value snapshot of a Store.
type State struct {
	Lessons         []Lesson  `json:"lessons"`
	FilteredLessons []Lesson  `json:"filtered_lessons"`
	Loading         bool      `json:"loading"`
	Error           string    `json:"error,omitempty"`
	FetchError      string    `json:"fetch_error,omitempty"`
	TakeError       string    `json:"take_error,omitempty"`
	Criteria        Criteria  `json:"criteria"`
	FetchedAt       time.Time `json:"fetched_at"`
}

// Store owns the lesson collection of one tutor session, its filter criteria and
// the derived filtered view. All mutations go through its methods.
//
// The lock is never held while waiting on the Gateway; concurrent fetches or claims
// are not serialised and the last one to complete wins.
type Store struct {
	gateway Gateway
	tutor   string

	mu        sync.RWMutex
	lessons   []Lesson
	filtered  []Lesson
	criteria  Criteria
	inFlight  int
	fetchErr  string
	takeErr   string
	lastErr   string
	fetchedAt time.Time
}

func NewStore(gw Gateway, tutor string) *Store {
	return &Store{
		gateway:  gw,
		tutor:    tutor,
		lessons:  []Lesson{},
		filtered: []Lesson{},
	}
}

func (s *Store) Tutor() string { return s.tutor }

// begin flags the store as loading and clears the error of the starting operation.
func (s *Store) begin(opErr *string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.inFlight++
	*opErr = ""
	s.lastErr = ""
}

func (s *Store) end() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.inFlight--
}

func (s *Store) fail(opErr *string, err error, fallback string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg := core.ErrorMessage(errors.Cause(err), fallback)
	*opErr = msg
	s.lastErr = msg
}

// FetchLessons replaces the collection with the Gateway's lessons, classified at NowFunc().
// On failure the previous collection is kept and the error is recorded.
func (s *Store) FetchLessons(ctx context.Context) error {
	s.begin(&s.fetchErr)
	defer s.end()

	lessons, err := s.gateway.GetLessons(ctx)
	if err != nil {
		s.fail(&s.fetchErr, err, msgFetchFailed)
		return errors.Wrap(err, "fetching lessons")
	}
	now := NowFunc()
	classified := ReclassifyAll(lessons, now)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.lessons = classified
	s.fetchedAt = now
	s.refilter()
	return nil
}

// TakeLesson claims lesson `id` for the store's tutor and swaps the claimed lesson
// into the collection. On failure the collection is left untouched.
func (s *Store) TakeLesson(ctx context.Context, id string) (Lesson, error) {
	s.begin(&s.takeErr)
	defer s.end()

	taken, err := s.gateway.TakeLesson(ctx, id, s.tutor)
	if err != nil {
		s.fail(&s.takeErr, err, msgTakeFailed)
		return Lesson{}, errors.Wrap(err, "taking lesson")
	}
	taken = Reclassify(taken, NowFunc())

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lessons {
		if s.lessons[i].ID == id {
			s.lessons[i] = taken.clone()
		}
	}
	s.refilter()
	return taken, nil
}

func (s *Store) SetSelectedMonth(month *time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.criteria.Month = cloneTime(month)
	s.refilter()
}

func (s *Store) SetDateRange(r DateRange) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.criteria.DateRange = r.clone()
	s.refilter()
}

// SetCriteria replaces both filters at once.
func (s *Store) SetCriteria(c Criteria) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.criteria = c.clone()
	s.refilter()
}

func (s *Store) ClearFilters() {
	s.SetCriteria(Criteria{})
}

// refilter must be called with s.mu held.
func (s *Store) refilter() {
	s.filtered = Filter(s.lessons, s.criteria)
}

func (s *Store) Criteria() Criteria {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.criteria.clone()
}

func (s *Store) HasActiveFilters() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.criteria.HasActiveFilters()
}

func (s *Store) Lessons() []Lesson {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneAll(s.lessons)
}

func (s *Store) FilteredLessons() []Lesson {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneAll(s.filtered)
}

// LessonsByType returns the filtered lessons of type typ, in order.
func (s *Store) LessonsByType(typ Type) []Lesson {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return ByType(s.filtered, typ)
}

func (s *Store) LessonsGroupedByMonth() []MonthGroup {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return GroupByMonth(s.filtered)
}

func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inFlight > 0
}

// Error returns the message of the most recent failed operation, fetch or claim.
func (s *Store) Error() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

func (s *Store) FetchError() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fetchErr
}

func (s *Store) TakeError() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.takeErr
}

func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return State{
		Lessons:         cloneAll(s.lessons),
		FilteredLessons: cloneAll(s.filtered),
		Loading:         s.inFlight > 0,
		Error:           s.lastErr,
		FetchError:      s.fetchErr,
		TakeError:       s.takeErr,
		Criteria:        s.criteria.clone(),
		FetchedAt:       s.fetchedAt,
	}
}
