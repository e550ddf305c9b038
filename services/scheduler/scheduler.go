package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"

	"github.com/trezcool/tutordesk/core"
	"github.com/trezcool/tutordesk/core/lesson"
)

const refreshTimeout = time.Minute

// Scheduler periodically re-fetches every session so lesson types follow the clock,
// and drops the sessions idle for longer than the configured TTL.
type Scheduler struct {
	cron     *cron.Cron
	sessions *lesson.Sessions
	logger   core.Logger
	ttl      time.Duration
}

func New(sessions *lesson.Sessions, logger core.Logger, conf *core.Config) (*Scheduler, error) {
	s := &Scheduler{
		cron:     cron.New(cron.WithLocation(conf.Scheduler.Location())),
		sessions: sessions,
		logger:   logger,
		ttl:      conf.Scheduler.SessionTTL,
	}
	_, err := s.cron.AddFunc(conf.Scheduler.RefreshCron, func() {
		ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
		defer cancel()
		s.Refresh(ctx)
	})
	if err != nil {
		return nil, errors.Wrapf(err, "parsing refresh schedule %q", conf.Scheduler.RefreshCron)
	}
	return s, nil
}

func (s *Scheduler) Start() { s.cron.Start() }

// Stop stops the scheduler and returns a context done once a running refresh completes.
func (s *Scheduler) Stop() context.Context { return s.cron.Stop() }

// Refresh prunes idle sessions then re-fetches the lessons of the remaining ones concurrently.
// It returns the number of sessions that failed to refresh.
func (s *Scheduler) Refresh(ctx context.Context) int {
	if s.ttl > 0 {
		if n := s.sessions.Prune(s.ttl); n > 0 {
			s.logger.Info(fmt.Sprintf("pruned %d idle session(s)", n))
		}
	}

	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		failed int
	)
	s.sessions.Each(func(id string, store *lesson.Store) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := store.FetchLessons(ctx); err != nil {
				mu.Lock()
				failed++
				mu.Unlock()
				s.logger.Warn("refreshing session "+id, err)
			}
		}()
	})
	wg.Wait()

	s.logger.Info(fmt.Sprintf("refreshed %d session(s)", s.sessions.Len()-failed))
	return failed
}
