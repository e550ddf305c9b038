package lesson

import (
	"sync"
	"time"
)

type session struct {
	store    *Store
	lastSeen time.Time
}

// Sessions keeps one Store per tutor session, all backed by the same Gateway.
type Sessions struct {
	gateway Gateway

	mutex    sync.RWMutex
	sessions map[string]*session
}

func NewSessions(gw Gateway) *Sessions {
	return &Sessions{
		gateway:  gw,
		sessions: make(map[string]*session),
	}
}

// Get returns the Store of session `id`, creating it for tutor on first use.
// The second return value reports whether the Store was just created.
func (ss *Sessions) Get(id, tutor string) (*Store, bool) {
	ss.mutex.Lock()
	defer ss.mutex.Unlock()

	now := NowFunc()
	if sess, ok := ss.sessions[id]; ok {
		sess.lastSeen = now
		return sess.store, false
	}
	sess := &session{store: NewStore(ss.gateway, tutor), lastSeen: now}
	ss.sessions[id] = sess
	return sess.store, true
}

func (ss *Sessions) Len() int {
	ss.mutex.RLock()
	defer ss.mutex.RUnlock()
	return len(ss.sessions)
}

// Each calls fn for every session. fn runs without the registry lock held.
func (ss *Sessions) Each(fn func(id string, store *Store)) {
	ss.mutex.RLock()
	stores := make(map[string]*Store, len(ss.sessions))
	for id, sess := range ss.sessions {
		stores[id] = sess.store
	}
	ss.mutex.RUnlock()

	for id, store := range stores {
		fn(id, store)
	}
}

// Prune drops the sessions not used for longer than ttl and returns how many were dropped.
func (ss *Sessions) Prune(ttl time.Duration) int {
	ss.mutex.Lock()
	defer ss.mutex.Unlock()

	var pruned int
	deadline := NowFunc().Add(-ttl)
	for id, sess := range ss.sessions {
		if sess.lastSeen.Before(deadline) {
			delete(ss.sessions, id)
			pruned++
		}
	}
	return pruned
}
