package schedule

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// session сессия редактирования: единственный владелец WeekSchedule до сохранения
type session struct {
	id        string
	companyID int64
	userID    int64
	week      domain.WeekSchedule
	expiresAt time.Time
}

// sessionStore хранилище сессий в памяти процесса.
// Сессия продлевается при каждом обращении, истекшие удаляются при следующем доступе к хранилищу.
type sessionStore struct {
	mu    sync.Mutex
	ttl   time.Duration
	items map[string]*session
	now   func() time.Time
}

func newSessionStore(ttl time.Duration, now func() time.Time) *sessionStore {
	return &sessionStore{
		ttl:   ttl,
		items: make(map[string]*session),
		now:   now,
	}
}

func (s *sessionStore) create(companyID, userID int64, week domain.WeekSchedule) (session, int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweepLocked()

	sess := &session{
		id:        uuid.NewString(),
		companyID: companyID,
		userID:    userID,
		week:      week,
		expiresAt: s.now().Add(s.ttl),
	}
	s.items[sess.id] = sess

	return *sess, len(s.items)
}

func (s *sessionStore) get(id string, userID int64) (session, error) {
	return s.update(id, userID, nil)
}

// update применяет fn к неделе сессии под блокировкой. fn == nil только продлевает сессию.
func (s *sessionStore) update(id string, userID int64, fn func(domain.WeekSchedule) domain.WeekSchedule) (session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweepLocked()

	sess, ok := s.items[id]
	if !ok {
		return session{}, ErrSessionNotFound
	}
	if sess.userID != userID {
		return session{}, ErrAccessDenied
	}

	if fn != nil {
		sess.week = fn(sess.week)
	}
	sess.expiresAt = s.now().Add(s.ttl)

	return *sess, nil
}

func (s *sessionStore) remove(id string, userID int64) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweepLocked()

	sess, ok := s.items[id]
	if !ok {
		return len(s.items), ErrSessionNotFound
	}
	if sess.userID != userID {
		return len(s.items), ErrAccessDenied
	}
	delete(s.items, id)

	return len(s.items), nil
}

func (s *sessionStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweepLocked()
	return len(s.items)
}

func (s *sessionStore) sweepLocked() {
	now := s.now()
	for id, sess := range s.items {
		if !now.Before(sess.expiresAt) {
			delete(s.items, id)
		}
	}
}
