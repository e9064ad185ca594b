package service

import (
	"sync"

	"rewardbot/internal/domain"
	"rewardbot/internal/domain/entity"
	"rewardbot/pkg/errcodes"
)

// SessionStore keeps per-user bulk-entry buffers. Sessions live only in
// process memory and are lost on restart, which the bulk workflow accepts.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[int64]*session
}

type session struct {
	kind  entity.ItemKind
	lines []string
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[int64]*session)}
}

// Start opens a session for the user. A user holds at most one session
// across both kinds.
func (s *SessionStore) Start(userID int64, kind entity.ItemKind) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[userID]; ok {
		return domain.NewError(errcodes.SessionAlreadyActive, "bulk session already active")
	}

	s.sessions[userID] = &session{kind: kind}

	return nil
}

// Append adds a line to the user's buffer, reporting whether a session was
// active.
func (s *SessionStore) Append(userID int64, line string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[userID]
	if !ok {
		return false
	}

	sess.lines = append(sess.lines, line)

	return true
}

// Finish removes the session and returns its kind and buffered lines.
func (s *SessionStore) Finish(userID int64) (entity.ItemKind, []string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[userID]
	if !ok {
		return "", nil, domain.NewError(errcodes.SessionNotFound, "no active bulk session")
	}

	delete(s.sessions, userID)

	return sess.kind, sess.lines, nil
}

// Cancel discards the session without persisting anything.
func (s *SessionStore) Cancel(userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[userID]; !ok {
		return domain.NewError(errcodes.SessionNotFound, "no active bulk session")
	}

	delete(s.sessions, userID)

	return nil
}

// Active reports whether the user has an open session.
func (s *SessionStore) Active(userID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.sessions[userID]

	return ok
}
