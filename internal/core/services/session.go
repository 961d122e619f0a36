package services

import (
	"context"
	"fmt"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/redline-labs/redline-cli/internal/core/domain"
	"github.com/redline-labs/redline-cli/internal/core/engine"
	"github.com/redline-labs/redline-cli/internal/core/ports/driven"
	"github.com/redline-labs/redline-cli/internal/core/ports/driving"
	"github.com/redline-labs/redline-cli/internal/logger"
)

// Ensure SessionService implements the interface.
var _ driving.SessionService = (*SessionService)(nil)

// session pairs one engine with the lock that serializes access to it.
type session struct {
	mu   sync.Mutex
	info driving.SessionInfo
	eng  *engine.Engine
}

// SessionService is the session table: one exclusive engine handle per
// open document, keyed by an opaque uuid. The engine itself is not
// concurrency-safe; every access goes through the per-session lock in
// With, making the single-writer contract explicit.
type SessionService struct {
	codec driven.DocumentCodec

	mu       sync.RWMutex
	sessions map[string]*session
}

// NewSessionService creates an empty session table backed by codec.
func NewSessionService(codec driven.DocumentCodec) *SessionService {
	return &SessionService{
		codec:    codec,
		sessions: make(map[string]*session),
	}
}

// Open loads the document at path into a new session.
func (s *SessionService) Open(_ context.Context, path string) (driving.SessionInfo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return driving.SessionInfo{}, fmt.Errorf("%w: document %s", domain.ErrNotFound, path)
		}
		return driving.SessionInfo{}, fmt.Errorf("reading document: %w", err)
	}

	snap, err := s.codec.Decode(data)
	if err != nil {
		return driving.SessionInfo{}, fmt.Errorf("decoding document %s: %w", path, err)
	}

	sess := &session{
		info: driving.SessionInfo{
			ID:       uuid.NewString(),
			Path:     path,
			OpenedAt: time.Now(),
		},
		eng: engine.Load(snap),
	}

	s.mu.Lock()
	s.sessions[sess.info.ID] = sess
	s.mu.Unlock()

	logger.Info("opened session %s for %s", sess.info.ID, path)
	return sess.info, nil
}

// Get returns the descriptor for an open session.
func (s *SessionService) Get(id string) (driving.SessionInfo, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return driving.SessionInfo{}, err
	}
	return sess.info, nil
}

// List returns descriptors for all open sessions, ordered by open
// time.
func (s *SessionService) List() []driving.SessionInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]driving.SessionInfo, 0, len(s.sessions))
	for _, sess := range s.sessions {
		out = append(out, sess.info)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].OpenedAt.Before(out[j].OpenedAt)
	})
	return out
}

// With runs fn against the session's engine under the session lock.
func (s *SessionService) With(id string, fn func(*engine.Engine) error) error {
	sess, err := s.lookup(id)
	if err != nil {
		return err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	return fn(sess.eng)
}

// Save serializes the session's current state back to its file.
func (s *SessionService) Save(_ context.Context, id string) error {
	sess, err := s.lookup(id)
	if err != nil {
		return err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	data, err := s.codec.Encode(sess.eng.Snapshot())
	if err != nil {
		return fmt.Errorf("encoding document: %w", err)
	}
	if err := os.WriteFile(sess.info.Path, data, 0o644); err != nil {
		return fmt.Errorf("writing document: %w", err)
	}
	logger.Debug("saved session %s to %s", id, sess.info.Path)
	return nil
}

// Close saves the session and removes it from the table.
func (s *SessionService) Close(ctx context.Context, id string) error {
	if err := s.Save(ctx, id); err != nil {
		return err
	}

	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()

	logger.Info("closed session %s", id)
	return nil
}

func (s *SessionService) lookup(id string) (*session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: session %s", domain.ErrNotFound, id)
	}
	return sess, nil
}
