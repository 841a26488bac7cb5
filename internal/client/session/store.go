// Package session holds the process-wide authentication session of the
// admin client: the bearer token, its persistence in local storage and the
// subscribers interested in login/logout transitions.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/employwise/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/employwise/internal/common"
	"github.com/dmitrijs2005/employwise/internal/logging"
)

var ErrEmptyToken = errors.New("empty token")

// Store is safe for concurrent use. A nil repository keeps the session in
// memory only.
type Store struct {
	mu     sync.RWMutex
	token  string
	email  string
	repo   metadata.Repository
	logger logging.Logger

	nextID      int
	subscribers map[int]func(authenticated bool)
}

func NewStore(repo metadata.Repository, logger logging.Logger) *Store {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Store{
		repo:        repo,
		logger:      logger,
		subscribers: make(map[int]func(bool)),
	}
}

// Load restores a previously persisted session. Subscribers are notified
// when a token is found.
func (s *Store) Load(ctx context.Context) error {
	if s.repo == nil {
		return nil
	}

	tok, err := s.repo.Get(ctx, common.TokenStorageKey)
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}
	if len(tok) == 0 {
		return nil
	}
	email, err := s.repo.Get(ctx, common.EmailStorageKey)
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}

	s.mu.Lock()
	s.token = string(tok)
	s.email = string(email)
	s.mu.Unlock()

	s.logger.Debug(ctx, "session restored")
	s.publish(true)
	return nil
}

// SetSession persists token and email together and makes them current. An
// empty email removes any stored one so a restored session never shows a
// previous user's address.
func (s *Store) SetSession(ctx context.Context, token, email string) error {
	if token == "" {
		return ErrEmptyToken
	}

	if s.repo != nil {
		set := map[string][]byte{common.TokenStorageKey: []byte(token)}
		var del []string
		if email != "" {
			set[common.EmailStorageKey] = []byte(email)
		} else {
			del = append(del, common.EmailStorageKey)
		}
		if err := s.repo.Update(ctx, set, del...); err != nil {
			return fmt.Errorf("save session: %w", err)
		}
	}

	s.mu.Lock()
	s.token = token
	s.email = email
	s.mu.Unlock()

	s.logger.Info(ctx, "session started")
	s.publish(true)
	return nil
}

// ClearToken forgets the session in memory and in storage. The in-memory
// session is cleared even when the storage delete fails.
func (s *Store) ClearToken(ctx context.Context) error {
	s.mu.Lock()
	s.token = ""
	s.email = ""
	s.mu.Unlock()

	var err error
	if s.repo != nil {
		if e := s.repo.Update(ctx, nil, common.TokenStorageKey, common.EmailStorageKey); e != nil {
			err = fmt.Errorf("clear session: %w", e)
		}
	}

	s.logger.Info(ctx, "session ended")
	s.publish(false)
	return err
}

func (s *Store) HasToken() bool {
	return s.Token() != ""
}

func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Email is the address the current session was opened with, or "" when it
// is unknown.
func (s *Store) Email() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.email
}

// Subscribe registers fn for authentication changes and returns a function
// that removes it.
func (s *Store) Subscribe(fn func(authenticated bool)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subscribers[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subscribers, id)
			s.mu.Unlock()
		})
	}
}

// publish calls subscribers outside the lock so they may read the store.
func (s *Store) publish(authenticated bool) {
	s.mu.RLock()
	fns := make([]func(bool), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		fns = append(fns, fn)
	}
	s.mu.RUnlock()

	for _, fn := range fns {
		fn(authenticated)
	}
}
