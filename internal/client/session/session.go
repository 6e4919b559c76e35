// Package session owns the signed-in identity and its access token.
//
// The Store is the single place that writes either value. Everything else
// reads through accessors. Every change to the identity is mirrored in the
// durable token slots, so a restart restores the same session through Init.
package session

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/fletes/internal/client/auth"
	"github.com/dmitrijs2005/fletes/internal/client/models"
	"github.com/dmitrijs2005/fletes/internal/common"
	"github.com/dmitrijs2005/fletes/internal/logging"
)

type State int

const (
	StateUninitialized State = iota
	StateLoading
	StateAnonymous
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateAnonymous:
		return "anonymous"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "uninitialized"
	}
}

// TokenSlots is the durable key/value storage behind the session.
type TokenSlots interface {
	Get(ctx context.Context, slot string) (string, error)
	Set(ctx context.Context, slot, value string) error
	Clear(ctx context.Context, slots ...string) error
}

// Logouter ends the session on the server.
type Logouter interface {
	Logout(ctx context.Context) (*models.LogoutResponse, error)
}

type Store struct {
	mu       sync.RWMutex
	state    State
	identity *models.Identity
	token    string

	slots  TokenSlots
	remote Logouter
	logger logging.Logger

	initOnce sync.Once
	ready    chan struct{}
}

func New(slots TokenSlots, remote Logouter, logger logging.Logger) *Store {
	return &Store{
		slots:  slots,
		remote: remote,
		logger: logger.With("component", "session"),
		ready:  make(chan struct{}),
	}
}

// Init restores the session from the durable slots. It runs once; Ready is
// closed when it finishes, whatever the outcome.
func (s *Store) Init(ctx context.Context) {
	s.initOnce.Do(func() {
		defer close(s.ready)
		s.restore(ctx)
	})
}

// Ready is closed once Init has settled the state.
func (s *Store) Ready() <-chan struct{} {
	return s.ready
}

func (s *Store) restore(ctx context.Context) {
	s.setState(StateLoading)

	token, err := s.slots.Get(ctx, common.AccessTokenSlot)
	if err != nil {
		s.logger.Error(ctx, "failed to read stored token", "error", err)
		s.setState(StateAnonymous)
		return
	}
	if token == "" {
		s.setState(StateAnonymous)
		return
	}

	identity, err := auth.DecodeIdentity(token)
	if err != nil {
		s.logger.Warn(ctx, "stored token unreadable, clearing session", "error", err)
		// The remote logout still carries the stale token.
		s.mu.Lock()
		s.token = token
		s.mu.Unlock()
		s.Logout(ctx)
		return
	}

	s.mu.Lock()
	s.token = token
	s.identity = identity
	s.state = StateAuthenticated
	s.mu.Unlock()

	s.logger.Info(ctx, "session restored", "user", identity.Name, "role", identity.Role)
}

// Login adopts token as the session's access token. It reports false, and
// leaves the session unchanged, when the token is empty, unreadable or
// cannot be persisted.
func (s *Store) Login(ctx context.Context, token string) bool {
	if token == "" {
		s.logger.Warn(ctx, "login called without a token")
		return false
	}

	identity, err := auth.DecodeIdentity(token)
	if err != nil {
		s.logger.Warn(ctx, "login token unreadable", "error", err)
		return false
	}

	if err := s.slots.Set(ctx, common.AccessTokenSlot, token); err != nil {
		s.logger.Error(ctx, "failed to persist token", "error", err)
		return false
	}

	s.mu.Lock()
	s.token = token
	s.identity = identity
	s.state = StateAuthenticated
	s.mu.Unlock()

	s.logger.Info(ctx, "signed in", "user", identity.Name, "role", identity.Role)
	return true
}

// SaveRefreshToken stores the refresh token next to the access token. It is
// only ever cleared again; refreshing is not supported.
func (s *Store) SaveRefreshToken(ctx context.Context, token string) {
	if token == "" {
		return
	}
	if err := s.slots.Set(ctx, common.RefreshTokenSlot, token); err != nil {
		s.logger.Error(ctx, "failed to persist refresh token", "error", err)
	}
}

// Logout tells the server (best effort), clears both slots and drops the
// identity. It cannot fail from the caller's point of view.
func (s *Store) Logout(ctx context.Context) {
	if s.remote != nil {
		if _, err := s.remote.Logout(ctx); err != nil {
			s.logger.Warn(ctx, "remote logout failed", "error", err)
		}
	}

	if err := s.slots.Clear(ctx, common.AccessTokenSlot, common.RefreshTokenSlot); err != nil {
		s.logger.Error(ctx, "failed to clear stored tokens", "error", err)
	}

	s.mu.Lock()
	s.token = ""
	s.identity = nil
	s.state = StateAnonymous
	s.mu.Unlock()
}

func (s *Store) setState(st State) {
	s.mu.Lock()
	s.state = st
	s.mu.Unlock()
}

func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Identity returns a copy of the signed-in identity, or nil.
func (s *Store) Identity() *models.Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.identity == nil {
		return nil
	}
	id := *s.identity
	return &id
}

func (s *Store) IsAuthenticated() bool {
	return s.State() == StateAuthenticated
}

func (s *Store) IsAdmin() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state == StateAuthenticated && s.identity.HasRole(common.AdminRole)
}

// Loading is true until Init has settled the state.
func (s *Store) Loading() bool {
	st := s.State()
	return st == StateUninitialized || st == StateLoading
}

// AccessToken implements client.TokenSource.
func (s *Store) AccessToken(ctx context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, nil
}
