// Package session tracks who is signed in to the console.
//
// The Store is the only writer of the admin credential. It starts Unknown,
// restores a persisted token once at startup, and from then on moves between
// Authenticated and Anonymous through Login, Logout and Expire. Only principals
// with the admin role may hold a session.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/qradmin/internal/admin/models"
	"github.com/dmitrijs2005/qradmin/internal/common"
	"github.com/dmitrijs2005/qradmin/internal/logging"
	"github.com/golang-jwt/jwt/v5"
)

type State int

const (
	Unknown State = iota
	Restoring
	Authenticated
	Anonymous
)

func (s State) String() string {
	switch s {
	case Unknown:
		return "unknown"
	case Restoring:
		return "restoring"
	case Authenticated:
		return "authenticated"
	case Anonymous:
		return "anonymous"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// ErrInvalidState is returned when an operation is attempted from a state
// that does not allow it, e.g. Login while already authenticated.
var ErrInvalidState = errors.New("operation not allowed in current session state")

// AuthAPI is the part of the platform API the store talks to.
type AuthAPI interface {
	Login(ctx context.Context, email string, password []byte) (string, models.Principal, error)
	Me(ctx context.Context) (models.Principal, error)
}

// CredentialStore persists the bearer token between runs.
type CredentialStore interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

// savedAtReporter is implemented by stores that remember when the token was
// written.
type savedAtReporter interface {
	SavedAt(ctx context.Context) (time.Time, bool, error)
}

type Store struct {
	api    AuthAPI
	creds  CredentialStore
	logger logging.Logger
	now    func() time.Time

	mu         sync.RWMutex
	state      State
	token      string
	principal  models.Principal
	expiresAt  time.Time
	signedInAt time.Time
}

func New(api AuthAPI, creds CredentialStore, logger logging.Logger) *Store {
	return &Store{api: api, creds: creds, logger: logger, now: time.Now}
}

func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *Store) IsAuthenticated() bool {
	return s.State() == Authenticated
}

// Principal returns the signed-in admin. ok is false unless Authenticated.
func (s *Store) Principal() (models.Principal, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state != Authenticated {
		return models.Principal{}, false
	}
	return s.principal, true
}

// Token returns the bearer token in use, or "". While Restoring it is the
// persisted token being verified.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// ExpiresAt is the exp claim of the current token, when it carries one.
func (s *Store) ExpiresAt() (time.Time, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.expiresAt, s.state == Authenticated && !s.expiresAt.IsZero()
}

// SignedInAt is when the current token was issued to this console: the
// login time, or the stored write time after a restore.
func (s *Store) SignedInAt() (time.Time, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.signedInAt, s.state == Authenticated && !s.signedInAt.IsZero()
}

// tokenExpiry reads the exp claim without verifying the signature; the
// backend remains the authority on validity.
func tokenExpiry(token string) (time.Time, bool) {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}

func (s *Store) becomeAnonymous() {
	s.state = Anonymous
	s.token = ""
	s.principal = models.Principal{}
	s.expiresAt = time.Time{}
	s.signedInAt = time.Time{}
}

func (s *Store) clearStored(ctx context.Context) error {
	if err := s.creds.Clear(ctx); err != nil {
		s.logger.Error(ctx, "failed to clear stored credential", "error", err)
		return fmt.Errorf("clear credential: %w", err)
	}
	return nil
}

// Restore runs once at startup. A stored token is kept only if the backend
// confirms it belongs to an admin; anything else leaves the store Anonymous
// with the token discarded.
func (s *Store) Restore(ctx context.Context) error {
	s.mu.Lock()
	if s.state != Unknown {
		s.mu.Unlock()
		return fmt.Errorf("restore: %w", ErrInvalidState)
	}
	s.state = Restoring
	s.mu.Unlock()

	token, err := s.creds.Load(ctx)
	if err != nil {
		s.mu.Lock()
		s.becomeAnonymous()
		s.mu.Unlock()
		return fmt.Errorf("load credential: %w", err)
	}
	if token == "" {
		s.mu.Lock()
		s.becomeAnonymous()
		s.mu.Unlock()
		return nil
	}

	exp, hasExp := tokenExpiry(token)
	if hasExp && !exp.After(s.now()) {
		s.logger.Info(ctx, "stored token expired", "expired_at", exp)
		s.mu.Lock()
		s.becomeAnonymous()
		s.mu.Unlock()
		return s.clearStored(ctx)
	}

	s.mu.Lock()
	s.token = token
	s.mu.Unlock()

	p, err := s.api.Me(ctx)
	if err == nil && !p.IsAdmin() {
		err = common.ErrAdminRequired
	}
	if err != nil {
		s.logger.Info(ctx, "stored session rejected", "error", err)
		s.mu.Lock()
		s.becomeAnonymous()
		s.mu.Unlock()
		return s.clearStored(ctx)
	}

	var savedAt time.Time
	if r, ok := s.creds.(savedAtReporter); ok {
		at, found, err := r.SavedAt(ctx)
		if err != nil {
			s.logger.Warn(ctx, "failed to read token save time", "error", err)
		} else if found {
			savedAt = at
		}
	}

	s.mu.Lock()
	s.state = Authenticated
	s.principal = p
	s.expiresAt = exp
	s.signedInAt = savedAt
	s.mu.Unlock()
	s.logger.Info(ctx, "session restored", "user", p.Email, "saved_at", savedAt)
	return nil
}

// Login is allowed from Anonymous only. Concurrent logins are not
// coalesced: whichever resolves last decides the session.
func (s *Store) Login(ctx context.Context, email string, password []byte) (models.Principal, error) {
	if st := s.State(); st != Anonymous {
		return models.Principal{}, fmt.Errorf("login from %s: %w", st, ErrInvalidState)
	}

	token, p, err := s.api.Login(ctx, email, password)
	if err != nil {
		return models.Principal{}, err
	}
	if !p.IsAdmin() {
		s.logger.Warn(ctx, "non-admin login refused", "user", email, "role", p.Role)
		return models.Principal{}, common.ErrAdminRequired
	}

	if err := s.creds.Save(ctx, token); err != nil {
		return models.Principal{}, fmt.Errorf("save credential: %w", err)
	}

	exp, _ := tokenExpiry(token)

	s.mu.Lock()
	s.state = Authenticated
	s.token = token
	s.principal = p
	s.expiresAt = exp
	s.signedInAt = s.now()
	s.mu.Unlock()

	s.logger.Info(ctx, "logged in", "user", p.Email)
	return p, nil
}

// Logout always ends Anonymous; the returned error only reports a failure to
// remove the stored token.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.becomeAnonymous()
	s.mu.Unlock()
	return s.clearStored(ctx)
}

// Expire is the unauthorized hook. It drops an Authenticated session and
// reports true; in any other state it does nothing, so concurrent 401s
// clear the credential once.
func (s *Store) Expire(ctx context.Context) bool {
	s.mu.Lock()
	if s.state != Authenticated {
		s.mu.Unlock()
		return false
	}
	s.becomeAnonymous()
	s.mu.Unlock()

	s.logger.Warn(ctx, "session expired")
	_ = s.clearStored(ctx)
	return true
}
