// Package session holds the client's authentication state: the current user
// and bearer token, persisted in storage so a restart keeps the user logged
// in.
//
// The user and token are one models.Session value. Login sets both, Logout
// clears both, and every transition is written to storage in a single atomic
// write before observers are notified.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/autofinance/internal/client/models"
	"github.com/dmitrijs2005/autofinance/internal/client/storage"
	"github.com/dmitrijs2005/autofinance/internal/logging"
)

// ErrNoToken is returned by Login when the backend accepts the credentials
// but sends no token.
var ErrNoToken = errors.New("login response carried no token")

// Authenticator is the backend surface the store needs.
type Authenticator interface {
	Login(ctx context.Context, creds models.Credentials) (*models.LoginResponse, error)
	Register(ctx context.Context, reg models.Registration) (*models.Profile, error)
}

type Store struct {
	storage storage.Storage
	auth    Authenticator
	log     logging.Logger

	mu        sync.RWMutex
	session   models.Session
	listeners []func(models.Session)
}

// NewStore restores the session persisted in st. A stored user that is
// present and valid JSON makes the store start authenticated, with whatever
// token is stored next to it; the token is not validated. Anything else
// starts anonymous and the leftover keys are removed.
func NewStore(ctx context.Context, st storage.Storage, auth Authenticator, log logging.Logger) (*Store, error) {
	s := &Store{storage: st, auth: auth, log: log}

	restored, err := s.restore(ctx)
	if err != nil {
		return nil, err
	}
	s.session = restored

	if !restored.Authenticated() {
		if err := st.RemoveItems(ctx, storage.UserKey, storage.TokenKey); err != nil {
			return nil, fmt.Errorf("clear stale session: %w", err)
		}
	}
	return s, nil
}

func (s *Store) restore(ctx context.Context) (models.Session, error) {
	raw, ok, err := s.storage.GetItem(ctx, storage.UserKey)
	if err != nil {
		return models.Anonymous, fmt.Errorf("read stored user: %w", err)
	}
	if !ok || raw == "" {
		return models.Anonymous, nil
	}

	var user *models.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		s.log.Warn(ctx, "discarding unreadable stored user", "error", err)
		return models.Anonymous, nil
	}
	if user == nil {
		return models.Anonymous, nil
	}

	token, _, err := s.storage.GetItem(ctx, storage.TokenKey)
	if err != nil {
		return models.Anonymous, fmt.Errorf("read stored token: %w", err)
	}

	s.log.Debug(ctx, "session restored", "email", user.Email, "has_token", token != "")
	return models.Session{User: user, Token: token}, nil
}

// Login authenticates against the backend and, on success, persists and
// adopts the new session. Backend errors are returned unchanged and leave
// the current session untouched.
//
// The session email is the one from creds. The backend never confirms it;
// only the user_id claim, when the token carries one, comes from the server.
func (s *Store) Login(ctx context.Context, creds models.Credentials) error {
	resp, err := s.auth.Login(ctx, creds)
	if err != nil {
		return err
	}
	if resp == nil || resp.Token == "" {
		return ErrNoToken
	}

	next := models.Session{
		User:  &models.User{Email: creds.Email, ID: userIDFromToken(resp.Token)},
		Token: resp.Token,
	}
	if err := s.persist(ctx, next); err != nil {
		return err
	}

	s.set(next)
	s.log.Info(ctx, "logged in", "email", creds.Email)
	return nil
}

// Register forwards the registration. It never changes the session.
func (s *Store) Register(ctx context.Context, reg models.Registration) (*models.Profile, error) {
	return s.auth.Register(ctx, reg)
}

// Logout drops the current user and token. The in-memory session is cleared
// even if removing the persisted keys fails; that error is returned.
func (s *Store) Logout(ctx context.Context) error {
	s.set(models.Anonymous)
	if err := s.persist(ctx, models.Anonymous); err != nil {
		return err
	}
	s.log.Info(ctx, "logged out")
	return nil
}

func (s *Store) persist(ctx context.Context, next models.Session) error {
	if !next.Authenticated() {
		if err := s.storage.RemoveItems(ctx, storage.UserKey, storage.TokenKey); err != nil {
			return fmt.Errorf("remove session: %w", err)
		}
		return nil
	}

	b, err := json.Marshal(next.User)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	if err := s.storage.SetItems(ctx, map[string]string{
		storage.UserKey:  string(b),
		storage.TokenKey: next.Token,
	}); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (s *Store) set(next models.Session) {
	s.mu.Lock()
	s.session = next
	listeners := append([]func(models.Session){}, s.listeners...)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(next)
	}
}

// OnChange registers fn to be called with the new session after every
// login and logout.
func (s *Store) OnChange(fn func(models.Session)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Session returns a copy of the current session.
func (s *Store) Session() models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := s.session
	if out.User != nil {
		u := *out.User
		out.User = &u
	}
	return out
}

func (s *Store) User() *models.User {
	return s.Session().User
}

func (s *Store) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session.Authenticated()
}

// Token returns the bearer token, or "" when anonymous. It makes the store
// usable as an httpclient.TokenSource.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session.Token
}
