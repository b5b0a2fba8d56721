// Package session tracks the signed-in account for this device. The session
// token is persisted locally so a restart resumes in signed-in mode without
// asking for credentials again.
package session

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/selahapp/selah/internal/auth"
	"github.com/selahapp/selah/internal/logger"
	"github.com/selahapp/selah/internal/store/remote"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrNotSignedIn        = errors.New("not signed in")
)

// UserStore is the account registry behind sign-up and sign-in.
type UserStore interface {
	CreateUser(ctx context.Context, email, passwordHash string) (string, error)
	UserCredentials(ctx context.Context, email string) (id, hash string, err error)
}

// TokenStore persists the session token on the device.
type TokenStore interface {
	SessionToken(ctx context.Context) (string, bool)
	SaveSessionToken(ctx context.Context, token string) error
	ClearSessionToken(ctx context.Context) error
}

// Manager holds the current session state.
type Manager struct {
	mu     sync.RWMutex
	userID string
	email  string

	users  UserStore
	tokens *auth.Tokens
	device TokenStore
	log    logger.Logger
}

func NewManager(users UserStore, tokens *auth.Tokens, device TokenStore, log logger.Logger) *Manager {
	return &Manager{users: users, tokens: tokens, device: device, log: log}
}

// Owner returns the signed-in user id, if any.
func (m *Manager) Owner() (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.userID, m.userID != ""
}

// Email returns the signed-in email, if any.
func (m *Manager) Email() (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.email, m.email != ""
}

// Restore resumes a persisted session. An expired or tampered token is
// dropped silently and the device starts signed out.
func (m *Manager) Restore(ctx context.Context) {
	token, ok := m.device.SessionToken(ctx)
	if !ok {
		return
	}

	claims, err := m.tokens.Parse(token)
	if err != nil {
		m.log.Info("dropping stale session token")
		if err := m.device.ClearSessionToken(ctx); err != nil {
			m.log.Warn("failed to clear session token", logger.Error(err))
		}
		return
	}

	m.set(claims.UserID, claims.Email)
	m.log.Info("session restored", logger.String("email", claims.Email))
}

// SignUp registers an account and signs in.
func (m *Manager) SignUp(ctx context.Context, email, password string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !strings.Contains(email, "@") {
		return "", ErrInvalidEmail
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return "", err
	}

	userID, err := m.users.CreateUser(ctx, email, hash)
	if err != nil {
		return "", err
	}
	return userID, m.open(ctx, userID, email)
}

// SignIn verifies credentials and opens a session.
func (m *Manager) SignIn(ctx context.Context, email, password string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	userID, hash, err := m.users.UserCredentials(ctx, email)
	if err != nil {
		if errors.Is(err, remote.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if !auth.CheckPassword(hash, password) {
		return "", ErrInvalidCredentials
	}
	return userID, m.open(ctx, userID, email)
}

// SignOut closes the session and drops the persisted token. Device data is
// left untouched.
func (m *Manager) SignOut(ctx context.Context) error {
	m.mu.Lock()
	wasSignedIn := m.userID != ""
	m.userID = ""
	m.email = ""
	m.mu.Unlock()

	if !wasSignedIn {
		return ErrNotSignedIn
	}
	if err := m.device.ClearSessionToken(ctx); err != nil {
		m.log.Warn("failed to clear session token", logger.Error(err))
	}
	return nil
}

func (m *Manager) open(ctx context.Context, userID, email string) error {
	token, err := m.tokens.Issue(userID, email)
	if err != nil {
		return err
	}
	if err := m.device.SaveSessionToken(ctx, token); err != nil {
		// The session still opens; it just will not survive a restart.
		m.log.Warn("failed to persist session token", logger.Error(err))
	}
	m.set(userID, email)
	return nil
}

func (m *Manager) set(userID, email string) {
	m.mu.Lock()
	m.userID = userID
	m.email = email
	m.mu.Unlock()
}
