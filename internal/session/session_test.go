package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/selahapp/selah/internal/auth"
	"github.com/selahapp/selah/internal/logger"
	"github.com/selahapp/selah/internal/store/remote"
)

type fakeUsers struct {
	byEmail map[string][2]string // email -> {id, hash}
}

func (u *fakeUsers) CreateUser(_ context.Context, email, hash string) (string, error) {
	if _, ok := u.byEmail[email]; ok {
		return "", remote.ErrEmailTaken
	}
	id := "user-" + email
	u.byEmail[email] = [2]string{id, hash}
	return id, nil
}

func (u *fakeUsers) UserCredentials(_ context.Context, email string) (string, string, error) {
	rec, ok := u.byEmail[email]
	if !ok {
		return "", "", remote.ErrNotFound
	}
	return rec[0], rec[1], nil
}

type fakeTokenStore struct {
	token string
}

func (s *fakeTokenStore) SessionToken(context.Context) (string, bool) {
	return s.token, s.token != ""
}
func (s *fakeTokenStore) SaveSessionToken(_ context.Context, token string) error {
	s.token = token
	return nil
}
func (s *fakeTokenStore) ClearSessionToken(context.Context) error {
	s.token = ""
	return nil
}

func newTestManager() (*Manager, *fakeUsers, *fakeTokenStore) {
	users := &fakeUsers{byEmail: map[string][2]string{}}
	device := &fakeTokenStore{}
	m := NewManager(users, auth.NewTokens("test-secret", time.Hour), device, logger.New("error", false))
	return m, users, device
}

func TestSignUpOpensSession(t *testing.T) {
	m, _, device := newTestManager()
	ctx := context.Background()

	id, err := m.SignUp(ctx, "Reader@Example.com", "a long password")
	if err != nil {
		t.Fatalf("SignUp failed: %v", err)
	}

	owner, ok := m.Owner()
	if !ok || owner != id {
		t.Errorf("expected session owner %q, got %q ok=%v", id, owner, ok)
	}
	if email, _ := m.Email(); email != "reader@example.com" {
		t.Errorf("email should be normalized, got %q", email)
	}
	if device.token == "" {
		t.Error("session token should be persisted")
	}
}

func TestSignInRejectsBadCredentials(t *testing.T) {
	m, _, _ := newTestManager()
	ctx := context.Background()

	if _, err := m.SignUp(ctx, "reader@example.com", "a long password"); err != nil {
		t.Fatalf("SignUp failed: %v", err)
	}
	if err := m.SignOut(ctx); err != nil {
		t.Fatalf("SignOut failed: %v", err)
	}

	if _, err := m.SignIn(ctx, "reader@example.com", "wrong password"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials for wrong password, got %v", err)
	}
	if _, err := m.SignIn(ctx, "nobody@example.com", "a long password"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
	if _, ok := m.Owner(); ok {
		t.Error("failed sign-in must not open a session")
	}

	if _, err := m.SignIn(ctx, "reader@example.com", "a long password"); err != nil {
		t.Errorf("valid sign-in failed: %v", err)
	}
}

func TestSignOut(t *testing.T) {
	m, _, device := newTestManager()
	ctx := context.Background()

	if _, err := m.SignUp(ctx, "reader@example.com", "a long password"); err != nil {
		t.Fatalf("SignUp failed: %v", err)
	}
	if err := m.SignOut(ctx); err != nil {
		t.Fatalf("SignOut failed: %v", err)
	}

	if _, ok := m.Owner(); ok {
		t.Error("session should be closed")
	}
	if device.token != "" {
		t.Error("persisted token should be cleared")
	}
	if err := m.SignOut(ctx); !errors.Is(err, ErrNotSignedIn) {
		t.Errorf("expected ErrNotSignedIn, got %v", err)
	}
}

func TestRestore(t *testing.T) {
	m, users, device := newTestManager()
	ctx := context.Background()

	id, err := m.SignUp(ctx, "reader@example.com", "a long password")
	if err != nil {
		t.Fatalf("SignUp failed: %v", err)
	}

	// A fresh manager sharing the same device store resumes the session.
	restored := NewManager(users, auth.NewTokens("test-secret", time.Hour), device, logger.New("error", false))
	restored.Restore(ctx)

	owner, ok := restored.Owner()
	if !ok || owner != id {
		t.Errorf("expected restored owner %q, got %q ok=%v", id, owner, ok)
	}
}

func TestRestoreDropsTamperedToken(t *testing.T) {
	m, _, device := newTestManager()
	device.token = "not-a-real-token"

	m.Restore(context.Background())

	if _, ok := m.Owner(); ok {
		t.Error("tampered token must not open a session")
	}
	if device.token != "" {
		t.Error("tampered token should be cleared")
	}
}

func TestSignUpValidation(t *testing.T) {
	m, _, _ := newTestManager()
	ctx := context.Background()

	if _, err := m.SignUp(ctx, "not-an-email", "a long password"); !errors.Is(err, ErrInvalidEmail) {
		t.Errorf("expected ErrInvalidEmail, got %v", err)
	}
	if _, err := m.SignUp(ctx, "reader@example.com", "short"); !errors.Is(err, auth.ErrPasswordTooShort) {
		t.Errorf("expected ErrPasswordTooShort, got %v", err)
	}
	if _, err := m.SignUp(ctx, "reader@example.com", "a long password"); err != nil {
		t.Fatalf("SignUp failed: %v", err)
	}
	if _, err := m.SignUp(ctx, "reader@example.com", "a long password"); !errors.Is(err, remote.ErrEmailTaken) {
		t.Errorf("expected ErrEmailTaken, got %v", err)
	}
}
