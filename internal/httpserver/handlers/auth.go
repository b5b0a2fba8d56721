package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/selahapp/selah/internal/auth"
	"github.com/selahapp/selah/internal/httpserver/deps"
	"github.com/selahapp/selah/internal/logger"
	"github.com/selahapp/selah/internal/session"
	"github.com/selahapp/selah/internal/store/remote"
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionResponse struct {
	SignedIn bool   `json:"signed_in"`
	Email    string `json:"email,omitempty"`
}

func SignUp(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if d.Session == nil {
			writeError(w, http.StatusServiceUnavailable, "account sync is not configured")
			return
		}

		var req credentialsRequest
		if err := decode(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		userID, err := d.Session.SignUp(r.Context(), req.Email, req.Password)
		if err != nil {
			writeAuthError(w, err)
			return
		}

		afterSignIn(d, userID)
		email, _ := d.Session.Email()
		writeJSON(w, http.StatusCreated, sessionResponse{SignedIn: true, Email: email})
	}
}

func SignIn(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if d.Session == nil {
			writeError(w, http.StatusServiceUnavailable, "account sync is not configured")
			return
		}

		var req credentialsRequest
		if err := decode(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		userID, err := d.Session.SignIn(r.Context(), req.Email, req.Password)
		if err != nil {
			writeAuthError(w, err)
			return
		}

		afterSignIn(d, userID)
		email, _ := d.Session.Email()
		writeJSON(w, http.StatusOK, sessionResponse{SignedIn: true, Email: email})
	}
}

func SignOut(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if d.Session == nil {
			writeError(w, http.StatusServiceUnavailable, "account sync is not configured")
			return
		}

		if err := d.Session.SignOut(r.Context()); err != nil {
			if errors.Is(err, session.ErrNotSignedIn) {
				writeError(w, http.StatusConflict, err.Error())
				return
			}
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		// Back to device data.
		d.Reload(r.Context())
		writeJSON(w, http.StatusOK, sessionResponse{SignedIn: false})
	}
}

func Me(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := sessionResponse{}
		if d.Session != nil {
			if email, ok := d.Session.Email(); ok {
				resp.SignedIn = true
				resp.Email = email
			}
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// afterSignIn kicks the one-time device transfer and reloads the services
// onto the account backend. It runs in the background so sign-in responds
// immediately.
func afterSignIn(d deps.Deps, userID string) {
	go func() {
		ctx := context.Background()
		if d.Migrator != nil {
			d.Migrator.Run(ctx, userID)
		}
		d.Reload(ctx)
		d.Logger.Info("annotations reloaded for account", logger.String("user_id", userID))
	}()
}

func writeAuthError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, session.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, session.ErrInvalidEmail),
		errors.Is(err, auth.ErrPasswordTooShort):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, remote.ErrEmailTaken):
		writeError(w, http.StatusConflict, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
