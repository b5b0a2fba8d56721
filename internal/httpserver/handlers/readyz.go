package handlers

import (
	"net/http"

	"github.com/selahapp/selah/internal/httpserver/deps"
)

type readyzResponse struct {
	Ready    bool `json:"ready"`
	SignedIn bool `json:"signed_in"`
}

func Readyz(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		signedIn := false
		if d.Session != nil {
			_, signedIn = d.Session.Owner()
		}
		writeJSON(w, http.StatusOK, readyzResponse{Ready: true, SignedIn: signedIn})
	}
}
