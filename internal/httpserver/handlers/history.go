package handlers

import (
	"net/http"

	"github.com/selahapp/selah/internal/httpserver/deps"
)

type searchQueryRequest struct {
	Query string `json:"query"`
}

func ListSearchHistory(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		history := d.Local.SearchHistory(r.Context())
		if history == nil {
			history = []string{}
		}
		writeJSON(w, http.StatusOK, history)
	}
}

func AddSearchQuery(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req searchQueryRequest
		if err := decode(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := d.Local.AddSearchQuery(r.Context(), req.Query); err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func ClearSearchHistory(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := d.Local.ClearSearchHistory(r.Context()); err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
