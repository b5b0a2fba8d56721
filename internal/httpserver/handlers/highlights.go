package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/selahapp/selah/internal/domain"
	"github.com/selahapp/selah/internal/httpserver/deps"
)

type highlightRequest struct {
	Book       int    `json:"book"`
	Chapter    int    `json:"chapter"`
	VerseStart int    `json:"verse_start"`
	VerseEnd   int    `json:"verse_end"`
	Color      string `json:"color"`
}

func ListHighlights(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var items []domain.Highlight
		q := r.URL.Query()
		if q.Has("book") && q.Has("chapter") {
			book, err1 := strconv.Atoi(q.Get("book"))
			chapter, err2 := strconv.Atoi(q.Get("chapter"))
			if err1 != nil || err2 != nil {
				writeError(w, http.StatusBadRequest, "invalid chapter filter")
				return
			}
			items = d.Highlights.ForChapter(book, chapter)
		} else {
			items = d.Highlights.All()
		}
		if items == nil {
			items = []domain.Highlight{}
		}
		writeJSON(w, http.StatusOK, items)
	}
}

func AddHighlight(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req highlightRequest
		if err := decode(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		h, err := d.Highlights.Add(r.Context(), req.Book, req.Chapter,
			req.VerseStart, req.VerseEnd, domain.HighlightColor(req.Color))
		if err != nil {
			if errors.Is(err, domain.ErrInvalidRange) || errors.Is(err, domain.ErrInvalidColor) {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			writeVerseRefError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, h)
	}
}

func RemoveHighlight(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if err := d.Highlights.Remove(r.Context(), id); err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
