package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/selahapp/selah/internal/domain"
	"github.com/selahapp/selah/internal/httpserver/deps"
)

type noteRequest struct {
	Book    int    `json:"book"`
	Chapter int    `json:"chapter"`
	Verse   int    `json:"verse"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

type noteUpdateRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func ListNotes(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items := d.Notes.All()
		if items == nil {
			items = []domain.Note{}
		}
		writeJSON(w, http.StatusOK, items)
	}
}

func AddNote(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req noteRequest
		if err := decode(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		ref := domain.VerseRef{Book: req.Book, Chapter: req.Chapter, Verse: req.Verse}
		n, err := d.Notes.Add(r.Context(), ref, req.Title, req.Content)
		if err != nil {
			if errors.Is(err, domain.ErrEmptyNoteContent) {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			writeVerseRefError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, n)
	}
}

func UpdateNote(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req noteUpdateRequest
		if err := decode(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		id := chi.URLParam(r, "id")
		if err := d.Notes.Update(r.Context(), id, req.Title, req.Content); err != nil {
			if errors.Is(err, domain.ErrEmptyNoteContent) {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func RemoveNote(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if err := d.Notes.Remove(r.Context(), id); err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
