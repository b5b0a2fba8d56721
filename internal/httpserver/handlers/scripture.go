package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/selahapp/selah/internal/httpserver/deps"
	"github.com/selahapp/selah/internal/scripture"
)

func GetChapter(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		book, err1 := strconv.Atoi(chi.URLParam(r, "book"))
		chapter, err2 := strconv.Atoi(chi.URLParam(r, "chapter"))
		if err1 != nil || err2 != nil {
			writeError(w, http.StatusBadRequest, "invalid chapter reference")
			return
		}

		ch, err := d.Scripture.Chapter(r.Context(), book, chapter)
		if err != nil {
			if errors.Is(err, scripture.ErrChapterNotFound) {
				writeError(w, http.StatusNotFound, err.Error())
				return
			}
			writeVerseRefError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, ch)
	}
}
