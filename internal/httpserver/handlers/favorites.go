package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/selahapp/selah/internal/domain"
	"github.com/selahapp/selah/internal/httpserver/deps"
)

type verseRefRequest struct {
	Book    int `json:"book"`
	Chapter int `json:"chapter"`
	Verse   int `json:"verse"`
}

func (req verseRefRequest) ref() domain.VerseRef {
	return domain.VerseRef{Book: req.Book, Chapter: req.Chapter, Verse: req.Verse}
}

// refFromURL parses /{book}/{chapter}/{verse} path params.
func refFromURL(r *http.Request) (domain.VerseRef, error) {
	book, err := strconv.Atoi(chi.URLParam(r, "book"))
	if err != nil {
		return domain.VerseRef{}, err
	}
	chapter, err := strconv.Atoi(chi.URLParam(r, "chapter"))
	if err != nil {
		return domain.VerseRef{}, err
	}
	verse, err := strconv.Atoi(chi.URLParam(r, "verse"))
	if err != nil {
		return domain.VerseRef{}, err
	}
	return domain.VerseRef{Book: book, Chapter: chapter, Verse: verse}, nil
}

func ListFavorites(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items := d.Favorites.All()
		if items == nil {
			items = []domain.Favorite{}
		}
		writeJSON(w, http.StatusOK, items)
	}
}

func AddFavorite(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req verseRefRequest
		if err := decode(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := d.Favorites.Add(r.Context(), req.ref()); err != nil {
			writeVerseRefError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func RemoveFavorite(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ref, err := refFromURL(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid verse reference")
			return
		}
		if err := d.Favorites.Remove(r.Context(), ref); err != nil {
			writeVerseRefError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

type toggleResponse struct {
	Favorited bool `json:"favorited"`
}

func ToggleFavorite(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req verseRefRequest
		if err := decode(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		on, err := d.Favorites.Toggle(r.Context(), req.ref())
		if err != nil {
			writeVerseRefError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toggleResponse{Favorited: on})
	}
}

func writeVerseRefError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidBook),
		errors.Is(err, domain.ErrInvalidChapter),
		errors.Is(err, domain.ErrInvalidVerse):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
