package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/selahapp/selah/internal/domain"
	"github.com/selahapp/selah/internal/httpserver/deps"
	"github.com/selahapp/selah/internal/plan"
)

type progressResponse struct {
	domain.ReadingProgress
	Percentage int `json:"percentage"`
}

func ListPlans(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, d.Progress.Plans())
	}
}

func GetProgress(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, err := d.Progress.Get(r.Context(), chi.URLParam(r, "plan"))
		if err != nil {
			writeProgressError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, progressResponse{
			ReadingProgress: rec,
			Percentage:      d.Progress.Percentage(),
		})
	}
}

type markChapterRequest struct {
	Book    int  `json:"book"`
	Chapter int  `json:"chapter"`
	Done    bool `json:"done"`
}

func MarkChapter(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req markChapterRequest
		if err := decode(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		rec, err := d.Progress.MarkChapter(r.Context(), chi.URLParam(r, "plan"),
			req.Book, req.Chapter, req.Done)
		if err != nil {
			writeProgressError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, progressResponse{
			ReadingProgress: rec,
			Percentage:      d.Progress.Percentage(),
		})
	}
}

func FinishPlan(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, err := d.Progress.Finish(r.Context(), chi.URLParam(r, "plan"))
		if err != nil {
			writeProgressError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, progressResponse{
			ReadingProgress: rec,
			Percentage:      d.Progress.Percentage(),
		})
	}
}

func writeProgressError(w http.ResponseWriter, err error) {
	if errors.Is(err, plan.ErrUnknownPlan) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeError(w, http.StatusInternalServerError, "internal error")
}
