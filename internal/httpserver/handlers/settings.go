package handlers

import (
	"net/http"

	"github.com/selahapp/selah/internal/domain"
	"github.com/selahapp/selah/internal/httpserver/deps"
)

// defaultSettings are used until the reader saves their own. Settings are
// device-local and never sync to the account store.
var defaultSettings = domain.ReadingSettings{
	Translation: "web",
	FontScale:   1.0,
	Theme:       "light",
}

func GetSettings(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		settings, ok := d.Local.Settings(r.Context())
		if !ok {
			settings = defaultSettings
		}
		writeJSON(w, http.StatusOK, settings)
	}
}

func SaveSettings(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var settings domain.ReadingSettings
		if err := decode(r, &settings); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if settings.FontScale <= 0 {
			writeError(w, http.StatusBadRequest, "font_scale must be positive")
			return
		}
		if err := d.Local.SaveSettings(r.Context(), settings); err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		writeJSON(w, http.StatusOK, settings)
	}
}
