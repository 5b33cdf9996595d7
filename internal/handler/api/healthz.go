package api

import "net/http"

func HealthzHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store")
		RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
