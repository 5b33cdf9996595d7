package api

import (
	"net/http"

	"github.com/fhuszti/wedding-medias-go/internal/i18n"
)

func MethodNotAllowedHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		RespondJSON(w, http.StatusMethodNotAllowed, ErrorResponse{Error: i18n.T(r.Context(), i18n.MsgMethodNotAllowed)})
	}
}
