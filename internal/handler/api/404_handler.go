package api

import (
	"net/http"

	"github.com/fhuszti/wedding-medias-go/internal/i18n"
)

func NotFoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		RespondJSON(w, http.StatusNotFound, ErrorResponse{Error: i18n.T(r.Context(), i18n.MsgNotFound)})
	}
}
