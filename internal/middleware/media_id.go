package middleware

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/fhuszti/wedding-medias-go/internal/api_context"
	"github.com/fhuszti/wedding-medias-go/internal/handler/api"
	"github.com/fhuszti/wedding-medias-go/internal/i18n"
)

// WithMediaID extracts the public id of the addressed asset. Public ids contain
// folders, so the route may carry them either URL-escaped in {id} or as a
// trailing wildcard.
func WithMediaID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := chi.URLParam(r, "id")
			if raw == "" {
				raw = chi.URLParam(r, "*")
			}
			id, err := url.PathUnescape(raw)
			if err != nil {
				id = raw
			}
			id = strings.Trim(id, "/")
			if id == "" {
				api.WriteError(r.Context(), w, http.StatusBadRequest, i18n.T(r.Context(), i18n.MsgIDRequired), nil)
				return
			}

			ctx := context.WithValue(r.Context(), api_context.MediaIDKey, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
