package middleware

import (
	"context"
	"net/http"

	"github.com/fhuszti/wedding-medias-go/internal/api_context"
	"github.com/fhuszti/wedding-medias-go/internal/i18n"
)

// WithLocale stores the best supported language of the Accept-Language header.
func WithLocale() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tag := i18n.Match(r.Header.Get("Accept-Language"))
			ctx := context.WithValue(r.Context(), api_context.LocaleKey, tag.String())
			w.Header().Set("Content-Language", tag.String())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
