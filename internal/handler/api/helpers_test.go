package api

import (
	"context"
	"net/http"

	"github.com/fhuszti/wedding-medias-go/internal/api_context"
)

func withLocale(r *http.Request, locale string) context.Context {
	return context.WithValue(r.Context(), api_context.LocaleKey, locale)
}

func withMediaID(r *http.Request, id string) context.Context {
	return context.WithValue(r.Context(), api_context.MediaIDKey, id)
}
