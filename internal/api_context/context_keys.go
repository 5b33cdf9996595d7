package api_context

import (
	"context"

	"github.com/go-chi/chi/v5/middleware"
)

type ctxKey string

const (
	MediaIDKey ctxKey = "mediaID"
	LocaleKey  ctxKey = "locale"
)

// MediaIDFromContext returns the public id of the remote asset addressed by the request.
func MediaIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(MediaIDKey).(string)
	return id, ok && id != ""
}

// RequestIDFromContext returns the id assigned by chi's RequestID middleware.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	rid := middleware.GetReqID(ctx)
	return rid, rid != ""
}

func LocaleFromContext(ctx context.Context) (string, bool) {
	l, ok := ctx.Value(LocaleKey).(string)
	return l, ok && l != ""
}
