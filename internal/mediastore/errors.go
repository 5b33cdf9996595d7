package mediastore

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/fhuszti/wedding-medias-go/internal/port"
	"github.com/fhuszti/wedding-medias-go/internal/usecase/media"
)

// apiError is the error envelope returned by the remote store.
type apiError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

func kindForStatus(status int) error {
	switch {
	case status == http.StatusUnauthorized, status == http.StatusForbidden:
		return media.ErrRemoteAuth
	case status == http.StatusNotFound:
		return media.ErrObjectNotFound
	case status == 420, status == http.StatusTooManyRequests, status == http.StatusRequestTimeout, status >= 500:
		return media.ErrRemoteTransient
	default:
		return media.ErrRemoteRejected
	}
}

// mapRemoteErr turns an HTTP answer into a *port.RemoteError.
func mapRemoteErr(op string, status int, body *apiError, raw string) error {
	msg := raw
	if body != nil && body.Error.Message != "" {
		msg = body.Error.Message
	}
	if msg == "" {
		msg = http.StatusText(status)
	}
	return &port.RemoteError{Op: op, StatusCode: status, Message: msg, Kind: kindForStatus(status)}
}

// mapTransportErr handles failures that never produced an HTTP answer.
func mapTransportErr(ctx context.Context, op string, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return fmt.Errorf("%s: %w", op, ctxErr)
	}
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return &port.RemoteError{Op: op, Message: err.Error(), Kind: media.ErrRemoteTransient}
}

var errInvalidURL = fmt.Errorf("%w: invalid url", media.ErrRemoteRejected)
