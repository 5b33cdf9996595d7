package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/fhuszti/wedding-medias-go/internal/logger"
	"github.com/fhuszti/wedding-medias-go/internal/validation"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// WriteError logs with the request id of ctx and answers {error}.
func WriteError(ctx context.Context, w http.ResponseWriter, status int, msg string, err error) {
	logError(ctx, msg, err)
	w.Header().Set("Cache-Control", "no-store, max-age=0, must-revalidate")
	RespondJSON(w, status, ErrorResponse{Error: msg})
}

// WriteErrorDetails answers {error, details}, details carrying the cause.
func WriteErrorDetails(ctx context.Context, w http.ResponseWriter, status int, msg string, err error) {
	logError(ctx, msg, err)
	resp := ErrorResponse{Error: msg}
	if err != nil {
		resp.Details = err.Error()
	}
	w.Header().Set("Cache-Control", "no-store, max-age=0, must-revalidate")
	RespondJSON(w, status, resp)
}

// WriteValidationError answers 400 {error, details}. Details is the JSON
// field→tag map of a validation failure, or {"_": cause} for any other input error.
func WriteValidationError(ctx context.Context, w http.ResponseWriter, msg string, err error) {
	details, jErr := validation.ErrorsToJson(err)
	if jErr != nil {
		WriteError(ctx, w, http.StatusInternalServerError, "failed to encode validation errors", jErr)
		return
	}
	logError(ctx, msg, err)
	w.Header().Set("Cache-Control", "no-store, max-age=0, must-revalidate")
	RespondJSON(w, http.StatusBadRequest, ErrorResponse{Error: msg, Details: details})
}

func logError(ctx context.Context, msg string, err error) {
	if err != nil {
		logger.Errorf(ctx, "❌  %s: %v", msg, err)
	} else {
		logger.Error(ctx, "❌  "+msg)
	}
}

func RespondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Errorf(context.Background(), "❌  Failed to encode JSON response: %v", err)
	}
}

func RespondRawJSON(w http.ResponseWriter, status int, raw []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(raw); err != nil {
		logger.Errorf(context.Background(), "❌  Failed to write JSON payload: %v", err)
	}
}
