package api

import (
	"errors"
	"net/http"

	"github.com/fhuszti/wedding-medias-go/internal/api_context"
	"github.com/fhuszti/wedding-medias-go/internal/i18n"
	"github.com/fhuszti/wedding-medias-go/internal/logger"
	"github.com/fhuszti/wedding-medias-go/internal/port"
	"github.com/fhuszti/wedding-medias-go/internal/usecase/media"
)

type DeleteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// DeletePhotoHandler answers 500 whenever the store does not confirm the
// deletion, a missing asset included.
func DeletePhotoHandler(svc port.MediaDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id, ok := api_context.MediaIDFromContext(ctx)
		if !ok {
			WriteError(ctx, w, http.StatusBadRequest, i18n.T(ctx, i18n.MsgIDRequired), nil)
			return
		}

		if err := svc.DeleteMedia(ctx, port.DeleteMediaInput{ID: id}); err != nil {
			if errors.Is(err, media.ErrInvalidInput) {
				WriteValidationError(ctx, w, i18n.T(ctx, i18n.MsgIDRequired), err)
				return
			}
			WriteErrorDetails(ctx, w, http.StatusInternalServerError, i18n.T(ctx, i18n.MsgDeleteFailed), err)
			return
		}

		RespondJSON(w, http.StatusOK, DeleteResponse{Success: true, Message: i18n.T(ctx, i18n.MsgDeleted)})
		logger.Infof(ctx, "✅  Successfully deleted media %s", id)
	}
}
