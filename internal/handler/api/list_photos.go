package api

import (
	"net/http"

	"github.com/fhuszti/wedding-medias-go/internal/i18n"
	"github.com/fhuszti/wedding-medias-go/internal/logger"
	"github.com/fhuszti/wedding-medias-go/internal/port"
)

func ListPhotosHandler(renderer port.HTTPRenderer, svc port.MediaLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		raw, etag, err := renderer.RenderListing(ctx, svc)
		if err != nil {
			WriteErrorDetails(ctx, w, http.StatusInternalServerError, i18n.T(ctx, i18n.MsgListFailed), err)
			return
		}

		w.Header().Set("ETag", etag)
		w.Header().Set("Cache-Control", "no-cache")
		if match := r.Header.Get("If-None-Match"); match == etag {
			w.WriteHeader(http.StatusNotModified)
			logger.Info(ctx, "✅  Listing unchanged since last request")
			return
		}

		RespondRawJSON(w, http.StatusOK, raw)
		logger.Info(ctx, "✅  Successfully returned the media listing")
	}
}
