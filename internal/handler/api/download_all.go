package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/fhuszti/wedding-medias-go/internal/i18n"
	"github.com/fhuszti/wedding-medias-go/internal/logger"
	"github.com/fhuszti/wedding-medias-go/internal/port"
	"github.com/fhuszti/wedding-medias-go/internal/usecase/media"
)

func DownloadAllHandler(svc port.MediaExporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		out, err := svc.ExportAll(ctx)
		if err != nil {
			if errors.Is(err, media.ErrNothingToExport) {
				WriteError(ctx, w, http.StatusNotFound, i18n.T(ctx, i18n.MsgNothingToExport), nil)
				return
			}
			WriteErrorDetails(ctx, w, http.StatusInternalServerError, i18n.T(ctx, i18n.MsgExportFailed), err)
			return
		}

		h := w.Header()
		h.Set("Content-Type", "application/zip")
		h.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", out.FileName))
		h.Set("Content-Length", strconv.Itoa(len(out.Archive)))
		h.Set("X-Export-Omitted", strconv.Itoa(len(out.Omitted)))
		h.Set("Cache-Control", "no-store")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(out.Archive); err != nil {
			logger.Errorf(ctx, "❌  Failed to write archive: %v", err)
			return
		}
		logger.Infof(ctx, "✅  Exported %d assets (%d omitted)", out.Included, len(out.Omitted))
	}
}
