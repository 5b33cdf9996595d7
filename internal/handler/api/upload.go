package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/fhuszti/wedding-medias-go/internal/i18n"
	"github.com/fhuszti/wedding-medias-go/internal/logger"
	"github.com/fhuszti/wedding-medias-go/internal/model"
	"github.com/fhuszti/wedding-medias-go/internal/port"
	"github.com/fhuszti/wedding-medias-go/internal/usecase/media"
)

const (
	uploadField     = "photo"
	multipartMemory = 32 << 20
)

type UploadResponse struct {
	Success bool              `json:"success"`
	Data    *model.MediaAsset `json:"data"`
}

// UploadHandler accepts one multipart file in the "photo" field. maxBody caps
// the whole request body.
func UploadHandler(checker port.ConfigChecker, svc port.Uploader, maxBody int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if err := checker.CheckConfig(ctx); err != nil {
			WriteErrorDetails(ctx, w, http.StatusInternalServerError, i18n.T(ctx, i18n.MsgNotConfigured), err)
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxBody)
		if err := r.ParseMultipartForm(multipartMemory); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				WriteErrorDetails(ctx, w, http.StatusBadRequest, i18n.T(ctx, i18n.MsgFileTooLarge), err)
				return
			}
			WriteErrorDetails(ctx, w, http.StatusBadRequest, i18n.T(ctx, i18n.MsgFileRequired), err)
			return
		}
		defer func() {
			if r.MultipartForm != nil {
				_ = r.MultipartForm.RemoveAll()
			}
		}()

		file, header, err := r.FormFile(uploadField)
		if err != nil {
			WriteError(ctx, w, http.StatusBadRequest, i18n.T(ctx, i18n.MsgFileRequired), err)
			return
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			WriteErrorDetails(ctx, w, http.StatusBadRequest, i18n.T(ctx, i18n.MsgUploadFailed), err)
			return
		}

		asset, err := svc.Upload(ctx, port.UploadMediaInput{
			Data:     data,
			MimeType: header.Header.Get("Content-Type"),
			FileName: header.Filename,
		})
		if err != nil {
			if errors.Is(err, media.ErrInvalidInput) {
				WriteValidationError(ctx, w, i18n.T(ctx, i18n.MsgInvalidFile), err)
				return
			}
			WriteErrorDetails(ctx, w, http.StatusInternalServerError, i18n.T(ctx, i18n.MsgUploadFailed), err)
			return
		}

		RespondJSON(w, http.StatusOK, UploadResponse{Success: true, Data: asset})
		logger.Infof(ctx, "✅  Successfully uploaded %q as %s", header.Filename, asset.PublicID)
	}
}
