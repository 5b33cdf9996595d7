package api

import (
	"errors"
	"net/http"

	"github.com/fhuszti/wedding-medias-go/internal/i18n"
	"github.com/fhuszti/wedding-medias-go/internal/logger"
	"github.com/fhuszti/wedding-medias-go/internal/model"
	"github.com/fhuszti/wedding-medias-go/internal/port"
	"github.com/fhuszti/wedding-medias-go/internal/usecase/media"
)

type SnapshotRequestedResponse struct {
	TaskID string `json:"task_id"`
}

type SnapshotListResponse struct {
	Snapshots []model.Snapshot `json:"snapshots"`
	Total     int              `json:"total"`
}

func RequestSnapshotHandler(svc port.SnapshotRequester) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id, err := svc.RequestSnapshot(ctx)
		if err != nil {
			if errors.Is(err, media.ErrSnapshotsDisabled) {
				WriteError(ctx, w, http.StatusServiceUnavailable, i18n.T(ctx, i18n.MsgSnapshotsDisabled), nil)
				return
			}
			WriteErrorDetails(ctx, w, http.StatusInternalServerError, i18n.T(ctx, i18n.MsgSnapshotFailed), err)
			return
		}

		RespondJSON(w, http.StatusAccepted, SnapshotRequestedResponse{TaskID: id})
		logger.Infof(ctx, "✅  Archive snapshot requested as task %s", id)
	}
}

func ListSnapshotsHandler(svc port.SnapshotLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		snaps, err := svc.ListSnapshots(ctx)
		if err != nil {
			if errors.Is(err, media.ErrSnapshotsDisabled) {
				WriteError(ctx, w, http.StatusServiceUnavailable, i18n.T(ctx, i18n.MsgSnapshotsDisabled), nil)
				return
			}
			WriteErrorDetails(ctx, w, http.StatusInternalServerError, i18n.T(ctx, i18n.MsgSnapshotListFailed), err)
			return
		}
		if snaps == nil {
			snaps = []model.Snapshot{}
		}

		w.Header().Set("Cache-Control", "no-store")
		RespondJSON(w, http.StatusOK, SnapshotListResponse{Snapshots: snaps, Total: len(snaps)})
	}
}
