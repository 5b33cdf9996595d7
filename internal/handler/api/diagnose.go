package api

import (
	"net/http"

	"github.com/fhuszti/wedding-medias-go/internal/i18n"
	"github.com/fhuszti/wedding-medias-go/internal/port"
)

type TestConfigResponse struct {
	Success bool                 `json:"success"`
	Message string               `json:"message,omitempty"`
	Error   string               `json:"error,omitempty"`
	Details string               `json:"details,omitempty"`
	Ping    *port.CheckStatus    `json:"ping,omitempty"`
	EnvVars port.CredentialFlags `json:"envVars"`
}

func DiagnoseHandler(svc port.Diagnoser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store")
		RespondJSON(w, http.StatusOK, svc.Diagnose(r.Context()))
	}
}

// TestConfigHandler pings the store and reports the raw remote message on failure.
func TestConfigHandler(svc port.Diagnoser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		w.Header().Set("Cache-Control", "no-store")

		out, err := svc.TestConnection(ctx)
		resp := TestConfigResponse{}
		if out != nil {
			resp.EnvVars = out.EnvVars
			resp.Ping = out.Ping
		}
		if err != nil {
			logError(ctx, "remote connection test failed", err)
			resp.Error = i18n.T(ctx, i18n.MsgConfigInvalid)
			resp.Details = err.Error()
			RespondJSON(w, http.StatusInternalServerError, resp)
			return
		}

		resp.Success = true
		resp.Message = "Cloudinary configuration is valid"
		RespondJSON(w, http.StatusOK, resp)
	}
}
