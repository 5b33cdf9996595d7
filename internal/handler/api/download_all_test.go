package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fhuszti/wedding-medias-go/internal/mock"
	"github.com/fhuszti/wedding-medias-go/internal/port"
	"github.com/fhuszti/wedding-medias-go/internal/usecase/media"
)

func TestDownloadAllHandler(t *testing.T) {
	t.Run("archive", func(t *testing.T) {
		out := &port.ExportOutput{
			Archive:  []byte("PK\x03\x04fake"),
			FileName: "fotos-casamiento.zip",
			Included: 2,
			Omitted:  []string{"casamiento-fotos/broken"},
		}
		h := DownloadAllHandler(&mock.MockMediaExporter{Out: out})

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/photos/download-all", nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d; want 200", rec.Code)
		}
		want := map[string]string{
			"Content-Type":        "application/zip",
			"Content-Disposition": `attachment; filename="fotos-casamiento.zip"`,
			"Content-Length":      "8",
			"X-Export-Omitted":    "1",
		}
		for k, v := range want {
			if got := rec.Header().Get(k); got != v {
				t.Errorf("%s = %q; want %q", k, got, v)
			}
		}
		if rec.Body.String() != string(out.Archive) {
			t.Errorf("body mismatch")
		}
	})

	errCases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"nothing to export", media.ErrNothingToExport, http.StatusNotFound},
		{"every fetch failed", media.ErrExportFailed, http.StatusInternalServerError},
		{"listing failed", errors.New("listing videos: boom"), http.StatusInternalServerError},
	}
	for _, tc := range errCases {
		t.Run(tc.name, func(t *testing.T) {
			h := DownloadAllHandler(&mock.MockMediaExporter{Err: tc.err})

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/photos/download-all", nil))

			if rec.Code != tc.wantStatus {
				t.Fatalf("status = %d; want %d", rec.Code, tc.wantStatus)
			}
			if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("Content-Type = %q; want application/json", ct)
			}
		})
	}
}
