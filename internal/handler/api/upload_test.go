package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/fhuszti/wedding-medias-go/internal/mock"
	"github.com/fhuszti/wedding-medias-go/internal/model"
	"github.com/fhuszti/wedding-medias-go/internal/port"
	"github.com/fhuszti/wedding-medias-go/internal/usecase/media"
	"github.com/fhuszti/wedding-medias-go/internal/validation"
)

func multipartBody(t *testing.T, field, fileName, contentType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, field, fileName))
	h.Set("Content-Type", contentType)
	part, err := mw.CreatePart(h)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	if _, err := part.Write(data); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return body, mw.FormDataContentType()
}

func TestUploadHandler(t *testing.T) {
	asset := &model.MediaAsset{
		ID:           "casamiento-fotos/abc",
		PublicID:     "casamiento-fotos/abc",
		URL:          "https://res.example.com/abc.jpg",
		FileName:     "beso.jpg",
		ResourceType: model.ResourceTypeImage,
	}

	tests := []struct {
		name          string
		field         string
		data          []byte
		maxBody       int64
		checkErr      error
		svcOut        *model.MediaAsset
		svcErr        error
		wantStatus    int
		wantSvcCalled bool
		wantDetails   bool
	}{
		{
			name:          "happy path",
			field:         "photo",
			data:          []byte("jpeg-bytes"),
			maxBody:       1 << 20,
			svcOut:        asset,
			wantStatus:    http.StatusOK,
			wantSvcCalled: true,
		},
		{
			name:        "configuration invalid",
			field:       "photo",
			data:        []byte("jpeg-bytes"),
			maxBody:     1 << 20,
			checkErr:    fmt.Errorf("%w: invalid credentials", media.ErrConfiguration),
			wantStatus:  http.StatusInternalServerError,
			wantDetails: true,
		},
		{
			name:       "missing photo field",
			field:      "document",
			data:       []byte("jpeg-bytes"),
			maxBody:    1 << 20,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:        "body too large",
			field:       "photo",
			data:        bytes.Repeat([]byte("x"), 4096),
			maxBody:     512,
			wantStatus:  http.StatusBadRequest,
			wantDetails: true,
		},
		{
			name:          "validation error",
			field:         "photo",
			data:          []byte("%PDF-1.4"),
			maxBody:       1 << 20,
			svcErr:        fmt.Errorf("%w: unsupported type", media.ErrInvalidInput),
			wantStatus:    http.StatusBadRequest,
			wantSvcCalled: true,
			wantDetails:   true,
		},
		{
			name:          "remote failure",
			field:         "photo",
			data:          []byte("jpeg-bytes"),
			maxBody:       1 << 20,
			svcErr:        &port.RemoteError{Op: "upload", StatusCode: 503, Message: "busy", Kind: media.ErrRemoteTransient},
			wantStatus:    http.StatusInternalServerError,
			wantSvcCalled: true,
			wantDetails:   true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			checker := &mock.MockConfigChecker{Err: tc.checkErr}
			svc := &mock.MockUploader{Out: tc.svcOut, Err: tc.svcErr}
			h := UploadHandler(checker, svc, tc.maxBody)

			body, ct := multipartBody(t, tc.field, "beso.jpg", "image/jpeg", tc.data)
			req := httptest.NewRequest(http.MethodPost, "/upload", body)
			req.Header.Set("Content-Type", ct)
			rec := httptest.NewRecorder()

			h.ServeHTTP(rec, req)

			if rec.Code != tc.wantStatus {
				t.Fatalf("status = %d; want %d (body %s)", rec.Code, tc.wantStatus, rec.Body.String())
			}
			if !checker.Called {
				t.Error("config check should always run first")
			}
			if svc.Called != tc.wantSvcCalled {
				t.Errorf("svc called = %v; want %v", svc.Called, tc.wantSvcCalled)
			}

			if tc.wantStatus == http.StatusOK {
				var resp struct {
					Success bool             `json:"success"`
					Data    model.MediaAsset `json:"data"`
				}
				if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
					t.Fatalf("decode: %v", err)
				}
				if !resp.Success || resp.Data.ID != asset.ID {
					t.Errorf("unexpected response %+v", resp)
				}
				if svc.In.FileName != "beso.jpg" || svc.In.MimeType != "image/jpeg" || string(svc.In.Data) != "jpeg-bytes" {
					t.Errorf("unexpected input %+v", svc.In)
				}
				return
			}

			var er ErrorResponse
			if err := json.NewDecoder(rec.Body).Decode(&er); err != nil {
				t.Fatalf("decode error body: %v", err)
			}
			if er.Error == "" {
				t.Error("expected an error message")
			}
			if tc.wantDetails && er.Details == "" {
				t.Error("expected error details")
			}
		})
	}
}

func TestUploadHandler_NotMultipart(t *testing.T) {
	svc := &mock.MockUploader{}
	h := UploadHandler(&mock.MockConfigChecker{}, svc, 1<<20)

	req := httptest.NewRequest(http.MethodPost, "/upload", strings.NewReader(`{"photo":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d; want 400", rec.Code)
	}
	if svc.Called {
		t.Error("uploader should not be called")
	}
}

func TestUploadHandler_LocalizedError(t *testing.T) {
	h := UploadHandler(&mock.MockConfigChecker{Err: errors.New("boom")}, &mock.MockUploader{}, 1<<20)

	req := httptest.NewRequest(http.MethodPost, "/upload", nil)
	req = req.WithContext(withLocale(req, "es"))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var er ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&er); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if er.Error != "El servicio de medios no está configurado" {
		t.Errorf("error = %q", er.Error)
	}
	if er.Details != "boom" {
		t.Errorf("details = %q", er.Details)
	}
}

func TestUploadHandler_ValidationDetails(t *testing.T) {
	tests := []struct {
		name   string
		svcErr error
		want   map[string]string
	}{
		{
			name:   "field errors",
			svcErr: fmt.Errorf("%w: %w", media.ErrInvalidInput, validation.ValidateStruct(port.UploadMediaInput{})),
			want:   map[string]string{"data": "required", "mime_type": "required"},
		},
		{
			name:   "plain input error",
			svcErr: fmt.Errorf("%w: file is 2048 bytes, the image limit is 1024 bytes", media.ErrInvalidInput),
			want:   map[string]string{"_": "media: invalid input: file is 2048 bytes, the image limit is 1024 bytes"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := UploadHandler(&mock.MockConfigChecker{}, &mock.MockUploader{Err: tc.svcErr}, 1<<20)

			body, ct := multipartBody(t, "photo", "beso.jpg", "image/jpeg", []byte("jpeg-bytes"))
			req := httptest.NewRequest(http.MethodPost, "/upload", body)
			req.Header.Set("Content-Type", ct)
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d; want 400", rec.Code)
			}
			var er ErrorResponse
			if err := json.NewDecoder(rec.Body).Decode(&er); err != nil {
				t.Fatalf("decode: %v", err)
			}
			var got map[string]string
			if err := json.Unmarshal([]byte(er.Details), &got); err != nil {
				t.Fatalf("details %q is not a JSON object: %v", er.Details, err)
			}
			if len(got) != len(tc.want) {
				t.Errorf("details = %v; want %v", got, tc.want)
			}
			for field, tag := range tc.want {
				if got[field] != tag {
					t.Errorf("details[%q] = %q; want %q", field, got[field], tag)
				}
			}
		})
	}
}
