package uploader

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/fhuszti/wedding-medias-go/internal/model"
)

// Transport sends one file to the upload endpoint.
type Transport interface {
	Upload(ctx context.Context, f File) (*model.MediaAsset, error)
}

type uploadResponse struct {
	Success bool              `json:"success"`
	Data    *model.MediaAsset `json:"data"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}

// StatusError is returned when the server answers outside the 2xx range.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("server answered %d: %s", e.StatusCode, e.Message)
}

type httpTransport struct {
	client *resty.Client
}

var _ Transport = (*httpTransport)(nil)

// NewHTTPTransport posts files as multipart field "photo" to serverURL + "/upload".
func NewHTTPTransport(serverURL string, timeout time.Duration) Transport {
	c := resty.New().
		SetBaseURL(strings.TrimRight(serverURL, "/")).
		SetTimeout(timeout).
		SetHeader("User-Agent", "wedding-medias-uploader")
	return &httpTransport{client: c}
}

func (t *httpTransport) Upload(ctx context.Context, f File) (*model.MediaAsset, error) {
	var ok uploadResponse
	var fail errorResponse

	resp, err := t.client.R().
		SetContext(ctx).
		SetMultipartField("photo", f.Name, f.ContentType, bytes.NewReader(f.Data)).
		SetResult(&ok).
		SetError(&fail).
		Post("/upload")
	if err != nil {
		return nil, fmt.Errorf("upload %q: %w", f.Name, err)
	}
	if resp.IsError() {
		msg := fail.Error
		if fail.Details != "" {
			msg += ": " + fail.Details
		}
		if msg == "" {
			msg = resp.Status()
		}
		return nil, &StatusError{StatusCode: resp.StatusCode(), Message: msg}
	}
	if !ok.Success || ok.Data == nil {
		return nil, &StatusError{StatusCode: resp.StatusCode(), Message: "unexpected response body"}
	}
	return ok.Data, nil
}
