// Package mediastore is the REST client of the remote media store (Cloudinary upload and admin APIs).
package mediastore

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/fhuszti/wedding-medias-go/internal/logger"
	"github.com/fhuszti/wedding-medias-go/internal/model"
	"github.com/fhuszti/wedding-medias-go/internal/port"
	"github.com/fhuszti/wedding-medias-go/internal/usecase/media"
)

type Options struct {
	BaseURL   string
	CloudName string
	APIKey    string
	APISecret string
	Timeout   time.Duration
}

type Client struct {
	http   *resty.Client
	cloud  string
	key    string
	secret string
	now    func() time.Time
}

// compile-time check: *Client must satisfy port.MediaStore
var _ port.MediaStore = (*Client)(nil)

func NewClient(opts Options) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 120 * time.Second
	}
	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(opts.BaseURL, "/")).
		SetHeader("User-Agent", "wedding-medias-go/1.0").
		SetTimeout(timeout)

	return &Client{
		http:   httpClient,
		cloud:  url.PathEscape(opts.CloudName),
		key:    opts.APIKey,
		secret: opts.APISecret,
		now:    time.Now,
	}
}

type listResponse struct {
	Resources  []model.RemoteResource `json:"resources"`
	NextCursor string                 `json:"next_cursor"`
}

type destroyResponse struct {
	Result string `json:"result"`
}

func (c *Client) signed(params map[string]string) map[string]string {
	params["timestamp"] = strconv.FormatInt(c.now().Unix(), 10)
	params["signature"] = sign(params, c.secret)
	params["api_key"] = c.key
	return params
}

// Upload sends the raw buffer as a signed multipart request.
func (c *Client) Upload(ctx context.Context, p port.RemoteUploadParams) (model.UploadResult, error) {
	const op = "upload"
	params := c.signed(map[string]string{
		"folder":          p.Folder,
		"use_filename":    "true",
		"unique_filename": "true",
		"overwrite":       "false",
		"invalidate":      "true",
		"transformation":  p.Transformation,
	})

	fileName := p.FileName
	if fileName == "" {
		fileName = "upload"
	}

	var (
		out     model.UploadResult
		errBody apiError
	)
	resp, err := c.http.R().
		SetContext(ctx).
		SetMultipartField("file", fileName, p.MimeType, bytes.NewReader(p.Data)).
		SetFormData(params).
		SetResult(&out).
		SetError(&errBody).
		Post(fmt.Sprintf("/%s/%s/upload", c.cloud, p.ResourceType))
	if err != nil {
		return model.UploadResult{}, mapTransportErr(ctx, op, err)
	}
	if resp.IsError() {
		return model.UploadResult{}, mapRemoteErr(op, resp.StatusCode(), &errBody, resp.String())
	}
	if out.PublicID == "" {
		// a 2xx without a usable body is not a stored asset
		return model.UploadResult{}, &port.RemoteError{
			Op:         op,
			StatusCode: resp.StatusCode(),
			Message:    "answer carries no public_id",
			Kind:       media.ErrRemoteRejected,
		}
	}
	if out.ResourceType == "" {
		out.ResourceType = p.ResourceType
	}
	return out, nil
}

// ListByPrefix returns one page of resources whose public id starts with prefix, newest first.
func (c *Client) ListByPrefix(ctx context.Context, rt model.ResourceType, prefix string, maxResults int) ([]model.RemoteResource, error) {
	const op = "list"
	var (
		out     listResponse
		errBody apiError
	)
	resp, err := c.http.R().
		SetContext(ctx).
		SetBasicAuth(c.key, c.secret).
		SetQueryParams(map[string]string{
			"prefix":      prefix,
			"max_results": strconv.Itoa(maxResults),
			"direction":   "desc",
		}).
		SetResult(&out).
		SetError(&errBody).
		Get(fmt.Sprintf("/%s/resources/%s/upload", c.cloud, rt))
	if err != nil {
		return nil, mapTransportErr(ctx, op, err)
	}
	if resp.IsError() {
		return nil, mapRemoteErr(op, resp.StatusCode(), &errBody, resp.String())
	}
	if out.NextCursor != "" {
		logger.Warnf(ctx, "listing of %s %q truncated at %d results", rt, prefix, len(out.Resources))
	}
	for i := range out.Resources {
		if out.Resources[i].ResourceType == "" {
			out.Resources[i].ResourceType = rt
		}
	}
	return out.Resources, nil
}

func (c *Client) Destroy(ctx context.Context, rt model.ResourceType, publicID string) (port.DestroyResult, error) {
	const op = "destroy"
	params := c.signed(map[string]string{
		"public_id":  publicID,
		"invalidate": "true",
	})

	var (
		out     destroyResponse
		errBody apiError
	)
	resp, err := c.http.R().
		SetContext(ctx).
		SetFormData(params).
		SetResult(&out).
		SetError(&errBody).
		Post(fmt.Sprintf("/%s/%s/destroy", c.cloud, rt))
	if err != nil {
		return "", mapTransportErr(ctx, op, err)
	}
	if resp.IsError() {
		return "", mapRemoteErr(op, resp.StatusCode(), &errBody, resp.String())
	}
	return port.DestroyResult(out.Result), nil
}

func (c *Client) Ping(ctx context.Context) error {
	const op = "ping"
	var errBody apiError
	resp, err := c.http.R().
		SetContext(ctx).
		SetBasicAuth(c.key, c.secret).
		SetError(&errBody).
		Get(fmt.Sprintf("/%s/ping", c.cloud))
	if err != nil {
		return mapTransportErr(ctx, op, err)
	}
	if resp.IsError() {
		return mapRemoteErr(op, resp.StatusCode(), &errBody, resp.String())
	}
	return nil
}

func (c *Client) Usage(ctx context.Context) (model.RemoteUsage, error) {
	const op = "usage"
	var (
		out     model.RemoteUsage
		errBody apiError
	)
	resp, err := c.http.R().
		SetContext(ctx).
		SetBasicAuth(c.key, c.secret).
		SetResult(&out).
		SetError(&errBody).
		Get(fmt.Sprintf("/%s/usage", c.cloud))
	if err != nil {
		return nil, mapTransportErr(ctx, op, err)
	}
	if resp.IsError() {
		return nil, mapRemoteErr(op, resp.StatusCode(), &errBody, resp.String())
	}
	return out, nil
}

// Fetch downloads the bytes behind a delivery URL.
func (c *Client) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	const op = "fetch"
	if u, err := url.Parse(rawURL); err != nil || !u.IsAbs() {
		return nil, &port.RemoteError{Op: op, Message: fmt.Sprintf("invalid url %q", rawURL), Kind: errInvalidURL}
	}

	resp, err := c.http.R().
		SetContext(ctx).
		Get(rawURL)
	if err != nil {
		return nil, mapTransportErr(ctx, op, err)
	}
	if resp.IsError() {
		return nil, mapRemoteErr(op, resp.StatusCode(), nil, "")
	}
	return resp.Body(), nil
}
