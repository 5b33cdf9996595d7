package mock

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/fhuszti/wedding-medias-go/internal/model"
	"github.com/fhuszti/wedding-medias-go/internal/port"
)

type ListCall struct {
	ResourceType model.ResourceType
	Prefix       string
	MaxResults   int
}

type DestroyCall struct {
	ResourceType model.ResourceType
	PublicID     string
}

// MediaStore implements port.MediaStore for tests. It is safe for concurrent use.
type MediaStore struct {
	mu sync.Mutex

	// stored values
	UploadOut  *model.UploadResult
	Resources  map[model.ResourceType][]model.RemoteResource
	DestroyOut map[model.ResourceType]port.DestroyResult
	UsageOut   model.RemoteUsage
	Blobs      map[string][]byte

	// errors; UploadErrs is consumed one entry per attempt before UploadErr applies
	UploadErrs []error
	UploadErr  error
	ListErr    map[model.ResourceType]error
	DestroyErr error
	PingErr    error
	UsageErr   error
	FetchErr   map[string]error

	// captured inputs
	UploadParams []port.RemoteUploadParams
	ListCalls    []ListCall
	Destroyed    []DestroyCall
	Fetched      []string

	// call counts
	UploadCalls int
	PingCalls   int
	UsageCalls  int
}

var _ port.MediaStore = (*MediaStore)(nil)

func (m *MediaStore) Upload(ctx context.Context, p port.RemoteUploadParams) (model.UploadResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	attempt := m.UploadCalls
	m.UploadCalls++
	m.UploadParams = append(m.UploadParams, p)

	if attempt < len(m.UploadErrs) && m.UploadErrs[attempt] != nil {
		return model.UploadResult{}, m.UploadErrs[attempt]
	}
	if m.UploadErr != nil {
		return model.UploadResult{}, m.UploadErr
	}
	if m.UploadOut != nil {
		return *m.UploadOut, nil
	}
	return model.UploadResult{
		PublicID:     fmt.Sprintf("%s/upload-%d", p.Folder, m.UploadCalls),
		SecureURL:    fmt.Sprintf("https://cdn.example.com/%s/upload-%d", p.Folder, m.UploadCalls),
		Bytes:        int64(len(p.Data)),
		ResourceType: p.ResourceType,
	}, nil
}

func (m *MediaStore) ListByPrefix(ctx context.Context, rt model.ResourceType, prefix string, maxResults int) ([]model.RemoteResource, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ListCalls = append(m.ListCalls, ListCall{ResourceType: rt, Prefix: prefix, MaxResults: maxResults})
	if err := m.ListErr[rt]; err != nil {
		return nil, err
	}
	src := m.Resources[rt]
	out := make([]model.RemoteResource, len(src))
	copy(out, src)
	return out, nil
}

func (m *MediaStore) Destroy(ctx context.Context, rt model.ResourceType, publicID string) (port.DestroyResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Destroyed = append(m.Destroyed, DestroyCall{ResourceType: rt, PublicID: publicID})
	if m.DestroyErr != nil {
		return "", m.DestroyErr
	}
	if res, ok := m.DestroyOut[rt]; ok {
		return res, nil
	}
	return port.DestroyNotFound, nil
}

func (m *MediaStore) Ping(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PingCalls++
	return m.PingErr
}

func (m *MediaStore) Usage(ctx context.Context) (model.RemoteUsage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UsageCalls++
	if m.UsageErr != nil {
		return nil, m.UsageErr
	}
	return m.UsageOut, nil
}

func (m *MediaStore) Fetch(ctx context.Context, url string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Fetched = append(m.Fetched, url)
	if err := m.FetchErr[url]; err != nil {
		return nil, err
	}
	data, ok := m.Blobs[url]
	if !ok {
		return nil, errors.New("mock: no blob for " + url)
	}
	return data, nil
}
