package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// FakeAsset is one resource served by FakeRemote.
type FakeAsset struct {
	PublicID     string
	ResourceType string
	Format       string
	CreatedAt    time.Time
	Data         []byte
}

// FakeRemote serves the subset of the remote media store API used by the
// service: listing, ping, usage and asset delivery.
type FakeRemote struct {
	*httptest.Server

	Cloud string

	mu     sync.Mutex
	assets []FakeAsset
	pings  atomic.Int32
}

func NewFakeRemote(cloud string, assets ...FakeAsset) *FakeRemote {
	f := &FakeRemote{Cloud: cloud, assets: assets}
	f.Server = httptest.NewServer(http.HandlerFunc(f.serve))
	return f
}

func (f *FakeRemote) Pings() int {
	return int(f.pings.Load())
}

func (f *FakeRemote) serve(w http.ResponseWriter, r *http.Request) {
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")

	switch {
	case len(parts) == 2 && parts[0] == "assets":
		f.serveAsset(w, parts[1])
	case len(parts) == 2 && parts[0] == f.Cloud && parts[1] == "ping":
		f.pings.Add(1)
		writeJSON(w, map[string]string{"status": "ok"})
	case len(parts) == 2 && parts[0] == f.Cloud && parts[1] == "usage":
		writeJSON(w, map[string]any{"plan": "Free", "resources": len(f.assets)})
	case len(parts) == 4 && parts[0] == f.Cloud && parts[1] == "resources" && parts[3] == "upload":
		f.serveList(w, parts[2], r.URL.Query().Get("prefix"))
	default:
		w.WriteHeader(http.StatusNotFound)
		writeJSON(w, map[string]any{"error": map[string]string{"message": "not found"}})
	}
}

func (f *FakeRemote) serveList(w http.ResponseWriter, rt, prefix string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	resources := []map[string]any{}
	for _, a := range f.assets {
		if a.ResourceType != rt || !strings.HasPrefix(a.PublicID, prefix) {
			continue
		}
		resources = append(resources, map[string]any{
			"public_id":     a.PublicID,
			"secure_url":    f.URL + "/assets/" + strings.ReplaceAll(a.PublicID, "/", "_"),
			"created_at":    a.CreatedAt.UTC().Format(time.RFC3339),
			"resource_type": a.ResourceType,
			"format":        a.Format,
			"bytes":         len(a.Data),
		})
	}
	writeJSON(w, map[string]any{"resources": resources})
}

func (f *FakeRemote) serveAsset(w http.ResponseWriter, name string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, a := range f.assets {
		if strings.ReplaceAll(a.PublicID, "/", "_") == name {
			_, _ = w.Write(a.Data)
			return
		}
	}
	http.NotFound(w, nil)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
