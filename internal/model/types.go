package model

import "time"

// Snapshot is an export archive stored in the snapshot bucket.
type Snapshot struct {
	Key          string    `json:"key"`
	SizeBytes    int64     `json:"size_bytes"`
	LastModified time.Time `json:"last_modified"`
	URL          string    `json:"url,omitempty"`
}

// RemoteUsage is the account usage report of the remote store, kept verbatim.
type RemoteUsage map[string]any
