package media

import "errors"

var (
	ErrInvalidInput      = errors.New("media: invalid input")
	ErrConfiguration     = errors.New("media: remote store is not configured")
	ErrRemoteAuth        = errors.New("remote: authentication failed")
	ErrRemoteTransient   = errors.New("remote: temporary failure")
	ErrRemoteRejected    = errors.New("remote: request rejected")
	ErrObjectNotFound    = errors.New("remote: object not found")
	ErrNothingToExport   = errors.New("export: no media to export")
	ErrExportFailed      = errors.New("export: every download failed")
	ErrSnapshotsDisabled = errors.New("snapshots: not configured")

	ErrBucketNotFound = errors.New("storage: bucket not found")
	ErrUnauthorized   = errors.New("storage: unauthorized")
	ErrInternal       = errors.New("storage: internal error")
)
