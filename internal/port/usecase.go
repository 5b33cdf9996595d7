package port

import (
	"context"
	"time"

	"github.com/fhuszti/wedding-medias-go/internal/model"
)

// Uploader validates a file and stores it in the remote media store.
type Uploader interface {
	Upload(ctx context.Context, in UploadMediaInput) (*model.MediaAsset, error)
}
type UploadMediaInput struct {
	Data     []byte `json:"data" validate:"required,min=1"`
	MimeType string `json:"mime_type" validate:"required,mediamime"`
	FileName string `json:"file_name" validate:"max=255"`
	Folder   string `json:"folder" validate:"omitempty,max=255"`
}

// MediaLister aggregates the image and video collections into one feed.
type MediaLister interface {
	ListAll(ctx context.Context) ([]model.MediaAsset, error)
	ListResources(ctx context.Context) ([]model.RemoteResource, error)
}

// MediaExporter packages every stored asset into one zip archive.
type MediaExporter interface {
	ExportAll(ctx context.Context) (*ExportOutput, error)
}
type ExportOutput struct {
	Archive  []byte
	FileName string
	Included int
	Omitted  []string
}

// MediaDeleter removes an asset from the remote store.
type MediaDeleter interface {
	DeleteMedia(ctx context.Context, in DeleteMediaInput) error
}
type DeleteMediaInput struct {
	ID string `json:"id" validate:"required,max=512"`
}

// ConfigChecker verifies that the configured credentials are accepted by the remote store.
type ConfigChecker interface {
	CheckConfig(ctx context.Context) error
}

// Diagnoser reports configuration and connectivity details to operators.
type Diagnoser interface {
	Diagnose(ctx context.Context) *DiagnoseOutput
	TestConnection(ctx context.Context) (*TestConnectionOutput, error)
}
type CredentialFlags struct {
	CloudName bool `json:"cloudName"`
	APIKey    bool `json:"apiKey"`
	APISecret bool `json:"apiSecret"`
}
type CredentialValues struct {
	CloudName string `json:"cloudName"`
	APIKey    string `json:"apiKey"`
	APISecret string `json:"apiSecret"`
}
type CheckStatus struct {
	Status  string         `json:"status"`
	Message string         `json:"message,omitempty"`
	Error   string         `json:"error,omitempty"`
	Data    map[string]any `json:"data,omitempty"`
}
type RemoteDiagnosis struct {
	Config        CredentialFlags  `json:"config"`
	Values        CredentialValues `json:"values"`
	Connection    *CheckStatus     `json:"connection"`
	AccountStatus *CheckStatus     `json:"accountStatus"`
	Errors        []string         `json:"errors"`
}
type DiagnoseSummary struct {
	Overall         string   `json:"overall"`
	ConfigValid     bool     `json:"configValid"`
	ConnectionValid bool     `json:"connectionValid"`
	TotalErrors     int      `json:"totalErrors"`
	Recommendations []string `json:"recommendations"`
}
type DiagnoseOutput struct {
	Timestamp   time.Time       `json:"timestamp"`
	Environment string          `json:"environment"`
	Remote      RemoteDiagnosis `json:"cloudinary"`
	Summary     DiagnoseSummary `json:"summary"`
}
type TestConnectionOutput struct {
	EnvVars CredentialFlags `json:"envVars"`
	Ping    *CheckStatus    `json:"ping,omitempty"`
}

// SnapshotRequester schedules the creation of an export archive in the background.
type SnapshotRequester interface {
	RequestSnapshot(ctx context.Context) (string, error)
}

// SnapshotBuilder builds an export archive and stores it.
type SnapshotBuilder interface {
	BuildSnapshot(ctx context.Context, in BuildSnapshotInput) (*model.Snapshot, error)
}
type BuildSnapshotInput struct {
	RequestedAt string `json:"requested_at" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
}

// SnapshotLister lists stored export archives with download links.
type SnapshotLister interface {
	ListSnapshots(ctx context.Context) ([]model.Snapshot, error)
}
