package mock

import (
	"context"

	"github.com/fhuszti/wedding-medias-go/internal/model"
	"github.com/fhuszti/wedding-medias-go/internal/port"
)

// MockUploader implements port.Uploader for tests.
type MockUploader struct {
	Out    *model.MediaAsset
	Err    error
	In     port.UploadMediaInput
	Called bool
}

func (m *MockUploader) Upload(ctx context.Context, in port.UploadMediaInput) (*model.MediaAsset, error) {
	m.Called = true
	m.In = in
	return m.Out, m.Err
}

// MockMediaLister implements port.MediaLister for tests.
type MockMediaLister struct {
	Out          []model.MediaAsset
	ResourcesOut []model.RemoteResource
	Err          error
	Called       bool
}

func (m *MockMediaLister) ListAll(ctx context.Context) ([]model.MediaAsset, error) {
	m.Called = true
	return m.Out, m.Err
}

func (m *MockMediaLister) ListResources(ctx context.Context) ([]model.RemoteResource, error) {
	m.Called = true
	return m.ResourcesOut, m.Err
}

// MockMediaExporter implements port.MediaExporter for tests.
type MockMediaExporter struct {
	Out    *port.ExportOutput
	Err    error
	Called bool
}

func (m *MockMediaExporter) ExportAll(ctx context.Context) (*port.ExportOutput, error) {
	m.Called = true
	return m.Out, m.Err
}

// MockMediaDeleter implements port.MediaDeleter for tests.
type MockMediaDeleter struct {
	Err    error
	In     port.DeleteMediaInput
	Called bool
}

func (m *MockMediaDeleter) DeleteMedia(ctx context.Context, in port.DeleteMediaInput) error {
	m.Called = true
	m.In = in
	return m.Err
}

// MockConfigChecker implements port.ConfigChecker for tests.
type MockConfigChecker struct {
	Err    error
	Called bool
}

func (m *MockConfigChecker) CheckConfig(ctx context.Context) error {
	m.Called = true
	return m.Err
}

// MockDiagnoser implements port.Diagnoser for tests.
type MockDiagnoser struct {
	DiagnoseOut *port.DiagnoseOutput
	TestOut     *port.TestConnectionOutput
	TestErr     error
}

func (m *MockDiagnoser) Diagnose(ctx context.Context) *port.DiagnoseOutput {
	return m.DiagnoseOut
}

func (m *MockDiagnoser) TestConnection(ctx context.Context) (*port.TestConnectionOutput, error) {
	return m.TestOut, m.TestErr
}

// MockSnapshotRequester implements port.SnapshotRequester for tests.
type MockSnapshotRequester struct {
	Out    string
	Err    error
	Called bool
}

func (m *MockSnapshotRequester) RequestSnapshot(ctx context.Context) (string, error) {
	m.Called = true
	return m.Out, m.Err
}

// MockSnapshotBuilder implements port.SnapshotBuilder for tests.
type MockSnapshotBuilder struct {
	Out    *model.Snapshot
	Err    error
	In     port.BuildSnapshotInput
	Called bool
}

func (m *MockSnapshotBuilder) BuildSnapshot(ctx context.Context, in port.BuildSnapshotInput) (*model.Snapshot, error) {
	m.Called = true
	m.In = in
	return m.Out, m.Err
}

// MockSnapshotLister implements port.SnapshotLister for tests.
type MockSnapshotLister struct {
	Out    []model.Snapshot
	Err    error
	Called bool
}

func (m *MockSnapshotLister) ListSnapshots(ctx context.Context) ([]model.Snapshot, error) {
	m.Called = true
	return m.Out, m.Err
}
