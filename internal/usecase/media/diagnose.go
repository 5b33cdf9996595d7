package media

import (
	"context"
	"time"

	"github.com/fhuszti/wedding-medias-go/internal/logger"
	"github.com/fhuszti/wedding-medias-go/internal/port"
)

const notSet = "NOT SET"

// Credentials are the remote store settings reported by the diagnostics.
type Credentials struct {
	Environment string
	CloudName   string
	APIKey      string
	APISecret   string
}

type diagnoseSrv struct {
	store port.MediaStore
	creds Credentials
	now   func() time.Time
}

var _ port.Diagnoser = (*diagnoseSrv)(nil)

func NewDiagnoser(store port.MediaStore, creds Credentials) port.Diagnoser {
	return &diagnoseSrv{store: store, creds: creds, now: time.Now}
}

func (s *diagnoseSrv) flags() port.CredentialFlags {
	return port.CredentialFlags{
		CloudName: s.creds.CloudName != "",
		APIKey:    s.creds.APIKey != "",
		APISecret: s.creds.APISecret != "",
	}
}

// Diagnose checks the credentials, the connection and the account usage.
// It never uses cached results.
func (s *diagnoseSrv) Diagnose(ctx context.Context) *port.DiagnoseOutput {
	flags := s.flags()
	out := &port.DiagnoseOutput{
		Timestamp:   s.now().UTC(),
		Environment: s.creds.Environment,
		Remote: port.RemoteDiagnosis{
			Config: flags,
			Values: port.CredentialValues{
				CloudName: mask(s.creds.CloudName, 3),
				APIKey:    mask(s.creds.APIKey, 8),
				APISecret: mask(s.creds.APISecret, 4),
			},
			Errors: []string{},
		},
	}
	r := &out.Remote

	var missing []string
	if !flags.CloudName {
		missing = append(missing, "CLOUDINARY_CLOUD_NAME")
	}
	if !flags.APIKey {
		missing = append(missing, "CLOUDINARY_API_KEY")
	}
	if !flags.APISecret {
		missing = append(missing, "CLOUDINARY_API_SECRET")
	}
	configValid := len(missing) == 0

	if !configValid {
		for _, m := range missing {
			r.Errors = append(r.Errors, "missing variable: "+m)
		}
	} else {
		r.Connection = s.ping(ctx)
		if r.Connection.Status == "error" {
			r.Errors = append(r.Errors, "connection error: "+r.Connection.Error)
		} else {
			usage, err := s.store.Usage(ctx)
			if err != nil {
				r.AccountStatus = &port.CheckStatus{Status: "error", Error: err.Error()}
				r.Errors = append(r.Errors, "account check error: "+err.Error())
			} else {
				r.AccountStatus = &port.CheckStatus{Status: "success", Data: usage}
			}
		}
	}

	connectionValid := r.Connection != nil && r.Connection.Status == "success"
	sum := port.DiagnoseSummary{
		Overall:         "success",
		ConfigValid:     configValid,
		ConnectionValid: connectionValid,
		TotalErrors:     len(r.Errors),
		Recommendations: []string{},
	}
	if len(r.Errors) > 0 {
		sum.Overall = "error"
	}
	switch {
	case !configValid:
		sum.Recommendations = append(sum.Recommendations, "Set every Cloudinary environment variable")
	case !connectionValid:
		sum.Recommendations = append(sum.Recommendations,
			"Check that the Cloudinary credentials are correct",
			"Check that the Cloudinary account is active")
	case r.AccountStatus != nil && r.AccountStatus.Status == "error":
		sum.Recommendations = append(sum.Recommendations, "Check the permissions of the Cloudinary account")
	}
	out.Summary = sum

	logger.Infof(ctx, "diagnosis finished: %s (%d errors)", sum.Overall, sum.TotalErrors)
	return out
}

// TestConnection pings the remote store and reports which credentials are set.
func (s *diagnoseSrv) TestConnection(ctx context.Context) (*port.TestConnectionOutput, error) {
	out := &port.TestConnectionOutput{EnvVars: s.flags()}
	if err := s.store.Ping(ctx); err != nil {
		return out, err
	}
	out.Ping = &port.CheckStatus{Status: "success", Data: map[string]any{"status": "ok"}}
	return out, nil
}

func (s *diagnoseSrv) ping(ctx context.Context) *port.CheckStatus {
	if err := s.store.Ping(ctx); err != nil {
		return &port.CheckStatus{Status: "error", Error: describeConfigErr(err)}
	}
	return &port.CheckStatus{
		Status:  "success",
		Message: "connected to Cloudinary",
		Data:    map[string]any{"status": "ok"},
	}
}

// mask keeps the first n characters of a secret.
func mask(v string, n int) string {
	if v == "" {
		return notSet
	}
	if len(v) > n {
		v = v[:n]
	}
	return v + "..."
}
