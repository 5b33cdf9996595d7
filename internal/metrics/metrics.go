// Package metrics holds the Prometheus collectors of the service.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "wedding_medias"

// Registry is private to the service so tests never collide with the default one.
var Registry = newRegistry()

var (
	UploadAttempts = promauto.With(Registry).NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upload_attempts_total",
		Help:      "Upload calls issued to the remote media store, by outcome.",
	}, []string{"resource_type", "outcome"})

	UploadsExhausted = promauto.With(Registry).NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "uploads_exhausted_total",
		Help:      "Uploads that failed after every allowed attempt.",
	})

	ListDuration = promauto.With(Registry).NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "list_duration_seconds",
		Help:      "Time spent aggregating the image and video listings.",
		Buckets:   prometheus.DefBuckets,
	})

	ExportedAssets = promauto.With(Registry).NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "exported_assets_total",
		Help:      "Assets processed by bulk exports, by outcome (included|omitted).",
	}, []string{"outcome"})
)

func newRegistry() *prometheus.Registry {
	r := prometheus.NewRegistry()
	r.MustRegister(collectors.NewGoCollector())
	r.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	return r
}

// Handler exposes the registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{Registry: Registry})
}
