package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/fhuszti/wedding-medias-go/internal/cache"
	"github.com/fhuszti/wedding-medias-go/internal/config"
	"github.com/fhuszti/wedding-medias-go/internal/handler/api"
	"github.com/fhuszti/wedding-medias-go/internal/logger"
	"github.com/fhuszti/wedding-medias-go/internal/mediastore"
	"github.com/fhuszti/wedding-medias-go/internal/metrics"
	cMiddleware "github.com/fhuszti/wedding-medias-go/internal/middleware"
	"github.com/fhuszti/wedding-medias-go/internal/port"
	"github.com/fhuszti/wedding-medias-go/internal/renderer"
	"github.com/fhuszti/wedding-medias-go/internal/storage"
	"github.com/fhuszti/wedding-medias-go/internal/task"
	mediaSvc "github.com/fhuszti/wedding-medias-go/internal/usecase/media"
)

const multipartOverhead = 1 << 20

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logger.Errorf(ctx, "❌  Configuration error: %v", err)
		os.Exit(1)
	}

	logger.Init("wedding-medias-api")

	r := initRouter(ctx)

	store := mediastore.NewClient(mediastore.Options{
		BaseURL:   cfg.CloudAPIBaseURL,
		CloudName: cfg.CloudName,
		APIKey:    cfg.CloudAPIKey,
		APISecret: cfg.CloudAPISecret,
		Timeout:   cfg.CloudHTTPTimeout,
	})

	var closers []io.Closer
	var ca port.Cache
	if cfg.RedisAddr != "" {
		rc := cache.NewCache(cfg.RedisAddr, cfg.RedisPassword, cfg.CloudName)
		ca = rc
		closers = append(closers, rc)
		logger.Info(ctx, "✅  Redis cache enabled")
	} else {
		ca = cache.NewNoop()
		logger.Warn(ctx, "⚠️  Redis not configured, caching is disabled")
	}

	var dispatcher port.TaskDispatcher
	var strg port.Storage
	if cfg.SnapshotsEnabled() {
		d := task.NewDispatcher(cfg.RedisAddr, cfg.RedisPassword)
		dispatcher = d
		closers = append(closers, d)
		strg = initStorage(ctx, cfg)
		logger.Info(ctx, "✅  Archive snapshots enabled")
	} else {
		dispatcher = task.NewNoopDispatcher()
		logger.Warn(ctx, "⚠️  Redis or MinIO not configured, archive snapshots are disabled")
	}

	limits := mediaSvc.Limits{
		MaxImageSize: cfg.MaxImageSize,
		MaxVideoSize: cfg.MaxVideoSize,
		ImagesFolder: cfg.ImagesFolder,
		VideosFolder: cfg.VideosFolder,
	}
	maxBody := max(cfg.MaxImageSize, cfg.MaxVideoSize) + multipartOverhead

	checkerSvc := mediaSvc.NewConfigChecker(store, ca, cfg.PingCacheTTL)
	uploaderSvc := mediaSvc.NewMediaUploader(store, limits, mediaSvc.NewRetryPolicy(cfg.UploadMaxRetries, cfg.UploadBackoffBase))
	r.Post("/upload", api.UploadHandler(checkerSvc, uploaderSvc, maxBody))

	listerSvc := mediaSvc.NewMediaLister(store, mediaSvc.ListOptions{
		ImagesFolder: cfg.ImagesFolder,
		VideosFolder: cfg.VideosFolder,
		MaxResults:   cfg.ListMaxResults,
	})
	r.Get("/photos", api.ListPhotosHandler(renderer.NewHTTPRenderer(), listerSvc))

	exporterSvc := mediaSvc.NewMediaExporter(listerSvc, store, mediaSvc.ExportOptions{
		ArchiveName: cfg.ExportArchiveName,
		Folder:      cfg.ExportFolder,
		Concurrency: cfg.ExportConcurrency,
	})
	r.Get("/photos/download-all", api.DownloadAllHandler(exporterSvc))

	prefix := mediaSvc.SnapshotPrefix(cfg.ExportArchiveName)
	r.Post("/photos/snapshots", api.RequestSnapshotHandler(mediaSvc.NewSnapshotRequester(dispatcher)))
	r.Get("/photos/snapshots", api.ListSnapshotsHandler(mediaSvc.NewSnapshotLister(strg, prefix, cfg.SnapshotLinkTTL)))

	deleterSvc := mediaSvc.NewMediaDeleter(store)
	r.With(cMiddleware.WithMediaID()).
		Delete("/photos/{id}", api.DeletePhotoHandler(deleterSvc))
	r.With(cMiddleware.WithMediaID()).
		Delete("/photos/*", api.DeletePhotoHandler(deleterSvc))

	diagnoserSvc := mediaSvc.NewDiagnoser(store, mediaSvc.Credentials{
		Environment: cfg.Environment,
		CloudName:   cfg.CloudName,
		APIKey:      cfg.CloudAPIKey,
		APISecret:   cfg.CloudAPISecret,
	})
	r.Get("/diagnose", api.DiagnoseHandler(diagnoserSvc))
	r.Get("/test-config", api.TestConfigHandler(diagnoserSvc))

	r.Get("/healthz", api.HealthzHandler())
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	listenRouter(ctx, r, cfg, closers)
}

func initRouter(ctx context.Context) *chi.Mux {
	logger.Info(ctx, "initialising router...")

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cMiddleware.WithLocale())

	r.NotFound(api.NotFoundHandler())
	r.MethodNotAllowed(api.MethodNotAllowedHandler())

	return r
}

func initStorage(ctx context.Context, cfg *config.Settings) port.Storage {
	client, err := storage.NewMinioClient(
		cfg.MinioEndpoint,
		cfg.MinioAccessKey,
		cfg.MinioSecretKey,
		cfg.MinioUseSSL,
	)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to initialize MinIO client: %v", err)
		os.Exit(1)
	}

	strg := client.WithBucket(cfg.SnapshotsBucket)
	if err := strg.InitBucket(ctx); err != nil {
		logger.Errorf(ctx, "❌  Failed to initialize bucket %q: %v", cfg.SnapshotsBucket, err)
		os.Exit(1)
	}
	return strg
}

func listenRouter(ctx context.Context, r *chi.Mux, cfg *config.Settings, closers []io.Closer) {
	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.ServerPort),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Infof(ctx, "🚀 API listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf(ctx, "❌  Listen error: %v", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info(ctx, "🛑 Shutdown signal received, exiting…")

	// export requests may run for minutes
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf(ctx, "❌  Server shutdown failed: %v", err)
		os.Exit(1)
	}
	logger.Info(ctx, "✅  Server gracefully stopped")

	for _, c := range closers {
		if err := c.Close(); err != nil {
			logger.Warnf(ctx, "close error: %v", err)
		}
	}
}
