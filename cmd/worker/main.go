package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"

	"github.com/fhuszti/wedding-medias-go/internal/config"
	workerHandler "github.com/fhuszti/wedding-medias-go/internal/handler/worker"
	"github.com/fhuszti/wedding-medias-go/internal/logger"
	"github.com/fhuszti/wedding-medias-go/internal/mediastore"
	"github.com/fhuszti/wedding-medias-go/internal/port"
	"github.com/fhuszti/wedding-medias-go/internal/storage"
	"github.com/fhuszti/wedding-medias-go/internal/task"
	mediaSvc "github.com/fhuszti/wedding-medias-go/internal/usecase/media"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logger.Errorf(ctx, "❌  Configuration error: %v", err)
		os.Exit(1)
	}
	if !cfg.SnapshotsEnabled() {
		logger.Error(ctx, "⚠️  REDIS_ADDR and MINIO_ENDPOINT must be set to run the worker")
		os.Exit(1)
	}

	logger.Init("wedding-medias-worker")

	strg := initStorage(ctx, cfg)

	store := mediastore.NewClient(mediastore.Options{
		BaseURL:   cfg.CloudAPIBaseURL,
		CloudName: cfg.CloudName,
		APIKey:    cfg.CloudAPIKey,
		APISecret: cfg.CloudAPISecret,
		Timeout:   cfg.CloudHTTPTimeout,
	})
	lister := mediaSvc.NewMediaLister(store, mediaSvc.ListOptions{
		ImagesFolder: cfg.ImagesFolder,
		VideosFolder: cfg.VideosFolder,
		MaxResults:   cfg.ListMaxResults,
	})
	exporter := mediaSvc.NewMediaExporter(lister, store, mediaSvc.ExportOptions{
		ArchiveName: cfg.ExportArchiveName,
		Folder:      cfg.ExportFolder,
		Concurrency: cfg.ExportConcurrency,
	})
	builderSvc := mediaSvc.NewSnapshotBuilder(exporter, strg, mediaSvc.SnapshotPrefix(cfg.ExportArchiveName))

	mux := asynq.NewServeMux()
	mux.HandleFunc(task.TypeArchiveSnapshot, func(ctx context.Context, t *asynq.Task) error {
		p, err := task.ParseArchiveSnapshotPayload(t)
		if err != nil {
			return err
		}
		return workerHandler.ArchiveSnapshotHandler(ctx, p, builderSvc)
	})

	runWorker(ctx, mux, cfg)
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

func runWorker(ctx context.Context, mux *asynq.ServeMux, cfg *config.Settings) {
	srv := asynq.NewServer(asynq.RedisClientOpt{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	}, asynq.Config{
		// archives are built in memory
		Concurrency:     2,
		ShutdownTimeout: cfg.CloudHTTPTimeout,
	})

	go func() {
		if err := srv.Run(mux); err != nil {
			logger.Errorf(context.Background(), "❌  Worker failed: %v", err)
			os.Exit(1)
		}
	}()
	logger.Info(ctx, "🚀 Worker started")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh
	logger.Info(ctx, "🛑 Shutdown signal received, exiting…")

	// stop accepting new tasks, finish in-flight ones within ShutdownTimeout
	srv.Shutdown()
	logger.Info(ctx, "✅  Worker gracefully stopped")
}
