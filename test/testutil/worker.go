package testutil

import (
	"context"

	"github.com/hibiken/asynq"

	workerHandler "github.com/fhuszti/wedding-medias-go/internal/handler/worker"
	"github.com/fhuszti/wedding-medias-go/internal/logger"
	"github.com/fhuszti/wedding-medias-go/internal/port"
	"github.com/fhuszti/wedding-medias-go/internal/task"
)

// StartWorker starts an asynq worker processing archive snapshot tasks.
// It returns a function to gracefully shut down the worker.
func StartWorker(builder port.SnapshotBuilder, redisAddr string) func() {
	mux := asynq.NewServeMux()
	mux.HandleFunc(task.TypeArchiveSnapshot, func(ctx context.Context, t *asynq.Task) error {
		p, err := task.ParseArchiveSnapshotPayload(t)
		if err != nil {
			return err
		}
		return workerHandler.ArchiveSnapshotHandler(ctx, p, builder)
	})

	srv := asynq.NewServer(asynq.RedisClientOpt{Addr: redisAddr}, asynq.Config{Concurrency: 2})
	go func() {
		if err := srv.Run(mux); err != nil {
			logger.Errorf(context.Background(), "worker stopped: %v", err)
		}
	}()

	return func() {
		srv.Shutdown()
	}
}
