package workers

import (
	"context"
	"time"

	"github.com/dkozyrev/tablesync/internal/logger"
	"github.com/dkozyrev/tablesync/internal/service"
)

type Workers struct {
	workers []Worker
}

// New aggregates workers into a single Run entry point.
func New(ws ...Worker) *Workers {
	return &Workers{workers: ws}
}

func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}

type syncJobWorker struct {
	job      service.SyncJob
	interval time.Duration
}

// NewSyncJobWorker wraps the periodic sync job as a Worker.
func NewSyncJobWorker(job service.SyncJob, interval time.Duration) Worker {
	return &syncJobWorker{job: job, interval: interval}
}

func (w *syncJobWorker) Run(ctx context.Context) {
	w.job.Start(ctx, w.interval)
}

type liveListenerWorker struct {
	listener   service.LiveUpdateListener
	retryDelay time.Duration
	log        *logger.Logger
}

// NewLiveListenerWorker runs the live update listener and re-subscribes after
// the connection drops, waiting retryDelay between attempts.
func NewLiveListenerWorker(listener service.LiveUpdateListener, retryDelay time.Duration, log *logger.Logger) Worker {
	if retryDelay <= 0 {
		retryDelay = 5 * time.Second
	}
	return &liveListenerWorker{listener: listener, retryDelay: retryDelay, log: log}
}

func (w *liveListenerWorker) Run(ctx context.Context) {
	go func() {
		for {
			err := w.listener.Run(ctx)
			if ctx.Err() != nil {
				return
			}
			if err != nil {
				w.log.Warn().Err(err).
					Str("func", "liveListenerWorker.Run").Msg("live channel dropped, reconnecting")
			}
			select {
			case <-ctx.Done():
				return
			case <-time.After(w.retryDelay):
			}
		}
	}()
}
