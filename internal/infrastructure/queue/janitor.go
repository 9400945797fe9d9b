package queue

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/laborercms/laborer-api/internal/api/metrics"
	"github.com/laborercms/laborer-api/internal/core/ports"
)

const defaultInterval = time.Minute

// Janitor retries picture deletions that failed during request handling.
// Paths land in the CleanupQueue when a best-effort delete fails; the
// janitor sweeps the queue on a fixed interval and drops entries once the
// file is gone.
type Janitor struct {
	queue    ports.CleanupQueue
	store    ports.PictureStore
	interval time.Duration
	log      zerolog.Logger
}

// NewJanitor creates a Janitor. If interval <= 0, defaultInterval is used.
func NewJanitor(queue ports.CleanupQueue, store ports.PictureStore, interval time.Duration, log zerolog.Logger) *Janitor {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Janitor{queue: queue, store: store, interval: interval, log: log}
}

// Start launches the sweep loop. It stops when ctx is cancelled.
func (j *Janitor) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(j.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				j.Sweep(ctx)
			}
		}
	}()
}

// Sweep attempts every queued deletion once. Entries whose file is removed
// (or was already gone) leave the queue; the rest stay for the next pass.
func (j *Janitor) Sweep(ctx context.Context) {
	pending, err := j.queue.Pending(ctx)
	if err != nil {
		j.log.Warn().Err(err).Msg("cleanup sweep: cannot read queue")
		return
	}
	metrics.PictureCleanupQueueDepth.Set(float64(len(pending)))

	for _, path := range pending {
		if err := j.store.Delete(ctx, path); err != nil {
			metrics.PictureCleanupFailuresTotal.Inc()
			j.log.Warn().Err(err).Str("picture", path).Msg("cleanup retry failed")
			continue
		}
		if err := j.queue.Remove(ctx, path); err != nil {
			j.log.Warn().Err(err).Str("picture", path).Msg("cleanup sweep: cannot dequeue")
			continue
		}
		j.log.Info().Str("picture", path).Msg("orphaned picture removed")
	}
}
