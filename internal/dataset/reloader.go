package dataset

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// Reloader refreshes a Store on a cron schedule.
type Reloader struct {
	cron     *cron.Cron
	store    *Store
	log      zerolog.Logger
	schedule string
	timeout  time.Duration
}

// NewReloader schedules store reloads. schedule accepts the standard five
// field cron syntax and descriptors such as "@every 1h".
func NewReloader(store *Store, schedule string, timeout time.Duration, log zerolog.Logger) (*Reloader, error) {
	r := &Reloader{
		cron:     cron.New(),
		store:    store,
		log:      log,
		schedule: schedule,
		timeout:  timeout,
	}
	if _, err := r.cron.AddFunc(schedule, r.RunOnce); err != nil {
		return nil, fmt.Errorf("invalid reload schedule %q: %w", schedule, err)
	}
	return r, nil
}

// Start begins running scheduled reloads in the background.
func (r *Reloader) Start() {
	r.log.Info().Str("schedule", r.schedule).Msg("dataset reloader started")
	r.cron.Start()
}

// Stop stops the scheduler and waits for a running reload to finish.
func (r *Reloader) Stop() {
	<-r.cron.Stop().Done()
	r.log.Info().Msg("dataset reloader stopped")
}

// RunOnce reloads the store immediately. Errors are logged and the previous
// Dataset stays published.
func (r *Reloader) RunOnce() {
	ctx := context.Background()
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}
	if _, err := r.store.Load(ctx); err != nil {
		r.log.Error().Err(err).Msg("dataset reload failed")
	}
}
