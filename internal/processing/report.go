package processing

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// Report accumulates the outcome counters of one apply pass.
type Report struct {
	Created  int
	Updated  int
	Deleted  int
	Skipped  int
	Orphaned int
	Errored  int
}

// Log prints the run summary.
func (r Report) Log() {
	event := log.Info().
		Int("created", r.Created).
		Int("updated", r.Updated).
		Int("skipped", r.Skipped).
		Int("orphaned", r.Orphaned).
		Int("errored", r.Errored)
	if r.Deleted > 0 {
		event = event.Int("deleted", r.Deleted)
	}
	event.Msg("Sync complete")
}

// Options tune how a plan is applied.
type Options struct {
	// Delay is the blanket pause between consecutive writes, protecting
	// the backing service from write bursts.
	Delay time.Duration
	// DryRun logs every operation without writing.
	DryRun bool
}

// pause waits out the inter-write delay, unless the context ends first.
func pause(ctx context.Context, delay time.Duration) {
	if delay <= 0 {
		return
	}
	select {
	case <-ctx.Done():
	case <-time.After(delay):
	}
}
