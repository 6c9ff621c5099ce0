package config

import (
	"time"

	"rider_voc_sync/internal/retry"
)

// ResilienceConfig groups the retry policies for the external services a
// sync run talks to. Per-record writes are deliberately not covered: a
// failed write is logged and skipped, not retried.
type ResilienceConfig struct {
	SheetRead  retry.Config
	StoreRead  retry.Config
	StoreQuery retry.Config
}

var DefaultResilienceConfig = ResilienceConfig{
	SheetRead: retry.Config{
		MaxRetries: 3,
		BaseDelay:  2 * time.Second,
		MaxDelay:   30 * time.Second,
		Timeout:    30 * time.Second,
	},
	StoreRead: retry.Config{
		MaxRetries: 3,
		BaseDelay:  1 * time.Second,
		MaxDelay:   15 * time.Second,
		Timeout:    20 * time.Second,
	},
	StoreQuery: retry.Config{
		MaxRetries: 2,
		BaseDelay:  500 * time.Millisecond,
		MaxDelay:   5 * time.Second,
		Timeout:    10 * time.Second,
	},
}
