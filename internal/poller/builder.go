// internal/poller/builder.go
package poller

import (
	"time"

	cfg "github.com/tamzrod/octave-reader/internal/config"
)

// Build constructs a Poller for one meter config.
// Assumes config has already passed Validate and Normalize.
func Build(m cfg.MeterConfig, reader Reader) (*Poller, error) {
	reads := make([]string, len(m.Reads))
	copy(reads, m.Reads)

	return New(
		Config{
			MeterID:  m.ID,
			Interval: time.Duration(m.Poll.IntervalMs) * time.Millisecond,
			Reads:    reads,
		},
		reader,
	)
}
