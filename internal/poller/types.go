// internal/poller/types.go
package poller

import (
	"time"

	"github.com/tamzrod/octave-reader/internal/meter"
	"github.com/tamzrod/octave-reader/internal/status"
)

// PollResult is a snapshot produced by one poll cycle.
type PollResult struct {
	MeterID string
	At      time.Time

	// Code is the unified code of the first failing read.
	// status.Success means every configured read succeeded.
	Code status.Code

	// Readings are in configured order. Empty unless the cycle succeeded.
	Readings []meter.Reading
	Err      error // non-nil means the poll cycle failed
}
