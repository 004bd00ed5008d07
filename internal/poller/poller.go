// internal/poller/poller.go
package poller

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tamzrod/octave-reader/internal/meter"
	"github.com/tamzrod/octave-reader/internal/status"
)

// Reader abstracts the meter operations needed by the poller.
// *meter.Meter satisfies it.
type Reader interface {
	Read(ctx context.Context, name string) (meter.Reading, error)
}

// Config is the minimal runtime config the poller needs.
type Config struct {
	MeterID  string
	Interval time.Duration
	Reads    []string // quantity names
}

// Poller is a dumb, clock-driven reader.
type Poller struct {
	cfg    Config
	reader Reader
	now    func() time.Time
}

// New creates a poller with immutable config.
func New(cfg Config, reader Reader) (*Poller, error) {
	if cfg.MeterID == "" {
		return nil, errors.New("poller: meter id required")
	}
	if cfg.Interval <= 0 {
		return nil, errors.New("poller: interval must be > 0")
	}
	if len(cfg.Reads) == 0 {
		return nil, errors.New("poller: at least one read required")
	}
	if reader == nil {
		return nil, errors.New("poller: reader required")
	}
	return &Poller{cfg: cfg, reader: reader, now: time.Now}, nil
}

// PollOnce performs exactly one poll cycle.
// All-or-nothing: any failure aborts the cycle.
func (p *Poller) PollOnce(ctx context.Context) PollResult {
	res := PollResult{
		MeterID: p.cfg.MeterID,
		At:      p.now(),
	}

	readings := make([]meter.Reading, 0, len(p.cfg.Reads))

	for _, name := range p.cfg.Reads {
		r, err := p.reader.Read(ctx, name)
		if err != nil {
			// name not in the memory map: nothing was sent
			res.Code = status.IllegalFunction
			res.Err = err
			return res
		}
		if r.Code != status.Success {
			res.Code = r.Code
			res.Err = fmt.Errorf("poller: read %s: %w", name, r.Code)
			return res
		}
		readings = append(readings, r)
	}

	// Commit only if all reads succeeded
	res.Readings = readings
	return res
}
