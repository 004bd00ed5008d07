// internal/config/validate.go
package config

import (
	"fmt"
	"strings"

	"github.com/tamzrod/octave-reader/internal/catalog"
)

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
// Zero values that Normalize fills in are accepted.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config: empty")
	}

	m := cfg.Meter
	if m.ID == "" {
		return fmt.Errorf("meter: id required")
	}
	for i := 0; i < len(m.ID); i++ {
		if m.ID[i] <= 0x20 || m.ID[i] > 0x7E || m.ID[i] == '/' || m.ID[i] == '+' || m.ID[i] == '#' {
			return fmt.Errorf("meter %q: id must be printable ASCII without spaces or topic characters", m.ID)
		}
	}

	// ------------------------------------------------------------
	// SOURCE
	// ------------------------------------------------------------

	s := m.Source
	switch strings.ToLower(s.Mode) {
	case "", "rtu":
		if s.Port == "" {
			return fmt.Errorf("meter %q: source.port required for rtu mode", m.ID)
		}
		switch strings.ToUpper(s.Parity) {
		case "", "N", "E", "O":
		default:
			return fmt.Errorf("meter %q: source.parity must be N, E or O, got %q", m.ID, s.Parity)
		}
		if s.DataBits != 0 && (s.DataBits < 5 || s.DataBits > 8) {
			return fmt.Errorf("meter %q: source.data_bits must be 5-8, got %d", m.ID, s.DataBits)
		}
		if s.StopBits != 0 && s.StopBits != 1 && s.StopBits != 2 {
			return fmt.Errorf("meter %q: source.stop_bits must be 1 or 2, got %d", m.ID, s.StopBits)
		}
		if s.BaudRate < 0 {
			return fmt.Errorf("meter %q: source.baud_rate must be > 0", m.ID)
		}
	case "tcp":
		if s.Endpoint == "" {
			return fmt.Errorf("meter %q: source.endpoint required for tcp mode", m.ID)
		}
	default:
		return fmt.Errorf("meter %q: unknown source.mode %q", m.ID, s.Mode)
	}

	if s.TimeoutMs < 0 {
		return fmt.Errorf("meter %q: source.timeout_ms must be > 0", m.ID)
	}

	// ------------------------------------------------------------
	// READS
	// ------------------------------------------------------------

	seen := make(map[string]bool, len(m.Reads))
	for _, name := range m.Reads {
		fn, ok := catalog.Lookup(name)
		if !ok {
			return fmt.Errorf("meter %q: unknown quantity %q", m.ID, name)
		}
		if !fn.ID.IsRead() {
			return fmt.Errorf("meter %q: %q is a write, not a read", m.ID, name)
		}
		if seen[name] {
			return fmt.Errorf("meter %q: quantity %q listed twice", m.ID, name)
		}
		seen[name] = true
	}

	// ------------------------------------------------------------
	// POLL
	// ------------------------------------------------------------

	if m.Poll.IntervalMs < 0 {
		return fmt.Errorf("meter %q: poll.interval_ms must be > 0", m.ID)
	}
	if m.Poll.AwaitMs < 0 {
		return fmt.Errorf("meter %q: poll.await_ms must be >= 0", m.ID)
	}

	// ------------------------------------------------------------
	// PUBLISH (OPT-IN)
	// ------------------------------------------------------------

	p := cfg.Publish
	if !p.Enabled() {
		return nil
	}
	if p.QoS > 2 {
		return fmt.Errorf("publish: qos must be 0, 1 or 2, got %d", p.QoS)
	}
	if strings.ContainsAny(p.TopicPrefix, "+#") {
		return fmt.Errorf("publish: topic_prefix must not contain wildcards")
	}

	return nil
}
