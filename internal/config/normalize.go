// internal/config/normalize.go
package config

import "strings"

// Serial line defaults of the Octave meter.
const (
	DefaultBaudRate    = 2400
	DefaultDataBits    = 8
	DefaultParity      = "N"
	DefaultStopBits    = 1
	DefaultSlaveID     = 1
	DefaultTimeoutMs   = 1000
	DefaultIntervalMs  = 5000
	DefaultTopicPrefix = "octave"
	DefaultClientID    = "octave-reader"
)

// DefaultReads is polled when no reads are configured.
var DefaultReads = []string{
	"ReadAlarms",
	"ForwardVolume_64",
	"ReverseVolume_64",
	"SignedCurrentFlow_64",
	"FlowDirection",
}

// Normalize applies post-validation normalization.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	s := &cfg.Meter.Source
	s.Mode = strings.ToLower(s.Mode)
	if s.Mode == "" {
		s.Mode = "rtu"
	}
	s.Parity = strings.ToUpper(s.Parity)

	if s.Mode == "rtu" {
		if s.BaudRate == 0 {
			s.BaudRate = DefaultBaudRate
		}
		if s.DataBits == 0 {
			s.DataBits = DefaultDataBits
		}
		if s.Parity == "" {
			s.Parity = DefaultParity
		}
		if s.StopBits == 0 {
			s.StopBits = DefaultStopBits
		}
	}
	if s.SlaveID == 0 {
		s.SlaveID = DefaultSlaveID
	}
	if s.TimeoutMs == 0 {
		s.TimeoutMs = DefaultTimeoutMs
	}

	if len(cfg.Meter.Reads) == 0 {
		cfg.Meter.Reads = append([]string(nil), DefaultReads...)
	}
	if cfg.Meter.Poll.IntervalMs == 0 {
		cfg.Meter.Poll.IntervalMs = DefaultIntervalMs
	}

	p := &cfg.Publish
	if !p.Enabled() {
		return
	}
	p.TopicPrefix = strings.Trim(p.TopicPrefix, "/")
	if p.TopicPrefix == "" {
		p.TopicPrefix = DefaultTopicPrefix
	}
	if p.ClientID == "" {
		p.ClientID = DefaultClientID + "-" + cfg.Meter.ID
	}
}
