// internal/config/validate_test.go
package config

import "testing"

// helper to build a valid rtu config quickly
func rtu(reads ...string) *Config {
	return &Config{
		Meter: MeterConfig{
			ID: "m1",
			Source: SourceConfig{
				Port: "/dev/ttyUSB0",
			},
			Reads: reads,
		},
	}
}

// ---- tests ----

func TestValidate_MinimalRTU(t *testing.T) {
	if err := Validate(rtu("ForwardVolume_64")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_TCPRequiresEndpoint(t *testing.T) {
	cfg := rtu()
	cfg.Meter.Source = SourceConfig{Mode: "tcp"}

	if err := Validate(cfg); err == nil {
		t.Fatalf("expected missing endpoint error, got nil")
	}

	cfg.Meter.Source.Endpoint = "10.0.0.5:502"
	if err := Validate(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_RTURequiresPort(t *testing.T) {
	cfg := rtu()
	cfg.Meter.Source.Port = ""

	if err := Validate(cfg); err == nil {
		t.Fatalf("expected missing port error, got nil")
	}
}

func TestValidate_Rejects(t *testing.T) {
	cases := map[string]func(*Config){
		"unknown mode":      func(c *Config) { c.Meter.Source.Mode = "udp" },
		"bad parity":        func(c *Config) { c.Meter.Source.Parity = "X" },
		"bad stop bits":     func(c *Config) { c.Meter.Source.StopBits = 3 },
		"no id":             func(c *Config) { c.Meter.ID = "" },
		"id with slash":     func(c *Config) { c.Meter.ID = "a/b" },
		"unknown quantity":  func(c *Config) { c.Meter.Reads = []string{"Pressure"} },
		"write in reads":    func(c *Config) { c.Meter.Reads = []string{"WriteDay"} },
		"duplicate read":    func(c *Config) { c.Meter.Reads = []string{"ReadDay", "ReadDay"} },
		"negative interval": func(c *Config) { c.Meter.Poll.IntervalMs = -1 },
		"negative timeout":  func(c *Config) { c.Meter.Source.TimeoutMs = -5 },
		"bad qos":           func(c *Config) { c.Publish = PublishConfig{Broker: "tcp://b:1883", QoS: 3} },
		"wildcard prefix":   func(c *Config) { c.Publish = PublishConfig{Broker: "tcp://b:1883", TopicPrefix: "site/#"} },
	}

	for name, mutate := range cases {
		cfg := rtu("ReadDay")
		mutate(cfg)
		if err := Validate(cfg); err == nil {
			t.Fatalf("%s: expected error, got nil", name)
		}
	}
}

func TestValidate_PublishIgnoredWhenDisabled(t *testing.T) {
	cfg := rtu()
	cfg.Publish.QoS = 9 // no broker: not checked

	if err := Validate(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNormalize_Defaults(t *testing.T) {
	cfg := rtu()
	cfg.Publish.Broker = "tcp://mqtt:1883"
	cfg.Publish.TopicPrefix = "/plant/"

	Normalize(cfg)

	s := cfg.Meter.Source
	if s.Mode != "rtu" || s.BaudRate != 2400 || s.DataBits != 8 || s.Parity != "N" || s.StopBits != 1 {
		t.Fatalf("serial defaults: %+v", s)
	}
	if s.SlaveID != 1 || s.TimeoutMs != DefaultTimeoutMs {
		t.Fatalf("source defaults: %+v", s)
	}
	if len(cfg.Meter.Reads) != len(DefaultReads) {
		t.Fatalf("reads: %v", cfg.Meter.Reads)
	}
	if cfg.Meter.Poll.IntervalMs != DefaultIntervalMs {
		t.Fatalf("interval: %d", cfg.Meter.Poll.IntervalMs)
	}
	if cfg.Publish.TopicPrefix != "plant" || cfg.Publish.ClientID != "octave-reader-m1" {
		t.Fatalf("publish: %+v", cfg.Publish)
	}
	if !cfg.Publish.StatusEnabled() {
		t.Fatalf("status topic should default on")
	}
}

func TestNormalize_KeepsExplicitValues(t *testing.T) {
	cfg := rtu("ReadDay")
	cfg.Meter.Source.Mode = "TCP"
	cfg.Meter.Source.Endpoint = "meter:502"
	cfg.Meter.Source.SlaveID = 7

	Normalize(cfg)

	s := cfg.Meter.Source
	if s.Mode != "tcp" || s.SlaveID != 7 || s.BaudRate != 0 {
		t.Fatalf("source: %+v", s)
	}
	if len(cfg.Meter.Reads) != 1 {
		t.Fatalf("reads: %v", cfg.Meter.Reads)
	}
}

func TestValidate_ZeroIntervalMeansDefault(t *testing.T) {
	cfg := rtu("ReadDay")
	cfg.Meter.Poll.IntervalMs = 0

	if err := Validate(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	Normalize(cfg)
	if cfg.Meter.Poll.IntervalMs != DefaultIntervalMs {
		t.Fatalf("interval: %d", cfg.Meter.Poll.IntervalMs)
	}
}

func TestParse_RejectsUnknownKeys(t *testing.T) {
	if _, err := Parse([]byte("meter:\n  id: m1\n  colour: blue\n")); err == nil {
		t.Fatalf("expected unknown key error, got nil")
	}
}

func TestParse_FullDocument(t *testing.T) {
	doc := `
meter:
  id: basement
  source:
    mode: tcp
    endpoint: 192.168.1.20:502
    slave_id: 3
    timeout_ms: 500
  reads: [ForwardVolume_64, ReadAlarms]
  poll:
    interval_ms: 2000
publish:
  broker: tcp://mqtt:1883
  qos: 1
  status: false
`
	cfg, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if cfg.Meter.Source.Endpoint != "192.168.1.20:502" || cfg.Meter.Source.SlaveID != 3 {
		t.Fatalf("source: %+v", cfg.Meter.Source)
	}
	if len(cfg.Meter.Reads) != 2 || cfg.Meter.Poll.IntervalMs != 2000 {
		t.Fatalf("meter: %+v", cfg.Meter)
	}
	if cfg.Publish.StatusEnabled() {
		t.Fatalf("status explicitly disabled")
	}
}
