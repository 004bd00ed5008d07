// cmd/octave/flags.go
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tamzrod/octave-reader/internal/config"
)

// connFlags override the config file, or stand in for it.
type connFlags struct {
	configPath string
	id         string
	mode       string
	port       string
	baud       int
	parity     string
	endpoint   string
	slave      uint8
	timeoutMs  int
}

func (f *connFlags) register(cmd *cobra.Command) {
	pf := cmd.PersistentFlags()
	pf.StringVarP(&f.configPath, "config", "c", "", "YAML config file")
	pf.StringVar(&f.id, "id", "", "Meter id used in topics and logs")
	pf.StringVar(&f.mode, "mode", "", "Transport: rtu or tcp")
	pf.StringVar(&f.port, "port", "", "Serial port for rtu mode, e.g. /dev/ttyUSB0")
	pf.IntVar(&f.baud, "baud", 0, "Serial baud rate (default 2400)")
	pf.StringVar(&f.parity, "parity", "", "Serial parity: N, E or O (default N)")
	pf.StringVar(&f.endpoint, "endpoint", "", "host:port for tcp mode")
	pf.Uint8Var(&f.slave, "slave", 0, "Modbus slave address (default 1)")
	pf.IntVar(&f.timeoutMs, "timeout-ms", 0, "Response timeout in milliseconds (default 1000)")
}

// load reads the config file if one was given, applies flag overrides,
// then validates and normalizes.
func (f *connFlags) load(cmd *cobra.Command) (*config.Config, error) {
	cfg := &config.Config{Meter: config.MeterConfig{ID: "octave"}}
	if f.configPath != "" {
		loaded, err := config.Load(f.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	pf := cmd.Flags()
	s := &cfg.Meter.Source
	if pf.Changed("id") {
		cfg.Meter.ID = f.id
	}
	if pf.Changed("mode") {
		s.Mode = f.mode
	}
	if pf.Changed("port") {
		s.Port = f.port
	}
	if pf.Changed("baud") {
		s.BaudRate = f.baud
	}
	if pf.Changed("parity") {
		s.Parity = f.parity
	}
	if pf.Changed("endpoint") {
		s.Endpoint = f.endpoint
		if !pf.Changed("mode") {
			s.Mode = "tcp"
		}
	}
	if pf.Changed("slave") {
		s.SlaveID = f.slave
	}
	if pf.Changed("timeout-ms") {
		s.TimeoutMs = f.timeoutMs
	}

	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	config.Normalize(cfg)
	return cfg, nil
}
