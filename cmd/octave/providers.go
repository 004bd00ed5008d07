// cmd/octave/providers.go
package main

import (
	"time"

	"github.com/tamzrod/octave-reader/internal/config"
	"github.com/tamzrod/octave-reader/internal/engine"
	"github.com/tamzrod/octave-reader/internal/meter"
	"github.com/tamzrod/octave-reader/internal/poller"
	"github.com/tamzrod/octave-reader/internal/publish"
	"github.com/tamzrod/octave-reader/internal/publish/mqtt"
	"github.com/tamzrod/octave-reader/internal/transport"
	tmodbus "github.com/tamzrod/octave-reader/internal/transport/modbus"
)

// Session is one open connection to the meter.
type Session struct {
	Meter *meter.Meter
}

// PollApp is everything the poll command runs.
type PollApp struct {
	Session *Session
	Poller  *poller.Poller
	Plan    publish.Plan

	// nil when publishing is disabled
	MQTT   *mqtt.Client
	Writer publish.Writer
	Status publish.StatusWriter
}

func NewSession(m *meter.Meter) *Session {
	return &Session{Meter: m}
}

func NewPollApp(s *Session, p *poller.Poller, plan publish.Plan, mc *mqtt.Client, cfg *config.Config) *PollApp {
	app := &PollApp{Session: s, Poller: p, Plan: plan}
	if mc == nil {
		return app
	}
	app.MQTT = mc
	app.Writer = publish.New(plan, mc)
	if cfg.Publish.StatusEnabled() {
		app.Status = publish.NewDeviceStatusWriter(plan, mc)
	}
	return app
}

func ProvideTransportConfig(cfg *config.Config) tmodbus.Config {
	s := cfg.Meter.Source
	return tmodbus.Config{
		Mode:     s.Mode,
		Port:     s.Port,
		BaudRate: s.BaudRate,
		DataBits: s.DataBits,
		Parity:   s.Parity,
		StopBits: s.StopBits,
		Endpoint: s.Endpoint,
		SlaveID:  s.SlaveID,
		Timeout:  time.Duration(s.TimeoutMs) * time.Millisecond,
	}
}

func ProvideTransport(c tmodbus.Config) (*tmodbus.Client, func(), error) {
	client, err := tmodbus.New(c)
	if err != nil {
		return nil, nil, err
	}
	return client, func() { _ = client.Close() }, nil
}

func ProvideEngine(tr transport.Transport, cfg *config.Config) *engine.Engine {
	return engine.New(tr,
		engine.WithSlaveAddress(cfg.Meter.Source.SlaveID),
		engine.WithPollInterval(time.Duration(cfg.Meter.Poll.AwaitMs)*time.Millisecond),
	)
}

func ProvidePoller(cfg *config.Config, m *meter.Meter) (*poller.Poller, error) {
	return poller.Build(cfg.Meter, m)
}

func ProvidePlan(cfg *config.Config) (publish.Plan, error) {
	return publish.BuildPlan(*cfg)
}

// ProvideMQTT connects to the broker, or returns a nil client when
// publishing is disabled.
func ProvideMQTT(cfg *config.Config, plan publish.Plan) (*mqtt.Client, func(), error) {
	p := cfg.Publish
	if !p.Enabled() {
		return nil, func() {}, nil
	}

	client, err := mqtt.New(mqtt.Config{
		BrokerURL:   p.Broker,
		ClientID:    p.ClientID,
		Username:    p.Username,
		Password:    p.Password,
		TLS:         p.TLS,
		WillTopic:   plan.AvailabilityTopic(),
		WillPayload: "offline",
	})
	if err != nil {
		return nil, nil, err
	}
	return client, client.Close, nil
}
