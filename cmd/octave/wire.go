//go:build wireinject
// +build wireinject

// cmd/octave/wire.go
package main

import (
	"github.com/google/wire"

	"github.com/tamzrod/octave-reader/internal/config"
	"github.com/tamzrod/octave-reader/internal/meter"
	"github.com/tamzrod/octave-reader/internal/transport"
	tmodbus "github.com/tamzrod/octave-reader/internal/transport/modbus"
)

var sessionSet = wire.NewSet(
	ProvideTransportConfig,
	ProvideTransport,
	wire.Bind(new(transport.Transport), new(*tmodbus.Client)),
	ProvideEngine,
	meter.New,
	NewSession,
)

func InitSession(cfg *config.Config) (*Session, func(), error) {
	wire.Build(sessionSet)
	return nil, nil, nil // wire will generate the result
}

func InitPollApp(cfg *config.Config) (*PollApp, func(), error) {
	wire.Build(
		sessionSet,
		ProvidePoller,
		ProvidePlan,
		ProvideMQTT,
		NewPollApp,
	)
	return nil, nil, nil // wire will generate the result
}
