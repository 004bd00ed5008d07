// internal/publish/mqtt/client.go
package mqtt

import (
	"crypto/tls"
	"errors"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// API is the part of the paho client the wrapper drives.
type API interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token
	Disconnect(quiesce uint)
	IsConnectionOpen() bool
}

type Config struct {
	BrokerURL string // e.g. "tcp://mqtt:1883"
	ClientID  string
	Username  string
	Password  string
	TLS       bool

	// Last will, published retained by the broker when the connection drops.
	WillTopic   string
	WillPayload string

	PublishTimeout time.Duration
}

// Client is a connected MQTT publisher.
type Client struct {
	api     API
	timeout time.Duration
}

func New(cfg Config) (*Client, error) {
	if cfg.BrokerURL == "" {
		return nil, errors.New("mqtt: broker url required")
	}

	opts := mqtt.NewClientOptions().
		AddBroker(cfg.BrokerURL).
		SetClientID(cfg.ClientID).
		SetKeepAlive(30 * time.Second).
		SetConnectTimeout(5 * time.Second).
		SetPingTimeout(3 * time.Second).
		SetAutoReconnect(true).
		SetOrderMatters(false)

	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
		opts.SetPassword(cfg.Password)
	}
	if cfg.TLS {
		opts.SetTLSConfig(&tls.Config{MinVersion: tls.VersionTLS12})
	}
	if cfg.WillTopic != "" {
		opts.SetWill(cfg.WillTopic, cfg.WillPayload, 1, true)
	}

	client := mqtt.NewClient(opts)
	t := client.Connect()
	if ok := t.WaitTimeout(10 * time.Second); !ok {
		return nil, fmt.Errorf("mqtt: connect %s: timed out", cfg.BrokerURL)
	}
	if err := t.Error(); err != nil {
		return nil, fmt.Errorf("mqtt: connect %s: %w", cfg.BrokerURL, err)
	}

	return newClient(client, cfg.PublishTimeout), nil
}

func newClient(api API, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{api: api, timeout: timeout}
}

// Publish sends one message and waits for it to be handed to the broker.
func (c *Client) Publish(topic string, payload []byte, qos byte, retain bool) error {
	t := c.api.Publish(topic, qos, retain, payload)
	if !t.WaitTimeout(c.timeout) {
		return fmt.Errorf("mqtt: publish %s: timed out", topic)
	}
	return t.Error()
}

func (c *Client) Close() {
	if c.api != nil && c.api.IsConnectionOpen() {
		c.api.Disconnect(250)
	}
}
