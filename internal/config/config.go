// internal/config/config.go
package config

type Config struct {
	Meter   MeterConfig   `yaml:"meter"`
	Publish PublishConfig `yaml:"publish"`
}

// ---- METER ----

type MeterConfig struct {
	ID     string       `yaml:"id"`
	Source SourceConfig `yaml:"source"`
	Reads  []string     `yaml:"reads"` // quantity names, e.g. ForwardVolume_64
	Poll   PollConfig   `yaml:"poll"`
}

// ---- SOURCE ----

type SourceConfig struct {
	Mode string `yaml:"mode"` // rtu | tcp

	// RTU
	Port     string `yaml:"port"`
	BaudRate int    `yaml:"baud_rate"`
	DataBits int    `yaml:"data_bits"`
	Parity   string `yaml:"parity"` // N | E | O
	StopBits int    `yaml:"stop_bits"`

	// TCP
	Endpoint string `yaml:"endpoint"`

	SlaveID   uint8 `yaml:"slave_id"`
	TimeoutMs int   `yaml:"timeout_ms"`
}

// ---- POLL ----

type PollConfig struct {
	IntervalMs int `yaml:"interval_ms"`

	// Pause between transport polls while a transaction is in flight.
	// Zero yields instead of sleeping.
	AwaitMs int `yaml:"await_ms"`
}

// ---- PUBLISH ----

// PublishConfig is optional: an empty Broker disables MQTT delivery.
type PublishConfig struct {
	Broker      string `yaml:"broker"` // e.g. tcp://mqtt:1883
	ClientID    string `yaml:"client_id"`
	Username    string `yaml:"username"`
	Password    string `yaml:"password"`
	TLS         bool   `yaml:"tls"`
	TopicPrefix string `yaml:"topic_prefix"`
	QoS         byte   `yaml:"qos"`
	Status      *bool  `yaml:"status"` // device status topic, default on
}

// Enabled reports whether readings are published.
func (p PublishConfig) Enabled() bool { return p.Broker != "" }

// StatusEnabled reports whether the device status topic is maintained.
func (p PublishConfig) StatusEnabled() bool {
	return p.Enabled() && (p.Status == nil || *p.Status)
}
