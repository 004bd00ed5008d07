// internal/publish/types.go
package publish

import (
	"strings"

	"github.com/tamzrod/octave-reader/internal/poller"
)

// Publisher is the exact contract the writers use.
// *mqtt.Client satisfies it.
type Publisher interface {
	Publish(topic string, payload []byte, qos byte, retain bool) error
}

// Plan is the fully-built delivery plan for one meter.
type Plan struct {
	MeterID string
	Prefix  string
	QoS     byte
}

// Writer delivers poll snapshots.
type Writer interface {
	Write(res poller.PollResult) error
}

// StateTopic is where one quantity's readings are published.
func (p Plan) StateTopic(quantity string) string {
	return p.base() + "/state/" + quantity
}

// StatusTopic carries the full status document.
func (p Plan) StatusTopic() string {
	return p.base() + "/status"
}

// StatusFieldTopic carries one live status field.
func (p Plan) StatusFieldTopic(field string) string {
	return p.StatusTopic() + "/" + field
}

// AvailabilityTopic carries "online" / "offline".
func (p Plan) AvailabilityTopic() string {
	return p.base() + "/availability"
}

func (p Plan) base() string {
	prefix := strings.Trim(p.Prefix, "/")
	if prefix == "" {
		return p.MeterID
	}
	return prefix + "/" + p.MeterID
}
