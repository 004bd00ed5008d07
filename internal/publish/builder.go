// internal/publish/builder.go
package publish

import (
	"errors"

	cfg "github.com/tamzrod/octave-reader/internal/config"
)

// BuildPlan converts the config into a delivery Plan.
// Assumes config has already passed Validate and Normalize.
func BuildPlan(c cfg.Config) (Plan, error) {
	if c.Meter.ID == "" {
		return Plan{}, errors.New("publish: meter.id required")
	}
	return Plan{
		MeterID: c.Meter.ID,
		Prefix:  c.Publish.TopicPrefix,
		QoS:     c.Publish.QoS,
	}, nil
}
