// internal/publish/status_writer.go
package publish

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/tamzrod/octave-reader/internal/status"
)

// StatusWriter is the delivery-only contract for device status.
// It receives a snapshot and publishes it verbatim.
// No logic, no interpretation.
type StatusWriter interface {
	WriteStatus(s status.Snapshot) error
}

// Live status fields, each on its own retained subtopic.
const (
	FieldHealth         = "health"
	FieldLastErrorCode  = "last_error_code"
	FieldSecondsInError = "seconds_in_error"
)

// deviceStatusWriter is the concrete implementation used by the poll loop.
type deviceStatusWriter struct {
	plan Plan
	pub  Publisher

	needFull bool
	last     status.Snapshot
}

// NewDeviceStatusWriter builds a status writer. Status messages are
// always retained so late subscribers see the current state.
func NewDeviceStatusWriter(plan Plan, pub Publisher) *deviceStatusWriter {
	return &deviceStatusWriter{
		plan:     plan,
		pub:      pub,
		needFull: true, // full re-assert on first successful write
		last: status.Snapshot{
			Health:         status.HealthUnknown,
			LastErrorCode:  status.Success,
			SecondsInError: 0,
		},
	}
}

// WriteStatus delivers a device status snapshot.
// On any publish failure, the next call re-asserts the full document.
func (sw *deviceStatusWriter) WriteStatus(s status.Snapshot) error {
	if sw == nil || sw.pub == nil {
		return errors.New("status writer: disabled")
	}

	// ------------------------------------------------------------
	// Full document (identity re-assert)
	// ------------------------------------------------------------
	if sw.needFull {
		doc, err := status.Encode(s)
		if err != nil {
			return fmt.Errorf("status writer: encode: %w", err)
		}

		if err := sw.publish(sw.plan.StatusTopic(), doc); err != nil {
			sw.needFull = true
			return fmt.Errorf("status writer: full document publish failed: %w", err)
		}
		for _, f := range sw.fields(s) {
			if err := sw.publish(sw.plan.StatusFieldTopic(f.name), []byte(f.value)); err != nil {
				sw.needFull = true
				return fmt.Errorf("status writer: %s publish failed: %w", f.name, err)
			}
		}

		sw.needFull = false
		sw.last = s
		return nil
	}

	var errs []string

	if sw.last.Health != s.Health {
		if err := sw.publish(sw.plan.StatusFieldTopic(FieldHealth), []byte(status.HealthName(s.Health))); err != nil {
			errs = append(errs, fmt.Sprintf("health publish failed: %v", err))
		} else {
			sw.last.Health = s.Health
		}
	}

	if sw.last.LastErrorCode != s.LastErrorCode {
		if err := sw.publish(sw.plan.StatusFieldTopic(FieldLastErrorCode), []byte(strconv.Itoa(int(s.LastErrorCode)))); err != nil {
			errs = append(errs, fmt.Sprintf("last_error_code publish failed: %v", err))
		} else {
			sw.last.LastErrorCode = s.LastErrorCode
		}
	}

	if sw.last.SecondsInError != s.SecondsInError {
		if err := sw.publish(sw.plan.StatusFieldTopic(FieldSecondsInError), []byte(strconv.Itoa(int(s.SecondsInError)))); err != nil {
			errs = append(errs, fmt.Sprintf("seconds_in_error publish failed: %v", err))
		} else {
			sw.last.SecondsInError = s.SecondsInError
		}
	}

	if len(errs) > 0 {
		// Any partial failure introduces doubt: re-assert on next call.
		sw.needFull = true
		return errors.New("status writer: " + strings.Join(errs, " | "))
	}

	return nil
}

type field struct {
	name  string
	value string
}

func (sw *deviceStatusWriter) fields(s status.Snapshot) []field {
	return []field{
		{FieldHealth, status.HealthName(s.Health)},
		{FieldLastErrorCode, strconv.Itoa(int(s.LastErrorCode))},
		{FieldSecondsInError, strconv.Itoa(int(s.SecondsInError))},
	}
}

func (sw *deviceStatusWriter) publish(topic string, payload []byte) error {
	return sw.pub.Publish(topic, payload, sw.plan.QoS, true)
}
