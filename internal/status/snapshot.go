// internal/status/snapshot.go
package status

// Health codes for the device status snapshot.
const (
	HealthUnknown uint16 = 0
	HealthOK      uint16 = 1
	HealthError   uint16 = 2
)

// Snapshot represents exactly what the status writer is allowed to deliver.
// It contains no logic and no memory of the past beyond current state.
type Snapshot struct {
	Health         uint16
	LastErrorCode  Code
	SecondsInError uint16
}

// Observe folds one poll outcome into the snapshot and reports whether
// anything changed. Seconds in error are only advanced by Tick.
func (s *Snapshot) Observe(code Code) bool {
	changed := false

	if code == Success {
		if s.Health != HealthOK {
			s.Health = HealthOK
			changed = true
		}
		if s.LastErrorCode != Success {
			s.LastErrorCode = Success
			changed = true
		}
		if s.SecondsInError != 0 {
			s.SecondsInError = 0
			changed = true
		}
		return changed
	}

	if s.Health != HealthError {
		s.Health = HealthError
		changed = true
	}
	if s.LastErrorCode != code {
		s.LastErrorCode = code
		changed = true
	}
	return changed
}

// Tick advances seconds in error while the device is not healthy.
// The counter saturates instead of wrapping.
func (s *Snapshot) Tick() bool {
	if s.Health == HealthOK || s.SecondsInError == 65535 {
		return false
	}
	s.SecondsInError++
	return true
}
