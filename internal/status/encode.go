// internal/status/encode.go
package status

import "encoding/json"

type snapshotPayload struct {
	Health         string `json:"health"`
	HealthCode     uint16 `json:"health_code"`
	LastErrorCode  uint8  `json:"last_error_code"`
	LastError      string `json:"last_error"`
	SecondsInError uint16 `json:"seconds_in_error"`
}

// HealthName returns the label published for a health code.
func HealthName(h uint16) string {
	switch h {
	case HealthOK:
		return "ok"
	case HealthError:
		return "error"
	default:
		return "unknown"
	}
}

// Encode converts a Snapshot into the JSON status document.
// No IO. No side effects.
func Encode(s Snapshot) ([]byte, error) {
	return json.Marshal(snapshotPayload{
		Health:         HealthName(s.Health),
		HealthCode:     s.Health,
		LastErrorCode:  uint8(s.LastErrorCode),
		LastError:      s.LastErrorCode.Description(),
		SecondsInError: s.SecondsInError,
	})
}
