// internal/status/codes.go
package status

import "fmt"

// Code is the unified 8-bit outcome of one meter operation.
// Transport exceptions, local transaction failures and codec range errors
// share one flat space. Zero means success.
type Code uint8

const (
	Success Code = 0

	// Codes 1-4 are passed through verbatim from the device exception.
	IllegalFunction     Code = 1
	IllegalDataAddress  Code = 2
	IllegalDataValue    Code = 3
	ServerDeviceFailure Code = 4

	// ChannelBusy is reported when the transport refuses to start a request.
	// It deliberately shares its value with IllegalDataValue.
	ChannelBusy Code = 3

	Timeout Code = 5

	Overflow16  Code = 6
	Underflow16 Code = 7
	Overflow32  Code = 8
	Underflow32 Code = 9

	InvalidResolutionIndex Code = 10
)

var descriptions = [...]string{
	Success:                "No error",
	IllegalFunction:        "Illegal Modbus Function",
	IllegalDataAddress:     "Illegal Modbus Data Address",
	IllegalDataValue:       "Illegal Modbus Data Value",
	ServerDeviceFailure:    "Modbus Server Device Failure",
	Timeout:                "Modbus Timeout",
	Overflow16:             "16-bit Overflow",
	Underflow16:            "16-bit Underflow",
	Overflow32:             "32-bit Overflow",
	Underflow32:            "32-bit Underflow",
	InvalidResolutionIndex: "Invalid Resolution Index",
}

// Description returns the human readable meaning of the code.
// Codes outside the table (other device exceptions) report as unknown.
func (c Code) Description() string {
	if int(c) < len(descriptions) {
		return descriptions[c]
	}
	return "Unknown error"
}

func (c Code) String() string {
	return fmt.Sprintf("%d (%s)", uint8(c), c.Description())
}

// Error makes a Code usable as an error value.
func (c Code) Error() string {
	return fmt.Sprintf("octave: error code %d: %s", uint8(c), c.Description())
}

// Err returns nil for Success and the code itself otherwise.
func (c Code) Err() error {
	if c == Success {
		return nil
	}
	return c
}

// Code lets callers recover the numeric code through errors.As.
func (c Code) Code() uint16 { return uint16(c) }

// IsTransport reports whether the code originates from a transaction
// (exception, busy or timeout) rather than a local check.
func (c Code) IsTransport() bool {
	return c >= IllegalFunction && c <= Timeout
}
