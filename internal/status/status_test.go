// internal/status/status_test.go
package status

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"
)

func TestCode_Table(t *testing.T) {
	cases := []struct {
		code Code
		want uint8
		desc string
	}{
		{Success, 0, "No error"},
		{IllegalFunction, 1, "Illegal Modbus Function"},
		{IllegalDataAddress, 2, "Illegal Modbus Data Address"},
		{ChannelBusy, 3, "Illegal Modbus Data Value"},
		{ServerDeviceFailure, 4, "Modbus Server Device Failure"},
		{Timeout, 5, "Modbus Timeout"},
		{Overflow16, 6, "16-bit Overflow"},
		{Underflow16, 7, "16-bit Underflow"},
		{Overflow32, 8, "32-bit Overflow"},
		{Underflow32, 9, "32-bit Underflow"},
		{InvalidResolutionIndex, 10, "Invalid Resolution Index"},
		{Code(11), 11, "Unknown error"},
	}
	for _, tc := range cases {
		if uint8(tc.code) != tc.want || tc.code.Description() != tc.desc {
			t.Fatalf("code %d: got=%d %q want=%d %q", tc.want, uint8(tc.code), tc.code.Description(), tc.want, tc.desc)
		}
	}
}

func TestCode_Err(t *testing.T) {
	if Success.Err() != nil {
		t.Fatalf("success must map to nil error")
	}

	err := fmt.Errorf("read: %w", Timeout.Err())
	var c Code
	if !errors.As(err, &c) || c != Timeout {
		t.Fatalf("code not recoverable from %v", err)
	}
	if !Timeout.IsTransport() || Overflow16.IsTransport() || Success.IsTransport() {
		t.Fatalf("IsTransport classification wrong")
	}
}

func TestSnapshot_ObserveAndTick(t *testing.T) {
	var s Snapshot

	if !s.Tick() || s.SecondsInError != 1 {
		t.Fatalf("unknown health should count seconds: %+v", s)
	}

	if !s.Observe(Success) {
		t.Fatalf("first success should change the snapshot")
	}
	if s.Health != HealthOK || s.SecondsInError != 0 {
		t.Fatalf("after success: %+v", s)
	}
	if s.Observe(Success) {
		t.Fatalf("repeated success should not change the snapshot")
	}
	if s.Tick() {
		t.Fatalf("healthy snapshot must not tick")
	}

	if !s.Observe(Timeout) || s.Health != HealthError || s.LastErrorCode != Timeout {
		t.Fatalf("after timeout: %+v", s)
	}
	if s.Observe(Timeout) {
		t.Fatalf("same error should not change the snapshot")
	}
	if !s.Observe(ServerDeviceFailure) {
		t.Fatalf("new error code should change the snapshot")
	}
}

func TestSnapshot_TickSaturates(t *testing.T) {
	s := Snapshot{Health: HealthError, SecondsInError: 65534}
	if !s.Tick() || s.SecondsInError != 65535 {
		t.Fatalf("tick to max: %+v", s)
	}
	if s.Tick() || s.SecondsInError != 65535 {
		t.Fatalf("counter wrapped: %+v", s)
	}
}

func TestEncode(t *testing.T) {
	data, err := Encode(Snapshot{Health: HealthError, LastErrorCode: Timeout, SecondsInError: 12})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("not JSON: %v", err)
	}
	if doc["health"] != "error" || doc["last_error_code"] != float64(5) || doc["last_error"] != "Modbus Timeout" || doc["seconds_in_error"] != float64(12) {
		t.Fatalf("document: %v", doc)
	}
}
