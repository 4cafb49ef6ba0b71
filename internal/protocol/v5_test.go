package protocol

import (
	"errors"
	"testing"
)

// Test vectors from the published dataformat_05 specification, with the
// format tag prepended.
var (
	v5Valid = []byte{
		0x05, 0x12, 0xFC, 0x53, 0x94, 0xC3, 0x7C, 0x00, 0x04, 0xFF, 0xFC, 0x04,
		0x0C, 0xAC, 0x36, 0x42, 0x00, 0xCD, 0xCB, 0xB8, 0x33, 0x4C, 0x88, 0x4F,
	}
	v5Max = []byte{
		0x05, 0x7F, 0xFF, 0xFF, 0xFE, 0xFF, 0xFE, 0x7F, 0xFF, 0x7F, 0xFF, 0x7F,
		0xFF, 0xFF, 0xDE, 0xFE, 0xFF, 0xFE, 0xCB, 0xB8, 0x33, 0x4C, 0x88, 0x4F,
	}
	v5Min = []byte{
		0x05, 0x80, 0x01, 0x00, 0x00, 0x00, 0x00, 0x80, 0x01, 0x80, 0x01, 0x80,
		0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0xCB, 0xB8, 0x33, 0x4C, 0x88, 0x4F,
	}
	v5Invalid = []byte{
		0x05, 0x80, 0x00, 0xFF, 0xFF, 0xFF, 0xFF, 0x80, 0x00, 0x80, 0x00, 0x80,
		0x00, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
	}
)

func TestDecodeV5(t *testing.T) {
	values, err := Decode(v5Valid)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	wantValue(t, "temperature", values.Temperature, int32(24300))
	wantValue(t, "humidity", values.Humidity, uint32(534900))
	wantValue(t, "pressure", values.Pressure, uint32(100044))
	wantValue(t, "acceleration x", values.AccelerationX, int16(4))
	wantValue(t, "acceleration y", values.AccelerationY, int16(-4))
	wantValue(t, "acceleration z", values.AccelerationZ, int16(1036))
	wantValue(t, "battery", values.BatteryVoltage, uint16(2977))
	wantValue(t, "tx power", values.TxPower, int8(4))
	wantValue(t, "movement counter", values.MovementCounter, uint8(66))
	wantValue(t, "sequence number", values.SequenceNumber, uint16(205))
	if got := values.MACString(); got != "CB:B8:33:4C:88:4F" {
		t.Errorf("mac mismatch: %s", got)
	}
}

func TestDecodeV5MaxValues(t *testing.T) {
	values, err := Decode(v5Max)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	wantValue(t, "temperature", values.Temperature, int32(163835))
	wantValue(t, "humidity", values.Humidity, uint32(1638350))
	wantValue(t, "pressure", values.Pressure, uint32(115534))
	wantValue(t, "acceleration x", values.AccelerationX, int16(32767))
	wantValue(t, "acceleration y", values.AccelerationY, int16(32767))
	wantValue(t, "acceleration z", values.AccelerationZ, int16(32767))
	wantValue(t, "battery", values.BatteryVoltage, uint16(3646))
	wantValue(t, "tx power", values.TxPower, int8(20))
	wantValue(t, "movement counter", values.MovementCounter, uint8(254))
	wantValue(t, "sequence number", values.SequenceNumber, uint16(65534))
}

func TestDecodeV5MinValues(t *testing.T) {
	values, err := Decode(v5Min)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	wantValue(t, "temperature", values.Temperature, int32(-163835))
	wantValue(t, "humidity", values.Humidity, uint32(0))
	wantValue(t, "pressure", values.Pressure, uint32(50000))
	wantValue(t, "acceleration x", values.AccelerationX, int16(-32767))
	wantValue(t, "acceleration y", values.AccelerationY, int16(-32767))
	wantValue(t, "acceleration z", values.AccelerationZ, int16(-32767))
	wantValue(t, "battery", values.BatteryVoltage, uint16(1600))
	wantValue(t, "tx power", values.TxPower, int8(-40))
	wantValue(t, "movement counter", values.MovementCounter, uint8(0))
	wantValue(t, "sequence number", values.SequenceNumber, uint16(0))
}

func TestDecodeV5Sentinels(t *testing.T) {
	values, err := Decode(v5Invalid)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	for name, present := range map[string]bool{
		"temperature":    values.Temperature != nil,
		"humidity":       values.Humidity != nil,
		"pressure":       values.Pressure != nil,
		"acceleration x": values.AccelerationX != nil,
		"acceleration y": values.AccelerationY != nil,
		"acceleration z": values.AccelerationZ != nil,
		"battery":        values.BatteryVoltage != nil,
		"tx power":       values.TxPower != nil,
		"mac":            values.MAC != nil,
	} {
		if present {
			t.Errorf("%s at its sentinel should decode as absent", name)
		}
	}
	// The counters have no sentinel and stay present even at all-ones.
	wantValue(t, "movement counter", values.MovementCounter, uint8(255))
	wantValue(t, "sequence number", values.SequenceNumber, uint16(65535))
}

// One field at its sentinel must leave every sibling populated.
func TestDecodeV5SentinelIndependence(t *testing.T) {
	cases := []struct {
		name     string
		offset   int
		sentinel []byte
		absent   func(SensorValues) bool
	}{
		{"temperature", 1, []byte{0x80, 0x00}, func(v SensorValues) bool { return v.Temperature == nil }},
		{"humidity", 3, []byte{0xFF, 0xFF}, func(v SensorValues) bool { return v.Humidity == nil }},
		{"pressure", 5, []byte{0xFF, 0xFF}, func(v SensorValues) bool { return v.Pressure == nil }},
		{"acceleration x", 7, []byte{0x80, 0x00}, func(v SensorValues) bool { return v.AccelerationX == nil }},
		{"acceleration y", 9, []byte{0x80, 0x00}, func(v SensorValues) bool { return v.AccelerationY == nil }},
		{"acceleration z", 11, []byte{0x80, 0x00}, func(v SensorValues) bool { return v.AccelerationZ == nil }},
		{"mac", 18, []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}, func(v SensorValues) bool { return v.MAC == nil }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			data := append([]byte(nil), v5Valid...)
			copy(data[tc.offset:], tc.sentinel)
			values, err := Decode(data)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if !tc.absent(values) {
				t.Fatalf("%s at its sentinel should be absent", tc.name)
			}
			populated := 0
			for _, p := range []bool{
				values.Temperature != nil, values.Humidity != nil, values.Pressure != nil,
				values.AccelerationX != nil, values.AccelerationY != nil, values.AccelerationZ != nil,
				values.BatteryVoltage != nil, values.TxPower != nil, values.MAC != nil,
			} {
				if p {
					populated++
				}
			}
			if populated != 8 {
				t.Errorf("expected every sibling populated, got %d of 8", populated)
			}
		})
	}
}

func TestDecodeV5PowerInfoSentinels(t *testing.T) {
	data := append([]byte(nil), v5Valid...)
	// battery 2047 (invalid), tx power 2 -> 0xFFE2
	data[13], data[14] = 0xFF, 0xE2
	values, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if values.BatteryVoltage != nil {
		t.Errorf("battery at sentinel should be absent, got %d", *values.BatteryVoltage)
	}
	wantValue(t, "tx power", values.TxPower, int8(-36))

	// battery 1000, tx power 31 (invalid) -> raw 1000<<5 | 31 = 0x7D1F
	data[13], data[14] = 0x7D, 0x1F
	values, err = Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	wantValue(t, "battery", values.BatteryVoltage, uint16(2600))
	if values.TxPower != nil {
		t.Errorf("tx power at sentinel should be absent, got %d", *values.TxPower)
	}
}

func TestDecodeV5ScaleFactors(t *testing.T) {
	data := append([]byte(nil), v5Valid...)
	// temperature raw 0, humidity raw 10000, pressure raw 10000
	data[1], data[2] = 0x00, 0x00
	data[3], data[4] = 0x27, 0x10
	data[5], data[6] = 0x27, 0x10
	values, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	wantValue(t, "temperature", values.Temperature, int32(0))
	wantValue(t, "humidity", values.Humidity, uint32(250000))
	wantValue(t, "pressure", values.Pressure, uint32(60000))
}

func TestDecodeV5Truncated(t *testing.T) {
	_, err := Decode(v5Valid[:6])
	var truncated TruncatedError
	if !errors.As(err, &truncated) {
		t.Fatalf("expected TruncatedError, got %v", err)
	}
	want := TruncatedError{Format: 5, Required: 24, Actual: 6}
	if truncated != want {
		t.Fatalf("unexpected error detail: %+v", truncated)
	}
}
