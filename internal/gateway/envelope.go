// Package gateway consumes Ruuvi Gateway relay messages: JSON envelopes
// carrying a hex-encoded raw advertisement plus reception metadata.
package gateway

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/d21d3q/goruuvi/internal/advert"
	"github.com/d21d3q/goruuvi/internal/protocol"
)

// Envelope is the gateway MQTT message payload. Metadata fields are passed
// through uninterpreted; only Data is decoded. The gateway emits cnt and
// the timestamps as JSON strings.
type Envelope struct {
	GatewayMAC       string `json:"gw_mac"`
	RSSI             int    `json:"rssi"`
	Counter          string `json:"cnt,omitempty"`
	Timestamp        string `json:"ts,omitempty"`
	GatewayTimestamp string `json:"gwts,omitempty"`
	Data             string `json:"data"`
	Coordinates      string `json:"coords,omitempty"`
}

// Reading pairs decoded sensor values with the envelope metadata they
// arrived with.
type Reading struct {
	Values protocol.SensorValues
	// Envelope holds the untouched relay metadata.
	Envelope Envelope
}

// ParseMessage unwraps one gateway message: JSON envelope, hex-encoded
// advertisement, manufacturer data lookup, then the core decoder. Framing
// failures and decode failures are both surfaced with %w so callers can
// reach the underlying protocol error kinds through errors.As.
func ParseMessage(payload []byte) (Reading, error) {
	var env Envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return Reading{}, fmt.Errorf("parse gateway envelope: %w", err)
	}
	return Unwrap(env)
}

// Unwrap decodes the advertisement carried by an already parsed envelope.
func Unwrap(env Envelope) (Reading, error) {
	raw, err := hex.DecodeString(env.Data)
	if err != nil {
		return Reading{}, fmt.Errorf("decode advertisement hex: %w", err)
	}
	data, err := advert.ManufacturerData(raw)
	if err != nil {
		return Reading{}, fmt.Errorf("advertisement from gateway %q: %w", env.GatewayMAC, err)
	}
	values, err := protocol.Decode(data)
	if err != nil {
		return Reading{}, fmt.Errorf("decode manufacturer data: %w", err)
	}
	return Reading{Values: values, Envelope: env}, nil
}
