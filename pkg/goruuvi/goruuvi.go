// Package goruuvi decodes RuuviTag sensor advertisements.
//
// The core entry point is Decode, which takes the manufacturer-specific
// payload of an advertisement (format tag first) and returns a
// SensorValues. DecodeAdvertisement accepts a full raw advertisement and
// locates the Ruuvi payload itself, and ParseGatewayMessage unwraps the
// JSON envelopes relayed by a Ruuvi Gateway over MQTT.
package goruuvi

import (
	"github.com/d21d3q/goruuvi/internal/advert"
	"github.com/d21d3q/goruuvi/internal/gateway"
	"github.com/d21d3q/goruuvi/internal/protocol"
)

// SensorValues is one decoded advertisement; see the field docs for units.
type SensorValues = protocol.SensorValues

// Error kinds returned by Decode.
type (
	UnknownFormatError     = protocol.UnknownFormatError
	UnsupportedFormatError = protocol.UnsupportedFormatError
	TruncatedError         = protocol.TruncatedError
)

// ErrEmptyInput is returned by Decode for a zero-length payload.
var ErrEmptyInput = protocol.ErrEmptyInput

// Advertisement framing errors returned by DecodeAdvertisement.
var ErrNoManufacturerData = advert.ErrNoManufacturerData

// UnknownManufacturerError reports manufacturer data of another vendor.
type UnknownManufacturerError = advert.UnknownManufacturerError

// Gateway envelope types returned by ParseGatewayMessage.
type (
	Envelope = gateway.Envelope
	Reading  = gateway.Reading
)

// Decode parses a manufacturer-specific data payload, format tag included.
func Decode(data []byte) (SensorValues, error) {
	return protocol.Decode(data)
}

// DecodeAdvertisement scans a full raw advertisement for the Ruuvi
// manufacturer-specific structure and decodes its payload.
func DecodeAdvertisement(adv []byte) (SensorValues, error) {
	data, err := advert.ManufacturerData(adv)
	if err != nil {
		return SensorValues{}, err
	}
	return protocol.Decode(data)
}

// ParseGatewayMessage unwraps a Ruuvi Gateway MQTT message payload and
// decodes the advertisement it carries. The returned Reading pairs the
// sensor values with the envelope's passthrough metadata.
func ParseGatewayMessage(payload []byte) (Reading, error) {
	return gateway.ParseMessage(payload)
}
