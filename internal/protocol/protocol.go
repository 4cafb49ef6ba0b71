// Package protocol decodes RuuviTag manufacturer-specific data payloads.
//
// The input to Decode is the manufacturer data with the company identifier
// already stripped: the first byte is the data format tag, the rest is the
// format's packed field layout. All multi-byte fields are big-endian.
package protocol

// Data format tags of the Ruuvi protocol family.
const (
	FormatURL       = 0x02 // Eddystone URL, humidity/temperature/pressure
	FormatRAWv1     = 0x03
	FormatURLWithID = 0x04 // format 2 layout plus a trailing id byte
	FormatRAWv2     = 0x05
)

// Tags that are part of the protocol family but not decoded here. 0x08 is
// the encrypted environmental format, the rest are extended/long-range
// variants.
func futureFormat(tag byte) bool {
	switch tag {
	case 0x08, 0xC5, 0xE0, 0xE1, 0xF0:
		return true
	}
	return false
}

// Decode dispatches on the format tag and decodes the payload. It inspects
// only the first byte before committing to a format's length requirement,
// and either returns a fully populated SensorValues or an error; there is
// no partial result.
func Decode(data []byte) (SensorValues, error) {
	if len(data) == 0 {
		return SensorValues{}, ErrEmptyInput
	}
	switch tag := data[0]; tag {
	case FormatRAWv1:
		return decodeV3(data)
	case FormatURL, FormatURLWithID:
		return decodeV2V4(data)
	case FormatRAWv2:
		return decodeV5(data)
	default:
		if futureFormat(tag) {
			return SensorValues{}, UnsupportedFormatError{Version: tag}
		}
		return SensorValues{}, UnknownFormatError{Tag: tag}
	}
}
