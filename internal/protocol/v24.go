package protocol

import "encoding/binary"

// Data formats 2 and 4 share the format 3 offsets for humidity,
// temperature and pressure and carry nothing else. Format 4 appends one
// random id byte, which is not interpreted.
const (
	v2Length = 6
	v4Length = 7
)

func decodeV2V4(data []byte) (SensorValues, error) {
	required := v2Length
	if data[0] == FormatURLWithID {
		required = v4Length
	}
	if len(data) < required {
		return SensorValues{}, TruncatedError{Format: data[0], Required: required, Actual: len(data)}
	}
	return decodeV2V4Fields(data), nil
}

// decodeV2V4Fields extracts the humidity/temperature/pressure triple common
// to formats 2, 3 and 4. None of the three fields has a sentinel.
func decodeV2V4Fields(data []byte) SensorValues {
	return SensorValues{
		Humidity:    u32ptr(uint32(data[1]) * 5000),
		Temperature: i32ptr(temperatureV3(binary.BigEndian.Uint16(data[2:4]))),
		Pressure:    u32ptr(uint32(binary.BigEndian.Uint16(data[4:6])) + 50000),
	}
}
