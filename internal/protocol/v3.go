package protocol

import "encoding/binary"

// Data format 3 (RAWv1) layout, tag byte included:
//
//	0     tag 0x03
//	1     humidity, 0.5 % steps
//	2-3   temperature, sign bit + whole degrees, hundredths
//	4-5   pressure, Pa above 50000
//	6-11  acceleration x/y/z, signed milli-g
//	12-13 battery, mV
const v3Length = 14

func decodeV3(data []byte) (SensorValues, error) {
	if len(data) < v3Length {
		return SensorValues{}, TruncatedError{Format: FormatRAWv1, Required: v3Length, Actual: len(data)}
	}
	values := decodeV2V4Fields(data)
	values.AccelerationX = i16ptr(int16(binary.BigEndian.Uint16(data[6:8])))
	values.AccelerationY = i16ptr(int16(binary.BigEndian.Uint16(data[8:10])))
	values.AccelerationZ = i16ptr(int16(binary.BigEndian.Uint16(data[10:12])))
	values.BatteryVoltage = u16ptr(binary.BigEndian.Uint16(data[12:14]))
	return values, nil
}

// temperatureV3 converts the legacy sign-and-magnitude encoding: bit 15 is
// the sign, bits 8-14 whole degrees, the low byte hundredths. The sign
// applies to the combined magnitude.
func temperatureV3(raw uint16) int32 {
	sign := int32(raw>>15)*-2 + 1
	whole := int32((raw >> 8) & 0x7F)
	frac := int32(raw & 0xFF)
	return sign * (whole*1000 + frac*10)
}
