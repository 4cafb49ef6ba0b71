package protocol

import (
	"encoding/binary"
	"math"
)

// Data format 5 (RAWv2) layout, tag byte included:
//
//	0     tag 0x05
//	1-2   temperature, signed, 0.005 degC steps
//	3-4   humidity, 0.0025 % steps
//	5-6   pressure, Pa above 50000
//	7-12  acceleration x/y/z, signed milli-g
//	13-14 power info: 11-bit battery offset above 1600 mV, 5-bit tx power
//	15    movement counter
//	16-17 measurement sequence number
//	18-23 MAC address
//
// Each field has its own "sensor unavailable" sentinel; one invalid field
// never affects its siblings.
const v5Length = 24

const (
	v5BatterySentinel = 2047
	v5TxPowerSentinel = 31
)

func decodeV5(data []byte) (SensorValues, error) {
	if len(data) < v5Length {
		return SensorValues{}, TruncatedError{Format: FormatRAWv2, Required: v5Length, Actual: len(data)}
	}
	var values SensorValues

	if raw := int16(binary.BigEndian.Uint16(data[1:3])); raw != math.MinInt16 {
		values.Temperature = i32ptr(int32(raw) * 5)
	}
	if raw := binary.BigEndian.Uint16(data[3:5]); raw != 0xFFFF {
		values.Humidity = u32ptr(uint32(raw) * 25)
	}
	if raw := binary.BigEndian.Uint16(data[5:7]); raw != 0xFFFF {
		values.Pressure = u32ptr(uint32(raw) + 50000)
	}
	values.AccelerationX = accelerationV5(data[7:9])
	values.AccelerationY = accelerationV5(data[9:11])
	values.AccelerationZ = accelerationV5(data[11:13])

	power := binary.BigEndian.Uint16(data[13:15])
	if raw := power >> 5; raw != v5BatterySentinel {
		values.BatteryVoltage = u16ptr(1600 + raw)
	}
	if raw := int8(power & 0x1F); raw != v5TxPowerSentinel {
		values.TxPower = i8ptr(raw*2 - 40)
	}

	values.MovementCounter = u8ptr(data[15])
	values.SequenceNumber = u16ptr(binary.BigEndian.Uint16(data[16:18]))

	var mac [6]byte
	copy(mac[:], data[18:24])
	if mac != [6]byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF} {
		values.MAC = &mac
	}
	return values, nil
}

func accelerationV5(b []byte) *int16 {
	raw := int16(binary.BigEndian.Uint16(b))
	if raw == math.MinInt16 {
		return nil
	}
	return &raw
}
