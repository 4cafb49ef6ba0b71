package protocol

import "fmt"

// SensorValues holds one decoded advertisement. Every field is optional:
// nil means the format does not carry the field, or the wire value was the
// format's "sensor unavailable" sentinel. All data is copied out of the
// input slice, so a SensorValues never aliases caller memory.
type SensorValues struct {
	// Temperature in millidegrees Celsius.
	Temperature *int32 `json:"temperature_mc,omitempty"`
	// Humidity in parts per million relative humidity.
	Humidity *uint32 `json:"humidity_ppm,omitempty"`
	// Pressure in Pascals.
	Pressure *uint32 `json:"pressure_pa,omitempty"`
	// Acceleration per axis in milli-g.
	AccelerationX *int16 `json:"acceleration_x_mg,omitempty"`
	AccelerationY *int16 `json:"acceleration_y_mg,omitempty"`
	AccelerationZ *int16 `json:"acceleration_z_mg,omitempty"`
	// BatteryVoltage in millivolts.
	BatteryVoltage *uint16 `json:"battery_mv,omitempty"`
	// TxPower in dBm.
	TxPower *int8 `json:"tx_power_dbm,omitempty"`
	// MovementCounter wraps at 255.
	MovementCounter *uint8 `json:"movement_counter,omitempty"`
	// SequenceNumber wraps at 65535.
	SequenceNumber *uint16 `json:"sequence_number,omitempty"`
	// MAC is the tag's device address.
	MAC *[6]byte `json:"-"`
}

// MACString returns the device address as AA:BB:CC:DD:EE:FF, or "" when
// the format did not carry one.
func (v SensorValues) MACString() string {
	if v.MAC == nil {
		return ""
	}
	m := *v.MAC
	return fmt.Sprintf("%02X:%02X:%02X:%02X:%02X:%02X", m[0], m[1], m[2], m[3], m[4], m[5])
}

func i32ptr(v int32) *int32   { return &v }
func u32ptr(v uint32) *uint32 { return &v }
func i16ptr(v int16) *int16   { return &v }
func u16ptr(v uint16) *uint16 { return &v }
func i8ptr(v int8) *int8      { return &v }
func u8ptr(v uint8) *uint8    { return &v }
