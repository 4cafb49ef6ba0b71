// Package advert locates the Ruuvi manufacturer-specific payload inside a
// raw BLE advertisement.
//
// An advertisement is a sequence of AD structures, each encoded as a length
// byte followed by a type byte and payload. Manufacturer specific data is
// type 0xFF; its payload begins with a little-endian company identifier.
package advert

import (
	"encoding/binary"
	"errors"
	"fmt"
)

const (
	typeManufacturerData = 0xFF
	// CompanyRuuvi is the Bluetooth SIG company identifier assigned to
	// Ruuvi Innovations Ltd.
	CompanyRuuvi = 0x0499
)

// ErrNoManufacturerData is returned when the advertisement carries no
// manufacturer-specific AD structure.
var ErrNoManufacturerData = errors.New("no manufacturer specific data structure in advertisement")

// UnknownManufacturerError is returned when the manufacturer data belongs
// to another vendor.
type UnknownManufacturerError struct {
	ID uint16
}

func (e UnknownManufacturerError) Error() string {
	return fmt.Sprintf("unknown manufacturer id 0x%04X, only 0x0499 is supported", e.ID)
}

// ManufacturerData walks the AD structures of a raw advertisement and
// returns the payload of the first Ruuvi manufacturer-specific structure,
// format tag first. Structures may appear in any order; non-manufacturer
// structures are skipped. A structure whose declared length runs past the
// end of the advertisement is rejected.
func ManufacturerData(adv []byte) ([]byte, error) {
	var firstID *uint16
	i := 0
	for i < len(adv) {
		length := int(adv[i])
		i++
		if length == 0 {
			continue
		}
		if i+length > len(adv) {
			return nil, fmt.Errorf("advertising structure at offset %d declares %d bytes, %d remain", i-1, length, len(adv)-i)
		}
		adType := adv[i]
		payload := adv[i+1 : i+length]
		i += length
		if adType != typeManufacturerData {
			continue
		}
		if len(payload) < 2 {
			return nil, fmt.Errorf("manufacturer data structure too short for company identifier: %d bytes", len(payload))
		}
		id := binary.LittleEndian.Uint16(payload[:2])
		if id != CompanyRuuvi {
			if firstID == nil {
				firstID = &id
			}
			continue
		}
		return payload[2:], nil
	}
	if firstID != nil {
		return nil, UnknownManufacturerError{ID: *firstID}
	}
	return nil, ErrNoManufacturerData
}
