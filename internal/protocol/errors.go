package protocol

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is returned when the manufacturer data slice is empty and
// the format tag cannot be read.
var ErrEmptyInput = errors.New("empty manufacturer data, expected at least one byte")

// UnknownFormatError is returned when the leading byte is not a tag of the
// Ruuvi protocol family.
type UnknownFormatError struct {
	Tag byte
}

func (e UnknownFormatError) Error() string {
	return fmt.Sprintf("unknown data format tag 0x%02X", e.Tag)
}

// UnsupportedFormatError is returned for tags that belong to the protocol
// family but are not implemented by this library.
type UnsupportedFormatError struct {
	Version byte
}

func (e UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported data format version %d", e.Version)
}

// TruncatedError is returned when the slice carries a known format tag but
// fewer bytes than that format requires.
type TruncatedError struct {
	Format   byte
	Required int
	Actual   int
}

func (e TruncatedError) Error() string {
	return fmt.Sprintf("truncated data format %d payload: got %d bytes, need %d",
		e.Format, e.Actual, e.Required)
}
