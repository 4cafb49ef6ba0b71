package goruuvi

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"unicode"

	"github.com/d21d3q/goruuvi/internal/advert"
	"github.com/d21d3q/goruuvi/internal/protocol"
)

// AnalyzeOptions configures AnalyzeHex.
type AnalyzeOptions struct {
	// Advertisement treats the input as a full raw advertisement rather
	// than bare manufacturer data, scanning its AD structures first.
	Advertisement bool
}

// Result captures the outcome of AnalyzeHex.
type Result struct {
	Format    string
	RawHex    string
	ByteCount int
	Values    SensorValues
}

// String renders a human-readable representation of the result.
func (r Result) String() string {
	summary := map[string]any{
		"format":     r.Format,
		"byte_count": r.ByteCount,
		"raw_hex":    r.RawHex,
		"values":     r.Values,
	}
	if mac := r.Values.MACString(); mac != "" {
		summary["mac"] = mac
	}
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Sprintf("format: %s bytes:%d raw:%s (marshal error: %v)", r.Format, r.ByteCount, r.RawHex, err)
	}
	return string(data)
}

// AnalyzeHex decodes a hex string and returns the decoded values together
// with input diagnostics. Whitespace and the separators '|', '_' and ':'
// in the input are ignored.
func AnalyzeHex(raw string, opts AnalyzeOptions) (Result, error) {
	data, err := decodeHex(raw)
	if err != nil {
		return Result{}, err
	}
	result := Result{
		RawHex:    strings.ToUpper(stripSeparators(raw)),
		ByteCount: len(data),
	}
	payload := data
	if opts.Advertisement {
		if payload, err = advert.ManufacturerData(data); err != nil {
			return result, err
		}
	}
	values, err := Decode(payload)
	if err != nil {
		return result, err
	}
	result.Values = values
	result.Format = formatName(payload[0])
	return result, nil
}

func formatName(tag byte) string {
	switch tag {
	case protocol.FormatURL:
		return "url"
	case protocol.FormatRAWv1:
		return "rawv1"
	case protocol.FormatURLWithID:
		return "url+id"
	case protocol.FormatRAWv2:
		return "rawv2"
	default:
		return fmt.Sprintf("0x%02X", tag)
	}
}

func decodeHex(input string) ([]byte, error) {
	clean := stripSeparators(input)
	if strings.HasPrefix(strings.ToUpper(clean), "0X") {
		clean = clean[2:]
	}
	if len(clean)%2 != 0 {
		return nil, fmt.Errorf("hex input must contain an even number of digits, got %d", len(clean))
	}
	decoded := make([]byte, len(clean)/2)
	if _, err := hex.Decode(decoded, []byte(clean)); err != nil {
		return nil, fmt.Errorf("decode hex: %w", err)
	}
	return decoded, nil
}

func stripSeparators(s string) string {
	builder := strings.Builder{}
	builder.Grow(len(s))
	for _, r := range s {
		if unicode.IsSpace(r) || r == '|' || r == '_' || r == ':' {
			continue
		}
		builder.WriteRune(r)
	}
	return builder.String()
}
