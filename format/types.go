// Package format defines the small enums shared by the buffer engine and the
// snapshot frame: the storage coder of a text value and the payload
// compression of a snapshot.
package format

import "strings"

type (
	// Coder is the storage encoding of a text buffer. Its numeric value is the
	// left shift that converts a unit count into a byte count.
	Coder uint8
	// CompressionType selects the payload codec of a snapshot frame.
	CompressionType uint8
)

const (
	Compact Coder = 0x0 // Compact stores one byte per code unit, all units < 128.
	Wide    Coder = 0x1 // Wide stores two bytes per code unit, little-endian.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

// Shift returns the unit-to-byte shift of the coder.
func (c Coder) Shift() uint {
	return uint(c)
}

// IsValid reports whether c is one of the defined coders.
func (c Coder) IsValid() bool {
	return c == Compact || c == Wide
}

func (c Coder) String() string {
	switch c {
	case Compact:
		return "Compact"
	case Wide:
		return "Wide"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// ParseCompression maps a configuration name to a CompressionType.
// Names are matched case-insensitively; the empty string means none.
func ParseCompression(name string) (CompressionType, bool) {
	switch strings.ToLower(name) {
	case "", "none":
		return CompressionNone, true
	case "zstd":
		return CompressionZstd, true
	case "s2":
		return CompressionS2, true
	case "lz4":
		return CompressionLZ4, true
	default:
		return 0, false
	}
}
