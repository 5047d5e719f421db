package snapshot

import (
	"fmt"

	"github.com/arloliu/textbuf/endian"
	"github.com/arloliu/textbuf/errs"
	"github.com/arloliu/textbuf/format"
)

const (
	// Magic identifies a snapshot frame.
	Magic uint16 = 0x5854
	// HeaderSize is the fixed size of the frame header in bytes.
	HeaderSize = 16
)

// Header is the fixed-size frame header.
type Header struct {
	Magic       uint16                 // 2 bytes, offset 0-1
	Coder       format.Coder           // 1 byte, offset 2
	Compression format.CompressionType // 1 byte, offset 3
	UnitCount   uint32                 // 4 bytes, offset 4-7
	Checksum    uint64                 // 8 bytes, offset 8-15
}

// PayloadSize returns the uncompressed payload size in bytes.
func (h *Header) PayloadSize() int {
	return int(h.UnitCount) << h.Coder.Shift()
}

// Parse parses the header from the first HeaderSize bytes of data.
func (h *Header) Parse(data []byte) error {
	if len(data) < HeaderSize {
		return fmt.Errorf("%w: got %d bytes, need %d", errs.ErrInvalidHeaderSize, len(data), HeaderSize)
	}

	engine := endian.GetLittleEndianEngine()

	h.Magic = engine.Uint16(data[0:2])
	h.Coder = format.Coder(data[2])
	h.Compression = format.CompressionType(data[3])
	h.UnitCount = engine.Uint32(data[4:8])
	h.Checksum = engine.Uint64(data[8:16])

	return h.Validate()
}

// Validate checks the magic number and the coder.
// The compression type is checked when the payload codec is resolved.
func (h *Header) Validate() error {
	if h.Magic != Magic {
		return fmt.Errorf("%w: 0x%04x", errs.ErrInvalidMagic, h.Magic)
	}
	if !h.Coder.IsValid() {
		return fmt.Errorf("%w: %d", errs.ErrInvalidCoder, h.Coder)
	}

	return nil
}

// AppendTo appends the serialized header to dst.
func (h *Header) AppendTo(dst []byte) []byte {
	engine := endian.GetLittleEndianEngine()

	dst = engine.AppendUint16(dst, h.Magic)
	dst = append(dst, byte(h.Coder), byte(h.Compression))
	dst = engine.AppendUint32(dst, h.UnitCount)
	dst = engine.AppendUint64(dst, h.Checksum)

	return dst
}

// Bytes serializes the header into a new HeaderSize-byte slice.
func (h *Header) Bytes() []byte {
	return h.AppendTo(make([]byte, 0, HeaderSize))
}
