// Package endian provides the byte order used by textbuf storage and frames.
//
// Wide text storage keeps each UTF-16 code unit in two bytes, low byte first.
// The same little-endian engine writes the fixed header fields of a snapshot
// frame, so both concerns share one definition here.
//
// # Basic Usage
//
//	engine := endian.GetLittleEndianEngine()
//	frame = engine.AppendUint32(frame, uint32(count))
//
//	endian.PutUnit(storage, i, 0x00e9) // storage[2i] = 0xe9, storage[2i+1] = 0x00
//	c := endian.Unit(storage, i)
//
// # Thread Safety
//
// All functions in this package are safe for concurrent use. The returned
// EndianEngine instances are immutable and stateless.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// PutUnit stores code unit c into slot i of wide storage b.
// b must hold at least 2*(i+1) bytes.
func PutUnit(b []byte, i int, c uint16) {
	binary.LittleEndian.PutUint16(b[i<<1:], c)
}

// Unit reads the code unit in slot i of wide storage b.
func Unit(b []byte, i int) uint16 {
	return binary.LittleEndian.Uint16(b[i<<1:])
}
