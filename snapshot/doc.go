// Package snapshot persists text values in a small self-checking binary frame.
//
// A frame is a fixed 16-byte header followed by the raw storage bytes of the
// text, optionally compressed:
//
//	offset size field
//	0      2    magic 0x5854 ("TX"), little-endian
//	2      1    coder (0 Compact, 1 Wide)
//	3      1    compression type
//	4      4    unit count
//	8      8    xxHash64 of the uncompressed payload
//	16     n    payload
//
// The storage coder travels with the frame, so a Compact text round-trips at
// one byte per unit and a Wide text keeps its exact UTF-16 code units,
// including unpaired surrogates.
//
// # Basic Usage
//
//	enc, _ := snapshot.NewEncoder(snapshot.WithCompression(format.CompressionZstd))
//	frame, _ := enc.EncodeBuilder(b)
//
//	t, err := snapshot.Decode(frame)
//
// # Thread Safety
//
// An Encoder is immutable after construction and safe for concurrent use.
// Decode is safe for concurrent use.
package snapshot
