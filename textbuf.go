// Package textbuf provides a growable UTF-16 text buffer that stores pure
// ASCII content at one byte per code unit and switches to two bytes per unit
// the first time a wider unit arrives.
//
// # Core Features
//
//   - Compact (1 byte/unit) and Wide (2 bytes/unit, little-endian) storage
//   - Appending of units, strings, other buffers, booleans and numbers
//   - Substring extraction that re-detects Compact content
//   - Copy-on-write sharing of whole-buffer extractions
//   - Forward and backward substring search
//   - Snapshot frames with xxHash64 checksums and optional compression
//
// # Basic Usage
//
//	b := textbuf.NewBuilder()
//	b.AppendString("total: ").AppendInt(42).AppendUnit('€')
//	fmt.Println(b.String(), b.Coder()) // total: 42€ Wide
//
//	sub := b.Substring(0, 5) // Compact again: "total"
//
// Persisting a text value:
//
//	frame, _ := textbuf.EncodeSnapshot(b.ToText())
//	t, _ := textbuf.DecodeSnapshot(frame)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the builder and
// snapshot packages. For fine-grained control, use those packages directly.
//
// # Thread Safety
//
// A Builder is not safe for concurrent use. Text values are immutable and may
// be shared between goroutines.
package textbuf

import (
	"github.com/arloliu/textbuf/builder"
	"github.com/arloliu/textbuf/format"
	"github.com/arloliu/textbuf/snapshot"
	"github.com/arloliu/textbuf/text"
)

var defaultSnapshotOptions = []snapshot.Option{
	snapshot.WithCompression(format.CompressionZstd),
}

// NewBuilder creates an empty builder with the default capacity of 16 units.
func NewBuilder() *builder.Builder {
	b, _ := builder.New()
	return b
}

// NewBuilderSize creates an empty builder with room for capacity units.
//
// Returns errs.ErrInvalidCapacity when capacity is negative.
func NewBuilderSize(capacity int) (*builder.Builder, error) {
	return builder.New(builder.WithCapacity(capacity))
}

// NewBuilderWithOptions creates an empty builder configured by opts.
func NewBuilderWithOptions(opts ...builder.Option) (*builder.Builder, error) {
	return builder.New(opts...)
}

// BuilderFromString creates a builder holding s, with 16 units of spare room.
func BuilderFromString(s string) *builder.Builder {
	b, _ := builder.FromString(s)
	return b
}

// BuilderFromSequence creates a builder holding a copy of seq. A nil seq
// yields "null".
func BuilderFromSequence(seq text.Sequence) *builder.Builder {
	b, _ := builder.FromSequence(seq)
	return b
}

// EncodeSnapshot frames t with zstd compression.
func EncodeSnapshot(t text.Text) ([]byte, error) {
	enc, err := snapshot.NewEncoder(defaultSnapshotOptions...)
	if err != nil {
		return nil, err
	}

	return enc.Encode(t)
}

// DecodeSnapshot parses a frame produced by EncodeSnapshot or a
// snapshot.Encoder.
func DecodeSnapshot(data []byte) (text.Text, error) {
	return snapshot.Decode(data)
}
