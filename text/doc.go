// Package text defines the read side of textbuf: the Sequence interface every
// UTF-16 source satisfies, and Text, the immutable value produced by
// extracting a range from a builder.
//
// # Storage
//
// A Text holds its code units in one of two encodings, selected by its
// format.Coder:
//
//   - Compact: one byte per unit. Only valid when every unit is < 128.
//   - Wide: two bytes per unit, low byte first.
//
// The coder is part of the value, so comparing or searching two sequences
// always works on code units and never on raw bytes.
//
// # Sharing
//
// A Text is normally an independent copy. The one exception is a whole-span
// extraction from a builder, which aliases the builder's storage; Shared
// reports this case. The builder detaches its storage before the next write,
// so an aliased Text is still immutable from the caller's point of view.
//
// # Thread Safety
//
// Text values are immutable and safe for concurrent reads.
package text
