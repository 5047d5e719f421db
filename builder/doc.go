// Package builder implements Builder, a mutable UTF-16 text buffer with a
// compact dual encoding.
//
// # Storage Layout
//
// A Builder keeps its code units in a single byte slice whose meaning depends
// on the current coder:
//
//	Compact: value[i]                 one byte per unit, every unit < 128
//	Wide:    value[2i], value[2i+1]   two bytes per unit, low byte first
//
// A fresh Builder starts in Compact mode. The first time a unit >= 128 must be
// written, the storage is inflated to Wide and stays Wide for the rest of the
// builder's life, even when later units are all ASCII. Reset is the only way
// back to Compact.
//
// Capacity is counted in code units: Cap() == len(storage) >> shift. Growth is
// not amortized; a builder that needs n units allocates exactly n + 16.
//
// # Basic Usage
//
//	b, _ := builder.New()
//	b.AppendString("caf").AppendUnit(0x00e9) // switches to Wide
//	b.AppendNull()                           // "cafénull"
//
//	prefix := b.Substring(0, 3) // Compact text "caf"
//	idx := b.IndexOfString("null")
//
// # Extraction
//
// Substring produces an immutable text.Text. A Wide builder returns a Compact
// result whenever the extracted range happens to be all ASCII. Extracting the
// whole storage span shares the backing array with the result instead of
// copying it; the builder copies its storage before its next write.
//
// # Errors
//
// Index and range violations panic with an error wrapping
// errs.ErrIndexOutOfRange, and impossible capacity requests with
// errs.ErrCapacityOverflow. Nil text arguments are appended as the literal
// "null" rather than rejected.
//
// # Thread Safety
//
// A Builder is NOT safe for concurrent use. Callers that share one must
// provide their own locking.
package builder
