package builder

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/arloliu/textbuf/endian"
	"github.com/arloliu/textbuf/errs"
	"github.com/arloliu/textbuf/format"
	"github.com/arloliu/textbuf/internal/pool"
	"github.com/arloliu/textbuf/text"
)

const nullLiteral = "null"

var nullText = text.MustNew([]byte(nullLiteral), format.Compact)

// AppendUnit appends a single code unit.
func (b *Builder) AppendUnit(c uint16) *Builder {
	b.EnsureCapacity(b.count + 1)

	if b.coder == format.Compact && text.IsCompact(c) {
		b.value[b.count] = byte(c)
		b.count++

		return b
	}

	// Compact storage with an ASCII unit takes the branch above, so an ASCII
	// unit here is always written into storage that was already Wide.
	b.inflate()
	endian.PutUnit(b.value, b.count, c)
	b.count++
	if text.IsCompact(c) {
		b.maybeCompactable = true
	}

	return b
}

// AppendUnits appends all of units.
func (b *Builder) AppendUnits(units []uint16) *Builder {
	return b.AppendUnitRange(units, 0, len(units))
}

// AppendUnitRange appends units[offset : offset+length].
//
// Compact storage is filled one byte per unit until the first unit >= 128;
// the storage is then inflated and the remaining units continue at the same
// index in two-byte slots.
func (b *Builder) AppendUnitRange(units []uint16, offset, length int) *Builder {
	if offset < 0 || length < 0 || offset > len(units)-length {
		panic(fmt.Errorf("%w: offset %d, length %d, source length %d",
			errs.ErrIndexOutOfRange, offset, length, len(units)))
	}

	b.EnsureCapacity(b.count + length)

	i, count := 0, b.count
	if b.coder == format.Compact {
		val := b.value
		for ; i < length; i++ {
			c := units[offset+i]
			if !text.IsCompact(c) {
				b.inflate()
				break
			}
			val[count] = byte(c)
			count++
		}
	}

	val := b.value
	for ; i < length; i++ {
		endian.PutUnit(val, count, units[offset+i])
		count++
	}
	b.count = count

	return b
}

// AppendSequence appends every unit of seq. A nil seq, including a typed nil
// *Builder or *text.Text, appends "null".
func (b *Builder) AppendSequence(seq text.Sequence) *Builder {
	if isNilSequence(seq) {
		return b.AppendNull()
	}

	return b.AppendSequenceRange(seq, 0, seq.Len())
}

// AppendSequenceRange appends seq[start:end]. A nil seq is replaced by the
// text "null" before the range is applied.
//
// When seq reports Wide storage the builder inflates before copying, whatever
// the actual units are, so the copy is done in one pass.
func (b *Builder) AppendSequenceRange(seq text.Sequence, start, end int) *Builder {
	if isNilSequence(seq) {
		seq = nullText
	}
	if start < 0 || start > end || end > seq.Len() {
		panic(fmt.Errorf("%w: range [%d, %d), source length %d",
			errs.ErrIndexOutOfRange, start, end, seq.Len()))
	}

	length := end - start
	b.EnsureCapacity(b.count + length)

	if coded, ok := seq.(text.Coded); ok && coded.Coder() == format.Wide {
		b.inflate()
	}

	// Storage may have been replaced above, so the source bytes are read only
	// now. This keeps b.AppendBuilder(b) correct.
	if raw, coder, ok := rawStorage(seq); ok && coder == b.coder {
		shift := coder.Shift()
		copy(b.value[b.count<<shift:], raw[start<<shift:end<<shift])
		b.count += length

		return b
	}

	i, count := 0, b.count
	if b.coder == format.Compact {
		val := b.value
		for ; i < length; i++ {
			c := seq.CharAt(start + i)
			if !text.IsCompact(c) {
				b.inflate()
				break
			}
			val[count] = byte(c)
			count++
		}
	}

	val := b.value
	for ; i < length; i++ {
		endian.PutUnit(val, count, seq.CharAt(start+i))
		count++
	}
	b.count = count

	return b
}

// AppendBuilder appends the content of other. A nil other appends "null".
func (b *Builder) AppendBuilder(other *Builder) *Builder {
	if other == nil {
		return b.AppendNull()
	}

	return b.AppendSequenceRange(other, 0, other.count)
}

// AppendText appends t. A nil t appends "null".
func (b *Builder) AppendText(t *text.Text) *Builder {
	if t == nil {
		return b.AppendNull()
	}

	return b.AppendSequenceRange(*t, 0, t.Len())
}

// AppendString appends the UTF-16 form of the UTF-8 string s.
func (b *Builder) AppendString(s string) *Builder {
	ascii := true
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			ascii = false
			break
		}
	}
	if ascii {
		return appendASCII(b, s)
	}

	units, release := pool.GetUnitSlice(len(s))
	units = text.AppendString(units, s)
	b.AppendUnits(units)
	release(units)

	return b
}

// AppendNull appends the four units "null".
func (b *Builder) AppendNull() *Builder {
	b.EnsureCapacity(b.count + len(nullLiteral))

	count := b.count
	if b.coder == format.Compact {
		count += copy(b.value[count:], nullLiteral)
	} else {
		for i := 0; i < len(nullLiteral); i++ {
			endian.PutUnit(b.value, count, uint16(nullLiteral[i]))
			count++
		}
	}
	b.count = count

	return b
}

// AppendBool appends "true" or "false".
func (b *Builder) AppendBool(v bool) *Builder {
	return appendASCII(b, strconv.FormatBool(v))
}

// AppendInt appends the base-10 form of v.
func (b *Builder) AppendInt(v int64) *Builder {
	scratch := pool.GetScratchBuffer()
	defer pool.PutScratchBuffer(scratch)

	scratch.B = strconv.AppendInt(scratch.B, v, 10)

	return appendASCII(b, scratch.B)
}

// AppendUint appends the base-10 form of v.
func (b *Builder) AppendUint(v uint64) *Builder {
	scratch := pool.GetScratchBuffer()
	defer pool.PutScratchBuffer(scratch)

	scratch.B = strconv.AppendUint(scratch.B, v, 10)

	return appendASCII(b, scratch.B)
}

// AppendFloat32 appends the decimal form of v produced by the builder's
// DecimalRenderer.
func (b *Builder) AppendFloat32(v float32) *Builder {
	return b.appendDecimal(float64(v), 32)
}

// AppendFloat64 appends the decimal form of v produced by the builder's
// DecimalRenderer.
func (b *Builder) AppendFloat64(v float64) *Builder {
	return b.appendDecimal(v, 64)
}

func (b *Builder) appendDecimal(v float64, bitSize int) *Builder {
	units, release := pool.GetUnitSlice(32)
	units = b.renderDecimal(units, v, bitSize)
	b.AppendUnits(units)
	release(units)

	return b
}

// AppendValue appends the text form of v produced by the builder's
// TextFormer.
func (b *Builder) AppendValue(v any) *Builder {
	return b.AppendSequence(b.formText(v))
}

// SetUnitAt replaces the code unit at index.
//
// Writing a unit >= 128 into Compact storage inflates it first. Writing an
// ASCII unit into Wide storage sets the maybe-compactable hint.
func (b *Builder) SetUnitAt(index int, c uint16) {
	b.checkIndex(index)
	if b.shared {
		b.detach()
	}

	if b.coder == format.Compact && text.IsCompact(c) {
		b.value[index] = byte(c)
		return
	}

	b.inflate()
	endian.PutUnit(b.value, index, c)
	if text.IsCompact(c) {
		b.maybeCompactable = true
	}
}

// Write appends p interpreted as UTF-8. It always returns len(p), nil.
func (b *Builder) Write(p []byte) (int, error) {
	b.AppendString(string(p))
	return len(p), nil
}

// WriteString appends s. It always returns len(s), nil.
func (b *Builder) WriteString(s string) (int, error) {
	b.AppendString(s)
	return len(s), nil
}

// WriteRune appends the UTF-16 encoding of r and returns the UTF-8 length
// of r. Invalid runes are written as U+FFFD.
func (b *Builder) WriteRune(r rune) (int, error) {
	n := utf8.RuneLen(r)
	if n < 0 {
		r, n = utf8.RuneError, utf8.RuneLen(utf8.RuneError)
	}

	if r < utf8.RuneSelf {
		b.AppendUnit(uint16(r))
		return n, nil
	}

	var buf [2]uint16
	units := text.AppendString(buf[:0], string(r))
	b.AppendUnits(units)

	return n, nil
}

// appendASCII appends bytes that are all < 128.
func appendASCII[S ~string | ~[]byte](b *Builder, s S) *Builder {
	n := len(s)
	b.EnsureCapacity(b.count + n)

	count := b.count
	if b.coder == format.Compact {
		for i := 0; i < n; i++ {
			b.value[count] = s[i]
			count++
		}
	} else {
		for i := 0; i < n; i++ {
			endian.PutUnit(b.value, count, uint16(s[i]))
			count++
		}
	}
	b.count = count

	return b
}

// rawStorage exposes the backing bytes of sources whose layout matches
// Builder storage.
func rawStorage(seq text.Sequence) ([]byte, format.Coder, bool) {
	switch s := seq.(type) {
	case *Builder:
		return s.value, s.coder, true
	case text.Text:
		return s.Bytes(), s.Coder(), true
	case *text.Text:
		return s.Bytes(), s.Coder(), true
	default:
		return nil, 0, false
	}
}

func isNilSequence(seq text.Sequence) bool {
	switch s := seq.(type) {
	case nil:
		return true
	case *Builder:
		return s == nil
	case *text.Text:
		return s == nil
	default:
		return false
	}
}
