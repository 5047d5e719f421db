package builder

import (
	"github.com/arloliu/textbuf/endian"
	"github.com/arloliu/textbuf/format"
	"github.com/arloliu/textbuf/text"
)

// CharAt returns the code unit at index.
func (b *Builder) CharAt(index int) uint16 {
	b.checkIndex(index)
	if b.coder == format.Compact {
		return uint16(b.value[index] & 0x7f)
	}

	return endian.Unit(b.value, index)
}

// Substring returns the units in [start, end) as an immutable text.Text.
//
// A Wide builder yields a Compact result when every unit in the range is
// below 128. Extracting the whole storage span (start == 0 and end == Cap())
// aliases the storage; every other range is copied.
func (b *Builder) Substring(start, end int) text.Text {
	b.checkRange(start, end)

	if b.coder == format.Compact {
		if start == 0 && end == b.Cap() {
			return b.alias()
		}

		buf := make([]byte, end-start)
		copy(buf, b.value[start:end])

		return text.MustNew(buf, format.Compact)
	}

	if b.isCompactRange(start, end) {
		buf := make([]byte, end-start)
		for i := start; i < end; i++ {
			buf[i-start] = b.value[i<<1]
		}

		return text.MustNew(buf, format.Compact)
	}

	if start == 0 && end == b.Cap() {
		return b.alias()
	}

	buf := make([]byte, (end-start)<<1)
	copy(buf, b.value[start<<1:end<<1])

	return text.MustNew(buf, format.Wide)
}

// SubstringFrom returns the units from start to the end of the builder.
func (b *Builder) SubstringFrom(start int) text.Text {
	return b.Substring(start, b.count)
}

// SubSequence is Substring returned as a text.Sequence.
func (b *Builder) SubSequence(start, end int) text.Sequence {
	return b.Substring(start, end)
}

// ToText returns the whole content as a text.Text.
func (b *Builder) ToText() text.Text {
	return b.Substring(0, b.count)
}

// Compare compares the builder with other unit by unit. It returns the
// difference of the first mismatching units, or the length difference when
// one is a prefix of the other.
func (b *Builder) Compare(other text.Sequence) int {
	if o, ok := other.(*Builder); ok && o == b {
		return 0
	}

	return text.Compare(b, other)
}

func (b *Builder) isCompactRange(start, end int) bool {
	for i := start; i < end; i++ {
		if !text.IsCompact(endian.Unit(b.value, i)) {
			return false
		}
	}

	return true
}

func (b *Builder) alias() text.Text {
	b.shared = true
	return text.Alias(b.value, b.coder)
}
