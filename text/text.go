package text

import (
	"fmt"

	"github.com/arloliu/textbuf/endian"
	"github.com/arloliu/textbuf/errs"
	"github.com/arloliu/textbuf/format"
)

// Text is an immutable run of code units in Compact or Wide storage.
// The zero value is an empty Compact text.
type Text struct {
	value  []byte
	coder  format.Coder
	shared bool
}

var _ Coded = Text{}

// New wraps value as a Text without copying it.
// The caller hands over ownership and must not modify value afterwards.
//
// Returns errs.ErrInvalidCoder for an unknown coder or a Compact value holding
// a byte >= CompactLimit, and errs.ErrInvalidUnitLength when a Wide value has
// an odd byte length.
func New(value []byte, coder format.Coder) (Text, error) {
	if !coder.IsValid() {
		return Text{}, fmt.Errorf("%w: %d", errs.ErrInvalidCoder, coder)
	}
	if coder == format.Compact {
		for i, c := range value {
			if !IsCompact(uint16(c)) {
				return Text{}, fmt.Errorf("%w: compact value has unit 0x%02x at %d", errs.ErrInvalidCoder, c, i)
			}
		}
	}
	if coder == format.Wide && len(value)%2 != 0 {
		return Text{}, fmt.Errorf("%w: %d bytes", errs.ErrInvalidUnitLength, len(value))
	}

	return Text{value: value, coder: coder}, nil
}

// MustNew is like New but panics on error.
func MustNew(value []byte, coder format.Coder) Text {
	t, err := New(value, coder)
	if err != nil {
		panic(err)
	}

	return t
}

// Alias wraps storage that is still owned by a builder. The resulting Text
// reports Shared() == true.
func Alias(value []byte, coder format.Coder) Text {
	t := MustNew(value, coder)
	t.shared = true

	return t
}

// FromUnits builds a Text from code units, choosing Compact storage when
// every unit is below CompactLimit.
func FromUnits(units []uint16) Text {
	compact := true
	for _, c := range units {
		if !IsCompact(c) {
			compact = false
			break
		}
	}

	if compact {
		value := make([]byte, len(units))
		for i, c := range units {
			value[i] = byte(c)
		}

		return Text{value: value, coder: format.Compact}
	}

	value := make([]byte, len(units)<<1)
	for i, c := range units {
		endian.PutUnit(value, i, c)
	}

	return Text{value: value, coder: format.Wide}
}

// FromString builds a Text from a UTF-8 string.
func FromString(s string) Text {
	return FromUnits(EncodeString(s))
}

// Len returns the number of code units.
func (t Text) Len() int {
	return len(t.value) >> t.coder.Shift()
}

// CharAt returns the code unit at index.
func (t Text) CharAt(index int) uint16 {
	if index < 0 || index >= t.Len() {
		panic(fmt.Errorf("%w: index %d, length %d", errs.ErrIndexOutOfRange, index, t.Len()))
	}
	if t.coder == format.Compact {
		return uint16(t.value[index])
	}

	return endian.Unit(t.value, index)
}

// Coder returns the storage coder.
func (t Text) Coder() format.Coder {
	return t.coder
}

// Bytes returns the raw storage. The slice must not be modified.
func (t Text) Bytes() []byte {
	return t.value
}

// Shared reports whether the storage is aliased with the builder it was
// extracted from.
func (t Text) Shared() bool {
	return t.shared
}

// Units returns a copy of the code units.
func (t Text) Units() []uint16 {
	return UnitsOf(t)
}

// String returns the UTF-8 form of the text.
func (t Text) String() string {
	return Decode(t.value, t.coder)
}

// Equal reports whether t and other hold the same code units.
func (t Text) Equal(other Sequence) bool {
	return Equal(t, other)
}
