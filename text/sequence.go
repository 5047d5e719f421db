package text

import "github.com/arloliu/textbuf/format"

// Sequence is a read-only, indexable run of UTF-16 code units.
type Sequence interface {
	// Len returns the number of code units.
	Len() int
	// CharAt returns the code unit at index. Implementations panic with an
	// error wrapping errs.ErrIndexOutOfRange when index is outside [0, Len()).
	CharAt(index int) uint16
}

// Coded is a Sequence that also reports its storage coder. Appending a Wide
// Coded source lets the destination switch to Wide once, up front.
type Coded interface {
	Sequence
	Coder() format.Coder
}

// Compare compares a and b code unit by code unit.
//
// The result is the difference of the first mismatching units, or the
// difference of the lengths when one is a prefix of the other.
func Compare(a, b Sequence) int {
	n1, n2 := a.Len(), b.Len()
	lim := min(n1, n2)
	for i := range lim {
		c1, c2 := a.CharAt(i), b.CharAt(i)
		if c1 != c2 {
			return int(c1) - int(c2)
		}
	}

	return n1 - n2
}

// Equal reports whether a and b hold the same code units.
func Equal(a, b Sequence) bool {
	return a.Len() == b.Len() && Compare(a, b) == 0
}

// UnitsOf copies the code units of seq into a new slice.
func UnitsOf(seq Sequence) []uint16 {
	units := make([]uint16, seq.Len())
	for i := range units {
		units[i] = seq.CharAt(i)
	}

	return units
}
