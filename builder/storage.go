package builder

import (
	"fmt"
	"math"

	"github.com/arloliu/textbuf/errs"
	"github.com/arloliu/textbuf/format"
)

// growthSlack is the number of spare units added on every reallocation.
const growthSlack = 16

// Cap returns the capacity in code units under the current coder.
func (b *Builder) Cap() int {
	return len(b.value) >> b.coder.Shift()
}

// EnsureCapacity guarantees room for at least minUnits code units.
//
// When the current capacity is too small the storage is replaced by one of
// exactly (minUnits + 16) units and the old bytes are copied verbatim, so the
// coder never changes here. Storage aliased by a whole-span Text is copied
// even when it is large enough.
func (b *Builder) EnsureCapacity(minUnits int) {
	if minUnits < 0 {
		panic(fmt.Errorf("%w: requested %d units", errs.ErrCapacityOverflow, minUnits))
	}

	oldCap := b.Cap()
	if minUnits <= oldCap {
		if b.shared {
			b.detach()
		}

		return
	}

	shift := b.coder.Shift()
	if minUnits > (math.MaxInt>>shift)-growthSlack {
		panic(fmt.Errorf("%w: requested %d units", errs.ErrCapacityOverflow, minUnits))
	}

	buf := make([]byte, (minUnits+growthSlack)<<shift)
	copy(buf, b.value)
	b.value = buf
	b.shared = false

	if b.logger != nil {
		b.logger.Debug("storage grown",
			"old_capacity", oldCap,
			"new_capacity", b.Cap(),
			"coder", b.coder)
	}
}

// TrimToSize shrinks storage to exactly Len() units. It never grows.
func (b *Builder) TrimToSize() {
	n := b.count << b.coder.Shift()
	if n < len(b.value) {
		buf := make([]byte, n)
		copy(buf, b.value)
		b.value = buf
		b.shared = false
	}
}

// Reset empties the builder and returns it to Compact mode. The storage is
// kept for reuse.
func (b *Builder) Reset() *Builder {
	b.count = 0
	b.coder = format.Compact
	b.maybeCompactable = false

	return b
}

// inflate switches Compact storage to Wide. Each existing byte becomes the
// low byte of a two-byte slot; the capacity in units is unchanged.
// It is a no-op on Wide storage and is the only place the coder is upgraded.
func (b *Builder) inflate() {
	if b.coder == format.Wide {
		return
	}

	buf := make([]byte, len(b.value)<<1)
	for i, c := range b.value {
		buf[i<<1] = c
	}
	b.value = buf
	b.coder = format.Wide
	b.maybeCompactable = false
	b.shared = false

	if b.logger != nil {
		b.logger.Debug("storage inflated",
			"length", b.count,
			"capacity", b.Cap())
	}
}

// detach gives the builder a private copy of storage aliased by a Text.
func (b *Builder) detach() {
	buf := make([]byte, len(b.value))
	copy(buf, b.value)
	b.value = buf
	b.shared = false
}
