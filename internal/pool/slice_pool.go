package pool

import "sync"

var unitSlicePool = sync.Pool{
	New: func() any { return &[]uint16{} },
}

// GetUnitSlice retrieves an empty code unit slice with at least capHint capacity.
//
// The caller must call the returned cleanup function once it no longer
// references the slice. When the slice was grown by append, pass the grown
// slice to keep so the larger backing array is pooled instead.
//
// Example:
//
//	units, release := pool.GetUnitSlice(32)
//	units = render(units, v)
//	defer release(units)
func GetUnitSlice(capHint int) ([]uint16, func(keep []uint16)) {
	ptr, _ := unitSlicePool.Get().(*[]uint16)
	slice := (*ptr)[:0]

	if cap(slice) < capHint {
		slice = make([]uint16, 0, capHint)
	}

	return slice, func(keep []uint16) {
		*ptr = keep[:0]
		unitSlicePool.Put(ptr)
	}
}
