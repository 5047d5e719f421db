package builder

import (
	"bytes"

	"github.com/arloliu/textbuf/endian"
	"github.com/arloliu/textbuf/format"
	"github.com/arloliu/textbuf/text"
)

// IndexOf returns the index of the first occurrence of target, or -1.
// An empty target matches at 0.
//
// Matching is done on code units, so a Compact builder and a Wide target (or
// the reverse) compare by value.
func (b *Builder) IndexOf(target text.Sequence) int {
	n := target.Len()
	if n == 0 {
		return 0
	}
	if n > b.count {
		return -1
	}

	if b.coder == format.Compact {
		pattern, ok := compactPattern(target)
		if !ok {
			return -1
		}

		return bytes.Index(b.value[:b.count], pattern)
	}

	return indexWide(b.value[:b.count<<1], widePattern(target))
}

// LastIndexOf returns the index of the last occurrence of target, or -1.
// An empty target matches at Len().
func (b *Builder) LastIndexOf(target text.Sequence) int {
	n := target.Len()
	if n == 0 {
		return b.count
	}
	if n > b.count {
		return -1
	}

	if b.coder == format.Compact {
		pattern, ok := compactPattern(target)
		if !ok {
			return -1
		}

		return bytes.LastIndex(b.value[:b.count], pattern)
	}

	return lastIndexWide(b.value[:b.count<<1], widePattern(target))
}

// IndexOfString is IndexOf for a UTF-8 target.
func (b *Builder) IndexOfString(target string) int {
	return b.IndexOf(text.FromString(target))
}

// LastIndexOfString is LastIndexOf for a UTF-8 target.
func (b *Builder) LastIndexOfString(target string) int {
	return b.LastIndexOf(text.FromString(target))
}

// compactPattern returns target in Compact layout. It reports false when a
// unit of target cannot appear in Compact storage.
func compactPattern(target text.Sequence) ([]byte, bool) {
	pattern := make([]byte, target.Len())
	for i := range pattern {
		c := target.CharAt(i)
		if !text.IsCompact(c) {
			return nil, false
		}
		pattern[i] = byte(c)
	}

	return pattern, true
}

func widePattern(target text.Sequence) []byte {
	pattern := make([]byte, target.Len()<<1)
	for i := range target.Len() {
		endian.PutUnit(pattern, i, target.CharAt(i))
	}

	return pattern
}

// indexWide finds the first unit-aligned match of pattern in wide storage.
func indexWide(hay, pattern []byte) int {
	off := 0
	for {
		i := bytes.Index(hay[off:], pattern)
		if i < 0 {
			return -1
		}
		pos := off + i
		if pos&1 == 0 {
			return pos >> 1
		}
		off = pos + 1
	}
}

// lastIndexWide finds the last unit-aligned match of pattern in wide storage.
func lastIndexWide(hay, pattern []byte) int {
	end := len(hay)
	for {
		pos := bytes.LastIndex(hay[:end], pattern)
		if pos < 0 {
			return -1
		}
		if pos&1 == 0 {
			return pos >> 1
		}
		end = pos + len(pattern) - 1
	}
}
