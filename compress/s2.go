package compress

import (
	"fmt"

	"github.com/klauspost/compress/s2"

	"github.com/arloliu/textbuf/errs"
)

// S2Compressor compresses payloads with S2, a Snappy-compatible block format.
// It trades some ratio for much faster compression than zstd.
type S2Compressor struct{}

var (
	_ Codec             = (*S2Compressor)(nil)
	_ SizedDecompressor = (*S2Compressor)(nil)
)

// NewS2Compressor creates a new S2 compressor.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress encodes data as a single S2 block.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

// Decompress decodes an S2 block. The output size comes from the block itself.
func (c S2Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Decode(nil, data)
}

// DecompressSized decodes an S2 block that must expand to exactly size bytes.
// The length recorded in the block is checked before any output is allocated.
func (c S2Compressor) DecompressSized(data []byte, size int) ([]byte, error) {
	if size == 0 && len(data) == 0 {
		return nil, nil
	}

	n, err := s2.DecodedLen(data)
	if err != nil {
		return nil, err
	}
	if n != size {
		return nil, fmt.Errorf("%w: s2 block holds %d bytes, want %d", errs.ErrInvalidPayloadSize, n, size)
	}

	return s2.Decode(make([]byte, size), data)
}
