package compress

import (
	"errors"
	"fmt"
	"sync"

	"github.com/pierrec/lz4/v4"

	"github.com/arloliu/textbuf/errs"
)

// lz4CompressorPool pools lz4.Compressor instances, which keep a hash table
// worth reusing.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

const (
	// maxLZ4Output bounds the adaptive output buffer when the size is unknown.
	maxLZ4Output = 128 * 1024 * 1024
	// maxLZ4Ratio bounds how many bytes one byte of an LZ4 block can expand to.
	maxLZ4Ratio = 255
)

// SizedDecompressor is implemented by codecs whose block format does not
// record the decompressed size. Callers that know the size, such as the
// snapshot decoder, use it to allocate the output exactly once.
type SizedDecompressor interface {
	DecompressSized(data []byte, size int) ([]byte, error)
}

// LZ4Compressor compresses payloads as raw LZ4 blocks.
type LZ4Compressor struct{}

var (
	_ Codec             = (*LZ4Compressor)(nil)
	_ SizedDecompressor = (*LZ4Compressor)(nil)
)

// NewLZ4Compressor creates a new LZ4 compressor.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress compresses data into a single LZ4 block using a pooled compressor.
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	dst := make([]byte, lz4.CompressBlockBound(len(data)))

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

// Decompress decompresses an LZ4 block of unknown size.
//
// The output buffer starts at 4x the input and doubles on
// lz4.ErrInvalidSourceShortBuffer, up to 128MB.
func (c LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	for bufSize := len(data) * 4; bufSize <= maxLZ4Output; bufSize *= 2 {
		buf := make([]byte, bufSize)
		n, err := lz4.UncompressBlock(data, buf)
		if err == nil {
			return buf[:n], nil
		}
		if !errors.Is(err, lz4.ErrInvalidSourceShortBuffer) {
			return nil, err
		}
	}

	return nil, lz4.ErrInvalidSourceShortBuffer
}

// DecompressSized decompresses an LZ4 block whose decompressed size is known.
//
// Returns errs.ErrInvalidPayloadSize without allocating when size exceeds
// what len(data) bytes of LZ4 can expand to.
func (c LZ4Compressor) DecompressSized(data []byte, size int) ([]byte, error) {
	if size == 0 {
		return nil, nil
	}
	if size < 0 || size/maxLZ4Ratio > len(data) {
		return nil, fmt.Errorf("%w: %d bytes cannot come from a %d byte lz4 block",
			errs.ErrInvalidPayloadSize, size, len(data))
	}

	buf := make([]byte, size)
	n, err := lz4.UncompressBlock(data, buf)
	if err != nil {
		return nil, err
	}
	if n != size {
		return nil, fmt.Errorf("%w: lz4 block decompressed to %d bytes, want %d",
			errs.ErrInvalidPayloadSize, n, size)
	}

	return buf, nil
}
