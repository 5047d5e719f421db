package snapshot

import (
	"fmt"
	"io"
	"math"

	"github.com/arloliu/textbuf/builder"
	"github.com/arloliu/textbuf/compress"
	"github.com/arloliu/textbuf/errs"
	"github.com/arloliu/textbuf/format"
	"github.com/arloliu/textbuf/internal/hash"
	"github.com/arloliu/textbuf/internal/options"
	"github.com/arloliu/textbuf/internal/pool"
	"github.com/arloliu/textbuf/text"
)

// EncoderConfig holds the settings of an Encoder.
type EncoderConfig struct {
	compression format.CompressionType
}

// Option represents a functional option for configuring an Encoder.
type Option = options.Option[*EncoderConfig]

// WithCompression selects the payload codec. The default is zstd.
func WithCompression(compression format.CompressionType) Option {
	return options.New(func(c *EncoderConfig) error {
		if _, err := compress.GetCodec(compression); err != nil {
			return err
		}
		c.compression = compression

		return nil
	})
}

// Encoder writes snapshot frames.
type Encoder struct {
	compression format.CompressionType
	codec       compress.Codec
}

// NewEncoder creates an Encoder.
//
// Returns errs.ErrInvalidCompression when an option names an unknown codec.
func NewEncoder(opts ...Option) (*Encoder, error) {
	cfg := &EncoderConfig{compression: format.CompressionZstd}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	codec, err := compress.CreateCodec(cfg.compression, "snapshot payload")
	if err != nil {
		return nil, err
	}

	return &Encoder{compression: cfg.compression, codec: codec}, nil
}

// Compression returns the payload compression of frames written by e.
func (e *Encoder) Compression() format.CompressionType {
	return e.compression
}

// Encode returns the frame for t.
func (e *Encoder) Encode(t text.Text) ([]byte, error) {
	buf := pool.GetFrameBuffer()
	defer pool.PutFrameBuffer(buf)

	if err := e.encodeInto(buf, t); err != nil {
		return nil, err
	}

	frame := make([]byte, buf.Len())
	copy(frame, buf.Bytes())

	return frame, nil
}

// EncodeBuilder returns the frame for the current content of b.
func (e *Encoder) EncodeBuilder(b *builder.Builder) ([]byte, error) {
	return e.Encode(b.ToText())
}

// EncodeTo writes the frame for t to w and returns the number of bytes written.
func (e *Encoder) EncodeTo(w io.Writer, t text.Text) (int64, error) {
	buf := pool.GetFrameBuffer()
	defer pool.PutFrameBuffer(buf)

	if err := e.encodeInto(buf, t); err != nil {
		return 0, err
	}

	return buf.WriteTo(w)
}

func (e *Encoder) encodeInto(buf *pool.ByteBuffer, t text.Text) error {
	if uint64(t.Len()) > math.MaxUint32 {
		return fmt.Errorf("%w: %d units", errs.ErrTextTooLong, t.Len())
	}

	payload := t.Bytes()
	compressed, err := e.codec.Compress(payload)
	if err != nil {
		return fmt.Errorf("compress snapshot payload: %w", err)
	}

	header := Header{
		Magic:       Magic,
		Coder:       t.Coder(),
		Compression: e.compression,
		UnitCount:   uint32(t.Len()), //nolint:gosec
		Checksum:    hash.Checksum(payload),
	}

	buf.Grow(HeaderSize + len(compressed))
	buf.B = header.AppendTo(buf.B)
	buf.MustWrite(compressed)

	return nil
}

// Decode parses a frame and returns the text it holds.
//
// The returned Text owns its storage; data may be reused by the caller.
func Decode(data []byte) (text.Text, error) {
	var header Header
	if err := header.Parse(data); err != nil {
		return text.Text{}, err
	}

	codec, err := compress.GetCodec(header.Compression)
	if err != nil {
		return text.Text{}, err
	}

	payload, err := decompress(codec, header, data[HeaderSize:])
	if err != nil {
		return text.Text{}, err
	}

	if len(payload) != header.PayloadSize() {
		return text.Text{}, fmt.Errorf("%w: got %d bytes, want %d",
			errs.ErrInvalidPayloadSize, len(payload), header.PayloadSize())
	}
	if sum := hash.Checksum(payload); sum != header.Checksum {
		return text.Text{}, fmt.Errorf("%w: got %016x, want %016x", errs.ErrChecksumMismatch, sum, header.Checksum)
	}

	return text.New(payload, header.Coder)
}

func decompress(codec compress.Codec, header Header, data []byte) ([]byte, error) {
	if header.Compression == format.CompressionNone {
		payload := make([]byte, len(data))
		copy(payload, data)

		return payload, nil
	}

	var (
		payload []byte
		err     error
	)
	if sized, ok := codec.(compress.SizedDecompressor); ok {
		payload, err = sized.DecompressSized(data, header.PayloadSize())
	} else {
		payload, err = codec.Decompress(data)
	}
	if err != nil {
		return nil, fmt.Errorf("decompress snapshot payload: %w", err)
	}

	return payload, nil
}
