package builder

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/arloliu/textbuf/errs"
	"github.com/arloliu/textbuf/format"
	"github.com/arloliu/textbuf/internal/options"
	"github.com/arloliu/textbuf/text"
)

// Builder is a growable sequence of UTF-16 code units stored in Compact or
// Wide encoding.
//
// Note: The Builder is NOT thread-safe.
type Builder struct {
	value []byte       // storage; len(value) is the physical byte size
	coder format.Coder // Compact or Wide; never reverts to Compact except on Reset
	count int          // logical length in code units

	// maybeCompactable is set when an ASCII unit is written into Wide storage.
	// It is only a hint for callers that want to re-compact; the builder never
	// reads it.
	maybeCompactable bool

	// shared is set while a whole-span Text aliases value.
	shared bool

	renderDecimal DecimalRenderer
	formText      TextFormer
	logger        *slog.Logger
}

var (
	_ text.Coded      = (*Builder)(nil)
	_ io.Writer       = (*Builder)(nil)
	_ io.StringWriter = (*Builder)(nil)
	_ fmt.Stringer    = (*Builder)(nil)
)

// New creates an empty Compact builder.
//
// Without options the capacity is DefaultCapacity code units.
//
// Returns:
//   - *Builder: the new builder
//   - error: errs.ErrInvalidCapacity, errs.ErrNilDecimalRender or errs.ErrNilTextFormer
//     when an option is invalid
func New(opts ...Option) (*Builder, error) {
	cfg, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}

	return newBuilder(cfg, make([]byte, cfg.capacity), format.Compact), nil
}

// FromSequence creates a builder seeded with the content of seq.
//
// The builder adopts the coder of a text.Coded source, and additionally the
// maybe-compactable hint of a *Builder source. Storage is sized to
// seq.Len() + 16 units. A nil seq seeds the builder with "null".
func FromSequence(seq text.Sequence, opts ...Option) (*Builder, error) {
	cfg, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}

	if isNilSequence(seq) {
		seq = nullText
	}

	coder := format.Compact
	if coded, ok := seq.(text.Coded); ok {
		coder = coded.Coder()
	}

	b := newBuilder(cfg, make([]byte, (seq.Len()+growthSlack)<<coder.Shift()), coder)
	if src, ok := seq.(*Builder); ok {
		b.maybeCompactable = src.maybeCompactable
	}
	b.AppendSequence(seq)

	return b, nil
}

// FromString creates a builder seeded with the UTF-16 form of s.
func FromString(s string, opts ...Option) (*Builder, error) {
	return FromSequence(text.FromString(s), opts...)
}

func applyOptions(opts []Option) (*BuilderConfig, error) {
	cfg := newBuilderConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

func newBuilder(cfg *BuilderConfig, value []byte, coder format.Coder) *Builder {
	return &Builder{
		value:         value,
		coder:         coder,
		renderDecimal: cfg.renderDecimal,
		formText:      cfg.formText,
		logger:        cfg.logger,
	}
}

// Len returns the number of code units held.
func (b *Builder) Len() int {
	return b.count
}

// Coder returns the current storage coder.
func (b *Builder) Coder() format.Coder {
	return b.coder
}

// MaybeCompactable reports whether an ASCII unit was written into Wide storage
// since the last inflation or reset.
func (b *Builder) MaybeCompactable() bool {
	return b.maybeCompactable
}

// String returns the content as a UTF-8 string.
func (b *Builder) String() string {
	return text.Decode(b.value[:b.count<<b.coder.Shift()], b.coder)
}

// Units returns a copy of the content as code units.
func (b *Builder) Units() []uint16 {
	return text.UnitsOf(b)
}

func (b *Builder) checkIndex(index int) {
	if index < 0 || index >= b.count {
		panic(fmt.Errorf("%w: index %d, length %d", errs.ErrIndexOutOfRange, index, b.count))
	}
}

func (b *Builder) checkRange(start, end int) {
	if start < 0 || start > end || end > b.count {
		panic(fmt.Errorf("%w: range [%d, %d), length %d", errs.ErrIndexOutOfRange, start, end, b.count))
	}
}
