package builder

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/arloliu/textbuf/errs"
	"github.com/arloliu/textbuf/internal/options"
	"github.com/arloliu/textbuf/internal/pool"
	"github.com/arloliu/textbuf/text"
)

// DefaultCapacity is the capacity in code units of a builder created without
// WithCapacity.
const DefaultCapacity = 16

// DecimalRenderer appends the shortest decimal text that round-trips v to dst
// and returns the extended slice. bitSize is 32 when v came from a float32.
type DecimalRenderer func(dst []uint16, v float64, bitSize int) []uint16

// TextFormer returns the text form of an arbitrary value. A nil result is
// appended as "null".
type TextFormer func(v any) text.Sequence

// BuilderConfig holds construction settings for a Builder.
type BuilderConfig struct {
	capacity      int
	renderDecimal DecimalRenderer
	formText      TextFormer
	logger        *slog.Logger
}

func newBuilderConfig() *BuilderConfig {
	return &BuilderConfig{
		capacity:      DefaultCapacity,
		renderDecimal: RenderDecimal,
		formText:      FormText,
	}
}

// Option represents a functional option for configuring a Builder.
type Option = options.Option[*BuilderConfig]

// WithCapacity sets the initial capacity in code units.
// It is ignored by constructors that size the builder from a source text.
func WithCapacity(capacity int) Option {
	return options.New(func(c *BuilderConfig) error {
		if capacity < 0 {
			return fmt.Errorf("%w: %d", errs.ErrInvalidCapacity, capacity)
		}
		c.capacity = capacity

		return nil
	})
}

// WithDecimalRenderer replaces the float-to-text collaborator used by
// AppendFloat32 and AppendFloat64.
func WithDecimalRenderer(render DecimalRenderer) Option {
	return options.New(func(c *BuilderConfig) error {
		if render == nil {
			return errs.ErrNilDecimalRender
		}
		c.renderDecimal = render

		return nil
	})
}

// WithTextFormer replaces the value-to-text collaborator used by AppendValue.
func WithTextFormer(form TextFormer) Option {
	return options.New(func(c *BuilderConfig) error {
		if form == nil {
			return errs.ErrNilTextFormer
		}
		c.formText = form

		return nil
	})
}

// WithLogger enables debug records for storage growth and inflation.
// A nil logger disables logging.
func WithLogger(logger *slog.Logger) Option {
	return options.NoError(func(c *BuilderConfig) {
		c.logger = logger
	})
}

// RenderDecimal is the default DecimalRenderer. It uses strconv's shortest
// round-trip formatting in 'g' form, e.g. "0.1", "1e+21", "NaN".
func RenderDecimal(dst []uint16, v float64, bitSize int) []uint16 {
	scratch := pool.GetScratchBuffer()
	defer pool.PutScratchBuffer(scratch)

	scratch.B = strconv.AppendFloat(scratch.B, v, 'g', -1, bitSize)
	for _, c := range scratch.B {
		dst = append(dst, uint16(c))
	}

	return dst
}

// FormText is the default TextFormer: sequences are used as is, nil becomes
// nil (appended as "null"), and everything else goes through fmt.Sprint.
func FormText(v any) text.Sequence {
	switch x := v.(type) {
	case nil:
		return nil
	case text.Sequence:
		return x
	case string:
		return text.FromString(x)
	default:
		return text.FromString(fmt.Sprint(x))
	}
}
