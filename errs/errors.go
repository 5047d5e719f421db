// Package errs holds the sentinel errors returned or raised by textbuf packages.
//
// Errors are wrapped with additional context using fmt.Errorf("%w: ...") so
// callers should compare with errors.Is.
package errs

import "errors"

// Builder contract violations. These are raised with panic on the append and
// extraction hot paths and returned by fallible constructors.
var (
	ErrIndexOutOfRange   = errors.New("index out of range")
	ErrCapacityOverflow  = errors.New("capacity overflow")
	ErrInvalidCapacity   = errors.New("invalid initial capacity")
	ErrNilDecimalRender  = errors.New("decimal renderer must not be nil")
	ErrNilTextFormer     = errors.New("text former must not be nil")
	ErrInvalidCoder      = errors.New("invalid coder")
	ErrInvalidUnitLength = errors.New("wide payload has odd byte length")
)

// Snapshot frame errors.
var (
	ErrInvalidHeaderSize  = errors.New("invalid snapshot header size")
	ErrInvalidMagic       = errors.New("invalid snapshot magic number")
	ErrInvalidCompression = errors.New("invalid compression type")
	ErrChecksumMismatch   = errors.New("snapshot checksum mismatch")
	ErrInvalidPayloadSize = errors.New("snapshot payload size does not match unit count")
	ErrTextTooLong        = errors.New("text too long for snapshot frame")
)

// Configuration errors.
var (
	ErrInvalidLogLevel = errors.New("invalid log level")
)
