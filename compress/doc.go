// Package compress provides the payload codecs used by textbuf snapshot frames.
//
// A snapshot stores the raw storage bytes of a text value: one byte per code
// unit for Compact text, two for Wide text. Wide storage of mostly-ASCII text
// is half zero bytes, so even the fast codecs shrink it noticeably.
//
// # Supported Algorithms
//
//   - None (format.CompressionNone): bytes are stored as is.
//   - Zstd (format.CompressionZstd): best ratio, pooled klauspost encoders.
//   - S2 (format.CompressionS2): balanced speed and ratio.
//   - LZ4 (format.CompressionLZ4): fastest decompression.
//
// # Basic Usage
//
//	codec, err := compress.GetCodec(format.CompressionS2)
//	if err != nil {
//	    return err
//	}
//	packed, _ := codec.Compress(payload)
//	payload, err = codec.Decompress(packed)
//
// # Thread Safety
//
// All codecs in this package are stateless values and safe for concurrent use.
package compress
