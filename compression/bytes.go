package compression

import (
	"errors"
	"fmt"
	"sync"

	"github.com/klauspost/compress/snappy"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// ErrDecompressedSize is returned when a block decompresses to a length
// other than the one the caller allocated for.
var ErrDecompressedSize = errors.New("compression: decompressed size mismatch")

// BytesCompression is a reversible block compressor over raw bytes.
// Implementations must be safe for concurrent use.
//
// DecompressBytes fills dst completely; the caller must size dst to the
// exact decompressed length (the channel codec records it at compression
// time).
type BytesCompression interface {
	CompressBytes(src []byte) ([]byte, error)
	DecompressBytes(src, dst []byte) error
}

// LZ4 compresses with LZ4 block compression: the fastest option, with the
// weakest ratio. Incompressible blocks are stored raw behind a one-byte
// marker.
type LZ4 struct{}

const (
	lz4BlockRaw        = 0
	lz4BlockCompressed = 1
)

// CompressBytes implements BytesCompression.
func (LZ4) CompressBytes(src []byte) ([]byte, error) {
	dst := make([]byte, 1+lz4.CompressBlockBound(len(src)))
	dst[0] = lz4BlockCompressed

	n, err := lz4.CompressBlock(src, dst[1:], nil)
	if err != nil {
		return nil, fmt.Errorf("compression: lz4 compress: %w", err)
	}
	if n == 0 {
		// Incompressible input.
		dst = make([]byte, 1+len(src))
		dst[0] = lz4BlockRaw
		copy(dst[1:], src)
		return dst, nil
	}

	return dst[:1+n], nil
}

// DecompressBytes implements BytesCompression.
func (LZ4) DecompressBytes(src, dst []byte) error {
	if len(src) == 0 {
		if len(dst) == 0 {
			return nil
		}
		return ErrDecompressedSize
	}
	if src[0] == lz4BlockRaw {
		if len(src)-1 != len(dst) {
			return ErrDecompressedSize
		}
		copy(dst, src[1:])
		return nil
	}

	n, err := lz4.UncompressBlock(src[1:], dst)
	if err != nil {
		return fmt.Errorf("compression: lz4 decompress: %w", err)
	}
	if n != len(dst) {
		return ErrDecompressedSize
	}

	return nil
}

// Zstd compresses with zstd at the default speed/ratio trade-off. Encoders
// and decoders are pooled across all Zstd values.
type Zstd struct{}

var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() *zstd.Encoder {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder)
	}
	enc, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	return enc
}

func getZstdDecoder() *zstd.Decoder {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder)
	}
	dec, _ := zstd.NewReader(nil)
	return dec
}

// CompressBytes implements BytesCompression.
func (Zstd) CompressBytes(src []byte) ([]byte, error) {
	enc := getZstdEncoder()
	defer zstdEncoderPool.Put(enc)

	return enc.EncodeAll(src, nil), nil
}

// DecompressBytes implements BytesCompression.
func (Zstd) DecompressBytes(src, dst []byte) error {
	dec := getZstdDecoder()
	defer zstdDecoderPool.Put(dec)

	decoded, err := dec.DecodeAll(src, dst[:0])
	if err != nil {
		return fmt.Errorf("compression: zstd decompress: %w", err)
	}
	if len(decoded) != len(dst) {
		return ErrDecompressedSize
	}
	// DecodeAll may have grown past dst's backing array.
	if len(decoded) > 0 && &decoded[0] != &dst[0] {
		copy(dst, decoded)
	}

	return nil
}

// Snappy compresses with the snappy block format.
type Snappy struct{}

// CompressBytes implements BytesCompression.
func (Snappy) CompressBytes(src []byte) ([]byte, error) {
	return snappy.Encode(nil, src), nil
}

// DecompressBytes implements BytesCompression.
func (Snappy) DecompressBytes(src, dst []byte) error {
	decoded, err := snappy.Decode(dst, src)
	if err != nil {
		return fmt.Errorf("compression: snappy decompress: %w", err)
	}
	if len(decoded) != len(dst) {
		return ErrDecompressedSize
	}
	if len(decoded) > 0 && &decoded[0] != &dst[0] {
		copy(dst, decoded)
	}

	return nil
}
