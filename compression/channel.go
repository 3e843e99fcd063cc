package compression

import (
	"fmt"

	"github.com/hupe1980/voxelgo/array"
)

// ChannelCompression compresses one typed channel by viewing its backing
// buffer as raw bytes. See the package comment for the portability caveat.
type ChannelCompression[T any] struct {
	bytes BytesCompression
}

// NewChannelCompression builds a channel codec over the given byte
// compressor.
func NewChannelCompression[T any](bytes BytesCompression) ChannelCompression[T] {
	return ChannelCompression[T]{bytes: bytes}
}

// BytesCompression returns the underlying byte compressor.
func (c ChannelCompression[T]) BytesCompression() BytesCompression { return c.bytes }

// CompressedChannel is an opaque compressed buffer plus the element count
// needed to reconstruct the original channel. It owns its bytes
// independently of the source channel.
type CompressedChannel[T any] struct {
	compressedBytes []byte
	length          int
}

// CompressedBytes returns the opaque compressed buffer.
func (cc CompressedChannel[T]) CompressedBytes() []byte { return cc.compressedBytes }

// Len returns the element count of the original channel.
func (cc CompressedChannel[T]) Len() int { return cc.length }

// Compress compresses the channel's raw bytes. The source channel is left
// untouched and may be discarded afterwards.
func (c ChannelCompression[T]) Compress(channel *array.Channel[T]) (CompressedChannel[T], error) {
	compressed, err := c.bytes.CompressBytes(channel.RawBytes())
	if err != nil {
		return CompressedChannel[T]{}, fmt.Errorf("compression: channel compress: %w", err)
	}

	return CompressedChannel[T]{
		compressedBytes: compressed,
		length:          channel.Len(),
	}, nil
}

// Decompress reconstructs a fresh channel. The output buffer is allocated
// with the element type T so its alignment is correct, then filled through
// its raw-byte view. The compressed buffer must have been produced by the
// same codec on the same platform.
func (c ChannelCompression[T]) Decompress(compressed CompressedChannel[T]) (*array.Channel[T], error) {
	values := make([]T, compressed.length)
	channel := array.NewChannel(values)

	if err := c.bytes.DecompressBytes(compressed.compressedBytes, channel.RawBytes()); err != nil {
		return nil, fmt.Errorf("compression: channel decompress: %w", err)
	}

	return channel, nil
}
