package compression

import (
	"github.com/hupe1980/voxelgo/array"
	"github.com/hupe1980/voxelgo/lattice"
)

// ArrayCompression compresses whole chunks: every channel goes through the
// channel codec while the chunk's extent is kept uncompressed alongside.
type ArrayCompression[P lattice.Point[P], T any] struct {
	channels ChannelCompression[T]
}

// NewArrayCompression builds a chunk codec over the given byte compressor.
func NewArrayCompression[P lattice.Point[P], T any](bytes BytesCompression) ArrayCompression[P, T] {
	return ArrayCompression[P, T]{channels: NewChannelCompression[T](bytes)}
}

// ChannelCompression returns the per-channel codec.
func (c ArrayCompression[P, T]) ChannelCompression() ChannelCompression[T] { return c.channels }

// CompressedArray is a compressed chunk: compressed channel data plus the
// uncompressed extent.
type CompressedArray[P lattice.Point[P], T any] struct {
	channel CompressedChannel[T]
	extent  lattice.Extent[P]
}

// CompressedChannel returns the compressed channel bundle.
func (ca CompressedArray[P, T]) CompressedChannel() CompressedChannel[T] { return ca.channel }

// Extent returns the extent of the source chunk.
func (ca CompressedArray[P, T]) Extent() lattice.Extent[P] { return ca.extent }

// CompressedSize returns the compressed channel size in bytes.
func (ca CompressedArray[P, T]) CompressedSize() int { return len(ca.channel.compressedBytes) }

// Compress compresses a chunk. The source chunk may be discarded afterwards.
func (c ArrayCompression[P, T]) Compress(a *array.Array[P, T]) (CompressedArray[P, T], error) {
	channel, err := c.channels.Compress(a.Channel())
	if err != nil {
		return CompressedArray[P, T]{}, err
	}

	return CompressedArray[P, T]{channel: channel, extent: a.Extent()}, nil
}

// Decompress reconstructs a fresh chunk; the compressed bytes are not
// mutated and remain valid.
func (c ArrayCompression[P, T]) Decompress(compressed CompressedArray[P, T]) (*array.Array[P, T], error) {
	channel, err := c.channels.Decompress(compressed.channel)
	if err != nil {
		return nil, err
	}

	return array.New(compressed.extent, channel), nil
}
