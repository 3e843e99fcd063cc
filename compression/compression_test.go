package compression

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hupe1980/voxelgo/array"
	"github.com/hupe1980/voxelgo/lattice"
)

func codecs() map[string]BytesCompression {
	return map[string]BytesCompression{
		"lz4":    LZ4{},
		"zstd":   Zstd{},
		"snappy": Snappy{},
	}
}

func TestBytesCompressionRoundTrip(t *testing.T) {
	// Runs of equal bytes compress well; random bytes usually don't. Both
	// must round-trip.
	rng := rand.New(rand.NewSource(1))
	random := make([]byte, 4096)
	_, err := rng.Read(random)
	require.NoError(t, err)

	inputs := map[string][]byte{
		"compressible":   bytes.Repeat([]byte{0xab, 0xcd}, 2048),
		"incompressible": random,
		"tiny":           {0x01},
	}

	for codecName, codec := range codecs() {
		for inputName, input := range inputs {
			t.Run(codecName+"/"+inputName, func(t *testing.T) {
				compressed, err := codec.CompressBytes(input)
				require.NoError(t, err)

				decompressed := make([]byte, len(input))
				err = codec.DecompressBytes(compressed, decompressed)
				require.NoError(t, err)
				require.Equal(t, input, decompressed)
			})
		}
	}
}

func TestBytesCompressionWrongDestinationSize(t *testing.T) {
	input := bytes.Repeat([]byte{7}, 1024)

	for name, codec := range codecs() {
		t.Run(name, func(t *testing.T) {
			compressed, err := codec.CompressBytes(input)
			require.NoError(t, err)

			err = codec.DecompressBytes(compressed, make([]byte, len(input)-1))
			require.Error(t, err)
		})
	}
}

func TestChannelCompressionRoundTrip(t *testing.T) {
	values := make([]uint16, 1000)
	for i := range values {
		values[i] = uint16(i % 37)
	}
	channel := array.NewChannel(values)

	for name, bytesCodec := range codecs() {
		t.Run(name, func(t *testing.T) {
			codec := NewChannelCompression[uint16](bytesCodec)

			compressed, err := codec.Compress(channel)
			require.NoError(t, err)
			require.Equal(t, channel.Len(), compressed.Len())

			decompressed, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.Equal(t, channel.Values(), decompressed.Values())
		})
	}
}

func TestArrayCompressionRoundTrip(t *testing.T) {
	extent := lattice.NewExtent(lattice.P3(-8, 0, 8), lattice.Splat3(16))
	a := array.Fill(extent, float32(0))
	a.Set(lattice.P3(-8, 0, 8), 1.5)
	a.Set(lattice.P3(7, 15, 23), -2.25)

	codec := NewArrayCompression[lattice.Point3i, float32](Zstd{})

	compressed, err := codec.Compress(a)
	require.NoError(t, err)
	require.Equal(t, extent, compressed.Extent())
	require.Greater(t, compressed.CompressedSize(), 0)

	decompressed, err := codec.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, extent, decompressed.Extent())
	require.Equal(t, a.Channel().Values(), decompressed.Channel().Values())
}

func TestArrayCompressionShrinksUniformChunks(t *testing.T) {
	a := array.Fill(lattice.NewExtent(lattice.P3(0, 0, 0), lattice.Splat3(32)), uint32(0xdeadbeef))

	codec := NewArrayCompression[lattice.Point3i, uint32](LZ4{})
	compressed, err := codec.Compress(a)
	require.NoError(t, err)

	rawSize := a.Channel().Len() * a.Channel().ElementSize()
	require.Less(t, compressed.CompressedSize(), rawSize/10)
}
