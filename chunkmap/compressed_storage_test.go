package chunkmap

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hupe1980/voxelgo/compression"
	"github.com/hupe1980/voxelgo/lattice"
)

func TestCompressedStorageReadsBackWrites(t *testing.T) {
	m := testBuilder.BuildWithHashStorage()
	m.Set(lattice.P3(0, 0, 0), 1)
	m.Set(lattice.P3(100, -200, 300), 2)
	m.FillExtent(lattice.NewExtent(lattice.Splat3(-20), lattice.Splat3(10)), 3)

	store := m.Storage().(*HashStorage[lattice.Point3i, int32])
	codec := compression.NewArrayCompression[lattice.Point3i, int32](compression.LZ4{})

	cs, err := NewCompressedStorage(codec, store.Chunks())
	require.NoError(t, err)
	require.Equal(t, store.Len(), cs.Len())
	require.Greater(t, cs.CompressedBytes(), 0)

	frozen := testBuilder.BuildWithReadStorage(cs)

	readExtent := lattice.NewExtent(lattice.Splat3(-32), lattice.Splat3(64))
	for p := range readExtent.Points() {
		require.Equal(t, m.Get(p), frozen.Get(p), "at %v", p)
	}
	require.Equal(t, int32(2), frozen.Get(lattice.P3(100, -200, 300)))
}

func TestCompressedStorageGetReturnsFreshChunks(t *testing.T) {
	m := testBuilder.BuildWithHashStorage()
	m.Set(lattice.P3(1, 1, 1), 5)

	store := m.Storage().(*HashStorage[lattice.Point3i, int32])
	codec := compression.NewArrayCompression[lattice.Point3i, int32](compression.Snappy{})

	cs, err := NewCompressedStorage(codec, store.Chunks())
	require.NoError(t, err)

	key := lattice.P3(0, 0, 0)
	first, ok := cs.Get(key)
	require.True(t, ok)

	// Mutating one decompressed copy must not leak into the next.
	first.Set(lattice.P3(1, 1, 1), 99)

	second, ok := cs.Get(key)
	require.True(t, ok)
	require.Equal(t, int32(5), second.Get(lattice.P3(1, 1, 1)))
}

func TestCompressedStorageOfEmptyMap(t *testing.T) {
	m := testBuilder.BuildWithHashStorage()
	store := m.Storage().(*HashStorage[lattice.Point3i, int32])
	codec := compression.NewArrayCompression[lattice.Point3i, int32](compression.Zstd{})

	cs, err := NewCompressedStorage(codec, store.Chunks())
	require.NoError(t, err)
	require.Equal(t, 0, cs.Len())

	_, ok := cs.Get(lattice.P3(0, 0, 0))
	require.False(t, ok)
}
