package voxelgo

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hupe1980/voxelgo/collision"
	"github.com/hupe1980/voxelgo/compression"
	"github.com/hupe1980/voxelgo/geometry"
	"github.com/hupe1980/voxelgo/lattice"
)

func TestBuilderValidatesChunkShape(t *testing.T) {
	_, err := Map3[uint8](lattice.P3(16, 12, 16)).Build()

	var invalid *ErrInvalidChunkShape
	require.ErrorAs(t, err, &invalid)
}

func TestMapWritesFarFromOrigin(t *testing.T) {
	world := Map3[int32](lattice.Splat3(16)).MustBuild()

	world.Set(lattice.P3(1<<20, 0, 0), 3)
	world.Set(lattice.P3(-(1 << 22), 1<<21, -5), 4)

	require.Equal(t, int32(3), world.Get(lattice.P3(1<<20, 0, 0)))
	require.Equal(t, int32(4), world.Get(lattice.P3(-(1<<22), 1<<21, -5)))
	require.Equal(t, int32(0), world.Get(lattice.P3(1<<20, 16, 0)))
}

func TestMapReadWrite(t *testing.T) {
	world, err := Map3[uint16](lattice.Splat3(16)).Ambient(0).Build()
	require.NoError(t, err)

	world.Set(lattice.P3(4, 1, -7), 12)
	require.Equal(t, uint16(12), world.Get(lattice.P3(4, 1, -7)))
	require.Equal(t, uint16(0), world.Get(lattice.P3(1000, 0, 0)))
}

func TestMap2Builds(t *testing.T) {
	heights, err := Map2[float32](lattice.Splat2(32)).Ambient(-1).Build()
	require.NoError(t, err)

	heights.Set(lattice.P2(100, -100), 7.5)
	require.Equal(t, float32(7.5), heights.Get(lattice.P2(100, -100)))
	require.Equal(t, float32(-1), heights.Get(lattice.P2(0, 0)))
}

func TestMapCompressRoundTrip(t *testing.T) {
	world := Map3[int32](lattice.Splat3(16)).
		Compression(compression.LZ4{}).
		MustBuild()

	fill := lattice.NewExtent(lattice.Splat3(-10), lattice.Splat3(30))
	world.FillExtent(fill, 6)
	world.Set(lattice.P3(500, 0, 0), 9)

	frozen, err := world.Compress(context.Background())
	require.NoError(t, err)

	for p := range lattice.NewExtent(lattice.Splat3(-12), lattice.Splat3(34)).Points() {
		require.Equal(t, world.Get(p), frozen.Get(p), "at %v", p)
	}
	require.Equal(t, int32(9), frozen.Get(lattice.P3(500, 0, 0)))
}

func TestCompressEmptyMap(t *testing.T) {
	world := Map3[int32](lattice.Splat3(16)).MustBuild()

	_, err := world.Compress(context.Background())
	require.ErrorIs(t, err, ErrEmptyMap)
}

func TestOctreeSetEmptyMap(t *testing.T) {
	world := Map3[uint8](lattice.Splat3(16)).MustBuild()

	_, err := OctreeSet(context.Background(), world, func(v uint8) bool { return v == 0 })
	require.ErrorIs(t, err, ErrEmptyMap)
}

func TestLoggerCarriesMapContext(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	world := Map3[int32](lattice.Splat3(16)).
		Logger(logger).
		MustBuild()

	world.FillExtent(lattice.NewExtent(lattice.P3(0, 0, 0), lattice.P3(4, 4, 4)), 9)

	_, err := world.Compress(context.Background())
	require.NoError(t, err)

	out := buf.String()
	require.Contains(t, out, "chunk_shape=")
	require.Contains(t, out, "extent filled")
	require.Contains(t, out, "points=64")
	require.Contains(t, out, "chunks=1")
	require.Contains(t, out, "compression completed")
}

func TestOctreeSetRequiresCubicChunks(t *testing.T) {
	world := Map3[uint8](lattice.P3(16, 16, 8)).MustBuild()

	_, err := OctreeSet(context.Background(), world, func(v uint8) bool { return v == 0 })

	var nonCubic *ErrNonCubicChunkShape
	require.ErrorAs(t, err, &nonCubic)
}

func TestOctreeSetAndRayCastEndToEnd(t *testing.T) {
	ctx := context.Background()

	world := Map3[uint8](lattice.Splat3(16)).MustBuild()
	world.Set(lattice.P3(0, 0, 0), 1)
	world.Set(lattice.P3(0, 15, 0), 1)
	world.Set(lattice.P3(40, 0, 0), 1)

	set, err := OctreeSet(ctx, world, func(v uint8) bool { return v == 0 })
	require.NoError(t, err)
	require.Equal(t, 2, set.Len())

	start := geometry.V3(-1, -1, -1)
	ray := geometry.Ray{Origin: start, Dir: geometry.V3(0.5, 0.5, 0.5).Sub(start)}

	impact, ok := collision.RayCast(set, ray, 100, nil)
	require.True(t, ok)
	require.Equal(t, lattice.P3(0, 0, 0), impact.Point)

	// Sphere cast against the distant voxel.
	ray = geometry.Ray{Origin: geometry.V3(40.5, 10, 0.5), Dir: geometry.V3(0, -1, 0)}
	sphereImpact, ok := collision.SphereCast(set, 0.5, ray, 100, nil)
	require.True(t, ok)
	require.Equal(t, lattice.P3(40, 0, 0), sphereImpact.Point)
}
