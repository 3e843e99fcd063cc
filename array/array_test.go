package array

import (
	"testing"

	"github.com/hupe1980/voxelgo/lattice"
)

func TestArrayGetSet(t *testing.T) {
	extent := lattice.NewExtent(lattice.P3(-2, -2, -2), lattice.Splat3(4))
	a := Fill(extent, 0)

	a.Set(lattice.P3(-2, -2, -2), 1)
	a.Set(lattice.P3(1, 1, 1), 2)
	a.Set(lattice.P3(0, -1, 1), 3)

	if got := a.Get(lattice.P3(-2, -2, -2)); got != 1 {
		t.Fatalf("got %d, want 1", got)
	}
	if got := a.Get(lattice.P3(1, 1, 1)); got != 2 {
		t.Fatalf("got %d, want 2", got)
	}
	if got := a.Get(lattice.P3(0, -1, 1)); got != 3 {
		t.Fatalf("got %d, want 3", got)
	}
	if got := a.Get(lattice.P3(0, 0, 0)); got != 0 {
		t.Fatalf("got %d, want 0", got)
	}
}

func TestArrayGetMut(t *testing.T) {
	a := Fill(lattice.NewExtent(lattice.P3(0, 0, 0), lattice.Splat3(2)), 7)
	*a.GetMut(lattice.P3(1, 0, 1)) = 42
	if got := a.Get(lattice.P3(1, 0, 1)); got != 42 {
		t.Fatalf("got %d, want 42", got)
	}
}

func TestArrayForEachVisitsIntersectionOnly(t *testing.T) {
	extent := lattice.NewExtent(lattice.P3(0, 0, 0), lattice.Splat3(4))
	a := Fill(extent, 0)

	query := lattice.NewExtent(lattice.P3(2, 2, 2), lattice.Splat3(10))
	visited := 0
	a.ForEach(query, func(p lattice.Point3i, _ int) {
		if !extent.Contains(p) || !query.Contains(p) {
			t.Fatalf("visited %v outside the intersection", p)
		}
		visited++
	})
	if visited != 8 {
		t.Fatalf("visited %d points, want 8", visited)
	}
}

func TestArrayFillExtent(t *testing.T) {
	a := Fill(lattice.NewExtent(lattice.P3(0, 0, 0), lattice.Splat3(4)), 0)
	fill := lattice.NewExtent(lattice.P3(1, 1, 1), lattice.Splat3(2))
	a.FillExtent(fill, 9)

	for p := range a.Extent().Points() {
		want := 0
		if fill.Contains(p) {
			want = 9
		}
		if got := a.Get(p); got != want {
			t.Fatalf("at %v: got %d, want %d", p, got, want)
		}
	}
}

func TestChannelRawBytes(t *testing.T) {
	c := FillChannel(4, uint16(0x0102))
	raw := c.RawBytes()
	if len(raw) != 8 {
		t.Fatalf("raw length: got %d, want 8", len(raw))
	}
	if c.ElementSize() != 2 {
		t.Fatalf("element size: got %d, want 2", c.ElementSize())
	}

	// The raw view aliases the channel's memory.
	c.Values()[0] = 0xffff
	if raw[0] != 0xff || raw[1] != 0xff {
		t.Fatal("raw bytes should alias the channel values")
	}
}
