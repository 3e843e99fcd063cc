package lattice

import "testing"

func TestMortonCodeRoundTrip3(t *testing.T) {
	points := []Point3i{
		P3(0, 0, 0),
		P3(1, 2, 3),
		P3(-1, -1, -1),
		P3(-MortonRange, -MortonRange, -MortonRange),
		P3(MortonRange-1, MortonRange-1, MortonRange-1),
		P3(12345, -54321, 999),
	}
	for _, p := range points {
		code := p.MortonCode()
		if got := (Point3i{}).FromMortonCode(code); got != p {
			t.Fatalf("round trip of %v: got %v (code %d)", p, got, code)
		}
	}
}

func TestMortonCodeRoundTrip2(t *testing.T) {
	points := []Point2i{
		P2(0, 0),
		P2(-7, 13),
		P2(-MortonRange, MortonRange-1),
	}
	for _, p := range points {
		code := p.MortonCode()
		if got := (Point2i{}).FromMortonCode(code); got != p {
			t.Fatalf("round trip of %v: got %v (code %d)", p, got, code)
		}
	}
}

func TestMortonCodePreservesLocalOrder(t *testing.T) {
	// Within a positive octant, the code of the origin is the smallest.
	origin := P3(0, 0, 0).MortonCode()
	for p := range NewExtent(P3(0, 0, 0), Splat3(4)).Points() {
		if p == P3(0, 0, 0) {
			continue
		}
		if p.MortonCode() <= origin {
			t.Fatalf("code of %v should be greater than the origin's", p)
		}
	}
}

func TestMortonCodePanicsOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for out-of-range coordinate")
		}
	}()
	_ = P3(MortonRange, 0, 0).MortonCode()
}
