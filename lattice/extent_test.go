package lattice

import "testing"

func TestExtentFromMinAndMax(t *testing.T) {
	e := NewExtentFromMinAndMax(P3(-1, -1, -1), P3(1, 1, 1))
	if e.Shape != Splat3(3) {
		t.Fatalf("shape: got %v", e.Shape)
	}
	if e.NumPoints() != 27 {
		t.Fatalf("num points: got %d", e.NumPoints())
	}
	if e.Max() != P3(1, 1, 1) {
		t.Fatalf("max: got %v", e.Max())
	}
}

func TestExtentContains(t *testing.T) {
	e := NewExtent(P3(0, 0, 0), Splat3(16))

	for _, p := range []Point3i{P3(0, 0, 0), P3(15, 15, 15), P3(7, 0, 12)} {
		if !e.Contains(p) {
			t.Fatalf("%v should be contained", p)
		}
	}
	for _, p := range []Point3i{P3(-1, 0, 0), P3(16, 0, 0), P3(0, 0, 16)} {
		if e.Contains(p) {
			t.Fatalf("%v should not be contained", p)
		}
	}
}

func TestExtentIntersection(t *testing.T) {
	a := NewExtent(P3(0, 0, 0), Splat3(10))
	b := NewExtent(P3(5, 5, 5), Splat3(10))

	got := a.Intersection(b)
	want := NewExtent(P3(5, 5, 5), Splat3(5))
	if got != want {
		t.Fatalf("intersection: got %v, want %v", got, want)
	}

	disjoint := NewExtent(P3(100, 100, 100), Splat3(2))
	if !a.Intersection(disjoint).IsEmpty() {
		t.Fatal("disjoint intersection should be empty")
	}
}

func TestExtentBoundWith(t *testing.T) {
	a := NewExtent(P3(0, 0, 0), Splat3(1))
	b := NewExtent(P3(9, -3, 4), Splat3(1))

	got := a.BoundWith(b)
	want := NewExtentFromMinAndMax(P3(0, -3, 0), P3(9, 0, 4))
	if got != want {
		t.Fatalf("bound: got %v, want %v", got, want)
	}

	var empty Extent3i
	if a.BoundWith(empty) != a {
		t.Fatal("bounding with empty should be identity")
	}
}

func TestBoundingOfPoints(t *testing.T) {
	points := []Point3i{P3(1, 2, 3), P3(-4, 5, -6), P3(7, -8, 9)}
	e, ok := Bounding(func(yield func(Point3i) bool) {
		for _, p := range points {
			if !yield(p) {
				return
			}
		}
	})
	if !ok {
		t.Fatal("expected a bound")
	}
	want := NewExtentFromMinAndMax(P3(-4, -8, -6), P3(7, 5, 9))
	if e != want {
		t.Fatalf("bound: got %v, want %v", e, want)
	}

	if _, ok := Bounding(func(func(Point3i) bool) {}); ok {
		t.Fatal("empty sequence should have no bound")
	}
}
