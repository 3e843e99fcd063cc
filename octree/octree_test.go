package octree

import (
	"testing"

	"github.com/hupe1980/voxelgo/array"
	"github.com/hupe1980/voxelgo/geometry"
	"github.com/hupe1980/voxelgo/lattice"
)

func isEmptyVoxel(v int) bool { return v == 0 }

func cube(power int, fill int) *array.Array[lattice.Point3i, int] {
	edge := int32(1) << power
	return array.Fill(lattice.NewExtent(lattice.P3(0, 0, 0), lattice.Splat3(edge)), fill)
}

func TestFromArrayOfEmptyCubeIsEmpty(t *testing.T) {
	tree := FromArray(4, cube(4, 0), isEmptyVoxel)
	if !tree.IsEmpty() {
		t.Fatal("tree over an empty cube should be empty")
	}

	visited := 0
	tree.Visit(VisitorFunc(func(geometry.AABB, *Octant, bool) VisitStatus {
		visited++
		return VisitContinue
	}))
	if visited != 0 {
		t.Fatalf("visited %d nodes, want 0", visited)
	}
}

func TestFromArrayOfFullCubeCollapsesToRootLeaf(t *testing.T) {
	tree := FromArray(4, cube(4, 1), isEmptyVoxel)

	var leaves, nodes int
	tree.Visit(VisitorFunc(func(_ geometry.AABB, octant *Octant, isLeaf bool) VisitStatus {
		nodes++
		if isLeaf {
			leaves++
			if octant.EdgeLength != 16 {
				t.Fatalf("collapsed leaf edge: got %d, want 16", octant.EdgeLength)
			}
		}
		return VisitContinue
	}))

	if nodes != 1 || leaves != 1 {
		t.Fatalf("got %d nodes with %d leaves, want a single root leaf", nodes, leaves)
	}
}

func TestFromArrayWithSingleVoxel(t *testing.T) {
	voxels := cube(4, 0)
	voxels.Set(lattice.P3(9, 3, 14), 1)

	tree := FromArray(4, voxels, isEmptyVoxel)

	var leafOctants []Octant
	tree.Visit(VisitorFunc(func(_ geometry.AABB, octant *Octant, isLeaf bool) VisitStatus {
		if isLeaf {
			leafOctants = append(leafOctants, *octant)
		}
		return VisitContinue
	}))

	if len(leafOctants) != 1 {
		t.Fatalf("got %d leaves, want 1", len(leafOctants))
	}
	want := Octant{Minimum: lattice.P3(9, 3, 14), EdgeLength: 1}
	if leafOctants[0] != want {
		t.Fatalf("leaf octant: got %+v, want %+v", leafOctants[0], want)
	}
}

func TestVisitStopPrunesSubtree(t *testing.T) {
	voxels := cube(4, 0)
	voxels.Set(lattice.P3(0, 0, 0), 1)
	voxels.Set(lattice.P3(15, 15, 15), 1)

	// Stop immediately at the root; nothing below it may be visited.
	visited := 0
	tree := FromArray(4, voxels, isEmptyVoxel)
	tree.Visit(VisitorFunc(func(geometry.AABB, *Octant, bool) VisitStatus {
		visited++
		return VisitStop
	}))
	if visited != 1 {
		t.Fatalf("visited %d nodes, want 1", visited)
	}
}

func TestFromArrayPanicsOnNonCubicArray(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for wrong array shape")
		}
	}()
	a := array.Fill(lattice.NewExtent(lattice.P3(0, 0, 0), lattice.P3(16, 16, 8)), 0)
	FromArray(4, a, isEmptyVoxel)
}

func TestOctantAABB(t *testing.T) {
	o := Octant{Minimum: lattice.P3(-8, 0, 8), EdgeLength: 8}
	aabb := o.AABB()

	if aabb.Min != geometry.V3(-8, 0, 8) {
		t.Fatalf("aabb min: got %v", aabb.Min)
	}
	if aabb.Max != geometry.V3(0, 8, 16) {
		t.Fatalf("aabb max: got %v", aabb.Max)
	}

	extent := o.Extent()
	if extent != lattice.NewExtent(lattice.P3(-8, 0, 8), lattice.Splat3(8)) {
		t.Fatalf("extent: got %v", extent)
	}
}

func TestSetInsertRemove(t *testing.T) {
	voxels := cube(4, 1)
	tree := FromArray(4, voxels, isEmptyVoxel)

	set := NewSet()
	set.Insert(tree)
	if set.Len() != 1 {
		t.Fatalf("len: got %d, want 1", set.Len())
	}

	// Empty trees are not stored.
	set.Insert(FromArray(4, cube(4, 0), isEmptyVoxel))
	if set.Len() != 1 {
		t.Fatalf("len after empty insert: got %d, want 1", set.Len())
	}

	visited := 0
	set.Visit(VisitorFunc(func(geometry.AABB, *Octant, bool) VisitStatus {
		visited++
		return VisitContinue
	}))
	if visited != 1 {
		t.Fatalf("visited %d nodes, want 1", visited)
	}

	set.Remove(tree.Octant().Minimum)
	if set.Len() != 0 {
		t.Fatalf("len after remove: got %d, want 0", set.Len())
	}
}
