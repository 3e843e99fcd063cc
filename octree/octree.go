package octree

import (
	"fmt"

	"github.com/hupe1980/voxelgo/array"
	"github.com/hupe1980/voxelgo/geometry"
	"github.com/hupe1980/voxelgo/lattice"
)

// Octant is a cube-shaped region at some depth of the tree, identified by
// its minimum corner and its power-of-two edge length.
type Octant struct {
	Minimum    lattice.Point3i
	EdgeLength int32
}

// Extent returns the lattice extent covered by the octant.
func (o Octant) Extent() lattice.Extent3i {
	return lattice.NewExtent(o.Minimum, lattice.Splat3(o.EdgeLength))
}

// AABB returns the octant's bounding box in continuous space.
func (o Octant) AABB() geometry.AABB {
	minimum := geometry.V3(float64(o.Minimum.X), float64(o.Minimum.Y), float64(o.Minimum.Z))
	edge := float64(o.EdgeLength)
	return geometry.AABB{
		Min: minimum,
		Max: minimum.Add(geometry.V3(edge, edge, edge)),
	}
}

// VisitStatus is the visitor's per-node control signal.
type VisitStatus int

const (
	// VisitContinue descends into the node's children.
	VisitContinue VisitStatus = iota
	// VisitStop prunes the node's subtree. It does not stop the whole
	// traversal.
	VisitStop
)

// Visitor is called once per visited node with the node's bounding box, its
// octant, and whether the node is a leaf. Leaves are either single occupied
// voxels (EdgeLength 1) or collapsed uniformly-occupied blocks.
type Visitor interface {
	Visit(aabb geometry.AABB, octant *Octant, isLeaf bool) VisitStatus
}

// VisitorFunc adapts a plain function to the Visitor interface.
type VisitorFunc func(aabb geometry.AABB, octant *Octant, isLeaf bool) VisitStatus

func (f VisitorFunc) Visit(aabb geometry.AABB, octant *Octant, isLeaf bool) VisitStatus {
	return f(aabb, octant, isLeaf)
}

type node struct {
	octant   Octant
	children [8]*node
	leaf     bool
}

// Octree is an occupancy tree over a cubic power-of-two region. The zero
// tree (no occupied voxels) is valid and visits nothing.
type Octree struct {
	octant Octant
	root   *node
}

// FromArray builds the occupancy octree of a cubic array whose shape is
// 2^power on every axis; values for which isEmpty returns true are
// unoccupied. Panics when the array is not a 2^power cube.
func FromArray[T any](power int, a *array.Array[lattice.Point3i, T], isEmpty func(T) bool) *Octree {
	edge := int32(1) << power
	extent := a.Extent()
	if extent.Shape != lattice.Splat3(edge) {
		panic(fmt.Sprintf("octree: array shape %v is not the %d^3 cube required by power %d",
			extent.Shape, edge, power))
	}

	octant := Octant{Minimum: extent.Minimum, EdgeLength: edge}
	return &Octree{
		octant: octant,
		root:   buildNode(octant, a, isEmpty),
	}
}

func buildNode[T any](octant Octant, a *array.Array[lattice.Point3i, T], isEmpty func(T) bool) *node {
	if octant.EdgeLength == 1 {
		if isEmpty(a.Get(octant.Minimum)) {
			return nil
		}
		return &node{octant: octant, leaf: true}
	}

	half := octant.EdgeLength / 2
	var children [8]*node
	full := true
	empty := true
	for i := int32(0); i < 8; i++ {
		childMin := octant.Minimum.Add(lattice.P3((i&1)*half, (i>>1&1)*half, (i>>2&1)*half))
		child := buildNode(Octant{Minimum: childMin, EdgeLength: half}, a, isEmpty)
		children[i] = child
		if child == nil {
			full = false
		} else {
			empty = false
			if !child.leaf {
				full = false
			}
		}
	}

	switch {
	case empty:
		return nil
	case full:
		// Every child is a fully occupied leaf: collapse.
		return &node{octant: octant, leaf: true}
	default:
		return &node{octant: octant, children: children}
	}
}

// Octant returns the region the tree covers.
func (t *Octree) Octant() Octant { return t.octant }

// IsEmpty reports whether the tree has no occupied voxels.
func (t *Octree) IsEmpty() bool { return t.root == nil }

// Visit traverses the tree depth-first. The visitor's VisitStop prunes the
// current subtree only.
func (t *Octree) Visit(v Visitor) {
	if t.root != nil {
		visitNode(t.root, v)
	}
}

func visitNode(n *node, v Visitor) {
	status := v.Visit(n.octant.AABB(), &n.octant, n.leaf)
	if status == VisitStop || n.leaf {
		return
	}
	for _, child := range n.children {
		if child != nil {
			visitNode(child, v)
		}
	}
}
