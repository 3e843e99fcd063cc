package octree

import "github.com/hupe1980/voxelgo/lattice"

// Set is a forest of octrees keyed by the minimum corner of the region each
// tree covers. Visiting the set visits the trees in insertion order, so
// traversals that track a best impact across trees may resolve exact ties
// in favor of the earliest inserted tree.
type Set struct {
	keys  []lattice.Point3i
	trees map[lattice.Point3i]*Octree
}

// NewSet returns an empty set.
func NewSet() *Set {
	return &Set{trees: make(map[lattice.Point3i]*Octree)}
}

// Insert adds a tree keyed by the minimum corner of its octant, replacing
// any tree previously stored under the same key. Empty trees are ignored.
func (s *Set) Insert(t *Octree) {
	if t.IsEmpty() {
		return
	}
	key := t.Octant().Minimum
	if _, ok := s.trees[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.trees[key] = t
}

// Remove drops the tree covering the region with the given minimum corner.
func (s *Set) Remove(key lattice.Point3i) {
	if _, ok := s.trees[key]; !ok {
		return
	}
	delete(s.trees, key)
	for i, k := range s.keys {
		if k == key {
			s.keys = append(s.keys[:i], s.keys[i+1:]...)
			break
		}
	}
}

// Len returns the number of trees in the set.
func (s *Set) Len() int { return len(s.trees) }

// Visit traverses every tree in insertion order with the same visitor.
func (s *Set) Visit(v Visitor) {
	for _, key := range s.keys {
		s.trees[key].Visit(v)
	}
}
