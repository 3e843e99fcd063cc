package collision

import (
	"math"

	"github.com/hupe1980/voxelgo/geometry"
	"github.com/hupe1980/voxelgo/lattice"
	"github.com/hupe1980/voxelgo/octree"
)

// VoxelImpact pairs the voxel that was hit with the shape-specific impact
// data describing how it was hit.
type VoxelImpact[I any] struct {
	Point  lattice.Point3i
	Impact I
}

// contactEpsilon nudges a contact point off a face it lies exactly on, so
// flooring lands inside the voxel that was hit instead of its neighbor.
const contactEpsilon = 1e-7

// impactWithLeafOctant resolves which voxel of a leaf octant contains the
// contact point. Single-voxel leaves are unambiguous; for collapsed leaves
// the contact is nudged against the impact normal before flooring.
func impactWithLeafOctant(octant *octree.Octant, contact, normal geometry.Vec3) lattice.Point3i {
	if octant.EdgeLength == 1 {
		return octant.Minimum
	}
	nudged := contact.Sub(normal.Scale(contactEpsilon))
	return voxelContainingPoint(nudged)
}

func voxelContainingPoint(p geometry.Vec3) lattice.Point3i {
	return lattice.P3(
		int32(math.Floor(p.X)),
		int32(math.Floor(p.Y)),
		int32(math.Floor(p.Z)),
	)
}
