package collision

import (
	"math"

	"github.com/hupe1980/voxelgo/geometry"
	"github.com/hupe1980/voxelgo/lattice"
	"github.com/hupe1980/voxelgo/octree"
)

// RayCast finds the earliest voxel of the set hit by the ray within maxTOI
// whose position satisfies pred. A nil pred accepts every voxel. The second
// return value reports whether any voxel was hit.
func RayCast(
	set *octree.Set,
	ray geometry.Ray,
	maxTOI float64,
	pred func(lattice.Point3i) bool,
) (VoxelImpact[geometry.RayIntersection], bool) {
	var (
		best  VoxelImpact[geometry.RayIntersection]
		found bool
	)
	bestTOI := math.Inf(1)

	set.Visit(octree.VisitorFunc(func(aabb geometry.AABB, octant *octree.Octant, isLeaf bool) octree.VisitStatus {
		toi, ok := aabb.TOIWithRay(ray, maxTOI)
		if !ok {
			// No impact with any voxels in this octant.
			return octree.VisitStop
		}
		if toi >= bestTOI {
			// The impact with any voxels in this octant can't be earliest.
			return octree.VisitStop
		}
		if !isLeaf {
			return octree.VisitContinue
		}

		// Computing the normal is more expensive than just the impact time,
		// so it only happens at leaves.
		impact, ok := aabb.TOIAndNormalWithRay(ray, maxTOI)
		if !ok {
			return octree.VisitContinue
		}
		contact := ray.PointAt(impact.TOI)
		point := impactWithLeafOctant(octant, contact, impact.Normal)
		if pred != nil && !pred(point) {
			return octree.VisitContinue
		}

		bestTOI = impact.TOI
		best = VoxelImpact[geometry.RayIntersection]{Point: point, Impact: impact}
		found = true

		return octree.VisitContinue
	}))

	return best, found
}
