package collision

import (
	"math"

	"github.com/hupe1980/voxelgo/geometry"
	"github.com/hupe1980/voxelgo/lattice"
	"github.com/hupe1980/voxelgo/octree"
)

// SphereCast finds the earliest voxel of the set hit by a sphere of the
// given radius swept along the ray within maxTOI, subject to pred. A nil
// pred accepts every voxel. The impact's witness point is relative to the
// sphere center at the time of impact.
func SphereCast(
	set *octree.Set,
	radius float64,
	ray geometry.Ray,
	maxTOI float64,
	pred func(lattice.Point3i) bool,
) (VoxelImpact[geometry.TOI], bool) {
	var (
		best  VoxelImpact[geometry.TOI]
		found bool
	)
	bestTOI := math.Inf(1)

	// Everything the swept sphere can touch lies inside the union of its
	// bounding boxes at the start and end of the sweep.
	path := geometry.AABBOfSphere(ray.Origin, radius).
		Merged(geometry.AABBOfSphere(ray.PointAt(maxTOI), radius))

	set.Visit(octree.VisitorFunc(func(aabb geometry.AABB, octant *octree.Octant, isLeaf bool) octree.VisitStatus {
		if !aabb.Intersects(path) {
			return octree.VisitStop
		}

		toi, ok := geometry.SphereAABBTimeOfImpact(ray.Origin, radius, ray.Dir, aabb, maxTOI)
		if !ok {
			// The sphere won't intersect this octant.
			return octree.VisitStop
		}
		if toi.Status != geometry.TOIConverged {
			// The solver could not certify an impact time against this box.
			// Keep descending and hope it does better on the children; a
			// leaf without convergence is not a legitimate impact.
			return octree.VisitContinue
		}

		if isLeaf && toi.TOI < bestTOI {
			// The contact point is the sphere center at the time of impact
			// plus the sphere-local witness.
			contact := ray.PointAt(toi.TOI).Add(toi.Witness)
			point := impactWithLeafOctant(octant, contact, toi.Normal)
			if pred == nil || pred(point) {
				bestTOI = toi.TOI
				best = VoxelImpact[geometry.TOI]{Point: point, Impact: toi}
				found = true
			}
		}

		return octree.VisitContinue
	}))

	return best, found
}
