package geometry

// AABB is an axis-aligned box, [Min, Max] per axis.
type AABB struct {
	Min, Max Vec3
}

// AABBOfSphere returns the box bounding a sphere.
func AABBOfSphere(center Vec3, radius float64) AABB {
	r := Vec3{radius, radius, radius}
	return AABB{Min: center.Sub(r), Max: center.Add(r)}
}

// Intersects reports whether the boxes overlap (touching counts).
func (a AABB) Intersects(b AABB) bool {
	return a.Min.X <= b.Max.X && b.Min.X <= a.Max.X &&
		a.Min.Y <= b.Max.Y && b.Min.Y <= a.Max.Y &&
		a.Min.Z <= b.Max.Z && b.Min.Z <= a.Max.Z
}

// Merged returns the smallest box containing both a and b.
func (a AABB) Merged(b AABB) AABB {
	return AABB{Min: a.Min.Min(b.Min), Max: a.Max.Max(b.Max)}
}

// Contains reports whether p lies inside the box (boundary counts).
func (a AABB) Contains(p Vec3) bool {
	return a.Min.X <= p.X && p.X <= a.Max.X &&
		a.Min.Y <= p.Y && p.Y <= a.Max.Y &&
		a.Min.Z <= p.Z && p.Z <= a.Max.Z
}

// ClosestPoint returns the point of the box nearest to p (p itself when p is
// inside).
func (a AABB) ClosestPoint(p Vec3) Vec3 {
	return p.Max(a.Min).Min(a.Max)
}

// RayIntersection is the full result of a ray-vs-box impact: the time of
// impact and the outward surface normal at the entry point.
type RayIntersection struct {
	TOI    float64
	Normal Vec3
}

// TOIWithRay returns the earliest t in [0, maxTOI] at which the ray touches
// the box, treating the box as solid: a ray starting inside hits at t=0.
// ok is false when there is no intersection within maxTOI.
func (a AABB) TOIWithRay(r Ray, maxTOI float64) (toi float64, ok bool) {
	inter, ok := a.TOIAndNormalWithRay(r, maxTOI)
	return inter.TOI, ok
}

// TOIAndNormalWithRay is TOIWithRay plus the surface normal of the slab the
// ray enters through. For a ray starting inside the box the impact time is 0
// and the normal is that of the (behind-the-origin) entry slab.
func (a AABB) TOIAndNormalWithRay(r Ray, maxTOI float64) (RayIntersection, bool) {
	tmin, tmax := 0.0, maxTOI
	entryAxis, entrySign := -1, 0.0

	mins := [3]float64{a.Min.X, a.Min.Y, a.Min.Z}
	maxs := [3]float64{a.Max.X, a.Max.Y, a.Max.Z}
	origin := [3]float64{r.Origin.X, r.Origin.Y, r.Origin.Z}
	dir := [3]float64{r.Dir.X, r.Dir.Y, r.Dir.Z}

	// Track the unclamped entry time so "starts inside" still yields a
	// sensible entry normal.
	tEntry := mins[0] - 1 // placeholder, replaced on first finite slab
	entryFound := false

	for axis := 0; axis < 3; axis++ {
		if dir[axis] == 0 {
			if origin[axis] < mins[axis] || origin[axis] > maxs[axis] {
				return RayIntersection{}, false
			}
			continue
		}

		inv := 1 / dir[axis]
		t1 := (mins[axis] - origin[axis]) * inv
		t2 := (maxs[axis] - origin[axis]) * inv
		sign := -1.0
		if t1 > t2 {
			t1, t2 = t2, t1
			sign = 1.0
		}

		if !entryFound || t1 > tEntry {
			tEntry = t1
			entryAxis = axis
			entrySign = sign
			entryFound = true
		}

		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
		if tmin > tmax {
			return RayIntersection{}, false
		}
	}

	var normal Vec3
	if entryAxis >= 0 {
		switch entryAxis {
		case 0:
			normal = Vec3{X: entrySign}
		case 1:
			normal = Vec3{Y: entrySign}
		case 2:
			normal = Vec3{Z: entrySign}
		}
	}

	return RayIntersection{TOI: tmin, Normal: normal}, true
}
