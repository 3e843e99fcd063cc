package geometry

// TOIStatus describes the outcome of the swept sphere-vs-box solver.
type TOIStatus int

const (
	// TOIConverged means the reported time of impact is trustworthy.
	TOIConverged TOIStatus = iota
	// TOINotConverged means the solver ran out of iterations. The result
	// is inconclusive: neither a collision nor the absence of one.
	TOINotConverged
	// TOIPenetrating means the shapes already overlap at t=0 by more
	// than the solver tolerance.
	TOIPenetrating
)

// TOI is the result of a swept sphere-vs-box query.
type TOI struct {
	// TOI is the impact time in units of the sweep velocity.
	TOI float64
	// Witness is the contact point relative to the sphere center at
	// impact time (sphere-local). The world contact point is
	// ray.PointAt(TOI).Add(Witness).
	Witness Vec3
	// Normal is the outward surface normal of the box at the contact
	// point.
	Normal Vec3
	// Status qualifies the result; only TOIConverged results are
	// legitimate impacts.
	Status TOIStatus
}

const (
	toiTolerance     = 1e-9
	toiMaxIterations = 64
)

// SphereAABBTimeOfImpact sweeps a sphere from center along velocity and
// returns the earliest time in [0, maxTOI] at which it touches the box,
// using conservative advancement: each step advances by the current
// separation divided by the closing speed, which can never skip past the
// surface because sphere and box are both convex.
//
// ok is false when the sphere provably never touches the box within maxTOI.
// ok with Status TOINotConverged means the solver gave up before deciding;
// ok with Status TOIPenetrating means the shapes started overlapping.
func SphereAABBTimeOfImpact(center Vec3, radius float64, velocity Vec3, box AABB, maxTOI float64) (TOI, bool) {
	t := 0.0

	for i := 0; i < toiMaxIterations; i++ {
		c := center.Add(velocity.Scale(t))
		closest := box.ClosestPoint(c)
		delta := c.Sub(closest)
		separation := delta.Length() - radius

		if separation < -toiTolerance {
			if t == 0 {
				return TOI{Status: TOIPenetrating}, true
			}
			// Overshot the surface; the last step was computed from a
			// conservative bound, so this indicates a degenerate
			// configuration. Report it as inconclusive.
			return TOI{Status: TOINotConverged}, true
		}

		if separation <= toiTolerance {
			normal := delta.Normalize()
			if normal == (Vec3{}) {
				// Center exactly on the box surface; fall back to the
				// dominant velocity axis.
				normal = dominantAxisNormal(velocity)
			}
			return TOI{
				TOI:     t,
				Witness: closest.Sub(c),
				Normal:  normal,
				Status:  TOIConverged,
			}, true
		}

		closing := -velocity.Dot(delta.Normalize())
		if closing <= 0 {
			// Moving away from (or parallel to) the box: the distance
			// between two convex shapes under linear motion is convex
			// in time, so it can only grow from here.
			return TOI{}, false
		}

		t += separation / closing
		if t > maxTOI {
			return TOI{}, false
		}
	}

	return TOI{Status: TOINotConverged}, true
}

func dominantAxisNormal(velocity Vec3) Vec3 {
	ax, ay, az := abs(velocity.X), abs(velocity.Y), abs(velocity.Z)
	switch {
	case ax >= ay && ax >= az:
		return Vec3{X: -sign(velocity.X)}
	case ay >= az:
		return Vec3{Y: -sign(velocity.Y)}
	default:
		return Vec3{Z: -sign(velocity.Z)}
	}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	return 1
}
