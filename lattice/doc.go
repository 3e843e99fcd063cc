// Package lattice provides integer lattice (voxel grid) coordinates and
// axis-aligned integer boxes for 2 and 3 dimensions.
//
// The Point constraint abstracts the per-axis arithmetic (componentwise
// ops, bit shifts, masks) shared by Point2i and Point3i so that the chunk
// indexing and storage layers can be written once, generically. Iteration
// over boxes is always row-major: the X axis varies fastest, then Y, then Z.
package lattice
