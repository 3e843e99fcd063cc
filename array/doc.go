// Package array provides dense N-dimensional arrays of voxel values backed
// by flat typed buffers (channels). An Array occupies exactly one extent of
// the lattice and supports point access and row-major iteration; it is the
// chunk type stored by the chunkmap package.
//
// Channel exposes a zero-copy raw-byte view of its backing buffer for the
// compression package. That view bypasses the type system: it is only valid
// for element types with no interior pointers, and the resulting bytes are
// not portable across architectures.
package array
