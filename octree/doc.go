// Package octree provides an occupancy octree over cubic voxel regions and
// a visitor-driven traversal used by collision queries.
//
// A tree is built from a dense array with an emptiness predicate. Octants
// that are entirely occupied collapse into a single leaf, so a fully solid
// region of any power-of-two size is one node. Leaves therefore represent
// either a single occupied voxel or a maximal uniformly-occupied block.
//
// A Set groups the octrees of many chunks into one bounding-volume forest
// so a single query can traverse an entire sparse volume.
package octree
