// Package collision casts rays and swept spheres against the occupied
// voxels of an octree set.
//
// Both casts run a branch-and-bound traversal: the time of impact against a
// node's bounding box lower-bounds the time of impact against anything in
// its subtree, so subtrees that cannot beat the best impact found so far
// are pruned. A predicate filters which voxels count as hits, letting
// callers skip e.g. non-solid material at the impact point.
package collision
