// Package geometry provides the small amount of continuous (floating-point)
// math needed for collision queries against voxel volumes: vectors, rays,
// axis-aligned boxes, ray-vs-box time of impact, and a swept sphere-vs-box
// time-of-impact solver based on conservative advancement.
package geometry
