package array

import (
	"fmt"

	"github.com/hupe1980/voxelgo/lattice"
)

// Array is a dense lattice map: one value of type T per point of a fixed
// extent, stored row-major in a single channel.
type Array[P lattice.Point[P], T any] struct {
	extent  lattice.Extent[P]
	channel *Channel[T]
}

// New wraps a channel as an array over extent. Panics if the channel length
// does not match the extent's point count.
func New[P lattice.Point[P], T any](extent lattice.Extent[P], channel *Channel[T]) *Array[P, T] {
	if int64(channel.Len()) != extent.NumPoints() {
		panic(fmt.Sprintf("array: channel has %d elements, extent %v has %d points",
			channel.Len(), extent, extent.NumPoints()))
	}
	return &Array[P, T]{extent: extent, channel: channel}
}

// Fill allocates an array over extent with every point set to value.
func Fill[P lattice.Point[P], T any](extent lattice.Extent[P], value T) *Array[P, T] {
	return &Array[P, T]{
		extent:  extent,
		channel: FillChannel(int(extent.NumPoints()), value),
	}
}

// Extent returns the region the array occupies.
func (a *Array[P, T]) Extent() lattice.Extent[P] { return a.extent }

// Channel returns the backing channel.
func (a *Array[P, T]) Channel() *Channel[T] { return a.channel }

// Clone returns a deep copy of the array.
func (a *Array[P, T]) Clone() *Array[P, T] {
	return &Array[P, T]{extent: a.extent, channel: a.channel.Clone()}
}

func (a *Array[P, T]) index(p P) int {
	return p.Sub(a.extent.Minimum).Flatten(a.extent.Shape)
}

// Get returns the value at p. p must lie inside the array's extent.
func (a *Array[P, T]) Get(p P) T {
	return a.channel.values[a.index(p)]
}

// GetMut returns a pointer to the value at p. p must lie inside the array's
// extent.
func (a *Array[P, T]) GetMut(p P) *T {
	return &a.channel.values[a.index(p)]
}

// Set stores value at p. p must lie inside the array's extent.
func (a *Array[P, T]) Set(p P, value T) {
	a.channel.values[a.index(p)] = value
}

// ForEach calls f for every point in the intersection of extent with the
// array's own extent.
func (a *Array[P, T]) ForEach(extent lattice.Extent[P], f func(P, T)) {
	for p := range a.extent.Intersection(extent).Points() {
		f(p, a.channel.values[a.index(p)])
	}
}

// ForEachMut calls f with a pointer to the value for every point in the
// intersection of extent with the array's own extent.
func (a *Array[P, T]) ForEachMut(extent lattice.Extent[P], f func(P, *T)) {
	for p := range a.extent.Intersection(extent).Points() {
		f(p, &a.channel.values[a.index(p)])
	}
}

// FillExtent sets every point in the intersection of extent with the array's
// own extent to value.
func (a *Array[P, T]) FillExtent(extent lattice.Extent[P], value T) {
	a.ForEachMut(extent, func(_ P, v *T) { *v = value })
}
