package array

import "unsafe"

// Channel is a flat typed buffer holding one value per lattice point of some
// extent, in row-major order. A multi-channel chunk stores several parallel
// channels over the same extent.
//
// The element type T must be a fixed-size value type with no interior
// pointers (integers, floats, or structs thereof); RawBytes reinterprets the
// backing memory directly.
type Channel[T any] struct {
	values []T
}

// NewChannel wraps an existing buffer. The channel takes ownership of values.
func NewChannel[T any](values []T) *Channel[T] {
	return &Channel[T]{values: values}
}

// FillChannel allocates a channel of n elements, every one set to value.
func FillChannel[T any](n int, value T) *Channel[T] {
	values := make([]T, n)
	for i := range values {
		values[i] = value
	}
	return &Channel[T]{values: values}
}

// Len returns the number of elements.
func (c *Channel[T]) Len() int { return len(c.values) }

// Values returns the backing buffer.
func (c *Channel[T]) Values() []T { return c.values }

// Fill sets every element to value.
func (c *Channel[T]) Fill(value T) {
	for i := range c.values {
		c.values[i] = value
	}
}

// Clone returns a deep copy of the channel.
func (c *Channel[T]) Clone() *Channel[T] {
	values := make([]T, len(c.values))
	copy(values, c.values)
	return &Channel[T]{values: values}
}

// RawBytes returns the backing buffer reinterpreted as bytes, without
// copying. The view aliases the channel's memory and covers exactly
// Len() * sizeof(T) bytes. The byte layout is the machine's native layout:
// it ignores endianness and padding, so it must never cross architectures.
func (c *Channel[T]) RawBytes() []byte {
	if len(c.values) == 0 {
		return nil
	}
	size := int(unsafe.Sizeof(c.values[0]))
	return unsafe.Slice((*byte)(unsafe.Pointer(&c.values[0])), len(c.values)*size)
}

// ElementSize returns sizeof(T) in bytes.
func (c *Channel[T]) ElementSize() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}
