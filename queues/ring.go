package queues

import "math/bits"

// Ring is a double-ended window buffer over a circular array whose length is
// always a power of two. Elements enter at the back and leave from the front,
// which is the access pattern of a window sliding along a sequence.
type Ring[T any] struct {
	buf  []T // backing array, len(buf) is a power of two
	head int // index of the front element
	size int // number of stored elements
	mask int // len(buf) - 1
}

// NewRing creates a Ring able to hold at least capacity elements before it
// needs to grow. A non-positive capacity falls back to 16.
func NewRing[T any](capacity int) *Ring[T] {
	if capacity <= 0 {
		capacity = 16
	}
	n := ceilPow2(capacity)
	return &Ring[T]{
		buf:  make([]T, n),
		mask: n - 1,
	}
}

func ceilPow2(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << uint(bits.Len(uint(n-1)))
}

// grow doubles the backing array, unwrapping the stored elements to index 0.
func (r *Ring[T]) grow() {
	n := len(r.buf) << 1
	buf := make([]T, n)
	r.copyTo(buf)
	clear(r.buf)
	r.buf = buf
	r.head = 0
	r.mask = n - 1
}

// copyTo writes the stored elements, front first, into dst and returns the
// number written. dst must have room for Len elements.
func (r *Ring[T]) copyTo(dst []T) int {
	if r.size == 0 {
		return 0
	}
	if r.head+r.size <= len(r.buf) {
		return copy(dst, r.buf[r.head:r.head+r.size])
	}
	// wrapped around
	n := copy(dst, r.buf[r.head:])
	n += copy(dst[n:], r.buf[:(r.head+r.size)&r.mask])
	return n
}

// PushBack appends value at the back.
func (r *Ring[T]) PushBack(value T) {
	if r.size == len(r.buf) {
		r.grow()
	}
	r.buf[(r.head+r.size)&r.mask] = value
	r.size++
}

// PopFront removes and returns the front element.
func (r *Ring[T]) PopFront() (value T, ok bool) {
	if r.size == 0 {
		return value, false
	}
	value = r.buf[r.head]
	var zero T
	r.buf[r.head] = zero // release reference
	r.head = (r.head + 1) & r.mask
	r.size--
	return value, true
}

// DropFront discards up to n elements from the front and returns how many
// were actually removed.
func (r *Ring[T]) DropFront(n int) int {
	if n > r.size {
		n = r.size
	}
	if n <= 0 {
		return 0
	}
	if r.head+n <= len(r.buf) {
		clear(r.buf[r.head : r.head+n])
	} else {
		clear(r.buf[r.head:])
		clear(r.buf[:n-(len(r.buf)-r.head)])
	}
	r.head = (r.head + n) & r.mask
	r.size -= n
	return n
}

// Snapshot returns the stored elements, front first, in a newly allocated
// slice. Later pushes and pops do not affect it.
func (r *Ring[T]) Snapshot() []T {
	out := make([]T, r.size)
	r.copyTo(out)
	return out
}

func (r *Ring[T]) Len() int {
	return r.size
}

func (r *Ring[T]) IsEmpty() bool {
	return r.size == 0
}
