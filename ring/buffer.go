package ring

// Buffer is a fixed-size circular buffer. Once full, every Add overwrites the oldest element.
type Buffer[T any] struct {
	buffer   []T
	capacity int
	head     int // Points to the next write position
	size     int // Current number of elements
}

// NewBuffer creates a new ring buffer with the specified capacity. Capacity must be at least one.
func NewBuffer[T any](capacity int) *Buffer[T] {
	if capacity < 1 {
		panic("ring: capacity must be at least 1")
	}
	return &Buffer[T]{
		buffer:   make([]T, capacity),
		capacity: capacity,
	}
}

// Add inserts a new element into the ring buffer
func (rb *Buffer[T]) Add(v T) {
	rb.buffer[rb.head] = v
	rb.head = (rb.head + 1) % rb.capacity
	if rb.size < rb.capacity {
		rb.size++
	}
}

// At returns the i-th most recent element, where 0 is the newest.
func (rb *Buffer[T]) At(i int) (T, bool) {
	if i < 0 || i >= rb.size {
		var zero T
		return zero, false
	}
	return rb.buffer[(rb.head-1-i+rb.capacity)%rb.capacity], true
}

// All reports whether the buffer is full and every element satisfies f.
func (rb *Buffer[T]) All(f func(T) bool) bool {
	if rb.size < rb.capacity {
		return false
	}
	for _, v := range rb.buffer {
		if !f(v) {
			return false
		}
	}
	return true
}

// Newest copies the elements into dst from newest to oldest and returns the filled slice.
func (rb *Buffer[T]) Newest(dst []T) []T {
	dst = dst[:0]
	for i := 0; i < rb.size; i++ {
		dst = append(dst, rb.buffer[(rb.head-1-i+rb.capacity)%rb.capacity])
	}
	return dst
}

// Fill overwrites every slot with v, leaving the buffer full.
func (rb *Buffer[T]) Fill(v T) {
	for i := range rb.buffer {
		rb.buffer[i] = v
	}
	rb.head = 0
	rb.size = rb.capacity
}

// Size returns the current number of elements in the buffer
func (rb *Buffer[T]) Size() int {
	return rb.size
}

// Capacity returns the maximum capacity of the buffer
func (rb *Buffer[T]) Capacity() int {
	return rb.capacity
}

// Clear removes all elements from the buffer
func (rb *Buffer[T]) Clear() {
	rb.head = 0
	rb.size = 0
}
