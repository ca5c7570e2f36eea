package chunk

// buffer stages up to size elements between pulls. The backing array is
// handed off whole by takeFull and drain, so the buffer never retains a
// reference to elements it no longer owns.
type buffer[V any] struct {
	size   int
	values []V
}

func makeBuffer[V any](size int) buffer[V] {
	return buffer[V]{size: size}
}

// insert writes v into the next free slot. The caller ensures the
// buffer is not full. Storage is allocated on first use, so an adapter
// that is never pulled allocates nothing.
func (b *buffer[V]) insert(v V) {
	if b.values == nil {
		b.values = make([]V, 0, b.size)
	}
	b.values = append(b.values, v)
}

func (b *buffer[V]) full() bool {
	return len(b.values) == b.size
}

// takeFull transfers ownership of the completed group to the caller and
// resets the buffer to empty. The group is clipped so appending to it
// cannot write into storage a later group might use.
func (b *buffer[V]) takeFull() []V {
	values := b.values[:b.size:b.size]
	b.values = nil
	return values
}

// drain consumes the buffer, transferring out however many elements it
// currently holds, in insertion order.
func (b *buffer[V]) drain() []V {
	values := b.values
	b.values = nil
	return values[:len(values):len(values)]
}
