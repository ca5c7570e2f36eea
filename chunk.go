// Package chunk implements fixed-size chunking of range functions.
//
// Chunk adapts any iter.Seq[V] into a sequence of groups holding
// exactly n consecutive elements of the source. Elements left over
// after the last full group are not dropped: converting the exhausted
// adapter with Remainder yields them one at a time.
package chunk

import "iter"

// Chunks pulls elements from a source sequence and emits them as groups
// of exactly size elements, in source order. Elements are pulled one at
// a time and only as needed to fill the group being requested.
//
// A Chunks must not be used again after calling Remainder.
type Chunks[V any] struct {
	seq      iter.Seq[V]
	size     int
	next     func() (V, bool)
	stop     func()
	buf      buffer[V]
	done     bool
	consumed bool
}

// Chunk returns an adapter producing groups of exactly size elements of
// seq. The source is not touched until the first pull.
//
// Chunk panics if size is less than 1: a zero chunk size would describe
// an infinite sequence of empty groups, which is never what the caller
// meant.
func Chunk[V any](size int, seq iter.Seq[V]) *Chunks[V] {
	if size < 1 {
		panic("chunk: size must be at least 1")
	}
	return &Chunks[V]{seq: seq, size: size, buf: makeBuffer[V](size)}
}

// Next returns the next group of exactly size elements. It pulls from
// the source until the group fills, and returns false if the source is
// exhausted first; from that point on Next always returns false, and
// the elements buffered before exhaustion are available through
// Remainder only.
func (c *Chunks[V]) Next() ([]V, bool) {
	if c.consumed {
		panic("chunk: Next called after Remainder")
	}
	if c.done {
		return nil, false
	}
	if c.next == nil {
		c.next, c.stop = iter.Pull(c.seq)
		c.seq = nil
	}
	for {
		v, ok := c.next()
		if !ok {
			c.done = true
			c.stop()
			return nil, false
		}
		c.buf.insert(v)
		if c.buf.full() {
			return c.buf.takeFull(), true
		}
	}
}

// Seq returns the adapter's groups as a range function. Ranging over it
// advances the same state Next does, so breaking out early and resuming
// with Next is valid.
func (c *Chunks[V]) Seq() iter.Seq[[]V] {
	return func(yield func([]V) bool) {
		for {
			values, ok := c.Next()
			if !ok || !yield(values) {
				return
			}
		}
	}
}

// Stop releases the underlying source without consuming the rest of it.
// The adapter is exhausted afterward. Stop is idempotent and safe to
// call before the first pull.
func (c *Chunks[V]) Stop() {
	c.done = true
	c.seq = nil
	if c.stop != nil {
		c.stop()
	}
}

// Remainder consumes the adapter, releasing the source, and returns the
// elements that were buffered but never filled a group, or nil if there
// are none. The result is non-nil only once the source is exhausted
// with a partial group pending: a source whose length divides evenly
// into groups leaves no remainder, and before exhaustion nothing is
// buffered between pulls. The adapter must not be used afterward.
func (c *Chunks[V]) Remainder() *Remainder[V] {
	if c.consumed {
		panic("chunk: Remainder called twice")
	}
	c.consumed = true
	c.Stop()
	values := c.buf.drain()
	if len(values) == 0 {
		return nil
	}
	return &Remainder[V]{values: values}
}
