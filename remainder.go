package chunk

import "iter"

// Remainder iterates over the elements left after the last full group.
// It is created by Chunks.Remainder; a nil Remainder behaves as an
// empty sequence.
type Remainder[V any] struct {
	values []V
	offset int
}

// Next returns the next leftover element in source order. Once it
// returns false it returns false forever. Each slot is vacated as it is
// handed out, so the remainder keeps no reference to yielded elements.
func (r *Remainder[V]) Next() (V, bool) {
	var zero V
	if r == nil || r.offset == len(r.values) {
		return zero, false
	}
	v := r.values[r.offset]
	r.values[r.offset] = zero
	r.offset++
	return v, true
}

// Len reports how many leftover elements have not been yielded yet.
func (r *Remainder[V]) Len() int {
	if r == nil {
		return 0
	}
	return len(r.values) - r.offset
}

// Seq returns the remaining leftover elements as a range function.
// Ranging over it advances the same cursor Next does.
func (r *Remainder[V]) Seq() iter.Seq[V] {
	return func(yield func(V) bool) {
		for {
			v, ok := r.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}
