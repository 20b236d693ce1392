// SPDX-License-Identifier: MIT

package aggregate

// number covers the element types of the output buffers.
type number interface {
	~int | ~float64
}

// localBuffer is a worker-private, zero-initialised copy of the window
// [start, start+len(data)) of a shared output vector. Workers own disjoint
// windows, so transfer needs no synchronisation.
type localBuffer[T number] struct {
	shared []T
	start  int
	data   []T
}

func newLocalBuffer[T number](shared []T, start, length int) *localBuffer[T] {
	return &localBuffer[T]{shared: shared, start: start, data: make([]T, length)}
}

// transfer writes the accumulated window into the shared vector, replacing
// whatever it held.
func (b *localBuffer[T]) transfer() {
	copy(b.shared[b.start:b.start+len(b.data)], b.data)
}

// newLocalBuffers builds one localBuffer per shared vector, or nil when
// shared is empty so skipped statistics allocate nothing.
func newLocalBuffers[T number](shared [][]T, start, length int) []*localBuffer[T] {
	if len(shared) == 0 {
		return nil
	}
	out := make([]*localBuffer[T], len(shared))
	for i, s := range shared {
		out[i] = newLocalBuffer(s, start, length)
	}

	return out
}

func transferAll[T number](bufs []*localBuffer[T]) {
	for _, b := range bufs {
		b.transfer()
	}
}
