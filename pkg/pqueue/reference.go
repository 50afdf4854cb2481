package pqueue

import (
	"container/heap"

	"go-rainwater/pkg/customerrors"
)

type elementHeap []Element

func (h elementHeap) Len() int           { return len(h) }
func (h elementHeap) Less(i, j int) bool { return Less(h[i], h[j]) }
func (h elementHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *elementHeap) Push(x any) {
	*h = append(*h, x.(Element))
}

func (h *elementHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[0 : n-1]
	return x
}

// ReferenceHeap is the baseline backend built on container/heap. The other
// backends are measured against it.
type ReferenceHeap struct {
	h elementHeap
}

func NewReferenceHeap(capacity int) *ReferenceHeap {
	return &ReferenceHeap{h: make(elementHeap, 0, capacity)}
}

func (r *ReferenceHeap) Push(e Element) {
	heap.Push(&r.h, e)
}

func (r *ReferenceHeap) Pop() (Element, error) {
	if len(r.h) == 0 {
		return Element{}, customerrors.ErrEmptyQueue
	}
	return heap.Pop(&r.h).(Element), nil
}

func (r *ReferenceHeap) Top() (Element, error) {
	if len(r.h) == 0 {
		return Element{}, customerrors.ErrEmptyQueue
	}
	return r.h[0], nil
}

func (r *ReferenceHeap) Size() int {
	return r.h.Len()
}

func (r *ReferenceHeap) Empty() bool {
	return r.h.Len() == 0
}
