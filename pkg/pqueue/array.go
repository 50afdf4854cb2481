package pqueue

import "go-rainwater/pkg/customerrors"

// ArrayHeap is a binary min-heap stored in a single slice. Children of
// index i live at 2i+1 and 2i+2.
type ArrayHeap struct {
	heap []Element
}

func NewArrayHeap(capacity int) *ArrayHeap {
	return &ArrayHeap{heap: make([]Element, 0, capacity)}
}

func (h *ArrayHeap) Push(e Element) {
	h.heap = append(h.heap, e)
	h.up(len(h.heap) - 1)
}

func (h *ArrayHeap) Pop() (Element, error) {
	l := len(h.heap)
	if l == 0 {
		return Element{}, customerrors.ErrEmptyQueue
	}

	top := h.heap[0]
	h.heap[0] = h.heap[l-1]
	h.heap = h.heap[:l-1]
	h.down(0)
	return top, nil
}

func (h *ArrayHeap) Top() (Element, error) {
	if len(h.heap) == 0 {
		return Element{}, customerrors.ErrEmptyQueue
	}
	return h.heap[0], nil
}

func (h *ArrayHeap) Size() int {
	return len(h.heap)
}

func (h *ArrayHeap) Empty() bool {
	return len(h.heap) == 0
}

func (h *ArrayHeap) up(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !Less(h.heap[i], h.heap[parent]) {
			break
		}
		h.heap[i], h.heap[parent] = h.heap[parent], h.heap[i]
		i = parent
	}
}

func (h *ArrayHeap) down(i int) {
	size := len(h.heap)
	for {
		l, r := 2*i+1, 2*i+2
		smallest := i

		if l < size && Less(h.heap[l], h.heap[smallest]) {
			smallest = l
		}
		if r < size && Less(h.heap[r], h.heap[smallest]) {
			smallest = r
		}
		if smallest == i {
			return
		}

		h.heap[i], h.heap[smallest] = h.heap[smallest], h.heap[i]
		i = smallest
	}
}
