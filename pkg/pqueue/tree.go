package pqueue

import "go-rainwater/pkg/customerrors"

const nilNode = -1

type treeNode struct {
	value Element
	left  int
	right int
}

// TreeHeap is an unbalanced binary search tree keyed by priority. Smaller
// values go left, equal or greater go right, so the minimum is the leftmost
// node. The tree is never rebalanced and degrades to a list on monotonic
// input.
//
// Nodes live in an arena and link to each other by index. A popped node's
// slot goes to the free list and is reused by the next Push.
type TreeHeap struct {
	nodes []treeNode
	free  []int
	root  int
	count int
}

func NewTreeHeap(capacity int) *TreeHeap {
	return &TreeHeap{
		nodes: make([]treeNode, 0, capacity),
		root:  nilNode,
	}
}

func (t *TreeHeap) Push(e Element) {
	idx := t.alloc(e)
	t.count++

	if t.root == nilNode {
		t.root = idx
		return
	}

	cur := t.root
	for {
		n := &t.nodes[cur]
		if Less(e, n.value) {
			if n.left == nilNode {
				n.left = idx
				return
			}
			cur = n.left
		} else {
			if n.right == nilNode {
				n.right = idx
				return
			}
			cur = n.right
		}
	}
}

func (t *TreeHeap) Top() (Element, error) {
	if t.root == nilNode {
		return Element{}, customerrors.ErrEmptyQueue
	}

	cur := t.root
	for t.nodes[cur].left != nilNode {
		cur = t.nodes[cur].left
	}
	return t.nodes[cur].value, nil
}

// Pop unlinks the leftmost node and hands its right subtree to the parent.
func (t *TreeHeap) Pop() (Element, error) {
	if t.root == nilNode {
		return Element{}, customerrors.ErrEmptyQueue
	}

	parent, cur := nilNode, t.root
	for t.nodes[cur].left != nilNode {
		parent, cur = cur, t.nodes[cur].left
	}

	value, right := t.nodes[cur].value, t.nodes[cur].right
	if parent == nilNode {
		t.root = right
	} else {
		t.nodes[parent].left = right
	}

	t.release(cur)
	t.count--
	return value, nil
}

func (t *TreeHeap) Size() int {
	return t.count
}

func (t *TreeHeap) Empty() bool {
	return t.count == 0
}

func (t *TreeHeap) alloc(e Element) int {
	n := treeNode{value: e, left: nilNode, right: nilNode}

	if l := len(t.free); l > 0 {
		idx := t.free[l-1]
		t.free = t.free[:l-1]
		t.nodes[idx] = n
		return idx
	}

	t.nodes = append(t.nodes, n)
	return len(t.nodes) - 1
}

func (t *TreeHeap) release(idx int) {
	t.nodes[idx] = treeNode{left: nilNode, right: nilNode}
	t.free = append(t.free, idx)
}
