// Package pqueue provides min-priority queues of matrix cells. All backends
// share the Queue interface so the flood fill can run on any of them and
// produce the same volume.
package pqueue

import (
	"strings"

	"go-rainwater/pkg/customerrors"

	"github.com/pkg/errors"
)

type Queue interface {
	// Push adds e to the queue.
	Push(e Element)
	// Pop removes and returns the element with the smallest priority.
	// Returns customerrors.ErrEmptyQueue when the queue is empty.
	Pop() (Element, error)
	// Top returns the element with the smallest priority without removing it.
	// Returns customerrors.ErrEmptyQueue when the queue is empty.
	Top() (Element, error)
	Size() int
	Empty() bool
}

type Kind string

const (
	KindReference Kind = "reference"
	KindArray     Kind = "array"
	KindTree      Kind = "tree"
)

// Kinds returns every backend in report order, reference first.
func Kinds() []Kind {
	return []Kind{KindReference, KindArray, KindTree}
}

func (k Kind) String() string {
	return string(k)
}

func ParseKind(name string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Kinds() {
		if k == known {
			return k, nil
		}
	}
	return "", errors.Wrapf(customerrors.ErrUnknownBackend, "'%s'", name)
}

// New returns an empty queue of the given kind.
func New(kind Kind) (Queue, error) {
	switch kind {
	case KindReference:
		return NewReferenceHeap(0), nil
	case KindArray:
		return NewArrayHeap(0), nil
	case KindTree:
		return NewTreeHeap(0), nil
	}
	return nil, errors.Wrapf(customerrors.ErrUnknownBackend, "'%s'", kind)
}
