// Package customerrors defines common errors shared by the queue backends,
// the solver and the benchmark harness.
package customerrors

import (
	"errors"
)

var (
	// ErrEmptyQueue is returned by Top and Pop of every queue backend
	// when no elements remain.
	ErrEmptyQueue = errors.New("priority queue is empty")

	// ErrInvalidInput is returned when a matrix, pour event or
	// benchmark configuration can not be used. It is always reported
	// before any queue operation begins.
	ErrInvalidInput = errors.New("invalid input")

	// ErrBackendMismatch is returned by the benchmark when two queue
	// backends computed different volumes for the same matrix.
	ErrBackendMismatch = errors.New("queue backends disagree on volume")

	ErrUnknownBackend = errors.New("unknown queue backend")
)
