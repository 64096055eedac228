package client

import (
	"context"
	"errors"

	"go.uber.org/atomic"
)

var ErrNotCompleted = errors.New("future is not completed yet")

// Future holds the outcome of a submitted operation, it completes once
type Future[T any] struct {
	done      chan struct{}
	completed atomic.Bool

	value T
	err   error
}

func newFuture[T any]() *Future[T] {
	return &Future[T]{
		done: make(chan struct{}),
	}
}

// complete returns false if the future was already completed, the value is dropped then
func (f *Future[T]) complete(v T, err error) bool {
	if f.completed.Swap(true) {
		return false
	}

	f.value = v
	f.err = err
	close(f.done)

	return true
}

func (f *Future[T]) isDone() bool {
	return f.completed.Load()
}

// Done is closed once the outcome is known
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Await waits for the outcome, or for ctx to be done.
// A request that never gets an answer only ends through ctx.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Result returns the outcome without waiting, ErrNotCompleted until Done is closed
func (f *Future[T]) Result() (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	default:
		var zero T
		return zero, ErrNotCompleted
	}
}
