// Package task runs one unit of work on its own goroutine and lets callers
// wait for, or give up waiting on, its result.
package task

import (
	"context"
	"fmt"
)

// Task is a running or finished unit of work producing a T.
type Task[T any] struct {
	cancel context.CancelFunc
	done   chan struct{}
	value  T
	err    error
}

// Run starts fn on a new goroutine with a context derived from ctx.
// A panic inside fn finishes the task with an error.
func Run[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) *Task[T] {
	ctx, cancel := context.WithCancel(ctx)
	t := &Task[T]{cancel: cancel, done: make(chan struct{})}
	go func() {
		defer close(t.done)
		defer cancel()
		defer func() {
			if r := recover(); r != nil {
				t.err = fmt.Errorf("task panicked: %v", r)
			}
		}()
		t.value, t.err = fn(ctx)
	}()
	return t
}

// Done is closed once the task has finished.
func (t *Task[T]) Done() <-chan struct{} { return t.done }

// Wait blocks until the task finishes or ctx is done. Giving up on the wait
// does not stop the task.
func (t *Task[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-t.done:
		return t.value, t.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Result reports the outcome without blocking; ok is false while running.
func (t *Task[T]) Result() (value T, ok bool, err error) {
	select {
	case <-t.done:
		return t.value, true, t.err
	default:
		var zero T
		return zero, false, nil
	}
}

// Cancel cancels the context passed to the work function.
func (t *Task[T]) Cancel() { t.cancel() }
