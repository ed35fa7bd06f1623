package async

import (
	"context"
	"errors"
	"time"
)

// ErrTimeout is returned by AwaitWithTimeout when the future does not
// complete in time. The underlying call keeps running; only the wait is
// abandoned.
var ErrTimeout = errors.New("async: await timed out")

// Future represents the pending result of an asynchronous call.
type Future[T any] struct {
	value T
	err   error
	done  chan struct{}
}

// Go runs fn in its own goroutine and returns a Future for its result.
// A context already cancelled at call time short-circuits without invoking fn.
func Go[T any](ctx context.Context, fn func(context.Context) (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}

	go func() {
		defer close(f.done)

		if err := ctx.Err(); err != nil {
			f.err = err
			return
		}
		f.value, f.err = fn(ctx)
	}()

	return f
}

// Await blocks until the call completes and returns its result.
func (f *Future[T]) Await() (T, error) {
	<-f.done
	return f.value, f.err
}

// AwaitWithTimeout waits for completion up to the given duration, returning
// ErrTimeout when it elapses first.
func (f *Future[T]) AwaitWithTimeout(timeout time.Duration) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-time.After(timeout):
		var zero T
		return zero, ErrTimeout
	}
}

// IsComplete reports completion without blocking.
func (f *Future[T]) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}
