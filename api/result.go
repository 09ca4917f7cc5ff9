package api

import "context"

// Result carries the single eventual value of an asynchronous call
type Result[T any] struct {
	Value T
	Err   error
}

// Go runs fn on its own goroutine. The returned channel yields exactly one
// Result and is then closed.
func Go[T any](ctx context.Context, fn func(context.Context) (T, error)) <-chan Result[T] {
	ch := make(chan Result[T], 1)
	go func() {
		defer close(ch)
		v, err := fn(ctx)
		ch <- Result[T]{Value: v, Err: err}
	}()
	return ch
}

// callback adapts fn to completion-callback style
func callback[T any](ctx context.Context, fn func(context.Context) (T, error), done func(T, error)) {
	go func() {
		r := <-Go(ctx, fn)
		if done != nil {
			done(r.Value, r.Err)
		}
	}()
}
