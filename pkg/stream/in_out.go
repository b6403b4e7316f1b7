package stream

import (
	"context"

	"github.com/opt-kit/optkit/pkg/flow"
)

type optionKey string

const workersKey optionKey = "stream_workers"

// WithWorkers stores the default worker count in the context.
func WithWorkers(ctx context.Context, workers int) context.Context {
	return context.WithValue(ctx, workersKey, workers)
}

// Workers reads the worker count from the context, or def when unset.
func Workers(ctx context.Context, def int) int {
	if n, ok := ctx.Value(workersKey).(int); ok && n > 0 {
		return n
	}
	return def
}

// Emit lifts a slice into a channel of ok steps, stopping early on context
// cancellation.
func Emit[T any](ctx context.Context, values []T) <-chan flow.Step[T] {
	out := make(chan flow.Step[T])

	go func() {
		defer close(out)

		for _, v := range values {
			select {
			case out <- flow.Succeed(v):
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

// Collect drains a channel into a slice, stopping early on context
// cancellation.
func Collect[T any](ctx context.Context, in <-chan T) []T {
	res := make([]T, 0)

	for {
		select {
		case v, ok := <-in:
			if !ok {
				return res
			}
			res = append(res, v)
		case <-ctx.Done():
			return res
		}
	}
}

// Finalize reduces a channel of steps to concrete values via branch
// handlers, preserving arrival order.
func Finalize[In, Out any](ctx context.Context, in <-chan flow.Step[In],
	onOk func(ctx context.Context, v In) Out,
	onErr func(ctx context.Context, err error) Out) []Out {

	out := make([]Out, 0)
	for s := range in {
		out = append(out, flow.Finally(ctx, s, onOk, onErr))
	}
	return out
}
