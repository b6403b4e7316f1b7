package stream

import (
	"context"
	"sync"

	"github.com/opt-kit/optkit/pkg/flow"
)

// Run fans a channel of steps across workers goroutines applying a
// same-type transformation. The output channel closes once every worker has
// drained or the context is cancelled. Workers <= 0 falls back to the
// context-configured count.
func Run[T any](ctx context.Context, in <-chan flow.Step[T],
	apply func(ctx context.Context, s flow.Step[T]) flow.Step[T],
	workers int) <-chan flow.Step[T] {

	return Transform(ctx, in, apply, workers)
}

// Transform fans a channel of steps across workers goroutines applying a
// type-changing transformation.
func Transform[In, Out any](ctx context.Context, in <-chan flow.Step[In],
	apply func(ctx context.Context, s flow.Step[In]) flow.Step[Out],
	workers int) <-chan flow.Step[Out] {

	if workers <= 0 {
		workers = Workers(ctx, 1)
	}

	out := make(chan flow.Step[Out])
	wg := &sync.WaitGroup{}

	for range workers {
		wg.Add(1)
		go drive(ctx, in, out, apply, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

func drive[In, Out any](ctx context.Context, in <-chan flow.Step[In], out chan<- flow.Step[Out],
	apply func(ctx context.Context, s flow.Step[In]) flow.Step[Out], wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case s, ok := <-in:
			if !ok {
				return
			}

			select {
			case out <- apply(ctx, s):
			case <-ctx.Done():
				return
			}
		}
	}
}
