package stream

import (
	"context"
	"sort"
	"strconv"
	"testing"

	"github.com/opt-kit/optkit/pkg/flow"
)

func TestEmitAndCollect(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	steps := Collect(ctx, Emit(ctx, []int{1, 2, 3}))

	if len(steps) != 3 {
		t.Fatalf("expected 3 steps, got %d", len(steps))
	}
	for i, s := range steps {
		if !s.IsOk() || s.Value() != i+1 {
			t.Fatalf("step %d: ok=%v val=%v", i, s.IsOk(), s.Value())
		}
	}
}

func TestTransform_FanOut(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	inputs := []string{"1", "2", "bad", "4"}

	out := Transform(ctx, Emit(ctx, inputs), func(ctx context.Context, s flow.Step[string]) flow.Step[int] {
		return flow.Try(ctx, s, func(_ context.Context, v string) (int, error) {
			return strconv.Atoi(v)
		})
	}, 2)

	got := Finalize(ctx, out,
		func(_ context.Context, v int) int { return v },
		func(_ context.Context, err error) int { return -1 })

	sort.Ints(got)
	want := []int{-1, 1, 2, 4}
	if len(got) != len(want) {
		t.Fatalf("expected %d results, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestRun_CancelStopsWorkers(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// the input channel never closes; only cancellation can stop the workers
	in := make(chan flow.Step[int])
	out := Run(ctx, in, func(_ context.Context, s flow.Step[int]) flow.Step[int] {
		return s
	}, 2)

	got := Collect(context.Background(), out)
	if len(got) != 0 {
		t.Fatalf("cancelled pipeline must not deliver results, got %d", len(got))
	}
}

func TestWorkersFromContext(t *testing.T) {
	t.Parallel()
	ctx := WithWorkers(context.Background(), 4)

	if got := Workers(ctx, 1); got != 4 {
		t.Fatalf("expected configured count 4, got %d", got)
	}
	if got := Workers(context.Background(), 2); got != 2 {
		t.Fatalf("expected default count 2, got %d", got)
	}
}
