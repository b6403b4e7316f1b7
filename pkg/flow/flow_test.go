package flow

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/opt-kit/optkit/pkg/res"
)

func TestSucceedAndFailWith(t *testing.T) {
	t.Parallel()
	s := Succeed(5)
	if !s.IsOk() || s.Value() != 5 {
		t.Fatalf("expected ok step with 5, got ok=%v val=%v err=%v", s.IsOk(), s.Value(), s.Err())
	}

	boom := errors.New("boom")
	f := FailWith[int](boom)
	if f.IsOk() || !errors.Is(f.Err(), boom) {
		t.Fatalf("expected failed step with boom, got ok=%v err=%v", f.IsOk(), f.Err())
	}
}

func TestIdentitySurvivesPipeline(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	start := Succeed(2)

	out := Map(ctx, Then(ctx, start, func(_ context.Context, v int) res.Result[int, error] {
		return res.Success[int, error](v * 3)
	}), func(_ context.Context, v int) string {
		return strconv.Itoa(v)
	})

	if out.ID() != start.ID() {
		t.Fatalf("derived steps must keep the source id")
	}
	if out.CreatedAt() != start.CreatedAt() {
		t.Fatalf("derived steps must keep the source timestamp")
	}
	if out.Value() != "6" {
		t.Fatalf("expected \"6\", got %q", out.Value())
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	ok := Validate(ctx, Succeed(4), func(_ context.Context, v int) (bool, string) {
		return v%2 == 0, "odd"
	})
	if !ok.IsOk() {
		t.Fatalf("valid input must stay ok, err=%v", ok.Err())
	}

	bad := Validate(ctx, Succeed(3), func(_ context.Context, v int) (bool, string) {
		return v%2 == 0, "odd"
	})
	if bad.IsOk() || bad.Err().Error() != "odd" {
		t.Fatalf("invalid input must fail with the message, got ok=%v err=%v", bad.IsOk(), bad.Err())
	}

	failed := FailWith[int](errors.New("upstream"))
	out := Validate(ctx, failed, func(context.Context, int) (bool, string) {
		t.Fatal("validate must not run on a failed step")
		return false, ""
	})
	if out.Err().Error() != "upstream" {
		t.Fatalf("failed steps must pass through, got %v", out.Err())
	}
}

func TestThen_ShortCircuits(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	boom := errors.New("boom")

	out := Then(ctx, FailWith[int](boom), func(context.Context, int) res.Result[string, error] {
		t.Fatal("onOk must not run on a failed step")
		return res.Success[string, error]("")
	})

	if out.IsOk() || !errors.Is(out.Err(), boom) {
		t.Fatalf("failure must carry across the type change, got ok=%v err=%v", out.IsOk(), out.Err())
	}
}

func TestTry(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := Try(ctx, Succeed("21"), func(_ context.Context, s string) (int, error) {
		return strconv.Atoi(s)
	})
	if !out.IsOk() || out.Value() != 21 {
		t.Fatalf("expected ok 21, got ok=%v val=%v err=%v", out.IsOk(), out.Value(), out.Err())
	}

	bad := Try(ctx, Succeed("x"), func(_ context.Context, s string) (int, error) {
		return strconv.Atoi(s)
	})
	if bad.IsOk() {
		t.Fatalf("a returned error must fail the step")
	}
}

func TestTeeAndFailOnError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	seen := 0
	out := Tee(ctx, Succeed(5), func(_ context.Context, v int) { seen = v })
	if seen != 5 || !out.IsOk() {
		t.Fatalf("Tee must run the side effect and pass the step through")
	}

	Tee(ctx, FailWith[int](errors.New("e")), func(context.Context, int) {
		t.Fatal("side effect must not run on a failed step")
	})

	checked := FailOnError(ctx, Succeed(5), func(_ context.Context, v int) error {
		if v > 3 {
			return errors.New("too big")
		}
		return nil
	})
	if checked.IsOk() || checked.Err().Error() != "too big" {
		t.Fatalf("check error must fail the step, got ok=%v err=%v", checked.IsOk(), checked.Err())
	}
}

func TestRecover(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := Recover(ctx, FailWith[int](errors.New("e")), func(context.Context, error) res.Result[int, error] {
		return res.Success[int, error](1)
	})
	if !out.IsOk() || out.Value() != 1 {
		t.Fatalf("Recover must be able to restore success")
	}

	Recover(ctx, Succeed(2), func(context.Context, error) res.Result[int, error] {
		t.Fatal("onErr must not run on an ok step")
		return res.Success[int, error](0)
	})
}

func TestFinally(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	got := Finally(ctx, Succeed(3),
		func(_ context.Context, v int) string { return strconv.Itoa(v) },
		func(_ context.Context, err error) string { return "err" })
	if got != "3" {
		t.Fatalf("expected \"3\", got %q", got)
	}

	got = Finally(ctx, FailWith[int](errors.New("e")),
		func(_ context.Context, v int) string { return strconv.Itoa(v) },
		func(_ context.Context, err error) string { return "err:" + err.Error() })
	if got != "err:e" {
		t.Fatalf("expected \"err:e\", got %q", got)
	}
}
