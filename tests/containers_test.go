package tests

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opt-kit/optkit/pkg/flow"
	"github.com/opt-kit/optkit/pkg/opt"
	"github.com/opt-kit/optkit/pkg/res"
	"github.com/opt-kit/optkit/pkg/stream"
)

// TestOptionChainScenario walks the canonical map chain: a present string
// maps through len and strconv.Itoa, an absent one short-circuits.
func TestOptionChainScenario(t *testing.T) {
	o := opt.Some("hello")

	out := opt.Map(opt.Map(o, func(s string) int { return len(s) }), strconv.Itoa)

	v, ok := out.Get()
	require.True(t, ok)
	assert.Equal(t, "5", v)

	lenCalled := false
	none := opt.Map(opt.Map(opt.None[string](), func(s string) int {
		lenCalled = true
		return len(s)
	}), strconv.Itoa)

	assert.True(t, none.IsNone())
	assert.False(t, lenCalled, "len must not be evaluated on the absent chain")
}

// TestResultCrossSwapScenario swaps a success with a failure and checks both
// payloads cross over with the drained slots zeroed.
func TestResultCrossSwapScenario(t *testing.T) {
	a := res.Success[int, string](5)
	b := res.Failure[int]("e")

	a.Swap(&b)

	e, ok := a.GetErr()
	require.True(t, ok)
	assert.Equal(t, "e", e)

	v, ok := b.Get()
	require.True(t, ok)
	assert.Equal(t, 5, v)

	// swapping back restores the original states
	a.Swap(&b)
	assert.True(t, a.IsOk())
	assert.True(t, b.IsErr())
}

// TestOwnershipTransferRoundTrip drives an Option through take/insert/swap
// and checks every prior state comes back out.
func TestOwnershipTransferRoundTrip(t *testing.T) {
	o := opt.Some(1)

	prior := o.Insert(2)
	assert.Equal(t, 1, prior.GetOrZero())

	taken := o.Take()
	assert.Equal(t, 2, taken.GetOrZero())
	assert.True(t, o.IsNone())

	o.Swap(&taken)
	assert.Equal(t, 2, o.GetOrZero())
	assert.True(t, taken.IsNone())
}

// TestPipelineEndToEnd runs a full fan-out pipeline: parse, validate,
// transform, finalize.
func TestPipelineEndToEnd(t *testing.T) {
	ctx := stream.WithWorkers(context.Background(), 2)
	inputs := []string{"10", "7", "oops", ""}

	parsed := stream.Transform(ctx, stream.Emit(ctx, inputs),
		func(ctx context.Context, s flow.Step[string]) flow.Step[int] {
			s = flow.Validate(ctx, s, func(_ context.Context, v string) (bool, string) {
				return v != "", "empty input"
			})
			return flow.Try(ctx, s, func(_ context.Context, v string) (int, error) {
				return strconv.Atoi(v)
			})
		}, 0)

	results := stream.Finalize(ctx, parsed,
		func(_ context.Context, v int) string { return "ok:" + strconv.Itoa(v*2) },
		func(_ context.Context, err error) string { return "invalid" })

	require.Len(t, results, len(inputs))

	valid := 0
	for _, r := range results {
		if r != "invalid" {
			valid++
		}
	}
	assert.Equal(t, 2, valid)
	assert.Contains(t, results, "ok:20")
	assert.Contains(t, results, "ok:14")
}

// TestResultToOptionBridge checks the projections between both containers.
func TestResultToOptionBridge(t *testing.T) {
	r := res.Success[int, string](5)

	doubled := opt.Map(r.Ok(), func(v int) int { return v * 2 })
	assert.Equal(t, 10, doubled.GetOrZero())

	f := res.Failure[int]("bad")
	assert.True(t, f.Ok().IsNone())
	assert.Equal(t, "bad", f.Err().GetOrZero())
}
