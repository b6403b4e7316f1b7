package flow

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/opt-kit/optkit/pkg/res"
)

// Step is a pipeline stage outcome: a Result in the error domain plus the
// identity of the value travelling through the pipeline. Derived steps keep
// the id and createdAt of the step they came from.
type Step[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	result    res.Result[T, error]
}

// Succeed starts a step carrying v.
func Succeed[T any](v T) Step[T] {
	return From(res.Success[T, error](v))
}

// FailWith starts a step carrying err.
func FailWith[T any](err error) Step[T] {
	return From(res.Failure[T](err))
}

// From wraps an existing Result into a fresh step.
func From[T any](r res.Result[T, error]) Step[T] {
	return Step[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		result:    r,
	}
}

// derive carries the source step's identity onto a new result.
func derive[In, Out any](from Step[In], r res.Result[Out, error]) Step[Out] {
	return Step[Out]{
		id:        from.id,
		createdAt: from.createdAt,
		result:    r,
	}
}

func (s Step[T]) ID() uuid.UUID {
	return s.id
}

func (s Step[T]) CreatedAt() time.Time {
	return s.createdAt
}

func (s Step[T]) Result() res.Result[T, error] {
	return s.result
}

func (s Step[T]) IsOk() bool {
	return s.result.IsOk()
}

// Err returns the failure payload, or nil on the success branch.
func (s Step[T]) Err() error {
	e, _ := s.result.GetErr()
	return e
}

// Value returns the success payload, or the zero value on the failure branch.
func (s Step[T]) Value() T {
	return s.result.GetOr(*new(T))
}

// Validate keeps the step when validate accepts the value, otherwise fails
// with the reported message. Failed steps pass through untouched.
func Validate[T any](ctx context.Context, in Step[T],
	validate func(ctx context.Context, v T) (valid bool, errMsg string)) Step[T] {

	v, ok := in.result.Get()
	if !ok {
		return in
	}
	if valid, errMsg := validate(ctx, v); !valid {
		return derive(in, res.Failure[T](errors.New(errMsg)))
	}
	return in
}

// Then moves from Step[In] to Step[Out] through a result-returning function.
// The failure branch short-circuits without invoking onOk.
func Then[In, Out any](ctx context.Context, in Step[In],
	onOk func(ctx context.Context, v In) res.Result[Out, error]) Step[Out] {

	if v, ok := in.result.Get(); ok {
		return derive(in, onOk(ctx, v))
	}
	return derive(in, res.Failure[Out](in.Err()))
}

// Map transforms the successful value. The failure branch short-circuits.
func Map[In, Out any](ctx context.Context, in Step[In],
	onOk func(ctx context.Context, v In) Out) Step[Out] {

	if v, ok := in.result.Get(); ok {
		return derive(in, res.Success[Out, error](onOk(ctx, v)))
	}
	return derive(in, res.Failure[Out](in.Err()))
}

// Try calls a (value, error) function and converts a non-nil error into the
// failure branch. The failure branch short-circuits.
func Try[In, Out any](ctx context.Context, in Step[In],
	onTry func(ctx context.Context, v In) (Out, error)) Step[Out] {

	if v, ok := in.result.Get(); ok {
		return derive(in, res.FromError(onTry(ctx, v)))
	}
	return derive(in, res.Failure[Out](in.Err()))
}

// Tee runs a side effect on the success branch and passes the step through.
func Tee[T any](ctx context.Context, in Step[T],
	onOk func(ctx context.Context, v T)) Step[T] {

	if v, ok := in.result.Get(); ok {
		onOk(ctx, v)
	}
	return in
}

// FailOnError turns the step into a failure when check reports an error for
// the successful value.
func FailOnError[T any](ctx context.Context, in Step[T],
	check func(ctx context.Context, v T) error) Step[T] {

	if v, ok := in.result.Get(); ok {
		if err := check(ctx, v); err != nil {
			return derive(in, res.Failure[T](err))
		}
	}
	return in
}

// Recover runs on the failure branch only and may restore the step to
// success. The success branch passes through untouched.
func Recover[T any](ctx context.Context, in Step[T],
	onErr func(ctx context.Context, err error) res.Result[T, error]) Step[T] {

	if in.IsOk() {
		return in
	}
	return derive(in, onErr(ctx, in.Err()))
}

// Finally collapses the step into a concrete value via branch handlers.
func Finally[In, Out any](ctx context.Context, in Step[In],
	onOk func(ctx context.Context, v In) Out,
	onErr func(ctx context.Context, err error) Out) Out {

	if v, ok := in.result.Get(); ok {
		return onOk(ctx, v)
	}
	return onErr(ctx, in.Err())
}
