package res

import "errors"

var (
	// ErrUnwrapFailure reports an unwrap of the success payload on a
	// Result that carries a failure.
	ErrUnwrapFailure = errors.New("res: unwrap of a failure Result")

	// ErrUnwrapSuccess reports an unwrap of the failure payload on a
	// Result that carries a success.
	ErrUnwrapSuccess = errors.New("res: unwrap_err of a success Result")
)
