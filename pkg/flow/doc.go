// Package flow contains context-aware, error-domain pipeline helpers over
// res.Result[T, error]. Each Step carries an id and creation timestamp that
// survive every transformation, so a value can be traced end to end through
// a pipeline.
//
// Highlights:
// - Succeed/FailWith/From: construct Step[T]
// - Validate: apply validation producing a failure on invalid input
// - Then: move from Step[In] to Step[Out] via a result-returning function
// - Map/Try: transform the successful value, with or without an error path
// - Tee/FailOnError: side effects and post-hoc checks on success
// - Finally: reduce to a concrete value via success/error handlers
// - IsCancellation/Errs/IsNil: error inspection helpers
package flow
