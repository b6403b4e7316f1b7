// Package stream fans flow steps across worker goroutines. It provides the
// channel plumbing only; the transformation logic comes from package flow.
// Every step is owned by exactly one goroutine at a time, so the containers
// keep their single-owner semantics.
//
// Highlights:
// - Emit/Collect: bridge slices and channels under a context
// - Run: apply a same-type transformation with N workers
// - Transform: apply a type-changing transformation with N workers
// - WithWorkers/Workers: worker-count configuration through the context
package stream
