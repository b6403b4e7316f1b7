// Package storage contains the low-level slot engines behind opt.Option and
// res.Result. Engines track payload liveness and implement swap/move with
// correct construct/destroy ordering; they trust their callers and perform
// no precondition checks of their own.
//
// Engines:
// - Slot: a raw payload slot with construct/destroy/get primitives
// - Option: slot + liveness flag, four-case swap, draining moves
// - RefSlot: pointer-niche encoding for borrowed references (nil == absent)
// - Result: option engine for the success payload + raw failure slot
// - Uniform: single shared slot for results whose two payload types coincide
package storage
