// SPDX-License-Identifier: MIT

// Package dispatch runs batches of independent, pure computations on a
// bounded set of goroutines and hands back every result in submission
// order.
//
// A batch is n tasks identified by index 0..n-1. Map blocks until the whole
// batch has finished (barrier), stores result i at position i, and never
// drops or reorders tasks. The first task error, or cancellation of the
// caller's context, aborts the batch: no partial results are returned.
//
// A Pool only carries the worker bound; it holds no goroutines between
// batches, so one Pool may be reused by many sequential or concurrent
// callers without shared mutable state.
package dispatch
