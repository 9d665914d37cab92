// Package opqueue provides the background runner that executes persistence
// work for optimistic state changes.
//
// Tasks run one at a time on a single worker, in enqueue order, each raced
// against a timeout. A timed-out task still occupies the worker until its
// Run returns, so two tasks never overlap.
//
// A failed task that carries a key is retried with linear backoff
// (attempt × RetryDelay) while the per-key failure counter stays below
// MaxAttempts; after that it is dropped. Success resets the counter.
// A short idle pause separates consecutive tasks.
//
// Tasks sharing a key never overtake each other: while a retry of key K is
// waiting out its backoff, later tasks for K stay queued behind it. Tasks for
// other keys keep running.
//
// Permanent failures (see errs.IsPermanent) are never retried: repeating a
// rejected transition or an oversold reservation cannot succeed.
//
// Every task's OnDone callback is invoked exactly once with the terminal
// outcome. Callbacks must not block.
package opqueue
