// Package await provides the deferred-computation side of specialization:
// a Future[T] promise and a Runner whose steps may suspend.
//
// A Future resolves exactly once. Await blocks until resolution or until
// the caller's context is done; there is no timeout and no cancellation
// machinery beyond that context. With already-resolved futures (Ready),
// results are identical to the synchronous packages.
//
// Key constructs:
// - Go/Ready/Reject: create futures
// - Await/Resolved: consume them
// - NewRunner/Specialize*/Run: deferred twin of package runner
// - Defer: run a composed chain as a Future
package await
