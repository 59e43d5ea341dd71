package sharedbus

// BusMutex is the exclusion primitive gating all access to a shared bus
// handle. An implementation owns (or borrows for its lifetime) exactly one
// bus handle of type B and arbitrates access to it.
//
// Implementations are supplied by the application for its concurrency domain:
// a sync.Mutex wrapper for goroutines, an interrupt-masking critical section
// on bare metal, or a plain cell on a single-threaded cooperative scheduler.
// This package deliberately ships none of them.
type BusMutex[B any] interface {
	// Lock runs fn with exclusive access to the bus handle.
	//
	// Implementations must call fn exactly once before returning: at most
	// one invocation may be in flight at any time across all callers, and
	// fn must never be silently dropped. The closure's outcome is the
	// caller's outcome; Lock itself reports nothing.
	Lock(fn func(bus B))
}

// SingleContextMutex marks a BusMutex implementation as only ever being used
// from a single execution context (one goroutine, one cooperative task). Such
// a mutex never has to guard against preemption, and only such a mutex may
// vend an [SPIProxy] — see [AcquireSPI].
type SingleContextMutex[B any] interface {
	BusMutex[B]

	// SingleContext is a marker with no behavior. Implementing it is a
	// promise that Lock is never entered from two contexts concurrently.
	SingleContext()
}
