package bustest

import "sync"

// Mutex is a cross-goroutine BusMutex for tests, built on sync.Mutex. It
// counts acquisitions so tests can assert exactly how many lock holds an
// operation took. Acquisition order is whatever sync.Mutex provides; no
// fairness is added.
type Mutex[B any] struct {
	mu           sync.Mutex
	bus          B
	acquisitions int
}

// NewMutex wraps bus in a Mutex. The mutex owns the handle from here on;
// tests interact with it only through Lock closures (or by keeping their own
// pointer, for fakes that need inspecting afterwards).
func NewMutex[B any](bus B) *Mutex[B] {
	return &Mutex[B]{bus: bus}
}

// Lock runs fn with exclusive access to the bus handle.
func (m *Mutex[B]) Lock(fn func(bus B)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.acquisitions++
	fn(m.bus)
}

// Acquisitions returns how many times Lock has run a closure.
func (m *Mutex[B]) Acquisitions() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.acquisitions
}

// SimpleMutex is a single-context BusMutex for tests: it performs no real
// locking, panics on reentrant use, and carries the SingleContext marker so
// it can vend SPI proxies.
type SimpleMutex[B any] struct {
	bus          B
	held         bool
	acquisitions int
}

// NewSimpleMutex wraps bus in a SimpleMutex.
func NewSimpleMutex[B any](bus B) *SimpleMutex[B] {
	return &SimpleMutex[B]{bus: bus}
}

// Lock runs fn with access to the bus handle. It must only ever be called
// from one execution context; reentrant use panics.
func (m *SimpleMutex[B]) Lock(fn func(bus B)) {
	if m.held {
		panic("bustest: reentrant SimpleMutex.Lock")
	}
	m.held = true
	defer func() { m.held = false }()
	m.acquisitions++
	fn(m.bus)
}

// Acquisitions returns how many times Lock has run a closure.
func (m *SimpleMutex[B]) Acquisitions() int {
	return m.acquisitions
}

// SingleContext marks SimpleMutex as safe only for single-context use.
func (m *SimpleMutex[B]) SingleContext() {}
