package sharedbus

import "github.com/codytrey/shared-bus/hal"

// Manager owns the one BusMutex guarding a shared bus handle and vends
// proxies for it. It is the only way to obtain a proxy; destroying the
// manager (letting it go out of scope) is expected to outlive every proxy it
// handed out.
//
// The mutex type M is carried as a type parameter rather than an interface
// field so that capabilities of the concrete mutex — specifically
// [SingleContextMutex] — stay visible to the compiler. That is what lets
// [AcquireSPI] reject cross-context sharing at compile time instead of at
// runtime, and it keeps every proxy call a static dispatch.
type Manager[B any, M BusMutex[B]] struct {
	mutex M
}

// NewManager wraps mutex in a Manager. The bus handle type usually cannot be
// inferred from the mutex value, so callers name it explicitly:
//
//	mgr := sharedbus.NewManager[*periphbus.I2C](mu)
func NewManager[B any, M BusMutex[B]](mutex M) *Manager[B, M] {
	return &Manager[B, M]{mutex: mutex}
}

// AcquireI2C returns an I2C proxy for the manager's bus. Proxies are cheap;
// acquire one per driver rather than sharing a single proxy value.
func AcquireI2C[B hal.I2C, M BusMutex[B]](m *Manager[B, M]) *I2CProxy[B, M] {
	return &I2CProxy[B, M]{mutex: m.mutex}
}

// AcquireSPI returns an SPI proxy for the manager's bus.
//
// It only compiles for managers whose mutex implements [SingleContextMutex].
// SPI sharing across execution contexts is unsound because drivers assert
// chip-select before the mutex is taken (see [SPIProxy]), so the restriction
// is enforced here, at construction, rather than checked at runtime.
func AcquireSPI[B hal.SPI, M SingleContextMutex[B]](m *Manager[B, M]) *SPIProxy[B, M] {
	return &SPIProxy[B, M]{mutex: m.mutex}
}

// AcquireADC returns a one-shot ADC proxy for the manager's bus. The channel
// selector and sample word types cannot be inferred from the manager and are
// named explicitly:
//
//	adc := sharedbus.AcquireADC[machine.ADC, uint16](mgr)
func AcquireADC[C, W any, B hal.OneShot[C, W], M BusMutex[B]](m *Manager[B, M]) *ADCProxy[C, W, B, M] {
	return &ADCProxy[C, W, B, M]{mutex: m.mutex}
}

// AcquireCAN returns a CAN proxy for the manager's bus. The frame type is the
// underlying bus's own representation, named explicitly:
//
//	can := sharedbus.AcquireCAN[hal.Frame](mgr)
func AcquireCAN[F any, B hal.CAN[F], M BusMutex[B]](m *Manager[B, M]) *CANProxy[F, B, M] {
	return &CANProxy[F, B, M]{mutex: m.mutex}
}
