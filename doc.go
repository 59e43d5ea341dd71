// Package sharedbus lets multiple independent device drivers share a single
// physical communication bus (I2C, SPI, ADC or CAN) that hardware permits
// only one logical owner of.
//
// Access to the bus handle is gated by a [BusMutex], an exclusion primitive
// supplied by the caller for whatever concurrency domain the application runs
// in (OS threads, interrupt contexts, a single-threaded cooperative
// scheduler). A [Manager] owns the mutex for the lifetime of the application
// and hands out lightweight proxy objects. Each proxy exposes the same
// operation set as a raw bus handle for its protocol, so drivers written
// against the hal contracts work against a proxy without changes:
//
//	mgr := sharedbus.NewManager[*periphbus.I2C](mu)
//	sensorA := sharedbus.AcquireI2C(mgr)
//	sensorB := sharedbus.AcquireI2C(mgr)
//
// Every proxy operation acquires the mutex, runs exactly one operation on the
// shared bus handle, releases the mutex and returns the result untouched.
// The proxies add no buffering, queuing, retry or error translation; they
// only serialize access.
//
// Two proxies come with caveats. [SPIProxy] may only be shared within a
// single execution context because chip-select is asserted by the driver
// before the mutex is taken; see its documentation. [ADCProxy] converts the
// non-blocking one-shot contract into a busy-wait inside the mutex; a read
// stalls the caller, and every other sharer, for the full sample-acquisition
// time.
package sharedbus
