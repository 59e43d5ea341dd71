// Package hal defines the per-protocol operation sets a shared bus handle
// must satisfy for the sharedbus proxies to forward to it.
//
// The interfaces describe blocking protocol operations only — no clocking,
// addressing or framing lives here, and no implementation either. Backends
// such as periphbus, machinebus and slcan adapt real peripherals to these
// contracts; a driver that accepts them works against a raw handle and a
// sharedbus proxy alike.
package hal
