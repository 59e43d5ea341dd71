// Package periphbus adapts periph.io buses on host Linux to the hal
// operation sets, so a kernel-exposed I2C or SPI controller can sit behind
// sharedbus proxies.
//
// The adapters are thin: every hal operation maps to exactly one periph.io
// transaction and every error is periph.io's own. Chip-select on SPI is
// whatever the connection was opened with; drivers that toggle their own
// select line do so through GPIO, outside this package.
package periphbus
