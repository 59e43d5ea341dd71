// Package machinebus adapts TinyGo machine peripherals to the hal operation
// sets, so an on-chip I2C, SPI or ADC unit can sit behind sharedbus proxies
// on a microcontroller.
//
// All of it builds only under the baremetal tag; on host builds the package
// is empty.
package machinebus
