package hal

// SPI is the operation set of an SPI bus handle.
//
// Chip-select is not part of the contract: which device the transfer reaches
// is decided by whatever select line the calling driver asserted beforehand.
type SPI interface {
	// Transfer clocks words out on MOSI while overwriting words in place
	// with the bytes read back on MISO (full duplex).
	Transfer(words []byte) error

	// Write clocks words out, discarding the read-back bytes.
	Write(words []byte) error
}
