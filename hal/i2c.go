package hal

// I2CWriter writes raw bytes to an addressed device.
type I2CWriter interface {
	// Write sends w to the device at the 7-bit address addr.
	Write(addr byte, w []byte) error
}

// I2CReader reads raw bytes from an addressed device.
type I2CReader interface {
	// Read fills r from the device at the 7-bit address addr.
	Read(addr byte, r []byte) error
}

// I2CWriterReader performs a write immediately followed by a read, with a
// repeated start and no stop condition in between.
type I2CWriterReader interface {
	// WriteRead sends w to the device at addr, then fills r from it, as a
	// single bus transaction.
	WriteRead(addr byte, w, r []byte) error
}

// I2C is the full operation set of an I2C bus handle.
type I2C interface {
	I2CWriter
	I2CReader
	I2CWriterReader
}
