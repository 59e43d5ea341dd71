package bustest

// SPIOp is one recorded SPI operation.
type SPIOp struct {
	Name string // "transfer" or "write"
	W    []byte // copy of the bytes clocked out
}

// SPI is a recording fake SPI bus handle. Response, if set, is what Transfer
// leaves in the caller's buffer.
type SPI struct {
	Ops      []SPIOp
	Response []byte

	TransferErr error
	WriteErr    error
}

func (b *SPI) Transfer(words []byte) error {
	b.Ops = append(b.Ops, SPIOp{Name: "transfer", W: append([]byte(nil), words...)})
	copy(words, b.Response)
	return b.TransferErr
}

func (b *SPI) Write(words []byte) error {
	b.Ops = append(b.Ops, SPIOp{Name: "write", W: append([]byte(nil), words...)})
	return b.WriteErr
}
