// Package emu provides functional emulation of the word machine.
package emu

// NumRegisters is the number of general-purpose registers.
const NumRegisters = 8

// RegFile represents the register file.
type RegFile struct {
	// R holds the general-purpose registers.
	R [NumRegisters]int32

	// PC is the program counter, a word address.
	PC uint64
}

// ReadReg reads a register value.
func (r *RegFile) ReadReg(reg uint8) int32 {
	return r.R[reg&(NumRegisters-1)]
}

// WriteReg writes a value to a register.
func (r *RegFile) WriteReg(reg uint8, value int32) {
	r.R[reg&(NumRegisters-1)] = value
}
