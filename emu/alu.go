package emu

// ALU implements the arithmetic and logic instructions.
type ALU struct {
	regFile *RegFile
}

// NewALU creates a new ALU connected to the given register file.
func NewALU(regFile *RegFile) *ALU {
	return &ALU{regFile: regFile}
}

// ADD performs dest = regA + regB, wrapping on overflow.
func (a *ALU) ADD(dest, regA, regB uint8) {
	a.regFile.WriteReg(dest, a.regFile.ReadReg(regA)+a.regFile.ReadReg(regB))
}

// NAND performs dest = ^(regA & regB).
func (a *ALU) NAND(dest, regA, regB uint8) {
	a.regFile.WriteReg(dest, ^(a.regFile.ReadReg(regA) & a.regFile.ReadReg(regB)))
}
