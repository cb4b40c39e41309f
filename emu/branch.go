package emu

// BranchUnit implements the branch instructions.
type BranchUnit struct {
	regFile *RegFile
}

// NewBranchUnit creates a new BranchUnit connected to the given register
// file.
func NewBranchUnit(regFile *RegFile) *BranchUnit {
	return &BranchUnit{regFile: regFile}
}

// BEQ adds offset to the PC when regA equals regB. The PC must already
// point at the next instruction.
func (b *BranchUnit) BEQ(regA, regB uint8, offset int16) {
	if b.regFile.ReadReg(regA) == b.regFile.ReadReg(regB) {
		b.regFile.PC = uint64(int64(b.regFile.PC) + int64(offset))
	}
}
