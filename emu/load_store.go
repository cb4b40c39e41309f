package emu

import "fmt"

// LoadStoreUnit implements the load and store instructions.
type LoadStoreUnit struct {
	regFile *RegFile
	port    MemoryPort
	size    uint64
}

// NewLoadStoreUnit creates a new LoadStoreUnit that reaches a memory of
// size words through port.
func NewLoadStoreUnit(regFile *RegFile, port MemoryPort, size int) *LoadStoreUnit {
	return &LoadStoreUnit{
		regFile: regFile,
		port:    port,
		size:    uint64(size),
	}
}

// LW performs regB = mem[regA + offset].
func (lsu *LoadStoreUnit) LW(regA, regB uint8, offset int16) error {
	addr, err := lsu.address(regA, offset)
	if err != nil {
		return err
	}

	lsu.regFile.WriteReg(regB, lsu.port.Read(addr))
	return nil
}

// SW performs mem[regA + offset] = regB.
func (lsu *LoadStoreUnit) SW(regA, regB uint8, offset int16) error {
	addr, err := lsu.address(regA, offset)
	if err != nil {
		return err
	}

	lsu.port.Write(addr, lsu.regFile.ReadReg(regB))
	return nil
}

func (lsu *LoadStoreUnit) address(regA uint8, offset int16) (uint64, error) {
	addr := int64(lsu.regFile.ReadReg(regA)) + int64(offset)
	if addr < 0 || uint64(addr) >= lsu.size {
		return 0, fmt.Errorf("data address %d out of range [0, %d)",
			addr, lsu.size)
	}
	return uint64(addr), nil
}
