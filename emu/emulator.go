package emu

import (
	"fmt"
	"io"
	"os"

	"github.com/sarchlab/lcsim/cache"
	"github.com/sarchlab/lcsim/insts"
)

// StepResult represents the result of executing a single instruction.
type StepResult struct {
	// Halted is true if the instruction was a halt.
	Halted bool

	// Err is set if an error occurred during execution.
	Err error
}

// Emulator executes instructions functionally. Instruction fetches and data
// accesses go through the cache when one is attached.
type Emulator struct {
	regFile *RegFile
	memory  *Memory
	cache   *cache.Cache
	port    MemoryPort
	decoder *insts.Decoder

	// Execution units
	alu        *ALU
	lsu        *LoadStoreUnit
	branchUnit *BranchUnit

	// I/O
	stdout    io.Writer
	dumpState bool

	// Execution state
	instructionCount uint64
	maxInstructions  uint64 // 0 means no limit
}

// EmulatorOption is a functional option for configuring the Emulator.
type EmulatorOption func(*Emulator)

// WithStdout sets a custom writer for state dumps.
func WithStdout(w io.Writer) EmulatorOption {
	return func(e *Emulator) {
		e.stdout = w
	}
}

// WithCache routes memory accesses through c. A nil cache means direct
// memory access.
func WithCache(c *cache.Cache) EmulatorOption {
	return func(e *Emulator) {
		e.cache = c
	}
}

// WithStateDump prints the machine state before every instruction.
func WithStateDump(enabled bool) EmulatorOption {
	return func(e *Emulator) {
		e.dumpState = enabled
	}
}

// WithMaxInstructions sets the maximum number of instructions to execute.
// A value of 0 means no limit.
func WithMaxInstructions(max uint64) EmulatorOption {
	return func(e *Emulator) {
		e.maxInstructions = max
	}
}

// NewEmulator creates a new emulator with zeroed registers and memory.
func NewEmulator(opts ...EmulatorOption) *Emulator {
	e := &Emulator{
		regFile: &RegFile{},
		memory:  NewMemory(),
		decoder: insts.NewDecoder(),
		stdout:  os.Stdout,
	}

	for _, opt := range opts {
		opt(e)
	}

	e.connect()

	return e
}

// connect wires the execution units to the current memory.
func (e *Emulator) connect() {
	if e.cache != nil {
		e.port = NewCachedPort(e.cache, e.memory)
	} else {
		e.port = NewDirectPort(e.memory)
	}

	e.alu = NewALU(e.regFile)
	e.lsu = NewLoadStoreUnit(e.regFile, e.port, e.memory.Size())
	e.branchUnit = NewBranchUnit(e.regFile)
}

// RegFile returns the emulator's register file.
func (e *Emulator) RegFile() *RegFile {
	return e.regFile
}

// Memory returns the emulator's memory.
func (e *Emulator) Memory() *Memory {
	return e.memory
}

// Cache returns the attached cache, or nil.
func (e *Emulator) Cache() *cache.Cache {
	return e.cache
}

// InstructionCount returns the number of instructions executed.
func (e *Emulator) InstructionCount() uint64 {
	return e.instructionCount
}

// LoadProgram loads a program at address 0 and sets the PC to 0.
func (e *Emulator) LoadProgram(program []int32) error {
	if err := e.memory.LoadProgram(program); err != nil {
		return fmt.Errorf("failed to load program: %w", err)
	}
	e.regFile.PC = 0
	return nil
}

// Reset clears registers, memory, the attached cache and the instruction
// count.
func (e *Emulator) Reset() {
	e.regFile = &RegFile{}
	e.memory = NewMemory()
	e.instructionCount = 0
	if e.cache != nil {
		e.cache.Reset()
	}
	e.connect()
}

// Flush writes every dirty cache block back to memory. It does nothing
// without a cache.
func (e *Emulator) Flush() {
	if p, ok := e.port.(*CachedPort); ok {
		p.Flush()
	}
}

// Step executes a single instruction.
// Returns a StepResult indicating whether execution should continue.
func (e *Emulator) Step() StepResult {
	if e.maxInstructions > 0 && e.instructionCount >= e.maxInstructions {
		return StepResult{
			Err: fmt.Errorf("max instructions reached"),
		}
	}

	pc := e.regFile.PC
	if pc >= uint64(e.memory.Size()) {
		return StepResult{
			Err: fmt.Errorf("pc %d out of range [0, %d)", pc, e.memory.Size()),
		}
	}

	if e.dumpState {
		e.DumpState(e.stdout)
	}

	// 1. Fetch
	word := e.port.Read(pc)
	e.regFile.PC++

	// 2. Decode
	inst := e.decoder.Decode(word)

	// 3. Execute
	result := e.execute(inst)
	if result.Err != nil {
		result.Err = fmt.Errorf("%v at pc %d: %w", inst, pc, result.Err)
		return result
	}

	// Noop and the unused opcode are not counted as executed.
	if inst.Op != insts.OpNOOP && inst.Op != insts.OpUnused {
		e.instructionCount++
	}

	return result
}

// Run executes instructions until the machine halts or an error occurs.
// Returns the number of instructions executed.
func (e *Emulator) Run() (uint64, error) {
	for {
		result := e.Step()
		if result.Err != nil {
			return e.instructionCount, result.Err
		}
		if result.Halted {
			return e.instructionCount, nil
		}
	}
}

// execute dispatches and executes a decoded instruction.
func (e *Emulator) execute(inst *insts.Instruction) StepResult {
	switch inst.Op {
	case insts.OpADD:
		e.alu.ADD(inst.Dest, inst.RegA, inst.RegB)
	case insts.OpNAND:
		e.alu.NAND(inst.Dest, inst.RegA, inst.RegB)
	case insts.OpLW:
		return StepResult{Err: e.lsu.LW(inst.RegA, inst.RegB, inst.Offset)}
	case insts.OpSW:
		return StepResult{Err: e.lsu.SW(inst.RegA, inst.RegB, inst.Offset)}
	case insts.OpBEQ:
		e.branchUnit.BEQ(inst.RegA, inst.RegB, inst.Offset)
	case insts.OpHALT:
		return StepResult{Halted: true}
	case insts.OpNOOP, insts.OpUnused:
		// Unused opcode executes as a noop.
	default:
		return StepResult{
			Err: fmt.Errorf("unknown opcode %d", uint8(inst.Op)),
		}
	}

	return StepResult{}
}
