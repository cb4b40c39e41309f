package emu

import "fmt"

// MemorySize is the number of words in the machine's memory.
const MemorySize = 1 << 16

// Memory is the machine's flat, word-addressed memory.
type Memory struct {
	words     []int32
	numLoaded int
}

// NewMemory creates a zeroed memory of MemorySize words.
func NewMemory() *Memory {
	return &Memory{
		words: make([]int32, MemorySize),
	}
}

// Size returns the number of words in memory.
func (m *Memory) Size() int {
	return len(m.words)
}

// Words returns the backing slice. Writes through the slice are writes to
// memory.
func (m *Memory) Words() []int32 {
	return m.words
}

// NumLoaded returns the number of words the loaded program occupies.
func (m *Memory) NumLoaded() int {
	return m.numLoaded
}

// Read returns the word at addr.
func (m *Memory) Read(addr uint64) int32 {
	return m.words[addr]
}

// Write stores value at addr.
func (m *Memory) Write(addr uint64, value int32) {
	m.words[addr] = value
}

// LoadProgram copies program into memory starting at address 0.
func (m *Memory) LoadProgram(program []int32) error {
	if len(program) > len(m.words) {
		return fmt.Errorf("program has %d words, memory holds %d",
			len(program), len(m.words))
	}

	copy(m.words, program)
	m.numLoaded = len(program)
	return nil
}
