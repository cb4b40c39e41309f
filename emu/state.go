package emu

import (
	"fmt"
	"io"
)

// DumpState writes the PC, the loaded part of memory and the registers to
// w. Memory is shown as stored, so words held dirty in the cache are not
// visible.
func (e *Emulator) DumpState(w io.Writer) {
	fmt.Fprintf(w, "\n@@@\nstate:\n")
	fmt.Fprintf(w, "\tpc %d\n", e.regFile.PC)

	fmt.Fprintf(w, "\tmemory:\n")
	for i := 0; i < e.memory.NumLoaded(); i++ {
		fmt.Fprintf(w, "\t\tmem[ %d ] %d\n", i, e.memory.Read(uint64(i)))
	}

	fmt.Fprintf(w, "\tregisters:\n")
	for i, v := range e.regFile.R {
		fmt.Fprintf(w, "\t\treg[ %d ] %d\n", i, v)
	}

	fmt.Fprintf(w, "end state\n")
}
