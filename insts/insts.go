// Package insts provides instruction definitions and decoding for a small
// eight-register word machine.
//
// Every instruction is one 32-bit word. Bits [24:22] hold the opcode,
// [21:19] register A and [18:16] register B. R-format instructions keep the
// destination register in bits [2:0]; I-format instructions keep a signed
// 16-bit offset in bits [15:0].
//
// Usage:
//
//	decoder := insts.NewDecoder()
//	inst := decoder.Decode(0x000A0002) // add 1 2 2
//	fmt.Printf("Op: %v, A: %d, B: %d, Dest: %d\n", inst.Op, inst.RegA, inst.RegB, inst.Dest)
package insts
