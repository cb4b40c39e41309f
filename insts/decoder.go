package insts

import "fmt"

// Op represents an opcode.
type Op uint8

// Opcodes, numbered by their encoding.
const (
	OpADD Op = iota
	OpNAND
	OpLW
	OpSW
	OpBEQ
	OpUnused
	OpHALT
	OpNOOP
)

var opNames = [...]string{
	OpADD:    "add",
	OpNAND:   "nand",
	OpLW:     "lw",
	OpSW:     "sw",
	OpBEQ:    "beq",
	OpUnused: "unused",
	OpHALT:   "halt",
	OpNOOP:   "noop",
}

func (op Op) String() string {
	if int(op) < len(opNames) {
		return opNames[op]
	}
	return fmt.Sprintf("Op(%d)", uint8(op))
}

// Format represents an instruction encoding format.
type Format uint8

// Instruction formats.
const (
	FormatR Format = iota // Register: add, nand
	FormatI               // Immediate offset: lw, sw, beq
	FormatO               // No operands: halt, noop, unused
)

// Instruction represents a decoded instruction.
type Instruction struct {
	Op     Op
	Format Format

	RegA uint8
	RegB uint8

	// Dest is the destination register of R-format instructions.
	Dest uint8

	// Offset is the sign-extended offset of I-format instructions.
	Offset int16
}

// Decoder decodes machine words into instructions.
type Decoder struct{}

// NewDecoder creates a new instruction decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode decodes one instruction word. Every word decodes; bits outside
// the fields of its format are ignored.
func (d *Decoder) Decode(word int32) *Instruction {
	inst := &Instruction{
		Op:   Op((word >> 22) & 0b111),
		RegA: uint8((word >> 19) & 0b111),
		RegB: uint8((word >> 16) & 0b111),
	}

	switch inst.Op {
	case OpADD, OpNAND:
		inst.Format = FormatR
		inst.Dest = uint8(word & 0b111)
	case OpLW, OpSW, OpBEQ:
		inst.Format = FormatI
		inst.Offset = int16(word & 0xFFFF)
	default:
		inst.Format = FormatO
		inst.RegA = 0
		inst.RegB = 0
	}

	return inst
}

// String formats the instruction in assembly syntax.
func (inst *Instruction) String() string {
	switch inst.Format {
	case FormatR:
		return fmt.Sprintf("%v %d %d %d", inst.Op, inst.RegA, inst.RegB, inst.Dest)
	case FormatI:
		return fmt.Sprintf("%v %d %d %d", inst.Op, inst.RegA, inst.RegB, inst.Offset)
	default:
		return inst.Op.String()
	}
}
