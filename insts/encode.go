package insts

// EncodeR builds an R-format instruction word.
func EncodeR(op Op, regA, regB, dest uint8) int32 {
	return int32(op)<<22 | int32(regA&0b111)<<19 | int32(regB&0b111)<<16 |
		int32(dest&0b111)
}

// EncodeI builds an I-format instruction word.
func EncodeI(op Op, regA, regB uint8, offset int16) int32 {
	return int32(op)<<22 | int32(regA&0b111)<<19 | int32(regB&0b111)<<16 |
		int32(uint16(offset))
}

// EncodeO builds an instruction word with no operands.
func EncodeO(op Op) int32 {
	return int32(op) << 22
}
