package cache

import "math/bits"

// Geometry maps linear word addresses onto the cache's (tag, set, offset)
// fields. It is immutable once built and holds no other state.
type Geometry struct {
	BlockSizeInWords uint64
	NumberOfSets     uint64
	BlocksPerSet     uint64

	// OffsetBits is ceil(log2(BlockSizeInWords)).
	OffsetBits uint
	// SetBits is ceil(log2(NumberOfSets)).
	SetBits uint
}

// NewGeometry derives the field widths from a Config. The config is assumed
// to be valid; call Config.Validate first.
func NewGeometry(config Config) Geometry {
	blockSize := uint64(config.BlockSizeInWords)
	numSets := uint64(config.NumberOfSets)

	return Geometry{
		BlockSizeInWords: blockSize,
		NumberOfSets:     numSets,
		BlocksPerSet:     uint64(config.BlocksPerSet),
		OffsetBits:       bitsRequired(blockSize),
		SetBits:          bitsRequired(numSets),
	}
}

// bitsRequired returns the number of bits needed to tell n options apart.
func bitsRequired(n uint64) uint {
	if n <= 1 {
		return 0
	}
	return uint(bits.Len64(n - 1))
}

// BlockOffset returns the word offset of addr within its block.
func (g Geometry) BlockOffset(addr uint64) uint64 {
	// A one-word block has no offset field.
	if g.BlockSizeInWords == 1 {
		return 0
	}

	mask := uint64(1)<<g.OffsetBits - 1
	return addr & mask
}

// SetIndex returns the index of the set that addr maps to.
func (g Geometry) SetIndex(addr uint64) uint64 {
	// A single set has no index field.
	if g.NumberOfSets == 1 {
		return 0
	}

	mask := uint64(1)<<g.SetBits - 1
	return (addr >> g.OffsetBits) & mask
}

// Tag returns the high address bits above the offset and index fields.
func (g Geometry) Tag(addr uint64) uint64 {
	return addr >> (g.OffsetBits + g.SetBits)
}

// BlockBounds returns the first and last word addresses of the block that
// contains addr.
func (g Geometry) BlockBounds(addr uint64) (low, high uint64) {
	low = (addr / g.BlockSizeInWords) * g.BlockSizeInWords
	high = low + g.BlockSizeInWords - 1
	return low, high
}
