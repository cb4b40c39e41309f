package cache

// Block is one cache line.
//
// When Valid is false every field except Data is meaningless.
type Block struct {
	Valid bool
	Dirty bool
	Tag   uint64

	// StartingAddress is the first memory word this block was filled from.
	StartingAddress uint64

	// Recency counts accesses to other blocks of the same set since this
	// block was last accessed. The largest value marks the LRU block.
	Recency uint64

	Data []Word
}

func newBlock(blockSizeInWords uint64) Block {
	return Block{
		Data: make([]Word, blockSizeInWords),
	}
}
