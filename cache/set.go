package cache

// Set is a fixed group of blocks that share one set index.
type Set struct {
	Blocks []Block
}

func newSet(blockSizeInWords, blocksPerSet uint64) *Set {
	s := &Set{
		Blocks: make([]Block, blocksPerSet),
	}
	for i := range s.Blocks {
		s.Blocks[i] = newBlock(blockSizeInWords)
	}
	return s
}

// Lookup returns the way holding a valid block with the given tag.
func (s *Set) Lookup(tag uint64) (int, bool) {
	for i := range s.Blocks {
		if s.Blocks[i].Valid && s.Blocks[i].Tag == tag {
			return i, true
		}
	}
	return 0, false
}

// LeastRecentlyUsed picks the way to replace. An invalid block is always
// chosen first. Otherwise the block with the largest recency wins, and the
// lowest way wins a tie.
func (s *Set) LeastRecentlyUsed() int {
	lru := 0
	for i := range s.Blocks {
		if !s.Blocks[i].Valid {
			return i
		}

		if s.Blocks[i].Recency > s.Blocks[lru].Recency {
			lru = i
		}
	}
	return lru
}

// Touch ages every block except the accessed one. The caller resets the
// accessed block's own recency.
func (s *Set) Touch(accessed int) {
	for i := range s.Blocks {
		if i != accessed {
			s.Blocks[i].Recency++
		}
	}
}
