package cache_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/lcsim/cache"
)

var _ = Describe("Set", func() {
	var set *cache.Set

	validBlock := func(tag, recency uint64) cache.Block {
		return cache.Block{Valid: true, Tag: tag, Recency: recency}
	}

	It("should pick the first invalid block", func() {
		set = &cache.Set{Blocks: []cache.Block{
			validBlock(1, 9),
			{},
			{},
		}}
		Expect(set.LeastRecentlyUsed()).To(Equal(1))
	})

	It("should prefer an invalid block over an older valid one", func() {
		set = &cache.Set{Blocks: []cache.Block{
			validBlock(1, 100),
			validBlock(2, 0),
			{Recency: 0},
		}}
		Expect(set.LeastRecentlyUsed()).To(Equal(2))
	})

	It("should pick the block with the largest recency", func() {
		set = &cache.Set{Blocks: []cache.Block{
			validBlock(1, 2),
			validBlock(2, 5),
			validBlock(3, 1),
		}}
		Expect(set.LeastRecentlyUsed()).To(Equal(1))
	})

	It("should break ties by the lowest way", func() {
		set = &cache.Set{Blocks: []cache.Block{
			validBlock(1, 1),
			validBlock(2, 4),
			validBlock(3, 4),
		}}
		Expect(set.LeastRecentlyUsed()).To(Equal(1))
	})

	It("should age every block but the accessed one", func() {
		set = &cache.Set{Blocks: []cache.Block{
			validBlock(1, 0),
			validBlock(2, 3),
			{},
		}}
		set.Touch(1)

		Expect(set.Blocks[0].Recency).To(Equal(uint64(1)))
		Expect(set.Blocks[1].Recency).To(Equal(uint64(3)))
		Expect(set.Blocks[2].Recency).To(Equal(uint64(1)))
	})

	It("should only match valid blocks on lookup", func() {
		set = &cache.Set{Blocks: []cache.Block{
			{Tag: 7},
			validBlock(7, 0),
		}}

		way, ok := set.Lookup(7)
		Expect(ok).To(BeTrue())
		Expect(way).To(Equal(1))

		_, ok = set.Lookup(8)
		Expect(ok).To(BeFalse())
	})
})
