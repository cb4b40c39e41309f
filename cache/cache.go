// Package cache models a set-associative, write-back, write-allocate cache
// with LRU replacement in front of a flat word-addressed memory.
package cache

import (
	"fmt"

	"github.com/sarchlab/akita/v4/sim"
)

// Word is the unit of memory the cache stores and returns.
type Word = int32

// Statistics holds cache performance statistics.
type Statistics struct {
	Reads      uint64
	Writes     uint64
	Hits       uint64
	Misses     uint64
	Evictions  uint64
	Writebacks uint64
}

// Cache is the cache engine. It never keeps a reference to memory; the
// backing memory is passed to every access.
//
// A Cache is not safe for concurrent use.
type Cache struct {
	*sim.HookableBase

	config   Config
	geometry Geometry
	sets     []*Set

	stats Statistics
}

// New creates a cache with every block invalid. It returns an error if the
// geometry is not valid.
func New(config Config) (*Cache, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid cache config: %w", err)
	}

	geometry := NewGeometry(config)

	sets := make([]*Set, geometry.NumberOfSets)
	for i := range sets {
		sets[i] = newSet(geometry.BlockSizeInWords, geometry.BlocksPerSet)
	}

	return &Cache{
		HookableBase: sim.NewHookableBase(),
		config:       config,
		geometry:     geometry,
		sets:         sets,
	}, nil
}

// MustNew is like New but panics on an invalid config.
func MustNew(config Config) *Cache {
	c, err := New(config)
	if err != nil {
		panic(err)
	}
	return c
}

// Config returns the cache configuration.
func (c *Cache) Config() Config {
	return c.config
}

// Geometry returns the address decomposition used by the cache.
func (c *Cache) Geometry() Geometry {
	return c.geometry
}

// Stats returns cache statistics.
func (c *Cache) Stats() Statistics {
	return c.stats
}

// ResetStats clears cache statistics.
func (c *Cache) ResetStats() {
	c.stats = Statistics{}
}

// Blocks returns a copy of the blocks of one set.
func (c *Cache) Blocks(setIndex int) []Block {
	set := c.set(uint64(setIndex))

	blocks := make([]Block, len(set.Blocks))
	for i, b := range set.Blocks {
		blocks[i] = b
		blocks[i].Data = append([]Word(nil), b.Data...)
	}
	return blocks
}

// Read returns the word at addr, filling its block from memory on a miss.
func (c *Cache) Read(addr uint64, memory []Word) Word {
	c.stats.Reads++

	set, way := c.locate(addr, memory)
	return c.read(addr, set, way)
}

// Write stores value at addr. The block is filled first on a miss and is
// marked dirty; memory is only updated when the block is written back.
func (c *Cache) Write(addr uint64, memory []Word, value Word) {
	c.stats.Writes++

	set, way := c.locate(addr, memory)
	c.write(addr, set, way, value)
}

// read applies a read to a block that is known to hold addr.
func (c *Cache) read(addr uint64, set *Set, way int) Word {
	block := &set.Blocks[way]
	value := block.Data[c.geometry.BlockOffset(addr)]

	c.notify(addr, addr, CacheToProcessor)

	return value
}

// write applies a write to a block that is known to hold addr.
func (c *Cache) write(addr uint64, set *Set, way int, value Word) {
	block := &set.Blocks[way]
	block.Data[c.geometry.BlockOffset(addr)] = value
	block.Dirty = true

	c.notify(addr, addr, ProcessorToCache)
}

// locate finds the block holding addr, installing it on a miss. Either way
// the block counts as accessed for LRU purposes.
func (c *Cache) locate(addr uint64, memory []Word) (*Set, int) {
	set := c.set(c.geometry.SetIndex(addr))
	tag := c.geometry.Tag(addr)

	if way, ok := set.Lookup(tag); ok {
		c.stats.Hits++

		set.Blocks[way].Recency = 0
		set.Touch(way)

		return set, way
	}

	c.stats.Misses++

	way := c.fill(addr, set, tag, memory)
	return set, way
}

// fill installs the block containing addr into the set, evicting the LRU
// block.
func (c *Cache) fill(addr uint64, set *Set, tag uint64, memory []Word) int {
	low, high := c.geometry.BlockBounds(addr)
	c.mustCover(memory, low, high)

	newBlock := Block{
		Valid:           true,
		Tag:             tag,
		StartingAddress: low,
		Data:            make([]Word, c.geometry.BlockSizeInWords),
	}
	copy(newBlock.Data, memory[low:high+1])

	way := set.LeastRecentlyUsed()
	victim := set.Blocks[way]
	set.Blocks[way] = newBlock
	set.Touch(way)

	if victim.Valid {
		c.evict(victim, memory)
	}

	c.notify(low, high, MemoryToCache)

	return way
}

// evict disposes of a displaced block, writing it back if it is dirty.
func (c *Cache) evict(victim Block, memory []Word) {
	c.stats.Evictions++

	low := victim.StartingAddress
	high := low + c.geometry.BlockSizeInWords - 1

	if !victim.Dirty {
		c.notify(low, high, CacheToNowhere)
		return
	}

	c.writeBack(victim, memory)
}

func (c *Cache) writeBack(b Block, memory []Word) {
	low := b.StartingAddress
	high := low + c.geometry.BlockSizeInWords - 1
	c.mustCover(memory, low, high)

	if uint64(len(b.Data)) != c.geometry.BlockSizeInWords {
		panic(fmt.Sprintf(
			"cache: write-back of block at %d holds %d words, expected %d",
			low, len(b.Data), c.geometry.BlockSizeInWords))
	}

	copy(memory[low:high+1], b.Data)
	c.stats.Writebacks++

	c.notify(low, high, CacheToMemory)
}

// Flush writes every dirty block back to memory and invalidates the whole
// cache.
func (c *Cache) Flush(memory []Word) {
	for _, set := range c.sets {
		for i := range set.Blocks {
			block := &set.Blocks[i]
			if block.Valid && block.Dirty {
				c.writeBack(*block, memory)
			}
			block.Valid = false
			block.Dirty = false
			block.Recency = 0
		}
	}
}

// Reset invalidates every block without write-back and clears statistics.
func (c *Cache) Reset() {
	for _, set := range c.sets {
		for i := range set.Blocks {
			set.Blocks[i] = newBlock(c.geometry.BlockSizeInWords)
		}
	}
	c.stats = Statistics{}
}

func (c *Cache) set(index uint64) *Set {
	if index >= uint64(len(c.sets)) {
		panic(fmt.Sprintf("cache: set index %d out of range, expected < %d",
			index, len(c.sets)))
	}
	return c.sets[index]
}

func (c *Cache) mustCover(memory []Word, low, high uint64) {
	if high >= uint64(len(memory)) {
		panic(fmt.Sprintf(
			"cache: block [%d-%d] exceeds memory of %d words",
			low, high, len(memory)))
	}
}

func (c *Cache) notify(low, high uint64, direction Direction) {
	if c.NumHooks() == 0 {
		return
	}

	c.InvokeHook(sim.HookCtx{
		Domain: c,
		Pos:    HookPosTransfer,
		Item: Transfer{
			Low:       low,
			High:      high,
			Direction: direction,
		},
	})
}
