package emu

import "github.com/sarchlab/lcsim/cache"

// MemoryPort is the path the processor takes to reach memory, either
// directly or through a cache.
type MemoryPort interface {
	Read(addr uint64) int32
	Write(addr uint64, value int32)
}

// DirectPort accesses memory without a cache.
type DirectPort struct {
	memory *Memory
}

// NewDirectPort creates a DirectPort over memory.
func NewDirectPort(memory *Memory) *DirectPort {
	return &DirectPort{memory: memory}
}

// Read returns the word at addr.
func (p *DirectPort) Read(addr uint64) int32 {
	return p.memory.Read(addr)
}

// Write stores value at addr.
func (p *DirectPort) Write(addr uint64, value int32) {
	p.memory.Write(addr, value)
}

// CachedPort routes every access through a cache. The memory is lent to the
// cache for the duration of each access only.
type CachedPort struct {
	cache  *cache.Cache
	memory *Memory
}

// NewCachedPort creates a CachedPort.
func NewCachedPort(c *cache.Cache, memory *Memory) *CachedPort {
	return &CachedPort{cache: c, memory: memory}
}

// Read returns the word at addr.
func (p *CachedPort) Read(addr uint64) int32 {
	return p.cache.Read(addr, p.memory.Words())
}

// Write stores value at addr.
func (p *CachedPort) Write(addr uint64, value int32) {
	p.cache.Write(addr, p.memory.Words(), value)
}

// Flush writes every dirty block back to memory.
func (p *CachedPort) Flush() {
	p.cache.Flush(p.memory.Words())
}
