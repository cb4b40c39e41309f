package cache

import (
	"fmt"

	"github.com/sarchlab/akita/v4/sim"
)

// Direction tells where the words of a transfer move from and to.
type Direction int

// Transfer directions.
const (
	CacheToProcessor Direction = iota
	ProcessorToCache
	MemoryToCache
	CacheToMemory
	CacheToNowhere
)

func (d Direction) String() string {
	switch d {
	case CacheToProcessor:
		return "from the cache to the processor"
	case ProcessorToCache:
		return "from the processor to the cache"
	case MemoryToCache:
		return "from the memory to the cache"
	case CacheToMemory:
		return "from the cache to the memory"
	case CacheToNowhere:
		return "from the cache to nowhere"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Transfer describes a run of words [Low, High] moving in one direction.
type Transfer struct {
	Low       uint64
	High      uint64
	Direction Direction
}

func (t Transfer) String() string {
	return fmt.Sprintf("transferring word [%d-%d] %s", t.Low, t.High, t.Direction)
}

// HookPosTransfer marks a hook invocation that reports a Transfer. The
// Transfer is passed as the hook context's Item.
var HookPosTransfer = &sim.HookPos{Name: "Transfer"}
