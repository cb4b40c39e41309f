package cache

import (
	"fmt"
	"io"
)

// Dump writes the content of every set to w. Invalid blocks are listed
// without data.
func (c *Cache) Dump(w io.Writer) {
	fmt.Fprintf(w, "cache: %d sets, %d blocks per set, %d words per block\n",
		c.geometry.NumberOfSets, c.geometry.BlocksPerSet,
		c.geometry.BlockSizeInWords)

	for i, set := range c.sets {
		fmt.Fprintf(w, "\tset[ %d ]\n", i)
		for j, b := range set.Blocks {
			if !b.Valid {
				fmt.Fprintf(w, "\t\tblock[ %d ] invalid\n", j)
				continue
			}

			fmt.Fprintf(w,
				"\t\tblock[ %d ] tag %d start %d recency %d dirty %t data %v\n",
				j, b.Tag, b.StartingAddress, b.Recency, b.Dirty, b.Data)
		}
	}
}
