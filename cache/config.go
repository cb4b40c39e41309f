package cache

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config holds the cache geometry. All three values must be powers of two.
type Config struct {
	// BlockSizeInWords is the number of memory words held by one block.
	BlockSizeInWords int `json:"block_size_in_words"`

	// NumberOfSets is the number of sets in the cache.
	NumberOfSets int `json:"number_of_sets"`

	// BlocksPerSet is the associativity (number of ways per set).
	BlocksPerSet int `json:"blocks_per_set"`
}

// DefaultConfig returns a small 4-word, 4-set, 2-way cache.
func DefaultConfig() Config {
	return Config{
		BlockSizeInWords: 4,
		NumberOfSets:     4,
		BlocksPerSet:     2,
	}
}

// LoadConfig loads a Config from a JSON file. Fields missing from the file
// keep their default values.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("failed to read cache config file: %w", err)
	}

	if err := json.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("failed to parse cache config: %w", err)
	}

	return config, nil
}

// SaveConfig writes the Config to a JSON file.
func (c Config) SaveConfig(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize cache config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write cache config file: %w", err)
	}

	return nil
}

// Validate checks that every geometry value is a positive power of two.
func (c Config) Validate() error {
	if !isPowerOfTwo(c.BlockSizeInWords) {
		return fmt.Errorf("block_size_in_words must be a power of two, got %d",
			c.BlockSizeInWords)
	}
	if !isPowerOfTwo(c.NumberOfSets) {
		return fmt.Errorf("number_of_sets must be a power of two, got %d",
			c.NumberOfSets)
	}
	if !isPowerOfTwo(c.BlocksPerSet) {
		return fmt.Errorf("blocks_per_set must be a power of two, got %d",
			c.BlocksPerSet)
	}
	return nil
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// ValidateFor checks the geometry and that it fits a memory of memoryWords
// words: one block must fit in memory, and so must the whole cache.
func (c Config) ValidateFor(memoryWords int) error {
	if err := c.Validate(); err != nil {
		return err
	}

	if c.BlockSizeInWords > memoryWords {
		return fmt.Errorf(
			"block_size_in_words %d exceeds memory of %d words",
			c.BlockSizeInWords, memoryWords)
	}
	if c.NumberOfSets > memoryWords/c.BlockSizeInWords {
		return fmt.Errorf(
			"number_of_sets %d with %d-word blocks exceeds memory of %d words",
			c.NumberOfSets, c.BlockSizeInWords, memoryWords)
	}
	if c.BlocksPerSet > memoryWords/(c.BlockSizeInWords*c.NumberOfSets) {
		return fmt.Errorf(
			"cache of %d x %d x %d words exceeds memory of %d words",
			c.NumberOfSets, c.BlocksPerSet, c.BlockSizeInWords, memoryWords)
	}
	return nil
}
