// Package loader reads machine-code files: one decimal word per line.
package loader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// MaxWords is the largest program that fits in the machine's memory.
const MaxWords = 1 << 16

// Program represents a loaded program ready for execution.
type Program struct {
	// Words holds the memory image, starting at address 0.
	Words []int32
}

// Load reads a machine-code file and returns a Program ready for loading
// into the emulator's memory.
func Load(path string) (*Program, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open machine code file: %w", err)
	}
	defer func() { _ = f.Close() }()

	prog, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return prog, nil
}

// Parse reads a memory image from r. Blank lines are skipped.
func Parse(r io.Reader) (*Program, error) {
	prog := &Program{}

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		word, err := strconv.ParseInt(line, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid word %q: %w",
				lineNum, line, err)
		}

		if len(prog.Words) == MaxWords {
			return nil, fmt.Errorf("line %d: program exceeds %d words",
				lineNum, MaxWords)
		}
		prog.Words = append(prog.Words, int32(word))
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read machine code: %w", err)
	}

	return prog, nil
}
