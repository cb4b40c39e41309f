package main

import (
	"fmt"
	"io"
	"log"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/sarchlab/lcsim/cache"
	"github.com/sarchlab/lcsim/emu"
	"github.com/sarchlab/lcsim/loader"
)

type options struct {
	configPath      string
	maxInstructions uint64
	quiet           bool
	noCache         bool
	flushOnHalt     bool
	stats           bool
	dumpCache       bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use: "lcsim <program.mc> [block-size num-sets blocks-per-set]",
		Short: "lcsim runs a machine-code program through a " +
			"set-associative cache simulator.",
		Long: `lcsim runs a machine-code program (one decimal word per line) ` +
			`on an eight-register word machine whose instruction fetches and ` +
			`data accesses go through a write-back LRU cache. The cache ` +
			`geometry is given in words and must be made of powers of two.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 && len(args) != 4 {
				return fmt.Errorf("expected 1 or 4 arguments, got %d", len(args))
			}
			return nil
		},
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), opts, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.configPath, "config", "",
		"Path to a cache geometry JSON file")
	flags.Uint64Var(&opts.maxInstructions, "max-instructions", 0,
		"Stop after this many instructions (0 means no limit)")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false,
		"Do not print machine states or transfers")
	flags.BoolVar(&opts.noCache, "no-cache", false,
		"Access memory directly, without a cache")
	flags.BoolVar(&opts.flushOnHalt, "flush-on-halt", false,
		"Write dirty blocks back to memory before the final state")
	flags.BoolVar(&opts.stats, "stats", false, "Print cache statistics")
	flags.BoolVar(&opts.dumpCache, "dump-cache", false,
		"Print the cache content after halting")

	return cmd
}

// cacheConfig builds the geometry from the config file, overridden by the
// positional arguments.
func cacheConfig(opts *options, args []string) (cache.Config, error) {
	config := cache.DefaultConfig()
	if opts.configPath != "" {
		var err error
		config, err = cache.LoadConfig(opts.configPath)
		if err != nil {
			return config, err
		}
	}

	if len(args) == 4 {
		fields := []*int{
			&config.BlockSizeInWords,
			&config.NumberOfSets,
			&config.BlocksPerSet,
		}
		names := []string{"block size", "number of sets", "blocks per set"}
		for i, field := range fields {
			v, err := strconv.Atoi(args[i+1])
			if err != nil {
				return config, fmt.Errorf("%s must be an integer, got %q",
					names[i], args[i+1])
			}
			*field = v
		}
	}

	return config, config.ValidateFor(emu.MemorySize)
}

func run(out io.Writer, opts *options, args []string) error {
	var c *cache.Cache
	if !opts.noCache {
		config, err := cacheConfig(opts, args)
		if err != nil {
			return err
		}

		c, err = cache.New(config)
		if err != nil {
			return err
		}

		if !opts.quiet {
			c.AcceptHook(cache.NewTransferLogger(log.New(out, "", 0)))
		}
	}

	prog, err := loader.Load(args[0])
	if err != nil {
		return err
	}

	emulator := emu.NewEmulator(
		emu.WithStdout(out),
		emu.WithCache(c),
		emu.WithStateDump(!opts.quiet),
		emu.WithMaxInstructions(opts.maxInstructions),
	)
	if err := emulator.LoadProgram(prog.Words); err != nil {
		return err
	}

	count, err := emulator.Run()
	if err != nil {
		return err
	}

	if opts.flushOnHalt {
		emulator.Flush()
	}

	fmt.Fprintf(out, "\nmachine halted\n")
	fmt.Fprintf(out, "total of %d instructions executed\n", count)
	fmt.Fprintf(out, "final state of the machine:\n")
	emulator.DumpState(out)

	if c != nil && opts.dumpCache {
		fmt.Fprintf(out, "\n")
		c.Dump(out)
	}

	if c != nil && opts.stats {
		printStats(out, c.Stats())
	}

	return nil
}

func printStats(out io.Writer, s cache.Statistics) {
	accesses := s.Reads + s.Writes
	hitRate := 0.0
	if accesses > 0 {
		hitRate = 100.0 * float64(s.Hits) / float64(accesses)
	}

	fmt.Fprintf(out, "\nCache Statistics:\n")
	fmt.Fprintf(out, "  Reads:      %d\n", s.Reads)
	fmt.Fprintf(out, "  Writes:     %d\n", s.Writes)
	fmt.Fprintf(out, "  Hits:       %d (%.1f%%)\n", s.Hits, hitRate)
	fmt.Fprintf(out, "  Misses:     %d\n", s.Misses)
	fmt.Fprintf(out, "  Evictions:  %d\n", s.Evictions)
	fmt.Fprintf(out, "  Writebacks: %d\n", s.Writebacks)
}
