// Command hasm assembles one or more source files for the word-addressable
// machine: each base name on the command line is expanded, assembled in two
// passes, and emitted as .ob/.ent/.ext alongside the .as input.
package main

import (
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/spf13/cobra"

	"github.com/OctaPokta/AssemblerProject/pkg/config"
	"github.com/OctaPokta/AssemblerProject/pkg/diag"
	"github.com/OctaPokta/AssemblerProject/pkg/pipeline"
	"github.com/OctaPokta/AssemblerProject/pkg/version"
)

var (
	debug       bool
	configPath  string
	showVersion bool
)

var rootCmd = &cobra.Command{
	Use:   "hasm [flags] file1 file2 ...",
	Short: "Assembler for the word-addressable machine",
	Long: `hasm assembles one or more source files, given as base names without
the .as extension. Each file is run independently through macro expansion,
the first pass, and the second pass; a .ob file is always produced on
success, with .ent and .ext written only when the file declares entries or
references externals.

Files are processed concurrently, one worker per file up to GOMAXPROCS. A
recoverable error in one file does not stop the others; a fatal error
(for example, disk full) aborts the remaining queue.`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func init() {
	rootCmd.Flags().BoolVarP(&debug, "debug", "d", false, "trace each pass to stderr")
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "hasm.toml", "path to hasm.toml")
	rootCmd.Flags().BoolVar(&showVersion, "version", false, "print version and exit")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "hasm: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if showVersion {
		fmt.Println(version.GetBuildInfo())
		return nil
	}
	if len(args) == 0 {
		return cmd.Help()
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading %s: %w", configPath, err)
	}

	results := processAll(args, cfg, debug)

	failed := false
	fatal := false
	for i, res := range results {
		if res.File == "" {
			fmt.Fprintf(os.Stderr, "hasm: %s: skipped after fatal error\n", args[i])
			failed = true
			continue
		}
		for _, d := range res.Diags {
			fmt.Fprintln(os.Stderr, d)
		}
		switch res.Outcome {
		case diag.Recoverable:
			failed = true
		case diag.Fatal:
			fatal = true
			failed = true
		}
	}
	if fatal {
		fmt.Fprintln(os.Stderr, "hasm: aborted remaining files after a fatal error")
	}
	if failed {
		os.Exit(1)
	}
	return nil
}

// processAll runs one pipeline.Run per file, bounded by a worker pool sized
// to GOMAXPROCS, and returns results in the same order as bases. Once any
// file reports a Fatal outcome, queued-but-unstarted files are skipped —
// workers already mid-file still finish and report their own result.
func processAll(bases []string, cfg config.Config, debug bool) []pipeline.Result {
	results := make([]pipeline.Result, len(bases))
	jobs := make(chan int)
	abort := make(chan struct{})
	var once sync.Once

	var wg sync.WaitGroup
	workers := runtime.GOMAXPROCS(0)
	if workers > len(bases) {
		workers = len(bases)
	}
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				res := pipeline.Run(bases[i], cfg, debug)
				results[i] = res
				if res.Outcome == diag.Fatal {
					once.Do(func() { close(abort) })
				}
			}
		}()
	}

dispatch:
	for i := range bases {
		select {
		case jobs <- i:
		case <-abort:
			break dispatch
		}
	}
	close(jobs)
	wg.Wait()

	return results
}
