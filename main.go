package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Defaults used when the tool is invoked with no arguments.
const (
	defaultRoot   = "src"
	defaultSuffix = ".spec.ts"
)

var (
	flagRoot    = flag.String("root", defaultRoot, "source root to scan for test files")
	flagSuffix  = flag.String("suffix", defaultSuffix, "test-file name suffix")
	flagDryRun  = flag.Bool("dry-run", false, "convert in memory without writing files")
	flagDiff    = flag.Bool("diff", false, "print a line diff for each pending change")
	flagReport  = flag.String("report", "", "write a YAML run report to this path")
	flagNoColor = flag.Bool("no-color", false, "disable colored output")
)

func main() {
	flag.Parse()

	if *flagNoColor || !isTerminal() {
		color.NoColor = true
	}

	cfg := &config{
		Root:     *flagRoot,
		Suffix:   *flagSuffix,
		DryRun:   *flagDryRun,
		ShowDiff: *flagDiff,
	}

	report := run(cfg, os.Stdout)

	if *flagReport != "" {
		if err := writeReport(*flagReport, report); err != nil {
			fmt.Fprintln(os.Stderr, "error writing report:", err)
		}
	}
	// Per-file errors are reported inline and never fail the run.
}

// isTerminal reports whether stdout is attached to a terminal.
func isTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
