package main

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/fatih/color"
)

type config struct {
	Root     string
	Suffix   string
	DryRun   bool
	ShowDiff bool
}

type fileResult struct {
	Path    string `yaml:"path"`
	Outcome string `yaml:"outcome"`
	Error   string `yaml:"error,omitempty"`
}

type runReport struct {
	Root      string       `yaml:"root"`
	Suffix    string       `yaml:"suffix"`
	DryRun    bool         `yaml:"dry_run,omitempty"`
	Converted int          `yaml:"converted"`
	Total     int          `yaml:"total"`
	Files     []fileResult `yaml:"files,omitempty"`
}

// run processes every test file under cfg.Root sequentially and returns
// the run report. Per-file failures are logged and skipped; nothing
// aborts the batch.
func run(cfg *config, out io.Writer) *runReport {
	report := &runReport{Root: cfg.Root, Suffix: cfg.Suffix, DryRun: cfg.DryRun}

	files, err := findTestFiles(cfg.Root, cfg.Suffix)
	if err != nil {
		color.New(color.FgRed).Fprintf(out, "Error scanning %s: %v\n", cfg.Root, err)
	}
	report.Total = len(files)

	for _, path := range files {
		converted, err := processFile(path, cfg, out)
		switch {
		case err != nil:
			color.New(color.FgRed).Fprintf(out, "Error processing %s: %v\n", path, err)
			fmt.Fprintf(out, "- Skipped %s\n", path)
			report.Files = append(report.Files, fileResult{Path: path, Outcome: "error", Error: err.Error()})
		case converted:
			report.Converted++
			color.New(color.FgGreen).Fprintf(out, "✓ Converted %s\n", path)
			report.Files = append(report.Files, fileResult{Path: path, Outcome: "converted"})
		default:
			fmt.Fprintf(out, "- Skipped %s\n", path)
			report.Files = append(report.Files, fileResult{Path: path, Outcome: "skipped"})
		}
	}

	fmt.Fprintf(out, "\nConversion complete: %d/%d files converted\n", report.Converted, report.Total)
	return report
}

// processFile converts a single file in place. It reports true only when
// the file's content actually changed (and, unless dry-run, was written
// back).
func processFile(path string, cfg *config, out io.Writer) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}
	content := string(data)

	// No legacy calls, or already converted: nothing to do.
	if !strings.Contains(content, "it(") || strings.Contains(content, effectMarker) {
		return false, nil
	}

	converted := convert(content)
	if converted == content {
		return false, nil
	}

	if cfg.ShowDiff {
		printDiff(out, path, content, converted)
	}
	if cfg.DryRun {
		return true, nil
	}

	mode := fs.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode()
	}
	if err := os.WriteFile(path, []byte(converted), mode); err != nil {
		return false, err
	}
	return true, nil
}
