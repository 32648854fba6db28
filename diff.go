package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// renderDiff produces a line diff between two file versions, one entry
// per line with a +, - or space prefix.
func renderDiff(before, after string) []string {
	dmp := diffmatchpatch.New()
	src, dst, lineArr := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(src, dst, false), lineArr)

	var out []string
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		}
		for _, line := range strings.Split(strings.TrimRight(d.Text, "\n"), "\n") {
			out = append(out, prefix+line)
		}
	}

	return out
}

func printDiff(out io.Writer, path, before, after string) {
	fmt.Fprintf(out, "--- %s\n", path)
	for _, line := range renderDiff(before, after) {
		switch {
		case strings.HasPrefix(line, "+"):
			color.New(color.FgGreen).Fprintln(out, line)
		case strings.HasPrefix(line, "-"):
			color.New(color.FgRed).Fprintln(out, line)
		default:
			fmt.Fprintln(out, line)
		}
	}
}
