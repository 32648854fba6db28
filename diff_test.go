package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderDiff_MarksChangedLines(t *testing.T) {
	t.Parallel()

	before := "a\nb\nc\n"
	after := "a\nB\nc\n"
	lines := renderDiff(before, after)

	assert.Contains(t, lines, " a")
	assert.Contains(t, lines, "-b")
	assert.Contains(t, lines, "+B")
	assert.Contains(t, lines, " c")
}

func TestRenderDiff_EqualInputs(t *testing.T) {
	t.Parallel()

	lines := renderDiff("a\nb\n", "a\nb\n")
	for _, line := range lines {
		assert.Equal(t, byte(' '), line[0])
	}
}

func TestPrintDiff_Header(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	printDiff(&buf, "src/add.spec.ts", "a\n", "b\n")

	out := buf.String()
	assert.Contains(t, out, "--- src/add.spec.ts\n")
	assert.Contains(t, out, "-a")
	assert.Contains(t, out, "+b")
}
