package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

const convertibleSpec = `import { it, expect } from 'vitest'

it('adds numbers', () => {
  expect(1 + 1).toBe(2)
})
`

const convertedSpec = `import { expect } from 'vitest'
import { it } from '@effect/vitest'
import { Effect } from 'effect'

it.effect('adds numbers', () =>
  Effect.gen(function* () {
    expect(1 + 1).toBe(2)
  })
)
`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestRun_ConvertsTree(t *testing.T) {
	root := t.TempDir()

	convertible := filepath.Join(root, "math", "add.spec.ts")
	alreadyDone := filepath.Join(root, "done.spec.ts")
	helper := filepath.Join(root, "helper.ts")
	noTests := filepath.Join(root, "util.spec.ts")

	writeFile(t, convertible, convertibleSpec)
	writeFile(t, alreadyDone, convertedSpec)
	writeFile(t, helper, convertibleSpec)
	writeFile(t, noTests, "export const answer = 42\n")

	var buf bytes.Buffer
	report := run(&config{Root: root, Suffix: ".spec.ts"}, &buf)

	assert.Equal(t, 1, report.Converted)
	assert.Equal(t, 3, report.Total)

	out := buf.String()
	assert.Contains(t, out, "✓ Converted "+convertible)
	assert.Contains(t, out, "- Skipped "+alreadyDone)
	assert.Contains(t, out, "- Skipped "+noTests)
	assert.Contains(t, out, "Conversion complete: 1/3 files converted")

	got, err := os.ReadFile(convertible)
	require.NoError(t, err)
	assert.Equal(t, convertedSpec, string(got))

	// Non-matching and already-converted files stay byte-identical.
	for path, want := range map[string]string{
		alreadyDone: convertedSpec,
		helper:      convertibleSpec,
		noTests:     "export const answer = 42\n",
	} {
		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, want, string(got))
	}
}

func TestRun_Rerunnable(t *testing.T) {
	root := t.TempDir()
	spec := filepath.Join(root, "add.spec.ts")
	writeFile(t, spec, convertibleSpec)

	var buf bytes.Buffer
	first := run(&config{Root: root, Suffix: ".spec.ts"}, &buf)
	require.Equal(t, 1, first.Converted)

	second := run(&config{Root: root, Suffix: ".spec.ts"}, &buf)
	assert.Equal(t, 0, second.Converted)

	got, err := os.ReadFile(spec)
	require.NoError(t, err)
	assert.Equal(t, convertedSpec, string(got))
}

func TestRun_DryRunWritesNothing(t *testing.T) {
	root := t.TempDir()
	spec := filepath.Join(root, "add.spec.ts")
	writeFile(t, spec, convertibleSpec)

	var buf bytes.Buffer
	report := run(&config{Root: root, Suffix: ".spec.ts", DryRun: true, ShowDiff: true}, &buf)

	assert.Equal(t, 1, report.Converted)

	got, err := os.ReadFile(spec)
	require.NoError(t, err)
	assert.Equal(t, convertibleSpec, string(got))

	out := buf.String()
	assert.Contains(t, out, "--- "+spec)
	assert.Contains(t, out, "+it.effect('adds numbers', () =>")
	assert.Contains(t, out, "-it('adds numbers', () => {")
}

func TestRun_MissingRootLogsAndContinues(t *testing.T) {
	root := filepath.Join(t.TempDir(), "absent")

	var buf bytes.Buffer
	report := run(&config{Root: root, Suffix: ".spec.ts"}, &buf)

	assert.Equal(t, 0, report.Total)
	assert.Contains(t, buf.String(), "Error scanning "+root)
	assert.Contains(t, buf.String(), "Conversion complete: 0/0 files converted")
}

func TestRun_ReadErrorSkipsFile(t *testing.T) {
	root := t.TempDir()
	good := filepath.Join(root, "add.spec.ts")
	writeFile(t, good, convertibleSpec)

	broken := filepath.Join(root, "broken.spec.ts")
	require.NoError(t, os.Symlink(filepath.Join(root, "nope"), broken))

	var buf bytes.Buffer
	report := run(&config{Root: root, Suffix: ".spec.ts"}, &buf)

	assert.Equal(t, 1, report.Converted)
	assert.Equal(t, 2, report.Total)
	assert.Contains(t, buf.String(), "Error processing "+broken)
	assert.Contains(t, buf.String(), "- Skipped "+broken)
	assert.Contains(t, buf.String(), "Conversion complete: 1/2 files converted")
}

func TestWriteReport_RoundTrip(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "add.spec.ts"), convertibleSpec)

	var buf bytes.Buffer
	report := run(&config{Root: root, Suffix: ".spec.ts"}, &buf)

	path := filepath.Join(t.TempDir(), "report.yaml")
	require.NoError(t, writeReport(path, report))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got runReport
	require.NoError(t, yaml.Unmarshal(data, &got))
	assert.Equal(t, report.Converted, got.Converted)
	assert.Equal(t, report.Total, got.Total)
	require.Len(t, got.Files, 1)
	assert.Equal(t, "converted", got.Files[0].Outcome)
	assert.True(t, strings.HasSuffix(got.Files[0].Path, "add.spec.ts"))
}
