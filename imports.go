package main

import (
	"regexp"
	"strings"
)

// Import lines emitted by normalization.
const (
	effectVitestImport = "import { it } from '@effect/vitest'"
	effectImport       = "import { Effect } from 'effect'"
	vitestHelperImport = "import { describe, expect } from 'vitest'"
)

var (
	vitestImportPattern       = regexp.MustCompile(`^import\s*\{[^}]*\}\s*from\s*['"]vitest['"]`)
	effectImportPattern       = regexp.MustCompile(`^import\s*\{[^}]*\}\s*from\s*['"]effect['"]`)
	effectVitestImportPattern = regexp.MustCompile(`^import\s*\{[^}]*\}\s*from\s*['"]@effect/vitest['"]`)

	// legacySymbolPattern strips the bare it symbol from an import list;
	// the patterns after it clean up the separators that strip leaves
	// behind.
	legacySymbolPattern  = regexp.MustCompile(`\bit\b\s*,?\s*`)
	doubledCommaPattern  = regexp.MustCompile(`,\s*,`)
	leadingCommaPattern  = regexp.MustCompile(`\{\s*,\s*`)
	trailingCommaPattern = regexp.MustCompile(`,\s*\}`)

	importBraceClose = regexp.MustCompile(`\s*\}`)
)

// normalizeImports rewrites the import block so converted tests resolve.
// It runs only on content that actually uses it.effect, and in one
// top-to-bottom scan applies, in priority order:
//
//  1. strip it from an existing vitest import and append the
//     @effect/vitest import right after it;
//  2. ensure an existing effect import carries the Effect symbol;
//  3. prepend a describe/expect import when no vitest import exists but
//     describe is used;
//  4. insert the @effect/vitest import positionally when rule 1 never
//     fired;
//  5. insert the effect import positionally when Effect.gen is used but
//     no effect import exists.
//
// Running normalization twice yields the same result as running it once.
func normalizeImports(content string) string {
	if !strings.Contains(content, effectMarker) {
		return content
	}

	lines := strings.Split(content, "\n")

	var vitestFound, effectVitestFound, effectFound bool
	for _, line := range lines {
		if effectVitestImportPattern.MatchString(line) {
			effectVitestFound = true
		}
	}

	out := make([]string, 0, len(lines)+3)
	for _, line := range lines {
		switch {
		case vitestImportPattern.MatchString(line):
			vitestFound = true
			line = legacySymbolPattern.ReplaceAllString(line, "")
			line = doubledCommaPattern.ReplaceAllString(line, ",")
			line = leadingCommaPattern.ReplaceAllString(line, "{ ")
			line = trailingCommaPattern.ReplaceAllString(line, " }")
			out = append(out, line)
			if !effectVitestFound {
				out = append(out, effectVitestImport)
				effectVitestFound = true
			}
		case effectImportPattern.MatchString(line):
			effectFound = true
			out = append(out, ensureEffectSymbol(line))
		default:
			out = append(out, line)
		}
	}

	if !vitestFound && strings.Contains(content, "describe(") {
		out = insertLine(out, 0, vitestHelperImport)
	}
	if !effectVitestFound && strings.Contains(content, effectMarker) {
		pos := 1
		if vitestFound {
			pos = 2
		}
		out = insertLine(out, pos, effectVitestImport)
		effectVitestFound = true
	}
	if !effectFound && strings.Contains(content, "Effect.gen") {
		pos := 1
		if effectVitestFound {
			pos = 2
		}
		out = insertLine(out, pos, effectImport)
	}

	return strings.Join(out, "\n")
}

// ensureEffectSymbol adds Effect to an effect import's symbol list if it
// is not already there.
func ensureEffectSymbol(line string) string {
	if strings.Contains(line, "Effect") {
		return line
	}
	loc := importBraceClose.FindStringIndex(line)
	if loc == nil {
		return line
	}
	return line[:loc[0]] + ", Effect }" + line[loc[1]:]
}

// insertLine inserts line at pos, appending when pos is past the end.
func insertLine(lines []string, pos int, line string) []string {
	if pos > len(lines) {
		pos = len(lines)
	}
	lines = append(lines, "")
	copy(lines[pos+1:], lines[pos:])
	lines[pos] = line
	return lines
}
