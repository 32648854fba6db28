package main

import (
	"regexp"
	"strings"
)

// effectMarker flags already-converted content. Any file containing it is
// left untouched, which is what makes reruns safe.
const effectMarker = "it.effect("

// shallowCallPattern matches it(name, () => { body }) where the body
// nests at most one level of braces. Group 1 is the horizontal indent of
// the call, group 2 the test-name expression (up to the first comma),
// group 3 the body. A single regular expression cannot balance arbitrary
// nesting; deeper bodies fall through to the tolerant pass.
var shallowCallPattern = regexp.MustCompile(
	`(?m)^([ \t]*)it\(([^,]+),\s*\(\)\s*=>\s*\{([^{}]*(?:\{[^{}]*\}[^{}]*)*)\}\)`)

// tolerantHeadPattern matches only the opening of an it(...) call whose
// body starts on the next line. The body extent is found by scanning for
// the closer instead of by regex.
var tolerantHeadPattern = regexp.MustCompile(
	`(?m)^([ \t]*)it\(([^,]+),\s*\(\)\s*=>\s*\{[ \t]*\r?\n`)

// convert rewrites every it(...) registration in content to the
// it.effect(...) form and normalizes imports to match. Content already
// containing it.effect is returned unchanged, as is content with no
// convertible call.
func convert(content string) string {
	if strings.Contains(content, effectMarker) {
		return content
	}

	out, shallow := convertShallow(content)
	out, deep := convertDeep(out)
	if shallow+deep == 0 {
		return content
	}

	return normalizeImports(out)
}

// convertShallow handles the common shapes: bodies with zero or one level
// of nested braces, captured entirely by shallowCallPattern.
func convertShallow(content string) (string, int) {
	n := 0
	out := shallowCallPattern.ReplaceAllStringFunc(content, func(m string) string {
		sub := shallowCallPattern.FindStringSubmatch(m)
		n++
		return renderEffectCall(sub[1], sub[2], sub[3], bodyStartsOnBraceLine(sub[3]))
	})

	return out, n
}

// convertDeep retries the calls the shallow pass could not capture. The
// body is taken to extend until a line whose content is "})" at exactly
// the call's indentation. When no such closer exists the occurrence is
// left as-is; that silent skip is the documented limitation of the
// heuristic.
func convertDeep(content string) (string, int) {
	var b strings.Builder
	n := 0

	for {
		loc := tolerantHeadPattern.FindStringSubmatchIndex(content)
		if loc == nil {
			break
		}

		indent := content[loc[2]:loc[3]]
		name := content[loc[4]:loc[5]]
		rest := content[loc[1]:]

		bodyEnd, closerEnd, ok := findCloser(rest, indent)
		if !ok {
			b.WriteString(content[:loc[1]])
			content = rest
			continue
		}

		b.WriteString(content[:loc[0]])
		b.WriteString(renderEffectCall(indent, name, rest[:bodyEnd], false))
		content = rest[closerEnd:]
		n++
	}

	b.WriteString(content)
	return b.String(), n
}

// findCloser scans rest line by line for the "})" closing the call: a
// line starting with exactly indent followed by "})". Returns the body
// extent and the offset just past the closer.
func findCloser(rest, indent string) (bodyEnd, closerEnd int, ok bool) {
	offset := 0
	for offset <= len(rest) {
		line := rest[offset:]
		if i := strings.IndexByte(line, '\n'); i >= 0 {
			line = line[:i]
		}
		if closesAtIndent(line, indent) {
			return offset, offset + len(indent) + len("})"), true
		}

		next := strings.IndexByte(rest[offset:], '\n')
		if next < 0 {
			break
		}
		offset += next + 1
	}

	return 0, 0, false
}

// closesAtIndent reports whether line is a "})" closer sitting at exactly
// the given indentation. A deeper closer does not count.
func closesAtIndent(line, indent string) bool {
	if !strings.HasPrefix(line, indent) {
		return false
	}
	return strings.HasPrefix(line[len(indent):], "})")
}

// bodyStartsOnBraceLine reports whether the captured body begins on the
// same line as the opening brace, i.e. it('x', () => { expr }).
func bodyStartsOnBraceLine(body string) bool {
	if i := strings.IndexByte(body, '\n'); i >= 0 {
		body = body[:i]
	}
	return strings.TrimSpace(body) != ""
}

// renderEffectCall emits the replacement call, preserving the original
// indentation of the it(...) line and the test-name expression verbatim.
func renderEffectCall(indent, name, body string, sameLine bool) string {
	var b strings.Builder
	b.WriteString(indent)
	b.WriteString("it.effect(")
	b.WriteString(name)
	b.WriteString(", () =>\n")
	b.WriteString(indent)
	b.WriteString("  Effect.gen(function* () {\n")
	b.WriteString(reindentBody(indent, body, sameLine))
	b.WriteString("\n")
	b.WriteString(indent)
	b.WriteString("  })\n")
	b.WriteString(indent)
	b.WriteString(")")

	return b.String()
}

// reindentBody trims the body of enclosing blank space and pushes every
// non-blank line two spaces deeper, keeping the body's relative
// indentation. Blank lines stay empty. A body that began on the
// opening-brace line carries no usable indentation of its own, so it is
// re-based two levels below the call instead.
func reindentBody(indent, body string, sameLine bool) string {
	lines := strings.Split(body, "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return ""
	}
	lines[len(lines)-1] = strings.TrimRight(lines[len(lines)-1], " \t")

	out := make([]string, len(lines))
	for i, line := range lines {
		switch {
		case strings.TrimSpace(line) == "":
			out[i] = ""
		case sameLine && i == 0:
			out[i] = indent + "    " + strings.TrimSpace(line)
		default:
			out[i] = "  " + line
		}
	}

	return strings.Join(out, "\n")
}
