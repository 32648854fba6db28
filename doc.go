// vitest-to-effect rewrites vitest test files to the @effect/vitest pattern.
//
// The tool walks a source tree for *.spec.ts files, converts each
// it(name, () => { ... }) registration into
// it.effect(name, () => Effect.gen(function* () { ... })), and patches the
// import statements to match. Files are rewritten in place; already
// converted files are left untouched, so reruns are safe.
//
// Example:
//
//	vitest-to-effect -root src
//
// Input:
//
//	import { it, describe, expect } from 'vitest'
//
//	describe('math', () => {
//	  it('adds numbers', () => { expect(1 + 1).toBe(2) })
//	})
//
// Output:
//
//	import { describe, expect } from 'vitest'
//	import { it } from '@effect/vitest'
//	import { Effect } from 'effect'
//
//	describe('math', () => {
//	  it.effect('adds numbers', () =>
//	    Effect.gen(function* () {
//	      expect(1 + 1).toBe(2)
//	    })
//	  )
//	})
//
// The rewriter is regex-based, not a parser. Bodies nesting more than one
// level of braces are captured by scanning for a closing brace at the
// call's indentation; bodies that defeat that heuristic are left
// unconverted.
package main
