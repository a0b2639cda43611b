/*
Package pmatch is a combinator library for matching patterns in Unicode text.

Description

Patterns are built from a small set of leaf matchers and combinators and then
applied to text. Leaves are literals, character checkers, delimited ranges,
keyword sets and bridged regular expressions. Combinators are sequence,
ordered choice, negation, option, one-or-more repetition and exact repetition.
Patterns may capture text, refer back to captured text and, through a
Grammar, refer to themselves recursively.

	greeting := pmatch.Either(pmatch.Literal("Hello"), pmatch.Literal("Goodbye"))
	greeting.Consume("Hello World!")    // => "Hello"
	greeting.Equals("Hello World!")     // => false

Every pattern offers two contracts. Consume anchors the pattern at the start
of the input and succeeds if a prefix of the input matches. Equals is a
membership test and succeeds only if the pattern matches the complete input.
ConsumeFrom applies a pattern to a shared cursor (see package source) and
advances it, which lets clients tokenize one input with many patterns in
sequence (see package segment).

Execution Discipline

Matching follows the discipline of parsing expression grammars (PEG).
Alternatives are ordered: the first alternative that matches wins, not the
longest one. Repetitions are greedy and never give back what they consumed.
Once a repetition or a branch has committed, a later failure does not cause
re-exploration of fewer repetitions or other earlier branches. This makes
the classic catastrophic-backtracking shapes of regular expressions, like
nested repetitions or alternations of overlapping repetitions, run in time
linear to the length of the input.

The one hazard this discipline cannot remove is a repetition of a pattern
which may succeed without consuming input: the repetition would loop forever.
Such grammars are rejected when they are constructed, not when they are
applied. OneOrMore returns an error for a body which can match the empty
string, Check returns an error for a checker without required positions, and
Grammar.Bind re-validates grammars closed through recursive targets.

Captures and Concurrency

Compiled patterns are immutable and may be shared between goroutines, with one
exception: a Capture is a single mutable cell, written by every successful
match of its sub-pattern. Patterns containing captures must not be applied
concurrently, or must be guarded by the client. Patterns without captures are
safe for concurrent use.

Construction Errors

All errors are reported at construction time as *Error, carrying a code for
the rule that has been violated. Failing to match is not an error; it results
in a Result with OK==false and empty text. The only run-time misuse is
applying a pattern which refers to an unbound Target; this panics with an
*Error with code UnboundTarget. Validate reports this condition upfront.

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package pmatch

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	if gtrace.CoreTracer == nil {
		gtrace.CoreTracer = gologadapter.New()
	}
	return gtrace.CoreTracer
}
