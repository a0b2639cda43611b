package pmatch

// Concat creates a pattern matching all of ps in sequence. Concat without
// operands matches the empty string.
func Concat(ps ...*Pattern) *Pattern {
	nonNil("concat", ps...)
	return &Pattern{kind: ConcatKind, children: append([]*Pattern(nil), ps...)}
}

// Either creates an ordered choice: the first of ps which matches wins, and
// later alternatives are never tried once one of them has matched, even if
// an enclosing pattern fails afterwards. Either without operands never
// matches.
func Either(ps ...*Pattern) *Pattern {
	nonNil("either", ps...)
	return &Pattern{kind: EitherKind, children: append([]*Pattern(nil), ps...)}
}

// Negate creates a pattern consuming exactly one character, provided p does
// not match at the current position. Negate fails at the end of the input.
//
// This holds for every kind of p: Negate(Literal("end")) fails on "endless"
// and succeeds on "edge" with "e".
func Negate(p *Pattern) *Pattern {
	nonNil("negate", p)
	return &Pattern{kind: NegateKind, children: []*Pattern{p}}
}

// Optional creates a pattern matching p or, if p fails, the empty string.
func Optional(p *Pattern) *Pattern {
	nonNil("optional", p)
	return &Pattern{kind: OptionalKind, children: []*Pattern{p}}
}

// OneOrMore creates a span: p is applied as often as it matches, at least
// once. Spans are greedy and never give back repetitions.
//
// If p may match the empty string, the span could loop without consuming
// input. OneOrMore rejects such patterns with an error of code ZeroWidthSpan.
func OneOrMore(p *Pattern) (*Pattern, error) {
	nonNil("span", p)
	span := &Pattern{kind: SpanKind, children: []*Pattern{p}}
	if nullable(p) {
		return nil, constructionError(ZeroWidthSpan, span, "span body may match the empty string")
	}
	return span, nil
}

// Repeat creates a pattern matching p exactly n times in sequence.
func Repeat(n int, p *Pattern) (*Pattern, error) {
	nonNil("repeat", p)
	rep := &Pattern{kind: RepeatKind, children: []*Pattern{p}, count: n}
	if n < 0 {
		return nil, constructionError(NegativeCount, rep, "repeat count %d is negative", n)
	}
	return rep, nil
}

// --- In-place composition -------------------------------------------------

// UnsafeAppend appends q to the operands of a Concat pattern in place,
// avoiding rebuilding a growing sequence node by node.
//
// It is unsafe because every user of p observes the change, including
// patterns p is already part of, and because the change is not re-validated.
// It must not be called while p is in use for matching.
func (p *Pattern) UnsafeAppend(q ...*Pattern) error {
	nonNil("append", q...)
	if p.kind != ConcatKind {
		return constructionError(KindMismatch, p, "cannot append to a %s pattern", p.kind)
	}
	p.children = append(p.children, q...)
	return nil
}

// UnsafeOr appends q to the alternatives of an Either pattern in place.
// The caveats of UnsafeAppend apply.
func (p *Pattern) UnsafeOr(q ...*Pattern) error {
	nonNil("or", q...)
	if p.kind != EitherKind {
		return constructionError(KindMismatch, p, "cannot add alternatives to a %s pattern", p.kind)
	}
	p.children = append(p.children, q...)
	return nil
}
