package pmatch

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/pmatch/source"
)

// Kind is the kind of a pattern node. The set of kinds is closed.
type Kind int8

// Pattern kinds.
const (
	LiteralKind  Kind = iota // fixed text
	CheckerKind              // head/middle/tail predicates
	RangerKind               // from … to, with optional escape
	RegexKind                // bridged regular expression
	KeywordsKind             // ordered set of literals
	BackRefKind              // text of a capture
	ConcatKind               // sequence
	EitherKind               // ordered choice
	NegateKind               // one character not matching
	OptionalKind             // zero or one
	SpanKind                 // one or more
	RepeatKind               // exactly n
	CaptureKind              // records the text of its sub-pattern
	TargetKind               // indirection to a grammar rule
)

var kindNames = [...]string{
	"Literal", "Checker", "Ranger", "Regex", "Keywords", "BackRef", "Concat",
	"Either", "Negate", "Optional", "Span", "Repeat", "Capture", "Target",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Pattern is a node of a grammar tree. Patterns are created by the
// constructor functions of this package and are immutable afterwards, except
// for the explicitly unsafe in-place operations UnsafeAppend and UnsafeOr.
//
// Pattern is a tagged union: kind selects which of the fields are in use.
type Pattern struct {
	kind     Kind
	children []*Pattern // operands of combinators; ranger: from, to[, escape]
	lit      *literal
	check    *checker
	rx       *adapter
	kw       *keywords
	capture  *Capture // capture and back-reference
	target   *Target
	count    int // repeat
}

// Kind returns the kind of the pattern node.
func (p *Pattern) Kind() Kind {
	return p.kind
}

// Consume matches p against the start of text. The match may cover a prefix
// of text only.
func (p *Pattern) Consume(text string) Result {
	src := source.Borrow(text)
	defer src.Release()
	return p.ConsumeFrom(src)
}

// ConsumeFrom matches p at the current position of src. On success src is
// advanced past the match, otherwise it is left untouched.
func (p *Pattern) ConsumeFrom(src *source.Source) Result {
	start := src.Pos()
	if !match(p, src) {
		return Result{Start: start, End: start}
	}
	end := src.Pos()
	return Result{OK: true, Text: src.Slice(start, end), Start: start, End: end}
}

// Equals is true if p matches text as a whole, with nothing left over.
func (p *Pattern) Equals(text string) bool {
	src := source.Borrow(text)
	defer src.Release()
	return match(p, src) && src.EOF()
}

// Then is a shortcut for Concat(p, q...).
func (p *Pattern) Then(q ...*Pattern) *Pattern {
	return Concat(append([]*Pattern{p}, q...)...)
}

// Or is a shortcut for Either(p, q...).
func (p *Pattern) Or(q ...*Pattern) *Pattern {
	return Either(append([]*Pattern{p}, q...)...)
}

// String renders p in a compact, PEG-like notation.
func (p *Pattern) String() string {
	var sb strings.Builder
	p.render(&sb)
	return sb.String()
}

func (p *Pattern) render(sb *strings.Builder) {
	if p == nil {
		sb.WriteString("<nil>")
		return
	}
	switch p.kind {
	case LiteralKind:
		sb.WriteString(strconv.Quote(p.lit.text))
		if p.lit.mode != ordinal {
			sb.WriteString("/" + p.lit.mode.String())
		}
	case CheckerKind:
		sb.WriteString("[" + p.check.name + "]")
	case RangerKind:
		sb.WriteString("range(")
		for i, c := range p.children {
			if i > 0 {
				sb.WriteString(", ")
			}
			c.render(sb)
		}
		sb.WriteString(")")
	case RegexKind:
		sb.WriteString("/" + p.rx.expr + "/")
	case KeywordsKind:
		sb.WriteString("{")
		for i, w := range p.kw.words {
			if i > 0 {
				sb.WriteString("|")
			}
			sb.WriteString(strconv.Quote(w))
		}
		sb.WriteString("}")
	case BackRefKind:
		sb.WriteString("&" + p.capture.name)
	case ConcatKind, EitherKind:
		sep := " "
		if p.kind == EitherKind {
			sep = " | "
		}
		sb.WriteString("(")
		for i, c := range p.children {
			if i > 0 {
				sb.WriteString(sep)
			}
			c.render(sb)
		}
		sb.WriteString(")")
	case NegateKind:
		sb.WriteString("~")
		p.children[0].render(sb)
	case OptionalKind:
		p.children[0].render(sb)
		sb.WriteString("?")
	case SpanKind:
		p.children[0].render(sb)
		sb.WriteString("+")
	case RepeatKind:
		p.children[0].render(sb)
		sb.WriteString("{" + strconv.Itoa(p.count) + "}")
	case CaptureKind:
		sb.WriteString("<" + p.capture.name + ":")
		p.children[0].render(sb)
		sb.WriteString(">")
	case TargetKind:
		sb.WriteString(p.target.Name())
	}
}

// nonNil panics if one of ps is nil; combinators must not be built over
// missing operands.
func nonNil(op string, ps ...*Pattern) {
	for i, p := range ps {
		if p == nil {
			panic(&Error{Code: NilPattern, Message: fmt.Sprintf("operand #%d of %s is nil", i, op)})
		}
	}
}
