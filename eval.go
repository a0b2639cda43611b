package pmatch

import (
	"github.com/npillmayer/pmatch/source"
)

// match evaluates p at the read position of src. On failure src is reset to
// where it has been before; on success it is positioned after the match.
//
// Matching follows PEG discipline: Either commits to the first alternative
// which matches and spans never give back repetitions. Nothing is retried
// once a sub-pattern has matched, so the time spent is linear in the length
// of the input for grammars without back-references.
func match(p *Pattern, src *source.Source) bool {
	start := src.Store()
	if eval(p, src) {
		return true
	}
	src.Restore(start)
	return false
}

func eval(p *Pattern, src *source.Source) bool {
	switch p.kind {
	case LiteralKind:
		return p.lit.match(src)
	case CheckerKind:
		return p.check.match(src)
	case RangerKind:
		return matchRange(p, src)
	case RegexKind:
		return p.rx.match(src)
	case KeywordsKind:
		return p.kw.match(src)
	case BackRefKind:
		return matchBackRef(p.capture, src)
	case ConcatKind:
		for _, c := range p.children {
			if !match(c, src) {
				return false
			}
		}
		return true
	case EitherKind:
		for _, c := range p.children {
			if match(c, src) {
				return true
			}
		}
		return false
	case NegateKind:
		if src.EOF() || match(p.children[0], src) {
			return false
		}
		src.Advance(1)
		return true
	case OptionalKind:
		match(p.children[0], src)
		return true
	case SpanKind:
		n := 0
		for {
			at := src.Pos()
			if !match(p.children[0], src) || src.Pos() == at {
				break
			}
			n++
		}
		return n > 0
	case RepeatKind:
		for i := 0; i < p.count; i++ {
			if !match(p.children[0], src) {
				return false
			}
		}
		return true
	case CaptureKind:
		start := src.Pos()
		if !match(p.children[0], src) {
			return false
		}
		p.capture.write(src.Slice(start, src.Pos()))
		return true
	case TargetKind:
		bound := p.target.Pattern()
		if bound == nil {
			panic(&Error{
				Code:    UnboundTarget,
				Pattern: p.target.Name(),
				Message: "rule is matched before it has been bound",
			})
		}
		return match(bound, src)
	}
	panic("unknown pattern kind " + p.kind.String())
}
