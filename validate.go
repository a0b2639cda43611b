package pmatch

import (
	"strings"

	"github.com/emirpasic/gods/sets/hashset"
	"github.com/emirpasic/gods/stacks/arraystack"
)

// Validate checks a complete pattern tree before use. Most checks are done
// by the constructors already; Validate additionally reports
//
//   - references to rules which have not been bound (UnboundTarget),
//   - rules referring to themselves without consuming input (LeftRecursion),
//   - spans and range escapes which may match the empty string because of
//     rules bound after they have been built.
//
// Validate returns the first problem found.
func Validate(p *Pattern) error {
	nonNil("validate", p)
	if rec, chain := leftRecursion(p); rec != nil {
		return constructionError(LeftRecursion, rec.node,
			"rule %q may refer to itself without consuming input: %s", rec.Name(), chain)
	}
	return newValidator(true).walk(p)
}

// --- Structural checks -----------------------------------------------------

type validator struct {
	strict bool         // report unbound targets
	seen   *hashset.Set // of *Pattern
}

func newValidator(strict bool) *validator {
	return &validator{strict: strict, seen: hashset.New()}
}

func (v *validator) walk(p *Pattern) error {
	if v.seen.Contains(p) {
		return nil
	}
	v.seen.Add(p)
	switch p.kind {
	case SpanKind:
		if nullable(p.children[0]) {
			return constructionError(ZeroWidthSpan, p, "span body may match the empty string")
		}
	case RangerKind:
		if len(p.children) > 2 && nullable(p.children[2]) {
			return constructionError(NullableEscape, p, "escape may match the empty string")
		}
	case TargetKind:
		bound := p.target.Pattern()
		if bound == nil {
			if v.strict {
				return constructionError(UnboundTarget, p, "rule %q is not bound", p.target.Name())
			}
			return nil
		}
		return v.walk(bound)
	}
	for _, c := range p.children {
		if err := v.walk(c); err != nil {
			return err
		}
	}
	return nil
}

// --- Zero-width analysis ---------------------------------------------------

// nullable tells if p may succeed without consuming input. The analysis is
// structural and conservative for leaves: a checker never matches the empty
// string, a regular expression is inspected syntactically.
//
// Unbound rules are considered to consume input. The same holds for a rule
// while its own body is being analysed; a rule which reaches itself before
// consuming anything is rejected as left-recursive anyway.
func nullable(p *Pattern) bool {
	return nullableIn(p, hashset.New())
}

func nullableIn(p *Pattern, visiting *hashset.Set) bool {
	switch p.kind {
	case LiteralKind:
		return p.lit.n == 0
	case CheckerKind, KeywordsKind, BackRefKind, NegateKind:
		return false
	case RegexKind:
		return p.rx.nullable
	case RangerKind:
		return nullableIn(p.children[0], visiting) && nullableIn(p.children[1], visiting)
	case ConcatKind:
		for _, c := range p.children {
			if !nullableIn(c, visiting) {
				return false
			}
		}
		return true
	case EitherKind:
		for _, c := range p.children {
			if nullableIn(c, visiting) {
				return true
			}
		}
		return false
	case OptionalKind:
		return true
	case SpanKind, CaptureKind:
		return nullableIn(p.children[0], visiting)
	case RepeatKind:
		return p.count == 0 || nullableIn(p.children[0], visiting)
	case TargetKind:
		bound := p.target.Pattern()
		if bound == nil || visiting.Contains(p.target) {
			return false
		}
		visiting.Add(p.target)
		defer visiting.Remove(p.target)
		return nullableIn(bound, visiting)
	}
	panic("unknown pattern kind " + p.kind.String())
}

// --- Left recursion --------------------------------------------------------

type recursionCheck struct {
	path   *arraystack.Stack // rules entered without consuming input
	onPath *hashset.Set
	done   *hashset.Set
}

// leftRecursion searches for a rule reachable from p which may reach itself
// without consuming input. It returns the rule and the chain of rules forming
// the cycle.
func leftRecursion(p *Pattern) (*Target, string) {
	rc := &recursionCheck{
		path:   arraystack.New(),
		onPath: hashset.New(),
		done:   hashset.New(),
	}
	if t := rc.visit(p); t != nil {
		return t, rc.chain(t)
	}
	return nil, ""
}

func (rc *recursionCheck) visit(p *Pattern) *Target {
	if p.kind != TargetKind {
		for _, c := range leftmost(p) {
			if t := rc.visit(c); t != nil {
				return t
			}
		}
		return nil
	}
	t := p.target
	if rc.onPath.Contains(t) {
		return t
	}
	bound := t.Pattern()
	if bound == nil || rc.done.Contains(t) {
		return nil
	}
	rc.path.Push(t)
	rc.onPath.Add(t)
	if rec := rc.visit(bound); rec != nil {
		return rec // leave path intact for chain
	}
	rc.path.Pop()
	rc.onPath.Remove(t)
	rc.done.Add(t)
	return nil
}

// chain renders the cycle through t from the current path.
func (rc *recursionCheck) chain(t *Target) string {
	values := rc.path.Values() // top of stack first
	var names []string
	for _, v := range values {
		names = append([]string{v.(*Target).Name()}, names...)
		if v.(*Target) == t {
			break
		}
	}
	return strings.Join(append(names, t.Name()), " -> ")
}

// leftmost returns the operands of p which are matched at the position p
// starts matching at.
func leftmost(p *Pattern) []*Pattern {
	switch p.kind {
	case ConcatKind:
		for i, c := range p.children {
			if !nullable(c) {
				return p.children[:i+1]
			}
		}
		return p.children
	case EitherKind:
		return p.children
	case NegateKind, OptionalKind, SpanKind, CaptureKind:
		return p.children
	case RepeatKind:
		if p.count == 0 {
			return nil
		}
		return p.children
	case RangerKind:
		if nullable(p.children[0]) {
			return p.children
		}
		return p.children[:1]
	}
	return nil
}
