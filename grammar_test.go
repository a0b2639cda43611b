package pmatch

import (
	"errors"
	"testing"

	"github.com/npillmayer/pmatch/charclass"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
)

func TestGrammarBalancedParens(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	g := NewGrammar()
	balanced := g.Declare("balanced")
	parens := Concat(Literal("("), Optional(balanced.Ref()), Literal(")"))
	if err := g.Bind(balanced, Must(OneOrMore(parens))); err != nil {
		t.Fatal(err)
	}
	if err := Validate(balanced.Ref()); err != nil {
		t.Fatal(err)
	}
	for input, expected := range map[string]bool{
		"()":         true,
		"(())()":     true,
		"((()())":    false,
		"(()))":      false,
		"":           false,
		"((((()))))": true,
	} {
		if balanced.Ref().Equals(input) != expected {
			t.Errorf("%q: expected %v", input, expected)
		}
	}
	if s := balanced.Ref().String(); s != "balanced" {
		t.Errorf("expected rule to render as its name, is %s", s)
	}
}

func TestGrammarExpression(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	g := NewGrammar()
	expr := g.Declare("expr")
	term := g.Declare("term")
	number := Must(OneOrMore(Char("digit", charclass.Digit)))
	factor := Either(number, Concat(Literal("("), expr.Ref(), Literal(")")))
	ops := Either(Literal("*"), Literal("/"))
	if err := g.Bind(term, factor.Then(Optional(Must(OneOrMore(ops.Then(factor)))))); err != nil {
		t.Fatal(err)
	}
	adds := Either(Literal("+"), Literal("-"))
	if err := g.Bind(expr, term.Ref().Then(Optional(Must(OneOrMore(adds.Then(term.Ref())))))); err != nil {
		t.Fatal(err)
	}
	if r := expr.Ref().Consume("1+2*(3-4)/5 rest"); r.Text != "1+2*(3-4)/5" {
		t.Errorf("expected arithmetic expression, have %q", r.Text)
	}
	if got, ok := g.Rule("term"); !ok || got != term || !got.Bound() {
		t.Errorf("expected rule 'term' to be declared and bound")
	}
	if g.Size() != 2 {
		t.Errorf("expected 2 rules, have %d", g.Size())
	}
}

func TestGrammarLeftRecursion(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	g := NewGrammar()
	list := g.Declare("list")
	item := g.Declare("item")
	if err := g.Bind(item, Either(Literal("x"), list.Ref())); err != nil {
		t.Fatal(err)
	}
	err := g.Bind(list, Optional(Literal(",")).Then(item.Ref()))
	if !errors.Is(err, ErrLeftRecursion) {
		t.Fatalf("expected left recursion to be rejected, have %v", err)
	}
	if list.Bound() {
		t.Errorf("expected rejected rule to remain unbound")
	}
	// consuming a comma first is fine
	if err := g.Bind(list, Literal(",").Then(item.Ref())); err != nil {
		t.Errorf("expected right-recursive rule to be accepted, have %v", err)
	}
	if err := g.Bind(list, Literal(";")); !errors.Is(err, ErrTargetBound) {
		t.Errorf("expected second binding to be rejected, have %v", err)
	}
}

func TestGrammarZeroWidthThroughRule(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	g := NewGrammar()
	maybe := g.Declare("maybe")
	many, err := OneOrMore(maybe.Ref()) // accepted: maybe is unbound
	if err != nil {
		t.Fatal(err)
	}
	if err := g.Bind(g.Declare("many"), many); err != nil {
		t.Fatal(err)
	}
	if err := g.Bind(maybe, Optional(Literal("a"))); !errors.Is(err, ErrZeroWidthSpan) {
		t.Errorf("expected binding to be rejected because of the span, have %v", err)
	}
}

func TestUnboundTarget(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	g := NewGrammar()
	later := g.Declare("later")
	p := Literal("a").Then(later.Ref())
	if err := Validate(p); !errors.Is(err, ErrUnboundTarget) {
		t.Errorf("expected Validate to report unbound rule, have %v", err)
	}
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrUnboundTarget) {
			t.Errorf("expected panic with unbound-target error, have %v", r)
		}
	}()
	p.Consume("ab")
	t.Errorf("expected matching an unbound rule to panic")
}

func TestValidate(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	ok := Must(OneOrMore(Literal("a"))).Then(Optional(Literal("b")))
	if err := Validate(ok); err != nil {
		t.Errorf("expected valid pattern, have %v", err)
	}
	// a span made nullable through unsafe composition is caught by Validate
	seq := Concat(Literal("a"))
	span := Must(OneOrMore(seq))
	seq.children = seq.children[:0]
	if err := Validate(span); !errors.Is(err, ErrZeroWidthSpan) {
		t.Errorf("expected Validate to report zero-width span, have %v", err)
	}
}
