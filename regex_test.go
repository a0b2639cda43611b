package pmatch

import (
	"errors"
	"regexp/syntax"
	"testing"

	"github.com/npillmayer/pmatch/source"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
)

var engines = map[string]Engine{
	"coregex": Coregex,
	"re2":     RE2,
	"stdlib":  Stdlib,
}

func TestRegexAnchorRequired(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	for _, expr := range []string{`a+`, `a+$`, `(^a)`} {
		if _, err := Regex(expr); !errors.Is(err, ErrMissingAnchor) {
			t.Errorf("%s: expected missing anchor to be rejected, have %v", expr, err)
		}
	}
	for _, expr := range []string{`^a+`, `^a+$`, `\Aa+`, `\Aa+\z`, `^a\$`} {
		if _, err := Regex(expr); err != nil {
			t.Errorf("%s: expected expression to be accepted, have %v", expr, err)
		}
	}
}

func TestRegexInvalid(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	_, err := Regex(`^(a`)
	if !errors.Is(err, ErrInvalidExpression) {
		t.Fatalf("expected invalid expression to be rejected, have %v", err)
	}
	var serr *syntax.Error
	if !errors.As(err, &serr) {
		t.Errorf("expected cause to be a syntax error, have %T", errors.Unwrap(err))
	}
}

func TestRegexEngines(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	for name, engine := range engines {
		prefix := Must(Regex(`^a+`, WithEngine(engine)))
		if r := prefix.Consume("aaab"); r.Text != "aaa" {
			t.Errorf("%s: expected 'aaa', have %q", name, r.Text)
		}
		if r := prefix.Consume("baaa"); r.OK {
			t.Errorf("%s: expected no match at offset 0, have %q", name, r.Text)
		}
		whole := Must(Regex(`^a+$`, WithEngine(engine)))
		if r := whole.Consume("aaab"); r.OK {
			t.Errorf("%s: expected end anchor to be kept, have %q", name, r.Text)
		}
		if !whole.Equals("aaa") {
			t.Errorf("%s: expected 'aaa' to match with end anchor", name)
		}
		alt := Must(Regex(`^(?:x|ab)`, WithEngine(engine)))
		if r := alt.Consume("abx"); r.Text != "ab" {
			t.Errorf("%s: expected anchoring to cover all alternatives, have %q", name, r.Text)
		}
	}
}

func TestRegexAtOffset(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	for name, engine := range engines {
		word := Must(Regex(`^\pL+`, WithEngine(engine)))
		src := source.New("¿Qué tal?")
		if r := word.ConsumeFrom(src); r.OK {
			t.Errorf("%s: expected no match at '¿', have %q", name, r.Text)
		}
		src.Advance(1)
		r := word.ConsumeFrom(src)
		if r.Text != "Qué" || r.Start != 1 || r.End != 4 {
			t.Errorf("%s: expected 'Qué' at [1,4), have %q at [%d,%d)", name, r.Text, r.Start, r.End)
		}
		if src.Pos() != 4 {
			t.Errorf("%s: expected source to be advanced to 4, is %d", name, src.Pos())
		}
	}
}

func TestRegexNullability(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	for expr, expected := range map[string]bool{
		`^a`:          false,
		`^a*`:         true,
		`^a?b`:        false,
		`^(a|b?)`:     true,
		`^a{0,3}`:     true,
		`^a{2}`:       false,
		`^\b`:         true,
		`^[0-9]+`:     false,
		`^(?:ab)+`:    false,
		`^(x*)(y*)`:   true,
		`^.`:          false,
		`^$`:          true,
		`^(?i)abc|\d`: false,
	} {
		p := Must(Regex(expr))
		if nullable(p) != expected {
			t.Errorf("%s: expected nullable=%v", expr, expected)
		}
	}
}

func TestRegexAnchorBindsWholeExpression(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	for name, engine := range engines {
		ab := Must(Regex(`^a|b`, WithEngine(engine)))
		if r := ab.Consume("b"); !r.OK || r.Text != "b" {
			t.Errorf("%s: expected '^a|b' to match 'b', have %v/%q", name, r.OK, r.Text)
		}
		if r := ab.Consume("xb"); r.OK {
			t.Errorf("%s: expected '^a|b' not to search past the cursor, have %q", name, r.Text)
		}
		fold := Must(Regex(`^(?i)abc`, WithEngine(engine)))
		if r := fold.Consume("ABC"); r.Text != "ABC" {
			t.Errorf("%s: expected flags after the anchor to apply, have %q", name, r.Text)
		}
	}
	if _, err := Regex(`(?i)^abc`); !errors.Is(err, ErrMissingAnchor) {
		t.Errorf("expected flags before the anchor to be rejected, have %v", err)
	}
}

func TestRegexCursorIsStartOfText(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	for name, engine := range engines {
		foo := Must(Regex(`^\bfoo`, WithEngine(engine)))
		src := source.New("xfoo")
		src.Advance(1)
		if r := foo.ConsumeFrom(src); !r.OK || r.Start != 1 {
			t.Errorf("%s: expected word boundary at the cursor, have %v at %d", name, r.OK, r.Start)
		}
	}
}
