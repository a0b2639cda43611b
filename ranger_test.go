package pmatch

import (
	"errors"
	"testing"

	"github.com/npillmayer/pmatch/charclass"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
)

func TestRangeDoubledQuote(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	quote := Literal(`"`)
	str := Must(Range(quote, quote, Literal(`""`)))
	input := `"Hello""Goodbye"`
	if r := str.Consume(input); r.Text != input {
		t.Errorf("expected %s, have %q", input, r.Text)
	}
	if r := str.Consume(`"a" "b"`); r.Text != `"a"` {
		t.Errorf("expected first string only, have %q", r.Text)
	}
	if r := str.Consume(`"a""`); r.OK {
		t.Errorf("expected unterminated string to fail, have %q", r.Text)
	}
}

func TestRangeBackslash(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	quote := Literal(`"`)
	str := Must(Range(quote, quote, Literal(`\`)))
	input := `"Hello\"Goodbye"`
	if r := str.Consume(input + " rest"); r.Text != input {
		t.Errorf("expected %s, have %q", input, r.Text)
	}
	if r := str.Consume(`"a\b"`); r.Text != `"a\b"` {
		t.Errorf("expected escape without delimiter to be content, have %q", r.Text)
	}
}

func TestRangeWithoutEscape(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	comment := Must(Range(Literal("/*"), Literal("*/"), nil))
	if r := comment.Consume("/* x */ y */"); r.Text != "/* x */" {
		t.Errorf("expected shortest comment, have %q", r.Text)
	}
	if r := comment.Consume("/**/"); r.Text != "/**/" {
		t.Errorf("expected empty comment, have %q", r.Text)
	}
	if r := comment.Consume("/* open"); r.OK || r.End != 0 {
		t.Errorf("expected open comment to fail without consuming, have %q", r.Text)
	}
	if _, err := Range(Literal("<"), Literal(">"), Optional(Literal("!"))); !errors.Is(err, ErrNullableEscape) {
		t.Errorf("expected nullable escape to be rejected, have %v", err)
	}
}

func TestRangeCaptureDelimiter(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	name := NewCapture("name")
	letters := Must(OneOrMore(Char("letter", charclass.Letter)))
	from := Literal("Hello ").Then(Capturing(name, letters), Literal("!"))
	to := Literal("Goodbye ").Then(BackRef(name), Literal("."))
	dialog := Must(Range(from, to, nil))
	input := "Hello World! ... Goodbye World."
	if r := dialog.Consume(input); r.Text != input {
		t.Errorf("expected whole dialog, have %q", r.Text)
	}
	if text, ok := name.Text(); !ok || text != "World" {
		t.Errorf("expected capture 'World', have %q", text)
	}
	if r := dialog.Consume("Hello World! ... Goodbye Moon."); r.OK {
		t.Errorf("expected different names not to close the range, have %q", r.Text)
	}
}
