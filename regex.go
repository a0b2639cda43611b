package pmatch

import (
	"regexp"
	"regexp/syntax"
	"strings"
	"unicode/utf8"

	"github.com/coregx/coregex"
	"github.com/npillmayer/pmatch/source"
	"github.com/wasilibs/go-re2"
)

// Engine selects the regular expression engine a Regex pattern delegates to.
type Engine int8

// Available engines. Coregex is the default.
const (
	Coregex Engine = iota // github.com/coregx/coregex
	RE2                   // github.com/wasilibs/go-re2
	Stdlib                // package regexp
)

// Matcher is the narrow interface to an external regular expression engine.
type Matcher interface {
	FindStringIndex(s string) []int
}

type adapter struct {
	expr        string // expression as given by the client
	body        string // expression without anchors
	endAnchored bool
	engine      Engine
	nullable    bool // may the body match the empty string?
	m           Matcher
}

// RegexOption configures a Regex pattern.
type RegexOption func(*adapter)

// WithEngine selects the engine to delegate matching to.
func WithEngine(e Engine) RegexOption {
	return func(rx *adapter) {
		rx.engine = e
	}
}

// Regex bridges a regular expression in Go/RE2 syntax as a leaf pattern.
//
// Patterns always match at the current position of the input and never
// search. Therefore expr must start with an explicit start anchor (^ or \A);
// otherwise Regex returns an error of code MissingAnchor. A trailing end
// anchor ($ or \z) is optional and keeps its meaning: the match has to extend
// to the end of the input.
//
// The anchors are stripped and the remaining expression is handed to the
// engine. Matches of the engine are accepted only if they start exactly at
// the current position.
//
// The start anchor binds the whole expression: "^a|b" matches like "^(?:a|b)",
// not like Go's "(?:^a)|b". Flags have to follow the anchor, so write
// "^(?i)abc"; "(?i)^abc" is rejected with MissingAnchor.
//
// The engine sees only the input from the current position on, which it takes
// for the start of text. Assertions looking behind the cursor are blind to
// what was consumed before: \b and \B treat the cursor as the start of text,
// so "^\bfoo" matches "foo" within "xfoo" at offset 1.
func Regex(expr string, opts ...RegexOption) (*Pattern, error) {
	rx := &adapter{expr: expr}
	for _, opt := range opts {
		opt(rx)
	}
	p := &Pattern{kind: RegexKind, rx: rx}
	body, ok := stripStartAnchor(expr)
	if !ok {
		return nil, constructionError(MissingAnchor, p, "expression has to start with ^ or \\A")
	}
	rx.body, rx.endAnchored = stripEndAnchor(body)
	parsed, err := syntax.Parse(rx.body, syntax.Perl)
	if err != nil {
		e := constructionError(InvalidExpression, p, "%v", err)
		e.cause = err
		return nil, e
	}
	rx.nullable = nullableSyntax(parsed)
	anchored := "^(?:" + rx.body + ")"
	if rx.endAnchored {
		anchored += "$"
	}
	if rx.m, err = compileWith(rx.engine, anchored); err != nil {
		e := constructionError(InvalidExpression, p, "%v", err)
		e.cause = err
		return nil, e
	}
	return p, nil
}

func compileWith(engine Engine, expr string) (Matcher, error) {
	switch engine {
	case RE2:
		return re2.Compile(expr)
	case Stdlib:
		return regexp.Compile(expr)
	}
	return coregex.Compile(expr)
}

func (rx *adapter) match(src *source.Source) bool {
	rest := src.Rest()
	loc := rx.m.FindStringIndex(rest)
	if loc == nil || loc[0] != 0 {
		return false
	}
	src.Advance(utf8.RuneCountInString(rest[:loc[1]]))
	return true
}

func stripStartAnchor(expr string) (string, bool) {
	switch {
	case strings.HasPrefix(expr, "^"):
		return expr[1:], true
	case strings.HasPrefix(expr, `\A`):
		return expr[2:], true
	}
	return expr, false
}

// stripEndAnchor removes a trailing, unescaped $ or \z.
func stripEndAnchor(expr string) (string, bool) {
	var body string
	switch {
	case strings.HasSuffix(expr, "$"):
		body = expr[:len(expr)-1]
	case strings.HasSuffix(expr, `\z`):
		body = expr[:len(expr)-2]
	default:
		return expr, false
	}
	backslashes := len(body) - len(strings.TrimRight(body, `\`))
	if backslashes%2 == 1 { // anchor is escaped
		return expr, false
	}
	return body, true
}

// nullableSyntax tells if a parsed regular expression may match the empty string.
func nullableSyntax(re *syntax.Regexp) bool {
	switch re.Op {
	case syntax.OpNoMatch, syntax.OpCharClass, syntax.OpAnyCharNotNL, syntax.OpAnyChar:
		return false
	case syntax.OpLiteral:
		return len(re.Rune) == 0
	case syntax.OpStar, syntax.OpQuest:
		return true
	case syntax.OpPlus, syntax.OpCapture:
		return nullableSyntax(re.Sub[0])
	case syntax.OpRepeat:
		return re.Min == 0 || nullableSyntax(re.Sub[0])
	case syntax.OpConcat:
		for _, sub := range re.Sub {
			if !nullableSyntax(sub) {
				return false
			}
		}
		return true
	case syntax.OpAlternate:
		for _, sub := range re.Sub {
			if nullableSyntax(sub) {
				return true
			}
		}
		return false
	}
	// empty match and zero-width assertions
	return true
}
