package segment

import (
	"fmt"

	"github.com/npillmayer/gorgo/lr/scanner"
	"github.com/npillmayer/pmatch"
	"github.com/npillmayer/pmatch/source"
)

// TokenRule maps a pattern to a token value. Tokens of rules with Skip set
// are recognized but not handed out, e.g. for whitespace and comments.
type TokenRule struct {
	Value   int
	Pattern *pmatch.Pattern
	Skip    bool
}

// Tokenizer implements the scanner.Tokenizer interface. It recognizes tokens
// by a list of rules, trying them in order.
type Tokenizer struct {
	rules   []TokenRule
	src     *source.Source
	handler func(error)
}

var _ scanner.Tokenizer = (*Tokenizer)(nil)

// NewTokenizer creates a tokenizer for input.
func NewTokenizer(input string, rules ...TokenRule) *Tokenizer {
	return &Tokenizer{
		rules: rules,
		src:   source.New(input),
		handler: func(err error) {
			CT().Errorf("%v", err)
		},
	}
}

// SetErrorHandler sets an error handler function, which receives an error
// for every character no rule matches. The character is skipped afterwards.
func (tz *Tokenizer) SetErrorHandler(h func(error)) {
	if h != nil {
		tz.handler = h
	}
}

// NextToken reads the next token, returning its value, its text, and
// position and length in bytes.
//
// Rules with a value contained in expected are tried first, then all other
// rules. At the end of the input NextToken returns scanner.EOF.
func (tz *Tokenizer) NextToken(expected []int) (int, interface{}, uint64, uint64) {
	rules := tz.candidates(expected)
	for !tz.src.EOF() {
		at := tz.src.ByteOffset(tz.src.Pos())
		matched := false
		for _, rule := range rules {
			r := rule.Pattern.ConsumeFrom(tz.src)
			if !r.OK || r.Len() == 0 {
				continue
			}
			matched = true
			if rule.Skip {
				break
			}
			CT().Debugf("token %d = %q", rule.Value, r.Text)
			return rule.Value, r.Text, uint64(at), uint64(len(r.Text))
		}
		if !matched {
			r, _ := tz.src.RuneAt(0)
			tz.handler(fmt.Errorf("%w: unexpected %q at byte %d", ErrNoMatch, r, at))
			tz.src.Advance(1)
		}
	}
	return scanner.EOF, "", uint64(len(tz.src.Text())), 0
}

// candidates orders the rules for a set of expected token values: expected
// rules and skip rules first, then all others. Order is stable otherwise.
func (tz *Tokenizer) candidates(expected []int) []TokenRule {
	if len(expected) == 0 {
		return tz.rules
	}
	first := make([]TokenRule, 0, len(tz.rules))
	var rest []TokenRule
	for _, rule := range tz.rules {
		if rule.Skip || contains(expected, rule.Value) {
			first = append(first, rule)
		} else {
			rest = append(rest, rule)
		}
	}
	return append(first, rest...)
}

func contains(values []int, v int) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}
