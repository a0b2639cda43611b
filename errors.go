package pmatch

import (
	"fmt"
)

// ErrorCode identifies the rule a pattern construction has violated.
type ErrorCode int8

// Codes for construction errors.
const (
	NoError           ErrorCode = iota
	ZeroRequired                // checker without any required position
	MissingPredicate            // required checker position without a predicate
	ZeroWidthSpan               // one-or-more over a body which may match the empty string
	NullableEscape              // range escape which may match the empty string
	MissingAnchor               // regular expression without a leading start anchor
	InvalidExpression           // regular expression which does not compile
	EmptyKeyword                // keyword set without keywords or with an empty keyword
	NegativeCount               // repetition with a negative count
	LeftRecursion               // target which refers to itself without consuming input
	UnboundTarget               // target which has not been bound to a pattern
	TargetBound                 // target bound a second time
	KindMismatch                // in-place composition applied to the wrong kind of pattern
	NilPattern                  // nil pattern given as an operand
)

var errorCodeNames = [...]string{
	"no error",
	"zero required positions",
	"missing predicate",
	"zero-width span",
	"nullable escape",
	"missing start anchor",
	"invalid expression",
	"empty keyword",
	"negative count",
	"left recursion",
	"unbound target",
	"target already bound",
	"kind mismatch",
	"nil pattern",
}

func (c ErrorCode) String() string {
	if c < 0 || int(c) >= len(errorCodeNames) {
		return fmt.Sprintf("ErrorCode(%d)", int(c))
	}
	return errorCodeNames[c]
}

// Error is the single error kind for malformed grammars and misuse of handles.
// Code tells which rule has been violated.
type Error struct {
	Code    ErrorCode
	Pattern string // rendering of the offending pattern, if any
	Message string
	cause   error
}

// Sentinel errors, one per code. Use them with errors.Is:
//
//   if errors.Is(err, pmatch.ErrZeroWidthSpan) { … }
//
var (
	ErrZeroRequired      = &Error{Code: ZeroRequired}
	ErrMissingPredicate  = &Error{Code: MissingPredicate}
	ErrZeroWidthSpan     = &Error{Code: ZeroWidthSpan}
	ErrNullableEscape    = &Error{Code: NullableEscape}
	ErrMissingAnchor     = &Error{Code: MissingAnchor}
	ErrInvalidExpression = &Error{Code: InvalidExpression}
	ErrEmptyKeyword      = &Error{Code: EmptyKeyword}
	ErrNegativeCount     = &Error{Code: NegativeCount}
	ErrLeftRecursion     = &Error{Code: LeftRecursion}
	ErrUnboundTarget     = &Error{Code: UnboundTarget}
	ErrTargetBound       = &Error{Code: TargetBound}
	ErrKindMismatch      = &Error{Code: KindMismatch}
	ErrNilPattern        = &Error{Code: NilPattern}
)

func (e *Error) Error() string {
	msg := "pattern construction: " + e.Code.String()
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Pattern != "" {
		msg += " in " + e.Pattern
	}
	return msg
}

// Is reports whether target is an *Error with the same code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// Unwrap returns the underlying cause, e.g. an error of a regular expression
// compiler.
func (e *Error) Unwrap() error {
	return e.cause
}

// constructionError creates an error for code, traces it and returns it.
func constructionError(code ErrorCode, p *Pattern, format string, args ...interface{}) *Error {
	e := &Error{Code: code}
	if len(args) > 0 {
		format = fmt.Sprintf(format, args...)
	}
	e.Message = format
	if p != nil {
		e.Pattern = p.String()
	}
	CT().Debugf("%s", e.Error())
	return e
}

// Must panics if err is non-nil and returns p otherwise. It is intended for
// grammars built during package initialization:
//
//   var number = pmatch.Must(pmatch.OneOrMore(pmatch.Char("digit", charclass.Digit)))
//
func Must(p *Pattern, err error) *Pattern {
	if err != nil {
		panic(err)
	}
	return p
}
