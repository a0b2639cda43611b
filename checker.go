package pmatch

import (
	"github.com/npillmayer/pmatch/charclass"
	"github.com/npillmayer/pmatch/source"
)

// Position configures one of the three positions of a checker: head, middle
// or tail. A position with a nil predicate is absent.
type Position struct {
	Pred     charclass.Predicate
	Required bool
}

// Req returns a required position for predicate p.
func Req(p charclass.Predicate) Position {
	return Position{Pred: p, Required: true}
}

// Opt returns an optional position for predicate p.
func Opt(p charclass.Predicate) Position {
	return Position{Pred: p}
}

// None is an absent checker position.
var None = Position{}

// Bias decides which predicate of a biased checker governs a match of length 1,
// as a single character is first and last character at the same time.
type Bias int8

// Biases for CheckBiased.
const (
	HeadBias Bias = iota
	TailBias
)

type checker struct {
	name               string
	head, middle, tail Position
	biased             bool
	bias               Bias
}

// Check creates a checker pattern. The head predicate applies to the first
// character of a match, the tail predicate to the last one and the middle
// predicate to every character in between; a required middle position needs
// at least one such character. The minimum length of a match is the number
// of required positions.
//
// Checkers match greedily: of all the ways to split the input into head,
// middle and tail, the one resulting in the longest match is taken.
//
// A checker without required positions could match the empty string and is
// rejected with an error of code ZeroRequired.
func Check(name string, head, middle, tail Position) (*Pattern, error) {
	chk := &checker{name: name, head: head, middle: middle, tail: tail}
	p := &Pattern{kind: CheckerKind, check: chk}
	required := 0
	for _, pos := range [...]Position{head, middle, tail} {
		if pos.Required {
			if pos.Pred == nil {
				return nil, constructionError(MissingPredicate, p, "required position of checker %q has no predicate", name)
			}
			required++
		}
	}
	if required == 0 {
		return nil, constructionError(ZeroRequired, p, "checker %q may match the empty string", name)
	}
	return p, nil
}

// CheckBiased creates a checker from head, middle and tail predicates without
// required/optional flags. Matches of length two or more start with a head
// character, end with a tail character and have middle characters in between.
// A match of length 1 is governed by the head predicate for HeadBias and by
// the tail predicate for TailBias.
//
// Head and tail must not be nil; middle may be nil, restricting matches to
// at most two characters.
func CheckBiased(name string, bias Bias, head, middle, tail charclass.Predicate) (*Pattern, error) {
	chk := &checker{name: name, head: Opt(head), middle: Opt(middle), tail: Opt(tail),
		biased: true, bias: bias}
	p := &Pattern{kind: CheckerKind, check: chk}
	if head == nil || tail == nil {
		return nil, constructionError(MissingPredicate, p, "biased checker %q needs head and tail predicates", name)
	}
	return p, nil
}

// Char creates a checker matching a single character satisfying pred.
func Char(name string, pred charclass.Predicate) *Pattern {
	if pred == nil {
		panic(&Error{Code: MissingPredicate, Message: "character class " + name})
	}
	return &Pattern{kind: CheckerKind, check: &checker{name: name, head: Req(pred)}}
}

// Any creates a pattern matching any single character.
func Any() *Pattern {
	return Char("any", charclass.Any)
}

func (chk *checker) match(src *source.Source) bool {
	var n int
	if chk.biased {
		n = chk.longestBiased(src)
	} else {
		n = chk.longest(src)
	}
	if n <= 0 {
		return false
	}
	src.Advance(n)
	return true
}

// longest returns the length of the longest match at the read position of src,
// or 0.
func (chk *checker) longest(src *source.Source) int {
	best := 0
	for h := 0; h <= 1; h++ {
		if !allowed(chk.head, h) {
			continue
		}
		if h == 1 && !holds(chk.head.Pred, src, 0) {
			continue
		}
		run := chk.middleRun(src, h)
		mmin := 0
		if chk.middle.Required {
			mmin = 1
		}
		if run < mmin {
			continue
		}
		for t := 0; t <= 1; t++ {
			if !allowed(chk.tail, t) {
				continue
			}
			if t == 0 {
				best = max(best, h+run)
				continue
			}
			// the tail character may be one of the middle run; find the
			// longest middle count still leaving a tail character
			for m := run; m >= mmin; m-- {
				if holds(chk.tail.Pred, src, h+m) {
					best = max(best, h+m+1)
					break
				}
			}
		}
	}
	return best
}

func (chk *checker) longestBiased(src *source.Source) int {
	if !holds(chk.head.Pred, src, 0) {
		if chk.bias == TailBias && holds(chk.tail.Pred, src, 0) {
			return 1
		}
		return 0
	}
	run := chk.middleRun(src, 1)
	for m := run; m >= 0; m-- {
		if holds(chk.tail.Pred, src, 1+m) {
			return m + 2
		}
	}
	if chk.bias == HeadBias || holds(chk.tail.Pred, src, 0) {
		return 1
	}
	return 0
}

// middleRun counts the characters satisfying the middle predicate, starting
// at offset from.
func (chk *checker) middleRun(src *source.Source, from int) int {
	if chk.middle.Pred == nil {
		return 0
	}
	n := 0
	for holds(chk.middle.Pred, src, from+n) {
		n++
	}
	return n
}

// allowed tells if a position may be used (n=1) or left out (n=0).
func allowed(pos Position, n int) bool {
	if n == 1 {
		return pos.Pred != nil
	}
	return !pos.Required
}

func holds(pred charclass.Predicate, src *source.Source, i int) bool {
	r, ok := src.RuneAt(i)
	return ok && pred(r)
}
