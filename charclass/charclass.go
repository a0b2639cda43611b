/*
Package charclass provides character classification predicates.

Predicates decide membership of a single Unicode code-point in a class of
characters. They are the building blocks of checker patterns in package
pmatch, which apply predicates to the first, the interior and the last
character of a match.

	ident := charclass.Or(charclass.Letter, charclass.Runes("_"))
	ident('x')     // => true

Classes may also be given as Unicode range tables. Multiple tables are merged
into a single one upfront:

	cjk := charclass.In(unicode.Han, unicode.Hiragana, unicode.Katakana)

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package charclass

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// Predicate tests a single code-point for membership in a character class.
type Predicate func(r rune) bool

// Standard predicates.
var (
	Any           Predicate = func(rune) bool { return true }
	Letter        Predicate = unicode.IsLetter
	Digit         Predicate = unicode.IsDigit
	Number        Predicate = unicode.IsNumber
	Space         Predicate = unicode.IsSpace
	Upper         Predicate = unicode.IsUpper
	Lower         Predicate = unicode.IsLower
	Punct         Predicate = unicode.IsPunct
	Symbol        Predicate = unicode.IsSymbol
	Control       Predicate = unicode.IsControl
	Graphic       Predicate = unicode.IsGraphic
	LetterOrDigit Predicate = func(r rune) bool { return unicode.IsLetter(r) || unicode.IsDigit(r) }
	ASCIIDigit    Predicate = Range('0', '9')
	HexDigit      Predicate = Or(ASCIIDigit, Range('a', 'f'), Range('A', 'F'))
)

// Runes returns a predicate matching every rune contained in s.
func Runes(s string) Predicate {
	if len(s) < 16 {
		return func(r rune) bool {
			return strings.ContainsRune(s, r)
		}
	}
	return In(rangetable.New([]rune(s)...))
}

// Range returns a predicate matching runes from lo to hi, inclusive.
func Range(lo, hi rune) Predicate {
	return func(r rune) bool {
		return r >= lo && r <= hi
	}
}

// In returns a predicate matching runes contained in any of the given
// range tables. Tables are merged into a single table.
func In(tables ...*unicode.RangeTable) Predicate {
	var table *unicode.RangeTable
	switch len(tables) {
	case 0:
		return func(rune) bool { return false }
	case 1:
		table = tables[0]
	default:
		table = rangetable.Merge(tables...)
	}
	return func(r rune) bool {
		return unicode.Is(table, r)
	}
}

// Named looks up a Unicode category, script or property by name, e.g.
// "Lu", "Greek" or "White_Space", and returns a predicate for it.
func Named(name string) (Predicate, bool) {
	if t, ok := unicode.Categories[name]; ok {
		return In(t), true
	}
	if t, ok := unicode.Scripts[name]; ok {
		return In(t), true
	}
	if t, ok := unicode.Properties[name]; ok {
		return In(t), true
	}
	return nil, false
}

// Or returns a predicate matching if any of ps matches.
func Or(ps ...Predicate) Predicate {
	return func(r rune) bool {
		for _, p := range ps {
			if p(r) {
				return true
			}
		}
		return false
	}
}

// And returns a predicate matching if all of ps match.
func And(ps ...Predicate) Predicate {
	return func(r rune) bool {
		for _, p := range ps {
			if !p(r) {
				return false
			}
		}
		return true
	}
}

// Not returns the complement of p.
func Not(p Predicate) Predicate {
	return func(r rune) bool {
		return !p(r)
	}
}

// Or combines p with other predicates, matching if any of them matches.
func (p Predicate) Or(others ...Predicate) Predicate {
	return Or(append([]Predicate{p}, others...)...)
}

// Except restricts p to runes not matched by q.
func (p Predicate) Except(q Predicate) Predicate {
	return And(p, Not(q))
}
