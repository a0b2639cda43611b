package pmatch

import (
	"sync"
	"unicode/utf8"

	"github.com/npillmayer/pmatch/source"
	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Literals compare input text either code-point by code-point, case-folded,
// or under the collation rules of a language.
type literalMode int8

const (
	ordinal literalMode = iota
	foldCase
	culture
	cultureIgnoreCase
)

func (m literalMode) String() string {
	switch m {
	case foldCase:
		return "i"
	case culture:
		return "c"
	case cultureIgnoreCase:
		return "ci"
	}
	return ""
}

type literal struct {
	text   string
	n      int // length of text in runes
	mode   literalMode
	tag    language.Tag
	folded string
	nfcLen int        // length of NFC(text) in runes, culture modes only
	mu     sync.Mutex // casers and collators are stateful
	caser  cases.Caser
	coll   *collate.Collator
}

// LiteralOption configures the comparison mode of a literal.
type LiteralOption func(*literal)

// IgnoreCase lets a literal compare case-insensitively, using Unicode
// simple case folding.
func IgnoreCase() LiteralOption {
	return func(lit *literal) {
		lit.mode = foldCase
	}
}

// InCulture lets a literal compare input using the collation rules for a
// language. Canonically equivalent text compares equal: a literal "café"
// matches both precomposed and decomposed (e + U+0301) input.
func InCulture(tag language.Tag) LiteralOption {
	return func(lit *literal) {
		lit.mode = culture
		lit.tag = tag
	}
}

// CultureIgnoreCase is like InCulture, but ignores differences in case.
func CultureIgnoreCase(tag language.Tag) LiteralOption {
	return func(lit *literal) {
		lit.mode = cultureIgnoreCase
		lit.tag = tag
	}
}

// CurrentCulture lets a literal compare input using the collation rules of
// the language of the user environment (see Culture).
func CurrentCulture(ignoreCase bool) LiteralOption {
	if ignoreCase {
		return CultureIgnoreCase(Culture())
	}
	return InCulture(Culture())
}

// Literal creates a pattern matching text. Without options, comparison is
// exact and case-sensitive.
//
// Ordinal and case-folding literals span as many characters of the input as
// text has runes. Culture-sensitive literals span the shortest prefix of the
// input ending at a normalization boundary which, composed to NFC, has as
// many runes as text composed to NFC, and which collates equal to text.
func Literal(text string, opts ...LiteralOption) *Pattern {
	lit := &literal{text: text, n: utf8.RuneCountInString(text)}
	for _, opt := range opts {
		opt(lit)
	}
	switch lit.mode {
	case foldCase:
		lit.caser = cases.Fold()
		lit.folded = lit.caser.String(text)
	case culture:
		lit.coll = collate.New(lit.tag)
	case cultureIgnoreCase:
		lit.coll = collate.New(lit.tag, collate.IgnoreCase)
	}
	if lit.coll != nil {
		lit.nfcLen = utf8.RuneCountInString(norm.NFC.String(text))
	}
	return &Pattern{kind: LiteralKind, lit: lit}
}

func (lit *literal) match(src *source.Source) bool {
	if lit.n == 0 {
		return true
	}
	if lit.coll != nil {
		return lit.matchComposed(src)
	}
	s, ok := src.Peek(lit.n)
	if !ok || !lit.equal(s) {
		return false
	}
	src.Advance(lit.n)
	return true
}

// matchComposed tries input windows whose NFC form is as long as the
// literal's, in increasing length.
func (lit *literal) matchComposed(src *source.Source) bool {
	for k := 1; ; k++ {
		window, ok := src.Peek(k)
		if !ok {
			return false
		}
		n := utf8.RuneCountInString(norm.NFC.String(window))
		if n > lit.nfcLen {
			return false
		}
		if n < lit.nfcLen || !boundaryAt(src, k) || !lit.equal(window) {
			continue
		}
		src.Advance(k)
		return true
	}
}

// boundaryAt is true if the rune k positions ahead does not combine with
// its predecessor.
func boundaryAt(src *source.Source, k int) bool {
	r, ok := src.RuneAt(k)
	if !ok {
		return true
	}
	return norm.NFC.PropertiesString(string(r)).BoundaryBefore()
}

func (lit *literal) equal(s string) bool {
	if lit.mode == ordinal {
		return s == lit.text
	}
	lit.mu.Lock()
	defer lit.mu.Unlock()
	if lit.mode == foldCase {
		return lit.caser.String(s) == lit.folded
	}
	return lit.coll.CompareString(s, lit.text) == 0
}
