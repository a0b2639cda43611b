package pmatch

import (
	"strings"
	"unicode/utf8"

	"github.com/coregx/ahocorasick"
	"github.com/npillmayer/pmatch/source"
)

type keywords struct {
	words  []string
	maxLen int // in bytes
	auto   *ahocorasick.Automaton
}

// Keywords creates a pattern matching one of words. It behaves like an
// ordered choice of literals: the first word in the given order which
// matches at the current position wins.
//
// Large sets of keywords are pre-filtered with an Aho-Corasick automaton,
// which makes failing matches cheap.
func Keywords(words ...string) (*Pattern, error) {
	kw := &keywords{words: words}
	p := &Pattern{kind: KeywordsKind, kw: kw}
	if len(words) == 0 {
		return nil, constructionError(EmptyKeyword, p, "no keywords given")
	}
	builder := ahocorasick.NewBuilder()
	for _, w := range words {
		if w == "" {
			return nil, constructionError(EmptyKeyword, p, "keywords must not be empty")
		}
		kw.maxLen = max(kw.maxLen, len(w))
		builder.AddPattern([]byte(w))
	}
	auto, err := builder.Build()
	if err != nil {
		e := constructionError(InvalidExpression, p, "%v", err)
		e.cause = err
		return nil, e
	}
	kw.auto = auto
	return p, nil
}

func (kw *keywords) match(src *source.Source) bool {
	if src.EOF() {
		return false
	}
	haystack := src.Bytes()
	at := src.ByteOffset(src.Pos())
	end := at + kw.maxLen
	if end > len(haystack) {
		end = len(haystack)
	}
	// No keyword anywhere in the window means none starts at the cursor.
	// A hit may start later, though, so the ordered scan decides.
	if kw.auto.Find(haystack[:end], at) == nil {
		return false
	}
	rest := src.Rest()
	for _, w := range kw.words { // first listed keyword wins
		if strings.HasPrefix(rest, w) {
			src.Advance(utf8.RuneCountInString(w))
			return true
		}
	}
	return false
}
