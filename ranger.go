package pmatch

import (
	"github.com/npillmayer/pmatch/source"
)

// Range creates a pattern matching from an occurrence of from through to the
// next occurrence of to, including both delimiters and everything in
// between. to may refer to captured text (see BackRef), letting a range end
// at the same text its start has captured.
//
// escape is optional (may be nil). It comes in two flavours:
//
// If the escape matches where the closing delimiter matches as well, the
// escape is the complete escaped form of the delimiter, e.g. a doubled
// quote:
//
//	Range(Literal(`"`), Literal(`"`), Literal(`""`))    // "Hello""Goodbye"
//
// Otherwise an escape immediately followed by the closing delimiter turns
// that delimiter into content, e.g. a backslash:
//
//	Range(Literal(`"`), Literal(`"`), Literal(`\`))     // "Hello\"Goodbye"
//
// An escape which may match the empty string is rejected with an error of
// code NullableEscape.
func Range(from, to, escape *Pattern) (*Pattern, error) {
	nonNil("range", from, to)
	p := &Pattern{kind: RangerKind, children: []*Pattern{from, to}}
	if escape != nil {
		p.children = append(p.children, escape)
		if nullable(escape) {
			return nil, constructionError(NullableEscape, p, "escape may match the empty string")
		}
	}
	return p, nil
}

func matchRange(p *Pattern, src *source.Source) bool {
	from, to := p.children[0], p.children[1]
	var escape *Pattern
	if len(p.children) > 2 {
		escape = p.children[2]
	}
	if !match(from, src) {
		return false
	}
	for {
		at := src.Store()
		if escape != nil && match(escape, src) {
			afterEscape := src.Store()
			src.Restore(at)
			overlaps := match(to, src)
			src.Restore(afterEscape)
			if overlaps || match(to, src) {
				continue
			}
			src.Restore(at)
		}
		if match(to, src) {
			return true
		}
		if src.EOF() {
			return false
		}
		src.Advance(1)
	}
}
