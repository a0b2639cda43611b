package pmatch

import (
	"strconv"
	"unicode/utf8"

	"github.com/npillmayer/pmatch/source"
)

// Capture is a named cell recording the text its sub-pattern matched last.
//
// A capture is written on every successful match of its sub-pattern, the last
// write wins. Writes are not undone if an enclosing pattern fails later on.
// Captures are plain mutable state: a pattern tree containing captures must
// not be matched from more than one goroutine at a time.
type Capture struct {
	name string
	text string
	set  bool
}

// NewCapture creates an empty capture cell.
func NewCapture(name string) *Capture {
	return &Capture{name: name}
}

// Name returns the name the capture has been created with.
func (c *Capture) Name() string {
	return c.name
}

// Text returns the text captured last. ok is false if the capture has never
// been written since creation or the last call to Reset.
func (c *Capture) Text() (text string, ok bool) {
	return c.text, c.set
}

// Reset clears the capture.
func (c *Capture) Reset() {
	c.text, c.set = "", false
}

func (c *Capture) String() string {
	if !c.set {
		return c.name + "=<unset>"
	}
	return c.name + "=" + strconv.Quote(c.text)
}

func (c *Capture) write(text string) {
	c.text, c.set = text, true
}

// Capturing wraps p, recording the text of every successful match of p
// into c.
func Capturing(c *Capture, p *Pattern) *Pattern {
	nonNil("capture", p)
	if c == nil {
		panic(&Error{Code: NilPattern, Message: "capture cell is nil"})
	}
	return &Pattern{kind: CaptureKind, children: []*Pattern{p}, capture: c}
}

// BackRef creates a pattern matching the text c holds at the time of
// matching. It fails if c is unset or holds the empty string.
func BackRef(c *Capture) *Pattern {
	if c == nil {
		panic(&Error{Code: NilPattern, Message: "capture cell is nil"})
	}
	return &Pattern{kind: BackRefKind, capture: c}
}

func matchBackRef(c *Capture, src *source.Source) bool {
	if !c.set || c.text == "" {
		return false
	}
	n := utf8.RuneCountInString(c.text)
	if s, ok := src.Peek(n); !ok || s != c.text {
		return false
	}
	src.Advance(n)
	return true
}
