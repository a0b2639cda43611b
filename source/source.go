/*
Package source provides the cursor pattern matching operates on.

A Source is a positional view over an in-memory text. Positions are counted
in Unicode code-points (runes), not in bytes. Clients may peek at upcoming
runes without advancing, read (consume) runes, and store the current position
as a checkpoint to rewind to later.

	src := source.New("Hello World")
	cp := src.Store()
	src.Read(5)           // => "Hello"
	src.Restore(cp)       // back at position 0

Position invariant: the read position is always within [0, Len()]. It only
increases by reading, except for an explicit Restore to a checkpoint
previously stored for the same Source.

A Source is exclusively owned by whoever is advancing it. It is not safe for
concurrent use.

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package source

import (
	"fmt"
	"unicode/utf8"
)

// Source is a cursor over an in-memory text.
type Source struct {
	text    string
	data    []byte // lazily created byte copy of text
	runes   []rune // decoded runes of text
	offsets []int  // byte offset of every rune position, len(runes)+1 entries
	pos     int    // read position in runes
}

// Checkpoint is an opaque position marker, created by Source.Store.
// It is valid only for the Source which produced it.
type Checkpoint struct {
	src *Source
	pos int
}

// Pos returns the rune position the checkpoint marks.
func (cp Checkpoint) Pos() int {
	return cp.pos
}

// New creates a Source for text, positioned at the start of the text.
func New(text string) *Source {
	s := &Source{}
	s.Reset(text)
	return s
}

// Reset re-initializes a Source with a new text, re-using internal buffers.
// The read position is set to 0.
func (s *Source) Reset(text string) {
	s.text = text
	s.data = nil
	s.runes = s.runes[:0]
	s.offsets = s.offsets[:0]
	for i, r := range text {
		s.runes = append(s.runes, r)
		s.offsets = append(s.offsets, i)
	}
	s.offsets = append(s.offsets, len(text))
	s.pos = 0
}

// Text returns the complete underlying text.
func (s *Source) Text() string {
	return s.text
}

// Len returns the length of the text in runes.
func (s *Source) Len() int {
	return len(s.runes)
}

// Pos returns the current read position.
func (s *Source) Pos() int {
	return s.pos
}

// EOF is true if all of the input has been read.
func (s *Source) EOF() bool {
	return s.pos >= len(s.runes)
}

// Remaining returns the number of runes not yet read.
func (s *Source) Remaining() int {
	return len(s.runes) - s.pos
}

// Peek returns the next n runes without advancing the read position.
// If fewer than n runes are left, Peek returns the rest of the input and false.
func (s *Source) Peek(n int) (string, bool) {
	if n < 0 {
		n = 0
	}
	end, ok := s.pos+n, true
	if end > len(s.runes) {
		end, ok = len(s.runes), false
	}
	return s.text[s.offsets[s.pos]:s.offsets[end]], ok
}

// RuneAt returns the rune i positions ahead of the read position, without
// advancing. RuneAt(0) is the next rune to read. If the position is outside
// of the input, RuneAt returns utf8.RuneError and false.
func (s *Source) RuneAt(i int) (rune, bool) {
	at := s.pos + i
	if i < 0 || at >= len(s.runes) {
		return utf8.RuneError, false
	}
	return s.runes[at], true
}

// Read returns the next n runes and advances the read position past them.
// If fewer than n runes are left, the rest of the input is returned.
func (s *Source) Read(n int) string {
	t, _ := s.Peek(n)
	s.Advance(n)
	return t
}

// Advance moves the read position n runes ahead, but not beyond the end of input.
// Negative values are ignored.
func (s *Source) Advance(n int) {
	if n <= 0 {
		return
	}
	s.pos += n
	if s.pos > len(s.runes) {
		s.pos = len(s.runes)
	}
}

// Store returns a checkpoint for the current read position.
func (s *Source) Store() Checkpoint {
	return Checkpoint{src: s, pos: s.pos}
}

// Restore resets the read position to a checkpoint.
// Restore panics if the checkpoint has been created by a different Source.
func (s *Source) Restore(cp Checkpoint) {
	if cp.src != s {
		panic("source.Restore: checkpoint belongs to a different source")
	}
	s.pos = cp.pos
}

// Slice returns the text between rune positions from and to.
// Positions are clipped to the input range.
func (s *Source) Slice(from, to int) string {
	from, to = s.clip(from), s.clip(to)
	if to < from {
		return ""
	}
	return s.text[s.offsets[from]:s.offsets[to]]
}

// Rest returns the text from the read position to the end of input.
func (s *Source) Rest() string {
	return s.text[s.offsets[s.pos]:]
}

// Bytes returns the input as a byte slice. Clients must not modify it.
func (s *Source) Bytes() []byte {
	if s.data == nil {
		s.data = []byte(s.text)
	}
	return s.data
}

// ByteOffset returns the byte offset of rune position pos within the text.
func (s *Source) ByteOffset(pos int) int {
	return s.offsets[s.clip(pos)]
}

func (s *Source) clip(pos int) int {
	if pos < 0 {
		return 0
	}
	if pos > len(s.runes) {
		return len(s.runes)
	}
	return pos
}

func (s *Source) String() string {
	return fmt.Sprintf("[source %d/%d]", s.pos, len(s.runes))
}
