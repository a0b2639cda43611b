/*
Package segment splits text into segments by applying patterns in sequence.

BSD License

Copyright (c) 2017–21, Norbert Pillmayer

All rights reserved.
Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.


Typical Usage

Segmenter provides an interface similar to bufio.Scanner for reading data
such as a file of Unicode text.
Similar to Scanner's Scan() function, successive calls to a segmenter's
Next() method will step through the segments of a file.
Clients are able to get the text of the segment by calling Bytes() or Text().
Unlike Scanner, segments are not delimited by a split function but
recognized by patterns (see package pmatch). Index() tells which pattern
has recognized the current segment.

  word := pmatch.Must(pmatch.OneOrMore(pmatch.Char("letter", charclass.Letter)))
  blank := pmatch.Must(pmatch.OneOrMore(pmatch.Char("space", charclass.Space)))
  segmenter := segment.NewSegmenter(word, blank)
  segmenter.Init(...)
  for segmenter.Next() {
    // do something with segmenter.Text() or segmenter.Bytes()
  }

How it works

Patterns are tried in the order given to NewSegmenter, at the position the
previous segment ended. The first pattern matching a non-empty prefix of the
remaining input wins. If no pattern matches, segmenting stops with ErrNoMatch,
unless the segmenter has been told to skip unmatched input. In that case a
single character is delivered as a segment of its own, with Index() == -1.

For use with parsers, type Tokenizer offers the same mechanics through the
scanner.Tokenizer interface of package gorgo/lr/scanner. */
package segment

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/npillmayer/pmatch"
	"github.com/npillmayer/pmatch/source"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	if gtrace.CoreTracer == nil {
		gtrace.CoreTracer = gologadapter.New()
	}
	return gtrace.CoreTracer
}

// A Segmenter reads text from an io.Reader and splits it into segments,
// each recognized by one of a list of patterns.
type Segmenter struct {
	patterns      []*pmatch.Pattern // tried in order
	src           *source.Source    // cursor over the input
	buffer        *bytes.Buffer     // input text
	maxInputLen   int               // maximum length allowed for the input
	result        pmatch.Result     // the most recent segment
	index         int               // index of the pattern which matched last
	skipUnmatched bool              // deliver unmatched characters as segments?
	err           error
	inUse         bool // Next() has been called; buffer is in use.
}

// MaxInputSize is the maximum size of input a Segmenter accepts,
// unless the user provides an explicit limit with Segmenter.Buffer().
const MaxInputSize = 1024 * 1024
const startBufSize = 4096 // Size of initial allocation for buffer.

// ErrTooLong flags an input exceeding the buffer limit.
// ErrNotInitialized is returned if a segmenters Next-function is called without
// first setting an input source.
// ErrNoMatch is returned if none of the patterns matches the input at the
// current position.
var (
	ErrTooLong        = errors.New("segmenter: input too long for buffer")
	ErrNotInitialized = errors.New("segmenter not initialized; must call Init(...) first")
	ErrNoMatch        = errors.New("segmenter: no pattern matches")
)

// NewSegmenter creates a new Segmenter for a list of patterns. Specifying no
// pattern results in a segmenter delivering single characters.
//
// Before using newly created segmenters, clients will have to call Init(...)
// on them, i.e. initialize them for a reader.
func NewSegmenter(patterns ...*pmatch.Pattern) *Segmenter {
	if len(patterns) == 0 {
		patterns = []*pmatch.Pattern{pmatch.Any()}
	}
	return &Segmenter{
		patterns:    patterns,
		maxInputLen: MaxInputSize,
	}
}

// SkipUnmatched tells the segmenter to deliver characters no pattern
// matches as single segments, instead of stopping with ErrNoMatch.
func (s *Segmenter) SkipUnmatched(skip bool) {
	s.skipUnmatched = skip
}

// Init initializes a Segmenter with an io.Reader to read from.
// s is either a newly created segmenter to be initialized, or we may
// re-initialize a segmenter already in use.
//
// The input is read completely. Reading errors and inputs exceeding the
// buffer limit are reported by Err() and stop segmenting.
func (s *Segmenter) Init(reader io.Reader) {
	if reader == nil {
		reader = strings.NewReader("")
	}
	s.reset()
	if s.buffer == nil {
		s.buffer = bytes.NewBuffer(make([]byte, 0, startBufSize))
	} else {
		s.buffer.Reset()
	}
	n, err := io.Copy(s.buffer, io.LimitReader(reader, int64(s.maxInputLen)+1))
	if err != nil {
		s.setErr(err)
		return
	}
	if n > int64(s.maxInputLen) {
		s.setErr(ErrTooLong)
		return
	}
	s.src = source.New(s.buffer.String())
}

// InitSource initializes a Segmenter with a source, positioned where
// segmenting should start. The source is advanced with every segment.
func (s *Segmenter) InitSource(src *source.Source) {
	s.reset()
	s.src = src
}

func (s *Segmenter) reset() {
	s.src = nil
	s.result = pmatch.Result{}
	s.index = -1
	s.err = nil
	s.inUse = false
}

// Buffer sets the initial buffer to use when reading input and the maximum
// size of input that may be read.
// The maximum input size is the larger of max and cap(buf).
//
// By default, Segmenter uses an internal buffer and sets the maximum input size
// to MaxInputSize.
//
// Buffer panics if it is called after scanning has started. Clients will have
// to call Init(...) again to permit re-setting the buffer.
func (s *Segmenter) Buffer(buf []byte, max int) {
	if s.inUse {
		panic("segment.Buffer: buffer already in use; cannot be re-set")
	}
	s.buffer = bytes.NewBuffer(buf[:0])
	if max < cap(buf) {
		max = cap(buf)
	}
	s.maxInputLen = max
}

// Err returns the first error that was encountered by the Segmenter.
// Reaching the end of the input is not an error.
func (s *Segmenter) Err() error {
	return s.err
}

func (s *Segmenter) setErr(err error) {
	if s.err == nil {
		s.err = err
	}
}

// Next gets the next segment.
//
// Next() advances the Segmenter to the next segment, which will then be available
// through the Bytes() or Text() method. It returns false when the segmenting
// stops, either by reaching the end of the input or an error.
// After Next() returns false, the Err() method will return any error
// that occurred during segmenting.
func (s *Segmenter) Next() bool {
	s.result, s.index = pmatch.Result{}, -1
	if s.src == nil {
		s.setErr(ErrNotInitialized)
		return false
	}
	s.inUse = true
	if s.err != nil || s.src.EOF() {
		return false
	}
	for i, p := range s.patterns {
		if r := p.ConsumeFrom(s.src); r.OK && r.Len() > 0 {
			s.result, s.index = r, i
			CT().P("pattern", strconv.Itoa(i)).Debugf("Next() = %q", r.Text)
			return true
		}
	}
	if s.skipUnmatched {
		start := s.src.Pos()
		s.src.Advance(1)
		end := s.src.Pos()
		s.result = pmatch.Result{OK: true, Text: s.src.Slice(start, end), Start: start, End: end}
		CT().Debugf("Next() skips %q", s.result.Text)
		return true
	}
	s.setErr(fmt.Errorf("%w at position %d", ErrNoMatch, s.src.Pos()))
	CT().Errorf("%v", s.err)
	return false
}

// Bytes returns the most recent segment generated by a call to Next().
func (s *Segmenter) Bytes() []byte {
	return []byte(s.result.Text)
}

// Text returns the most recent segment generated by a call to Next().
func (s *Segmenter) Text() string {
	return s.result.Text
}

// Index returns the index of the pattern which recognized the most recent
// segment, or -1 for a skipped character.
func (s *Segmenter) Index() int {
	return s.index
}

// Result returns the match result for the most recent segment, including
// its position in the input, counted in runes.
func (s *Segmenter) Result() pmatch.Result {
	return s.result
}
