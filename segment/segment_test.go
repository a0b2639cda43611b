package segment

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/npillmayer/pmatch"
	"github.com/npillmayer/pmatch/charclass"
	"github.com/npillmayer/pmatch/source"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	word  = pmatch.Must(pmatch.OneOrMore(pmatch.Char("letter", charclass.Letter)))
	blank = pmatch.Must(pmatch.OneOrMore(pmatch.Char("space", charclass.Space)))
	punct = pmatch.Char("punct", charclass.Punct)
)

func collect(seg *Segmenter) (texts []string, indices []int) {
	for seg.Next() {
		texts = append(texts, seg.Text())
		indices = append(indices, seg.Index())
	}
	return
}

func TestSegmenterWords(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	seg := NewSegmenter(word, blank, punct)
	seg.Init(strings.NewReader("Hello World!"))
	texts, indices := collect(seg)
	require.NoError(t, seg.Err())
	assert.Equal(t, []string{"Hello", " ", "World", "!"}, texts)
	assert.Equal(t, []int{0, 1, 0, 2}, indices)
}

func TestSegmenterNoMatch(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	seg := NewSegmenter(word, blank)
	seg.Init(strings.NewReader("lime-tree"))
	texts, _ := collect(seg)
	assert.Equal(t, []string{"lime"}, texts)
	assert.True(t, errors.Is(seg.Err(), ErrNoMatch))
}

func TestSegmenterSkipUnmatched(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	seg := NewSegmenter(word)
	seg.SkipUnmatched(true)
	seg.Init(strings.NewReader("lime-tree"))
	texts, indices := collect(seg)
	require.NoError(t, seg.Err())
	assert.Equal(t, []string{"lime", "-", "tree"}, texts)
	assert.Equal(t, []int{0, -1, 0}, indices)
}

func TestSegmenterPositions(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	seg := NewSegmenter(word, blank)
	seg.Init(strings.NewReader("Grüße dich"))
	require.True(t, seg.Next())
	assert.Equal(t, 0, seg.Result().Start)
	assert.Equal(t, 5, seg.Result().End)
	assert.Equal(t, []byte("Grüße"), seg.Bytes())
	require.True(t, seg.Next())
	require.True(t, seg.Next())
	assert.Equal(t, 6, seg.Result().Start)
	assert.False(t, seg.Next())
	assert.NoError(t, seg.Err())
}

func TestSegmenterNotInitialized(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	seg := NewSegmenter(word)
	assert.False(t, seg.Next())
	assert.Equal(t, ErrNotInitialized, seg.Err())
}

func TestSegmenterTooLong(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	seg := NewSegmenter(word)
	seg.Buffer(make([]byte, 0, 8), 8)
	seg.Init(strings.NewReader("Supercalifragilistic"))
	assert.False(t, seg.Next())
	assert.Equal(t, ErrTooLong, seg.Err())
	seg.Init(strings.NewReader("Short"))
	texts, _ := collect(seg)
	assert.Equal(t, []string{"Short"}, texts)
}

func TestSegmenterSharedSource(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	src := source.New("key = value")
	key := pmatch.Literal("key").ConsumeFrom(src)
	require.True(t, key.OK)
	seg := NewSegmenter(word, blank, pmatch.Literal("="))
	seg.InitSource(src)
	texts, _ := collect(seg)
	assert.Equal(t, []string{" ", "=", " ", "value"}, texts)
	assert.True(t, src.EOF())
}

func TestSegmenterDefaultPattern(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	seg := NewSegmenter()
	seg.Init(strings.NewReader("ab c"))
	texts, _ := collect(seg)
	assert.Equal(t, []string{"a", "b", " ", "c"}, texts)
}

func ExampleSegmenter() {
	seg := NewSegmenter(word, blank, punct)
	seg.Init(strings.NewReader("Hello World!"))
	for seg.Next() {
		fmt.Printf("segment %q by pattern #%d\n", seg.Text(), seg.Index())
	}
	// Output:
	// segment "Hello" by pattern #0
	// segment " " by pattern #1
	// segment "World" by pattern #0
	// segment "!" by pattern #2
}
