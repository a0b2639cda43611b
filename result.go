package pmatch

// Result is the outcome of a single match attempt.
//
// If OK is false, Text is empty and Start equals End. Comparing a Result
// against a string compares the matched text only, therefore a failed Result
// compares equal to the empty string.
type Result struct {
	OK    bool   // did the pattern match?
	Text  string // the matched text
	Start int    // start position of the match, in runes
	End   int    // position reached, in runes
}

// Len returns the length of the match in runes.
func (r Result) Len() int {
	return r.End - r.Start
}

// Is compares the matched text to s, irrespective of OK.
func (r Result) Is(s string) bool {
	return r.Text == s
}

func (r Result) String() string {
	return r.Text
}
