package tokenizer

// Token is a span of the source text produced by Tokenize.
type Token struct {
	// Index is the 1-based emission order.
	Index int `json:"i"`
	// Offset is the byte offset of the token's first rune in the source text.
	Offset int `json:"idx"`
	// Text is the exact source substring, never empty.
	Text string `json:"text"`
}

// End returns the byte offset just past the token.
func (t Token) End() int { return t.Offset + len(t.Text) }

// Texts returns the text of each token in order.
func Texts(tokens []Token) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = t.Text
	}
	return out
}
