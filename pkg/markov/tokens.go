package markov

import (
	"strconv"
	"strings"
)

// NonWord is the reserved token that frames every trained sequence. Order
// copies of it form the starting context and a single copy terminates the
// sequence. It is never produced by the DefaultTokenizer.
const NonWord = "####"

// Context is an ordered tuple of exactly Order tokens preceding a predicted token.
type Context []string

// String joins the context tokens with "::", the same form used for graph labels.
func (c Context) String() string {
	return strings.Join(c, "::")
}

// Tokenizer is an interface that defines the contract for splitting input text
// into tokens. The chain itself never parses raw text; callers hand it the
// output of a Tokenizer.
type Tokenizer interface {
	// Tokenize returns the tokens of text in their original order.
	Tokenize(text string) []string
}

// contextKey is the map key for a context. Each token is length-prefixed so two
// different contexts can never encode to the same key, whatever bytes the tokens hold.
type contextKey string

func makeKey(buf []byte, ctx Context) ([]byte, contextKey) {
	buf = buf[:0]
	for _, token := range ctx {
		buf = strconv.AppendInt(buf, int64(len(token)), 10)
		buf = append(buf, ':')
		buf = append(buf, token...)
	}
	return buf, contextKey(buf)
}

// startContext returns a fresh context of order copies of NonWord.
func startContext(order int) Context {
	ctx := make(Context, order)
	for i := range ctx {
		ctx[i] = NonWord
	}
	return ctx
}
