package markov

import (
	"regexp"
	"strings"
	"unicode"
)

// DefaultTokenizer is a default implementation of the Tokenizer interface.
// It removes bracket and quote characters, drops any rune that is not a
// letter, digit, punctuation mark, symbol or whitespace, and splits the rest on
// runs of whitespace. Tokens equal to NonWord are dropped so that the sentinel
// can never be learned as an ordinary word.
type DefaultTokenizer struct {
	stripRegex *regexp.Regexp
}

// Option Is a function that configures a DefaultTokenizer.
type Option func(*DefaultTokenizer)

// WithStripChars sets the characters removed from the text before splitting.
// Default: ()[]{}"
func WithStripChars(chars string) Option {
	return func(t *DefaultTokenizer) {
		if chars == "" {
			t.stripRegex = nil
			return
		}
		t.stripRegex = regexp.MustCompile("[" + regexp.QuoteMeta(chars) + "]")
	}
}

// NewDefaultTokenizer creates a new tokenizer with default settings, which can be
// overridden by providing one or more Option functions.
func NewDefaultTokenizer(opts ...Option) *DefaultTokenizer {
	t := &DefaultTokenizer{
		stripRegex: regexp.MustCompile(`[()\[\]{}"]`),
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Tokenize splits text into tokens, preserving their original order.
func (t *DefaultTokenizer) Tokenize(text string) []string {
	if t.stripRegex != nil {
		text = t.stripRegex.ReplaceAllString(text, "")
	}
	text = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsPunct(r) || unicode.IsSymbol(r) || unicode.IsSpace(r) {
			return r
		}
		return -1
	}, text)

	fields := strings.Fields(text)
	tokens := fields[:0]
	for _, f := range fields {
		if f != NonWord {
			tokens = append(tokens, f)
		}
	}
	return tokens
}
