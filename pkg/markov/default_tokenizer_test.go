package markov

import (
	"reflect"
	"testing"
)

func TestDefaultTokenizer(t *testing.T) {
	tok := NewDefaultTokenizer()

	testCases := []struct {
		name     string
		input    string
		expected []string
	}{
		{name: "Simple", input: "one fish two fish", expected: []string{"one", "fish", "two", "fish"}},
		{name: "Whitespace runs", input: "  one\t\tfish\n two  ", expected: []string{"one", "fish", "two"}},
		{name: "Brackets and quotes", input: `(one) [fish] {two} "fish"`, expected: []string{"one", "fish", "two", "fish"}},
		{name: "Keeps other punctuation", input: "Hello, world! It's 2,000.", expected: []string{"Hello,", "world!", "It's", "2,000."}},
		{name: "Drops control characters", input: "bell\a ring", expected: []string{"bell", "ring"}},
		{name: "Drops sentinel", input: "a #### b", expected: []string{"a", "b"}},
		{name: "Keeps unicode letters", input: "naïve café", expected: []string{"naïve", "café"}},
		{name: "Empty", input: "", expected: []string{}},
		{name: "Only stripped characters", input: `"()"`, expected: []string{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := tok.Tokenize(tc.input)
			if len(got) == 0 && len(tc.expected) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("Tokenize(%q) = %q, want %q", tc.input, got, tc.expected)
			}
		})
	}
}

func TestDefaultTokenizerWithStripChars(t *testing.T) {
	tok := NewDefaultTokenizer(WithStripChars(".,"))
	got := tok.Tokenize(`Hello, "world".`)
	if want := []string{"Hello", `"world"`}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}

	keep := NewDefaultTokenizer(WithStripChars(""))
	got = keep.Tokenize(`(a)`)
	if want := []string{"(a)"}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}
}
