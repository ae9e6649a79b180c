package corpus

import (
	"regexp"
	"strings"
)

var (
	// paragraphBreak matches one or more blank lines.
	paragraphBreak = regexp.MustCompile(`\r?\n[ \t\r]*\n\s*`)
	// sentenceBreak matches a full stop and any word characters glued to it.
	sentenceBreak = regexp.MustCompile(`\.\w*`)
)

// Paragraphs splits text on blank lines and returns the trimmed, non-empty paragraphs.
func Paragraphs(text string) []string {
	return splitTrimmed(paragraphBreak, text)
}

// Sentences splits a paragraph on full stops and returns the trimmed, non-empty
// sentences. Word characters directly following a stop are consumed along with it.
func Sentences(paragraph string) []string {
	return splitTrimmed(sentenceBreak, paragraph)
}

func splitTrimmed(re *regexp.Regexp, text string) []string {
	parts := re.Split(text, -1)
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
