package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
)

var (
	headingColor = color.New(color.FgCyan, color.Bold)
	totalColor   = color.New(color.FgYellow)
	secretColor  = color.New(color.FgGreen, color.Bold)
)

// printTokenEntropies writes one line per token with the entropy of its choice,
// followed by the total, in the layout of the original driver output.
func printTokenEntropies(w io.Writer, tokens []string, entropies []float64) float64 {
	var total float64
	for i, token := range tokens {
		fmt.Fprintf(w, "\t%s (%s bits)\n", token, formatBits(entropies[i]))
		total += entropies[i]
	}
	totalColor.Fprintf(w, " - Total entropy: %s bits\n", formatBits(total))
	return total
}

// formatBits renders an entropy value with up to four decimals and no trailing zeros.
func formatBits(bits float64) string {
	return humanize.FtoaWithDigits(bits, 4)
}

// formatCount renders an integer with thousands separators.
func formatCount(n int) string {
	return humanize.Comma(int64(n))
}

// joinTokens joins tokens the way a sentence would be written.
func joinTokens(tokens []string) string {
	return strings.Join(tokens, " ")
}
