package markov

import (
	"log/slog"
	"slices"
)

// Learn pads tokens with Order copies of NonWord in front and one NonWord at
// the end, then records every Order-length window together with the token that
// follows it. Sequences of Order tokens or fewer cannot contribute a window and
// are ignored. A sequence containing NonWord is rejected as a whole and nothing
// is recorded. The caller's slice is not modified.
//
// Learn returns the number of observations recorded, which is len(tokens)+1
// for an accepted sequence and 0 otherwise.
func (c *Chain) Learn(tokens []string) int {
	if len(tokens) <= c.order {
		return 0
	}
	if slices.Contains(tokens, NonWord) {
		c.logger.Warn("Sequence rejected, it contains the reserved NonWord token",
			slog.Int("tokens", len(tokens)),
		)
		return 0
	}

	padded := make([]string, 0, len(tokens)+c.order+1)
	padded = append(padded, startContext(c.order)...)
	padded = append(padded, tokens...)
	padded = append(padded, NonWord)

	observed := 0
	for i := c.order; i < len(padded); i++ {
		// Window length always matches the order, so Observe cannot fail here.
		_ = c.Observe(padded[i-c.order:i], padded[i])
		observed++
	}

	c.logger.Debug("Sequence learned",
		slog.Int("tokens", len(tokens)),
		slog.Int("observations", observed),
		slog.Int("contexts", len(c.keys)),
	)
	return observed
}
