package markov

import (
	"fmt"
	"math"
)

// DistributionEntropy returns the Shannon entropy, in bits, of the empirical
// distribution described by values: each distinct token has probability
// count/len(values). It is 0 when every value is the same and for an empty list.
func DistributionEntropy(values []string) float64 {
	if len(values) == 0 {
		return 0
	}
	counts := make(map[string]int, len(values))
	for _, v := range values {
		counts[v]++
	}
	if len(counts) == 1 {
		return 0
	}

	total := float64(len(values))
	var entropy float64
	for _, n := range counts {
		p := float64(n) / total
		entropy += p * math.Log2(p)
	}
	return -entropy
}

// ContextEntropy returns the entropy of the next-token choice made from ctx.
func (c *Chain) ContextEntropy(ctx Context) (float64, error) {
	next, err := c.transitions(ctx)
	if err != nil {
		return 0, err
	}
	return DistributionEntropy(next), nil
}

// SequenceEntropies walks tokens from the all-NonWord context and returns, for
// each token, the entropy of the choice made just before it was picked. This is
// the uncertainty of the draw, not the surprisal of the specific outcome. The
// result has the same length as tokens.
func (c *Chain) SequenceEntropies(tokens []string) ([]float64, error) {
	entropies := make([]float64, 0, len(tokens))
	ctx := startContext(c.order)
	for i, token := range tokens {
		e, err := c.ContextEntropy(ctx)
		if err != nil {
			return nil, fmt.Errorf("token %d (%q): %w", i, token, err)
		}
		entropies = append(entropies, e)
		copy(ctx, ctx[1:])
		ctx[len(ctx)-1] = token
	}
	return entropies, nil
}

// AverageEntropyPerTerm returns the unweighted mean of ContextEntropy over every
// context in the chain. It fails with ErrEmptyModel when the chain has no contexts.
func (c *Chain) AverageEntropyPerTerm() (float64, error) {
	if len(c.keys) == 0 {
		return 0, ErrEmptyModel
	}
	var total float64
	for _, next := range c.All() {
		total += DistributionEntropy(next)
	}
	return total / float64(len(c.keys)), nil
}

// SumEntropy adds up per-token entropies, giving the estimated bits of a whole sequence.
func SumEntropy(entropies []float64) float64 {
	var total float64
	for _, e := range entropies {
		total += e
	}
	return total
}
