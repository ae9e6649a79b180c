package markov

// ChainStats holds aggregated statistics for a single chain.
type ChainStats struct {
	Order          int // The order of the chain.
	Contexts       int // The number of distinct contexts.
	Transitions    int // The sum of all transition list lengths; the total number of trained observations.
	VocabSize      int // The number of distinct tokens seen anywhere in the chain, NonWord excluded.
	StartingTokens int // The number of distinct tokens that can start a sequence.
}

// Stats returns a snapshot of statistics for the chain.
func (c *Chain) Stats() ChainStats {
	stats := ChainStats{
		Order:    c.order,
		Contexts: len(c.keys),
	}

	vocab := make(map[string]struct{})
	for ctx, next := range c.All() {
		stats.Transitions += len(next)
		for _, t := range ctx {
			vocab[t] = struct{}{}
		}
		for _, t := range next {
			vocab[t] = struct{}{}
		}
	}
	delete(vocab, NonWord)
	stats.VocabSize = len(vocab)

	if starters, err := c.transitions(startContext(c.order)); err == nil {
		distinct := make(map[string]struct{}, len(starters))
		for _, t := range starters {
			if t != NonWord {
				distinct[t] = struct{}{}
			}
		}
		stats.StartingTokens = len(distinct)
	}
	return stats
}
