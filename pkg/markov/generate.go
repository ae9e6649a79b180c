package markov

import (
	"fmt"
	"iter"
	"log/slog"
)

// generateOptions Is used by the generate functions to configure default options.
type generateOptions struct {
	maxLength int
}

// GenerateOption is a function that configures generation parameters. Options
// given to NewGenerator become the defaults, options given to Generate or Walk
// apply to that call only.
type GenerateOption func(*generateOptions)

// WithMaxLength caps the number of tokens a single walk may emit. A chain that
// contains a cycle with no path back to NonWord would otherwise walk forever;
// with a cap the walk fails with ErrGenerationLimitExceeded instead.
// A value of 0 or less disables the cap, which is the default.
func WithMaxLength(n int) GenerateOption {
	return func(o *generateOptions) { o.maxLength = n }
}

// Generate performs one complete walk and returns the emitted tokens. The walk
// starts from the all-NonWord context and ends once NonWord is drawn and the
// buffered state has drained.
func (g *Generator) Generate(opts ...GenerateOption) ([]string, error) {
	var output []string
	for token, err := range g.Walk(opts...) {
		if err != nil {
			return nil, err
		}
		output = append(output, token)
	}

	g.logger.Debug("Generation completed",
		slog.Int("order", g.chain.order),
		slog.Int("generated_length", len(output)),
	)
	return output, nil
}

// Walk returns an iterator that yields the tokens of one walk as they are
// drawn. If the walk fails, the final pair carries the error and an empty token.
func (g *Generator) Walk(opts ...GenerateOption) iter.Seq2[string, error] {
	options := g.options
	for _, opt := range opts {
		opt(&options)
	}

	return func(yield func(string, error) bool) {
		state, err := g.primeStart()
		if err != nil {
			yield("", fmt.Errorf("priming walk: %w", err))
			return
		}

		emitted := 0
		for len(state) > 0 {
			if options.maxLength > 0 && emitted >= options.maxLength {
				g.logger.Debug("Generation stopped by maxLength",
					slog.Int("max_length", options.maxLength),
					slog.String("last_context", Context(state).String()),
				)
				yield("", fmt.Errorf("%w: emitted %d tokens", ErrGenerationLimitExceeded, emitted))
				return
			}

			var token string
			token, state, err = g.step(state)
			if err != nil {
				yield("", err)
				return
			}
			if !yield(token, nil) {
				return
			}
			emitted++
		}
	}
}

// primeStart fills a fresh state with Order copies of NonWord and steps it
// Order times so that it holds a real starting context.
func (g *Generator) primeStart() ([]string, error) {
	state := []string(startContext(g.chain.order))
	var err error
	for range g.chain.order {
		if _, state, err = g.step(state); err != nil {
			return nil, err
		}
	}
	return state, nil
}

// step draws the next token when state holds a full context, appending it
// unless it is NonWord, and then removes and returns the oldest state token.
func (g *Generator) step(state []string) (string, []string, error) {
	if len(state) == 0 {
		return "", nil, fmt.Errorf("%w: empty state", ErrUnknownContext)
	}
	if len(state) == g.chain.order {
		next, err := g.chain.transitions(state)
		if err != nil {
			return "", nil, err
		}
		if token := next[g.rng.IntN(len(next))]; token != NonWord {
			state = append(state, token)
		}
	}
	return state[0], state[1:], nil
}
