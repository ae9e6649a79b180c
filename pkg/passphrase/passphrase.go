// Package passphrase builds multi-sentence passphrases from a trained Markov
// chain, generating sentences until their estimated entropy reaches a target.
package passphrase

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/CTAG07/passchain/pkg/markov"
)

// ErrTargetUnreachable is returned when the chain cannot produce enough entropy
// to reach the requested number of bits.
var ErrTargetUnreachable = errors.New("passphrase: target entropy unreachable")

const (
	// DefaultTargetBits is the entropy a passphrase must reach by default.
	DefaultTargetBits = 128.0
	// DefaultMaxSentences bounds how many sentences are generated before giving up.
	DefaultMaxSentences = 64
)

// Sentence is one generated sentence and the entropy of each of its tokens.
type Sentence struct {
	Tokens    []string
	Entropies []float64
	Bits      float64
}

// Result is a finished passphrase.
type Result struct {
	Sentences []Sentence
	Bits      float64 // Estimated minimum entropy of the whole passphrase.
}

// String joins the tokens of each sentence with spaces and the sentences with ". ".
func (r *Result) String() string {
	parts := make([]string, 0, len(r.Sentences))
	for _, s := range r.Sentences {
		parts = append(parts, strings.Join(s.Tokens, " "))
	}
	return strings.Join(parts, ". ")
}

// options configures a Builder.
type options struct {
	targetBits   float64
	maxSentences int
}

// Option is a function that configures a Builder.
type Option func(*options)

// WithTargetBits sets the entropy, in bits, the passphrase must reach.
func WithTargetBits(bits float64) Option {
	return func(o *options) { o.targetBits = bits }
}

// WithMaxSentences sets how many sentences may be generated before the build fails.
func WithMaxSentences(n int) Option {
	return func(o *options) { o.maxSentences = n }
}

// Builder accumulates generated sentences into a passphrase.
type Builder struct {
	gen     *markov.Generator
	options options
	logger  *slog.Logger
}

// NewBuilder creates a Builder drawing sentences from gen.
func NewBuilder(gen *markov.Generator, opts ...Option) *Builder {
	b := &Builder{
		gen: gen,
		options: options{
			targetBits:   DefaultTargetBits,
			maxSentences: DefaultMaxSentences,
		},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&b.options)
	}
	return b
}

// SetLogger sets the logger for the Builder. By default, all logs are discarded.
func (b *Builder) SetLogger(logger *slog.Logger) {
	if logger != nil {
		b.logger = logger
	}
}

// Build generates sentences and sums the entropy of their tokens until the
// total reaches the target. A chain whose every context has a single possible
// continuation yields no entropy at all and fails immediately.
func (b *Builder) Build() (*Result, error) {
	chain := b.gen.Chain()
	avg, err := chain.AverageEntropyPerTerm()
	if err != nil {
		return nil, err
	}
	if avg == 0 {
		return nil, fmt.Errorf("%w: every context of the chain is deterministic", ErrTargetUnreachable)
	}

	result := &Result{}
	for len(result.Sentences) < b.options.maxSentences {
		tokens, err := b.gen.Generate()
		if err != nil {
			return nil, fmt.Errorf("could not generate sentence %d: %w", len(result.Sentences)+1, err)
		}
		entropies, err := chain.SequenceEntropies(tokens)
		if err != nil {
			return nil, fmt.Errorf("could not measure sentence %d: %w", len(result.Sentences)+1, err)
		}

		s := Sentence{Tokens: tokens, Entropies: entropies, Bits: markov.SumEntropy(entropies)}
		result.Sentences = append(result.Sentences, s)
		result.Bits += s.Bits

		b.logger.Debug("Sentence added to passphrase",
			slog.Int("tokens", len(tokens)),
			slog.Float64("sentence_bits", s.Bits),
			slog.Float64("total_bits", result.Bits),
		)

		if result.Bits >= b.options.targetBits {
			return result, nil
		}
	}

	return nil, fmt.Errorf("%w: %.2f of %.2f bits after %d sentences",
		ErrTargetUnreachable, result.Bits, b.options.targetBits, len(result.Sentences))
}
