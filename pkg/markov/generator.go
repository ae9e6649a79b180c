package markov

import (
	crand "crypto/rand"
	"io"
	"log/slog"
	"math/rand/v2"
)

// Generator performs weighted random walks over a Chain. Every drawn token is
// picked uniformly from the raw transition list, so duplicates weight the draw
// by their observed frequency.
type Generator struct {
	chain   *Chain
	rng     *rand.Rand
	options generateOptions
	logger  *slog.Logger
}

// NewGenerator creates a Generator over chain that draws from rng. Passing a
// seeded source (for example rand.New(rand.NewPCG(1, 2))) makes walks
// reproducible. A nil rng is replaced by a ChaCha8 source seeded from crypto/rand.
func NewGenerator(chain *Chain, rng *rand.Rand, opts ...GenerateOption) *Generator {
	if rng == nil {
		rng = NewSecureRand()
	}
	g := &Generator{
		chain:  chain,
		rng:    rng,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&g.options)
	}
	return g
}

// NewSecureRand returns a ChaCha8-backed generator seeded from crypto/rand,
// suitable for passphrase generation.
func NewSecureRand() *rand.Rand {
	var seed [32]byte
	// crypto/rand.Read never returns an error on supported platforms.
	_, _ = crand.Read(seed[:])
	return rand.New(rand.NewChaCha8(seed))
}

// SetLogger sets the logger for the Generator. By default, all logs are discarded.
func (g *Generator) SetLogger(logger *slog.Logger) {
	if logger != nil {
		g.logger = logger
	}
}

// Chain returns the chain the generator walks.
func (g *Generator) Chain() *Chain {
	return g.chain
}
