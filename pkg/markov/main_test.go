package markov

import (
	"go/build"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

// newTestChain creates a chain of the given order and trains it on each of the
// supplied sentences, split on whitespace.
func newTestChain(t testing.TB, order int, sentences ...string) *Chain {
	t.Helper()
	c, err := NewChain(order)
	if err != nil {
		t.Fatalf("NewChain(%d) error = %v", order, err)
	}
	for _, s := range sentences {
		c.Learn(strings.Fields(s))
	}
	return c
}

// newTestGenerator returns a generator over c with a fixed seed so walks are reproducible.
func newTestGenerator(c *Chain, opts ...GenerateOption) *Generator {
	return NewGenerator(c, rand.New(rand.NewPCG(7, 11)), opts...)
}

// chainContents flattens a chain into context -> transition counts, which is
// what two chains must agree on to be multiset-equal.
func chainContents(c *Chain) map[string]map[string]int {
	out := make(map[string]map[string]int)
	for ctx, next := range c.All() {
		key := strings.Join(ctx, "\x00")
		counts := make(map[string]int)
		for _, t := range next {
			counts[t]++
		}
		out[key] = counts
	}
	return out
}

var (
	benchmarkCorpus string
	corpusOnce      sync.Once
)

// createBenchmarkCorpus reads Go source files to create a corpus for benchmarking.
func createBenchmarkCorpus() string {
	corpusOnce.Do(func() {
		var sb strings.Builder
		goRoot := build.Default.GOROOT
		filesToRead := []string{
			filepath.Join(goRoot, "src/net/http/server.go"),
			filepath.Join(goRoot, "src/go/parser/parser.go"),
			filepath.Join(goRoot, "src/encoding/json/encode.go"),
		}

		for _, file := range filesToRead {
			content, err := os.ReadFile(file)
			if err != nil {
				benchmarkCorpus = "this is a fallback corpus for benchmarking. it is not very long but will prevent a crash. "
				return
			}
			sb.Write(content)
			sb.WriteString("\n")
		}
		benchmarkCorpus = sb.String()
	})
	return benchmarkCorpus
}

// benchmarkChain trains a chain of the given order on the benchmark corpus, one line per sequence.
func benchmarkChain(b *testing.B, order int) *Chain {
	b.Helper()
	c, err := NewChain(order)
	if err != nil {
		b.Fatal(err)
	}
	tok := NewDefaultTokenizer()
	for _, line := range strings.Split(createBenchmarkCorpus(), "\n") {
		c.Learn(tok.Tokenize(line))
	}
	return c
}
