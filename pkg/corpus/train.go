package corpus

import (
	"io"
	"log/slog"

	"github.com/CTAG07/passchain/pkg/markov"
)

// TrainStats summarizes one training run.
type TrainStats struct {
	Files        int // Documents processed.
	Paragraphs   int // Non-empty paragraphs found.
	Sentences    int // Non-empty sentences found.
	Learned      int // Sentences long enough to be learned.
	Observations int // Transitions added to the chain.
}

// Trainer splits documents into sentences, tokenizes them and learns each one.
type Trainer struct {
	chain     *markov.Chain
	tokenizer markov.Tokenizer
	logger    *slog.Logger
}

// NewTrainer creates a Trainer that feeds chain with sentences tokenized by
// tokenizer. A nil tokenizer selects markov.NewDefaultTokenizer.
func NewTrainer(chain *markov.Chain, tokenizer markov.Tokenizer) *Trainer {
	if tokenizer == nil {
		tokenizer = markov.NewDefaultTokenizer()
	}
	return &Trainer{
		chain:     chain,
		tokenizer: tokenizer,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// SetLogger sets the logger for the Trainer. By default, all logs are discarded.
func (t *Trainer) SetLogger(logger *slog.Logger) {
	if logger != nil {
		t.logger = logger
	}
}

// Train learns every sentence of every document, in order, and returns the
// accumulated statistics.
func (t *Trainer) Train(docs []Document) TrainStats {
	var stats TrainStats
	for _, doc := range docs {
		before := stats
		t.TrainText(doc.Text, &stats)
		stats.Files++

		t.logger.Info("Learned corpus file",
			slog.String("path", doc.Path),
			slog.Int("sentences", stats.Sentences-before.Sentences),
			slog.Int("observations", stats.Observations-before.Observations),
		)
	}
	return stats
}

// TrainText learns every sentence of text and adds the counts to stats.
func (t *Trainer) TrainText(text string, stats *TrainStats) {
	for _, paragraph := range Paragraphs(text) {
		stats.Paragraphs++
		for _, sentence := range Sentences(paragraph) {
			stats.Sentences++
			if n := t.chain.Learn(t.tokenizer.Tokenize(sentence)); n > 0 {
				stats.Learned++
				stats.Observations += n
			}
		}
	}
}
