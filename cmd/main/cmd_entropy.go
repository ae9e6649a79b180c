package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/CTAG07/passchain/pkg/corpus"
	"github.com/CTAG07/passchain/pkg/markov"
)

func (a *app) newEntropyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "entropy [text...]",
		Short: "Measure the entropy of a sentence against the chain",
		Long: `Splits the given text (or standard input when no text is given) into
sentences the same way training does and prints, for every token of every
sentence, the entropy of the choice the chain would have made before picking
it. Every context along the way must have been trained.`,
		RunE: a.runEntropy,
	}
}

func (a *app) runEntropy(cmd *cobra.Command, args []string) error {
	chain, err := a.loadChain()
	if err != nil {
		return err
	}

	text := strings.Join(args, " ")
	if len(args) == 0 {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read standard input: %w", err)
		}
		text = string(data)
	}

	tokenizer := markov.NewDefaultTokenizer()
	out := cmd.OutOrStdout()
	var total float64
	measured := 0
	for _, paragraph := range corpus.Paragraphs(text) {
		for _, sentence := range corpus.Sentences(paragraph) {
			tokens := tokenizer.Tokenize(sentence)
			if len(tokens) == 0 {
				continue
			}
			entropies, err := chain.SequenceEntropies(tokens)
			if err != nil {
				return fmt.Errorf("sentence %d: %w", measured+1, err)
			}
			headingColor.Fprintln(out, joinTokens(tokens))
			total += printTokenEntropies(out, tokens, entropies)
			measured++
		}
	}

	switch {
	case measured == 0:
		return errors.New("no sentences to measure")
	case measured > 1:
		totalColor.Fprintf(out, "Combined entropy of %d sentences: %s bits\n", measured, formatBits(total))
	}
	return nil
}
