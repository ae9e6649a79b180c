package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/CTAG07/passchain/pkg/corpus"
	"github.com/CTAG07/passchain/pkg/markov"
)

func (a *app) newTrainCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "train",
		Short: "Learn a chain from the corpus directory and save it",
		Long: `Reads every corpus file, splits it into paragraphs and sentences, learns each
tokenized sentence and writes the resulting chain to the chains path.`,
		Args: cobra.NoArgs,
		RunE: a.runTrain,
	}
}

func (a *app) runTrain(cmd *cobra.Command, _ []string) error {
	chain, err := markov.NewChain(a.config.Order)
	if err != nil {
		return err
	}
	chain.SetLogger(a.logger)

	docs, err := corpus.LoadDir(cmd.Context(), a.config.CorpusDir, a.config.CorpusExt)
	if err != nil {
		return err
	}
	if len(docs) == 0 {
		return fmt.Errorf("no %s files found in %s", a.config.CorpusExt, a.config.CorpusDir)
	}

	trainer := corpus.NewTrainer(chain, markov.NewDefaultTokenizer())
	trainer.SetLogger(a.logger)
	stats := trainer.Train(docs)

	a.logger.Info("Saving chains to file", slog.String("path", a.config.ChainsPath))
	if err = chain.SaveFile(a.config.ChainsPath); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	headingColor.Fprintln(out, "Training complete")
	fmt.Fprintf(out, "Files: %s, sentences: %s (%s learned), transitions: %s, contexts: %s\n",
		formatCount(stats.Files), formatCount(stats.Sentences), formatCount(stats.Learned),
		formatCount(stats.Observations), formatCount(chain.Len()))

	avg, err := chain.AverageEntropyPerTerm()
	if err != nil {
		// Nothing long enough to learn; the chain file is still written.
		a.logger.Warn("Corpus produced an empty chain", slog.Any("error", err))
		return nil
	}
	fmt.Fprintf(out, "Average entropy per term is %s bits\n", formatBits(avg))
	return nil
}
