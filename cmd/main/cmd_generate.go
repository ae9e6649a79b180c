package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) newGenerateCmd() *cobra.Command {
	var attempts, maxTokens int
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate sentences and show the entropy of every token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("attempts") {
				a.config.Attempts = attempts
			}
			if cmd.Flags().Changed("max-tokens") {
				a.config.MaxTokens = maxTokens
			}
			if err := a.config.Validate(); err != nil {
				return err
			}
			return a.runGenerate(cmd)
		},
	}
	cmd.Flags().IntVarP(&attempts, "attempts", "n", 0, "number of sentences to generate (overrides config)")
	cmd.Flags().IntVar(&maxTokens, "max-tokens", 0, "maximum tokens per sentence, 0 for no limit (overrides config)")
	return cmd
}

func (a *app) runGenerate(cmd *cobra.Command) error {
	chain, err := a.loadChain()
	if err != nil {
		return err
	}
	gen := a.newGenerator(chain)
	out := cmd.OutOrStdout()

	for i := 0; i < a.config.Attempts; i++ {
		sentence, err := gen.Generate()
		if err != nil {
			return fmt.Errorf("generation %d failed: %w", i+1, err)
		}
		entropies, err := chain.SequenceEntropies(sentence)
		if err != nil {
			return fmt.Errorf("could not measure generation %d: %w", i+1, err)
		}

		headingColor.Fprintf(out, "Generated %d tokens for sentence\n", len(sentence))
		printTokenEntropies(out, sentence, entropies)
		fmt.Fprintln(out)
	}
	return nil
}
