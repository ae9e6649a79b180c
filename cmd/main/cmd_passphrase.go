package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/CTAG07/passchain/pkg/passphrase"
)

func (a *app) newPassphraseCmd() *cobra.Command {
	var bits float64
	var maxSentences int
	var verbose bool
	cmd := &cobra.Command{
		Use:   "passphrase",
		Short: "Generate sentences until their combined entropy reaches the target",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("bits") {
				a.config.TargetBits = bits
			}
			if cmd.Flags().Changed("max-sentences") {
				a.config.MaxSentences = maxSentences
			}
			if err := a.config.Validate(); err != nil {
				return err
			}
			return a.runPassphrase(cmd, verbose)
		},
	}
	cmd.Flags().Float64VarP(&bits, "bits", "b", 0, "target entropy in bits (overrides config)")
	cmd.Flags().IntVar(&maxSentences, "max-sentences", 0, "maximum number of sentences (overrides config)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show the entropy of every token")
	return cmd
}

func (a *app) runPassphrase(cmd *cobra.Command, verbose bool) error {
	chain, err := a.loadChain()
	if err != nil {
		return err
	}

	builder := passphrase.NewBuilder(a.newGenerator(chain),
		passphrase.WithTargetBits(a.config.TargetBits),
		passphrase.WithMaxSentences(a.config.MaxSentences),
	)
	builder.SetLogger(a.logger)

	result, err := builder.Build()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if verbose {
		for _, s := range result.Sentences {
			headingColor.Fprintln(out, joinTokens(s.Tokens))
			printTokenEntropies(out, s.Tokens, s.Entropies)
		}
		fmt.Fprintln(out)
	}
	secretColor.Fprintln(out, result.String())
	fmt.Fprintf(out, "Estimated minimum entropy: %s bits in %d sentences\n",
		formatBits(result.Bits), len(result.Sentences))
	return nil
}
