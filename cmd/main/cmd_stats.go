package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/CTAG07/passchain/pkg/markov"
)

func (a *app) newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show statistics for the saved chain",
		Args:  cobra.NoArgs,
		RunE:  a.runStats,
	}
}

func (a *app) runStats(cmd *cobra.Command, _ []string) error {
	chain, err := a.loadChain()
	if err != nil {
		return err
	}
	stats := chain.Stats()
	out := cmd.OutOrStdout()

	headingColor.Fprintln(out, a.config.ChainsPath)
	if info, err := os.Stat(a.config.ChainsPath); err == nil {
		fmt.Fprintf(out, "  File size:        %s\n", humanize.Bytes(uint64(info.Size())))
	}
	fmt.Fprintf(out, "  Order:            %d\n", stats.Order)
	fmt.Fprintf(out, "  Contexts:         %s\n", formatCount(stats.Contexts))
	fmt.Fprintf(out, "  Transitions:      %s\n", formatCount(stats.Transitions))
	fmt.Fprintf(out, "  Vocabulary:       %s\n", formatCount(stats.VocabSize))
	fmt.Fprintf(out, "  Starting tokens:  %s\n", formatCount(stats.StartingTokens))

	avg, err := chain.AverageEntropyPerTerm()
	switch {
	case errors.Is(err, markov.ErrEmptyModel):
		fmt.Fprintln(out, "  Average entropy:  n/a (empty chain)")
	case err != nil:
		return err
	default:
		fmt.Fprintf(out, "  Average entropy:  %s bits per term\n", formatBits(avg))
	}
	return nil
}
