package main

import (
	"bytes"
	"fmt"
	"log/slog"

	"github.com/natefinch/atomic"
	"github.com/spf13/cobra"
)

func (a *app) newGraphCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Write the chain as a Graphviz digraph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("output") {
				a.config.GraphPath = output
			}
			return a.runGraph(cmd)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "file to write the graph to, stdout when empty (overrides config)")
	return cmd
}

func (a *app) runGraph(cmd *cobra.Command) error {
	chain, err := a.loadChain()
	if err != nil {
		return err
	}

	if a.config.GraphPath == "" {
		return chain.WriteGraph(cmd.OutOrStdout())
	}

	var buf bytes.Buffer
	if err = chain.WriteGraph(&buf); err != nil {
		return err
	}
	if err = atomic.WriteFile(a.config.GraphPath, &buf); err != nil {
		return fmt.Errorf("failed to write graph file: %w", err)
	}
	a.logger.Info("Graph written", slog.String("path", a.config.GraphPath))
	return nil
}
