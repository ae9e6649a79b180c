package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/CTAG07/passchain/pkg/markov"
)

var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

// app carries the state shared by every command once the configuration is loaded.
type app struct {
	configPath string
	config     *Config
	logger     *slog.Logger
	stdout     io.Writer
	stderr     io.Writer
	stdin      io.Reader

	// Flag values that override the configuration file when set.
	order      int
	corpusDir  string
	chainsPath string
	logLevel   string
	seed       uint64
}

// newRootCmd builds the command tree. Output goes to the given writers so the
// commands can be exercised in tests.
func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr}

	rootCmd := &cobra.Command{
		Use:   "passchain",
		Short: "Train Markov chains on text and generate high-entropy passphrases",
		Long: `passchain learns an order-N Markov chain from a directory of text files,
saves it in a flat tab-separated format, and samples sentences from it while
measuring how many bits of entropy each generated token carries.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "./passchain.json", "path to the JSON configuration file")
	flags.IntVar(&a.order, "order", 0, "chain order (overrides config)")
	flags.StringVar(&a.corpusDir, "corpus", "", "corpus directory (overrides config)")
	flags.StringVar(&a.chainsPath, "chains", "", "chain file path (overrides config)")
	flags.StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error (overrides config)")
	flags.Uint64Var(&a.seed, "seed", 0, "seed for reproducible generation (overrides config)")

	rootCmd.AddCommand(
		a.newTrainCmd(),
		a.newGenerateCmd(),
		a.newPassphraseCmd(),
		a.newEntropyCmd(),
		a.newGraphCmd(),
		a.newStatsCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

// setup loads the configuration, applies flag overrides, validates the result
// and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	config, err := LoadConfig(a.configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("order") {
		config.Order = a.order
	}
	if flags.Changed("corpus") {
		config.CorpusDir = a.corpusDir
	}
	if flags.Changed("chains") {
		config.ChainsPath = a.chainsPath
	}
	if flags.Changed("log-level") {
		config.LogLevel = a.logLevel
	}
	if flags.Changed("seed") {
		seed := a.seed
		config.Seed = &seed
	}

	if err = config.Validate(); err != nil {
		return err
	}

	a.config = config
	a.logger = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: config.SlogLevel()}))
	return nil
}

// loadChain loads the chain file named by the configuration.
func (a *app) loadChain() (*markov.Chain, error) {
	chain, err := markov.LoadFile(a.config.ChainsPath)
	if err != nil {
		return nil, err
	}
	chain.SetLogger(a.logger)
	a.logger.Debug("Chain loaded",
		slog.String("path", a.config.ChainsPath),
		slog.Int("order", chain.Order()),
		slog.Int("contexts", chain.Len()),
	)
	return chain, nil
}

// newGenerator builds a generator honouring the configured seed and token cap.
func (a *app) newGenerator(chain *markov.Chain) *markov.Generator {
	var rng *rand.Rand
	if a.config.Seed != nil {
		rng = rand.New(rand.NewPCG(*a.config.Seed, *a.config.Seed))
	}
	gen := markov.NewGenerator(chain, rng, markov.WithMaxLength(a.config.MaxTokens))
	gen.SetLogger(a.logger)
	return gen
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		// The version command needs no configuration.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "passchain %s (commit %s, built %s)\n", Version, Commit, BuildDate)
		},
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rootCmd := newRootCmd(os.Stdin, os.Stdout, os.Stderr)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		slog.New(slog.NewTextHandler(os.Stderr, nil)).Error("Command failed", "error", err)
		stop()
		os.Exit(1)
	}
}
