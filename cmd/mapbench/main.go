package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/g-m-twostay/hashtables/Maps"
	"github.com/g-m-twostay/hashtables/logging"
	"github.com/g-m-twostay/hashtables/perf"
)

var (
	logLevelStr string

	rootCmd = &cobra.Command{
		Use:   "mapbench",
		Short: "Hash table workload driver",
		Long: `Runs the sliding window workload (a hit, a miss, a removal and an insertion per round)
against one of the hash tables and reports per operation latency quantiles.`,
		PersistentPreRunE: configureLogging,
		RunE:              exec,
		SilenceUsage:      true,
	}

	config = perf.Config{}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&logLevelStr, "log-level", "l", logging.DefaultLogLevel.String(), "Set logging level [debug|info|warn|error]")
	rootCmd.PersistentFlags().BoolVarP(&logging.LogJSON, "log-json", "j", false, "Print logs in JSON format")

	rootCmd.Flags().StringVarP(&config.Variant, "variant", "v", Maps.RobinHood.String(), "Map variant [chained|first-fit|robin-hood]")
	rootCmd.Flags().IntVarP(&config.Keys, "keys", "k", perf.DefaultKeys, "Number of live keys")
	rootCmd.Flags().IntVarP(&config.Ops, "ops", "n", 1_000_000, "Number of rounds, 0 runs until interrupted")
	rootCmd.Flags().StringVar(&config.Hash, "hash", perf.HashXXH3, "Hash function [xxh3|xxhash|maphash]")
	rootCmd.Flags().IntVar(&config.InitialCapacity, "initial-capacity", Maps.DefaultInitialCapacity, "Initial capacity of the map")
	rootCmd.Flags().Float64Var(&config.MaxLoadFactor, "max-load-factor", 0, "Load factor triggering a resize, 0 for the variant's default")
	rootCmd.Flags().BoolVar(&config.NoResize, "no-resize", false, "Keep the initial capacity")
	rootCmd.Flags().DurationVar(&config.ReportEvery, "report-every", perf.DefaultReportDur, "Interval between stats reports")
}

func configureLogging(*cobra.Command, []string) error {
	level, err := logging.ParseLogLevel(logLevelStr)
	if err != nil {
		return err
	}
	logging.LogLevel = level
	logging.ConfigureLogger()
	return nil
}

func exec(cmd *cobra.Command, _ []string) error {
	if err := config.Validate(); err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	r, err := perf.New(config).Run(ctx)
	if err != nil {
		log.Error().Err(err).Int("rounds", r.Rounds).Msg("Map perf run failed")
		return err
	}
	log.Info().
		Int("rounds", r.Rounds).
		Int("keys", r.Len).
		Int("capacity", r.Cap).
		Float64("get-p99-ns", r.Get.P99).
		Float64("remove-p99-ns", r.Remove.P99).
		Float64("insert-p99-ns", r.Insert.P99).
		Msg("Map perf run done")
	return nil
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
