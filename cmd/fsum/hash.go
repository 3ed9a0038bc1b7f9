package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"fsum/internal/digest"
	"fsum/internal/hashing"
	"fsum/internal/observ"
)

func runHash(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()

	algoName, err := flags.GetString("algorithm")
	if err != nil {
		return fmt.Errorf("failed to get algorithm flag: %w", err)
	}
	batchSize, err := flags.GetInt("batch-size")
	if err != nil {
		return fmt.Errorf("failed to get batch-size flag: %w", err)
	}
	noGlob, err := flags.GetBool("no-glob")
	if err != nil {
		return fmt.Errorf("failed to get no-glob flag: %w", err)
	}
	useSync, err := flags.GetBool("sync")
	if err != nil {
		return fmt.Errorf("failed to get sync flag: %w", err)
	}
	showTimings, err := flags.GetBool("timings")
	if err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}

	// fsum.toml supplies defaults; explicit flags and arguments win.
	cfg, _, err := loadConfig(".")
	if err != nil {
		return err
	}
	patterns := args
	if len(patterns) == 0 {
		patterns = cfg.Hash.Patterns
	}
	if len(patterns) == 0 {
		patterns = []string{"*"}
	}
	if !flags.Changed("algorithm") && cfg.Hash.Algorithm != "" {
		algoName = cfg.Hash.Algorithm
	}
	if !flags.Changed("batch-size") && cfg.Hash.BatchSize != 0 {
		batchSize = cfg.Hash.BatchSize
	}

	algo, err := digest.ParseAlgorithm(algoName)
	if err != nil {
		return err
	}

	var timer *observ.Timer
	if showTimings {
		timer = observ.NewTimer()
	}

	req := hashing.Request{
		Patterns:   patterns,
		Algorithm:  algo,
		BatchSize:  batchSize,
		ExactPaths: noGlob,
		Timer:      timer,
	}

	var sum string
	if useSync {
		sum, err = hashing.HashSync(req)
	} else {
		sum, err = hashing.Hash(cmd.Context(), req)
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), sum)
	if timer != nil {
		fmt.Fprint(os.Stderr, timer.Summary())
	}
	return nil
}
