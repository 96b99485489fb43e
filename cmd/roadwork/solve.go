package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/roadwork/config"
	"github.com/katalvlaran/roadwork/instance"
	"github.com/katalvlaran/roadwork/logger"
	"github.com/katalvlaran/roadwork/metrics"
	"github.com/katalvlaran/roadwork/solver"
)

type solveFlags struct {
	seed        int64
	timeLimit   time.Duration
	metricsFile string
	input       string
}

func newSolveCmd() *cobra.Command {
	var f solveFlags
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Read an instance and print one day per road",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSolve(cmd, f)
		},
	}
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "random seed (overrides config)")
	cmd.Flags().DurationVar(&f.timeLimit, "time-limit", 0, "search time limit (overrides config)")
	cmd.Flags().StringVar(&f.metricsFile, "metrics-file", "", "write Prometheus metrics to this file")
	cmd.Flags().StringVarP(&f.input, "input", "i", "", "instance file (default stdin)")
	return cmd
}

func runSolve(cmd *cobra.Command, f solveFlags) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = f.seed
	}
	if cmd.Flags().Changed("time-limit") {
		cfg.Search.TimeLimit = f.timeLimit
	}
	if cmd.Flags().Changed("metrics-file") {
		cfg.Metrics.File = f.metricsFile
	}
	if err = cfg.Validate(); err != nil {
		return err
	}

	log := logger.New("solver", logger.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format})

	in := cmd.InOrStdin()
	if f.input != "" {
		fh, err := os.Open(f.input)
		if err != nil {
			return err
		}
		defer fh.Close()
		in = fh
	}
	inst, err := instance.Read(in)
	if err != nil {
		return fmt.Errorf("read instance: %w", err)
	}

	reg := prometheus.NewRegistry()
	rec, err := metrics.NewProm(reg)
	if err != nil {
		return err
	}
	rep, err := solver.New(cfg, solver.WithLogger(log), solver.WithMetrics(rec)).Solve(ctx, inst)
	if err != nil {
		return err
	}

	out := bufio.NewWriter(cmd.OutOrStdout())
	if err = instance.WriteSchedule(out, rep.Schedule); err != nil {
		return err
	}
	if err = out.Flush(); err != nil {
		return err
	}

	if cfg.Metrics.File != "" {
		if err = metrics.WriteTextfile(cfg.Metrics.File, reg); err != nil {
			log.Errorf("write metrics: %v", err)
		}
	}
	return nil
}
