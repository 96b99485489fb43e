package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/roadwork/builder"
	"github.com/katalvlaran/roadwork/instance"
)

type generateFlags struct {
	rows, cols     int
	days, capacity int
	seed           int64
	spacing        int
	jitter         int
	diagonals      float64
	minW, maxW     int64
}

func newGenerateCmd() *cobra.Command {
	var f generateFlags
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print a synthetic city grid instance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if f.days < 1 || f.capacity < 0 {
				return fmt.Errorf("days must be positive and capacity non-negative")
			}
			g, err := builder.BuildGraph([]builder.BuilderOption{
				builder.WithSeed(f.seed),
				builder.WithSpacing(f.spacing),
				builder.WithJitter(f.jitter),
				builder.WithDiagonals(f.diagonals),
				builder.WithUniformWeight(f.minW, f.maxW),
			}, builder.CityGrid(f.rows, f.cols))
			if err != nil {
				return err
			}
			capacity := f.capacity
			if capacity == 0 {
				// Tight but feasible.
				capacity = (g.M() + f.days - 1) / f.days
			}
			if capacity < 1 {
				return fmt.Errorf("capacity must be positive")
			}
			return instance.Write(cmd.OutOrStdout(), &instance.Instance{Graph: g, Days: f.days, Capacity: capacity})
		},
	}
	cmd.Flags().IntVar(&f.rows, "rows", 10, "grid rows")
	cmd.Flags().IntVar(&f.cols, "cols", 10, "grid columns")
	cmd.Flags().IntVar(&f.days, "days", 5, "maintenance days D")
	cmd.Flags().IntVar(&f.capacity, "capacity", 0, "closures per day K (0 picks ceil(M/D))")
	cmd.Flags().Int64Var(&f.seed, "seed", 1, "random seed")
	cmd.Flags().IntVar(&f.spacing, "spacing", 100, "block size")
	cmd.Flags().IntVar(&f.jitter, "jitter", 10, "coordinate jitter")
	cmd.Flags().Float64Var(&f.diagonals, "diagonals", 0.1, "probability of a diagonal per block")
	cmd.Flags().Int64Var(&f.minW, "min-weight", 1, "minimum road weight")
	cmd.Flags().Int64Var(&f.maxW, "max-weight", 100, "maximum road weight")
	return cmd
}
