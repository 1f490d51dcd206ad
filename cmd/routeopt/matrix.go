package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/routeopt/csvio"
	"github.com/katalvlaran/routeopt/tsp"
)

func newMatrixCmd(load loader) *cobra.Command {
	return &cobra.Command{
		Use:   "matrix <matrix.csv>",
		Short: "Solve an explicit integer cost matrix",
		Long: `Reads a square, symmetric matrix of non-negative integers with a zero
diagonal and positive off-diagonal entries, one row per line, and prints the
tour with 0-based vertex indices.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := load(cmd)
			if err != nil {
				return err
			}
			return a.solveMatrix(args[0])
		},
	}
}

func (a *app) solveMatrix(input string) error {
	start := time.Now()

	m, err := csvio.ReadMatrixFile(input)
	if err != nil {
		return err
	}
	if err = tsp.ValidateMatrix(m); err != nil {
		return fmt.Errorf("%s: %w", input, err)
	}

	solver, err := tsp.NewSolver(m.Size(),
		tsp.WithMaxPasses(a.cfg.Solver.MaxPasses),
		tsp.WithLogger(a.log),
		tsp.WithObserver(a.recorder),
	)
	if err != nil {
		return err
	}
	tour := solver.Solve(m)
	if tour.Empty() {
		return fmt.Errorf("no tour produced for %d vertices", m.Size())
	}

	if err = writeMatrixReport(a.out, matrixReport{Tour: tour, Elapsed: time.Since(start)}); err != nil {
		return err
	}

	return a.flushMetrics()
}
