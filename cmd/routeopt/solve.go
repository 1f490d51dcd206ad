package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/routeopt/costmatrix"
	"github.com/katalvlaran/routeopt/csvio"
	"github.com/katalvlaran/routeopt/geo"
	"github.com/katalvlaran/routeopt/kml"
	"github.com/katalvlaran/routeopt/tsp"
)

type loader func(cmd *cobra.Command) (*app, error)

func newSolveCmd(load loader) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "solve <input.csv>",
		Short: "Optimize a route through the coordinates in a CSV file",
		Long: `Reads one "lat,lon" pair in decimal degrees per line, removes duplicates,
solves the tour and writes it as KML next to the input (or to --output).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := load(cmd)
			if err != nil {
				return err
			}
			return a.solve(args[0], output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "KML output path (default: input with .kml extension)")

	return cmd
}

func (a *app) solve(input, output string) error {
	start := time.Now()

	pts, err := csvio.ReadPointsFile(input)
	if err != nil {
		return err
	}
	pts, removed := geo.Dedupe(pts)
	if removed > 0 {
		fmt.Fprintf(a.out, "%d duplicate coordinates removed.\n", removed)
	}

	solver, err := tsp.NewSolver(len(pts),
		tsp.WithMaxPasses(a.cfg.Solver.MaxPasses),
		tsp.WithLogger(a.log),
		tsp.WithObserver(a.recorder),
	)
	if err != nil {
		return err
	}

	res, err := costmatrix.New(
		costmatrix.WithMetric(a.cfg.Metric()),
		costmatrix.WithInitialScale(a.cfg.Distance.InitialScale),
		costmatrix.WithMaxScale(a.cfg.Distance.MaxScale),
		costmatrix.WithLogger(a.log),
		costmatrix.WithRescaleHook(a.recorder.ObserveRescale),
	).Build(pts)
	if err != nil {
		return err
	}

	tour := solver.Solve(res.Matrix)
	if tour.Empty() {
		return fmt.Errorf("no tour produced for %d points", len(pts))
	}

	if output == "" {
		output = kml.OutputPath(input)
	}
	if err = kml.WriteFile(output, pts, tour.Path); err != nil {
		return err
	}
	a.log.Info("route written", "path", output, "points", len(pts), "cost", tour.Cost)

	if err = writeGeoReport(a.out, geoReport{
		Scale:    res.Scale,
		Points:   len(pts),
		Nautical: res.Kilometres(tour.Cost) * geo.NMPerKm,
		Tour:     tour,
		Elapsed:  time.Since(start),
	}); err != nil {
		return err
	}

	return a.flushMetrics()
}
