package tsp

import (
	"io"
	"log/slog"
	"time"
)

// Stage names one step of the solve pipeline, as reported to an Observer and in logs.
type Stage string

// Pipeline stages in execution order.
const (
	StageSpanningTree Stage = "spanning_tree"
	StageMatching     Stage = "matching"
	StageEuler        Stage = "euler"
	StageShortcut     Stage = "shortcut"
	StageTwoOpt       Stage = "two_opt"
)

// Observer receives progress from Solver.Solve. Implementations must be safe
// for concurrent use if one Solver is shared between goroutines.
type Observer interface {
	// ObserveStage is called after each stage with its wall-clock duration.
	ObserveStage(stage Stage, elapsed time.Duration)
	// ObserveTour is called once with the final tour and the number of 2-opt passes.
	ObserveTour(t Tour, passes int)
}

// Options configures a Solver. Use DefaultOptions and Option helpers.
//
// Fields:
//
//	MaxPasses — upper bound on 2-opt passes; 0 runs until a local optimum.
//	Logger    — receives one Debug record per stage; discarded by default.
//	Observer  — optional stage/tour callbacks (metrics); nil disables them.
type Options struct {
	MaxPasses int
	Logger    *slog.Logger
	Observer  Observer
}

// Option mutates Options before the Solver is built.
type Option func(*Options)

// DefaultOptions returns unlimited 2-opt, a discarding logger and no observer.
func DefaultOptions() Options {
	return Options{
		MaxPasses: 0,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithMaxPasses bounds the number of 2-opt passes (0 = unlimited).
// Panics on negative values.
func WithMaxPasses(k int) Option {
	if k < 0 {
		panic("tsp: WithMaxPasses(negative)")
	}
	return func(o *Options) {
		o.MaxPasses = k
	}
}

// WithLogger sets the logger used for per-stage debug records. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("tsp: WithLogger(nil)")
	}
	return func(o *Options) {
		o.Logger = l
	}
}

// WithObserver attaches an Observer. Panics on nil.
func WithObserver(obs Observer) Option {
	if obs == nil {
		panic("tsp: WithObserver(nil)")
	}
	return func(o *Options) {
		o.Observer = obs
	}
}
