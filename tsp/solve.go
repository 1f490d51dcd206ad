package tsp

import (
	"fmt"
	"time"
)

// Solver runs the Christofides + 2-opt pipeline for matrices of one fixed size.
// A Solver is immutable after NewSolver; Solve may be called concurrently.
type Solver struct {
	n    int
	opts Options
}

// NewSolver returns a Solver for n vertices.
//
// n must lie in [MinVertices, MaxVertices]; otherwise ErrVertexCount is returned
// (wrapped with the offending value) and nothing else is set up.
func NewSolver(n int, opts ...Option) (*Solver, error) {
	if n < MinVertices || n > MaxVertices {
		return nil, fmt.Errorf("%w: %d (want %d..%d)", ErrVertexCount, n, MinVertices, MaxVertices)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Solver{n: n, opts: o}, nil
}

// N returns the vertex count the solver was configured for.
func (s *Solver) N() int { return s.n }

// Solve computes an approximate tour for m.
//
// An empty Tour is returned when m is empty or any of its dimensions differs from N();
// callers treat a zero-length path as "no solution". Otherwise the result is a
// permutation of 0..n-1 whose Cost equals TourCost(m, Path).
//
// Pipeline: MinimumSpanningTree → GreedyMatch → EulerianCircuit(0) → Shortcut → TwoOpt.
//
// Complexity: O(n²) for the construction stages plus O(passes · n²) for 2-opt.
func (s *Solver) Solve(m CostMatrix) Tour {
	if len(m) == 0 || len(m) != s.n {
		return Tour{}
	}
	for _, row := range m {
		if len(row) != s.n {
			return Tour{}
		}
	}

	var (
		log   = s.opts.Logger
		t0    = time.Now()
		stage = func(st Stage) time.Duration {
			d := time.Since(t0)
			if s.opts.Observer != nil {
				s.opts.Observer.ObserveStage(st, d)
			}
			t0 = time.Now()
			return d
		}
	)

	g := MinimumSpanningTree(m)
	log.Debug("spanning tree built", "stage", StageSpanningTree, "edges", g.EdgeCount(),
		"weight", g.Weight(), "elapsed", stage(StageSpanningTree))

	odd := g.OddVertices()
	GreedyMatch(g, odd, m)
	log.Debug("odd vertices matched", "stage", StageMatching, "odd", len(odd),
		"edges", g.EdgeCount(), "elapsed", stage(StageMatching))

	walk := EulerianCircuit(g, 0)
	log.Debug("euler circuit extracted", "stage", StageEuler, "walk", len(walk),
		"elapsed", stage(StageEuler))

	path := Shortcut(walk, s.n)
	cost := TourCost(m, path)
	log.Debug("hamiltonian cycle formed", "stage", StageShortcut, "cost", cost,
		"elapsed", stage(StageShortcut))

	refined, passes := TwoOpt(m, path, cost, s.opts.MaxPasses)
	tour := Tour{Path: path, Cost: TourCost(m, path)}
	log.Debug("2-opt converged", "stage", StageTwoOpt, "passes", passes,
		"cost", tour.Cost, "saved", cost-refined, "elapsed", stage(StageTwoOpt))

	if s.opts.Observer != nil {
		s.opts.Observer.ObserveTour(tour, passes)
	}

	return tour
}
