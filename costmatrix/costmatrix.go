// Package costmatrix turns a list of geographic points into the integer cost
// matrix consumed by the tsp solver.
//
// Costs are distances in kilometres multiplied by a scale factor and truncated
// to integers. When two distinct points are so close that their cost truncates
// to zero, the whole matrix is rebuilt with the scale doubled, up to a bounded
// maximum. Identical points are never rescued by scaling and are reported as
// duplicates instead; callers are expected to filter them first (geo.Dedupe).
package costmatrix

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/routeopt/geo"
	"github.com/katalvlaran/routeopt/tsp"
)

// Default scaling bounds.
const (
	DefaultInitialScale = 1.0
	DefaultMaxScale     = 64.0
)

var (
	// ErrDuplicateCoordinates indicates two input points with identical coordinates.
	ErrDuplicateCoordinates = errors.New("costmatrix: duplicate coordinates")
	// ErrInsufficientSeparation indicates that even the maximum scale leaves
	// some pair of distinct points with a zero cost.
	ErrInsufficientSeparation = errors.New("costmatrix: insufficient distance between coordinates")
)

// Result is a built matrix together with the scale that produced it.
type Result struct {
	Matrix tsp.CostMatrix
	Scale  float64
}

// Kilometres converts a cost (or a sum of costs) from this matrix back to kilometres.
func (r Result) Kilometres(cost int) float64 {
	return float64(cost) / r.Scale
}

// Builder produces cost matrices. The zero value is not usable; call New.
type Builder struct {
	metric       geo.Metric
	initialScale float64
	maxScale     float64
	logger       *slog.Logger
	onRescale    func(scale float64)
}

// Option configures a Builder.
type Option func(*Builder)

// WithMetric selects the distance formula (default geo.MetricRhumbline).
func WithMetric(m geo.Metric) Option {
	return func(b *Builder) {
		b.metric = m
	}
}

// WithInitialScale sets the first scale factor tried. Panics unless s > 0.
func WithInitialScale(s float64) Option {
	if !(s > 0) {
		panic("costmatrix: WithInitialScale(non-positive)")
	}
	return func(b *Builder) {
		b.initialScale = s
	}
}

// WithMaxScale bounds the scale factor; exceeding it fails the build.
// Panics unless s > 0.
func WithMaxScale(s float64) Option {
	if !(s > 0) {
		panic("costmatrix: WithMaxScale(non-positive)")
	}
	return func(b *Builder) {
		b.maxScale = s
	}
}

// WithLogger sets the logger that records rescaling. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("costmatrix: WithLogger(nil)")
	}
	return func(b *Builder) {
		b.logger = l
	}
}

// WithRescaleHook registers fn to be called with every new scale factor tried.
// Panics on nil.
func WithRescaleHook(fn func(scale float64)) Option {
	if fn == nil {
		panic("costmatrix: WithRescaleHook(nil)")
	}
	return func(b *Builder) {
		b.onRescale = fn
	}
}

// New returns a Builder with the rhumb-line metric, scale 1 and a maximum of 64.
func New(opts ...Option) *Builder {
	b := &Builder{
		metric:       geo.MetricRhumbline,
		initialScale: DefaultInitialScale,
		maxScale:     DefaultMaxScale,
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Build fills a symmetric cost matrix for pts.
//
// Each attempt computes every pair once at the current scale. A pair of
// identical points fails immediately with ErrDuplicateCoordinates; any other
// non-positive cost doubles the scale and restarts. When the doubled scale
// exceeds the maximum, Build fails with ErrInsufficientSeparation.
//
// Complexity: O(n²) per attempt, at most log2(max/initial)+1 attempts.
func (b *Builder) Build(pts []geo.Point) (Result, error) {
	scale := b.initialScale
	if scale > b.maxScale {
		return Result{}, fmt.Errorf("%w: initial scale %g above maximum %g", ErrInsufficientSeparation, scale, b.maxScale)
	}
	for {
		m, retry, err := b.fill(pts, scale)
		if err != nil {
			return Result{}, err
		}
		if !retry {
			return Result{Matrix: m, Scale: scale}, nil
		}

		scale *= 2
		if scale > b.maxScale {
			return Result{}, fmt.Errorf("%w: scale would reach %g (max %g)", ErrInsufficientSeparation, scale, b.maxScale)
		}
		b.logger.Info("rescaling distances", "scale", scale, "metric", b.metric.String())
		if b.onRescale != nil {
			b.onRescale(scale)
		}
	}
}

// fill computes one attempt. retry reports a zero cost between distinct points.
func (b *Builder) fill(pts []geo.Point, scale float64) (tsp.CostMatrix, bool, error) {
	n := len(pts)
	m := make(tsp.CostMatrix, n)
	for i := range m {
		m[i] = make([]int, n)
	}

	var r, c, d int
	for r = 0; r < n; r++ {
		for c = r + 1; c < n; c++ {
			d = int(b.metric.Distance(pts[r], pts[c]) * scale)
			if d <= 0 {
				if pts[r] == pts[c] {
					return nil, false, fmt.Errorf("%w: points %d and %d at %s", ErrDuplicateCoordinates, r+1, c+1, pts[r])
				}
				return nil, true, nil
			}
			m[r][c], m[c][r] = d, d
		}
	}

	return m, false, nil
}
