package bench

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/bidipath/core"
	"github.com/katalvlaran/bidipath/dijkstra"
)

// Check failures collected by Run.
var (
	// ErrDistanceMismatch means two algorithms disagreed on a distance.
	ErrDistanceMismatch = errors.New("bench: distances do not match")

	// ErrInvalidPath means a returned path does not realize its distance.
	ErrInvalidPath = errors.New("bench: invalid path")
)

// Error kinds used as metric labels.
const (
	kindSearch   = "search"
	kindMismatch = "mismatch"
	kindPath     = "path"
)

// Runner times algorithms over scenarios.
type Runner struct {
	log        logrus.FieldLogger
	metrics    *Metrics
	algorithms []Algorithm
	runs       int
	earlyExit  bool
	seed       int64
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithLogger sets the run logger. Panics on nil.
func WithLogger(l logrus.FieldLogger) RunnerOption {
	if l == nil {
		panic("bench: WithLogger(nil)")
	}
	return func(r *Runner) { r.log = l }
}

// WithMetrics records every timed search in m.
func WithMetrics(m *Metrics) RunnerOption {
	return func(r *Runner) { r.metrics = m }
}

// WithAlgorithms selects the algorithms to run, in report order.
// Panics on an empty list.
func WithAlgorithms(algs ...Algorithm) RunnerOption {
	if len(algs) == 0 {
		panic("bench: WithAlgorithms needs at least one algorithm")
	}
	return func(r *Runner) { r.algorithms = append([]Algorithm(nil), algs...) }
}

// WithRuns sets how many times each search is repeated; the best time wins.
// Panics if n < 1.
func WithRuns(n int) RunnerOption {
	if n < 1 {
		panic(fmt.Sprintf("bench: WithRuns(%d)", n))
	}
	return func(r *Runner) { r.runs = n }
}

// WithEarlyExit enables the bidirectional stopping rule for both
// bidirectional algorithms.
func WithEarlyExit(on bool) RunnerOption {
	return func(r *Runner) { r.earlyExit = on }
}

// WithSeed records the seed used to build the scenarios in the report.
func WithSeed(seed int64) RunnerOption {
	return func(r *Runner) { r.seed = seed }
}

// NewRunner returns a Runner running every algorithm once, logging nowhere.
func NewRunner(opts ...RunnerOption) *Runner {
	silent := logrus.New()
	silent.SetOutput(io.Discard)

	r := &Runner{
		log:        silent,
		algorithms: AllAlgorithms(),
		runs:       1,
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Run executes every scenario. The returned Report is complete even when
// checks fail; failures come back joined in the error. A graph that cannot
// be built or a cancelled ctx stops the run early with a partial report.
func (r *Runner) Run(ctx context.Context, scenarios []Scenario) (*Report, error) {
	rep := &Report{
		RunID:     uuid.NewString(),
		Seed:      r.seed,
		Runs:      r.runs,
		StartedAt: time.Now().UTC(),
	}
	r.log.WithFields(logrus.Fields{"run_id": rep.RunID, "scenarios": len(scenarios)}).Info("bench: run started")

	var errs []error
	for _, sc := range scenarios {
		if err := ctx.Err(); err != nil {
			return rep, errors.Join(append(errs, err)...)
		}

		res, err := r.runScenario(ctx, sc)
		if res != nil {
			rep.Scenarios = append(rep.Scenarios, *res)
		}
		if err != nil {
			var buildErr *buildError
			if errors.As(err, &buildErr) {
				return rep, errors.Join(append(errs, err)...)
			}
			errs = append(errs, err)
		}
	}

	r.log.WithFields(logrus.Fields{"run_id": rep.RunID, "failures": len(errs)}).Info("bench: run finished")

	return rep, errors.Join(errs...)
}

type buildError struct {
	scenario string
	err      error
}

func (e *buildError) Error() string { return fmt.Sprintf("bench: build %q: %v", e.scenario, e.err) }
func (e *buildError) Unwrap() error { return e.err }

func (r *Runner) runScenario(ctx context.Context, sc Scenario) (*ScenarioResult, error) {
	log := r.log.WithField("scenario", sc.Name)

	built := time.Now()
	g, err := sc.Graph()
	if err != nil {
		return nil, &buildError{scenario: sc.Name, err: err}
	}
	log.WithFields(logrus.Fields{
		"nodes":    g.NodeCount(),
		"edges":    g.EdgeCount(),
		"duration": time.Since(built),
	}).Debug("bench: graph built")

	res := &ScenarioResult{
		Name:   sc.Name,
		Nodes:  g.NodeCount(),
		Edges:  g.EdgeCount(),
		Source: sc.Source,
		Target: sc.Target,
		Agree:  true,
	}

	var errs []error
	var ref *float64
	for _, alg := range r.algorithms {
		out, d, err := r.time(ctx, alg, g, sc)
		if err != nil {
			r.metrics.fail(alg, kindSearch)
			out.Error = err.Error()
			res.Results = append(res.Results, out)
			res.Agree = false
			errs = append(errs, fmt.Errorf("%s/%s: %w", sc.Name, alg, err))
			continue
		}

		if err := checkPath(g, sc, d, out.path); err != nil {
			r.metrics.fail(alg, kindPath)
			out.Error = err.Error()
			res.Agree = false
			errs = append(errs, fmt.Errorf("%s/%s: %w", sc.Name, alg, err))
		}

		if ref == nil {
			ref = &d
		} else if !sameDistance(*ref, d) {
			r.metrics.fail(alg, kindMismatch)
			if out.Error == "" {
				out.Error = ErrDistanceMismatch.Error()
			}
			res.Agree = false
			errs = append(errs, fmt.Errorf("%s/%s: %w: %v != %v", sc.Name, alg, ErrDistanceMismatch, d, *ref))
		}

		log.WithFields(logrus.Fields{
			"algorithm": alg,
			"distance":  d,
			"hops":      out.Hops,
			"duration":  out.duration,
			"expanded":  out.Expanded,
		}).Info("bench: search done")
		res.Results = append(res.Results, out)
	}

	return res, errors.Join(errs...)
}

// time runs alg r.runs times and keeps the fastest run.
func (r *Runner) time(ctx context.Context, alg Algorithm, g *core.Graph[int], sc Scenario) (Result, float64, error) {
	out := Result{Algorithm: alg}
	var d float64
	for i := 0; i < r.runs; i++ {
		var st dijkstra.Stats
		opts := []dijkstra.Option{dijkstra.WithStats(&st)}
		if r.earlyExit {
			opts = append(opts, dijkstra.WithEarlyExit())
		}

		start := time.Now()
		dist, path, err := alg.Search(ctx, g, sc.Source, sc.Target, opts...)
		elapsed := time.Since(start)
		if err != nil {
			return out, 0, err
		}
		r.metrics.observe(alg, sc.Name, elapsed, st.Expanded)

		if i == 0 || elapsed < out.duration {
			out.duration = elapsed
		}
		d, out.path, out.Expanded = dist, path, st.Expanded
	}

	out.Millis = float64(out.duration) / float64(time.Millisecond)
	if len(out.path) > 0 {
		out.Hops = len(out.path) - 1
	}
	if !math.IsInf(d, 1) {
		out.Distance = &d
	}

	return out, d, nil
}

// checkPath verifies that path realizes d between the scenario endpoints.
func checkPath(g *core.Graph[int], sc Scenario, d float64, path []int) error {
	if math.IsInf(d, 1) {
		if len(path) != 0 {
			return fmt.Errorf("%w: unreachable target with path %v", ErrInvalidPath, path)
		}
		return nil
	}
	if len(path) == 0 || path[0] != sc.Source || path[len(path)-1] != sc.Target {
		return fmt.Errorf("%w: endpoints of %v", ErrInvalidPath, path)
	}
	w, err := g.PathWeight(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPath, err)
	}
	if !sameDistance(w, d) {
		return fmt.Errorf("%w: weighs %v, reported %v", ErrInvalidPath, w, d)
	}

	return nil
}

func sameDistance(a, b float64) bool {
	if math.IsInf(a, 1) || math.IsInf(b, 1) {
		return math.IsInf(a, 1) && math.IsInf(b, 1)
	}
	return a == b
}
