package bench_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bidipath/bench"
	"github.com/katalvlaran/bidipath/builder"
	"github.com/katalvlaran/bidipath/dijkstra"
)

// smallScenarios picks the default scenarios that build instantly.
func smallScenarios(t *testing.T) []bench.Scenario {
	t.Helper()
	cfg := bench.DefaultConfig()
	cfg.Scenarios = []string{"simple path", "graph with cycles", "very complex", "multiple paths", "dense 100"}
	scs, err := cfg.Select()
	require.NoError(t, err)
	return scs
}

func explicit(name string, src, dst int, es ...builder.WeightedEdge) bench.Scenario {
	return bench.Scenario{
		Name:         name,
		Source:       src,
		Target:       dst,
		Constructors: []builder.Constructor{builder.EdgeList(es)},
	}
}

func TestRun_DefaultScenariosAgree(t *testing.T) {
	rep, err := bench.NewRunner(bench.WithRuns(2)).Run(context.Background(), smallScenarios(t))
	require.NoError(t, err)
	require.Len(t, rep.Scenarios, 5)
	assert.True(t, rep.Agree())
	assert.NotEmpty(t, rep.RunID)
	assert.Equal(t, 2, rep.Runs)

	want := map[string]float64{
		"simple path":       6,
		"graph with cycles": 3,
		"very complex":      11,
		"multiple paths":    6,
		"dense 100":         3,
	}
	for _, sc := range rep.Scenarios {
		require.Len(t, sc.Results, 3, sc.Name)
		for _, res := range sc.Results {
			require.NotNil(t, res.Distance, "%s/%s", sc.Name, res.Algorithm)
			assert.Equal(t, want[sc.Name], *res.Distance, "%s/%s", sc.Name, res.Algorithm)
			assert.Empty(t, res.Error)
			assert.Positive(t, res.Hops)
			assert.Positive(t, res.Expanded)
		}
	}
}

func TestRun_EarlyExitAgrees(t *testing.T) {
	rep, err := bench.NewRunner(bench.WithEarlyExit(true)).Run(context.Background(), smallScenarios(t))
	require.NoError(t, err)
	assert.True(t, rep.Agree())
}

func TestRun_Unreachable(t *testing.T) {
	sc := explicit("disconnected", 0, 3,
		builder.WeightedEdge{U: 0, V: 1, Weight: 2},
		builder.WeightedEdge{U: 2, V: 3, Weight: 4},
	)

	rep, err := bench.NewRunner().Run(context.Background(), []bench.Scenario{sc})
	require.NoError(t, err)
	require.Len(t, rep.Scenarios, 1)
	for _, res := range rep.Scenarios[0].Results {
		assert.Nil(t, res.Distance)
		assert.Zero(t, res.Hops)
	}
	assert.True(t, rep.Agree())
}

func TestRun_CollectsSearchErrors(t *testing.T) {
	negative := explicit("negative", 0, 2,
		builder.WeightedEdge{U: 0, V: 1, Weight: 1},
		builder.WeightedEdge{U: 1, V: 2, Weight: -5},
	)
	missing := explicit("missing target", 0, 99,
		builder.WeightedEdge{U: 0, V: 1, Weight: 1},
	)

	rep, err := bench.NewRunner().Run(context.Background(), []bench.Scenario{negative, missing})
	require.Error(t, err)
	assert.ErrorIs(t, err, dijkstra.ErrContradictoryPath)
	assert.ErrorIs(t, err, dijkstra.ErrMissingNode)

	// both scenarios are still reported
	require.Len(t, rep.Scenarios, 2)
	assert.False(t, rep.Agree())
	assert.Empty(t, rep.Scenarios[0].Results[0].Error, "dijkstra does not detect negative weights")
	assert.NotEmpty(t, rep.Scenarios[0].Results[1].Error)
}

func TestRun_BuildErrorStops(t *testing.T) {
	bad := bench.Scenario{Name: "bad", Constructors: []builder.Constructor{builder.Dense(0)}}
	good := explicit("good", 0, 1, builder.WeightedEdge{U: 0, V: 1, Weight: 1})

	rep, err := bench.NewRunner().Run(context.Background(), []bench.Scenario{bad, good})
	require.ErrorIs(t, err, builder.ErrTooFewVertices)
	assert.Empty(t, rep.Scenarios)
}

func TestRun_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rep, err := bench.NewRunner().Run(ctx, smallScenarios(t))
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, rep.Scenarios)
}

func TestRun_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := bench.NewMetrics(reg)
	require.NoError(t, err)

	sc := explicit("negative", 0, 2,
		builder.WeightedEdge{U: 0, V: 1, Weight: 1},
		builder.WeightedEdge{U: 1, V: 2, Weight: -5},
	)
	_, err = bench.NewRunner(bench.WithMetrics(m), bench.WithAlgorithms(bench.Dijkstra, bench.Bidirectional)).
		Run(context.Background(), []bench.Scenario{sc})
	require.ErrorIs(t, err, dijkstra.ErrContradictoryPath)

	assert.Equal(t, 1, testutil.CollectAndCount(m.SearchDuration))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.ExpandedNodes.WithLabelValues("dijkstra")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ErrorsTotal.WithLabelValues("bidirectional", "search")))

	_, err = bench.NewMetrics(reg)
	assert.Error(t, err, "second registration must fail")
}

func TestRun_Logs(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	sc := explicit("pair", 0, 1, builder.WeightedEdge{U: 0, V: 1, Weight: 1})
	_, err := bench.NewRunner(bench.WithLogger(logger), bench.WithAlgorithms(bench.Dijkstra)).
		Run(context.Background(), []bench.Scenario{sc})
	require.NoError(t, err)

	var done int
	for _, e := range hook.AllEntries() {
		if e.Message == "bench: search done" {
			done++
			assert.Equal(t, "pair", e.Data["scenario"])
			assert.Equal(t, bench.Dijkstra, e.Data["algorithm"])
		}
	}
	assert.Equal(t, 1, done)
	assert.Equal(t, "bench: run finished", hook.LastEntry().Message)
}

func TestReport_Write(t *testing.T) {
	sc := explicit("pair", 0, 1, builder.WeightedEdge{U: 0, V: 1, Weight: 1.5})
	unreachable := explicit("split", 0, 3,
		builder.WeightedEdge{U: 0, V: 1, Weight: 1},
		builder.WeightedEdge{U: 2, V: 3, Weight: 1},
	)
	rep, err := bench.NewRunner(bench.WithSeed(9)).Run(context.Background(), []bench.Scenario{sc, unreachable})
	require.NoError(t, err)

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, rep.Write(&buf, bench.FormatJSON))

		var decoded bench.Report
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, rep.RunID, decoded.RunID)
		assert.Equal(t, int64(9), decoded.Seed)
		require.Len(t, decoded.Scenarios, 2)
		require.NotNil(t, decoded.Scenarios[0].Results[0].Distance)
		assert.Equal(t, 1.5, *decoded.Scenarios[0].Results[0].Distance)
		assert.Nil(t, decoded.Scenarios[1].Results[0].Distance)
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, rep.Write(&buf, bench.FormatYAML))
		out := buf.String()
		assert.Contains(t, out, "run_id: "+rep.RunID)
		assert.Contains(t, out, "name: pair")
		assert.Contains(t, out, "distance: null")
	})

	t.Run("table", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, rep.Write(&buf, bench.FormatTable))
		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		// header line, blank line, column header, 2 scenarios × 3 algorithms
		require.Len(t, lines, 9)
		assert.Contains(t, lines[2], "SCENARIO")
		assert.Contains(t, buf.String(), "inf")
		assert.Contains(t, buf.String(), "1.5")
	})

	t.Run("unknown", func(t *testing.T) {
		require.ErrorIs(t, rep.Write(&bytes.Buffer{}, bench.Format("xml")), bench.ErrUnknownFormat)
	})
}

func TestRunnerOptions_Panic(t *testing.T) {
	assert.Panics(t, func() { bench.WithRuns(0) })
	assert.Panics(t, func() { bench.WithAlgorithms() })
	assert.Panics(t, func() { bench.WithLogger(nil) })
}

func TestParse(t *testing.T) {
	a, err := bench.ParseAlgorithm("parallel")
	require.NoError(t, err)
	assert.Equal(t, bench.Parallel, a)
	_, err = bench.ParseAlgorithm("astar")
	assert.ErrorIs(t, err, bench.ErrUnknownAlgorithm)

	f, err := bench.ParseFormat("yaml")
	require.NoError(t, err)
	assert.Equal(t, bench.FormatYAML, f)
	_, err = bench.ParseFormat("csv")
	assert.ErrorIs(t, err, bench.ErrUnknownFormat)
}
