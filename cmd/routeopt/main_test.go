package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/routeopt"
	"github.com/katalvlaran/routeopt/internal/config"
	"github.com/katalvlaran/routeopt/internal/logging"
	"github.com/katalvlaran/routeopt/metrics"
	"github.com/katalvlaran/routeopt/tsp"
)

// isolate clears ROUTEOPT_* variables and runs the test from an empty
// directory so no stray .env or config file is picked up.
func isolate(t *testing.T) string {
	t.Helper()
	for _, k := range []string{
		config.EnvConfig, config.EnvLogLevel, config.EnvLogFormat, config.EnvMetric,
		config.EnvMaxScale, config.EnvMaxPasses, config.EnvMetricsFile,
	} {
		t.Setenv(k, "")
	}
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	return dir
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := newRootCmd(&stdout, &stderr)
	root.SetArgs(args)
	err := root.Execute()

	return stdout.String(), stderr.String(), err
}

func write(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

// ----------------------------------------------------------------------------
// solve
// ----------------------------------------------------------------------------

const stopsCSV = `47.6062,-122.3321
45.5152,-122.6784
37.7749,-122.4194
34.0522,-118.2437
36.1699,-115.1398
45.5152,-122.6784
`

func TestSolve_WritesReportAndKML(t *testing.T) {
	dir := isolate(t)
	input := write(t, dir, "stops.csv", stopsCSV)

	out, _, err := run(t, "solve", input)
	require.NoError(t, err)

	assert.Contains(t, out, "1 duplicate coordinates removed.\n")
	assert.NotContains(t, out, "distance scaling applied")
	assert.Contains(t, out, "Number of coordinates: 5\n")
	assert.Regexp(t, `Total distance: \d+\.\dnm\n`, out)

	var pathLine string
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "Tour path:") {
			pathLine = line
		}
	}
	fields := strings.Fields(strings.TrimPrefix(pathLine, "Tour path:"))
	require.Len(t, fields, 6, "five stops plus the start repeated")
	assert.Equal(t, fields[0], fields[5])
	assert.ElementsMatch(t, []string{"1", "2", "3", "4", "5"}, fields[:5])

	data, err := os.ReadFile(filepath.Join(dir, "stops.kml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `<Placemark id="TOUR">`)
}

func TestSolve_OutputFlagAndMetricsFile(t *testing.T) {
	dir := isolate(t)
	input := write(t, dir, "stops.csv", stopsCSV)
	kmlPath := filepath.Join(dir, "route.kml")
	promPath := filepath.Join(dir, "run.prom")

	_, _, err := run(t, "solve", input, "--output", kmlPath, "--metrics-file", promPath, "--metric", "haversine")
	require.NoError(t, err)

	assert.FileExists(t, kmlPath)
	assert.NoFileExists(t, filepath.Join(dir, "stops.kml"))
	data, err := os.ReadFile(promPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "routeopt_tour_vertices 5")
	assert.Contains(t, string(data), `routeopt_stage_duration_seconds{stage="two_opt"}`)
}

func TestSolve_ScalesCloseStops(t *testing.T) {
	dir := isolate(t)
	input := write(t, dir, "close.csv", "0,0\n0,0.005\n0,0.01\n0,0.015\n")

	out, _, err := run(t, "solve", input)
	require.NoError(t, err)

	assert.Contains(t, out, "2x distance scaling applied.\n")
	assert.Contains(t, out, "Number of coordinates: 4\n")
}

func TestSolve_Errors(t *testing.T) {
	dir := isolate(t)

	_, _, err := run(t, "solve", write(t, dir, "few.csv", "1,1\n2,2\n3,3\n"))
	require.ErrorIs(t, err, tsp.ErrVertexCount)

	_, _, err = run(t, "solve", write(t, dir, "ok.csv", stopsCSV), "--metric", "taxicab")
	require.ErrorIs(t, err, config.ErrInvalid)

	_, _, err = run(t, "solve", filepath.Join(dir, "missing.csv"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, _, err = run(t, "solve")
	require.Error(t, err, "input argument is required")
}

// ----------------------------------------------------------------------------
// matrix
// ----------------------------------------------------------------------------

func TestMatrix_Report(t *testing.T) {
	dir := isolate(t)
	input := write(t, dir, "m.csv", "0,10,1,16\n10,0,12,2\n1,12,0,14\n16,2,14,0\n")

	out, _, err := run(t, "matrix", input)
	require.NoError(t, err)

	assert.Contains(t, out, "Number of vertices: 4\n")
	assert.Contains(t, out, "Tour cost: 27\n")
	assert.Contains(t, out, "Tour path: 0 2 3 1 0\n")
}

func TestMatrix_DebugLogsGoToStderr(t *testing.T) {
	dir := isolate(t)
	input := write(t, dir, "m.csv", "0,10,1,16\n10,0,12,2\n1,12,0,14\n16,2,14,0\n")

	out, logs, err := run(t, "matrix", input, "--log-level", "debug", "--log-format", "text")
	require.NoError(t, err)

	assert.Contains(t, logs, "stage=two_opt")
	assert.NotContains(t, out, "stage=")
}

func TestApp_SolveMatrixWithoutCommand(t *testing.T) {
	dir := t.TempDir()
	input := write(t, dir, "m.csv", "0,10,1,16\n10,0,12,2\n1,12,0,14\n16,2,14,0\n")
	var out bytes.Buffer
	a := &app{
		cfg:      config.Default(),
		log:      logging.NewNop(),
		recorder: metrics.New(),
		out:      &out,
	}

	require.NoError(t, a.solveMatrix(input))

	assert.Contains(t, out.String(), "Tour cost: 27\n")
}

func TestMatrix_RejectsInvalidMatrix(t *testing.T) {
	dir := isolate(t)

	_, _, err := run(t, "matrix", write(t, dir, "asym.csv", "0,1,2,3\n1,0,4,5\n2,4,0,6\n3,5,7,0\n"))
	require.ErrorIs(t, err, tsp.ErrAsymmetry)
}

func TestMatrix_ConfigFile(t *testing.T) {
	dir := isolate(t)
	input := write(t, dir, "m.csv", "0,10,1,16\n10,0,12,2\n1,12,0,14\n16,2,14,0\n")
	prom := filepath.Join(dir, "from-config.prom")
	cfg := write(t, dir, "routeopt.yaml", "metrics:\n  file: "+prom+"\nsolver:\n  max_passes: 1\n")

	_, _, err := run(t, "matrix", input, "--config", cfg)
	require.NoError(t, err)

	assert.FileExists(t, prom)
}

// ----------------------------------------------------------------------------
// version
// ----------------------------------------------------------------------------

func TestVersion(t *testing.T) {
	out, _, err := run(t, "version")

	require.NoError(t, err)
	assert.Equal(t, "routeopt version "+routeopt.Version+"\n", out)
}
