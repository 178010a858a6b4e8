package main

import (
	"bytes"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/twopoint/correlation"
	"github.com/katalvlaran/twopoint/pairs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the root command with args and returns its standard output.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.Execute()

	return out.String(), err
}

// writeFile writes content into a fresh file under t.TempDir.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func writeBox(t *testing.T, name string, seed int64, n int, l float64) string {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	var b strings.Builder
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, "%g %g %g\n", rng.Float64()*l, rng.Float64()*l, rng.Float64()*l)
	}

	return writeFile(t, name, b.String())
}

// line is five consecutive points on a periodic line of length 10; its
// correlation is 8/5−1 at separation 1 and 6/5−1 at 2.
const line = "# x\n0\n1\n2\n\n3\n4\n"

func TestXi_PeriodicLine(t *testing.T) {
	data := writeFile(t, "line.txt", line)

	out, err := run(t, "xi", "--data", data, "--bins", "0.5,1.5,2.5", "--period", "10")
	require.NoError(t, err)
	assert.Equal(t, "0.5 1.5 0.6\n1.5 2.5 0.2\n", out)
}

func TestXi_ConfigAndEnv(t *testing.T) {
	data := writeFile(t, "line.txt", line)
	cfg := writeFile(t, "twopoint.yaml", "bins: [0.5, 1.5, 2.5]\nperiod: [10]\nestimator: davis_peebles\nworkers: 2\n")
	t.Setenv("TWOPOINT_DATA", data)

	out, err := run(t, "xi", "--config", cfg)
	require.NoError(t, err)
	assert.Equal(t, "0.5 1.5 0.6\n1.5 2.5 0.2\n", out)
}

func TestXi_Cross(t *testing.T) {
	data := writeBox(t, "a.txt", 1, 200, 100)
	data2 := writeBox(t, "b.txt", 2, 150, 100)

	out, err := run(t, "xi", "--data", data, "--data2", data2, "--bins", "5,10,20", "--period", "100", "--backend", "brute")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 9)
	assert.Equal(t, "# xi11", lines[0])
	assert.Equal(t, "# xi12", lines[3])
	assert.Equal(t, "# xi22", lines[6])
	assert.True(t, strings.HasPrefix(lines[1], "5 10 "))
}

func TestXi_Errors(t *testing.T) {
	data := writeFile(t, "line.txt", line)

	_, err := run(t, "xi", "--bins", "1,2", "--period", "10")
	assert.ErrorIs(t, err, errNoData)

	_, err = run(t, "xi", "--data", data, "--bins", "1,2")
	assert.ErrorIs(t, err, correlation.ErrNoRandoms)

	_, err = run(t, "xi", "--data", data, "--bins", "1,x", "--period", "10")
	assert.Error(t, err)

	_, err = run(t, "xi", "--data", data, "--bins", "1,2", "--period", "10", "--estimator", "nope")
	assert.Error(t, err)

	_, err = run(t, "xi", "--data", data, "--bins", "1,2", "--period", "10", "--backend", "nope")
	assert.ErrorIs(t, err, pairs.ErrUnknownBackend)
}

func TestJackknife(t *testing.T) {
	data := writeBox(t, "d.txt", 3, 200, 100)
	rnd := writeBox(t, "r.txt", 4, 400, 100)
	metricsOut := filepath.Join(t.TempDir(), "metrics.prom")

	out, err := run(t, "jackknife", "--data", data, "--randoms", rnd, "--bins", "5,10,20",
		"--period", "100", "--nsub", "2", "--estimator", "landy-szalay", "--metrics-out", metricsOut)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	for _, l := range lines {
		assert.Len(t, strings.Fields(l), 4)
	}

	prom, err := os.ReadFile(metricsOut)
	require.NoError(t, err)
	assert.Contains(t, string(prom), `twopoint_pair_count_calls_total{kind="jackknife"}`)
}

func TestWtheta(t *testing.T) {
	sky := writeFile(t, "sky.txt", "10 20\n10.5 20\n200 -45\n201 -45\n")

	out, err := run(t, "wtheta", "--data", sky, "--bins", "0.1,1,2")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 2)

	_, err = run(t, "wtheta", "--data", sky, "--data2", sky, "--bins", "0.1,1", "--auto=false", "--cross=false")
	require.NoError(t, err, "identical samples are an auto-correlation")
}

func TestEstimators(t *testing.T) {
	out, err := run(t, "estimators")
	require.NoError(t, err)
	assert.Contains(t, out, "Landy-Szalay  DD=true DR=true RR=true")
	assert.Contains(t, out, "Davis-Peebles DD=true DR=true RR=false")
}

func TestParseCatalog(t *testing.T) {
	pts, err := parseCatalog(strings.NewReader("# header\n1 2\n\n  3 4  \n"))
	require.NoError(t, err)
	assert.Equal(t, pairs.Points{{1, 2}, {3, 4}}, pts)

	_, err = parseCatalog(strings.NewReader("1 2\n3\n"))
	assert.ErrorIs(t, err, pairs.ErrDimensionMismatch)

	_, err = parseCatalog(strings.NewReader("1 a\n"))
	assert.ErrorContains(t, err, "line 1")
}
