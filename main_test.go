package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func write(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSolveCommand(t *testing.T) {
	path := write(t, "problem.yaml", pbProblem)
	out, err := run(t, "solve", path)
	require.NoError(t, err)
	assert.Equal(t, "profit 30 optimal\ncost 10 optimal\n", out)
}

func TestSolveCommandCard(t *testing.T) {
	path := write(t, "problem.yaml", cardProblem)
	out, err := run(t, "solve", "--backend", "card", "--strategy", "binary", path)
	require.NoError(t, err)
	assert.Equal(t, "count 2 optimal\nab 1 optimal\n", out)
}

func TestSolveCommandOptions(t *testing.T) {
	path := write(t, "problem.yaml", pbProblem)
	cfg := write(t, "config.yaml", "strategy: descending\nverify: true\n")
	dumpDir := t.TempDir()
	metricsFile := filepath.Join(t.TempDir(), "metrics.prom")
	out, err := run(t, "solve", "--config", cfg, "--dump-dir", dumpDir, "--metrics-file", metricsFile, path)
	require.NoError(t, err)
	assert.Equal(t, "profit 30 optimal\ncost 10 optimal\n", out)

	dumps, err := os.ReadDir(dumpDir)
	require.NoError(t, err)
	assert.NotEmpty(t, dumps)

	metrics, err := os.ReadFile(metricsFile)
	require.NoError(t, err)
	assert.Contains(t, string(metrics), `gopheropt_objectives_total{outcome="optimal"} 2`)
}

func TestSolveCommandErrors(t *testing.T) {
	path := write(t, "problem.yaml", pbProblem)
	tests := map[string][]string{
		"no file":          {"solve"},
		"missing file":     {"solve", filepath.Join(t.TempDir(), "none.yaml")},
		"unknown backend":  {"solve", "--backend", "smt", path},
		"unknown strategy": {"solve", "--strategy", "random", path},
		"card with ints":   {"solve", "--backend", "card", path},
	}
	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := run(t, args...)
			assert.Error(t, err)
		})
	}
}

func TestMaxsatCommand(t *testing.T) {
	path := write(t, "problem.wcnf", `p wcnf 3 5 10
10 1 2 0
10 -1 -3 0
4 -2 0
3 3 0
1 1 0
`)
	out, err := run(t, "maxsat", path)
	require.NoError(t, err)
	assert.Equal(t, "o 3\ns OPTIMUM FOUND\nv 1 -2 -3\n", out)
}

func TestMaxsatCommandUnsat(t *testing.T) {
	path := write(t, "problem.wcnf", "h 1 0\nh -1 0\n1 2 0\n")
	out, err := run(t, "maxsat", path)
	require.NoError(t, err)
	assert.Equal(t, "s UNSATISFIABLE\n", out)
}

func TestMaxsatCommandParseError(t *testing.T) {
	path := write(t, "problem.wcnf", "p wcnf 1 1\n1 2 0\n")
	_, err := run(t, "maxsat", path)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "could not parse problem"), err.Error())
}

func TestModelLine(t *testing.T) {
	assert.Equal(t, "1 -2 -10", modelLine(map[string]bool{"10": false, "2": false, "1": true}))
}
