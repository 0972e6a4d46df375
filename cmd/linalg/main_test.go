package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/oxygene76/linalg/internal/types"
	"github.com/oxygene76/linalg/pkg/linalg"
)

func execute(t *testing.T, configPath string, args ...string) (string, string, error) {
	t.Helper()

	if configPath == "" {
		configPath = filepath.Join(t.TempDir(), "config.yaml")
	}

	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--config", configPath}, args...))

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestVectorCommands(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"vector", "cross", "1,0,0", "0,1,0"}, "Vector: (0, 0, 1)"},
		{[]string{"vector", "add", "1,2", "(3,4)"}, "Vector: (4, 6)"},
		{[]string{"vector", "sub", "3,4", "1,1"}, "Vector: (2, 3)"},
		{[]string{"vector", "scale", "1,2", "2.5"}, "Vector: (2.5, 5)"},
		{[]string{"vector", "mag", "3,4"}, "5"},
		{[]string{"vector", "dot", "1,2", "3,4"}, "11"},
		{[]string{"vector", "orth", "1,0", "0,1"}, "true"},
		{[]string{"vector", "orth", "1,0", "1,0"}, "false"},
		{[]string{"vector", "parallel", "1,1", "2,2"}, "true"},
		{[]string{"vector", "classify", "1,2", "2,1"}, "Neither (dot=4)"},
		{[]string{"vector", "proj", "3,4", "2,0"}, "Vector: (3, 0)"},
		{[]string{"vector", "perp", "3,4", "2,0"}, "Vector: (0, 4)"},
		{[]string{"vector", "area-triangle", "1,0,0", "0,1,0"}, "0.5"},
		{[]string{"vector", "area-parallelogram", "1,0,0", "0,1,0"}, "1"},
		{[]string{"vector", "normalize", "0,5"}, "Vector: (0, 1)"},
		{[]string{"vector", "equal", "1,2", "1,2"}, "true"},
		{[]string{"vector", "angle", "1,0", "0,1"}, "1.570796 rad (90°)"},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			out, _, err := execute(t, "", tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, strings.TrimSpace(out))
		})
	}
}

func TestVectorCommandErrors(t *testing.T) {
	_, stderr, err := execute(t, "", "vector", "add", "1,2", "1,2,3")
	require.ErrorIs(t, err, linalg.ErrDimensionMismatch)
	assert.Contains(t, stderr, "operation failed")

	_, _, err = execute(t, "", "vector", "cross", "1,0", "0,1")
	require.ErrorIs(t, err, linalg.ErrUnsupportedDimension)

	_, _, err = execute(t, "", "vector", "normalize", "0,0")
	require.ErrorIs(t, err, linalg.ErrZeroVector)

	_, _, err = execute(t, "", "vector", "dot", "1,a", "1,2")
	require.ErrorIs(t, err, linalg.ErrInvalidCoordinate)
}

func TestJSONOutput(t *testing.T) {
	out, _, err := execute(t, "", "-o", "json", "vector", "dot", "1,2", "3,4")
	require.NoError(t, err)

	var result types.Result
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "vector dot", result.Operation)
	assert.Equal(t, []string{"1,2", "3,4"}, result.Operands)
	require.NotNil(t, result.Scalar)
	assert.Equal(t, "11", *result.Scalar)
}

func TestLineCommands(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"line", "show", "1,0=5"}, "x_1 = 5"},
		{[]string{"line", "show", "0,0=3"}, "0 = 3"},
		{[]string{"line", "parallel", "1,0=5", "2,0=10"}, "true"},
		{[]string{"line", "equal", "1,0=5", "2,0=10"}, "true"},
		{[]string{"line", "equal", "1,0=5", "1,0=6"}, "false"},
		{[]string{"line", "intersect", "1,1=1", "1,-1=1"}, "Vector: (1, 0)"},
		{[]string{"line", "intersect", "1,1=1", "1,1=2"}, "no intersection"},
		{[]string{"line", "intersect", "1,1=1", "2,2=2"}, "x_1 + x_2 = 1"},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			out, _, err := execute(t, "", tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, strings.TrimSpace(out))
		})
	}
}

func TestLineIntersectYAML(t *testing.T) {
	out, _, err := execute(t, "", "--output", "yaml", "line", "intersect", "1,1=1", "2,2=2")
	require.NoError(t, err)

	var result types.Result
	require.NoError(t, yaml.Unmarshal([]byte(out), &result))
	assert.Equal(t, "coincident", result.Kind)
	assert.Empty(t, result.Vector)
}

func TestLineShowBasepointJSON(t *testing.T) {
	out, _, err := execute(t, "", "-o", "json", "line", "show", "2,0=10")
	require.NoError(t, err)

	var result types.Result
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, []string{"5", "0"}, result.Vector)
	assert.Equal(t, "2x_1 = 10", result.Text)
}

func TestDegenerateLineCommand(t *testing.T) {
	_, _, err := execute(t, "", "line", "parallel", "0,0=1", "1,1=1")
	require.ErrorIs(t, err, linalg.ErrDegenerateLine)

	_, _, err = execute(t, "", "line", "intersect", "0,0=1", "1,1=1")
	require.ErrorIs(t, err, linalg.ErrDegenerateLine)
}

func TestDemo(t *testing.T) {
	out, _, err := execute(t, "", "demo")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "Vector: (9, -17, 3)", lines[1])
	assert.Equal(t, "142.122221", lines[2])
	assert.Equal(t, "42.564937", lines[3])
	assert.True(t, strings.HasPrefix(lines[4], "Vector: (1.17277"), lines[4])
}

func TestConfigInitAndShow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "linalg", "config.yaml")

	out, _, err := execute(t, path, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, path)

	_, _, err = execute(t, path, "config", "init")
	require.ErrorContains(t, err, "already exists")

	_, _, err = execute(t, path, "config", "init", "--force")
	require.NoError(t, err)

	out, _, err = execute(t, path, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "format: text")
	assert.Contains(t, out, "zero_epsilon: 1e-10")
}

func TestInvalidOverrides(t *testing.T) {
	_, _, err := execute(t, "", "-o", "xml", "vector", "mag", "3,4")
	require.ErrorContains(t, err, "invalid output format")

	_, _, err = execute(t, "", "--log-level", "loud", "vector", "mag", "3,4")
	require.ErrorContains(t, err, "invalid log level")
}
