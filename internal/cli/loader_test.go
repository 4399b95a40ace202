package cli

import (
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TrevorS/clique"
)

func TestLoadPointsWithHeader(t *testing.T) {
	points, header, err := LoadPoints(strings.NewReader("a, b\n1, 2\n3,4\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, header)
	require.Len(t, points, 2)
	assert.Equal(t, 0, points[0].ID)
	assert.Equal(t, []float64{3, 4}, points[1].Vector)
}

func TestLoadPointsWithoutHeader(t *testing.T) {
	points, header, err := LoadPoints(strings.NewReader("# comment\n1,2\n3,4\n"))
	require.NoError(t, err)
	assert.Nil(t, header)
	assert.Len(t, points, 2)
}

func TestLoadPointsEmptyCellIsNaN(t *testing.T) {
	points, _, err := LoadPoints(strings.NewReader("1,\n3,4\n"))
	require.NoError(t, err)
	assert.True(t, math.IsNaN(points[0].Vector[1]))
}

func TestLoadPointsRaggedRows(t *testing.T) {
	_, _, err := LoadPoints(strings.NewReader("1,2\n3\n"))
	require.Error(t, err)
}

func TestLoadPointsEmpty(t *testing.T) {
	points, header, err := LoadPoints(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, points)
	assert.Nil(t, header)
}

func TestLoadConfigFile(t *testing.T) {
	fc, err := LoadConfigFile(filepath.Join("testdata", "small.yaml"))
	require.NoError(t, err)

	cfg := clique.DefaultConfig()
	fc.Apply(&cfg)
	assert.Equal(t, 4, cfg.Xsi)
	assert.InDelta(t, 0.2, cfg.Tau, 1e-12)
	assert.False(t, cfg.Prune)
	assert.Equal(t, 0, cfg.Workers)
}

func TestLoadConfigFileUnknownKey(t *testing.T) {
	_, err := LoadConfigFile(filepath.Join("testdata", "unknown_key.yaml"))
	require.Error(t, err)
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, ExitOK, ExitCode(nil))
	assert.Equal(t, ExitRun, ExitCode(assert.AnError))
	assert.Equal(t, ExitUsage, ExitCode(usageError("x", assert.AnError)))
	assert.Equal(t, ExitRun, ExitCode(fmt.Errorf("outer: %w", runError("x", assert.AnError))))
	assert.ErrorIs(t, runError("x", assert.AnError), assert.AnError)
	assert.Equal(t, "cannot read a.csv: line 3", usageError("cannot read a.csv", errors.New("line 3")).Error())
}
