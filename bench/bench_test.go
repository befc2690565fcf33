package bench

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Zaire404/RHLL/config"
	"github.com/Zaire404/RHLL/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunnerWritesOneRowPerCardinality(t *testing.T) {
	config.Init()
	log.Init()

	out := filepath.Join(t.TempDir(), "results.tsv")
	runner, err := NewRunner(&Options{
		BitWidth:      10,
		Cardinalities: []int{100, 1000},
		Trials:        3,
		BitFlips:      1,
		Threshold:     10,
		Seed:          1,
		OutputPath:    out,
	})
	require.NoError(t, err)
	require.NoError(t, runner.Run())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3) // header + one row per cardinality
	assert.True(t, strings.HasPrefix(lines[0], "cardinality\t"))
	assert.True(t, strings.HasPrefix(lines[1], "100\t"))
	assert.True(t, strings.HasPrefix(lines[2], "1000\t"))
}

func TestRunnerTrialsDeterministicWithSeed(t *testing.T) {
	config.Init()
	log.Init()

	run := func() string {
		out := filepath.Join(t.TempDir(), "results.tsv")
		runner, err := NewRunner(&Options{
			BitWidth:      8,
			Cardinalities: []int{500},
			Trials:        2,
			BitFlips:      2,
			Threshold:     5,
			Seed:          42,
			OutputPath:    out,
		})
		require.NoError(t, err)
		require.NoError(t, runner.Run())
		data, err := os.ReadFile(out)
		require.NoError(t, err)
		return string(data)
	}

	assert.Equal(t, run(), run())
}

func TestNewRunnerRejectsNonPositiveTrials(t *testing.T) {
	_, err := NewRunner(&Options{Trials: 0})
	assert.Error(t, err)
}
