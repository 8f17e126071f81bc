package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/socnet/config"
	"github.com/katalvlaran/socnet/reduce"
	"github.com/katalvlaran/socnet/tweet"
)

const full = `
interaction_type: Mention
time_window:
  start: 100
  end: 200
reduction:
  giant_component: true
  aggregation: hard
  hard_threshold: 3
log_level: debug
`

func TestParseFull(t *testing.T) {
	cfg, err := config.Parse([]byte(full))
	require.NoError(t, err)
	assert.Equal(t, tweet.Mention, cfg.InteractionType)
	assert.Equal(t, reduce.Policy{GiantComponent: true, Aggregation: reduce.Hard, HardThreshold: 3}, cfg.Reduction)
	assert.Equal(t, "debug", cfg.LogLevel)

	w, err := cfg.Window()
	require.NoError(t, err)
	assert.Equal(t, &tweet.Window{Start: 100, End: 200}, w)
}

func TestParseEmptyIsDefault(t *testing.T) {
	cfg, err := config.Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	w, err := cfg.Window()
	require.NoError(t, err)
	assert.Nil(t, w)
}

func TestParseRejects(t *testing.T) {
	cases := map[string]string{
		"unknown kind":     "interaction_type: like",
		"half window":      "time_window: {start: 5}",
		"reversed window":  "time_window: {start: 9, end: 1}",
		"negative":         "reduction: {aggregation: hard, hard_threshold: -1}",
		"unknown key":      "colour: blue",
		"malformed number": "time_window: {start: soon, end: 1}",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse([]byte(doc))
			require.ErrorIs(t, err, tweet.ErrInvalidArgument)
		})
	}
}

func TestUnknownAggregationIsLeftToReducer(t *testing.T) {
	cfg, err := config.Parse([]byte("reduction: {aggregation: medium}"))
	require.NoError(t, err)
	assert.Equal(t, reduce.Aggregation("medium"), cfg.Reduction.Aggregation)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "socnet.yaml")
	require.NoError(t, os.WriteFile(path, []byte(full), 0o600))
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, tweet.Mention, cfg.InteractionType)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
