package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func testConfig() config {
	return config{
		Workers:  8,
		Rounds:   20,
		BaseLen:  32,
		RightLen: 4,
		Format:   "yaml",
	}
}

func TestRun(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := testConfig()

	r, err := run(t.Context(), logger, cfg)
	require.NoError(t, err)
	require.EqualValues(t, cfg.Rounds, r.InPlace)
	require.EqualValues(t, cfg.Rounds*(cfg.Workers-1), r.Copied)
	require.Equal(t, cfg.BaseLen+cfg.RightLen, r.Sample.Len())
}

func TestRunCanceled(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, err := run(ctx, logger, testConfig())
	require.ErrorIs(t, err, context.Canceled)
}

func TestConfigValidate(t *testing.T) {
	require.NoError(t, testConfig().validate())

	cfg := testConfig()
	cfg.Workers = 0
	cfg.Format = "xml"
	err := cfg.validate()
	require.ErrorContains(t, err, "workers must be positive")
	require.ErrorContains(t, err, `unknown format "xml"`)
}

func TestWriteReport(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := testConfig()
	cfg.Rounds = 2
	r, err := run(t.Context(), logger, cfg)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writeReport(&buf, "yaml", r))
	var fromYAML struct {
		Rounds int   `yaml:"rounds"`
		Sample []int `yaml:"sample"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &fromYAML))
	require.Equal(t, 2, fromYAML.Rounds)
	require.Len(t, fromYAML.Sample, cfg.BaseLen+cfg.RightLen)

	buf.Reset()
	require.NoError(t, writeReport(&buf, "json", r))
	var fromJSON struct {
		InPlace int   `json:"in_place"`
		Sample  []int `json:"sample"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &fromJSON))
	require.Equal(t, 2, fromJSON.InPlace)
	require.Len(t, fromJSON.Sample, cfg.BaseLen+cfg.RightLen)
}

func TestRootCmd(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"--rounds", "3", "--workers", "4", "--format", "json"})

	require.NoError(t, cmd.ExecuteContext(t.Context()))
	require.Contains(t, out.String(), `"rounds": 3`)

	cmd = newRootCmd()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"--rounds", "0"})
	require.Error(t, cmd.ExecuteContext(t.Context()))
}
