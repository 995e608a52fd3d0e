package main

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/lazygraph/graph"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("LAZYGRAPH_DEBUG", "")
	t.Setenv("LAZYGRAPH_EVAL_MODE", "")

	var out, errOut bytes.Buffer
	cmd := NewCLI()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "lazygraph version is "+version+"\n", out)

	out, err = execute(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, version)
}

func TestExampleCommand(t *testing.T) {
	tests := []struct {
		mode string
		sum  string
	}{
		{"populating", "[0 2 4 6]"},
		{"streaming", "-"},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			out, err := execute(t, "example", "--mode", tt.mode)
			require.NoError(t, err)

			var sumLine string
			for line := range strings.Lines(out) {
				if strings.HasPrefix(line, "A + B") {
					sumLine = line
				}
			}
			require.NotEmpty(t, sumLine)
			assert.Contains(t, sumLine, "add")
			assert.True(t, strings.HasSuffix(strings.TrimSpace(sumLine), tt.sum))
			assert.Contains(t, out, "div_scalar_rh")
			assert.Contains(t, out, "[0 1 2 3]")
		})
	}
}

func TestChainCommand(t *testing.T) {
	out, err := execute(t, "chain", "--ops", "200", "--mode", "streaming")
	require.NoError(t, err)
	assert.Contains(t, out, "chain/200")
	assert.Contains(t, out, "streaming")
	assert.Contains(t, out, "true")
}

func TestReduceCommandOddLeaves(t *testing.T) {
	out, err := execute(t, "reduce", "--leaves", "7", "--mode", "populating")
	require.NoError(t, err)
	assert.Contains(t, out, "reduce/7")
	assert.Contains(t, out, "true")
}

func TestBenchCommand(t *testing.T) {
	out, err := execute(t, "bench", "--ops", "64", "--leaves", "16")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "chain/64"))
	assert.Equal(t, 2, strings.Count(out, "reduce/16"))
	assert.NotContains(t, out, "false")
}

func TestInvalidArguments(t *testing.T) {
	_, err := execute(t, "chain", "--mode", "eager")
	require.ErrorIs(t, err, graph.ErrInvalidMode)

	_, err = execute(t, "reduce", "--leaves", "0")
	require.Error(t, err)

	_, err = execute(t, "chain", "extra")
	require.Error(t, err)
}

func TestModeFromEnvironment(t *testing.T) {
	t.Setenv("LAZYGRAPH_EVAL_MODE", "streaming")

	var out bytes.Buffer
	cmd := NewCLI()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"chain", "--ops", "10"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "streaming")
}

func TestWorkloadBounds(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)

	res, err := runChain(context.Background(), logger, 1000, graph.Streaming)
	require.NoError(t, err)
	assert.True(t, res.OK)
	assert.LessOrEqual(t, res.Stats.PeakLive, 2)
	assert.Equal(t, 1001, res.Nodes)

	res, err = runReduce(context.Background(), logger, 1024, graph.Streaming)
	require.NoError(t, err)
	assert.True(t, res.OK)
	assert.LessOrEqual(t, res.Stats.PeakLive, 20)
	assert.Equal(t, 2047, res.Nodes)
}

func TestWorkloadCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runReduce(ctx, slog.New(slog.DiscardHandler), 8, graph.Populating)
	require.ErrorIs(t, err, context.Canceled)
}
