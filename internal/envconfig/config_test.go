package envconfig

import (
	"log/slog"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"":      slog.LevelInfo,
		"false": slog.LevelInfo,
		"0":     slog.LevelInfo,
		"true":  slog.LevelDebug,
		"1":     slog.LevelDebug,
		"2":     slog.Level(-8),
		"'1'":   slog.LevelDebug,
	}

	for k, v := range cases {
		t.Run(k, func(t *testing.T) {
			t.Setenv("LAZYGRAPH_DEBUG", k)
			assert.Equal(t, v, LogLevel())
		})
	}
}

func TestEvalMode(t *testing.T) {
	cases := map[string]string{
		"":               "populating",
		"populating":     "populating",
		"STREAMING":      "streaming",
		"non-populating": "streaming",
		"bogus":          "populating",
	}

	for k, v := range cases {
		t.Run(k, func(t *testing.T) {
			t.Setenv("LAZYGRAPH_EVAL_MODE", k)
			assert.Equal(t, v, EvalMode())
		})
	}
}

func TestParallel(t *testing.T) {
	cases := map[string]bool{
		"":      true,
		"false": false,
		"0":     false,
		"true":  true,
		"what":  true,
	}

	for k, v := range cases {
		t.Run(k, func(t *testing.T) {
			t.Setenv("LAZYGRAPH_PARALLEL", k)
			assert.Equal(t, v, Parallel(true))
		})
	}
}

func TestUint(t *testing.T) {
	cases := map[string]uint{
		"":     4096,
		"1024": 1024,
		"-1":   4096,
		"x":    4096,
		" 8 ":  8,
	}

	for k, v := range cases {
		t.Run(k, func(t *testing.T) {
			t.Setenv("LAZYGRAPH_MIN_CHUNK", k)
			assert.Equal(t, v, MinChunk())
		})
	}

	t.Setenv("LAZYGRAPH_NUM_THREADS", "")
	assert.Equal(t, uint(runtime.NumCPU()), NumThreads())
}

func TestValues(t *testing.T) {
	t.Setenv("LAZYGRAPH_NUM_THREADS", "3")
	vals := Values()
	assert.Equal(t, "3", vals["LAZYGRAPH_NUM_THREADS"])
	assert.Len(t, vals, 5)
}
