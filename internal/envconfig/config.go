// Package envconfig reads lazygraph settings from the environment.
package envconfig

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strconv"
	"strings"
)

// LogLevel returns the log level.
// Configurable via LAZYGRAPH_DEBUG: 0/false = INFO (default), 1/true = DEBUG,
// 2 = TRACE.
func LogLevel() slog.Level {
	level := slog.LevelInfo
	if s := Var("LAZYGRAPH_DEBUG"); s != "" {
		if b, _ := strconv.ParseBool(s); b {
			level = slog.LevelDebug
		} else if i, _ := strconv.ParseInt(s, 10, 64); i != 0 {
			level = slog.Level(i * -4)
		}
	}

	return level
}

// EvalMode returns the default evaluation mode name for the CLI.
// Configurable via LAZYGRAPH_EVAL_MODE: "populating" (default) or "streaming".
func EvalMode() string {
	switch s := strings.ToLower(Var("LAZYGRAPH_EVAL_MODE")); s {
	case "", "populating":
		return "populating"
	case "streaming", "non-populating":
		return "streaming"
	default:
		slog.Warn("invalid environment variable, using default", "key", "LAZYGRAPH_EVAL_MODE", "value", s, "default", "populating")
		return "populating"
	}
}

var (
	// Parallel enables multi-goroutine kernel element loops.
	// Configurable via LAZYGRAPH_PARALLEL. Default: true.
	Parallel = BoolWithDefault("LAZYGRAPH_PARALLEL")
	// NumThreads is the number of kernel worker goroutines.
	// Configurable via LAZYGRAPH_NUM_THREADS. Default: number of CPUs.
	NumThreads = Uint("LAZYGRAPH_NUM_THREADS", uint(runtime.NumCPU()))
	// MinChunk is the minimum number of elements per kernel worker.
	// Configurable via LAZYGRAPH_MIN_CHUNK. Default: 4096.
	MinChunk = Uint("LAZYGRAPH_MIN_CHUNK", 4096)
)

// BoolWithDefault returns a getter for a boolean variable. Unparseable
// non-empty values read as true.
func BoolWithDefault(k string) func(defaultValue bool) bool {
	return func(defaultValue bool) bool {
		if s := Var(k); s != "" {
			b, err := strconv.ParseBool(s)
			if err != nil {
				return true
			}
			return b
		}
		return defaultValue
	}
}

// Uint returns a getter for an unsigned integer variable.
func Uint(key string, defaultValue uint) func() uint {
	return func() uint {
		if s := Var(key); s != "" {
			if n, err := strconv.ParseUint(s, 10, 64); err != nil {
				slog.Warn("invalid environment variable, using default", "key", key, "value", s, "default", defaultValue)
			} else {
				return uint(n)
			}
		}
		return defaultValue
	}
}

// EnvVar describes one configuration variable.
type EnvVar struct {
	Name        string
	Value       any
	Description string
}

// AsMap returns every configuration variable with its current value.
func AsMap() map[string]EnvVar {
	return map[string]EnvVar{
		"LAZYGRAPH_DEBUG":       {"LAZYGRAPH_DEBUG", LogLevel(), "Show additional debug information (e.g. LAZYGRAPH_DEBUG=1)"},
		"LAZYGRAPH_EVAL_MODE":   {"LAZYGRAPH_EVAL_MODE", EvalMode(), "Default evaluation mode: populating or streaming"},
		"LAZYGRAPH_PARALLEL":    {"LAZYGRAPH_PARALLEL", Parallel(true), "Parallelise kernel element loops (default true)"},
		"LAZYGRAPH_NUM_THREADS": {"LAZYGRAPH_NUM_THREADS", NumThreads(), "Kernel worker goroutines (default: number of CPUs)"},
		"LAZYGRAPH_MIN_CHUNK":   {"LAZYGRAPH_MIN_CHUNK", MinChunk(), "Minimum elements per kernel worker (default 4096)"},
	}
}

// Values returns every configuration variable formatted as a string.
func Values() map[string]string {
	vals := make(map[string]string)
	for k, v := range AsMap() {
		vals[k] = fmt.Sprintf("%v", v.Value)
	}
	return vals
}

// Var returns an environment variable stripped of leading and trailing
// quotes and spaces.
func Var(key string) string {
	return strings.Trim(strings.TrimSpace(os.Getenv(key)), "\"'")
}
