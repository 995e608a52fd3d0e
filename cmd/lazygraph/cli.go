package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/born-ml/lazygraph/backend/cpu"
	"github.com/born-ml/lazygraph/graph"
	"github.com/born-ml/lazygraph/internal/envconfig"
	"github.com/born-ml/lazygraph/internal/logutil"
	"github.com/born-ml/lazygraph/tensor"
)

// appendEnvDocs adds the environment variables a command honours to its usage.
func appendEnvDocs(cmd *cobra.Command, envs []envconfig.EnvVar) {
	if len(envs) == 0 {
		return
	}

	envUsage := `
Environment Variables:
`
	for _, e := range envs {
		envUsage += fmt.Sprintf("      %-24s   %s\n", e.Name, e.Description)
	}

	cmd.SetUsageTemplate(cmd.UsageTemplate() + envUsage)
}

// NewCLI creates the root command with every subcommand attached.
func NewCLI() *cobra.Command {
	cobra.EnableCommandSorting = false

	var logger *slog.Logger

	rootCmd := &cobra.Command{
		Use:           "lazygraph",
		Short:         "Lazy tensor computation graph demos",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			logger = logutil.NewLogger(cmd.ErrOrStderr(), envconfig.LogLevel())
		},
		Run: func(cmd *cobra.Command, args []string) {
			if v, _ := cmd.Flags().GetBool("version"); v {
				versionHandler(cmd, args)
				return
			}

			cmd.Print(cmd.UsageString())
		},
	}

	rootCmd.Flags().BoolP("version", "v", false, "Show version information")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run:   versionHandler,
	}

	exampleCmd := &cobra.Command{
		Use:   "example",
		Short: "Evaluate (A + B) / 2 on a 2x2 tensor and print every node",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return exampleHandler(cmd, logger)
		},
	}
	addModeFlag(exampleCmd)

	chainCmd := &cobra.Command{
		Use:   "chain",
		Short: "Evaluate a deep chain of x / x nodes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			mode, err := modeFlag(cmd)
			if err != nil {
				return err
			}
			ops, _ := cmd.Flags().GetInt("ops")
			res, err := runChain(cmd.Context(), logger, ops, mode)
			if err != nil {
				return err
			}
			writeStats(cmd.OutOrStdout(), []runResult{res})
			return nil
		},
	}
	chainCmd.Flags().Int("ops", 20000, "Number of chained operations")
	addModeFlag(chainCmd)

	reduceCmd := &cobra.Command{
		Use:   "reduce",
		Short: "Evaluate a pairwise Add reduction over many roots",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			mode, err := modeFlag(cmd)
			if err != nil {
				return err
			}
			leaves, _ := cmd.Flags().GetInt("leaves")
			res, err := runReduce(cmd.Context(), logger, leaves, mode)
			if err != nil {
				return err
			}
			writeStats(cmd.OutOrStdout(), []runResult{res})
			return nil
		},
	}
	reduceCmd.Flags().Int("leaves", 4096, "Number of root tensors")
	addModeFlag(reduceCmd)

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "Run chain and reduce in both modes concurrently",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return benchHandler(cmd, logger)
		},
	}
	benchCmd.Flags().Int("ops", 20000, "Number of chained operations")
	benchCmd.Flags().Int("leaves", 4096, "Number of root tensors")

	envVars := envconfig.AsMap()
	for _, cmd := range []*cobra.Command{exampleCmd, chainCmd, reduceCmd, benchCmd} {
		appendEnvDocs(cmd, []envconfig.EnvVar{
			envVars["LAZYGRAPH_DEBUG"],
			envVars["LAZYGRAPH_EVAL_MODE"],
			envVars["LAZYGRAPH_PARALLEL"],
			envVars["LAZYGRAPH_NUM_THREADS"],
			envVars["LAZYGRAPH_MIN_CHUNK"],
		})
	}

	rootCmd.AddCommand(
		versionCmd,
		exampleCmd,
		chainCmd,
		reduceCmd,
		benchCmd,
	)

	return rootCmd
}

func versionHandler(cmd *cobra.Command, _ []string) {
	fmt.Fprintf(cmd.OutOrStdout(), "lazygraph version is %s\n", version)
}

func addModeFlag(cmd *cobra.Command) {
	cmd.Flags().String("mode", envconfig.EvalMode(), "Evaluation mode: populating or streaming")
}

func modeFlag(cmd *cobra.Command) (graph.Mode, error) {
	s, _ := cmd.Flags().GetString("mode")
	return graph.ParseMode(s)
}

func exampleHandler(cmd *cobra.Command, logger *slog.Logger) error {
	mode, err := modeFlag(cmd)
	if err != nil {
		return err
	}

	x, err := tensor.FromSlice([]float32{0, 1, 2, 3}, tensor.Shape{2, 2})
	if err != nil {
		return err
	}

	g := graph.New[float32](cpu.Float32(), graph.WithLogger(logger))
	a := g.CreateRoot(x)
	b := g.CreateRoot(x)
	sum := g.Add(a, b)
	half := g.DivScalarRH(sum, 2)

	if err := g.Evaluate(half, mode); err != nil {
		return err
	}

	var data [][]string
	for _, row := range []struct {
		name string
		h    graph.Handle
	}{{"A", a}, {"B", b}, {"A + B", sum}, {"(A + B) / 2", half}} {
		op, err := g.Op(row.h)
		if err != nil {
			return err
		}
		values := "-"
		if t, ok := g.Tensor(row.h); ok {
			values = fmt.Sprint(t.ToSlice())
		}
		data = append(data, []string{row.name, row.h.String(), op.String(), values})
	}

	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeader([]string{"NAME", "HANDLE", "OP", "VALUES"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.AppendBulk(data)
	table.Render()

	return nil
}

func benchHandler(cmd *cobra.Command, logger *slog.Logger) error {
	ops, _ := cmd.Flags().GetInt("ops")
	leaves, _ := cmd.Flags().GetInt("leaves")

	type job func(ctx context.Context) (runResult, error)
	var jobs []job
	for _, mode := range []graph.Mode{graph.Populating, graph.Streaming} {
		jobs = append(jobs,
			func(ctx context.Context) (runResult, error) { return runChain(ctx, logger, ops, mode) },
			func(ctx context.Context) (runResult, error) { return runReduce(ctx, logger, leaves, mode) },
		)
	}

	// Each job owns one graph; results are written to distinct slots.
	results := make([]runResult, len(jobs))
	g, ctx := errgroup.WithContext(cmd.Context())
	for i, run := range jobs {
		g.Go(func() error {
			res, err := run(ctx)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	writeStats(cmd.OutOrStdout(), results)
	return nil
}

func writeStats(w io.Writer, results []runResult) {
	var data [][]string
	for _, r := range results {
		data = append(data, []string{
			r.Name,
			r.Stats.Mode.String(),
			strconv.Itoa(r.Nodes),
			strconv.Itoa(r.Stats.Computed),
			strconv.Itoa(r.Stats.Evicted),
			strconv.Itoa(r.Stats.PeakLive),
			r.Stats.Duration.String(),
			strconv.FormatBool(r.OK),
		})
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"WORKLOAD", "MODE", "NODES", "COMPUTED", "EVICTED", "PEAK", "DURATION", "OK"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.AppendBulk(data)
	table.Render()
}
