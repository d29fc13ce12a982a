package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"symbench/internal/app"
	"symbench/internal/domain"
	"symbench/internal/engine"
	"symbench/internal/infra"
	"symbench/internal/infra/storage"
	"symbench/internal/registry"
	"symbench/internal/report"
	"symbench/internal/workload"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	bootstrap := app.NewBootstrap()
	if err := bootstrap.Initialize(); err != nil {
		slog.Error("bootstrapping failed", slog.Any("error", err))
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		return 1
	}
	cfg := bootstrap.Config

	// One optional positional argument: the iteration count. A value that
	// does not parse as a positive number is rejected with a warning and
	// the configured default is used instead of proceeding with zero.
	iterations := cfg.Benchmark.Iterations
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n <= 0 {
			slog.Warn("iteration argument is not a positive number, using default",
				slog.String("arg", args[0]), slog.Int("default", iterations))
		} else {
			iterations = n
		}
	}

	pool := domain.NewDefaultPool()
	rep := report.NewReporter(os.Stdout)
	rep.Header(iterations, pool.Size())

	slog.Info("generating workload",
		slog.Int("iterations", iterations), slog.Uint64("seed", cfg.Benchmark.Seed))
	stream := workload.Generate(pool, iterations, cfg.Benchmark.Seed)

	orch := engine.NewOrchestrator(registry.New(), pool, stream,
		cfg.Benchmark.Target, infra.GlobalMetrics)
	orch.Prime()

	oneToOne, err := orch.RunOneToOne()
	if err != nil {
		return fail(err)
	}
	rep.OneToOne(oneToOne)

	sweep, err := orch.RunFanoutSweep(cfg.Benchmark.FanoutStart, cfg.Benchmark.FanoutMax, rep.Fanout)
	if err != nil {
		return fail(err)
	}
	rep.Summary(sweep)

	if bootstrap.Store != nil {
		record := storage.NewRun(iterations, cfg.Benchmark.Seed, cfg.Benchmark.Target,
			pool.Size(), oneToOne, sweep)
		if err := bootstrap.Store.SaveRun(record); err != nil {
			// Persistence is a convenience; the benchmark itself succeeded.
			slog.Error("failed to persist run", slog.Any("error", err))
		} else {
			slog.Info("run persisted", slog.Uint64("matches", oneToOne.Matches))
		}
	}

	snap := infra.GlobalMetrics.Snapshot()
	slog.Debug("run complete",
		slog.Uint64("scenarios", snap.ScenariosRun),
		slog.Uint64("comparisons", snap.ComparisonsTimed),
		slog.Int64("registry_size", snap.RegistrySize),
		slog.Uint64("priming_sink", orch.Sink()))

	return 0
}

// fail prints the required diagnostic line to stderr and maps the error to
// the process exit code: 1 for any correctness violation.
func fail(err error) int {
	slog.Error("benchmark aborted", slog.Any("error", err))
	fmt.Fprintf(os.Stderr, "ERROR %v\n", err)
	return 1
}
