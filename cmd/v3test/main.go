package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/annel0/v3math/internal/config"
	"github.com/annel0/v3math/internal/harness"
	"github.com/annel0/v3math/internal/logging"
	"github.com/annel0/v3math/internal/metrics"
	"github.com/annel0/v3math/internal/vec"
)

func main() {
	var (
		configPath  = flag.String("config", "", "Path to YAML config (default $V3MATH_CONFIG)")
		dumpMetrics = flag.Bool("metrics", false, "Print failure counters after the run")
		verbose     = flag.Bool("v", false, "Enable DEBUG logging")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}

	os.Exit(run(cfg, *dumpMetrics, *verbose, os.Stdout, os.Stderr))
}

// run выполняет прогон и возвращает код завершения
func run(cfg *config.Config, dumpMetrics, verbose bool, stdout, stderr io.Writer) int {
	level, err := logging.ParseLevel(cfg.Logging.Level)
	if err != nil {
		fmt.Fprintf(stderr, "invalid logging.level: %v\n", err)
		return 2
	}
	if verbose {
		level = logging.DEBUG
	}

	lm := logging.NewLoggerManager(logging.ManagerOptions{
		Dir:          cfg.Logging.Dir,
		Console:      stderr,
		ConsoleLevel: level,
		FileLevel:    logging.TRACE,
	})
	defer lm.CloseAll()

	logger := lm.MustGetLogger("v3test")
	vecLogger := lm.MustGetLogger("vec")

	registry := prometheus.NewRegistry()
	reporter, err := metrics.NewReporter(registry, vecLogger)
	if err != nil {
		logger.Error("register metrics: %v", err)
		return 2
	}
	ops := vec.New(reporter)

	runID := uuid.New()
	logger.Debug("run %s: seed=%d samples=%d tolerance=%g",
		runID, cfg.Harness.GetNoiseSeed(), cfg.Harness.GetNoiseSamples(), cfg.Harness.Tolerance)

	code, failures := harness.Run(stdout, ops, cfg.Harness)
	logger.Info("run %s finished: %d failed checks", runID, failures)

	if dumpMetrics || cfg.Metrics.Dump {
		if err := writeMetrics(stdout, registry); err != nil {
			logger.Error("dump metrics: %v", err)
		}
	}

	return code
}

// writeMetrics печатает собранные метрики в текстовом формате Prometheus
func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}
	fmt.Fprintln(w)
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
