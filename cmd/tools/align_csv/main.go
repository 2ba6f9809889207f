package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/soltixdb/tsread/internal/config"
	"github.com/soltixdb/tsread/internal/logging"
	"github.com/soltixdb/tsread/internal/query"
)

func main() {
	// Command line flags
	input := flag.String("input", "", "Input CSV of entity,measurement,type,timestamp,value rows")
	output := flag.String("output", "", "Output CSV of aligned rows (stdout when empty)")
	configPath := flag.String("config", "", "Path to tsread config file (optional)")
	limit := flag.Int("limit", 0, "Maximum number of rows to write (0 = all)")
	metricsFile := flag.String("metrics-file", "", "Write query metrics in text format to this file (optional)")
	quiet := flag.Bool("quiet", false, "Disable logging")

	flag.Parse()

	if *input == "" {
		log.Fatal("Error: -input parameter is required")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Error loading config: %v\n", err)
	}

	logger := logging.Nop()
	if !*quiet {
		logger, err = logging.NewFromConfig(cfg.Logging)
		if err != nil {
			log.Fatalf("Error creating logger: %v\n", err)
		}
	}
	logging.SetGlobal(logger)

	ctx := logging.WithLogger(context.Background(), logger)
	ctx = logging.WithSource(ctx, *input)
	logger = taggedLogger(ctx)

	var (
		registry *prometheus.Registry
		metrics  *query.Metrics
	)
	if cfg.Metrics.Enabled || *metricsFile != "" {
		registry = prometheus.NewRegistry()
		metrics = query.NewMetrics(registry, cfg.Metrics.Namespace)
	}

	in, err := os.Open(*input)
	if err != nil {
		logger.Fatal("Failed to open input", "error", err)
	}
	defer func() { _ = in.Close() }()

	columns, err := readColumns(in, cfg.Read)
	if err != nil {
		logger.Fatal("Failed to read input", "error", err)
	}
	if columns.Len() == 0 {
		logger.Warn("No data points found")
		return
	}
	logColumnStatistics(logger, columns)

	dataSet, err := columns.dataSet(query.WithLogger(logger), query.WithMetrics(metrics))
	if err != nil {
		logger.Fatal("Failed to build data set", "error", err)
	}
	ctx = logging.WithQueryID(ctx, dataSet.ID())
	logger = taggedLogger(ctx)

	out := os.Stdout
	if *output != "" {
		out, err = os.Create(*output)
		if err != nil {
			logger.Fatal("Failed to create output", "error", err, "path", *output)
		}
		defer func() { _ = out.Close() }()
	}

	rows, err := writeRows(out, dataSet, *limit)
	if err != nil {
		logger.Fatal("Failed to write rows", "error", err)
	}

	if *metricsFile != "" {
		if err := prometheus.WriteToTextfile(*metricsFile, registry); err != nil {
			logger.Error("Failed to write metrics", "error", err, "path", *metricsFile)
		}
	}

	logger.Info("Aligned rows written", "rows", rows, "columns", columns.Len())
}
