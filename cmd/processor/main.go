// Command processor transforms clock detail workbooks in batch. It scans an
// input directory for .xlsx files, runs each one through the report pipeline,
// and writes the processed workbook next to the original name under the
// output directory.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/prometheus/client_golang/prometheus"

	"clockreport/internal/config"
	"clockreport/internal/infrastructure"
	"clockreport/internal/services"
)

func main() {
	inDir := flag.String("in", ".", "input directory scanned for .xlsx workbooks")
	outDir := flag.String("out", "processed", "output directory for processed workbooks")
	concurrency := flag.Int("concurrency", 4, "number of workbooks processed in parallel")
	categories := flag.String("categories", "", "comma separated category codes (defaults to ECNB,ECMW)")
	flag.Parse()

	logger, err := infrastructure.InitializeLogger(config.Default().Logging)
	if err != nil {
		slog.Error("Failed to initialize logger", slog.String("error", err.Error()))
		os.Exit(1)
	}

	cats := config.Default().Report.Categories
	if *categories != "" {
		cats = splitCategories(*categories)
	}

	if err := run(context.Background(), logger, *inDir, *outDir, *concurrency, cats); err != nil {
		logger.Error("Batch processing failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, inDir, outDir string, concurrency int, categories []string) error {
	files, err := collectWorkbooks(inDir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		logger.Warn("No workbooks found", slog.String("dir", inDir))
		return nil
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	metrics := infrastructure.NewReportMetrics(prometheus.NewRegistry())
	service := services.NewReportService(logger, metrics, categories)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for _, path := range files {
		path := path
		g.Go(func() error {
			return processFile(ctx, logger, service, path, outDir)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("Batch processing complete", slog.Int("files", len(files)))
	return nil
}

func processFile(ctx context.Context, logger *slog.Logger, service *services.ReportService, path, outDir string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	out, err := service.Process(ctx, data)
	if err != nil {
		return fmt.Errorf("process %s: %w", path, err)
	}

	dest := filepath.Join(outDir, "Processed_"+filepath.Base(path))
	if err := os.WriteFile(dest, out, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", dest, err)
	}

	logger.Info("Workbook processed",
		slog.String("source", path),
		slog.String("output", dest))
	return nil
}

// collectWorkbooks lists .xlsx files in dir, skipping temp files Excel leaves
// behind while a workbook is open.
func collectWorkbooks(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read input directory: %w", err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !strings.EqualFold(filepath.Ext(name), ".xlsx") || strings.HasPrefix(name, "~$") {
			continue
		}
		files = append(files, filepath.Join(dir, name))
	}
	return files, nil
}

func splitCategories(raw string) []string {
	var out []string
	for _, c := range strings.Split(raw, ",") {
		if c = strings.TrimSpace(c); c != "" {
			out = append(out, c)
		}
	}
	return out
}
