package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"compareengine/internal/exporter"
	"compareengine/internal/infrastructure"
	"compareengine/internal/loader"
	"compareengine/pkg/compare"
)

// Runner executes pipeline definitions: it loads the declared inputs,
// applies each step in order against the dataset registry, and exports
// the results.
type Runner struct {
	logger *slog.Logger
}

// NewRunner creates a pipeline runner.
func NewRunner(logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{logger: logger}
}

// Run executes the definition and returns every named dataset: the loaded
// inputs plus each step's output. The context gains a run ID (if it has
// none) that tags every log line of the run.
func (r *Runner) Run(ctx context.Context, def *Definition) (map[string]compare.Dataset, error) {
	ctx = infrastructure.EnsureRunID(ctx)
	start := time.Now()

	r.logger.InfoContext(ctx, "starting pipeline run",
		"pipeline", def.Name,
		"inputs", len(def.Inputs),
		"steps", len(def.Steps),
	)

	reg := make(registry, len(def.Inputs)+len(def.Steps))
	for _, input := range def.Inputs {
		if _, exists := reg[input.Name]; exists {
			return nil, fmt.Errorf("duplicate dataset name %q", input.Name)
		}

		var (
			data compare.Dataset
			err  error
		)
		if input.Sheet != "" {
			data, err = loader.LoadXLSX(input.Path, input.Sheet)
		} else {
			data, err = loader.Load(input.Path)
		}
		if err != nil {
			return nil, fmt.Errorf("load input %q: %w", input.Name, err)
		}
		reg[input.Name] = data
	}

	for i, step := range def.Steps {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("pipeline cancelled: %w", ctx.Err())
		default:
		}

		stepStart := time.Now()
		result, err := applyStep(reg, step)
		if err != nil {
			r.logger.ErrorContext(ctx, "pipeline step failed",
				"pipeline", def.Name,
				"step", fmt.Sprintf("%d/%d", i+1, len(def.Steps)),
				"op", step.Op,
				"error", err,
			)
			return nil, fmt.Errorf("step %d (%s): %w", i+1, step.Op, err)
		}
		reg[step.Output] = result

		r.logger.DebugContext(ctx, "pipeline step completed",
			"op", step.Op,
			"output", step.Output,
			"rows", len(result),
			"duration", time.Since(stepStart),
		)
	}

	r.logger.InfoContext(ctx, "pipeline run completed",
		"pipeline", def.Name,
		"datasets", len(reg),
		"duration", time.Since(start),
	)
	return reg, nil
}

// Export writes the definition's declared outputs through the writer, one
// file per output and format. Operations are pure and results are
// independent, so the writes fan out concurrently.
func (r *Runner) Export(ctx context.Context, def *Definition, results map[string]compare.Dataset, w *exporter.Writer, formats []string) error {
	g, ctx := errgroup.WithContext(ctx)

	for _, name := range def.Outputs {
		data, ok := results[name]
		if !ok {
			return fmt.Errorf("unknown output dataset %q", name)
		}
		for _, format := range formats {
			name, format := name, format
			g.Go(func() error {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}
				if err := w.Write(format, name, data); err != nil {
					return fmt.Errorf("export %s as %s: %w", name, format, err)
				}
				return nil
			})
		}
	}
	return g.Wait()
}
