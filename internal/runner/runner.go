package runner

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/sznuper/dircount/internal/config"
	"github.com/sznuper/dircount/internal/precheck"
	"github.com/sznuper/dircount/internal/scan"
	"github.com/sznuper/dircount/internal/status"
	"github.com/sznuper/dircount/internal/threshold"
	"golang.org/x/sync/errgroup"
)

// Runner orchestrates the precheck → scan → classify pipeline over the
// configured directories.
type Runner struct {
	cfg       *config.Config
	threshold *threshold.Threshold
	logger    *slog.Logger
}

// New creates a Runner. th is shared read-only by every directory evaluation.
func New(cfg *config.Config, th *threshold.Threshold, logger *slog.Logger) *Runner {
	return &Runner{cfg: cfg, threshold: th, logger: logger}
}

// tally accumulates the measurements of one top-level target.
type tally struct {
	worst        status.Status
	measurements []Measurement
	seen         map[dirID]bool // nil unless cycle detection is on
}

func (t *tally) add(m Measurement) {
	t.worst = status.Worst(t.worst, m.Status)
	t.measurements = append(t.measurements, m)
}

type stageError struct {
	stage string
	err   error
}

func (e *stageError) Error() string { return e.stage + ": " + e.err.Error() }
func (e *stageError) Unwrap() error { return e.err }

// Run checks every configured directory. Any precheck or scan failure aborts
// the whole run with UNKNOWN and discards results gathered so far.
func (r *Runner) Run(ctx context.Context) Result {
	start := time.Now()
	dirs := r.cfg.Dirs
	result := Result{Threshold: r.threshold}

	fail := func(stage string, err error) Result {
		result.Status = status.Unknown
		result.Measurements = nil
		result.Err = err
		result.ErrStage = stage
		result.Duration = time.Since(start)
		r.logger.Error(stage+" failed", "error", err)
		return result
	}

	// Stage 1: validate every target before touching any of them.
	r.logger.Info("prechecking targets", "count", len(dirs))
	if err := precheck.CheckAll(dirs); err != nil {
		return fail("precheck", err)
	}

	// Stage 2: visit.
	var (
		tallies []*tally
		err     error
	)
	if r.cfg.Parallel {
		tallies, err = r.visitParallel(ctx, dirs)
	} else {
		tallies, err = r.visitSequential(ctx, dirs)
	}
	if err != nil {
		var se *stageError
		if errors.As(err, &se) {
			return fail(se.stage, se.err)
		}
		return fail("scan", err)
	}

	// Stage 3: fold in input order.
	for _, t := range tallies {
		result.Status = status.Worst(result.Status, t.worst)
		result.Measurements = append(result.Measurements, t.measurements...)
	}

	result.Duration = time.Since(start)
	r.logger.Info("run completed", "status", result.Status, "directories", len(result.Measurements), "duration", result.Duration)
	return result
}

func (r *Runner) visitSequential(ctx context.Context, dirs []string) ([]*tally, error) {
	tallies := make([]*tally, 0, len(dirs))
	for _, dir := range dirs {
		t, err := r.visitTarget(ctx, dir)
		if err != nil {
			return nil, err
		}
		tallies = append(tallies, t)
	}
	return tallies, nil
}

// visitParallel visits each top-level target in its own goroutine. The first
// failure cancels the others; the error reported is the first one in input
// order that is not a cancellation.
func (r *Runner) visitParallel(ctx context.Context, dirs []string) ([]*tally, error) {
	tallies := make([]*tally, len(dirs))
	errs := make([]error, len(dirs))

	g, gctx := errgroup.WithContext(ctx)
	for i, dir := range dirs {
		g.Go(func() error {
			tallies[i], errs[i] = r.visitTarget(gctx, dir)
			return errs[i]
		})
	}
	firstErr := g.Wait()

	for _, err := range errs {
		if err != nil && !errors.Is(err, context.Canceled) {
			return nil, err
		}
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return tallies, nil
}

func (r *Runner) visitTarget(ctx context.Context, dir string) (*tally, error) {
	t := &tally{}
	if r.cfg.DetectCycles {
		t.seen = make(map[dirID]bool)
	}
	if err := r.visit(ctx, t, dir); err != nil {
		return nil, err
	}
	return t, nil
}

func (r *Runner) visit(ctx context.Context, t *tally, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	log := r.logger.With("dir", path)

	if t.seen != nil {
		id, err := identify(path)
		if err != nil {
			return &stageError{stage: "scan", err: err}
		}
		if t.seen[id] {
			log.Debug("directory already visited, skipping")
			return nil
		}
		t.seen[id] = true
	}

	names, err := scan.ListEntries(path)
	if err != nil {
		return &stageError{stage: "scan", err: err}
	}

	m := Measurement{Path: path, Count: len(names)}
	m.Status = r.threshold.Classify(float64(m.Count))
	t.add(m)
	log.Debug("directory scanned", "count", m.Count, "status", m.Status)

	if !r.cfg.Recursive {
		return nil
	}

	for _, name := range names {
		child := filepath.Join(path, name)
		info, err := os.Stat(child)
		if err != nil || !info.IsDir() {
			continue
		}
		if err := precheck.Check(child); err != nil {
			return &stageError{stage: "precheck", err: err}
		}
		if err := r.visit(ctx, t, child); err != nil {
			return err
		}
	}
	return nil
}
