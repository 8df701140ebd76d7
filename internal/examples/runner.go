package examples

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type runnerOptions struct {
	logger      *zap.Logger
	examples    []Example
	concurrency int
}

// RunnerOption configures a [Runner].
type RunnerOption func(*runnerOptions)

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *zap.Logger) RunnerOption {
	return func(ro *runnerOptions) {
		ro.logger = logger
	}
}

// WithExamples replaces the catalogue returned by [All].
func WithExamples(examples ...Example) RunnerOption {
	return func(ro *runnerOptions) {
		ro.examples = examples
	}
}

// WithConcurrency sets how many examples may run at once. Values below one
// mean one.
func WithConcurrency(n int) RunnerOption {
	return func(ro *runnerOptions) {
		ro.concurrency = n
	}
}

// Runner executes examples and reports their outcome.
type Runner struct {
	log         *zap.Logger
	examples    []Example
	concurrency int
}

// NewRunner returns a Runner over [All] unless [WithExamples] is given.
func NewRunner(opts ...RunnerOption) *Runner {
	ro := &runnerOptions{
		logger:      zap.NewNop(),
		examples:    All(),
		concurrency: 1,
	}
	for _, opt := range opts {
		opt(ro)
	}
	if ro.concurrency < 1 {
		ro.concurrency = 1
	}
	return &Runner{
		log:         ro.logger,
		examples:    ro.examples,
		concurrency: ro.concurrency,
	}
}

// Names lists the examples selected by filter, in catalogue order.
func (r *Runner) Names(filter []string) []string {
	selected := r.selected(filter)
	names := make([]string, len(selected))
	for i, ex := range selected {
		names[i] = ex.Name
	}
	return names
}

// Run executes every example whose name is in filter, or all of them when
// filter is empty. Names match case-insensitively. The returned error joins
// the failure of every example that did not pass, and is nil otherwise.
//
// Run stops scheduling new examples once ctx is done and returns ctx's error
// alongside any failures seen so far.
func (r *Runner) Run(ctx context.Context, filter []string) error {
	selected := r.selected(filter)
	errs := make([]error, len(selected))

	var g errgroup.Group
	g.SetLimit(r.concurrency)
	for i, ex := range selected {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			errs[i] = r.runOne(ex)
			return nil
		})
	}
	_ = g.Wait()

	err := errors.Join(errs...)
	if ctxErr := ctx.Err(); ctxErr != nil {
		err = errors.Join(err, ctxErr)
	}
	if err != nil {
		r.log.Error("examples failed", zap.Int("selected", len(selected)), zap.Error(err))
		return err
	}
	r.log.Info("examples passed", zap.Int("selected", len(selected)))
	return nil
}

func (r *Runner) runOne(ex Example) (err error) {
	log := r.log.With(zap.String("example", ex.Name))
	start := time.Now()
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%w: %s: panic: %v", ErrExampleFailed, ex.Name, p)
		}
		elapsed := zap.Duration("elapsed", time.Since(start))
		if err != nil {
			log.Warn("example failed", elapsed, zap.Error(err))
			return
		}
		log.Debug("example passed", elapsed)
	}()

	if err := ex.Run(); err != nil {
		return fmt.Errorf("%s: %w", ex.Name, err)
	}
	return nil
}

func (r *Runner) selected(filter []string) []Example {
	if len(filter) == 0 {
		return r.examples
	}
	want := make(map[string]struct{}, len(filter))
	for _, name := range filter {
		want[strings.ToLower(strings.TrimSpace(name))] = struct{}{}
	}
	out := make([]Example, 0, len(filter))
	for _, ex := range r.examples {
		if _, ok := want[strings.ToLower(ex.Name)]; ok {
			out = append(out, ex)
		}
	}
	return out
}
