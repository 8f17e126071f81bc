// Package pipeline runs record batch → graph → reduced graph → rankings for
// one or several interaction kinds.
//
// Each run owns its graph. The input batch is only read, so RunKinds can fan
// the four kinds out concurrently over the same batch.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/socnet/centrality"
	"github.com/katalvlaran/socnet/config"
	"github.com/katalvlaran/socnet/core"
	"github.com/katalvlaran/socnet/logging"
	"github.com/katalvlaran/socnet/network"
	"github.com/katalvlaran/socnet/reduce"
	"github.com/katalvlaran/socnet/tweet"
)

// Stage names used in logs and metrics.
const (
	StageBuild  = "build"
	StageReduce = "reduce"
	StageRank   = "rank"
)

// Result is the output of one run.
type Result struct {
	RunID string
	Kind  tweet.Kind

	// Raw describes the graph before reduction.
	Raw *core.GraphStats

	Graph     *core.Graph
	InDegree  []centrality.Entry
	OutDegree []centrality.Entry
}

// Runner drives runs. The zero value is not usable; call NewRunner.
type Runner struct {
	log     logrus.FieldLogger
	metrics *Metrics
	limit   int
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger every run derives its entries from.
func WithLogger(l logrus.FieldLogger) Option {
	return func(r *Runner) {
		if l != nil {
			r.log = l
		}
	}
}

// WithMetrics records run outcomes, stage durations and graph sizes on m.
func WithMetrics(m *Metrics) Option {
	return func(r *Runner) { r.metrics = m }
}

// WithConcurrency caps how many kinds RunKinds processes at once. n <= 0
// means no cap.
func WithConcurrency(n int) Option {
	return func(r *Runner) { r.limit = n }
}

// NewRunner returns a Runner with a discard logger and no metrics.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{log: logging.Discard()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes one pipeline pass for cfg.InteractionType. ctx is checked
// between stages.
func (r *Runner) Run(ctx context.Context, b tweet.Batch, cfg config.Config) (*Result, error) {
	res := &Result{RunID: uuid.NewString(), Kind: cfg.InteractionType}
	kind := string(cfg.InteractionType)
	log := r.log.WithFields(logrus.Fields{"run_id": res.RunID, "kind": kind})

	err := r.run(ctx, log, b, cfg, res)
	switch {
	case err == nil:
		r.metrics.observeRun(kind, "ok")
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		r.metrics.observeRun(kind, "canceled")
		log.WithError(err).Warn("run canceled")
	default:
		r.metrics.observeRun(kind, "error")
		log.WithError(err).Error("run failed")
	}
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (r *Runner) run(ctx context.Context, log logrus.FieldLogger, b tweet.Batch, cfg config.Config, res *Result) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	w, err := cfg.Window()
	if err != nil {
		return err
	}
	kind := string(cfg.InteractionType)

	stage := func(name string, fn func() error) error {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("pipeline: before %s: %w", name, err)
		}
		start := time.Now()
		err := fn()
		elapsed := time.Since(start)
		r.metrics.observeStage(kind, name, elapsed.Seconds())
		log.WithFields(logrus.Fields{"stage": name, "elapsed": elapsed}).Debug("stage done")
		return err
	}

	if err := stage(StageBuild, func() (err error) {
		res.Graph, err = network.Build(b, w, cfg.InteractionType, network.WithLogger(log))
		return err
	}); err != nil {
		return err
	}
	res.Raw = res.Graph.Stats()
	r.metrics.observeSize(kind, "raw", res.Raw.VertexCount, res.Raw.EdgeCount)

	if err := stage(StageReduce, func() (err error) {
		res.Graph, err = reduce.Reduce(res.Graph, cfg.Reduction, reduce.WithLogger(log))
		return err
	}); err != nil {
		return err
	}
	r.metrics.observeSize(kind, "reduced", res.Graph.VertexCount(), res.Graph.EdgeCount())

	if err := stage(StageRank, func() (err error) {
		if res.InDegree, err = centrality.InDegree(res.Graph); err != nil {
			return err
		}
		res.OutDegree, err = centrality.OutDegree(res.Graph)
		return err
	}); err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"vertices": res.Graph.VertexCount(),
		"edges":    res.Graph.EdgeCount(),
	}).Info("run complete")
	return nil
}

// RunKinds runs cfg once per kind, concurrently, and returns the results in
// the order of kinds. The first failure cancels the remaining runs.
func (r *Runner) RunKinds(ctx context.Context, b tweet.Batch, cfg config.Config, kinds ...tweet.Kind) ([]*Result, error) {
	if len(kinds) == 0 {
		kinds = tweet.Kinds()
	}
	out := make([]*Result, len(kinds))
	g, gctx := errgroup.WithContext(ctx)
	if r.limit > 0 {
		g.SetLimit(r.limit)
	}
	for i, kind := range kinds {
		i, c := i, cfg
		c.InteractionType = kind
		g.Go(func() error {
			res, err := r.Run(gctx, b, c)
			if err != nil {
				return fmt.Errorf("pipeline: %s: %w", c.InteractionType, err)
			}
			out[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Metrics returns the collectors the runner records on, or nil.
func (r *Runner) Metrics() *Metrics { return r.metrics }
