package forecast

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/kilianp07/picapacity/core/logger"
	"github.com/kilianp07/picapacity/core/model"
)

// Engine executes simulation runs. An Engine holds no state between runs and
// may be reused.
type Engine struct {
	cfg     Config
	log     logger.Logger
	streams StreamFactory
}

// Option customises an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for debug output.
func WithLogger(l logger.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithStreams replaces the seeded random streams, typically in tests. With
// more than one worker the factory is called concurrently and must return
// streams that do not share state.
func WithStreams(f StreamFactory) Option {
	return func(e *Engine) { e.streams = f }
}

// NewEngine validates cfg. Defaults are not applied: a zero trial count is
// rejected rather than replaced.
func NewEngine(cfg Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{cfg: cfg, log: nopLogger{}}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Config returns the effective configuration.
func (e *Engine) Config() Config { return e.cfg }

// Run simulates the team. All profiles are validated before the first trial;
// on error no Outcome is returned.
func (e *Engine) Run(ctx context.Context, team []model.ContributorProfile) (*Outcome, error) {
	if err := model.ValidateTeam(team); err != nil {
		return nil, err
	}
	estimators := make([]Estimator, len(team))
	names := make([]string, len(team))
	for i, p := range team {
		est, err := e.cfg.Strategy.NewEstimator(p)
		if err != nil {
			return nil, err
		}
		estimators[i] = est
		names[i] = p.Name
	}

	seed := e.cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	streams := e.streams
	if streams == nil {
		streams = SeededStreams(seed)
	}

	out := newOutcome(uuid.NewString(), seed, e.cfg.Strategy, names, e.cfg.Trials)
	start := time.Now()
	e.log.Debugw("simulation started", map[string]any{
		"run_id":       out.runID,
		"strategy":     string(e.cfg.Strategy.Kind),
		"trials":       e.cfg.Trials,
		"contributors": len(team),
		"workers":      e.cfg.Workers,
		"seed":         seed,
	})

	if err := e.runTrials(ctx, estimators, streams, out); err != nil {
		return nil, err
	}

	e.log.Debugw("simulation finished", map[string]any{
		"run_id":   out.runID,
		"duration": time.Since(start).String(),
	})
	return out, nil
}

func (e *Engine) runTrials(ctx context.Context, estimators []Estimator, streams StreamFactory, out *Outcome) error {
	trials := e.cfg.Trials
	workers := min(max(e.cfg.Workers, 1), trials)
	if err := ctx.Err(); err != nil {
		return err
	}
	if workers <= 1 {
		runRange(estimators, streams, out, 0, trials)
		return nil
	}

	g, ctx := errgroup.WithContext(ctx)
	chunk := (trials + workers - 1) / workers
	for from := 0; from < trials; from += chunk {
		to := min(from+chunk, trials)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			runRange(estimators, streams, out, from, to)
			return nil
		})
	}
	return g.Wait()
}

func runRange(estimators []Estimator, streams StreamFactory, out *Outcome, from, to int) {
	for t := from; t < to; t++ {
		out.store(t, runTrial(estimators, streams(t)))
	}
}

// runTrial draws one value per contributor from r, in team order.
func runTrial(estimators []Estimator, r Rand) TrialResult {
	res := TrialResult{Values: make([]float64, len(estimators))}
	for i, est := range estimators {
		v := est.Estimate(r)
		res.Values[i] = v
		res.Total += v
	}
	return res
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any)         {}
func (nopLogger) Debugw(string, map[string]any) {}
func (nopLogger) Infof(string, ...any)          {}
func (nopLogger) Warnf(string, ...any)          {}
func (nopLogger) Errorf(string, ...any)         {}
