// Package app wires the simulation engine, the aggregator and the metrics
// sinks into a single forecasting service.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/kilianp07/picapacity/config"
	"github.com/kilianp07/picapacity/core/forecast"
	coremetrics "github.com/kilianp07/picapacity/core/metrics"
	"github.com/kilianp07/picapacity/core/model"
	"github.com/kilianp07/picapacity/infra/logger"
)

// Result is the outcome of a forecast together with its aggregated report.
type Result struct {
	Outcome *forecast.Outcome
	Report  *forecast.Report
}

// Forecaster runs forecasts and publishes their summaries.
type Forecaster struct {
	engine *forecast.Engine
	report config.ReportConfig
	sink   coremetrics.MetricsSink
	log    logger.Logger
}

// New creates a Forecaster. A nil sink discards metrics and a nil logger
// uses the "forecaster" component logger.
func New(cfg *config.Config, sink coremetrics.MetricsSink, log logger.Logger) (*Forecaster, error) {
	if log == nil {
		log = logger.New("forecaster")
	}
	if sink == nil {
		sink = coremetrics.NopSink{}
	}
	eng, err := forecast.NewEngine(cfg.Simulation, forecast.WithLogger(log))
	if err != nil {
		return nil, fmt.Errorf("simulation: %w", err)
	}
	if err := cfg.Report.Validate(); err != nil {
		return nil, fmt.Errorf("report: %w", err)
	}
	return &Forecaster{engine: eng, report: cfg.Report, sink: sink, log: log}, nil
}

// Forecast simulates the team and aggregates the result. Metrics failures are
// logged and do not fail the forecast.
func (f *Forecaster) Forecast(ctx context.Context, team []model.ContributorProfile) (*Result, error) {
	start := time.Now()
	out, err := f.engine.Run(ctx, team)
	if err != nil {
		return nil, err
	}
	elapsed := time.Since(start)

	rep, err := out.Summarize(f.report.Percentile, f.report.Bins)
	if err != nil {
		return nil, fmt.Errorf("aggregate: %w", err)
	}
	f.log.Infof("forecast %s: %d contributors, %d trials, team mean %.2f story points (p%v %.2f)",
		rep.RunID, len(rep.Contributors), rep.Trials, rep.Team.Summary.Mean,
		rep.Team.Summary.PercentileRank, rep.Team.Summary.Percentile)

	if err := f.sink.RecordForecast(forecastEvent(rep, elapsed, start)); err != nil {
		f.log.Warnf("record forecast metrics: %v", err)
	}
	return &Result{Outcome: out, Report: rep}, nil
}

// Close flushes sinks that buffer their output.
func (f *Forecaster) Close() error {
	if fl, ok := f.sink.(coremetrics.Flusher); ok {
		return fl.Flush()
	}
	return nil
}

func forecastEvent(rep *forecast.Report, elapsed time.Duration, at time.Time) coremetrics.ForecastEvent {
	ev := coremetrics.ForecastEvent{
		RunID:        rep.RunID,
		Strategy:     string(rep.Strategy.Kind),
		Trials:       rep.Trials,
		Contributors: make([]coremetrics.ContributorStat, 0, len(rep.Contributors)),
		Team:         toStat(rep.Team),
		Duration:     elapsed,
		Time:         at,
	}
	for _, c := range rep.Contributors {
		ev.Contributors = append(ev.Contributors, coremetrics.ContributorStat{Name: c.Name, Stat: toStat(c)})
	}
	return ev
}

func toStat(c forecast.ContributorReport) coremetrics.Stat {
	s := c.Summary
	return coremetrics.Stat{
		Mean:           s.Mean,
		StdDev:         s.StdDev,
		Median:         s.Median,
		PercentileRank: s.PercentileRank,
		Percentile:     s.Percentile,
	}
}
