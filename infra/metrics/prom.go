package metrics

import (
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/kilianp07/picapacity/core/metrics"
)

// PromSink records forecast results in Prometheus metrics. A forecast is a
// short-lived batch job, so instead of serving /metrics the sink can dump its
// registry to a node-exporter textfile on Flush.
type PromSink struct {
	gatherer prometheus.Gatherer
	textfile string

	mu          sync.Mutex
	runs        *prometheus.CounterVec
	duration    prometheus.Histogram
	trials      prometheus.Gauge
	teamMean    prometheus.Gauge
	teamStdDev  prometheus.Gauge
	teamUpper   *prometheus.GaugeVec
	contributor *prometheus.GaugeVec
}

// NewPromSink registers forecast metrics on a fresh registry and writes them
// to textfile on Flush. An empty textfile disables the export.
func NewPromSink(textfile string) (*PromSink, error) {
	reg := prometheus.NewRegistry()
	return NewPromSinkWithRegistry(reg, reg, textfile)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(reg prometheus.Registerer, g prometheus.Gatherer, textfile string) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if g == nil {
		g = prometheus.DefaultGatherer
	}
	s := &PromSink{
		gatherer: g,
		textfile: textfile,
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "forecast_runs_total",
			Help: "Total number of forecast runs",
		}, []string{"strategy"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "forecast_duration_seconds",
			Help:    "Wall time of the simulation trials",
			Buckets: prometheus.DefBuckets,
		}),
		trials: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "forecast_trials",
			Help: "Number of trials of the last forecast",
		}),
		teamMean: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "forecast_team_mean_story_points",
			Help: "Mean simulated team story points of the last forecast",
		}),
		teamStdDev: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "forecast_team_stddev_story_points",
			Help: "Standard deviation of simulated team story points of the last forecast",
		}),
		teamUpper: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "forecast_team_percentile_story_points",
			Help: "Percentile of simulated team story points of the last forecast",
		}, []string{"percentile"}),
		contributor: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "forecast_contributor_mean_story_points",
			Help: "Mean simulated story points per contributor of the last forecast",
		}, []string{"contributor"}),
	}

	var err error
	if s.runs, err = register(reg, s.runs); err != nil {
		return nil, err
	}
	if s.duration, err = register(reg, s.duration); err != nil {
		return nil, err
	}
	if s.trials, err = register(reg, s.trials); err != nil {
		return nil, err
	}
	if s.teamMean, err = register(reg, s.teamMean); err != nil {
		return nil, err
	}
	if s.teamStdDev, err = register(reg, s.teamStdDev); err != nil {
		return nil, err
	}
	if s.teamUpper, err = register(reg, s.teamUpper); err != nil {
		return nil, err
	}
	if s.contributor, err = register(reg, s.contributor); err != nil {
		return nil, err
	}
	return s, nil
}

// register returns the already registered collector when c was registered
// before, e.g. by an earlier sink on the default registerer.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

// RecordForecast updates the gauges with the latest forecast.
func (s *PromSink) RecordForecast(ev coremetrics.ForecastEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs.WithLabelValues(ev.Strategy).Inc()
	s.duration.Observe(ev.Duration.Seconds())
	s.trials.Set(float64(ev.Trials))
	s.teamMean.Set(ev.Team.Mean)
	s.teamStdDev.Set(ev.Team.StdDev)
	s.teamUpper.Reset()
	s.teamUpper.WithLabelValues(formatRank(ev.Team.PercentileRank)).Set(ev.Team.Percentile)
	s.contributor.Reset()
	for _, c := range ev.Contributors {
		s.contributor.WithLabelValues(c.Name).Set(c.Mean)
	}
	return nil
}

// Flush writes the gathered metrics to the configured textfile.
func (s *PromSink) Flush() error {
	if s.textfile == "" {
		return nil
	}
	return prometheus.WriteToTextfile(s.textfile, s.gatherer)
}

func formatRank(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}
