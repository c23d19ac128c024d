package metrics

import "time"

// ForecastEvent summarises one completed forecast run.
type ForecastEvent struct {
	RunID        string
	Strategy     string
	Trials       int
	Contributors []ContributorStat
	Team         Stat
	Duration     time.Duration
	Time         time.Time
}

// Stat holds the headline statistics of a simulated sequence.
type Stat struct {
	Mean           float64
	StdDev         float64
	Median         float64
	PercentileRank float64
	Percentile     float64
}

// ContributorStat is the Stat of one contributor.
type ContributorStat struct {
	Name string
	Stat
}

// MetricsSink records forecast results.
type MetricsSink interface {
	RecordForecast(ev ForecastEvent) error
}

// Flusher is implemented by sinks that buffer output until the process is
// about to exit.
type Flusher interface {
	Flush() error
}

// NopSink discards all events.
type NopSink struct{}

func (NopSink) RecordForecast(ForecastEvent) error { return nil }
