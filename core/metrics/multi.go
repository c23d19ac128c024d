package metrics

import "errors"

// MultiSink fans forecast events out to multiple sinks.
type MultiSink struct {
	Sinks []MetricsSink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...MetricsSink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordForecast forwards the event to every sink and joins their errors.
func (m *MultiSink) RecordForecast(ev ForecastEvent) error {
	var errs []error
	for _, s := range m.Sinks {
		if err := s.RecordForecast(ev); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Flush flushes every sink implementing Flusher.
func (m *MultiSink) Flush() error {
	var errs []error
	for _, s := range m.Sinks {
		if f, ok := s.(Flusher); ok {
			if err := f.Flush(); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}
