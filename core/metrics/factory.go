package metrics

import "github.com/kilianp07/picapacity/core/factory"

var sinks = factory.NewRegistry[MetricsSink]()

func init() {
	_ = RegisterSink("nop", func(map[string]any) (MetricsSink, error) { return NopSink{}, nil })
}

// RegisterSink makes a sink kind available to the `metrics.sinks` config.
func RegisterSink(kind string, b factory.Builder[MetricsSink]) error {
	return sinks.Register(kind, b)
}

// SinkKinds lists the sink kinds that can be configured.
func SinkKinds() []string { return sinks.Kinds() }

// NewMetricsSink builds the configured sinks. No sinks yields a NopSink and
// several are fanned out through a MultiSink.
func NewMetricsSink(specs []factory.Spec) (MetricsSink, error) {
	built, err := sinks.BuildAll(specs)
	if err != nil {
		return nil, err
	}
	switch len(built) {
	case 0:
		return NopSink{}, nil
	case 1:
		return built[0], nil
	default:
		return NewMultiSink(built...), nil
	}
}
