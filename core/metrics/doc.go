// Package metrics defines the sink interface used to publish forecast results
// for observability. Sinks are built from configuration through a factory
// registry; infra/metrics registers the Prometheus and InfluxDB
// implementations. NewMetricsSink returns a MultiSink when several sinks are
// configured.
package metrics
