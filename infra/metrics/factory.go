package metrics

import (
	"github.com/kilianp07/picapacity/core/factory"
	coremetrics "github.com/kilianp07/picapacity/core/metrics"
)

type promSettings struct {
	Textfile string `json:"textfile"`
}

type influxSettings struct {
	URL    string `json:"url"`
	Token  string `json:"token"`
	Org    string `json:"org"`
	Bucket string `json:"bucket"`
}

func init() {
	_ = coremetrics.RegisterSink("prometheus", factory.Configured(func(c promSettings) (coremetrics.MetricsSink, error) {
		return NewPromSink(c.Textfile)
	}))
	_ = coremetrics.RegisterSink("influx", factory.Configured(func(c influxSettings) (coremetrics.MetricsSink, error) {
		return NewInfluxSinkWithFallback(c.URL, c.Token, c.Org, c.Bucket), nil
	}))
}
