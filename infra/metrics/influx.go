package metrics

import (
	"context"
	"math"
	"net/http"
	"strings"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	coremetrics "github.com/kilianp07/picapacity/core/metrics"
	"github.com/kilianp07/picapacity/infra/logger"
)

// InfluxSink writes forecast summaries to an InfluxDB instance using the
// official client.
type InfluxSink struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	log      logger.Logger
}

// NewInfluxSink creates a new sink configured for the given InfluxDB endpoint.
func NewInfluxSink(url, token, org, bucket string) *InfluxSink {
	base := strings.TrimSuffix(url, "/api/v2/write")
	client := influxdb2.NewClientWithOptions(base, token,
		influxdb2.DefaultOptions().SetHTTPClient(&http.Client{Timeout: 5 * time.Second}))
	return &InfluxSink{
		client:   client,
		writeAPI: client.WriteAPIBlocking(org, bucket),
		log:      logger.New("influx-sink"),
	}
}

// NewInfluxSinkWithFallback pings the InfluxDB instance and returns a NopSink
// if the health check fails, so that an unreachable database never blocks a
// forecast.
func NewInfluxSinkWithFallback(url, token, org, bucket string) coremetrics.MetricsSink {
	sink := NewInfluxSink(url, token, org, bucket)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	health, err := sink.client.Health(ctx)
	if err != nil || health.Status != "pass" {
		if err != nil {
			sink.log.Errorf("influx health check error: %v", err)
		} else {
			sink.log.Errorf("influx health status: %s", health.Status)
		}
		sink.client.Close()
		return coremetrics.NopSink{}
	}
	return sink
}

// RecordForecast writes one forecast_team point and one
// forecast_contributor point per contributor.
func (s *InfluxSink) RecordForecast(ev coremetrics.ForecastEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	points := make([]*write.Point, 0, len(ev.Contributors)+1)
	team := write.NewPointWithMeasurement("forecast_team").
		AddTag("run_id", ev.RunID).
		AddTag("strategy", ev.Strategy).
		AddField("trials", ev.Trials).
		AddField("duration_ms", round3(ev.Duration.Seconds()*1000))
	points = append(points, addStat(team, ev.Team).SetTime(ev.Time))

	for _, c := range ev.Contributors {
		p := write.NewPointWithMeasurement("forecast_contributor").
			AddTag("run_id", ev.RunID).
			AddTag("strategy", ev.Strategy).
			AddTag("contributor", c.Name)
		points = append(points, addStat(p, c.Stat).SetTime(ev.Time))
	}
	return s.writeAPI.WritePoint(ctx, points...)
}

// Close releases the underlying HTTP client.
func (s *InfluxSink) Close() {
	s.client.Close()
}

func addStat(p *write.Point, st coremetrics.Stat) *write.Point {
	return p.AddField("mean", round3(st.Mean)).
		AddField("std_dev", round3(st.StdDev)).
		AddField("median", round3(st.Median)).
		AddField("percentile_rank", st.PercentileRank).
		AddField("percentile", round3(st.Percentile))
}

func round3(f float64) float64 {
	return math.Round(f*1000) / 1000
}
