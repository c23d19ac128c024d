package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/picapacity/core/forecast"
	"github.com/kilianp07/picapacity/core/model"
	"github.com/kilianp07/picapacity/core/stats"
)

func sampleReport() *forecast.Report {
	s := stats.Summary{Count: 100, Mean: 12.75, Median: 12.75, PercentileRank: 90, Percentile: 12.75, Min: 12.75, Max: 12.75}
	team := s
	team.Mean, team.Median, team.Percentile, team.Min, team.Max = 25.5, 25.5, 25.5, 25.5, 25.5
	return &forecast.Report{
		RunID:    "run-1",
		Seed:     42,
		Strategy: forecast.Strategy{Kind: forecast.KindRatio},
		Trials:   100,
		Contributors: []forecast.ContributorReport{
			{Name: "Dev1", Summary: s},
			{Name: "Dev2", Summary: s},
		},
		Team: forecast.ContributorReport{
			Name:         forecast.TeamName,
			Summary:      team,
			Distribution: []stats.Bin{{Lower: 25.5, Upper: 25.5, Count: 100}},
		},
	}
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatText, sampleReport()))
	out := buf.String()
	assert.Contains(t, out, "100 trials, ratio strategy, seed 42")
	assert.Contains(t, out, "p90")
	assert.Contains(t, out, "Dev1")
	assert.Contains(t, out, "12.75")
	assert.Contains(t, out, "Total team capacity for next PI: 25.50 story points (p90 25.50)")
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatJSON, sampleReport()))

	var decoded forecast.Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "run-1", decoded.RunID)
	assert.Len(t, decoded.Contributors, 2)
	assert.Equal(t, 25.5, decoded.Team.Summary.Mean)
	assert.Len(t, decoded.Team.Distribution, 1)
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("json")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	_, err = ParseFormat("csv")
	assert.ErrorIs(t, err, model.ErrConfiguration)
	assert.ErrorIs(t, Write(&bytes.Buffer{}, "csv", sampleReport()), model.ErrConfiguration)
}
