package metrics

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/picapacity/core/factory"
)

type recordSink struct {
	count   int
	flushed int
	err     error
}

func (r *recordSink) RecordForecast(ForecastEvent) error {
	r.count++
	return r.err
}

func (r *recordSink) Flush() error {
	r.flushed++
	return nil
}

func TestMultiSink(t *testing.T) {
	s1 := &recordSink{}
	s2 := &recordSink{err: errors.New("boom")}
	m := NewMultiSink(s1, s2, NopSink{})

	err := m.RecordForecast(ForecastEvent{RunID: "r1"})
	assert.EqualError(t, err, "boom")
	assert.Equal(t, 1, s1.count)
	assert.Equal(t, 1, s2.count)

	require.NoError(t, m.Flush())
	assert.Equal(t, 1, s1.flushed)
	assert.Equal(t, 1, s2.flushed)
}

func TestNewMetricsSink(t *testing.T) {
	s, err := NewMetricsSink(nil)
	require.NoError(t, err)
	assert.IsType(t, NopSink{}, s)

	s, err = NewMetricsSink([]factory.Spec{{Type: "nop"}, {Type: "nop"}})
	require.NoError(t, err)
	assert.IsType(t, &MultiSink{}, s)

	_, err = NewMetricsSink([]factory.Spec{{Type: "statsd"}})
	assert.Error(t, err)
}
