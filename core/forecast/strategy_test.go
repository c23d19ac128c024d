package forecast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/picapacity/core/model"
)

func TestStrategy_SetDefaults(t *testing.T) {
	var s Strategy
	s.SetDefaults()
	assert.Equal(t, KindRatio, s.Kind)
	assert.Equal(t, DefaultVariabilityLow, *s.VariabilityLow)
	assert.Equal(t, DefaultVariabilityHigh, *s.VariabilityHigh)

	s = Strategy{Kind: KindResampling, VariabilityLow: Bound(0.5), VariabilityHigh: Bound(1)}
	s.SetDefaults()
	assert.Equal(t, 0.5, *s.VariabilityLow)
	assert.Equal(t, 1.0, *s.VariabilityHigh)
}

func TestStrategy_SetDefaultsPerBound(t *testing.T) {
	tests := []struct {
		name     string
		in       Strategy
		low      float64
		high     float64
		validErr error
	}{
		{"only high", Strategy{Kind: KindResampling, VariabilityHigh: Bound(1.5)}, DefaultVariabilityLow, 1.5, nil},
		{"only low", Strategy{Kind: KindResampling, VariabilityLow: Bound(0.9)}, 0.9, DefaultVariabilityHigh, nil},
		{"explicit zero low", Strategy{Kind: KindResampling, VariabilityLow: Bound(0)}, 0, DefaultVariabilityHigh, nil},
		{"low above default high", Strategy{Kind: KindResampling, VariabilityLow: Bound(1.3)}, 1.3, DefaultVariabilityHigh, model.ErrConfiguration},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.in
			s.SetDefaults()
			assert.Equal(t, tt.low, *s.VariabilityLow)
			assert.Equal(t, tt.high, *s.VariabilityHigh)
			if tt.validErr == nil {
				assert.NoError(t, s.Validate())
			} else {
				assert.ErrorIs(t, s.Validate(), tt.validErr)
			}
		})
	}
}

func TestStrategy_BoundsWithoutDefaults(t *testing.T) {
	lo, hi := Strategy{Kind: KindResampling, VariabilityHigh: Bound(2)}.Bounds()
	assert.Equal(t, DefaultVariabilityLow, lo)
	assert.Equal(t, 2.0, hi)
}

func TestStrategy_NewEstimator(t *testing.T) {
	ratio, err := Strategy{Kind: KindRatio}.NewEstimator(dev("Dev1"))
	require.NoError(t, err)
	re, ok := ratio.(*RatioEstimator)
	require.True(t, ok)
	assert.InDelta(t, 0.85, re.Ratio(), 1e-12)

	res, err := Strategy{Kind: KindResampling, VariabilityLow: Bound(1), VariabilityHigh: Bound(1)}.NewEstimator(dev("Dev1"))
	require.NoError(t, err)
	assert.IsType(t, &ResamplingEstimator{}, res)
	assert.InDelta(t, 13.5, res.Estimate(fixedRand{n: 1}), 1e-9)

	bad := dev("Dev1")
	bad.History.StoryPoints = nil
	_, err = Strategy{Kind: KindResampling}.NewEstimator(bad)
	assert.ErrorIs(t, err, model.ErrInvalidInput)
}

func TestConfig_SetDefaults(t *testing.T) {
	var c Config
	c.SetDefaults()
	assert.Equal(t, DefaultTrials, c.Trials)
	assert.Equal(t, 1, c.Workers)
	require.NoError(t, c.Validate())

	c = Config{Trials: -3}
	c.SetDefaults()
	assert.ErrorIs(t, c.Validate(), model.ErrInvalidInput)
}
