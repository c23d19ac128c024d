package forecast

import (
	"fmt"
	"math"

	"github.com/kilianp07/picapacity/core/model"
)

// Kind selects the sampling strategy used by an Engine.
type Kind string

const (
	KindRatio      Kind = "ratio"
	KindResampling Kind = "resampling"
)

// Default bounds of the resampling capacity variability.
const (
	DefaultVariabilityLow  = 0.8
	DefaultVariabilityHigh = 1.2
)

// MaxUncertaintyFactor keeps the adjusted capacity of the ratio strategy
// non-negative.
const MaxUncertaintyFactor = 1.0

// Strategy is the estimator policy of a run together with its parameters.
// Only the fields of the selected Kind are used.
type Strategy struct {
	Kind Kind `json:"kind"`
	// UncertaintyFactor scales the absence noise of the ratio strategy.
	UncertaintyFactor float64 `json:"uncertainty_factor"`
	// VariabilityLow and VariabilityHigh bound the capacity scale factor of
	// the resampling strategy. A nil bound takes its default independently
	// of the other one; an explicit 0 low bound is kept.
	VariabilityLow  *float64 `json:"variability_low"`
	VariabilityHigh *float64 `json:"variability_high"`
}

// Bound returns a pointer to v, for setting variability bounds.
func Bound(v float64) *float64 { return &v }

// SetDefaults applies fallback values for optional fields.
func (s *Strategy) SetDefaults() {
	if s.Kind == "" {
		s.Kind = KindRatio
	}
	if s.VariabilityLow == nil {
		s.VariabilityLow = Bound(DefaultVariabilityLow)
	}
	if s.VariabilityHigh == nil {
		s.VariabilityHigh = Bound(DefaultVariabilityHigh)
	}
}

// Bounds returns the variability bounds, substituting the default for an
// unset one.
func (s Strategy) Bounds() (low, high float64) {
	low, high = DefaultVariabilityLow, DefaultVariabilityHigh
	if s.VariabilityLow != nil {
		low = *s.VariabilityLow
	}
	if s.VariabilityHigh != nil {
		high = *s.VariabilityHigh
	}
	return low, high
}

// Validate checks the parameters of the selected kind.
func (s Strategy) Validate() error {
	switch s.Kind {
	case KindRatio:
		u := s.UncertaintyFactor
		if math.IsNaN(u) || u < 0 || u > MaxUncertaintyFactor {
			return fmt.Errorf("%w: uncertainty factor %v outside [0,%v]",
				model.ErrConfiguration, u, MaxUncertaintyFactor)
		}
	case KindResampling:
		lo, hi := s.Bounds()
		if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(hi, 0) {
			return fmt.Errorf("%w: variability bounds must be finite", model.ErrConfiguration)
		}
		if lo < 0 {
			return fmt.Errorf("%w: variability low bound %v is negative", model.ErrConfiguration, lo)
		}
		if lo > hi {
			return fmt.Errorf("%w: variability low bound %v above high bound %v", model.ErrConfiguration, lo, hi)
		}
	default:
		return fmt.Errorf("%w: unknown strategy %q", model.ErrConfiguration, s.Kind)
	}
	return nil
}

// NewEstimator builds the estimator for one contributor. The profile is
// validated here so that no trial runs on bad input.
func (s Strategy) NewEstimator(p model.ContributorProfile) (Estimator, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	switch s.Kind {
	case KindRatio:
		return NewRatioEstimator(p, s.UncertaintyFactor), nil
	case KindResampling:
		lo, hi := s.Bounds()
		return NewResamplingEstimator(p, lo, hi), nil
	default:
		return nil, fmt.Errorf("%w: unknown strategy %q", model.ErrConfiguration, s.Kind)
	}
}
