package forecast

import (
	"gonum.org/v1/gonum/floats"

	"github.com/kilianp07/picapacity/core/model"
)

// Estimator produces the simulated story points of one contributor for a
// single trial.
type Estimator interface {
	Estimate(r Rand) float64
}

// RatioEstimator applies the mean historical ratio to a future capacity
// reduced by random absence.
type RatioEstimator struct {
	ratio          float64
	futureCapacity float64
	uncertainty    float64
}

// NewRatioEstimator computes the mean ratio of a validated profile once.
func NewRatioEstimator(p model.ContributorProfile, uncertainty float64) *RatioEstimator {
	ratios := p.History.Ratios()
	return &RatioEstimator{
		ratio:          floats.Sum(ratios) / float64(len(ratios)),
		futureCapacity: p.FutureCapacity,
		uncertainty:    uncertainty,
	}
}

// Ratio returns the mean historical efficiency.
func (e *RatioEstimator) Ratio() float64 { return e.ratio }

// Estimate draws one absence noise value.
func (e *RatioEstimator) Estimate(r Rand) float64 {
	noise := r.Float64()
	adjusted := e.futureCapacity * (1 - noise*e.uncertainty)
	return adjusted * e.ratio
}

// ResamplingEstimator bootstraps one historical observation per trial and
// scales the future capacity by a uniform variability factor.
type ResamplingEstimator struct {
	ratios         []float64
	futureCapacity float64
	low, high      float64
}

// NewResamplingEstimator precomputes the per-observation ratios of a
// validated profile.
func NewResamplingEstimator(p model.ContributorProfile, low, high float64) *ResamplingEstimator {
	return &ResamplingEstimator{
		ratios:         p.History.Ratios(),
		futureCapacity: p.FutureCapacity,
		low:            low,
		high:           high,
	}
}

// Estimate draws an observation index then a variability factor.
func (e *ResamplingEstimator) Estimate(r Rand) float64 {
	ratio := e.ratios[r.IntN(len(e.ratios))]
	variability := e.low + (e.high-e.low)*r.Float64()
	return e.futureCapacity * variability * ratio
}
