package stats

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/kilianp07/picapacity/core/model"
)

// DefaultPercentile is the upper percentile reported when none is configured.
const DefaultPercentile = 90

// Summary describes one sequence of simulated values.
type Summary struct {
	Count          int     `json:"count"`
	Mean           float64 `json:"mean"`
	StdDev         float64 `json:"std_dev"`
	Median         float64 `json:"median"`
	PercentileRank float64 `json:"percentile_rank"`
	Percentile     float64 `json:"percentile"`
	Min            float64 `json:"min"`
	Max            float64 `json:"max"`
}

// Summarize computes mean, population standard deviation, median, the p-th
// percentile and the range of xs.
func Summarize(xs []float64, p float64) (Summary, error) {
	if len(xs) == 0 {
		return Summary{}, fmt.Errorf("%w: cannot summarize an empty sequence", model.ErrInvalidInput)
	}
	if err := checkRank(p); err != nil {
		return Summary{}, err
	}
	lo, hi := floats.Min(xs), floats.Max(xs)
	if math.IsInf(lo, 0) || math.IsInf(hi, 0) || math.IsNaN(lo) || math.IsNaN(hi) {
		return Summary{}, fmt.Errorf("%w: sequence contains non-finite values", model.ErrInvalidInput)
	}
	if lo == hi {
		return Summary{
			Count: len(xs), Mean: lo, Median: lo,
			PercentileRank: p, Percentile: lo, Min: lo, Max: hi,
		}, nil
	}
	mean, std := stat.PopMeanStdDev(xs, nil)
	if math.IsInf(mean, 0) || math.IsNaN(mean) || math.IsInf(std, 0) || math.IsNaN(std) {
		return Summary{}, fmt.Errorf("%w: values overflow float64 range", model.ErrInvalidInput)
	}
	sorted := sortedCopy(xs)
	return Summary{
		Count:          len(xs),
		Mean:           mean,
		StdDev:         std,
		Median:         interpolate(sorted, 50),
		PercentileRank: p,
		Percentile:     interpolate(sorted, p),
		Min:            lo,
		Max:            hi,
	}, nil
}

// Percentile returns the p-th percentile of xs using linear interpolation
// between the two closest ranks.
func Percentile(xs []float64, p float64) (float64, error) {
	if len(xs) == 0 {
		return 0, fmt.Errorf("%w: percentile of an empty sequence", model.ErrInvalidInput)
	}
	if err := checkRank(p); err != nil {
		return 0, err
	}
	return interpolate(sortedCopy(xs), p), nil
}

// Median returns the 50th percentile of xs.
func Median(xs []float64) (float64, error) {
	return Percentile(xs, 50)
}

func checkRank(p float64) error {
	if math.IsNaN(p) || p < 0 || p > 100 {
		return fmt.Errorf("%w: percentile %v outside [0,100]", model.ErrConfiguration, p)
	}
	return nil
}

func sortedCopy(xs []float64) []float64 {
	s := slices.Clone(xs)
	slices.Sort(s)
	return s
}

// interpolate expects sorted, non-empty input.
func interpolate(sorted []float64, p float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}
	h := float64(len(sorted)-1) * p / 100
	lo := int(math.Floor(h))
	if lo >= len(sorted)-1 {
		return sorted[len(sorted)-1]
	}
	frac := h - float64(lo)
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}
