package stats

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/kilianp07/picapacity/core/model"
)

// Bin is one bar of a distribution: values in [Lower, Upper).
type Bin struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
	Count int     `json:"count"`
}

// Histogram splits the range of xs into equal-width bins. The last bin
// includes the maximum. A constant sequence yields a single bin.
func Histogram(xs []float64, bins int) ([]Bin, error) {
	if len(xs) == 0 {
		return nil, fmt.Errorf("%w: histogram of an empty sequence", model.ErrInvalidInput)
	}
	if bins < 1 {
		return nil, fmt.Errorf("%w: histogram needs at least one bin, got %d", model.ErrConfiguration, bins)
	}
	sorted := sortedCopy(xs)
	lo, hi := sorted[0], sorted[len(sorted)-1]
	if lo == hi {
		return []Bin{{Lower: lo, Upper: hi, Count: len(xs)}}, nil
	}

	dividers := floats.Span(make([]float64, bins+1), lo, hi)
	// stat.Histogram requires every value to be strictly below the last divider.
	dividers[bins] = math.Nextafter(hi, math.Inf(1))
	counts := stat.Histogram(nil, dividers, sorted, nil)

	out := make([]Bin, bins)
	for i, c := range counts {
		out[i] = Bin{Lower: dividers[i], Upper: dividers[i+1], Count: int(c)}
	}
	out[bins-1].Upper = hi
	return out, nil
}
