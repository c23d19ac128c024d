package model

import (
	"fmt"
	"math"
)

// HistoricalRecord holds index-aligned observations of one contributor:
// Capacity[i] and StoryPoints[i] describe the same past interval.
type HistoricalRecord struct {
	Capacity    []float64 `json:"capacity"`
	StoryPoints []float64 `json:"story_points"`
}

// Len returns the number of observations.
func (h HistoricalRecord) Len() int { return len(h.Capacity) }

// Validate checks that the record can be used to derive efficiency ratios.
func (h HistoricalRecord) Validate() error {
	if len(h.Capacity) == 0 {
		return fmt.Errorf("%w: empty historical record", ErrInvalidInput)
	}
	if len(h.Capacity) != len(h.StoryPoints) {
		return fmt.Errorf("%w: %d capacity values but %d story point values",
			ErrInvalidInput, len(h.Capacity), len(h.StoryPoints))
	}
	for i, c := range h.Capacity {
		if math.IsNaN(c) || math.IsInf(c, 0) || c <= 0 {
			return fmt.Errorf("%w: capacity[%d]=%v must be positive", ErrInvalidInput, i, c)
		}
	}
	for i, sp := range h.StoryPoints {
		if math.IsNaN(sp) || math.IsInf(sp, 0) || sp < 0 {
			return fmt.Errorf("%w: story_points[%d]=%v must be non-negative", ErrInvalidInput, i, sp)
		}
	}
	return nil
}

// Ratios returns StoryPoints[i]/Capacity[i] for every observation. The record
// must have been validated first.
func (h HistoricalRecord) Ratios() []float64 {
	out := make([]float64, len(h.Capacity))
	for i := range h.Capacity {
		out[i] = h.StoryPoints[i] / h.Capacity[i]
	}
	return out
}

// ContributorProfile describes one team member for a forecast.
type ContributorProfile struct {
	Name           string           `json:"name"`
	History        HistoricalRecord `json:"history"`
	FutureCapacity float64          `json:"future_capacity"` // e.g. man-days in the next PI
}

// Validate checks the profile and its history.
func (p ContributorProfile) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: contributor name is empty", ErrInvalidInput)
	}
	if math.IsNaN(p.FutureCapacity) || math.IsInf(p.FutureCapacity, 0) || p.FutureCapacity < 0 {
		return fmt.Errorf("%w: contributor %s: future capacity %v must be non-negative",
			ErrInvalidInput, p.Name, p.FutureCapacity)
	}
	if err := p.History.Validate(); err != nil {
		return fmt.Errorf("contributor %s: %w", p.Name, err)
	}
	return nil
}

// ValidateTeam validates every profile and ensures names are unique.
func ValidateTeam(team []ContributorProfile) error {
	if len(team) == 0 {
		return fmt.Errorf("%w: no contributors", ErrInvalidInput)
	}
	seen := make(map[string]struct{}, len(team))
	for _, p := range team {
		if err := p.Validate(); err != nil {
			return err
		}
		if _, ok := seen[p.Name]; ok {
			return fmt.Errorf("%w: duplicate contributor %s", ErrInvalidInput, p.Name)
		}
		seen[p.Name] = struct{}{}
	}
	return nil
}
