package input

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kilianp07/picapacity/core/model"
)

// ParseList parses a comma-separated list of numbers such as "15, 20".
// Empty items are rejected rather than read as zero.
func ParseList(s string) ([]float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("%w: empty list", model.ErrInvalidInput)
	}
	parts := strings.Split(s, ",")
	out := make([]float64, len(parts))
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			return nil, fmt.Errorf("%w: empty item %d in %q", model.ErrInvalidInput, i+1, s)
		}
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: item %d in %q is not a number", model.ErrInvalidInput, i+1, s)
		}
		out[i] = v
	}
	return out, nil
}

// ParseContributor parses "name:capacities:story_points:future_capacity",
// e.g. "Dev1:15,20:12,18:15".
func ParseContributor(spec string) (model.ContributorProfile, error) {
	fields := strings.Split(spec, ":")
	if len(fields) != 4 {
		return model.ContributorProfile{}, fmt.Errorf(
			"%w: contributor %q must be name:capacities:story_points:future_capacity", model.ErrInvalidInput, spec)
	}
	name := strings.TrimSpace(fields[0])
	capacity, err := ParseList(fields[1])
	if err != nil {
		return model.ContributorProfile{}, fmt.Errorf("contributor %s capacities: %w", name, err)
	}
	points, err := ParseList(fields[2])
	if err != nil {
		return model.ContributorProfile{}, fmt.Errorf("contributor %s story points: %w", name, err)
	}
	future, err := strconv.ParseFloat(strings.TrimSpace(fields[3]), 64)
	if err != nil {
		return model.ContributorProfile{}, fmt.Errorf("%w: contributor %s future capacity %q is not a number",
			model.ErrInvalidInput, name, fields[3])
	}
	p := model.ContributorProfile{
		Name:           name,
		History:        model.HistoricalRecord{Capacity: capacity, StoryPoints: points},
		FutureCapacity: future,
	}
	return p, p.Validate()
}

// ExampleTeam returns n contributors Dev1..Devn with the sample history of the
// planning worksheet: capacities 15,20, story points 12,18 and the given
// future capacity.
func ExampleTeam(n int, future float64) []model.ContributorProfile {
	team := make([]model.ContributorProfile, n)
	for i := range team {
		team[i] = model.ContributorProfile{
			Name: fmt.Sprintf("Dev%d", i+1),
			History: model.HistoricalRecord{
				Capacity:    []float64{15, 20},
				StoryPoints: []float64{12, 18},
			},
			FutureCapacity: future,
		}
	}
	return team
}
