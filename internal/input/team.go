package input

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/kilianp07/picapacity/core/model"
)

// TeamFile is the on-disk description of a team. History values may be given
// either as lists or as comma-separated strings.
//
//	contributors:
//	  - name: Dev1
//	    capacity: "15,20"
//	    story_points: [12, 18]
//	    future_capacity: 15
type TeamFile struct {
	Contributors []ContributorEntry `json:"contributors"`
}

// ContributorEntry is one contributor of a TeamFile.
type ContributorEntry struct {
	Name           string  `json:"name"`
	Capacity       any     `json:"capacity"`
	StoryPoints    any     `json:"story_points"`
	FutureCapacity float64 `json:"future_capacity"`
}

// LoadTeam reads a YAML or JSON team file.
func LoadTeam(path string) ([]model.ContributorProfile, error) {
	var parser koanf.Parser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported team file format: %s", filepath.Ext(path))
	}
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	var tf TeamFile
	if err := k.UnmarshalWithConf("", &tf, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrInvalidInput, err)
	}
	return tf.Profiles()
}

// Profiles converts the entries and validates the resulting team.
func (tf TeamFile) Profiles() ([]model.ContributorProfile, error) {
	team := make([]model.ContributorProfile, 0, len(tf.Contributors))
	for i, e := range tf.Contributors {
		capacity, err := numbers(e.Capacity)
		if err != nil {
			return nil, fmt.Errorf("contributor %d (%s) capacity: %w", i+1, e.Name, err)
		}
		points, err := numbers(e.StoryPoints)
		if err != nil {
			return nil, fmt.Errorf("contributor %d (%s) story_points: %w", i+1, e.Name, err)
		}
		team = append(team, model.ContributorProfile{
			Name:           e.Name,
			History:        model.HistoricalRecord{Capacity: capacity, StoryPoints: points},
			FutureCapacity: e.FutureCapacity,
		})
	}
	if err := model.ValidateTeam(team); err != nil {
		return nil, err
	}
	return team, nil
}

// numbers accepts a comma-separated string, a single number or a list of
// numbers as decoded from YAML or JSON.
func numbers(v any) ([]float64, error) {
	switch t := v.(type) {
	case nil:
		return nil, fmt.Errorf("%w: missing values", model.ErrInvalidInput)
	case string:
		return ParseList(t)
	case []any:
		out := make([]float64, len(t))
		for i, item := range t {
			f, ok := toFloat(item)
			if !ok {
				return nil, fmt.Errorf("%w: item %d (%v) is not a number", model.ErrInvalidInput, i+1, item)
			}
			out[i] = f
		}
		return out, nil
	default:
		if f, ok := toFloat(t); ok {
			return []float64{f}, nil
		}
		return nil, fmt.Errorf("%w: unsupported value %v", model.ErrInvalidInput, v)
	}
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}
