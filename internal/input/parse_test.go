package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/picapacity/core/model"
)

func TestParseList(t *testing.T) {
	tests := []struct {
		in   string
		want []float64
		ok   bool
	}{
		{"15,20", []float64{15, 20}, true},
		{" 15 , 20.5 ", []float64{15, 20.5}, true},
		{"7", []float64{7}, true},
		{"", nil, false},
		{"15,,20", nil, false},
		{"15,abc", nil, false},
		{"15,", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseList(tt.in)
			if !tt.ok {
				assert.ErrorIs(t, err, model.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseContributor(t *testing.T) {
	p, err := ParseContributor("Dev1:15,20:12,18:15")
	require.NoError(t, err)
	assert.Equal(t, "Dev1", p.Name)
	assert.Equal(t, []float64{15, 20}, p.History.Capacity)
	assert.Equal(t, []float64{12, 18}, p.History.StoryPoints)
	assert.Equal(t, 15.0, p.FutureCapacity)

	for _, bad := range []string{
		"Dev1:15,20:12,18",
		"Dev1:15,0:12,18:15",
		"Dev1:15,20:12:15",
		"Dev1:15,20:12,18:soon",
		":15:12:15",
	} {
		_, err := ParseContributor(bad)
		assert.ErrorIs(t, err, model.ErrInvalidInput, bad)
	}
}

func TestExampleTeam(t *testing.T) {
	team := ExampleTeam(4, 15)
	require.Len(t, team, 4)
	assert.Equal(t, "Dev1", team[0].Name)
	assert.Equal(t, "Dev4", team[3].Name)
	require.NoError(t, model.ValidateTeam(team))
}
