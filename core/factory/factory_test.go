package factory

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/picapacity/core/model"
)

type histSink struct{ Bins int }

type histSettings struct {
	Bins int `json:"bins"`
}

func newHistRegistry(t *testing.T) *Registry[*histSink] {
	t.Helper()
	reg := NewRegistry[*histSink]()
	require.NoError(t, reg.Register("hist", Configured(func(c histSettings) (*histSink, error) {
		return &histSink{Bins: c.Bins}, nil
	})))
	return reg
}

func TestRegistry_Build(t *testing.T) {
	reg := newHistRegistry(t)

	s, err := reg.Build(Spec{Type: "hist", Settings: map[string]any{"bins": 3}})
	require.NoError(t, err)
	assert.Equal(t, 3, s.Bins)

	// Environment overrides arrive as strings.
	s, err = reg.Build(Spec{Type: "hist", Settings: map[string]any{"bins": "12"}})
	require.NoError(t, err)
	assert.Equal(t, 12, s.Bins)
}

func TestRegistry_BuildAll(t *testing.T) {
	reg := newHistRegistry(t)

	sinks, err := reg.BuildAll([]Spec{{Type: "hist"}, {Type: "hist", Settings: map[string]any{"bins": 5}}})
	require.NoError(t, err)
	require.Len(t, sinks, 2)
	assert.Equal(t, 0, sinks[0].Bins)
	assert.Equal(t, 5, sinks[1].Bins)

	_, err = reg.BuildAll([]Spec{{Type: "hist"}, {Type: "statsd"}})
	assert.ErrorIs(t, err, model.ErrConfiguration)
	assert.Contains(t, err.Error(), "sinks[1]")
}

func TestRegistry_RegisterErrors(t *testing.T) {
	reg := NewRegistry[int]()
	one := func(map[string]any) (int, error) { return 1, nil }
	require.NoError(t, reg.Register("x", one))
	assert.ErrorIs(t, reg.Register("x", one), model.ErrConfiguration)
	assert.ErrorIs(t, reg.Register("y", nil), model.ErrConfiguration)
	assert.ErrorIs(t, reg.Register("", one), model.ErrConfiguration)

	_, err := reg.Build(Spec{Type: "y"})
	assert.ErrorIs(t, err, model.ErrConfiguration)
	assert.Equal(t, []string{"x"}, reg.Kinds())
}

func TestConfigured_PropagatesErrors(t *testing.T) {
	boom := errors.New("boom")
	b := Configured(func(histSettings) (int, error) { return 0, boom })
	_, err := b(nil)
	assert.ErrorIs(t, err, boom)

	_, err = b(map[string]any{"bins": "many"})
	assert.ErrorIs(t, err, model.ErrConfiguration)
}
