package forecast

import (
	"fmt"

	"github.com/kilianp07/picapacity/core/model"
)

// DefaultTrials is the number of trials when none is configured.
const DefaultTrials = 1000

// Config defines the parameters of a simulation run.
type Config struct {
	Trials int `json:"trials"`
	// Seed fixes the random streams. Zero picks a random seed which is
	// reported on the Outcome.
	Seed uint64 `json:"seed"`
	// Workers is the number of goroutines executing trials; 0 means one.
	// Output does not depend on it.
	Workers  int      `json:"workers"`
	Strategy Strategy `json:"strategy"`
}

// SetDefaults applies fallback values for optional fields. Trials is left
// untouched when negative so that Validate reports it.
func (c *Config) SetDefaults() {
	if c.Trials == 0 {
		c.Trials = DefaultTrials
	}
	if c.Workers == 0 {
		c.Workers = 1
	}
	c.Strategy.SetDefaults()
}

// Validate checks the run parameters.
func (c Config) Validate() error {
	if c.Trials <= 0 {
		return fmt.Errorf("%w: trial count %d must be positive", model.ErrInvalidInput, c.Trials)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: worker count %d is negative", model.ErrConfiguration, c.Workers)
	}
	return c.Strategy.Validate()
}
