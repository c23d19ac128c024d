package config

import (
	"fmt"

	"github.com/kilianp07/picapacity/core/model"
	"github.com/kilianp07/picapacity/core/stats"
	"github.com/kilianp07/picapacity/internal/report"
)

// ReportConfig defines how forecast results are aggregated and printed.
type ReportConfig struct {
	// Percentile is the upper percentile reported next to the median.
	Percentile float64 `json:"percentile"`
	// Bins is the number of histogram bins attached to each distribution.
	// Zero omits distributions.
	Bins int `json:"bins"`
	// Format selects the output: "text" or "json".
	Format string `json:"format"`
}

// SetDefaults applies sane defaults.
func (c *ReportConfig) SetDefaults() {
	if c.Percentile == 0 {
		c.Percentile = stats.DefaultPercentile
	}
	if c.Format == "" {
		c.Format = string(report.FormatText)
	}
}

// Validate checks the ranges.
func (c ReportConfig) Validate() error {
	if c.Percentile < 0 || c.Percentile > 100 {
		return fmt.Errorf("%w: percentile %v outside [0,100]", model.ErrConfiguration, c.Percentile)
	}
	if c.Bins < 0 {
		return fmt.Errorf("%w: bins %d is negative", model.ErrConfiguration, c.Bins)
	}
	if _, err := report.ParseFormat(c.Format); err != nil {
		return err
	}
	return nil
}
