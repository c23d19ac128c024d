package metrics

import "github.com/kilianp07/picapacity/core/factory"

// Config defines the metrics sinks of the application.
type Config struct {
	Sinks []factory.Spec `json:"sinks"`
}
