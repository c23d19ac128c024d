package model

import "errors"

var (
	// ErrInvalidInput is returned when a value supplied to the forecaster is
	// malformed: non-positive capacity, mismatched histories, empty records,
	// a non-positive trial count or an empty sequence to aggregate.
	ErrInvalidInput = errors.New("invalid input")

	// ErrConfiguration is returned when a tuning parameter lies outside its
	// documented range.
	ErrConfiguration = errors.New("configuration error")
)
