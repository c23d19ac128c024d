// Package stats reduces simulated trial sequences into summary statistics and
// binned distributions. Functions never modify their input slices.
package stats
