// Package input assembles contributor profiles from user supplied text:
// comma-separated numeric lists, compact command line specs and team files.
// Malformed numbers are rejected here, before anything reaches the engine.
package input
