package forecast

import "math/rand/v2"

// Rand is the randomness consumed by estimators. *rand.Rand satisfies it.
type Rand interface {
	// Float64 returns a value in [0,1).
	Float64() float64
	// IntN returns a value in [0,n).
	IntN(n int) int
}

// StreamFactory returns the random stream used by a given trial.
type StreamFactory func(trial int) Rand

// SeededStreams derives one PCG stream per trial from seed. Streams are
// independent of the order in which trials are executed.
func SeededStreams(seed uint64) StreamFactory {
	return func(trial int) Rand {
		return rand.New(rand.NewPCG(seed, uint64(trial)))
	}
}
