// Package bench times repeated calls to a function and summarises the
// resulting latency distribution, ported from
// original_source/bench.c/bench.h. Go offers no portable rdtsc, so
// wall-clock nanoseconds from time.Now() stand in for the reference
// implementation's CPU-cycle counter.
package bench

import (
	"sort"
	"time"

	"github.com/rs/zerolog"
)

// Summary holds the five-number summary plus mean of a run's
// consecutive-call deltas, in nanoseconds.
type Summary struct {
	N                int
	Min, P25, Median int64
	P75, Max         int64
	Mean             float64
}

// Run calls fn ntests times, recording a timestamp before each call
// and one final timestamp after the last, then summarises the
// ntests consecutive deltas.
func Run(ntests int, fn func()) Summary {
	stamps := make([]int64, ntests+1)
	for i := 0; i < ntests; i++ {
		stamps[i] = time.Now().UnixNano()
		fn()
	}
	stamps[ntests] = time.Now().UnixNano()

	deltas := make([]int64, ntests)
	for i := 0; i < ntests; i++ {
		deltas[i] = stamps[i+1] - stamps[i]
	}
	sort.Slice(deltas, func(i, j int) bool { return deltas[i] < deltas[j] })

	var sum int64
	for _, d := range deltas {
		sum += d
	}

	return Summary{
		N:      ntests,
		Min:    deltas[0],
		P25:    deltas[ntests/4],
		Median: deltas[ntests/2],
		P75:    deltas[3*ntests/4],
		Max:    deltas[ntests-1],
		Mean:   float64(sum) / float64(ntests),
	}
}

// Log writes a Summary as a structured zerolog event under the given
// label.
func Log(logger zerolog.Logger, label string, s Summary) {
	logger.Info().
		Str("op", label).
		Int("n", s.N).
		Int64("min_ns", s.Min).
		Int64("p25_ns", s.P25).
		Int64("median_ns", s.Median).
		Int64("p75_ns", s.P75).
		Int64("max_ns", s.Max).
		Float64("mean_ns", s.Mean).
		Msg("benchmark")
}
