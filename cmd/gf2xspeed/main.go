// Command gf2xspeed times each inversion method over a batch of
// random coprime elements and reports latency statistics — the Go
// counterpart of original_source/test_speed.c.
package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog"

	gf2x "gf2xinv.dev"
	"gf2xinv.dev/internal/bench"
	"gf2xinv.dev/internal/printer"
	"gf2xinv.dev/internal/randpoly"
)

func main() {
	ntests := flag.Int("ntests", 1000, "number of timed inversions per method")
	seed := flag.Uint64("seed", 42, "DRBG seed")
	method := flag.String("method", "all", "inversion method to time: BYI, FLT, CEA, TYT, SAC, or all")
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	logger.Info().Str("backend", printer.BackendLine()).Int("p", gf2x.ExtDeg).Msg("starting")

	methods := selectedMethods(*method)
	if len(methods) == 0 {
		logger.Fatal().Str("method", *method).Msg("unknown method")
	}

	src := randpoly.New(*seed)
	samples := make([]*gf2x.Poly, *ntests)
	for i := range samples {
		samples[i] = src.Coprime()
	}

	for _, m := range methods {
		i := 0
		summary := bench.Run(*ntests, func() {
			gf2x.Invert(m, samples[i%len(samples)])
			i++
		})
		bench.Log(logger, m.String(), summary)
	}
}

func selectedMethods(name string) []gf2x.Method {
	if name == "all" {
		return gf2x.AllMethods
	}
	for _, m := range gf2x.AllMethods {
		if m.String() == name {
			return []gf2x.Method{m}
		}
	}
	return nil
}
