package eratos

import "eratos/alamos"

type metrics struct {
	// base tracks base-prime set construction per run.
	base alamos.Duration
	// segment tracks individual segment sieves.
	segment alamos.Duration
	// run tracks whole runs end to end.
	run alamos.Duration
}

func newMetrics(exp alamos.Experiment) metrics {
	sub := alamos.SubExperiment(exp, "run")
	return metrics{
		base:    alamos.NewGaugeDuration(sub, "BasePrimes"),
		segment: alamos.NewGaugeDuration(sub, "Segment"),
		run:     alamos.NewGaugeDuration(sub, "Run"),
	}
}
