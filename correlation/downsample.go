package correlation

import (
	"math/rand/v2"
	"sort"

	"github.com/katalvlaran/twopoint/metrics"
	"github.com/katalvlaran/twopoint/pairs"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat/sampleuv"
)

// defaultSeed replaces a zero Options.Seed so default runs stay reproducible.
const defaultSeed uint64 = 1

// sampler draws uniform subsets without replacement from one seeded stream.
// Samples are drawn in call order, so a fixed seed fixes every subset.
type sampler struct {
	src rand.Source
	max int
	log logrus.FieldLogger
	rec *metrics.Recorder
}

func newSampler(o Options, log logrus.FieldLogger) *sampler {
	seed := o.Seed
	if seed == 0 {
		seed = defaultSeed
	}

	return &sampler{
		src: rand.NewPCG(seed, seed),
		max: o.MaxSampleSize,
		log: log,
		rec: o.Metrics,
	}
}

// indices returns the sorted indices kept out of n, or nil when n fits.
func (s *sampler) indices(name string, n int) []int {
	if s.max <= 0 || n <= s.max {
		return nil
	}
	idx := make([]int, s.max)
	sampleuv.WithoutReplacement(idx, n, s.src)
	sort.Ints(idx)

	s.log.WithFields(logrus.Fields{"sample": name, "from": n, "to": s.max}).Info("downsampling")
	s.rec.ObserveDownsample(name, n-s.max)

	return idx
}

// points downsamples p and every non-nil aligned slice by the same indices.
func (s *sampler) points(name string, p pairs.Points, aligned ...*[]float64) pairs.Points {
	idx := s.indices(name, len(p))
	if idx == nil {
		return p
	}
	for _, a := range aligned {
		if *a != nil {
			*a = subset(*a, idx)
		}
	}

	return p.Subset(idx)
}

func subset(v []float64, idx []int) []float64 {
	out := make([]float64, len(idx))
	for i, j := range idx {
		out[i] = v[j]
	}

	return out
}
