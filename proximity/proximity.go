// Package proximity implements the Proximity Engine: raw average-min
// distance between a disease module and a drug module, z-score normalized
// against a degree-preserving null model, and the composite pair score P.
package proximity

import (
	"math/rand"

	"gonum.org/v1/gonum/stat"

	"github.com/syndrumnet/synergycore/diagnostics"
	"github.com/syndrumnet/synergycore/graphindex"
	"github.com/syndrumnet/synergycore/nullmodel"
)

// DefaultNRandomizations is the default number of null-model draws.
const DefaultNRandomizations = 1000

// ZScore is the result of normalizing a raw proximity value against its
// degree-preserving null distribution.
type ZScore struct {
	Raw   float64 // d(Q,M)
	Z     float64 // (d(Q,M) - mean) / stdev
	PVal  float64 // #{null <= observed} / n_samples, one-tailed
}

// Engine computes normalized proximity scores against a fixed graph index
// and null-model sampler. Engine holds no per-call mutable state, so it may
// be shared across workers; each call takes its own RNG.
type Engine struct {
	idx     *graphindex.Index
	sampler *nullmodel.Sampler
	diag    *diagnostics.Report
}

// New returns an Engine bound to idx, sampling nulls via sampler and
// recording non-fatal diagnostics into diag (nil discards them).
func New(idx *graphindex.Index, sampler *nullmodel.Sampler, diag *diagnostics.Report) *Engine {
	return &Engine{idx: idx, sampler: sampler, diag: diag}
}

// Normalized computes z(Q,M): the observed distance d(Q,M), its z-score
// against nSamples degree-preserving randomizations of M, and the empirical
// one-tailed p-value #{d(Q,M_i*) <= d(Q,M)} / n_samples.
//
// diseaseID and drugID are used only to attribute diagnostics when
// the null distribution degenerates; pass empty strings
// if not in a pair-scoped context.
func (e *Engine) Normalized(Q, M []graphindex.Gene, nSamples int, rng *rand.Rand, diseaseID, drugID string) ZScore {
	observed := e.idx.DistSetToSet(Q, M)

	randomModules := e.sampler.Sample(M, nSamples, rng)
	nullDist := make([]float64, 0, len(randomModules))
	if len(Q) > 0 {
		batch := e.idx.NewBatch(Q)
		for _, rm := range randomModules {
			nullDist = append(nullDist, batch.DistTo(rm))
		}
	}

	z, pval := zscoreAndPValue(observed, nullDist)
	if len(nullDist) > 0 {
		if (len(nullDist) < 2 || stat.StdDev(nullDist, nil) == 0) && e.diag != nil {
			e.diag.NullDegenerate(diseaseID, drugID, "", "null distribution standard deviation is zero")
		}
	}

	return ZScore{Raw: observed, Z: z, PVal: pval}
}

// zscoreAndPValue computes the z-score and one-tailed empirical p-value of
// observed against nullDist. If nullDist is empty, holds a single value, or
// has zero standard deviation, z is 0.
func zscoreAndPValue(observed float64, nullDist []float64) (z, pval float64) {
	if len(nullDist) == 0 {
		return 0, 0
	}
	mean := stat.Mean(nullDist, nil)
	std := stat.StdDev(nullDist, nil)
	if len(nullDist) < 2 || std == 0 {
		z = 0
	} else {
		z = (observed - mean) / std
	}

	hits := 0
	for _, v := range nullDist {
		if v <= observed {
			hits++
		}
	}
	pval = float64(hits) / float64(len(nullDist))

	return z, pval
}

// PairScore computes P_{Q,AB} = -(z(Q,M_A) + z(Q,M_B)) / 2. The sign
// is inverted so a closer-than-random pair contributes a larger positive
// score to the composite total.
func PairScore(zA, zB ZScore) float64 {
	return -(zA.Z + zB.Z) / 2
}
