// Package nullmodel implements the degree-preserving Monte-Carlo
// randomizer: for a module M, each sample replaces every gene with a uniformly
// random gene drawn from the same degree bin, without replacement within a
// single sample, with replacement across samples.
//
// Determinism is the whole point of this package: given the same module, the
// same graphindex.Index, and the same RNG stream, two calls to Sample must
// produce byte-identical sequences of gene sets, so the sampler never reads
// from global RNG state or iterates over a Go map where order would leak into
// the output.
package nullmodel

import (
	"math/rand"

	"github.com/syndrumnet/synergycore/diagnostics"
	"github.com/syndrumnet/synergycore/graphindex"
)

// Sampler draws degree-preserving random gene sets against a fixed Index.
// A Sampler holds no mutable state of its own beyond a reference to the
// index and diagnostics sink, so one Sampler may be shared across workers;
// each call takes its own *rand.Rand.
type Sampler struct {
	idx  *graphindex.Index
	diag *diagnostics.Report
}

// New returns a Sampler bound to idx, recording relaxation diagnostics into
// diag (may be nil to discard them).
func New(idx *graphindex.Index, diag *diagnostics.Report) *Sampler {
	return &Sampler{idx: idx, diag: diag}
}

// Sample draws nSamples random gene sets of size len(module), each degree-
// matched to module gene-for-gene: the i-th gene of the k-th sample is drawn
// from the degree bin of the i-th gene of module, sampled without replacement
// within sample k (so a single sample never repeats a gene) but with
// replacement across different samples. Positions of module that share a bin
// draw from the same pool.
//
// If a gene's bin pool is smaller than needed to avoid immediate collisions,
// the pool is relaxed by merging with neighboring bins and a BinRelaxed
// diagnostic is recorded.
func (s *Sampler) Sample(module []graphindex.Gene, nSamples int, rng *rand.Rand) [][]graphindex.Gene {
	if len(module) == 0 || nSamples <= 0 {
		return nil
	}

	pools := make([][]graphindex.Gene, len(module))
	for i, g := range module {
		pools[i] = s.poolFor(g)
	}

	samples := make([][]graphindex.Gene, nSamples)
	for k := 0; k < nSamples; k++ {
		used := make(map[graphindex.Gene]struct{}, len(module))
		sample := make([]graphindex.Gene, 0, len(module))
		for i := range module {
			g := s.drawUnused(pools[i], used, rng)
			used[g] = struct{}{}
			sample = append(sample, g)
		}
		samples[k] = sample
	}
	return samples
}

// poolFor returns the candidate pool for gene g's degree bin, relaxing by
// merging adjacent bins when the bin alone is too small to support sampling
// without replacement within a sample.
func (s *Sampler) poolFor(g graphindex.Gene) []graphindex.Gene {
	bin := s.idx.BinOf(g)
	pool := s.idx.BinPool(bin)
	if len(pool) >= 2 {
		return pool
	}

	// Relax: merge with neighboring bins until the pool is usable or we have
	// merged every bin.
	lo, hi := bin, bin
	merged := append([]graphindex.Gene(nil), pool...)
	for len(merged) < 2 && (lo > 0 || hi < s.idx.NumBins()-1) {
		if lo > 0 {
			lo--
			merged = append(merged, s.idx.BinPool(lo)...)
		}
		if len(merged) >= 2 {
			break
		}
		if hi < s.idx.NumBins()-1 {
			hi++
			merged = append(merged, s.idx.BinPool(hi)...)
		}
	}
	if s.diag != nil {
		s.diag.BinRelaxed("degree bin too small for sampling without replacement; merged with neighbors")
	}
	return merged
}

// drawUnused draws a gene from pool that is not already present in used,
// retrying with fresh draws. If pool is exhausted of unused candidates
// (pathological: a tiny graph with a module spanning most of it), falls back
// to returning any pool member, preferring one not in used if any exist.
func (s *Sampler) drawUnused(pool []graphindex.Gene, used map[graphindex.Gene]struct{}, rng *rand.Rand) graphindex.Gene {
	if len(pool) == 0 {
		return -1
	}
	const maxAttempts = 64
	for attempt := 0; attempt < maxAttempts; attempt++ {
		cand := pool[rng.Intn(len(pool))]
		if _, dup := used[cand]; !dup {
			return cand
		}
	}
	// Fall back to a deterministic linear scan for the first unused member.
	for _, cand := range pool {
		if _, dup := used[cand]; !dup {
			return cand
		}
	}
	// Every pool member already used: return the RNG's own draw to preserve
	// the sampler's byte-identical-sequence determinism even in this
	// degenerate case.
	return pool[rng.Intn(len(pool))]
}
