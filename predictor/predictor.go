// Package predictor orchestrates per-disease scoring: enumerate drug
// pairs, dispatch the topology/proximity/transcript scorers, compose the
// total score, and sort deterministically. The worker pool lives here too;
// each task's RNG comes from the seeding package.
package predictor

import (
	"github.com/syndrumnet/synergycore/diagnostics"
	"github.com/syndrumnet/synergycore/graphindex"
	"github.com/syndrumnet/synergycore/proximity"
	"github.com/syndrumnet/synergycore/seeding"
	"github.com/syndrumnet/synergycore/topology"
	"github.com/syndrumnet/synergycore/transcript"
)

// Disease is a resolved disease input: the module Q and, if available, the
// transcriptional signature sigma_Q. Signature may be nil.
type Disease struct {
	ID        string
	Module    []graphindex.Gene
	Signature transcript.Signature
}

// Drug is a resolved drug module: disjoint-by-convention up/down gene sets
// and their union, the unsigned footprint used for topological scoring.
type Drug struct {
	ID       string
	Up, Down []graphindex.Gene
	// Footprint is Up ∪ Down, de-duplicated and sorted by Gene; when a
	// propagation rewriter is used it is the rewriter's output, in its order.
	Footprint []graphindex.Gene
}

// Vector returns the drug's signed transcriptional vector for use with
// transcript.Similarity.
func (d *Drug) Vector() transcript.DrugVector {
	return transcript.NewDrugVector(d.Up, d.Down)
}

// Record is one pair's fully composed result: the state machine's terminal
// "emitted" state. Flagged is true if any component defaulted to 0
// because of an EmptyOverlap or sparse-signature condition; the pair is
// still emitted, never dropped.
type Record struct {
	Disease       string
	DrugA, DrugB  string
	T, P, C       float64
	Total         float64
	TopologyClass topology.Class
	PAZ, PBZ      float64 // z(Q,M_A), z(Q,M_B)
	CA, CB        float64 // per-drug transcriptional similarity
	Flagged       bool
}

// scorer holds the shared, read-only engines a pair score needs. One scorer
// may be shared across any number of concurrently running tasks.
type scorer struct {
	idx       *graphindex.Index
	proximity *proximity.Engine
	diag      *diagnostics.Report
	topoCfg   topology.Config
	baseSeed  int64
	nSamples  int
}

// scorePair runs the per-pair state machine pending -> T-done -> P-done ->
// C-done -> composed -> emitted. Each stage's failure mode (an empty module
// footprint, or too few common signature genes) is absorbed locally: the
// corresponding component is set to 0, a diagnostic is recorded, and Flagged
// is set, but the pair is always returned.
func (s *scorer) scorePair(disease Disease, a, b *Drug) Record {
	rec := Record{Disease: disease.ID, DrugA: a.ID, DrugB: b.ID}

	emptyQ := len(disease.Module) == 0
	emptyA := len(a.Footprint) == 0
	emptyB := len(b.Footprint) == 0
	if emptyQ {
		s.diag.Empty(disease.ID, a.ID, b.ID, "disease module "+disease.ID+" has no members in V")
		rec.Flagged = true
	}
	if emptyA {
		s.diag.Empty(disease.ID, a.ID, b.ID, "drug module "+a.ID+" has no members in V")
		rec.Flagged = true
	}
	if emptyB {
		s.diag.Empty(disease.ID, a.ID, b.ID, "drug module "+b.ID+" has no members in V")
		rec.Flagged = true
	}
	topoRunnable := !emptyQ && !emptyA && !emptyB

	// T-done: topology classification requires the disease module and both
	// footprints non-empty. A drug with no network footprint contributes no
	// complementary signal, so redundant is the conservative fallback class.
	if topoRunnable {
		res := topology.Classify(s.idx, disease.Module, a.Footprint, b.Footprint, s.topoCfg)
		rec.T = res.Score
		rec.TopologyClass = res.Class
	} else {
		rec.TopologyClass = topology.Redundant
	}

	// P-done: proximity z-scores, one deterministic RNG stream per task
	// shared across both drugs in the pair.
	rng := seeding.TaskRNG(s.baseSeed, disease.ID, a.ID, b.ID)
	var zA, zB proximity.ZScore
	if !emptyQ && !emptyA {
		zA = s.proximity.Normalized(disease.Module, a.Footprint, s.nSamples, rng, disease.ID, a.ID)
	}
	if !emptyQ && !emptyB {
		zB = s.proximity.Normalized(disease.Module, b.Footprint, s.nSamples, rng, disease.ID, b.ID)
	}
	rec.PAZ, rec.PBZ = zA.Z, zB.Z
	if topoRunnable {
		rec.P = proximity.PairScore(zA, zB)
	}

	// C-done: transcriptional correlation, skipped entirely if the disease
	// has no signature.
	if disease.Signature != nil {
		cA, okA := transcript.Similarity(disease.Signature, a.Vector())
		cB, okB := transcript.Similarity(disease.Signature, b.Vector())
		rec.CA, rec.CB = cA, cB
		if !okA {
			s.diag.SparseSignature(disease.ID, a.ID, b.ID, "fewer than 3 common genes between signature and "+a.ID)
			rec.Flagged = true
		}
		if !okB {
			s.diag.SparseSignature(disease.ID, a.ID, b.ID, "fewer than 3 common genes between signature and "+b.ID)
			rec.Flagged = true
		}
		if okA && okB {
			rec.C = transcript.PairScore(cA, cB)
		}
	}

	// composed: a plain sum, no hidden rescaling.
	rec.Total = rec.T + rec.P + rec.C
	return rec
}
