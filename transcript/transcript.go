// Package transcript implements the Transcriptional Scorer: Spearman
// rank correlation between a disease expression signature and a drug's
// signed up/down gene vector, and the composite pair score C.
//
// gonum has no built-in Spearman correlation, so this package ranks both
// input vectors itself (average ranks for ties, the standard Spearman
// convention) and calls gonum/stat's Pearson Correlation on the rank
// vectors; Spearman's rho is exactly Pearson's r computed over ranks.
package transcript

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/syndrumnet/synergycore/graphindex"
)

// MinCommonGenes is the minimum number of genes shared between a disease
// signature and a drug vector for a correlation to be considered meaningful
//. Below this, similarity is defined to be 0 and a diagnostic emitted.
const MinCommonGenes = 3

// Direction is the sign of a drug's regulation of one gene.
type Direction int8

const (
	Down Direction = -1
	Up   Direction = 1
)

// DrugVector is a drug's signed gene set: +1 for up-regulated genes, -1 for
// down-regulated genes, undefined (absent) elsewhere.
type DrugVector map[graphindex.Gene]Direction

// NewDrugVector builds a DrugVector from disjoint up/down gene sets.
func NewDrugVector(up, down []graphindex.Gene) DrugVector {
	v := make(DrugVector, len(up)+len(down))
	for _, g := range up {
		v[g] = Up
	}
	for _, g := range down {
		v[g] = Down
	}
	return v
}

// Signature is a disease expression signature: gene -> log-fold-change.
// Genes with no entry are treated as absent, not as zero.
type Signature map[graphindex.Gene]float64

// Similarity computes the drug's transcriptional score c_k = -ρ, where ρ is
// the Spearman rank correlation between sigma and drugVec restricted to
// genes present in both. If fewer than MinCommonGenes genes overlap,
// similarity is 0 and ok is false (caller should record a diagnostic). If
// either ranked vector is constant over the common genes (for example a drug
// whose common genes are all up-regulated), ρ is undefined and the score is
// 0 with ok true.
func Similarity(sigma Signature, drugVec DrugVector) (score float64, ok bool) {
	var common []graphindex.Gene
	for g := range sigma {
		if _, has := drugVec[g]; has {
			common = append(common, g)
		}
	}
	if len(common) < MinCommonGenes {
		return 0, false
	}
	sortGenes(common)

	sigVals := make([]float64, len(common))
	drugVals := make([]float64, len(common))
	for i, g := range common {
		sigVals[i] = sigma[g]
		drugVals[i] = float64(drugVec[g])
	}

	rho := stat.Correlation(rank(sigVals), rank(drugVals), nil)
	if math.IsNaN(rho) {
		return 0, true
	}
	return -rho, true
}

// PairScore computes C_{Q,AB} = (c_A + c_B) / 2.
func PairScore(cA, cB float64) float64 {
	return (cA + cB) / 2
}

func sortGenes(g []graphindex.Gene) {
	sort.Slice(g, func(i, j int) bool { return g[i] < g[j] })
}

// rank assigns average ranks (1-based) to values, the standard tie-handling
// convention for Spearman correlation: equal values share the mean of the
// ranks they would occupy if broken arbitrarily.
func rank(values []float64) []float64 {
	n := len(values)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(i, j int) bool { return values[idx[i]] < values[idx[j]] })

	ranks := make([]float64, n)
	i := 0
	for i < n {
		j := i
		for j+1 < n && values[idx[j+1]] == values[idx[i]] {
			j++
		}
		// Positions i..j (in sorted order) are tied; assign the average of
		// their 1-based rank positions.
		avgRank := float64(i+j)/2 + 1
		for k := i; k <= j; k++ {
			ranks[idx[k]] = avgRank
		}
		i = j + 1
	}
	return ranks
}
