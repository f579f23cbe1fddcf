// Package evaluate computes per-disease evaluation metrics by joining
// ranked predictions against a known-synergy gold standard:
// AUC-ROC and AUC-PR ("average precision"), alongside prediction and
// synergy counts.
//
// Both metrics are computed directly from their closed-form statistical
// definitions (Mann-Whitney rank-sum for AUC-ROC, step-function precision-
// recall integration for AUC-PR), with gonum/floats handling the final
// accumulation.
package evaluate

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Pair canonicalizes an unordered drug pair by sorting the two names, so a
// prediction emitted as (B,A) still joins against a gold-standard row
// recorded as (A,B).
type Pair struct {
	A, B string
}

// CanonicalPair returns a Pair with A <= B lexicographically.
func CanonicalPair(a, b string) Pair {
	if a <= b {
		return Pair{A: a, B: b}
	}
	return Pair{A: b, B: a}
}

// Labeled is one scored prediction joined against the gold standard: Score is
// the prediction_score, Positive is true iff the canonicalized pair appears
// in the known-synergy set.
type Labeled struct {
	Score    float64
	Positive bool
}

// Summary is the per-disease evaluation row.
type Summary struct {
	AUCROC          float64
	AUCPR           float64
	NPredictions    int
	NKnownSynergies int
	NTruePositives  int
}

// Join labels each prediction by membership in knownSynergies, canonicalizing
// (drugA,drugB) before lookup.
func Join(drugA, drugB []string, score []float64, knownSynergies map[Pair]struct{}) []Labeled {
	n := len(score)
	out := make([]Labeled, n)
	for i := 0; i < n; i++ {
		_, positive := knownSynergies[CanonicalPair(drugA[i], drugB[i])]
		out[i] = Labeled{Score: score[i], Positive: positive}
	}
	return out
}

// Evaluate computes the full Summary for one disease's labeled predictions.
func Evaluate(labeled []Labeled, nKnownSynergies int) Summary {
	nTP := 0
	for _, l := range labeled {
		if l.Positive {
			nTP++
		}
	}

	return Summary{
		AUCROC:          aucROC(labeled),
		AUCPR:           aucPR(labeled),
		NPredictions:    len(labeled),
		NKnownSynergies: nKnownSynergies,
		NTruePositives:  nTP,
	}
}

// aucROC computes AUC-ROC via the Mann-Whitney U statistic: the probability
// that a randomly chosen positive outranks a randomly chosen negative,
// computed from average ranks over scores (ties split evenly). Returns NaN
// if there is only one class present; a degenerate split has no meaningful
// ranking score.
func aucROC(labeled []Labeled) float64 {
	nPos, nNeg := 0, 0
	for _, l := range labeled {
		if l.Positive {
			nPos++
		} else {
			nNeg++
		}
	}
	if nPos == 0 || nNeg == 0 {
		return math.NaN()
	}

	order := make([]int, len(labeled))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool { return labeled[order[i]].Score < labeled[order[j]].Score })

	ranks := make([]float64, len(labeled))
	i := 0
	for i < len(order) {
		j := i
		for j+1 < len(order) && labeled[order[j+1]].Score == labeled[order[i]].Score {
			j++
		}
		avgRank := float64(i+j)/2 + 1
		for k := i; k <= j; k++ {
			ranks[order[k]] = avgRank
		}
		i = j + 1
	}

	var rankSumPos float64
	for idx, l := range labeled {
		if l.Positive {
			rankSumPos += ranks[idx]
		}
	}

	u := rankSumPos - float64(nPos)*float64(nPos+1)/2
	return u / (float64(nPos) * float64(nNeg))
}

// aucPR computes average precision: predictions sorted by descending score,
// precision and recall tracked as a running count, and the area accumulated
// as a step function: precision at each positive instance weighted by the
// recall increment it contributes. This is the same step (not trapezoidal)
// integration scikit-learn's average_precision_score uses, which is why
// AUC-PR and AUC-ROC use different integration strategies here even though
// both ultimately reduce to a cumulative sum over sorted scores.
func aucPR(labeled []Labeled) float64 {
	nPos := 0
	for _, l := range labeled {
		if l.Positive {
			nPos++
		}
	}
	if nPos == 0 || nPos == len(labeled) {
		return math.NaN()
	}

	order := make([]int, len(labeled))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool { return labeled[order[i]].Score > labeled[order[j]].Score })

	precisionAtStep := make([]float64, 0, len(order))
	recallDelta := make([]float64, 0, len(order))

	tp := 0
	seen := 0
	prevTP := 0
	for _, idx := range order {
		seen++
		if labeled[idx].Positive {
			tp++
		}
		precisionAtStep = append(precisionAtStep, float64(tp)/float64(seen))
		recallDelta = append(recallDelta, float64(tp-prevTP)/float64(nPos))
		prevTP = tp
	}

	weighted := make([]float64, len(precisionAtStep))
	for i := range weighted {
		weighted[i] = precisionAtStep[i] * recallDelta[i]
	}
	return floats.Sum(weighted)
}
