// Package topology implements the Topology Classifier: classifies a
// drug pair (A,B) relative to a disease module Q as complementary,
// intermediate, or redundant, and scores the classification.
package topology

import (
	"math"

	"github.com/syndrumnet/synergycore/graphindex"
	"github.com/syndrumnet/synergycore/separation"
)

// Class enumerates the three topological classes a drug pair may receive.
type Class string

const (
	Complementary Class = "complementary"
	Intermediate  Class = "intermediate"
	Redundant     Class = "redundant"
)

// Default classifier constants; all are exposed as configuration.
const (
	DefaultCloseThreshold = 3.0
	DefaultK              = 10.0
	DefaultL              = 5.0
)

// Config holds the classifier's tunable constants.
type Config struct {
	CloseThreshold float64
	K              float64
	L              float64
}

// DefaultConfig returns the pinned default constants.
func DefaultConfig() Config {
	return Config{CloseThreshold: DefaultCloseThreshold, K: DefaultK, L: DefaultL}
}

// Result is the classifier's output for one drug pair.
type Result struct {
	Class Class
	Score float64
	SAB   float64 // drug-drug separation
	DAQ   float64 // d(M_A, Q)
	DBQ   float64 // d(M_B, Q)
}

// Classify computes T_{Q,AB} per the decision table:
//
//	s_AB > 0 AND d_AQ < close AND d_BQ < close  -> complementary, 1 - d̄/K
//	s_AB > 0 AND not both close                 -> intermediate, 0.5 - d̄/K
//	s_AB <= 0                                   -> redundant, -|s_AB|/L
//
// Every pair receives exactly one of the three classes:
// the three conditions above are exhaustive and mutually exclusive since the
// first two only differ on the "both close" predicate and the third covers
// the entire complementary region of s_AB's domain.
func Classify(idx *graphindex.Index, Q, A, B []graphindex.Gene, cfg Config) Result {
	sAB := separation.Score(idx, A, B)
	dAQ := idx.DistSetToSet(A, Q)
	dBQ := idx.DistSetToSet(B, Q)
	dMean := (dAQ + dBQ) / 2

	var res Result
	res.SAB, res.DAQ, res.DBQ = sAB, dAQ, dBQ

	switch {
	case sAB > 0 && dAQ < cfg.CloseThreshold && dBQ < cfg.CloseThreshold:
		res.Class = Complementary
		res.Score = 1 - dMean/cfg.K
	case sAB > 0:
		res.Class = Intermediate
		res.Score = 0.5 - dMean/cfg.K
	default:
		res.Class = Redundant
		res.Score = -math.Abs(sAB) / cfg.L
	}

	return res
}
