// Package separation implements the Separation Engine: the signed
// network-separation metric s(A,B) that distinguishes separated modules
// (s>0) from overlapping or nested ones (s<=0), the basis for the Topology
// Classifier's complementary/redundant split.
package separation

import "github.com/syndrumnet/synergycore/graphindex"

// Score computes s(A,B) = (d(A,B)+d(B,A))/2 - (d(A,A)+d(B,B))/2.
//
// d(X,X) is computed with S=T=X; by construction the self-term
// min_{t in X} d(s,t) for s in X is zero (every gene reaches itself at
// distance 0), so d(X,X) == 0 whenever X is non-empty; separation reduces to
// the plain inter-module distance in that common case, but the formula is
// kept exactly as specified for clarity and in case a future caller supplies
// a non-self X/X pairing through the same call shape.
func Score(idx *graphindex.Index, A, B []graphindex.Gene) float64 {
	dAB, dBA := idx.ProximityPair(A, B)
	dBetween := (dAB + dBA) / 2

	dAA := idx.DistSetToSet(A, A)
	dBB := idx.DistSetToSet(B, B)
	dWithin := (dAA + dBB) / 2

	return dBetween - dWithin
}
