package transcript_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/syndrumnet/synergycore/graphindex"
	"github.com/syndrumnet/synergycore/transcript"
)

// Signature reversal: sigma_Q = {G1:+2, G2:+1.5, G3:-1}.
// Drug A: up={G3}, down={G1,G2}. Drug B: up={G1,G2}, down={G3}.
// Expect c_A > 0 > c_B and c_A = -c_B.
func TestTranscriptionalReversal(t *testing.T) {
	const g1, g2, g3 graphindex.Gene = 1, 2, 3

	sigma := transcript.Signature{g1: 2, g2: 1.5, g3: -1}

	drugA := transcript.NewDrugVector([]graphindex.Gene{g3}, []graphindex.Gene{g1, g2})
	drugB := transcript.NewDrugVector([]graphindex.Gene{g1, g2}, []graphindex.Gene{g3})

	cA, okA := transcript.Similarity(sigma, drugA)
	cB, okB := transcript.Similarity(sigma, drugB)

	require.True(t, okA)
	require.True(t, okB)
	require.Greater(t, cA, 0.0)
	require.Less(t, cB, 0.0)
	require.InDelta(t, cA, -cB, 1e-9)
}

// Transcriptional idempotence: a drug whose signed vector equals -sigma_Q
// restricted to common genes scores +1 up to rank-tie effects, and the
// identical vector scores the exact negation. A ±1-valued vector over four
// genes always carries two tied pairs, so the tie-adjusted ceiling here is
// 2/sqrt(5), not 1.0: the signature ranks are 4,3,2,1 while the drug ranks
// collapse to 1.5,1.5,3.5,3.5.
func TestIdempotenceExactReversal(t *testing.T) {
	const g1, g2, g3, g4 graphindex.Gene = 1, 2, 3, 4
	sigma := transcript.Signature{g1: 3, g2: 1, g3: -1, g4: -3}

	tieCeiling := 2 / math.Sqrt(5)

	// Exact reversal: signs flipped relative to sigma's own ordering.
	reversed := transcript.NewDrugVector([]graphindex.Gene{g3, g4}, []graphindex.Gene{g1, g2})
	c, ok := transcript.Similarity(sigma, reversed)
	require.True(t, ok)
	require.InDelta(t, tieCeiling, c, 1e-9)

	identical := transcript.NewDrugVector([]graphindex.Gene{g1, g2}, []graphindex.Gene{g3, g4})
	c2, ok2 := transcript.Similarity(sigma, identical)
	require.True(t, ok2)
	require.InDelta(t, -tieCeiling, c2, 1e-9)
	require.InDelta(t, c, -c2, 1e-9)
}

func TestFewerThanThreeCommonGenesReturnsZero(t *testing.T) {
	const g1, g2 graphindex.Gene = 1, 2
	sigma := transcript.Signature{g1: 1, g2: -1}
	drugVec := transcript.NewDrugVector([]graphindex.Gene{g1}, nil)

	score, ok := transcript.Similarity(sigma, drugVec)
	require.False(t, ok)
	require.Equal(t, 0.0, score)
}

func TestPairScoreIsUnweightedAverage(t *testing.T) {
	require.Equal(t, 0.5, transcript.PairScore(1.0, 0.0))
	require.Equal(t, -0.25, transcript.PairScore(-1.0, 0.5))
}
