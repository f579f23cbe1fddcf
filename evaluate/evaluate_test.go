package evaluate_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/syndrumnet/synergycore/evaluate"
)

func TestCanonicalPairOrdersLexicographically(t *testing.T) {
	require.Equal(t, evaluate.Pair{A: "aspirin", B: "ibuprofen"}, evaluate.CanonicalPair("ibuprofen", "aspirin"))
	require.Equal(t, evaluate.Pair{A: "aspirin", B: "ibuprofen"}, evaluate.CanonicalPair("aspirin", "ibuprofen"))
}

func TestJoinLabelsByCanonicalMembership(t *testing.T) {
	known := map[evaluate.Pair]struct{}{
		evaluate.CanonicalPair("drugA", "drugB"): {},
	}
	labeled := evaluate.Join(
		[]string{"drugB", "drugC"},
		[]string{"drugA", "drugD"},
		[]float64{0.9, 0.1},
		known,
	)
	require.Len(t, labeled, 2)
	require.True(t, labeled[0].Positive)
	require.False(t, labeled[1].Positive)
}

// A perfect ranking (all positives score above all negatives) gets AUC-ROC=1
// and AUC-PR=1.
func TestPerfectRankingScoresOne(t *testing.T) {
	labeled := []evaluate.Labeled{
		{Score: 0.9, Positive: true},
		{Score: 0.8, Positive: true},
		{Score: 0.3, Positive: false},
		{Score: 0.1, Positive: false},
	}
	summary := evaluate.Evaluate(labeled, 2)
	require.InDelta(t, 1.0, summary.AUCROC, 1e-9)
	require.InDelta(t, 1.0, summary.AUCPR, 1e-9)
	require.Equal(t, 4, summary.NPredictions)
	require.Equal(t, 2, summary.NKnownSynergies)
	require.Equal(t, 2, summary.NTruePositives)
}

// An inverted ranking (every negative outranks every positive) gets
// AUC-ROC=0.
func TestInvertedRankingScoresZero(t *testing.T) {
	labeled := []evaluate.Labeled{
		{Score: 0.9, Positive: false},
		{Score: 0.8, Positive: false},
		{Score: 0.3, Positive: true},
		{Score: 0.1, Positive: true},
	}
	summary := evaluate.Evaluate(labeled, 2)
	require.InDelta(t, 0.0, summary.AUCROC, 1e-9)
}

// A random/tied ranking (all scores identical) gets AUC-ROC=0.5: ties split
// the rank-sum evenly between classes.
func TestAllTiedScoresGivesHalfAUC(t *testing.T) {
	labeled := []evaluate.Labeled{
		{Score: 0.5, Positive: true},
		{Score: 0.5, Positive: true},
		{Score: 0.5, Positive: false},
		{Score: 0.5, Positive: false},
	}
	summary := evaluate.Evaluate(labeled, 2)
	require.InDelta(t, 0.5, summary.AUCROC, 1e-9)
}

// A single-class prediction set (e.g. an empty known-synergy set, or a
// disease with no negatives) is a degenerate evaluation: both metrics are
// undefined rather than silently wrong.
func TestSingleClassReturnsNaN(t *testing.T) {
	allNegative := []evaluate.Labeled{
		{Score: 0.9, Positive: false},
		{Score: 0.1, Positive: false},
	}
	summary := evaluate.Evaluate(allNegative, 0)
	require.True(t, math.IsNaN(summary.AUCROC))
	require.True(t, math.IsNaN(summary.AUCPR))
	require.Equal(t, 0, summary.NTruePositives)
}
