package proximity_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/syndrumnet/synergycore/diagnostics"
	"github.com/syndrumnet/synergycore/graphindex"
	"github.com/syndrumnet/synergycore/internal/fixtures"
	"github.com/syndrumnet/synergycore/nullmodel"
	"github.com/syndrumnet/synergycore/proximity"
)

// Null z-score of a maximally redundant pair: karate-club graph, Q={0,1,2,3,4},
// M = Q itself, n_samples=500, seed=42. Expect z(Q,M) < -3 and p <= 0.01.
func TestKarateClubRedundantZScore(t *testing.T) {
	idx, err := graphindex.Build(fixtures.KarateClub())
	require.NoError(t, err)

	Q := idx.ResolveSet([]string{"0", "1", "2", "3", "4"})
	M := Q // module equals the disease module itself: maximally redundant

	sampler := nullmodel.New(idx, diagnostics.NewReport())
	engine := proximity.New(idx, sampler, diagnostics.NewReport())

	rng := rand.New(rand.NewSource(42))
	z := engine.Normalized(Q, M, 500, rng, "asthma", "drugSelf")

	require.Equal(t, 0.0, z.Raw, "d(Q,Q) must be 0 by the self-distance floor")
	require.Less(t, z.Z, -3.0)
	require.LessOrEqual(t, z.PVal, 0.01)
}

func TestNullDegenerateZeroStdDev(t *testing.T) {
	idx, err := graphindex.Build(fixtures.KarateClub())
	require.NoError(t, err)

	Q := idx.ResolveSet([]string{"0"})
	M := idx.ResolveSet([]string{"33"})

	diag := diagnostics.NewReport()
	sampler := nullmodel.New(idx, diag)
	engine := proximity.New(idx, sampler, diag)

	// n_samples=1 guarantees a zero-variance null distribution.
	z := engine.Normalized(Q, M, 1, rand.New(rand.NewSource(1)), "d", "a")
	require.Equal(t, 0.0, z.Z)
}

func TestPairScoreSignInversion(t *testing.T) {
	closer := proximity.ZScore{Z: -2.0}
	farther := proximity.ZScore{Z: 2.0}

	require.Greater(t, proximity.PairScore(closer, closer), proximity.PairScore(farther, farther))
}
