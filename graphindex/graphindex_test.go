package graphindex_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/syndrumnet/synergycore/graphindex"
)

func pathGraph() []graphindex.Triple {
	return []graphindex.Triple{
		{GeneA: "A", GeneB: "B", SourceTag: "s1"},
		{GeneA: "B", GeneB: "C", SourceTag: "s1"},
		{GeneA: "C", GeneB: "D", SourceTag: "s1"},
		{GeneA: "D", GeneB: "E", SourceTag: "s1"},
	}
}

// Path graph proximity: A-B-C-D-E, Q={A}, M={E} => d(Q,M)=4, d(M,Q)=4.
func TestPathGraphProximity(t *testing.T) {
	idx, err := graphindex.Build(pathGraph())
	require.NoError(t, err)

	Q := idx.ResolveSet([]string{"A"})
	M := idx.ResolveSet([]string{"E"})

	require.Equal(t, 4.0, idx.DistSetToSet(Q, M))
	require.Equal(t, 4.0, idx.DistSetToSet(M, Q))
}

// Disconnected source robustness: add isolated vertex Z; Q={Z}, M={E}
// must return the sentinel and not panic or abort the build.
func TestDisconnectedSourceSentinel(t *testing.T) {
	triples := pathGraph()
	// A self-loop interns Z but contributes no edge, leaving Z an isolated
	// single-vertex component that largest-component retention drops.
	triples = append(triples, graphindex.Triple{GeneA: "Z", GeneB: "Z", SourceTag: "isolated"})

	idx, err := graphindex.Build(triples)
	require.NoError(t, err)

	// Z was dropped with its component; ResolveSet silently omits it.
	Q := idx.ResolveSet([]string{"Z"})
	M := idx.ResolveSet([]string{"E"})
	require.Empty(t, Q)
	require.Equal(t, idx.Sentinel(), idx.DistSetToSet(Q, M))
	require.Equal(t, 1, idx.DroppedComponentSize())
}

func TestSelfDistanceFloor(t *testing.T) {
	idx, err := graphindex.Build(pathGraph())
	require.NoError(t, err)

	X := idx.ResolveSet([]string{"A", "C", "E"})
	require.Equal(t, 0.0, idx.DistSetToSet(X, X))
}

func TestBatchMatchesDirectQuery(t *testing.T) {
	idx, err := graphindex.Build(pathGraph())
	require.NoError(t, err)

	S := idx.ResolveSet([]string{"A"})
	T1 := idx.ResolveSet([]string{"C"})
	T2 := idx.ResolveSet([]string{"E"})

	batch := idx.NewBatch(S)
	require.Equal(t, idx.DistSetToSet(S, T1), batch.DistTo(T1))
	require.Equal(t, idx.DistSetToSet(S, T2), batch.DistTo(T2))
}

func TestProximityPairMatchesTwoDistSetToSetCalls(t *testing.T) {
	idx, err := graphindex.Build(pathGraph())
	require.NoError(t, err)

	Q := idx.ResolveSet([]string{"A"})
	M := idx.ResolveSet([]string{"E"})

	dAB, dBA := idx.ProximityPair(Q, M)
	require.Equal(t, idx.DistSetToSet(Q, M), dAB)
	require.Equal(t, idx.DistSetToSet(M, Q), dBA)
}

func TestBinsCoverAllVertices(t *testing.T) {
	idx, err := graphindex.Build(pathGraph(), graphindex.WithNumBins(3))
	require.NoError(t, err)

	total := 0
	for b := 0; b < idx.NumBins(); b++ {
		total += len(idx.BinPool(b))
	}
	require.Equal(t, idx.Size(), total)
}

func TestTwoTrianglesBridgedFormOneComponent(t *testing.T) {
	triples := []graphindex.Triple{
		{GeneA: "A1", GeneB: "A2"}, {GeneA: "A2", GeneB: "A3"}, {GeneA: "A1", GeneB: "A3"},
		{GeneA: "B1", GeneB: "B2"}, {GeneA: "B2", GeneB: "B3"}, {GeneA: "B1", GeneB: "B3"},
		{GeneA: "A1", GeneB: "B1"},
	}
	idx, err := graphindex.Build(triples)
	require.NoError(t, err)

	require.Equal(t, 6, idx.Size())
	require.Equal(t, 0, idx.DroppedComponentSize())
}

func TestEmptyGraphError(t *testing.T) {
	_, err := graphindex.Build(nil)
	require.ErrorIs(t, err, graphindex.ErrEmptyGraph)
}

func TestSelfLoopsAndDuplicateEdgesDropped(t *testing.T) {
	triples := []graphindex.Triple{
		{GeneA: "A", GeneB: "A"}, // self-loop, dropped
		{GeneA: "A", GeneB: "B", SourceTag: "s1"},
		{GeneA: "B", GeneB: "A", SourceTag: "s2"}, // duplicate, reversed
	}
	idx, err := graphindex.Build(triples)
	require.NoError(t, err)
	require.Equal(t, 2, idx.Size())
	a, _ := idx.Lookup("A")
	require.Equal(t, 1, idx.Degree(a))

	b, _ := idx.Lookup("B")
	sources := idx.Sources(a, b)
	require.ElementsMatch(t, []string{"s1", "s2"}, sources)
}
