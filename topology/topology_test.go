package topology_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/syndrumnet/synergycore/graphindex"
	"github.com/syndrumnet/synergycore/topology"
)

// Two bridged triangles with Q={A2,B2}: both drugs are close and separated,
// so the classifier returns complementary.
func TestComplementaryClassification(t *testing.T) {
	triples := []graphindex.Triple{
		{GeneA: "A1", GeneB: "A2"}, {GeneA: "A2", GeneB: "A3"}, {GeneA: "A1", GeneB: "A3"},
		{GeneA: "B1", GeneB: "B2"}, {GeneA: "B2", GeneB: "B3"}, {GeneA: "B1", GeneB: "B3"},
		{GeneA: "A1", GeneB: "B1"},
	}
	idx, err := graphindex.Build(triples)
	require.NoError(t, err)

	Q := idx.ResolveSet([]string{"A2", "B2"})
	A := idx.ResolveSet([]string{"A1", "A2", "A3"})
	B := idx.ResolveSet([]string{"B1", "B2", "B3"})

	res := topology.Classify(idx, Q, A, B, topology.DefaultConfig())
	require.Equal(t, topology.Complementary, res.Class)
	require.LessOrEqual(t, res.DAQ, 2.0)
	require.LessOrEqual(t, res.DBQ, 2.0)
}

func TestRedundantWhenOverlapping(t *testing.T) {
	triples := []graphindex.Triple{
		{GeneA: "A", GeneB: "B"}, {GeneA: "B", GeneB: "C"}, {GeneA: "C", GeneB: "D"},
	}
	idx, err := graphindex.Build(triples)
	require.NoError(t, err)

	Q := idx.ResolveSet([]string{"A"})
	A := idx.ResolveSet([]string{"A", "B", "C"})
	B := idx.ResolveSet([]string{"B", "C", "D"})

	res := topology.Classify(idx, Q, A, B, topology.DefaultConfig())
	require.Equal(t, topology.Redundant, res.Class)
	require.LessOrEqual(t, res.Score, 0.0)
}

func TestIntermediateWhenSeparatedButFar(t *testing.T) {
	// A long path so A and B are separated but both far from Q.
	triples := []graphindex.Triple{
		{GeneA: "Q1", GeneB: "X1"}, {GeneA: "X1", GeneB: "X2"}, {GeneA: "X2", GeneB: "X3"},
		{GeneA: "X3", GeneB: "X4"}, {GeneA: "X4", GeneB: "A1"}, {GeneA: "A1", GeneB: "A2"},
		{GeneA: "X4", GeneB: "X5"}, {GeneA: "X5", GeneB: "X6"}, {GeneA: "X6", GeneB: "B1"},
		{GeneA: "B1", GeneB: "B2"},
	}
	idx, err := graphindex.Build(triples)
	require.NoError(t, err)

	Q := idx.ResolveSet([]string{"Q1"})
	A := idx.ResolveSet([]string{"A1", "A2"})
	B := idx.ResolveSet([]string{"B1", "B2"})

	res := topology.Classify(idx, Q, A, B, topology.DefaultConfig())
	require.Equal(t, topology.Intermediate, res.Class)
}

func TestClassifierTotality(t *testing.T) {
	triples := []graphindex.Triple{
		{GeneA: "A", GeneB: "B"}, {GeneA: "B", GeneB: "C"}, {GeneA: "C", GeneB: "D"},
		{GeneA: "D", GeneB: "E"}, {GeneA: "E", GeneB: "F"},
	}
	idx, err := graphindex.Build(triples)
	require.NoError(t, err)

	allGenes := idx.ResolveSet([]string{"A", "B", "C", "D", "E", "F"})
	cfg := topology.DefaultConfig()
	for _, a := range allGenes {
		for _, b := range allGenes {
			if a == b {
				continue
			}
			res := topology.Classify(idx, allGenes[:1], []graphindex.Gene{a}, []graphindex.Gene{b}, cfg)
			require.Contains(t, []topology.Class{topology.Complementary, topology.Intermediate, topology.Redundant}, res.Class)
		}
	}
}
