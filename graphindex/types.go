// Package graphindex owns the interaction graph G=(V,E): interning gene
// symbols to compact integer indices, retaining only the largest connected
// component, building a compressed-sparse-row adjacency for O(deg(v))
// neighbor iteration, and answering repeated single-source / set-to-set
// shortest path distance queries against a read-only, concurrency-safe index.
//
// An Index builds once from a fixed edge list and never mutates afterward:
// string-to-index interning is a one-shot bijection at load time, so once
// built an Index has no mutable state and needs no locking at all: every
// method is a plain read over immutable slices, and CSR adjacency avoids
// any per-query hashing on the traversal hot path.
package graphindex

import "errors"

// Gene is a compact, zero-based vertex index into the retained component.
// Gene values are only meaningful relative to the Index that produced them.
type Gene int32

// Sentinel errors for graph construction and queries.
var (
	// ErrEmptyGraph is returned when the input edge list yields no vertices.
	ErrEmptyGraph = errors.New("graphindex: no vertices after build")

	// ErrUnknownGene is returned when a symbol is not present in the index.
	ErrUnknownGene = errors.New("graphindex: unknown gene symbol")
)

// DefaultSentinelDistance is the value returned for a set-to-set distance
// query when no path exists between the sets.
const DefaultSentinelDistance = 1000.0

// DefaultNumBins is the default number of equal-count degree bands.
const DefaultNumBins = 20

// Triple is one input edge record: an undirected interaction between GeneA
// and GeneB, annotated with its provenance SourceTag. SourceTag is used only
// for observability and never affects distance or sampling semantics.
type Triple struct {
	GeneA     string
	GeneB     string
	SourceTag string
}

// Index is the read-only, thread-safe Graph Index: the interned vertex set
// V, CSR adjacency over E, and the degree-bin table B.
//
// All fields are populated once by Build and never mutated afterward, so
// Index requires no locking: concurrent readers may call any method from any
// number of goroutines.
type Index struct {
	symbols      []string       // Gene -> symbol, index == Gene
	symbolToGene map[string]Gene // symbol -> Gene

	// CSR adjacency: neighbors of vertex v are csrNeighbors[csrOffsets[v]:csrOffsets[v+1]].
	csrOffsets   []int32
	csrNeighbors []int32

	edgeSources map[edgeKey][]string // observability only

	degree []int32 // degree[v], precomputed from CSR row length

	numBins int
	binOf   []int32   // binOf[v] = degree-bin index of vertex v
	bins    [][]Gene  // bins[b] = vertices whose binOf == b, ascending by Gene

	droppedComponentSize int // total size of all non-retained components, for diagnostics

	sentinel float64 // distance returned for unreachable set-to-set queries
}

// edgeKey canonicalizes an undirected edge for deduplication: Lo <= Hi.
type edgeKey struct {
	Lo, Hi Gene
}

func newEdgeKey(a, b Gene) edgeKey {
	if a <= b {
		return edgeKey{Lo: a, Hi: b}
	}
	return edgeKey{Lo: b, Hi: a}
}

// Size returns |V|, the number of vertices in the retained component.
func (idx *Index) Size() int { return len(idx.symbols) }

// NumBins returns the number of degree bins actually populated (may be less
// than the requested n_bins if |V| is very small).
func (idx *Index) NumBins() int { return idx.numBins }

// DroppedComponentSize returns the total size of every connected component
// that was not retained as V.
func (idx *Index) DroppedComponentSize() int { return idx.droppedComponentSize }

// Lookup resolves a gene symbol to its Gene index. ok is false if the symbol
// was never interned or was dropped with a non-retained component.
func (idx *Index) Lookup(symbol string) (g Gene, ok bool) {
	g, ok = idx.symbolToGene[symbol]
	return g, ok
}

// Symbol returns the original gene symbol for g. Panics if g is out of range;
// callers only ever hold Gene values returned by this Index.
func (idx *Index) Symbol(g Gene) string { return idx.symbols[g] }

// Degree returns the number of (deduplicated, self-loop-free) neighbors of g.
func (idx *Index) Degree(g Gene) int { return int(idx.degree[g]) }

// Neighbors returns the neighbor list of g as a newly allocated copy of its
// CSR adjacency row; mutating it does not affect the Index.
func (idx *Index) Neighbors(g Gene) []Gene {
	lo, hi := idx.csrOffsets[g], idx.csrOffsets[g+1]
	out := make([]Gene, hi-lo)
	for i, n := range idx.csrNeighbors[lo:hi] {
		out[i] = Gene(n)
	}
	return out
}

// Sources returns the provenance tags recorded for the undirected edge (a,b),
// or nil if a and b are not adjacent. Observability only.
func (idx *Index) Sources(a, b Gene) []string {
	return idx.edgeSources[newEdgeKey(a, b)]
}

// ResolveSet maps a slice of gene symbols to Gene indices, silently dropping
// any symbol absent from V; a module gene the graph never saw (or that left
// with a dropped component) simply does not participate. The returned
// slice is de-duplicated and sorted ascending by Gene for deterministic
// downstream iteration.
func (idx *Index) ResolveSet(symbols []string) []Gene {
	seen := make(map[Gene]struct{}, len(symbols))
	out := make([]Gene, 0, len(symbols))
	for _, s := range symbols {
		g, ok := idx.symbolToGene[s]
		if !ok {
			continue
		}
		if _, dup := seen[g]; dup {
			continue
		}
		seen[g] = struct{}{}
		out = append(out, g)
	}
	sortGenes(out)
	return out
}

func sortGenes(g []Gene) {
	// Insertion sort is fine: modules are small (tens to low hundreds of genes).
	for i := 1; i < len(g); i++ {
		v := g[i]
		j := i - 1
		for j >= 0 && g[j] > v {
			g[j+1] = g[j]
			j--
		}
		g[j+1] = v
	}
}
