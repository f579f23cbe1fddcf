package graphindex

import "sort"

// BuildOption configures Build before construction.
type BuildOption func(*buildConfig)

type buildConfig struct {
	numBins  int
	sentinel float64
}

func defaultBuildConfig() buildConfig {
	return buildConfig{numBins: DefaultNumBins, sentinel: DefaultSentinelDistance}
}

// WithNumBins overrides the number of degree bins (default DefaultNumBins).
func WithNumBins(n int) BuildOption {
	return func(c *buildConfig) {
		if n > 0 {
			c.numBins = n
		}
	}
}

// WithSentinel overrides the distance returned for unreachable queries
// (default DefaultSentinelDistance).
func WithSentinel(v float64) BuildOption {
	return func(c *buildConfig) {
		if v > 0 {
			c.sentinel = v
		}
	}
}

// Build constructs an Index from a list of undirected interaction triples
// in five steps:
//
//  1. Intern gene symbols to integer indices.
//  2. Drop self-loops; deduplicate undirected edges, accumulating source tags.
//  3. Compute connected components; retain only the largest. The size of the
//     dropped remainder is recorded (DroppedComponentSize) rather than
//     returned as an error; losing disconnected fragments is expected, not
//     exceptional.
//  4. Build CSR adjacency for O(deg(v)) neighbor iteration.
//  5. Build the degree-bin table B.
//
// Build returns ErrEmptyGraph if the input yields no vertices at all.
func Build(triples []Triple, opts ...BuildOption) (*Index, error) {
	cfg := defaultBuildConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	// Step 1: intern every symbol seen, including both endpoints of every
	// triple, so isolated mentions still get an index before component
	// filtering below.
	symbolToGene := make(map[string]Gene, len(triples)*2)
	var symbols []string
	intern := func(s string) Gene {
		if g, ok := symbolToGene[s]; ok {
			return g
		}
		g := Gene(len(symbols))
		symbolToGene[s] = g
		symbols = append(symbols, s)
		return g
	}

	type rawEdge struct {
		a, b Gene
	}
	rawEdges := make([]rawEdge, 0, len(triples))
	rawSources := make(map[edgeKey][]string, len(triples))

	// Step 2: drop self-loops, dedupe, accumulate source tags.
	for _, t := range triples {
		a := intern(t.GeneA)
		b := intern(t.GeneB)
		if a == b {
			continue // self-loop
		}
		k := newEdgeKey(a, b)
		if _, dup := rawSources[k]; !dup {
			rawEdges = append(rawEdges, rawEdge{a, b})
		}
		if t.SourceTag != "" {
			rawSources[k] = appendUnique(rawSources[k], t.SourceTag)
		} else if _, ok := rawSources[k]; !ok {
			rawSources[k] = []string{}
		}
	}

	n := len(symbols)
	if n == 0 {
		return nil, ErrEmptyGraph
	}

	// Adjacency for component discovery and CSR, built once over ALL interned
	// vertices (pre component-filtering).
	adj := make([][]Gene, n)
	for _, e := range rawEdges {
		adj[e.a] = append(adj[e.a], e.b)
		adj[e.b] = append(adj[e.b], e.a)
	}

	// Step 3: connected components via iterative BFS; retain the largest.
	compID := make([]int32, n)
	for i := range compID {
		compID[i] = -1
	}
	var compSizes []int
	for v := Gene(0); v < Gene(n); v++ {
		if compID[v] != -1 {
			continue
		}
		id := int32(len(compSizes))
		size := floodFill(v, adj, compID, id)
		compSizes = append(compSizes, size)
	}

	largest := int32(0)
	for i, size := range compSizes {
		if size > compSizes[largest] {
			largest = int32(i)
		}
	}
	dropped := 0
	for _, size := range compSizes {
		dropped += size
	}
	dropped -= compSizes[largest]

	// Remap retained vertices to a dense [0,|V|) range, preserving relative
	// symbol order for deterministic output.
	remap := make([]Gene, n)
	for i := range remap {
		remap[i] = -1
	}
	var retainedSymbols []string
	retainedSymbolToGene := make(map[string]Gene, n)
	for v := Gene(0); v < Gene(n); v++ {
		if compID[v] != largest {
			continue
		}
		newID := Gene(len(retainedSymbols))
		remap[v] = newID
		retainedSymbols = append(retainedSymbols, symbols[v])
		retainedSymbolToGene[symbols[v]] = newID
	}

	// Step 4: build CSR adjacency over the retained, remapped vertex set.
	retainedN := len(retainedSymbols)
	degree := make([]int32, retainedN)
	for v := Gene(0); v < Gene(n); v++ {
		nv := remap[v]
		if nv == -1 {
			continue
		}
		degree[nv] = int32(len(adj[v]))
	}

	offsets := make([]int32, retainedN+1)
	for v := 0; v < retainedN; v++ {
		offsets[v+1] = offsets[v] + degree[v]
	}
	neighbors := make([]int32, offsets[retainedN])
	cursor := make([]int32, retainedN)
	copy(cursor, offsets[:retainedN])
	for v := Gene(0); v < Gene(n); v++ {
		nv := remap[v]
		if nv == -1 {
			continue
		}
		for _, u := range adj[v] {
			nu := remap[u]
			neighbors[cursor[nv]] = int32(nu)
			cursor[nv]++
		}
	}

	edgeSources := make(map[edgeKey][]string, len(rawSources))
	for k, tags := range rawSources {
		na, nb := remap[k.Lo], remap[k.Hi]
		if na == -1 || nb == -1 {
			continue
		}
		edgeSources[newEdgeKey(na, nb)] = tags
	}

	idx := &Index{
		symbols:               retainedSymbols,
		symbolToGene:          retainedSymbolToGene,
		csrOffsets:            offsets,
		csrNeighbors:          neighbors,
		edgeSources:           edgeSources,
		degree:                degree,
		droppedComponentSize:  dropped,
		sentinel:              cfg.sentinel,
	}

	// Step 5: degree-bin table.
	buildBins(idx, cfg.numBins)

	return idx, nil
}

// floodFill performs an iterative BFS/DFS-style flood fill from start,
// assigning id to every vertex in its component, and returns the component's
// size. Uses a simple stack to avoid recursion depth concerns on large graphs.
func floodFill(start Gene, adj [][]Gene, compID []int32, id int32) int {
	stack := []Gene{start}
	compID[start] = id
	size := 0
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		size++
		for _, u := range adj[v] {
			if compID[u] == -1 {
				compID[u] = id
				stack = append(stack, u)
			}
		}
	}
	return size
}

func appendUnique(tags []string, tag string) []string {
	for _, t := range tags {
		if t == tag {
			return tags
		}
	}
	return append(tags, tag)
}

// buildBins sorts vertices by degree and splits them into requested equal-
// count bands, recording each vertex's bin index.
func buildBins(idx *Index, requestedBins int) {
	n := idx.Size()
	if requestedBins > n {
		requestedBins = n
	}
	if requestedBins < 1 {
		requestedBins = 1
	}

	order := make([]Gene, n)
	for i := range order {
		order[i] = Gene(i)
	}
	sort.SliceStable(order, func(i, j int) bool {
		return idx.degree[order[i]] < idx.degree[order[j]]
	})

	idx.numBins = requestedBins
	idx.binOf = make([]int32, n)
	idx.bins = make([][]Gene, requestedBins)

	base := n / requestedBins
	rem := n % requestedBins
	pos := 0
	for b := 0; b < requestedBins; b++ {
		count := base
		if b < rem {
			count++ // front-load the remainder so bands stay within one of each other
		}
		for i := 0; i < count; i++ {
			v := order[pos]
			idx.binOf[v] = int32(b)
			idx.bins[b] = append(idx.bins[b], v)
			pos++
		}
	}
	for b := range idx.bins {
		sortGenes(idx.bins[b])
	}
}

// BinOf returns the degree-bin index of vertex g.
func (idx *Index) BinOf(g Gene) int { return int(idx.binOf[g]) }

// BinPool returns the vertices assigned to degree bin b, sorted ascending.
// Callers must not mutate the returned slice.
func (idx *Index) BinPool(b int) []Gene { return idx.bins[b] }
