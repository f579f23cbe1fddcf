package graphindex

// unreached marks a vertex not yet discovered by a BFS frontier.
const unreached = int32(-1)

// bfsDistances runs an unweighted BFS from src over the full CSR adjacency
// and returns a dense distance vector sized Size(), with unreached marking
// vertices with no path from src. This is the underlying primitive behind
// both DistSetToSet and Batch: a full BFS costs the same O(V+E) whether or
// not it is shared across later queries, so Batch always computes the full
// vector and callers who only need one target pay the same asymptotic cost
// as computing it directly.
func (idx *Index) bfsDistances(src Gene) []int32 {
	n := idx.Size()
	dist := make([]int32, n)
	for i := range dist {
		dist[i] = unreached
	}
	dist[src] = 0

	queue := make([]Gene, 0, n)
	queue = append(queue, src)
	for head := 0; head < len(queue); head++ {
		v := queue[head]
		d := dist[v]
		lo, hi := idx.csrOffsets[v], idx.csrOffsets[v+1]
		for _, raw := range idx.csrNeighbors[lo:hi] {
			u := Gene(raw)
			if dist[u] == unreached {
				dist[u] = d + 1
				queue = append(queue, u)
			}
		}
	}
	return dist
}

// bfsDistanceToSet runs BFS from src and stops as soon as it discovers any
// vertex in target, returning that distance. It returns the sentinel if no
// vertex of target is ever reached. DistSetToSet for a single query uses
// this early-terminated form directly rather than paying for a full
// distance vector.
func (idx *Index) bfsDistanceToSet(src Gene, target map[Gene]struct{}) float64 {
	if _, ok := target[src]; ok {
		return 0
	}
	n := idx.Size()
	visited := make([]bool, n)
	visited[src] = true

	queue := make([]Gene, 0, n)
	queue = append(queue, src)
	depth := make([]int32, n)

	for head := 0; head < len(queue); head++ {
		v := queue[head]
		d := depth[v]
		lo, hi := idx.csrOffsets[v], idx.csrOffsets[v+1]
		for _, raw := range idx.csrNeighbors[lo:hi] {
			u := Gene(raw)
			if visited[u] {
				continue
			}
			visited[u] = true
			depth[u] = d + 1
			if _, hit := target[u]; hit {
				return float64(d + 1)
			}
			queue = append(queue, u)
		}
	}
	return idx.sentinel
}

// DistSetToSet computes d(S,T) = (1/|S|) * sum_{s in S} min_{t in T} d(s,t)
//. S and T are used as given, without filtering: every Gene in them must
// come from this Index (ResolveSet guarantees this); an out-of-range Gene
// panics.
//
// If S or T is empty, DistSetToSet returns the sentinel
// distance. A source with no path to any member of T contributes the
// sentinel to the average, rather than being excluded from it.
func (idx *Index) DistSetToSet(S, T []Gene) float64 {
	if len(S) == 0 || len(T) == 0 {
		return idx.sentinel
	}
	targetSet := make(map[Gene]struct{}, len(T))
	for _, t := range T {
		targetSet[t] = struct{}{}
	}

	var sum float64
	for _, s := range S {
		sum += idx.bfsDistanceToSet(s, targetSet)
	}
	return sum / float64(len(S))
}

// Sentinel returns the distance value used for unreachable set-to-set
// queries, as configured at Build time.
func (idx *Index) Sentinel() float64 { return idx.sentinel }

// ProximityPair computes both directions of set-to-set distance, d(A,B) and
// d(B,A), in one call. Separation needs both and the underlying BFS
// work is independent per direction, so this just saves callers from writing
// out two DistSetToSet calls; it does not share any caching between the two
// directions since their source sets differ.
func (idx *Index) ProximityPair(A, B []Gene) (dAB, dBA float64) {
	return idx.DistSetToSet(A, B), idx.DistSetToSet(B, A)
}

// Batch caches full BFS distance vectors for a shared set of source genes so
// that repeated DistTo calls against many different target sets (the inner
// loop of drug-vs-disease scoring across ~1000 drugs) each cost O(|S|*|T|)
// instead of re-running BFS from every source every time.
//
// A Batch is scoped to one caller; it is not safe for concurrent use by
// multiple goroutines sharing the same Batch value; give each worker its own
// Batch for the same source set if parallelizing (the underlying Index is
// read-only and may be shared freely).
type Batch struct {
	idx     *Index
	sources []Gene
	cache   map[Gene][]int32
}

// NewBatch starts a batch of set-to-set queries sharing the source set S.
// The distance vectors are computed lazily on first use and cached for the
// lifetime of the Batch.
func (idx *Index) NewBatch(S []Gene) *Batch {
	return &Batch{idx: idx, sources: S, cache: make(map[Gene][]int32, len(S))}
}

func (b *Batch) vectorFor(s Gene) []int32 {
	if v, ok := b.cache[s]; ok {
		return v
	}
	v := b.idx.bfsDistances(s)
	b.cache[s] = v
	return v
}

// DistTo computes d(S,T) against a new target set T, reusing any previously
// cached distance vectors for members of S.
func (b *Batch) DistTo(T []Gene) float64 {
	if len(b.sources) == 0 || len(T) == 0 {
		return b.idx.sentinel
	}

	var sum float64
	for _, s := range b.sources {
		vec := b.vectorFor(s)
		min := int32(-1)
		for _, t := range T {
			d := vec[t]
			if d == unreached {
				continue
			}
			if min == -1 || d < min {
				min = d
			}
		}
		if min == -1 {
			sum += b.idx.sentinel
		} else {
			sum += float64(min)
		}
	}
	return sum / float64(len(b.sources))
}

// Reset clears the cached distance vectors, retaining the source set, so the
// Batch can be reused for a new round of queries without reallocating.
func (b *Batch) Reset() {
	for k := range b.cache {
		delete(b.cache, k)
	}
}
