package predictor

import (
	"context"
	"runtime"
	"sort"
	"sync"

	"github.com/syndrumnet/synergycore/config"
	"github.com/syndrumnet/synergycore/diagnostics"
	"github.com/syndrumnet/synergycore/graphindex"
	"github.com/syndrumnet/synergycore/nullmodel"
	"github.com/syndrumnet/synergycore/proximity"
	"github.com/syndrumnet/synergycore/topology"
)

// chunkSize is the fixed dispatch granularity for the worker pool.
const chunkSize = 32

// Orchestrator runs the per-disease scoring pipeline over a fixed graph
// index, dispatching pairs to a worker pool.
type Orchestrator struct {
	idx      *graphindex.Index
	diag     *diagnostics.Report
	scorer   *scorer
	parallel int
}

// New builds an Orchestrator bound to idx, using cfg's named options and
// recording diagnostics into diag.
func New(idx *graphindex.Index, cfg config.Config, diag *diagnostics.Report) *Orchestrator {
	sampler := nullmodel.New(idx, diag)
	engine := proximity.New(idx, sampler, diag)
	s := &scorer{
		idx:       idx,
		proximity: engine,
		diag:      diag,
		topoCfg:   topology.Config{CloseThreshold: cfg.CloseThreshold, K: cfg.K, L: cfg.L},
		baseSeed:  cfg.RandomSeed,
		nSamples:  cfg.NRandomizations,
	}
	parallel := cfg.Parallelism
	if parallel < 1 {
		parallel = runtime.NumCPU()
	}
	return &Orchestrator{idx: idx, diag: diag, scorer: s, parallel: parallel}
}

// pairTask is one (drug_a, drug_b) unordered pair queued for scoring.
type pairTask struct {
	a, b *Drug
}

// enumeratePairs lists every unordered pair over drugs in a fixed,
// deterministic order (drugs[i], drugs[j]) for i<j, honoring maxPairs as an
// enumeration cap. maxPairs <= 0 means
// unbounded.
func enumeratePairs(drugs []*Drug, maxPairs int) []pairTask {
	var tasks []pairTask
	for i := 0; i < len(drugs); i++ {
		for j := i + 1; j < len(drugs); j++ {
			tasks = append(tasks, pairTask{a: drugs[i], b: drugs[j]})
			if maxPairs > 0 && len(tasks) >= maxPairs {
				return tasks
			}
		}
	}
	return tasks
}

// Run enumerates all unordered pairs over drugs (capped at maxPairs if > 0),
// dispatches each to the worker pool, composes and collects every Record,
// and returns them sorted descending by Total with a lexicographic
// (drug_a, drug_b) tie-break.
//
// ctx is checked between chunks, never inside a pair's BFS work, which is
// bounded by graph size anyway. A cancelled context drains
// whatever has already been dispatched, records a Cancelled diagnostic, and
// returns the partial record set with ctx.Err().
func (o *Orchestrator) Run(ctx context.Context, disease Disease, drugs []*Drug, maxPairs int) ([]Record, error) {
	tasks := enumeratePairs(drugs, maxPairs)
	if len(tasks) == 0 {
		return nil, nil
	}

	results := make([]Record, len(tasks))

	type chunk struct{ lo, hi int }
	var chunks []chunk
	for lo := 0; lo < len(tasks); lo += chunkSize {
		hi := lo + chunkSize
		if hi > len(tasks) {
			hi = len(tasks)
		}
		chunks = append(chunks, chunk{lo, hi})
	}

	chunkCh := make(chan chunk)
	var wg sync.WaitGroup
	var cancelled bool
	var mu sync.Mutex

	worker := func() {
		defer wg.Done()
		for c := range chunkCh {
			select {
			case <-ctx.Done():
				mu.Lock()
				cancelled = true
				mu.Unlock()
				continue
			default:
			}
			for i := c.lo; i < c.hi; i++ {
				t := tasks[i]
				results[i] = o.scorer.scorePair(disease, t.a, t.b)
			}
		}
	}

	n := o.parallel
	if n > len(chunks) {
		n = len(chunks)
	}
	if n < 1 {
		n = 1
	}
	wg.Add(n)
	for i := 0; i < n; i++ {
		go worker()
	}
	for _, c := range chunks {
		select {
		case <-ctx.Done():
			mu.Lock()
			cancelled = true
			mu.Unlock()
		default:
		}
		chunkCh <- c
	}
	close(chunkCh)
	wg.Wait()

	if cancelled {
		// Chunks skipped after cancellation left zero-value slots behind;
		// only pairs that actually reached the emitted state belong in the
		// drained partial record set.
		scored := results[:0]
		for _, r := range results {
			if r.DrugA != "" {
				scored = append(scored, r)
			}
		}
		results = scored
	}

	sortRecords(results)

	if cancelled {
		o.diag.Cancelled("run cancelled; partial record set flushed for disease " + disease.ID)
		return results, ctx.Err()
	}
	return results, nil
}

// sortRecords sorts descending by Total, tie-breaking lexicographically on
// (DrugA, DrugB) to remove non-determinism from worker-pool interleaving.
func sortRecords(records []Record) {
	sort.Slice(records, func(i, j int) bool {
		if records[i].Total != records[j].Total {
			return records[i].Total > records[j].Total
		}
		if records[i].DrugA != records[j].DrugA {
			return records[i].DrugA < records[j].DrugA
		}
		return records[i].DrugB < records[j].DrugB
	})
}
