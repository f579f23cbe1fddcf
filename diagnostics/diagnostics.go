// Package diagnostics implements the run-scoped, non-fatal diagnostic report
// described by the error taxonomy: EmptyOverlap and NullDegenerate conditions
// are recorded here instead of aborting the run (see predictor for the
// fatal/non-fatal split).
//
// Report is safe for concurrent use: workers append diagnostics from any
// number of goroutines while the predictor dispatches pairs.
package diagnostics

import "sync"

// Kind classifies a non-fatal diagnostic condition.
type Kind string

const (
	// KindEmptyOverlap marks a module with no members in the graph's vertex set.
	KindEmptyOverlap Kind = "empty_overlap"

	// KindNullDegenerate marks a null distribution with zero standard deviation.
	KindNullDegenerate Kind = "null_degenerate"

	// KindUnreachable marks a disconnected component dropped at graph build time.
	KindUnreachable Kind = "unreachable"

	// KindBinRelaxed marks a degree bin that had to be merged with a neighbor
	// because it held too few candidates for sampling without replacement.
	KindBinRelaxed Kind = "bin_relaxed"

	// KindCancelled marks a user-requested abort that drained partial output.
	KindCancelled Kind = "cancelled"

	// KindSparseSignature marks a drug/disease pair with fewer than the
	// minimum number of genes shared between a disease signature and a
	// drug's signed vector, so the transcriptional score defaulted to 0.
	KindSparseSignature Kind = "sparse_signature"
)

// Entry is one diagnostic record. Disease, DrugA, and DrugB are empty when the
// diagnostic is not pair-scoped (e.g. a graph-build warning).
type Entry struct {
	Kind    Kind
	Disease string
	DrugA   string
	DrugB   string
	Message string
}

// Report accumulates Entry values across a run. The zero value is ready to use.
type Report struct {
	mu      sync.Mutex
	entries []Entry
}

// NewReport returns an empty Report.
func NewReport() *Report {
	return &Report{}
}

// Add appends e to the report. Safe for concurrent use.
func (r *Report) Add(e Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, e)
}

// Empty records a KindEmptyOverlap diagnostic.
func (r *Report) Empty(disease, drugA, drugB, msg string) {
	r.Add(Entry{Kind: KindEmptyOverlap, Disease: disease, DrugA: drugA, DrugB: drugB, Message: msg})
}

// NullDegenerate records a KindNullDegenerate diagnostic.
func (r *Report) NullDegenerate(disease, drugA, drugB, msg string) {
	r.Add(Entry{Kind: KindNullDegenerate, Disease: disease, DrugA: drugA, DrugB: drugB, Message: msg})
}

// BinRelaxed records a KindBinRelaxed diagnostic. It is not pair-scoped.
func (r *Report) BinRelaxed(msg string) {
	r.Add(Entry{Kind: KindBinRelaxed, Message: msg})
}

// Unreachable records a KindUnreachable diagnostic. It is not pair-scoped.
func (r *Report) Unreachable(msg string) {
	r.Add(Entry{Kind: KindUnreachable, Message: msg})
}

// SparseSignature records a KindSparseSignature diagnostic.
func (r *Report) SparseSignature(disease, drugA, drugB, msg string) {
	r.Add(Entry{Kind: KindSparseSignature, Disease: disease, DrugA: drugA, DrugB: drugB, Message: msg})
}

// Cancelled records a KindCancelled diagnostic marking a partial, drained run.
func (r *Report) Cancelled(msg string) {
	r.Add(Entry{Kind: KindCancelled, Message: msg})
}

// Entries returns a snapshot copy of all recorded entries, in append order.
func (r *Report) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Len reports the number of recorded entries.
func (r *Report) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}
