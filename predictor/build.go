package predictor

import (
	"github.com/syndrumnet/synergycore/graphindex"
	"github.com/syndrumnet/synergycore/propagate"
	"github.com/syndrumnet/synergycore/transcript"
)

// ResolveDisease binds a disease's raw gene symbols and optional signature to
// idx, silently dropping any symbol absent from V. rewriter, if non-nil,
// replaces the resolved module with its propagated neighborhood; pass nil to
// leave the module untouched.
func ResolveDisease(idx *graphindex.Index, id string, genes []string, signature map[string]float64, rewriter propagate.ModuleRewriter) Disease {
	module := idx.ResolveSet(genes)
	if rewriter != nil {
		module = rewriter.Rewrite(module)
	}

	var sig transcript.Signature
	if len(signature) > 0 {
		sig = make(transcript.Signature, len(signature))
		for symbol, logFC := range signature {
			g, ok := idx.Lookup(symbol)
			if !ok {
				continue
			}
			sig[g] = logFC
		}
	}

	return Disease{ID: id, Module: module, Signature: sig}
}

// ResolveDrug binds a drug's raw up/down gene symbols to idx. rewriter, if
// non-nil, replaces the footprint (up ∪ down) with its propagated
// neighborhood; Up/Down retain their original signed membership for the
// transcriptional scorer regardless. Propagation only affects the
// topological/proximity footprint, never the signed vector.
func ResolveDrug(idx *graphindex.Index, id string, up, down []string, rewriter propagate.ModuleRewriter) *Drug {
	upGenes := idx.ResolveSet(up)
	downGenes := idx.ResolveSet(down)

	footprint := idx.ResolveSet(append(append([]string(nil), up...), down...))
	if rewriter != nil {
		footprint = rewriter.Rewrite(footprint)
	}

	return &Drug{ID: id, Up: upGenes, Down: downGenes, Footprint: footprint}
}
