// Package synergycore is the scoring core of a network-based predictor of
// synergistic drug pairs for a given disease.
//
// Given an undirected molecular interaction graph, a disease gene module
// (plus an optional transcriptional signature), and a collection of drug
// gene modules, synergycore ranks every unordered drug pair by a composite
// score combining three signals:
//
//	T — topological class: do the two drugs sit in complementary or
//	    redundant regions of the network relative to the disease module?
//	P — proximity: how close do the two drugs lie to the disease module,
//	    normalized against a degree-preserving null model?
//	C — transcriptional correlation: how strongly do the two drugs reverse
//	    the disease expression signature?
//
// Everything here is organized one concern per top-level package:
//
//	graphindex/ — interned CSR adjacency, connected components, degree
//	              bins, batched BFS set-to-set distance
//	nullmodel/  — degree-preserving Monte-Carlo gene-set randomization
//	proximity/  — raw + z-scored proximity, pair score P
//	separation/ — signed module separation s(A,B)
//	topology/   — complementary/intermediate/redundant classification, T
//	transcript/ — Spearman rank correlation against a disease signature, C
//	predictor/  — per-disease orchestration: pair enumeration, worker-pool
//	              dispatch, deterministic composition and sort
//	seeding/    — per-task deterministic RNG sub-seed derivation
//	diagnostics/— run-scoped non-fatal diagnostic report
//	propagate/  — optional PRINCE-style network-propagation pre-processor
//	dataio/     — GraphML/edge-list/CSV/TSV readers, CSV writers
//	evaluate/   — AUC-ROC / AUC-PR evaluation against known synergies
//	config/     — explicit, strictly-decoded run configuration
//
// The package boundary mirrors data flow: static inputs build a read-only
// graphindex.Index once; predictor reuses it, nullmodel, proximity, topology,
// and transcript for every disease it scores, and returns ranked prediction
// records. cmd/synergycore wires these into the build/run/evaluate CLI and
// writes the records through dataio.
package synergycore
