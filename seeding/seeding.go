// Package seeding derives deterministic per-task RNG streams from a run-wide
// base seed, so that null-model sampling is insensitive to worker-pool thread
// scheduling (see predictor and nullmodel).
//
// Two runs with the same base seed, disease, and drug pair must draw from
// byte-identical random sequences regardless of how many workers process the
// pair concurrently. We derive a 64-bit sub-seed via FNV-1a over the
// (base_seed, disease_id, drug_a_id, drug_b_id) tuple and seed a fresh
// *rand.Rand from it, the same deterministic-seeding pattern applied at
// task granularity instead of to a whole graph.
package seeding

import (
	"hash/fnv"
	"math/rand"
	"strconv"
)

// TaskSeed derives a sub-seed for one (disease, drug_a, drug_b) task from the
// run's base seed. The derivation is a pure function of its inputs: same
// arguments always produce the same sub-seed, independent of call order or
// goroutine scheduling.
//
// Complexity: O(len(disease)+len(drugA)+len(drugB)) time, O(1) space.
func TaskSeed(baseSeed int64, disease, drugA, drugB string) int64 {
	h := fnv.New64a()
	// Each component is written with a length-prefixed separator so that,
	// e.g., ("ab","c") and ("a","bc") never collide on the raw concatenation.
	writePart(h, strconv.FormatInt(baseSeed, 10))
	writePart(h, disease)
	writePart(h, drugA)
	writePart(h, drugB)

	return int64(h.Sum64())
}

// writePart writes s to h prefixed with its length and a separator byte, so
// the hash input is unambiguous across part boundaries.
func writePart(h interface{ Write([]byte) (int, error) }, s string) {
	_, _ = h.Write([]byte(strconv.Itoa(len(s))))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(s))
	_, _ = h.Write([]byte{0})
}

// TaskRNG constructs a fresh, independent *rand.Rand for one task, derived
// from baseSeed and the task's (disease, drugA, drugB) identity. The returned
// source must not be shared across goroutines; each task owns its own.
func TaskRNG(baseSeed int64, disease, drugA, drugB string) *rand.Rand {
	sub := TaskSeed(baseSeed, disease, drugA, drugB)

	return rand.New(rand.NewSource(sub))
}
